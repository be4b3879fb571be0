package gorm

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/repository"
	"github.com/jayvdb/lemmy/utils/optional"
)

// CreateCommunity implements CommunityRepository interface.
func (repo *Repository) CreateCommunity(args repository.CreateCommunityArgs) (*model.Community, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}

	c := &model.Community{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        args.Name,
		Title:       args.Title,
		Description: args.Description,
		Visibility:  args.Visibility,
	}
	if c.Visibility == "" {
		c.Visibility = model.CommunityVisibilityPublic
	}
	if err := repo.db.Create(c).Error; err != nil {
		return nil, convertError(err)
	}
	return c, nil
}

// GetCommunity implements CommunityRepository interface.
func (repo *Repository) GetCommunity(id uuid.UUID) (*model.Community, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var c model.Community
	if err := repo.db.First(&c, &model.Community{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &c, nil
}

// AddCommunityModerator implements CommunityRepository interface.
func (repo *Repository) AddCommunityModerator(communityID, personID uuid.UUID) error {
	if communityID == uuid.Nil || personID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CommunityModerator{CommunityID: communityID, PersonID: personID}).
		Error
}

// RemoveCommunityModerator implements CommunityRepository interface.
func (repo *Repository) RemoveCommunityModerator(communityID, personID uuid.UUID) error {
	if communityID == uuid.Nil || personID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Delete(&model.CommunityModerator{CommunityID: communityID, PersonID: personID}).Error
}

// GetCommunityModerators implements CommunityRepository interface.
func (repo *Repository) GetCommunityModerators(communityID uuid.UUID) ([]*model.CommunityModerator, error) {
	mods := make([]*model.CommunityModerator, 0)
	if communityID == uuid.Nil {
		return mods, nil
	}
	err := repo.db.
		Where(&model.CommunityModerator{CommunityID: communityID}).
		Order("created_at").
		Find(&mods).
		Error
	return mods, err
}

// BanPersonFromCommunity implements CommunityRepository interface.
func (repo *Repository) BanPersonFromCommunity(communityID, personID uuid.UUID, expires optional.Of[time.Time]) error {
	if communityID == uuid.Nil || personID == uuid.Nil {
		return repository.ErrNilID
	}
	var exp *time.Time
	if expires.Valid {
		exp = &expires.V
	}
	return repo.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "person_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"expires"}),
		}).
		Create(&model.CommunityPersonBan{CommunityID: communityID, PersonID: personID, Expires: exp}).
		Error
}

// UnbanPersonFromCommunity implements CommunityRepository interface.
func (repo *Repository) UnbanPersonFromCommunity(communityID, personID uuid.UUID) error {
	if communityID == uuid.Nil || personID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Delete(&model.CommunityPersonBan{CommunityID: communityID, PersonID: personID}).Error
}

// FollowCommunity implements CommunityRepository interface.
func (repo *Repository) FollowCommunity(communityID, personID uuid.UUID) error {
	if communityID == uuid.Nil || personID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Transaction(func(tx *gorm.DB) error {
		var c model.Community
		if err := tx.First(&c, &model.Community{ID: communityID}).Error; err != nil {
			return convertError(err)
		}
		return tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&model.CommunityFollow{
				CommunityID: communityID,
				PersonID:    personID,
				Pending:     c.Visibility == model.CommunityVisibilityPrivate,
			}).
			Error
	})
}

// UnfollowCommunity implements CommunityRepository interface.
func (repo *Repository) UnfollowCommunity(communityID, personID uuid.UUID) error {
	if communityID == uuid.Nil || personID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Delete(&model.CommunityFollow{CommunityID: communityID, PersonID: personID}).Error
}
