package gorm

import (
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/repository"
)

// CreatePerson implements PersonRepository interface.
func (repo *Repository) CreatePerson(args repository.CreatePersonArgs) (*model.Person, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}

	p := &model.Person{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        args.Name,
		DisplayName: args.DisplayName,
		BotAccount:  args.BotAccount,
	}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Create(&model.LocalUser{
			ID:       uuid.Must(uuid.NewV4()),
			PersonID: p.ID,
			Admin:    args.Admin,
		}).Error
	})
	if err != nil {
		return nil, convertError(err)
	}
	return p, nil
}

// GetPerson implements PersonRepository interface.
func (repo *Repository) GetPerson(id uuid.UUID) (*model.Person, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var p model.Person
	if err := repo.db.First(&p, &model.Person{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &p, nil
}

// IsPersonAdmin implements PersonRepository interface.
func (repo *Repository) IsPersonAdmin(id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	var count int64
	err := repo.db.
		Model(&model.LocalUser{}).
		Where("person_id = ? AND admin = TRUE", id).
		Count(&count).
		Error
	return count > 0, err
}

// BlockPerson implements PersonRepository interface.
func (repo *Repository) BlockPerson(personID, targetID uuid.UUID) error {
	if personID == uuid.Nil || targetID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PersonBlock{PersonID: personID, TargetID: targetID}).
		Error
}

// UnblockPerson implements PersonRepository interface.
func (repo *Repository) UnblockPerson(personID, targetID uuid.UUID) error {
	if personID == uuid.Nil || targetID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Delete(&model.PersonBlock{PersonID: personID, TargetID: targetID}).Error
}
