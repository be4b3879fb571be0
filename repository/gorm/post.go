package gorm

import (
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/repository"
)

// CreatePost implements PostRepository interface.
func (repo *Repository) CreatePost(args repository.CreatePostArgs) (*model.Post, error) {
	if args.CreatorID == uuid.Nil || args.CommunityID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}

	p := &model.Post{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       args.Title,
		Body:        args.Body,
		CreatorID:   args.CreatorID,
		CommunityID: args.CommunityID,
	}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Create(&model.PostAggregates{PostID: p.ID}).Error
	})
	if err != nil {
		return nil, convertError(err)
	}
	return p, nil
}

// GetPost implements PostRepository interface.
func (repo *Repository) GetPost(id uuid.UUID) (*model.Post, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var p model.Post
	if err := repo.db.First(&p, &model.Post{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &p, nil
}

// SavePost implements PostRepository interface.
func (repo *Repository) SavePost(personID, postID uuid.UUID) error {
	if personID == uuid.Nil || postID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PostSave{PersonID: personID, PostID: postID}).
		Error
}

// UnsavePost implements PostRepository interface.
func (repo *Repository) UnsavePost(personID, postID uuid.UUID) error {
	if personID == uuid.Nil || postID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Delete(&model.PostSave{PersonID: personID, PostID: postID}).Error
}

// LikePost implements PostRepository interface.
func (repo *Repository) LikePost(personID, postID uuid.UUID, score int) error {
	if personID == uuid.Nil || postID == uuid.Nil {
		return repository.ErrNilID
	}
	if score != 1 && score != -1 {
		return repository.ErrInvalidArgs
	}
	return repo.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "person_id"}, {Name: "post_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"score"}),
			}).
			Create(&model.PostLike{PersonID: personID, PostID: postID, Score: score}).
			Error
		if err != nil {
			return err
		}
		return recalculatePostAggregates(tx, postID)
	})
}

// recalculatePostAggregates 投票テーブルから集計行を再計算する
func recalculatePostAggregates(tx *gorm.DB, postID uuid.UUID) error {
	return tx.Exec(`
		UPDATE post_aggregates
		SET upvotes = (SELECT COUNT(*) FROM post_likes WHERE post_id = ? AND score = 1),
			downvotes = (SELECT COUNT(*) FROM post_likes WHERE post_id = ? AND score = -1),
			score = (SELECT COALESCE(SUM(score), 0) FROM post_likes WHERE post_id = ?)
		WHERE post_id = ?`,
		postID, postID, postID, postID).Error
}
