package gorm

import (
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/repository"
)

// CreateComment implements CommentRepository interface.
func (repo *Repository) CreateComment(args repository.CreateCommentArgs) (*model.Comment, error) {
	if args.CreatorID == uuid.Nil || args.PostID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}

	c := &model.Comment{
		ID:        uuid.Must(uuid.NewV4()),
		CreatorID: args.CreatorID,
		PostID:    args.PostID,
		Content:   args.Content,
	}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var p model.Post
		if err := tx.First(&p, &model.Post{ID: args.PostID}).Error; err != nil {
			return convertError(err)
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if err := tx.Create(&model.CommentAggregates{CommentID: c.ID}).Error; err != nil {
			return err
		}
		return tx.
			Model(&model.PostAggregates{PostID: args.PostID}).
			UpdateColumn("comment_count", gorm.Expr("comment_count + 1")).
			Error
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetComment implements CommentRepository interface.
func (repo *Repository) GetComment(id uuid.UUID) (*model.Comment, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var c model.Comment
	if err := repo.db.First(&c, &model.Comment{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &c, nil
}

// SaveComment implements CommentRepository interface.
func (repo *Repository) SaveComment(personID, commentID uuid.UUID) error {
	if personID == uuid.Nil || commentID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.CommentSave{PersonID: personID, CommentID: commentID}).
		Error
}

// UnsaveComment implements CommentRepository interface.
func (repo *Repository) UnsaveComment(personID, commentID uuid.UUID) error {
	if personID == uuid.Nil || commentID == uuid.Nil {
		return repository.ErrNilID
	}
	return repo.db.Delete(&model.CommentSave{PersonID: personID, CommentID: commentID}).Error
}

// LikeComment implements CommentRepository interface.
func (repo *Repository) LikeComment(personID, commentID uuid.UUID, score int) error {
	if personID == uuid.Nil || commentID == uuid.Nil {
		return repository.ErrNilID
	}
	if score != 1 && score != -1 {
		return repository.ErrInvalidArgs
	}
	return repo.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "person_id"}, {Name: "comment_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"score"}),
			}).
			Create(&model.CommentLike{PersonID: personID, CommentID: commentID, Score: score}).
			Error
		if err != nil {
			return err
		}
		return recalculateCommentAggregates(tx, commentID)
	})
}

// recalculateCommentAggregates 投票テーブルから集計行を再計算する
func recalculateCommentAggregates(tx *gorm.DB, commentID uuid.UUID) error {
	return tx.Exec(`
		UPDATE comment_aggregates
		SET upvotes = (SELECT COUNT(*) FROM comment_likes WHERE comment_id = ? AND score = 1),
			downvotes = (SELECT COUNT(*) FROM comment_likes WHERE comment_id = ? AND score = -1),
			score = (SELECT COALESCE(SUM(score), 0) FROM comment_likes WHERE comment_id = ?)
		WHERE comment_id = ?`,
		commentID, commentID, commentID, commentID).Error
}
