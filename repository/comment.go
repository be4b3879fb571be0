package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/model"
)

// CreateCommentArgs コメント作成引数
type CreateCommentArgs struct {
	CreatorID uuid.UUID
	PostID    uuid.UUID
	Content   string
}

// Validate 構造体を検証します
func (args CreateCommentArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Content, vd.Required, vd.RuneLength(1, 10000)),
	)
}

// CommentRepository コメントリポジトリ
type CommentRepository interface {
	// CreateComment コメントと対応する0値の集計行を作成します
	CreateComment(args CreateCommentArgs) (*model.Comment, error)
	// GetComment 指定したIDのコメントを取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	GetComment(id uuid.UUID) (*model.Comment, error)
	// SaveComment 閲覧者がコメントを保存します
	SaveComment(personID, commentID uuid.UUID) error
	// UnsaveComment 閲覧者がコメントの保存を解除します
	UnsaveComment(personID, commentID uuid.UUID) error
	// LikeComment 閲覧者がコメントに投票し、集計行を更新します
	//
	// scoreは+1か-1。既存の投票は上書きされます。
	LikeComment(personID, commentID uuid.UUID, score int) error
}
