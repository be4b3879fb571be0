package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/model"
)

// CreatePostArgs 投稿作成引数
type CreatePostArgs struct {
	Title       string
	Body        string
	CreatorID   uuid.UUID
	CommunityID uuid.UUID
}

// Validate 構造体を検証します
func (args CreatePostArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Title, vd.Required, vd.RuneLength(1, 200)),
	)
}

// PostRepository 投稿リポジトリ
type PostRepository interface {
	// CreatePost 投稿と対応する0値の集計行を作成します
	CreatePost(args CreatePostArgs) (*model.Post, error)
	// GetPost 指定したIDの投稿を取得します
	//
	// 存在しない場合、ErrNotFoundを返します。
	GetPost(id uuid.UUID) (*model.Post, error)
	// SavePost 閲覧者が投稿を保存します
	SavePost(personID, postID uuid.UUID) error
	// UnsavePost 閲覧者が投稿の保存を解除します
	UnsavePost(personID, postID uuid.UUID) error
	// LikePost 閲覧者が投稿に投票し、集計行を更新します
	//
	// scoreは+1か-1。既存の投票は上書きされます。
	LikePost(personID, postID uuid.UUID, score int) error
}
