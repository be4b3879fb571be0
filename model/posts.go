package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Post 投稿構造体
type Post struct {
	ID          uuid.UUID `gorm:"type:char(36);not null;primaryKey"     json:"id"`
	Title       string    `gorm:"type:varchar(200);not null"            json:"title"`
	Body        string    `gorm:"type:text"                             json:"body"`
	CreatorID   uuid.UUID `gorm:"type:char(36);not null;index"          json:"creatorId"`
	CommunityID uuid.UUID `gorm:"type:char(36);not null;index"          json:"communityId"`
	CreatedAt   time.Time `gorm:"precision:6;not null"                  json:"createdAt"`
	UpdatedAt   time.Time `gorm:"precision:6;not null"                  json:"updatedAt"`
}

// TableName Post構造体のテーブル名
func (*Post) TableName() string {
	return "posts"
}

// PostAggregates 投稿の集計値
//
// 投稿作成時に0値の行が作られ、投票操作で更新される。読み取り側からは読み取り専用。
type PostAggregates struct {
	PostID       uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"postId"`
	Score        int64     `gorm:"type:bigint;not null;default:0"    json:"score"`
	Upvotes      int64     `gorm:"type:bigint;not null;default:0"    json:"upvotes"`
	Downvotes    int64     `gorm:"type:bigint;not null;default:0"    json:"downvotes"`
	CommentCount int64     `gorm:"type:bigint;not null;default:0"    json:"commentCount"`
	HotRank      float64   `gorm:"type:double;not null;default:0"    json:"hotRank"`
}

// TableName PostAggregates構造体のテーブル名
func (*PostAggregates) TableName() string {
	return "post_aggregates"
}

// PostSave 閲覧者による投稿保存構造体
type PostSave struct {
	PersonID  uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"personId"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"postId"`
	CreatedAt time.Time `gorm:"precision:6;not null"              json:"createdAt"`
}

// TableName PostSave構造体のテーブル名
func (*PostSave) TableName() string {
	return "post_saves"
}

// PostLike 閲覧者による投稿への投票構造体
//
// Scoreは+1か-1のみ
type PostLike struct {
	PersonID  uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"personId"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"postId"`
	Score     int       `gorm:"type:smallint;not null"            json:"score"`
	CreatedAt time.Time `gorm:"precision:6;not null"              json:"createdAt"`
}

// TableName PostLike構造体のテーブル名
func (*PostLike) TableName() string {
	return "post_likes"
}
