package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Comment コメント構造体
type Comment struct {
	ID        uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"id"`
	CreatorID uuid.UUID `gorm:"type:char(36);not null;index"      json:"creatorId"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"      json:"postId"`
	Content   string    `gorm:"type:text;not null"                json:"content"`
	CreatedAt time.Time `gorm:"precision:6;not null"              json:"createdAt"`
	UpdatedAt time.Time `gorm:"precision:6;not null"              json:"updatedAt"`
}

// TableName Comment構造体のテーブル名
func (*Comment) TableName() string {
	return "comments"
}

// CommentAggregates コメントの集計値
//
// コメント作成時に0値の行が作られ、投票操作で更新される。読み取り側からは読み取り専用。
type CommentAggregates struct {
	CommentID  uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"commentId"`
	Score      int64     `gorm:"type:bigint;not null;default:0"    json:"score"`
	Upvotes    int64     `gorm:"type:bigint;not null;default:0"    json:"upvotes"`
	Downvotes  int64     `gorm:"type:bigint;not null;default:0"    json:"downvotes"`
	ChildCount int64     `gorm:"type:bigint;not null;default:0"    json:"childCount"`
	HotRank    float64   `gorm:"type:double;not null;default:0"    json:"hotRank"`
}

// TableName CommentAggregates構造体のテーブル名
func (*CommentAggregates) TableName() string {
	return "comment_aggregates"
}

// CommentSave 閲覧者によるコメント保存構造体
type CommentSave struct {
	PersonID  uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"personId"`
	CommentID uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"commentId"`
	CreatedAt time.Time `gorm:"precision:6;not null"              json:"createdAt"`
}

// TableName CommentSave構造体のテーブル名
func (*CommentSave) TableName() string {
	return "comment_saves"
}

// CommentLike 閲覧者によるコメントへの投票構造体
//
// Scoreは+1か-1のみ
type CommentLike struct {
	PersonID  uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"personId"`
	CommentID uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"commentId"`
	Score     int       `gorm:"type:smallint;not null"            json:"score"`
	CreatedAt time.Time `gorm:"precision:6;not null"              json:"createdAt"`
}

// TableName CommentLike構造体のテーブル名
func (*CommentLike) TableName() string {
	return "comment_likes"
}
