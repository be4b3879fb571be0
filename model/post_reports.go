package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/utils/optional"
)

// PostReport 投稿通報構造体
//
// 同一の通報者が同一の投稿を通報できるのは一度のみ
type PostReport struct {
	ID                uuid.UUID              `gorm:"type:char(36);not null;primaryKey"                json:"id"`
	CreatorID         uuid.UUID              `gorm:"type:char(36);not null;uniqueIndex:post_reporter" json:"creatorId"`
	PostID            uuid.UUID              `gorm:"type:char(36);not null;uniqueIndex:post_reporter" json:"postId"`
	OriginalPostTitle string                 `gorm:"type:varchar(200);not null"                       json:"originalPostTitle"`
	OriginalPostBody  string                 `gorm:"type:text"                                        json:"originalPostBody"`
	Reason            string                 `gorm:"type:text;not null"                               json:"reason"`
	Resolved          bool                   `gorm:"type:boolean;not null;default:false;index:idx_post_reports_resolved_created_at,priority:1" json:"resolved"`
	ResolverID        optional.Of[uuid.UUID] `gorm:"type:char(36)"                                    json:"resolverId"`
	CreatedAt         time.Time              `gorm:"precision:6;not null;index;index:idx_post_reports_resolved_created_at,priority:2" json:"createdAt"`
	UpdatedAt         time.Time              `gorm:"precision:6;not null"                             json:"updatedAt"`
}

// TableName PostReport構造体のテーブル名
func (*PostReport) TableName() string {
	return "post_reports"
}

// PostReportView 1件の投稿通報を閲覧者視点で非正規化したビュー
//
// 永続化されない。派生フィールドは全て読み取り時点の関係テーブルから計算される。
type PostReportView struct {
	Report      PostReport     `json:"postReport"`
	Post        Post           `json:"post"`
	Community   Community      `json:"community"`
	Creator     Person         `json:"creator"`     // 通報者
	PostCreator Person         `json:"postCreator"` // 通報対象投稿の作成者
	Counts      PostAggregates `json:"counts"`

	CreatorBannedFromCommunity bool             `json:"creatorBannedFromCommunity"`
	CreatorIsModerator         bool             `json:"creatorIsModerator"`
	CreatorIsAdmin             bool             `json:"creatorIsAdmin"`
	CreatorBlocked             bool             `json:"creatorBlocked"`
	Subscribed                 SubscribedType   `json:"subscribed"`
	Saved                      bool             `json:"saved"`
	MyVote                     optional.Of[int] `json:"myVote"`
	Resolver                   *Person          `json:"resolver,omitempty"`
}
