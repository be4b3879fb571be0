package model

import (
	"time"

	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/utils/optional"
)

// CommentReport コメント通報構造体
//
// 同一の通報者が同一のコメントを通報できるのは一度のみ
type CommentReport struct {
	ID                  uuid.UUID              `gorm:"type:char(36);not null;primaryKey"                   json:"id"`
	CreatorID           uuid.UUID              `gorm:"type:char(36);not null;uniqueIndex:comment_reporter" json:"creatorId"`
	CommentID           uuid.UUID              `gorm:"type:char(36);not null;uniqueIndex:comment_reporter" json:"commentId"`
	OriginalCommentText string                 `gorm:"type:text;not null"                                  json:"originalCommentText"`
	Reason              string                 `gorm:"type:text;not null"                                  json:"reason"`
	Resolved            bool                   `gorm:"type:boolean;not null;default:false;index:idx_comment_reports_resolved_created_at,priority:1" json:"resolved"`
	ResolverID          optional.Of[uuid.UUID] `gorm:"type:char(36)"                                       json:"resolverId"`
	CreatedAt           time.Time              `gorm:"precision:6;not null;index;index:idx_comment_reports_resolved_created_at,priority:2" json:"createdAt"`
	UpdatedAt           time.Time              `gorm:"precision:6;not null"                                json:"updatedAt"`
}

// TableName CommentReport構造体のテーブル名
func (*CommentReport) TableName() string {
	return "comment_reports"
}

// CommentReportView 1件のコメント通報を閲覧者視点で非正規化したビュー
//
// 永続化されない。派生フィールドは全て読み取り時点の関係テーブルから計算される。
type CommentReportView struct {
	Report         CommentReport     `json:"commentReport"`
	Comment        Comment           `json:"comment"`
	Post           Post              `json:"post"`
	Community      Community         `json:"community"`
	Creator        Person            `json:"creator"`        // 通報者
	CommentCreator Person            `json:"commentCreator"` // 通報対象コメントの作成者
	Counts         CommentAggregates `json:"counts"`

	CreatorBannedFromCommunity bool             `json:"creatorBannedFromCommunity"`
	CreatorIsModerator         bool             `json:"creatorIsModerator"`
	CreatorIsAdmin             bool             `json:"creatorIsAdmin"`
	CreatorBlocked             bool             `json:"creatorBlocked"`
	Subscribed                 SubscribedType   `json:"subscribed"`
	Saved                      bool             `json:"saved"`
	MyVote                     optional.Of[int] `json:"myVote"`
	Resolver                   *Person          `json:"resolver,omitempty"`
}
