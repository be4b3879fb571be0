package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// CommunityVisibility コミュニティの公開範囲
type CommunityVisibility string

const (
	// CommunityVisibilityPublic 誰でも閲覧可能
	CommunityVisibilityPublic CommunityVisibility = "public"
	// CommunityVisibilityPrivate フォロワーのみ閲覧可能
	CommunityVisibilityPrivate CommunityVisibility = "private"
)

// Community コミュニティ構造体
type Community struct {
	ID          uuid.UUID           `gorm:"type:char(36);not null;primaryKey"          json:"id"`
	Name        string              `gorm:"type:varchar(64);not null;unique"           json:"name"`
	Title       string              `gorm:"type:varchar(128);not null;default:''"      json:"title"`
	Description string              `gorm:"type:text"                                  json:"description"`
	Visibility  CommunityVisibility `gorm:"type:varchar(10);not null;default:'public'" json:"visibility"`
	CreatedAt   time.Time           `gorm:"precision:6;not null"                       json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"precision:6;not null"                       json:"updatedAt"`
}

// TableName Community構造体のテーブル名
func (*Community) TableName() string {
	return "communities"
}

// CommunityModerator コミュニティモデレーター関係構造体
//
// 行の存在がモデレーター権限を表す。CreatedAtが就任日時。
type CommunityModerator struct {
	CommunityID uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"communityId"`
	PersonID    uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"personId"`
	CreatedAt   time.Time `gorm:"precision:6;not null"              json:"createdAt"`
}

// TableName CommunityModerator構造体のテーブル名
func (*CommunityModerator) TableName() string {
	return "community_moderators"
}

// CommunityPersonBan コミュニティBAN構造体
//
// Expiresがnilの場合は無期限BAN
type CommunityPersonBan struct {
	CommunityID uuid.UUID  `gorm:"type:char(36);not null;primaryKey" json:"communityId"`
	PersonID    uuid.UUID  `gorm:"type:char(36);not null;primaryKey" json:"personId"`
	Expires     *time.Time `gorm:"precision:6"                       json:"expires"`
	CreatedAt   time.Time  `gorm:"precision:6;not null"              json:"createdAt"`
}

// TableName CommunityPersonBan構造体のテーブル名
func (*CommunityPersonBan) TableName() string {
	return "community_person_bans"
}

// CommunityFollow コミュニティフォロー構造体
type CommunityFollow struct {
	CommunityID uuid.UUID `gorm:"type:char(36);not null;primaryKey"   json:"communityId"`
	PersonID    uuid.UUID `gorm:"type:char(36);not null;primaryKey"   json:"personId"`
	Pending     bool      `gorm:"type:boolean;not null;default:false" json:"pending"`
	CreatedAt   time.Time `gorm:"precision:6;not null"                json:"createdAt"`
}

// TableName CommunityFollow構造体のテーブル名
func (*CommunityFollow) TableName() string {
	return "community_follows"
}

// SubscribedType 閲覧者のコミュニティ購読状態
type SubscribedType string

const (
	// SubscribedTypeSubscribed 購読済み
	SubscribedTypeSubscribed SubscribedType = "subscribed"
	// SubscribedTypePending 承認待ち
	SubscribedTypePending SubscribedType = "pending"
	// SubscribedTypeNotSubscribed 未購読
	SubscribedTypeNotSubscribed SubscribedType = "not_subscribed"
)
