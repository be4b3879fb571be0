package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Person 利用者構造体
type Person struct {
	ID          uuid.UUID `gorm:"type:char(36);not null;primaryKey"    json:"id"`
	Name        string    `gorm:"type:varchar(32);not null;unique"     json:"name"`
	DisplayName string    `gorm:"type:varchar(64);not null;default:''" json:"displayName"`
	Banned      bool      `gorm:"type:boolean;not null;default:false"  json:"banned"`
	Deleted     bool      `gorm:"type:boolean;not null;default:false"  json:"deleted"`
	BotAccount  bool      `gorm:"type:boolean;not null;default:false"  json:"botAccount"`
	CreatedAt   time.Time `gorm:"precision:6;not null"                 json:"createdAt"`
	UpdatedAt   time.Time `gorm:"precision:6;not null"                 json:"updatedAt"`
}

// TableName Person構造体のテーブル名
func (*Person) TableName() string {
	return "persons"
}

// LocalUser ローカルアカウント構造体
//
// admin=trueの行が存在することがローカル管理者フラグとなる
type LocalUser struct {
	ID        uuid.UUID `gorm:"type:char(36);not null;primaryKey"   json:"id"`
	PersonID  uuid.UUID `gorm:"type:char(36);not null;unique"       json:"personId"`
	Admin     bool      `gorm:"type:boolean;not null;default:false" json:"admin"`
	CreatedAt time.Time `gorm:"precision:6;not null"                json:"createdAt"`
}

// TableName LocalUser構造体のテーブル名
func (*LocalUser) TableName() string {
	return "local_users"
}

// PersonBlock 利用者間ブロック構造体
type PersonBlock struct {
	PersonID  uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"personId"`
	TargetID  uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"targetId"`
	CreatedAt time.Time `gorm:"precision:6;not null"              json:"createdAt"`
}

// TableName PersonBlock構造体のテーブル名
func (*PersonBlock) TableName() string {
	return "person_blocks"
}
