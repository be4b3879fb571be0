package gorm

import (
	"database/sql"

	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/model"
)

// nullablePersonRow LEFT JOINで全列NULLになりうる利用者行
type nullablePersonRow struct {
	ID          uuid.NullUUID
	Name        sql.NullString
	DisplayName sql.NullString
	Banned      sql.NullBool
	Deleted     sql.NullBool
	BotAccount  sql.NullBool
	CreatedAt   sql.NullTime
	UpdatedAt   sql.NullTime
}

func (r *nullablePersonRow) toPerson() *model.Person {
	if !r.ID.Valid {
		return nil
	}
	return &model.Person{
		ID:          r.ID.UUID,
		Name:        r.Name.String,
		DisplayName: r.DisplayName.String,
		Banned:      r.Banned.Bool,
		Deleted:     r.Deleted.Bool,
		BotAccount:  r.BotAccount.Bool,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
}
