package gormutil

import (
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	errMySQLDuplicatedRecord          uint16 = 1062
	errMySQLForeignKeyConstraintFails uint16 = 1452
)

// IsMySQLDuplicatedRecordErr MySQL重複レコードエラーかどうか
func IsMySQLDuplicatedRecordErr(err error) bool {
	mErr, ok := err.(*mysql.MySQLError)
	if !ok {
		return false
	}
	return mErr.Number == errMySQLDuplicatedRecord
}

// IsMySQLForeignKeyConstraintFailsError MySQL外部キー制約エラーかどうか
func IsMySQLForeignKeyConstraintFailsError(err error) bool {
	mErr, ok := err.(*mysql.MySQLError)
	if !ok {
		return false
	}
	return mErr.Number == errMySQLForeignKeyConstraintFails
}

// LimitAndOffset limit句とoffset句を指定します。値が0以下の場合は指定されません。
func LimitAndOffset(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}
		return db
	}
}
