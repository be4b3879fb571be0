package migration

import (
	"database/sql"
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate データベースマイグレーションを実行します
//
// スキーマが空の場合は最新のスキーマを直接構築し、initにtrueを返します。
func Migrate(db *gorm.DB) (init bool, err error) {
	m := gormigrate.New(db, &gormigrate.Options{
		TableName:      "migrations",
		IDColumnName:   "id",
		IDColumnSize:   190,
		UseTransaction: false,
	}, Migrations())
	m.InitSchema(func(db *gorm.DB) error {
		// 初回のみに呼ばれる
		// 全ての最新のデータベース定義を書く事
		init = true

		// テーブル
		if err := db.AutoMigrate(AllTables()...); err != nil {
			return err
		}

		// 外部キー制約
		for _, c := range AllForeignKeys() {
			if err := db.Exec(fmt.Sprintf(
				"ALTER TABLE `%s` ADD CONSTRAINT `%s` FOREIGN KEY (`%s`) REFERENCES %s ON DELETE %s ON UPDATE %s",
				c[0], fmt.Sprintf("fk_%s_%s", c[0], c[1]), c[1], c[2], c[3], c[4],
			)).Error; err != nil {
				return err
			}
		}

		return nil
	})
	return init, m.Migrate()
}

// CreateDatabasesIfNotExists データベースが存在しなければ作成します
func CreateDatabasesIfNotExists(dialect, dsn, prefix string, names ...string) error {
	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, v := range names {
		_, err = conn.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s%s` CHARACTER SET = utf8mb4", prefix, v))
		if err != nil {
			return err
		}
	}
	return nil
}

// DropAll データベースの全テーブルを削除します
func DropAll(db *gorm.DB) error {
	if err := db.Exec("SET FOREIGN_KEY_CHECKS = 0").Error; err != nil {
		return err
	}
	defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")

	if err := db.Migrator().DropTable(AllTables()...); err != nil {
		return err
	}
	return db.Migrator().DropTable("migrations")
}
