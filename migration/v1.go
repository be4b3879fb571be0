package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v1 通報テーブルへの複合インデックス追加
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			if err := db.Exec("CREATE INDEX `idx_comment_reports_resolved_created_at` ON `comment_reports` (`resolved`, `created_at`)").Error; err != nil {
				return err
			}
			return db.Exec("CREATE INDEX `idx_post_reports_resolved_created_at` ON `post_reports` (`resolved`, `created_at`)").Error
		},
	}
}
