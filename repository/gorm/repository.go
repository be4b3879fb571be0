package gorm

import (
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jayvdb/lemmy/migration"
	"github.com/jayvdb/lemmy/repository"
)

// Repository リポジトリ実装
type Repository struct {
	db     *gorm.DB
	hub    *hub.Hub
	logger *zap.Logger
}

// Sync implements Repository interface.
func (repo *Repository) Sync() (init bool, err error) {
	return migration.Migrate(repo.db)
}

// NewGormRepository リポジトリ実装を初期化して生成します。doSyncがtrueの場合はマイグレーションを実行します。
func NewGormRepository(db *gorm.DB, hub *hub.Hub, logger *zap.Logger, doSync bool) (repository.Repository, bool, error) {
	repo := &Repository{
		db:     db,
		hub:    hub,
		logger: logger.Named("repository"),
	}
	if doSync {
		init, err := repo.Sync()
		if err != nil {
			return nil, false, err
		}
		return repo, init, nil
	}
	return repo, false, nil
}
