package gorm

import (
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jayvdb/lemmy/migration"
	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/repository"
	"github.com/jayvdb/lemmy/utils/random"
)

const (
	dbPrefix = "lemmy-test-repo-"
	common   = "common"
	common2  = "common2"
	ex1      = "ex1"
	ex2      = "ex2"
	rand     = "random"
)

var (
	repositories = map[string]*Repository{}
)

func TestMain(m *testing.M) {
	user := getEnvOrDefault("MARIADB_USERNAME", "root")
	pass := getEnvOrDefault("MARIADB_PASSWORD", "password")
	host := getEnvOrDefault("MARIADB_HOSTNAME", "127.0.0.1")
	port := getEnvOrDefault("MARIADB_PORT", "3306")
	dbs := []string{
		common,
		common2,
		ex1,
		ex2,
	}
	if err := migration.CreateDatabasesIfNotExists("mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=true", user, pass, host, port), dbPrefix, dbs...); err != nil {
		panic(err)
	}

	for _, key := range dbs {
		engine, err := gorm.Open(mysql.New(mysql.Config{
			DSN: fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", user, pass, host, port, fmt.Sprintf("%s%s", dbPrefix, key)),
		}))
		if err != nil {
			panic(err)
		}
		db, err := engine.DB()
		if err != nil {
			panic(err)
		}
		db.SetMaxOpenConns(20)
		engine.Logger = logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			Colorful:                  true,
			IgnoreRecordNotFoundError: true,
		})
		if err := migration.DropAll(engine); err != nil {
			panic(err)
		}

		repo, _, err := NewGormRepository(engine, hub.New(), zap.NewNop(), true)
		if err != nil {
			panic(err)
		}

		repositories[key] = repo.(*Repository)
	}

	// Execute tests
	code := m.Run()

	for _, v := range repositories {
		db, _ := v.db.DB()
		_ = db.Close()
		v.hub.Close()
	}
	os.Exit(code)
}

func setup(t *testing.T, repo string) (repository.Repository, *assert.Assertions, *require.Assertions) {
	t.Helper()
	r, ok := repositories[repo]
	if !ok {
		t.FailNow()
	}
	assert, require := assertAndRequire(t)
	return r, assert, require
}

func setupWithCommunity(t *testing.T, repo string) (repository.Repository, *assert.Assertions, *require.Assertions, *model.Person, *model.Community) {
	t.Helper()
	r, assert, require := setup(t, repo)
	return r, assert, require, mustMakePerson(t, r, rand), mustMakeCommunity(t, r, rand)
}

func getEnvOrDefault(env string, def string) string {
	s := os.Getenv(env)
	if len(s) == 0 {
		return def
	}
	return s
}

func getDB(repo repository.Repository) *gorm.DB {
	return repo.(*Repository).db
}

func assertAndRequire(t *testing.T) (*assert.Assertions, *require.Assertions) {
	return assert.New(t), require.New(t)
}

func mustMakePerson(t *testing.T, repo repository.Repository, name string) *model.Person {
	t.Helper()
	if name == rand {
		name = random.AlphaNumeric(32)
	}
	p, err := repo.CreatePerson(repository.CreatePersonArgs{Name: name})
	require.NoError(t, err)
	return p
}

func mustMakeAdmin(t *testing.T, repo repository.Repository, name string) *model.Person {
	t.Helper()
	if name == rand {
		name = random.AlphaNumeric(32)
	}
	p, err := repo.CreatePerson(repository.CreatePersonArgs{Name: name, Admin: true})
	require.NoError(t, err)
	return p
}

func mustMakeCommunity(t *testing.T, repo repository.Repository, name string) *model.Community {
	t.Helper()
	if name == rand {
		name = strings.ToLower(random.AlphaNumeric(20))
	}
	c, err := repo.CreateCommunity(repository.CreateCommunityArgs{Name: name, Title: "community"})
	require.NoError(t, err)
	return c
}

func mustMakePost(t *testing.T, repo repository.Repository, creatorID, communityID uuid.UUID) *model.Post {
	t.Helper()
	p, err := repo.CreatePost(repository.CreatePostArgs{
		Title:       "popopo",
		CreatorID:   creatorID,
		CommunityID: communityID,
	})
	require.NoError(t, err)
	return p
}

func mustMakeComment(t *testing.T, repo repository.Repository, creatorID, postID uuid.UUID) *model.Comment {
	t.Helper()
	c, err := repo.CreateComment(repository.CreateCommentArgs{
		CreatorID: creatorID,
		PostID:    postID,
		Content:   "popopo",
	})
	require.NoError(t, err)
	return c
}

func mustMakeCommentReport(t *testing.T, repo repository.Repository, creatorID, commentID uuid.UUID) *model.CommentReport {
	t.Helper()
	r, err := repo.CreateCommentReport(repository.CreateCommentReportArgs{
		CreatorID: creatorID,
		CommentID: commentID,
		Reason:    "spam",
	})
	require.NoError(t, err)
	return r
}

func mustMakePostReport(t *testing.T, repo repository.Repository, creatorID, postID uuid.UUID) *model.PostReport {
	t.Helper()
	r, err := repo.CreatePostReport(repository.CreatePostReportArgs{
		CreatorID: creatorID,
		PostID:    postID,
		Reason:    "spam",
	})
	require.NoError(t, err)
	return r
}

func mustAddModerator(t *testing.T, repo repository.Repository, communityID, personID uuid.UUID) {
	t.Helper()
	require.NoError(t, repo.AddCommunityModerator(communityID, personID))
}
