package counter

import (
	"fmt"
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

	"github.com/jayvdb/lemmy/migration"
	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/repository"
	repogorm "github.com/jayvdb/lemmy/repository/gorm"
	"github.com/jayvdb/lemmy/utils/random"
)

const dbName = "lemmy-test-counter"

var (
	testRepo repository.Repository
	testDB   *gorm.DB
	testHub  *hub.Hub
)

func TestMain(m *testing.M) {
	user := getEnvOrDefault("MARIADB_USERNAME", "root")
	pass := getEnvOrDefault("MARIADB_PASSWORD", "password")
	host := getEnvOrDefault("MARIADB_HOSTNAME", "127.0.0.1")
	port := getEnvOrDefault("MARIADB_PORT", "3306")

	if err := migration.CreateDatabasesIfNotExists("mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/?charset=utf8mb4&parseTime=true", user, pass, host, port), "", dbName); err != nil {
		panic(err)
	}

	engine, err := gorm.Open(mysql.New(mysql.Config{
		DSN: fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true", user, pass, host, port, dbName),
	}))
	if err != nil {
		panic(err)
	}
	if err := migration.DropAll(engine); err != nil {
		panic(err)
	}

	testHub = hub.New()
	repo, _, err := repogorm.NewGormRepository(engine, testHub, zap.NewNop(), true)
	if err != nil {
		panic(err)
	}
	testRepo = repo
	testDB = engine

	code := m.Run()

	db, _ := engine.DB()
	_ = db.Close()
	testHub.Close()
	os.Exit(code)
}

func getEnvOrDefault(env string, def string) string {
	s := os.Getenv(env)
	if len(s) == 0 {
		return def
	}
	return s
}

func mustMakePerson(t *testing.T) *model.Person {
	t.Helper()
	p, err := testRepo.CreatePerson(repository.CreatePersonArgs{Name: random.AlphaNumeric(20)})
	require.NoError(t, err)
	return p
}

func mustMakeAdmin(t *testing.T) *model.Person {
	t.Helper()
	p, err := testRepo.CreatePerson(repository.CreatePersonArgs{Name: random.AlphaNumeric(20), Admin: true})
	require.NoError(t, err)
	return p
}

func mustMakeComment(t *testing.T, creatorID uuid.UUID) *model.Comment {
	t.Helper()
	community, err := testRepo.CreateCommunity(repository.CreateCommunityArgs{Name: strings.ToLower(random.AlphaNumeric(20))})
	require.NoError(t, err)
	post, err := testRepo.CreatePost(repository.CreatePostArgs{
		Title:       "post",
		CreatorID:   creatorID,
		CommunityID: community.ID,
	})
	require.NoError(t, err)
	comment, err := testRepo.CreateComment(repository.CreateCommentArgs{
		CreatorID: creatorID,
		PostID:    post.ID,
		Content:   "comment",
	})
	require.NoError(t, err)
	return comment
}

func mustMakePost(t *testing.T, creatorID uuid.UUID) *model.Post {
	t.Helper()
	community, err := testRepo.CreateCommunity(repository.CreateCommunityArgs{Name: strings.ToLower(random.AlphaNumeric(20))})
	require.NoError(t, err)
	post, err := testRepo.CreatePost(repository.CreatePostArgs{
		Title:       "post",
		CreatorID:   creatorID,
		CommunityID: community.ID,
	})
	require.NoError(t, err)
	return post
}

func waitForCount(t *testing.T, get func() int, expected int) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if get() == expected {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("count did not reach %d (got %d)", expected, get())
}

func TestReportCounter(t *testing.T) {
	admin := mustMakeAdmin(t)
	reporter := mustMakePerson(t)
	author := mustMakePerson(t)

	counter, err := NewReportCounter(testDB, testHub)
	require.NoError(t, err)
	assert.Equal(t, 0, counter.GetCommentReports())
	assert.Equal(t, 0, counter.GetPostReports())

	cm1 := mustMakeComment(t, author.ID)
	cm2 := mustMakeComment(t, author.ID)
	cr1, err := testRepo.CreateCommentReport(repository.CreateCommentReportArgs{CreatorID: reporter.ID, CommentID: cm1.ID, Reason: "spam"})
	require.NoError(t, err)
	_, err = testRepo.CreateCommentReport(repository.CreateCommentReportArgs{CreatorID: reporter.ID, CommentID: cm2.ID, Reason: "spam"})
	require.NoError(t, err)
	waitForCount(t, counter.GetCommentReports, 2)

	p1 := mustMakePost(t, author.ID)
	pr1, err := testRepo.CreatePostReport(repository.CreatePostReportArgs{CreatorID: reporter.ID, PostID: p1.ID, Reason: "spam"})
	require.NoError(t, err)
	waitForCount(t, counter.GetPostReports, 1)

	t.Run("ResolveDecrementsOnce", func(t *testing.T) {
		_, err := testRepo.ResolveCommentReport(cr1.ID, admin.ID)
		require.NoError(t, err)
		waitForCount(t, counter.GetCommentReports, 1)

		// 解決済み通報の再解決は件数を変えない
		_, err = testRepo.ResolveCommentReport(cr1.ID, reporter.ID)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, 1, counter.GetCommentReports())
	})

	t.Run("PostResolveDecrementsOnce", func(t *testing.T) {
		_, err := testRepo.ResolvePostReport(pr1.ID, admin.ID)
		require.NoError(t, err)
		waitForCount(t, counter.GetPostReports, 0)

		_, err = testRepo.ResolvePostReport(pr1.ID, reporter.ID)
		require.NoError(t, err)
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, 0, counter.GetPostReports())
	})

	t.Run("SeedsFromStore", func(t *testing.T) {
		seeded, err := NewReportCounter(testDB, testHub)
		require.NoError(t, err)
		assert.Equal(t, 1, seeded.GetCommentReports())
		assert.Equal(t, 0, seeded.GetPostReports())
	})
}
