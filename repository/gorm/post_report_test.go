package gorm

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jayvdb/lemmy/repository"
	"github.com/jayvdb/lemmy/utils/optional"
)

func TestRepository_CreatePostReport(t *testing.T) {
	t.Parallel()
	repo, _, _, reporter, community := setupWithCommunity(t, common)

	author := mustMakePerson(t, repo, rand)
	post, err := repo.CreatePost(repository.CreatePostArgs{
		Title:       "original title",
		Body:        "original body",
		CreatorID:   author.ID,
		CommunityID: community.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Success", func(t *testing.T) {
		r, err := repo.CreatePostReport(repository.CreatePostReportArgs{
			CreatorID: reporter.ID,
			PostID:    post.ID,
			Reason:    "misleading",
		})
		if assert, _ := assertAndRequire(t); assert.NoError(err) {
			assert.False(r.Resolved)
			// 通報時点のタイトルと本文が保全される
			assert.Equal("original title", r.OriginalPostTitle)
			assert.Equal("original body", r.OriginalPostBody)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := repo.CreatePostReport(repository.CreatePostReportArgs{
			CreatorID: reporter.ID,
			PostID:    post.ID,
			Reason:    "again",
		})
		assert.ErrorIs(t, err, repository.ErrAlreadyExists)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		_, err := repo.CreatePostReport(repository.CreatePostReportArgs{
			CreatorID: reporter.ID,
			PostID:    uuid.Must(uuid.NewV4()),
			Reason:    "x",
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

// 投稿通報ビューのシナリオ一式。順序依存のためex2を専有する。
func TestRepository_PostReportViews(t *testing.T) {
	repo, assert, require := setup(t, ex2)

	mod := mustMakePerson(t, repo, rand)
	admin := mustMakeAdmin(t, repo, rand)
	reporter := mustMakePerson(t, repo, rand)
	author := mustMakePerson(t, repo, rand)

	community := mustMakeCommunity(t, repo, rand)
	other := mustMakeCommunity(t, repo, rand)
	mustAddModerator(t, repo, community.ID, mod.ID)

	p1 := mustMakePost(t, repo, author.ID, community.ID)
	p2 := mustMakePost(t, repo, author.ID, other.ID)

	r1 := mustMakePostReport(t, repo, reporter.ID, p1.ID)
	time.Sleep(10 * time.Millisecond)
	r2 := mustMakePostReport(t, repo, reporter.ID, p2.ID)

	require.NoError(repo.BanPersonFromCommunity(community.ID, author.ID, optional.Of[time.Time]{}))
	require.NoError(repo.SavePost(mod.ID, p1.ID))
	require.NoError(repo.LikePost(mod.ID, p1.ID, 1))

	t.Run("GetPostReport", func(t *testing.T) {
		v, err := repo.GetPostReport(r1.ID, mod.ID)
		require.NoError(err)
		assert.EqualValues(r1.ID, v.Report.ID)
		assert.EqualValues(p1.ID, v.Post.ID)
		assert.EqualValues(community.ID, v.Community.ID)
		assert.EqualValues(reporter.ID, v.Creator.ID)
		assert.EqualValues(author.ID, v.PostCreator.ID)
		assert.EqualValues(p1.ID, v.Counts.PostID)
		assert.EqualValues(1, v.Counts.Upvotes)
		assert.True(v.CreatorBannedFromCommunity)
		assert.True(v.Saved)
		assert.Equal(optional.From(1), v.MyVote)
		assert.Nil(v.Resolver)
	})

	t.Run("GetPostReports", func(t *testing.T) {
		t.Run("AdminNewestFirst", func(t *testing.T) {
			vs, err := repo.GetPostReports(repository.PostReportQuery{}, repository.ReportViewer{PersonID: admin.ID, IsAdmin: true})
			require.NoError(err)
			if assert.Len(vs, 2) {
				assert.EqualValues(r2.ID, vs[0].Report.ID)
				assert.EqualValues(r1.ID, vs[1].Report.ID)
			}
		})

		t.Run("AdminUnresolvedFIFO", func(t *testing.T) {
			vs, err := repo.GetPostReports(repository.PostReportQuery{UnresolvedOnly: true}, repository.ReportViewer{PersonID: admin.ID, IsAdmin: true})
			require.NoError(err)
			if assert.Len(vs, 2) {
				assert.EqualValues(r1.ID, vs[0].Report.ID)
				assert.EqualValues(r2.ID, vs[1].Report.ID)
			}
		})

		t.Run("ModeratorScoped", func(t *testing.T) {
			vs, err := repo.GetPostReports(repository.PostReportQuery{}, repository.ReportViewer{PersonID: mod.ID})
			require.NoError(err)
			if assert.Len(vs, 1) {
				assert.EqualValues(r1.ID, vs[0].Report.ID)
			}
		})

		t.Run("FilterByPost", func(t *testing.T) {
			vs, err := repo.GetPostReports(repository.PostReportQuery{}.ForPost(p2.ID), repository.ReportViewer{PersonID: admin.ID, IsAdmin: true})
			require.NoError(err)
			if assert.Len(vs, 1) {
				assert.EqualValues(r2.ID, vs[0].Report.ID)
			}
		})

		t.Run("InvalidLimit", func(t *testing.T) {
			q := repository.PostReportQuery{
				Page: repository.ReportPage{Limit: optional.From(0)},
			}
			_, err := repo.GetPostReports(q, repository.ReportViewer{PersonID: admin.ID, IsAdmin: true})
			assert.ErrorIs(err, repository.ErrInvalidArgs)
		})
	})

	t.Run("GetPostReportCount", func(t *testing.T) {
		count, err := repo.GetPostReportCount(mod.ID, false, optional.Of[uuid.UUID]{})
		require.NoError(err)
		assert.EqualValues(1, count)

		count, err = repo.GetPostReportCount(admin.ID, true, optional.Of[uuid.UUID]{})
		require.NoError(err)
		assert.EqualValues(2, count)
	})

	t.Run("ResolvePostReport", func(t *testing.T) {
		v, err := repo.ResolvePostReport(r1.ID, mod.ID)
		require.NoError(err)
		assert.True(v.Report.Resolved)
		if assert.NotNil(v.Resolver) {
			assert.EqualValues(mod.ID, v.Resolver.ID)
		}

		count, err := repo.GetPostReportCount(admin.ID, true, optional.Of[uuid.UUID]{})
		require.NoError(err)
		assert.EqualValues(1, count)

		t.Run("ResolverOverwrite", func(t *testing.T) {
			v, err := repo.ResolvePostReport(r1.ID, admin.ID)
			require.NoError(err)
			if assert.NotNil(v.Resolver) {
				assert.EqualValues(admin.ID, v.Resolver.ID)
			}
		})

		t.Run("NotFound", func(t *testing.T) {
			_, err := repo.ResolvePostReport(uuid.Must(uuid.NewV4()), admin.ID)
			assert.ErrorIs(err, repository.ErrNotFound)
		})
	})
}
