package gorm

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/jayvdb/lemmy/event"
	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/repository"
	"github.com/jayvdb/lemmy/utils/gormutil"
	"github.com/jayvdb/lemmy/utils/optional"
)

// postReportViewRow ビュー1行分のスキャン先
type postReportViewRow struct {
	Report    model.PostReport     `gorm:"embedded;embeddedPrefix:report_"`
	Post      model.Post           `gorm:"embedded;embeddedPrefix:post_"`
	Community model.Community      `gorm:"embedded;embeddedPrefix:community_"`
	Creator   model.Person         `gorm:"embedded;embeddedPrefix:creator_"`
	Author    model.Person         `gorm:"embedded;embeddedPrefix:author_"`
	Counts    model.PostAggregates `gorm:"embedded;embeddedPrefix:counts_"`
	Resolver  nullablePersonRow    `gorm:"embedded;embeddedPrefix:resolver_"`

	CreatorBannedFromCommunity bool
	CreatorIsModerator         bool
	CreatorIsAdmin             bool
	CreatorBlocked             bool
	Subscribed                 model.SubscribedType
	Saved                      bool
	MyVote                     optional.Of[int]
}

func (r *postReportViewRow) toView() *model.PostReportView {
	return &model.PostReportView{
		Report:      r.Report,
		Post:        r.Post,
		Community:   r.Community,
		Creator:     r.Creator,
		PostCreator: r.Author,
		Counts:      r.Counts,

		CreatorBannedFromCommunity: r.CreatorBannedFromCommunity,
		CreatorIsModerator:         r.CreatorIsModerator,
		CreatorIsAdmin:             r.CreatorIsAdmin,
		CreatorBlocked:             r.CreatorBlocked,
		Subscribed:                 r.Subscribed,
		Saved:                      r.Saved,
		MyVote:                     r.MyVote,
		Resolver:                   r.Resolver.toPerson(),
	}
}

const postReportViewSelect = `
	post_reports.id AS report_id,
	post_reports.creator_id AS report_creator_id,
	post_reports.post_id AS report_post_id,
	post_reports.original_post_title AS report_original_post_title,
	post_reports.original_post_body AS report_original_post_body,
	post_reports.reason AS report_reason,
	post_reports.resolved AS report_resolved,
	post_reports.resolver_id AS report_resolver_id,
	post_reports.created_at AS report_created_at,
	post_reports.updated_at AS report_updated_at,
	posts.id AS post_id,
	posts.title AS post_title,
	posts.body AS post_body,
	posts.creator_id AS post_creator_id,
	posts.community_id AS post_community_id,
	posts.created_at AS post_created_at,
	posts.updated_at AS post_updated_at,
	communities.id AS community_id,
	communities.name AS community_name,
	communities.title AS community_title,
	communities.description AS community_description,
	communities.visibility AS community_visibility,
	communities.created_at AS community_created_at,
	communities.updated_at AS community_updated_at,
	reporter.id AS creator_id,
	reporter.name AS creator_name,
	reporter.display_name AS creator_display_name,
	reporter.banned AS creator_banned,
	reporter.deleted AS creator_deleted,
	reporter.bot_account AS creator_bot_account,
	reporter.created_at AS creator_created_at,
	reporter.updated_at AS creator_updated_at,
	author.id AS author_id,
	author.name AS author_name,
	author.display_name AS author_display_name,
	author.banned AS author_banned,
	author.deleted AS author_deleted,
	author.bot_account AS author_bot_account,
	author.created_at AS author_created_at,
	author.updated_at AS author_updated_at,
	post_aggregates.post_id AS counts_post_id,
	post_aggregates.score AS counts_score,
	post_aggregates.upvotes AS counts_upvotes,
	post_aggregates.downvotes AS counts_downvotes,
	post_aggregates.comment_count AS counts_comment_count,
	post_aggregates.hot_rank AS counts_hot_rank,
	resolver.id AS resolver_id,
	resolver.name AS resolver_name,
	resolver.display_name AS resolver_display_name,
	resolver.banned AS resolver_banned,
	resolver.deleted AS resolver_deleted,
	resolver.bot_account AS resolver_bot_account,
	resolver.created_at AS resolver_created_at,
	resolver.updated_at AS resolver_updated_at,
	(author_ban.person_id IS NOT NULL AND (author_ban.expires IS NULL OR author_ban.expires > NOW(6))) AS creator_banned_from_community,
	author_moderator.person_id IS NOT NULL AS creator_is_moderator,
	author_local_user.id IS NOT NULL AS creator_is_admin,
	viewer_block.person_id IS NOT NULL AS creator_blocked,
	CASE
		WHEN viewer_follow.person_id IS NULL THEN 'not_subscribed'
		WHEN viewer_follow.pending THEN 'pending'
		ELSE 'subscribed'
	END AS subscribed,
	viewer_save.person_id IS NOT NULL AS saved,
	viewer_like.score AS my_vote`

// postReportViewQuery 点取得・リスト取得が共有する結合形を組み立てます
func (repo *Repository) postReportViewQuery(viewerID uuid.UUID) *gorm.DB {
	return repo.db.
		Table("post_reports").
		Joins("INNER JOIN posts ON posts.id = post_reports.post_id").
		Joins("INNER JOIN communities ON communities.id = posts.community_id").
		Joins("INNER JOIN persons reporter ON reporter.id = post_reports.creator_id").
		Joins("INNER JOIN persons author ON author.id = posts.creator_id").
		Joins("INNER JOIN post_aggregates ON post_aggregates.post_id = post_reports.post_id").
		Joins("LEFT JOIN persons resolver ON resolver.id = post_reports.resolver_id").
		Joins("LEFT JOIN local_users author_local_user ON author_local_user.person_id = posts.creator_id AND author_local_user.admin = TRUE").
		Joins("LEFT JOIN community_moderators author_moderator ON author_moderator.community_id = posts.community_id AND author_moderator.person_id = posts.creator_id").
		Joins("LEFT JOIN community_person_bans author_ban ON author_ban.community_id = posts.community_id AND author_ban.person_id = posts.creator_id").
		Joins("LEFT JOIN community_moderators viewer_moderator ON viewer_moderator.community_id = posts.community_id AND viewer_moderator.person_id = ?", viewerID).
		Joins("LEFT JOIN community_follows viewer_follow ON viewer_follow.community_id = posts.community_id AND viewer_follow.person_id = ?", viewerID).
		Joins("LEFT JOIN person_blocks viewer_block ON viewer_block.person_id = ? AND viewer_block.target_id = posts.creator_id", viewerID).
		Joins("LEFT JOIN post_saves viewer_save ON viewer_save.post_id = post_reports.post_id AND viewer_save.person_id = ?", viewerID).
		Joins("LEFT JOIN post_likes viewer_like ON viewer_like.post_id = post_reports.post_id AND viewer_like.person_id = ?", viewerID).
		Select(postReportViewSelect)
}

// CreatePostReport implements PostReportRepository interface.
func (repo *Repository) CreatePostReport(args repository.CreatePostReportArgs) (*model.PostReport, error) {
	if args.CreatorID == uuid.Nil || args.PostID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if err := args.Validate(); err != nil {
		return nil, err
	}

	r := &model.PostReport{}
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var p model.Post
		if err := tx.First(&p, &model.Post{ID: args.PostID}).Error; err != nil {
			return convertError(err)
		}
		// 通報時点の投稿内容を保全する
		*r = model.PostReport{
			ID:                uuid.Must(uuid.NewV7()),
			CreatorID:         args.CreatorID,
			PostID:            args.PostID,
			OriginalPostTitle: p.Title,
			OriginalPostBody:  p.Body,
			Reason:            args.Reason,
		}
		if err := tx.Create(r).Error; err != nil {
			if gormutil.IsMySQLDuplicatedRecordErr(err) {
				return repository.ErrAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	repo.hub.Publish(hub.Message{
		Name: event.PostReportCreated,
		Fields: hub.Fields{
			"report_id": r.ID,
			"report":    r,
		},
	})
	return r, nil
}

// GetPostReport implements PostReportRepository interface.
func (repo *Repository) GetPostReport(reportID, viewerID uuid.UUID) (*model.PostReportView, error) {
	if reportID == uuid.Nil || viewerID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	var row postReportViewRow
	err := repo.postReportViewQuery(viewerID).
		Where("post_reports.id = ?", reportID).
		Take(&row).
		Error
	if err != nil {
		return nil, convertError(err)
	}
	return row.toView(), nil
}

// GetPostReports implements PostReportRepository interface.
func (repo *Repository) GetPostReports(q repository.PostReportQuery, viewer repository.ReportViewer) ([]*model.PostReportView, error) {
	if viewer.PersonID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	limit, offset, err := q.Page.LimitAndOffset()
	if err != nil {
		return nil, err
	}

	tx := repo.postReportViewQuery(viewer.PersonID)
	if q.CommunityID.Valid {
		tx = tx.Where("posts.community_id = ?", q.CommunityID.V)
	}
	if q.PostID.Valid {
		tx = tx.Where("post_reports.post_id = ?", q.PostID.V)
	}

	// 未解決のみの場合は古い順(先入れ先出し)、全件の場合は新しい順
	if q.UnresolvedOnly {
		tx = tx.Where("post_reports.resolved = FALSE").Order("post_reports.created_at")
	} else {
		tx = tx.Order("post_reports.created_at DESC")
	}

	// 管理者以外は自身がモデレーターであるコミュニティの通報のみ
	if !viewer.IsAdmin {
		tx = tx.Where("viewer_moderator.person_id IS NOT NULL")
	}

	rows := make([]*postReportViewRow, 0)
	if err := tx.Scopes(gormutil.LimitAndOffset(limit, offset)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r *postReportViewRow, _ int) *model.PostReportView {
		return r.toView()
	}), nil
}

// GetPostReportCount implements PostReportRepository interface.
func (repo *Repository) GetPostReportCount(viewerID uuid.UUID, isAdmin bool, communityID optional.Of[uuid.UUID]) (int64, error) {
	if viewerID == uuid.Nil {
		return 0, repository.ErrNilID
	}
	tx := repo.db.
		Table("post_reports").
		Joins("INNER JOIN posts ON posts.id = post_reports.post_id").
		Where("post_reports.resolved = FALSE")
	if communityID.Valid {
		tx = tx.Where("posts.community_id = ?", communityID.V)
	}
	if !isAdmin {
		// リスト取得と異なり、モデレーター絞り込みは内部結合で行う
		tx = tx.Joins("INNER JOIN community_moderators ON community_moderators.community_id = posts.community_id AND community_moderators.person_id = ?", viewerID)
	}
	var count int64
	return count, tx.Count(&count).Error
}

// ResolvePostReport implements PostReportRepository interface.
func (repo *Repository) ResolvePostReport(reportID, actorID uuid.UUID) (*model.PostReportView, error) {
	if reportID == uuid.Nil || actorID == uuid.Nil {
		return nil, repository.ErrNilID
	}
	var alreadyResolved bool
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		var r model.PostReport
		if err := tx.First(&r, &model.PostReport{ID: reportID}).Error; err != nil {
			return convertError(err)
		}
		// 解決済みの再解決は解決者を上書きする
		alreadyResolved = r.Resolved
		return tx.
			Model(&r).
			Updates(map[string]interface{}{
				"resolved":    true,
				"resolver_id": actorID,
				"updated_at":  time.Now(),
			}).
			Error
	})
	if err != nil {
		return nil, err
	}

	v, err := repo.GetPostReport(reportID, actorID)
	if err != nil {
		return nil, err
	}
	// 未解決から解決への遷移時のみイベントを発行する
	if !alreadyResolved {
		repo.hub.Publish(hub.Message{
			Name: event.PostReportResolved,
			Fields: hub.Fields{
				"report_id":   reportID,
				"resolver_id": actorID,
			},
		})
	}
	return v, nil
}
