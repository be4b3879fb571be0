package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/utils/optional"
	"github.com/jayvdb/lemmy/utils/validator"
)

// CreatePostReportArgs 投稿通報作成引数
type CreatePostReportArgs struct {
	CreatorID uuid.UUID
	PostID    uuid.UUID
	Reason    string
}

// Validate 構造体を検証します
func (args CreatePostReportArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Reason, validator.ReportReasonRuleRequired...),
	)
}

// PostReportQuery 投稿通報リストの絞り込み条件
type PostReportQuery struct {
	// CommunityID 有効の場合、このコミュニティの通報のみを返す
	CommunityID optional.Of[uuid.UUID]
	// PostID 有効の場合、この投稿に対する通報のみを返す
	PostID optional.Of[uuid.UUID]
	// UnresolvedOnly trueの場合、未解決の通報のみを古い順(FIFO)で返す。
	// falseの場合は全通報を新しい順で返す。
	UnresolvedOnly bool
	Page           ReportPage
}

// InCommunity コミュニティで絞り込みます
func (q PostReportQuery) InCommunity(communityID uuid.UUID) PostReportQuery {
	q.CommunityID = optional.From(communityID)
	return q
}

// ForPost 投稿で絞り込みます
func (q PostReportQuery) ForPost(postID uuid.UUID) PostReportQuery {
	q.PostID = optional.From(postID)
	return q
}

// PostReportRepository 投稿通報リポジトリ
type PostReportRepository interface {
	// CreatePostReport 投稿通報を作成します
	//
	// 同じ通報者が同じ投稿を既に通報している場合、ErrAlreadyExistsを返します。
	// 引数にuuid.Nilを渡した場合、ErrNilIDを返します。
	CreatePostReport(args CreatePostReportArgs) (*model.PostReport, error)
	// GetPostReport 指定した通報のビューを閲覧者視点で取得します
	//
	// ロールによるフィルタは行いません。存在しない場合、ErrNotFoundを返します。
	GetPostReport(reportID, viewerID uuid.UUID) (*model.PostReportView, error)
	// GetPostReports 条件に合致する通報のビューを順序付きで取得します
	//
	// 閲覧者が管理者でない場合、閲覧者がモデレーターであるコミュニティの通報のみを返します。
	// ページ指定が不正な場合、ErrInvalidArgsを返します。
	GetPostReports(q PostReportQuery, viewer ReportViewer) ([]*model.PostReportView, error)
	// GetPostReportCount 閲覧者に見える未解決の投稿通報数を返します
	GetPostReportCount(viewerID uuid.UUID, isAdmin bool, communityID optional.Of[uuid.UUID]) (int64, error)
	// ResolvePostReport 通報を解決済みにし、解決後のビューを解決者視点で返します
	//
	// 解決済みの通報を再度解決した場合、解決者と解決日時は上書きされます(last-resolver-wins)。
	// 存在しない場合、ErrNotFoundを返します。
	ResolvePostReport(reportID, actorID uuid.UUID) (*model.PostReportView, error)
}
