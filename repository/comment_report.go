package repository

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/model"
	"github.com/jayvdb/lemmy/utils/optional"
	"github.com/jayvdb/lemmy/utils/validator"
)

// CreateCommentReportArgs コメント通報作成引数
type CreateCommentReportArgs struct {
	CreatorID uuid.UUID
	CommentID uuid.UUID
	Reason    string
}

// Validate 構造体を検証します
func (args CreateCommentReportArgs) Validate() error {
	return vd.ValidateStruct(&args,
		vd.Field(&args.Reason, validator.ReportReasonRuleRequired...),
	)
}

// CommentReportQuery コメント通報リストの絞り込み条件
type CommentReportQuery struct {
	// CommunityID 有効の場合、このコミュニティの通報のみを返す
	CommunityID optional.Of[uuid.UUID]
	// CommentID 有効の場合、このコメントに対する通報のみを返す
	CommentID optional.Of[uuid.UUID]
	// UnresolvedOnly trueの場合、未解決の通報のみを古い順(FIFO)で返す。
	// falseの場合は全通報を新しい順で返す。
	UnresolvedOnly bool
	Page           ReportPage
}

// InCommunity コミュニティで絞り込みます
func (q CommentReportQuery) InCommunity(communityID uuid.UUID) CommentReportQuery {
	q.CommunityID = optional.From(communityID)
	return q
}

// ForComment コメントで絞り込みます
func (q CommentReportQuery) ForComment(commentID uuid.UUID) CommentReportQuery {
	q.CommentID = optional.From(commentID)
	return q
}

// CommentReportRepository コメント通報リポジトリ
type CommentReportRepository interface {
	// CreateCommentReport コメント通報を作成します
	//
	// 同じ通報者が同じコメントを既に通報している場合、ErrAlreadyExistsを返します。
	// 引数にuuid.Nilを渡した場合、ErrNilIDを返します。
	CreateCommentReport(args CreateCommentReportArgs) (*model.CommentReport, error)
	// GetCommentReport 指定した通報のビューを閲覧者視点で取得します
	//
	// ロールによるフィルタは行いません。アクセス制御が必要な呼び出し側は
	// 返却されたビューのコミュニティ・モデレーター情報を検査するか、リスト取得を使うこと。
	// 存在しない場合、ErrNotFoundを返します。
	GetCommentReport(reportID, viewerID uuid.UUID) (*model.CommentReportView, error)
	// GetCommentReports 条件に合致する通報のビューを順序付きで取得します
	//
	// 閲覧者が管理者でない場合、閲覧者がモデレーターであるコミュニティの通報のみを返します。
	// 該当なしの場合は空のスライスを返します(エラーではない)。
	// ページ指定が不正な場合、ErrInvalidArgsを返します。
	GetCommentReports(q CommentReportQuery, viewer ReportViewer) ([]*model.CommentReportView, error)
	// GetCommentReportCount 閲覧者に見える未解決のコメント通報数を返します
	//
	// communityIDが有効の場合、そのコミュニティに限定します。
	// 閲覧者が管理者でない場合、閲覧者がモデレーターであるコミュニティに限定します。
	GetCommentReportCount(viewerID uuid.UUID, isAdmin bool, communityID optional.Of[uuid.UUID]) (int64, error)
	// ResolveCommentReport 通報を解決済みにし、解決後のビューを解決者視点で返します
	//
	// 解決済みの通報を再度解決した場合、解決者と解決日時は上書きされます(last-resolver-wins)。
	// 存在しない場合、ErrNotFoundを返します。
	ResolveCommentReport(reportID, actorID uuid.UUID) (*model.CommentReportView, error)
}
