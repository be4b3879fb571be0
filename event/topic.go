package event

const (
	// CommentReportCreated コメント通報が作成された
	// 	Fields:
	// 		report_id: uuid.UUID
	// 		report: *model.CommentReport
	CommentReportCreated = "comment_report.created"
	// CommentReportResolved コメント通報が解決済みになった
	// 	Fields:
	// 		report_id: uuid.UUID
	// 		resolver_id: uuid.UUID
	CommentReportResolved = "comment_report.resolved"
	// PostReportCreated 投稿通報が作成された
	// 	Fields:
	// 		report_id: uuid.UUID
	// 		report: *model.PostReport
	PostReportCreated = "post_report.created"
	// PostReportResolved 投稿通報が解決済みになった
	// 	Fields:
	// 		report_id: uuid.UUID
	// 		resolver_id: uuid.UUID
	PostReportResolved = "post_report.resolved"
)
