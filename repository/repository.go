package repository

// Repository データリポジトリ
type Repository interface {
	Sync() (bool, error)
	PersonRepository
	CommunityRepository
	PostRepository
	CommentRepository
	CommentReportRepository
	PostReportRepository
}
