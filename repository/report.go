package repository

import (
	"github.com/gofrs/uuid"

	"github.com/jayvdb/lemmy/utils/optional"
)

const (
	// DefaultReportLimit 通報リストの1ページあたりのデフォルト件数
	DefaultReportLimit = 10
	// MaxReportLimit 通報リストの1ページあたりの最大件数
	MaxReportLimit = 50
)

// ReportViewer 通報を閲覧する利用者
type ReportViewer struct {
	PersonID uuid.UUID
	// IsAdmin trueの場合、モデレーター権限によるフィルタを受けない
	IsAdmin bool
}

// ReportPage 通報リストのページ指定
type ReportPage struct {
	// Page 1始まりのページ番号
	Page optional.Of[int]
	// Limit 1ページあたりの件数 [1, MaxReportLimit]
	Limit optional.Of[int]
}

// LimitAndOffset ページ指定をlimit/offsetに変換します
//
// Pageが無効の場合は1、Limitが無効の場合はDefaultReportLimitとして扱います。
// Pageが1未満、またはLimitが範囲外の場合、ErrInvalidArgsを返します。
func (p ReportPage) LimitAndOffset() (limit, offset int, err error) {
	page := 1
	if p.Page.Valid {
		if p.Page.V < 1 {
			return 0, 0, ErrInvalidArgs
		}
		page = p.Page.V
	}

	limit = DefaultReportLimit
	if p.Limit.Valid {
		if p.Limit.V < 1 || p.Limit.V > MaxReportLimit {
			return 0, 0, ErrInvalidArgs
		}
		limit = p.Limit.V
	}

	return limit, limit * (page - 1), nil
}
