package counter

import (
	"fmt"
	"sync"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	"github.com/jayvdb/lemmy/event"
	"github.com/jayvdb/lemmy/model"
)

var unresolvedReportsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "lemmy",
	Name:      "unresolved_reports",
}, []string{"type"})

// ReportCounter 未解決通報数カウンタ
type ReportCounter interface {
	// GetCommentReports 未解決のコメント通報数を返します
	GetCommentReports() int
	// GetPostReports 未解決の投稿通報数を返します
	GetPostReports() int
}

type reportCounterImpl struct {
	commentReports int
	postReports    int
	mu             sync.RWMutex
}

// NewReportCounter 未解決通報数カウンタを生成します
func NewReportCounter(db *gorm.DB, hub *hub.Hub) (ReportCounter, error) {
	impl := &reportCounterImpl{}

	var count int64
	if err := db.Model(&model.CommentReport{}).Where("resolved = FALSE").Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to load unresolved comment reports count: %w", err)
	}
	impl.commentReports = int(count)
	if err := db.Model(&model.PostReport{}).Where("resolved = FALSE").Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to load unresolved post reports count: %w", err)
	}
	impl.postReports = int(count)

	unresolvedReportsGauge.WithLabelValues("comment").Set(float64(impl.commentReports))
	unresolvedReportsGauge.WithLabelValues("post").Set(float64(impl.postReports))

	go func() {
		events := hub.Subscribe(8,
			event.CommentReportCreated,
			event.CommentReportResolved,
			event.PostReportCreated,
			event.PostReportResolved,
		)
		for e := range events.Receiver {
			switch e.Topic() {
			case event.CommentReportCreated:
				impl.addCommentReports(1)
			case event.CommentReportResolved:
				impl.addCommentReports(-1)
			case event.PostReportCreated:
				impl.addPostReports(1)
			case event.PostReportResolved:
				impl.addPostReports(-1)
			}
		}
	}()
	return impl, nil
}

func (c *reportCounterImpl) GetCommentReports() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.commentReports
}

func (c *reportCounterImpl) GetPostReports() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.postReports
}

func (c *reportCounterImpl) addCommentReports(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commentReports += n
	if c.commentReports < 0 {
		c.commentReports = 0
	}
	unresolvedReportsGauge.WithLabelValues("comment").Set(float64(c.commentReports))
}

func (c *reportCounterImpl) addPostReports(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.postReports += n
	if c.postReports < 0 {
		c.postReports = 0
	}
	unresolvedReportsGauge.WithLabelValues("post").Set(float64(c.postReports))
}
