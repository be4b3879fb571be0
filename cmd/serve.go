package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	repogorm "github.com/jayvdb/lemmy/repository/gorm"
	"github.com/jayvdb/lemmy/service/counter"
)

// serveCommand 通報エンジン起動コマンド
//
// マイグレーション実行後、通報イベントを購読してメトリクスを公開し続ける。
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the report engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getLogger()
			defer logger.Sync()

			engine, err := c.getDatabase(logger)
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				return err
			}
			defer db.Close()

			h := hub.New()
			defer h.Close()

			_, init, err := repogorm.NewGormRepository(engine, h, logger, true)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			if init {
				logger.Info("database initialized")
			}

			if _, err := counter.NewReportCounter(engine, h); err != nil {
				logger.Fatal("failed to initialize report counter", zap.Error(err))
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", c.Port),
				Handler: mux,
			}
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("metrics server error", zap.Error(err))
				}
			}()

			logger.Info("lemmy started", zap.String("version", Version+"."+Revision))

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt)
			<-quit

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			return nil
		},
	}
}
