package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jayvdb/lemmy/migration"
)

// migrateCommand スキーママイグレーションコマンド
func migrateCommand() *cobra.Command {
	var dropDB bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := getLogger()
			defer logger.Sync()

			engine, err := c.getDatabase(logger)
			if err != nil {
				return err
			}
			db, err := engine.DB()
			if err != nil {
				return err
			}
			defer db.Close()

			if dropDB {
				if err := migration.DropAll(engine); err != nil {
					return err
				}
			}

			init, err := migration.Migrate(engine)
			if err != nil {
				return err
			}
			logger.Info("migration completed", zap.Bool("initialized", init))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dropDB, "reset", false, "whether to truncate database (drop all tables)")
	return cmd
}
