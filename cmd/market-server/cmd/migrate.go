package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chzzmarket/market-api/internal/config"
	"github.com/chzzmarket/market-api/internal/store"
)

const migrateTimeout = 60 * time.Second

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	log.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (*store.PostgresStore, error) {
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), int32(cfg.Database.PoolSize))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return st, nil
}
