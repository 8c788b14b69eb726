package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"aoitems/internal/config"
	"aoitems/internal/storage/sqlstore"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "aoitems",
	Short: "Item database service with QL interpolation",
	Long: `aoitems serves stored item variants and computes items at any quality
level between them. Run "aoitems serve" for the HTTP API or use the
interpolate and ranges commands against the configured database.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the YAML config (default: $CONFIG_PATH or ./config/local.yaml)")
}

// bootstrap loads the config, builds the logger and opens the store.
func bootstrap(ctx context.Context) (*config.Config, *slog.Logger, *sqlstore.Storage, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot read config: %w", err)
	}

	log := setupLogger(cfg.Env, cfg.ErrorLogPath)

	storage, err := sqlstore.New(ctx, cfg.Storage)
	if err != nil {
		log.Error("failed to open db", slog.String("driver", cfg.Storage.Driver), slog.String("error", err.Error()))
		return nil, nil, nil, err
	}

	return cfg, log, storage, nil
}
