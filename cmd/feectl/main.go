// Command feectl runs maintenance tasks against the ledger database. It is
// intended for operators and cron jobs, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres"
	"github.com/heartmarshall/bluemoon-fees/internal/app"
	"github.com/heartmarshall/bluemoon-fees/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "feectl",
		Short:         "Maintenance commands for the fee ledger",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "path to config file (defaults to CONFIG_PATH or config.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "overall deadline for the command")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(bootstrapCmd())
	rootCmd.AddCommand(overdueCmd())
	rootCmd.AddCommand(purgeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every subcommand needs: configuration, a logger and a deadline.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	return &env{cfg: cfg, logger: app.NewLogger(cfg.Log), ctx: ctx, cancel: cancel}, nil
}

// container connects to the database and wires the services without Redis.
func (e *env) container() (*app.Container, *pgxpool.Pool, error) {
	pool, err := postgres.NewPool(e.ctx, e.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	return app.NewContainer(e.cfg, e.logger, pool, nil, prometheus.NewRegistry()), pool, nil
}
