package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bluemoon-fees/internal/adapter/postgres"
	"github.com/heartmarshall/bluemoon-fees/migrations"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the embedded schema migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cancel()

			results, err := postgres.MigrateUp(e.ctx, e.cfg.Database.DSN, migrations.FS)
			if err != nil {
				return err
			}
			for _, r := range results {
				e.logger.Info("migration applied",
					slog.Int64("version", r.Version),
					slog.String("source", r.Source),
				)
			}
			e.logger.Info("migrations complete", slog.Int("applied", len(results)))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether each is applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cancel()

			results, err := postgres.MigrationStatus(e.ctx, e.cfg.Database.DSN, migrations.FS)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				state := "pending"
				if r.Applied {
					state = "applied"
				}
				fmt.Fprintf(out, "%05d  %-8s %s\n", r.Version, state, r.Source)
			}
			return nil
		},
	})
	return cmd
}
