package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func bootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap",
		Short: "Seed the default administrator and user when no users exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cancel()

			c, pool, err := e.container()
			if err != nil {
				return err
			}
			defer pool.Close()

			seeded, err := c.Auth.Bootstrap(e.ctx, e.cfg.Bootstrap)
			if err != nil {
				return err
			}
			e.logger.Info("bootstrap completed", slog.Bool("seeded", seeded))
			return nil
		},
	}
}

func overdueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List active fees whose due date has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cancel()

			c, pool, err := e.container()
			if err != nil {
				return err
			}
			defer pool.Close()

			fees, err := c.Fees.ListOverdue(e.ctx)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tTYPE\tAMOUNT\tDUE")
			for _, f := range fees {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n", f.ID, f.Name, f.Type, f.Amount, f.DueDate.Format(time.DateOnly))
			}
			return tw.Flush()
		},
	}
}

func purgeCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "purge-inactive",
		Short: "Physically remove fees and households deactivated longer than --older-than ago",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cancel()

			c, pool, err := e.container()
			if err != nil {
				return err
			}
			defer pool.Close()

			fees, err := c.Fees.PurgeInactive(e.ctx, olderThan)
			if err != nil {
				e.logger.Error("purge fees failed",
					slog.String("error", err.Error()),
					slog.Duration("older_than", olderThan),
				)
				return err
			}
			households, err := c.Households.PurgeInactive(e.ctx, olderThan)
			if err != nil {
				e.logger.Error("purge households failed",
					slog.String("error", err.Error()),
					slog.Duration("older_than", olderThan),
				)
				return err
			}
			e.logger.Info("purge completed",
				slog.Int64("fees", fees),
				slog.Int64("households", households),
				slog.Duration("older_than", olderThan),
			)
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "minimum time since deactivation")
	return cmd
}
