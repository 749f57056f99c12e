package main

import (
	"context"

	"visit-booking/cmd/bootstrap"
	"visit-booking/internal/handler/middleware"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the visits table and its indexes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			store, err := bootstrap.OpenStore(ctx, cfg, logger, true)
			if err != nil {
				return err
			}
			defer store.Close()

			logger.Info("migrations applied", "driver", cfg.Store.Driver)
			return nil
		},
	}
}
