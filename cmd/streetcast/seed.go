package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"streetcast/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the development data set",
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := db.NewPostgresPool(cmd.Context(), cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.Seed(cmd.Context(), pool, time.Now()); err != nil {
			return err
		}
		logger.Info("database seeded",
			slog.String("manifest", "/api/manifest/"+db.SeedDeviceID),
			slog.String("analytics", "/api/analytics"),
		)
		return nil
	},
}
