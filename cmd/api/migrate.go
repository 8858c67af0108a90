package main

import (
	"github.com/spf13/cobra"

	"github.com/muhammadgalhoum/DPS/internal/config"
	"github.com/muhammadgalhoum/DPS/internal/database"
	"github.com/muhammadgalhoum/DPS/internal/database/migration"
	"github.com/muhammadgalhoum/DPS/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the images and pdfs tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			log := logger.Stdout(cfg.Location())

			db, err := database.NewPostgres(cmd.Context(), cfg.Database)
			if err != nil {
				log.Error().Str("event", "db_connect_failed").Err(err).Send()
				return err
			}
			defer db.Close()

			return migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host)
		},
	}
}
