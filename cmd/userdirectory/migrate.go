package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/userdirectory/user-service/internal/infrastructure/db/sqlstore"
	"github.com/userdirectory/user-service/internal/pkg/config"
)

const roleFlag = "role"

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and seed roles",
		Long: `Create or update the role and users tables, then make sure every role
passed with --role exists. Seeding is idempotent.

Examples:
  userdirectory migrate
  userdirectory migrate --role ADMIN --role USER`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			labels, err := cmd.Flags().GetStringSlice(roleFlag)
			if err != nil {
				return err
			}
			return migrate(cmd.Context(), config.Load(), labels)
		},
	}
	cmd.Flags().StringSlice(roleFlag, nil, "Role label to seed (repeatable)")
	return cmd
}

func migrate(ctx context.Context, cfg *config.Config, labels []string) error {
	log := initLogger(cfg)

	db, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = sqlstore.Close(db) }()

	if err := sqlstore.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("schema migrated")

	roles, err := sqlstore.SeedRoles(ctx, db, labels...)
	if err != nil {
		return err
	}
	for _, r := range roles {
		log.Info().Int64("role_id", r.ID).Str("libelle", r.Libelle).Msg("role ready")
	}
	return nil
}
