package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ninjasaskeh/vr46/internal/infrastructure/postgres"
	"github.com/ninjasaskeh/vr46/pkg/config"
)

// MigrateCmd aplica las migraciones embebidas.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := postgres.Migrate(cmd.Context(), cfg.DB.ConnectionString()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Migrations applied\n", okMark)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the status of every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.MigrationStatus(cmd.Context(), cfg.DB.ConnectionString(), cmd.OutOrStdout())
		},
	})
	return cmd
}
