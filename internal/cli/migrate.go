package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/splax/worksim/internal/app/store"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			runner, err := store.Migrator(cfg, log)
			if err != nil {
				return err
			}
			return runner.Ensure(cmd.Context())
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			runner, err := store.Migrator(cfg, log)
			if err != nil {
				return err
			}
			if err := runner.Status(cmd.Context()); err != nil {
				return err
			}
			version, err := runner.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		},
	}

	var target int64
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration, or down to --target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			runner, err := store.Migrator(cfg, log)
			if err != nil {
				return err
			}
			return runner.Down(cmd.Context(), target)
		},
	}
	down.Flags().Int64Var(&target, "target", 0, "version to roll back to (0 rolls back one step)")

	cmd.AddCommand(up, status, down)
	return cmd
}
