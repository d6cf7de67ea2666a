// Package cli wires the worksim commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/splax/worksim/pkg/config"
	"github.com/splax/worksim/pkg/logger"
)

var buildVersion = "dev"

// SetVersion sets the version reported by `worksim version`.
func SetVersion(v string) {
	if v != "" {
		buildVersion = v
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "worksim",
		Short: "Generate a reproducible enterprise work-management dataset",
		Long: `worksim synthesizes organizations, teams, users, projects, tasks and their
activity into SQLite or PostgreSQL. The same seed and settings always produce
the same rows.

Settings come from the environment or a .env file in the working directory.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newGenerateCmd(),
		newCheckCmd(),
		newMigrateCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command. An interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "worksim %s\n", buildVersion)
		},
	}
}

// loadConfig reads and validates the generator settings and builds the
// run logger on stderr.
func loadConfig(cmd *cobra.Command) (config.GeneratorConfig, *slog.Logger, error) {
	cfg := config.LoadGeneratorConfig()
	if err := cfg.Validate(); err != nil {
		return config.GeneratorConfig{}, nil, err
	}
	return cfg, newLogger(cmd.ErrOrStderr(), cfg.LogLevel), nil
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return logger.NewWithWriter(w, "worksim", logger.ParseLevel(level))
}
