package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splax/worksim/internal/app/generate"
	"github.com/splax/worksim/internal/app/store"
	"github.com/splax/worksim/internal/service/sanity"
)

// ErrChecksFailed is returned by `worksim check` when any check fails.
var ErrChecksFailed = errors.New("sanity checks failed")

func newCheckCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the sanity report against an existing dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != sanity.FormatJSON && format != sanity.FormatYAML {
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			st, err := store.Open(cmd.Context(), cfg, log, false)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			report, err := generate.New(cfg, log).Check(cmd.Context(), st)
			if err != nil {
				return err
			}
			if err := sanity.Write(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%w: %s", ErrChecksFailed, strings.Join(report.Failed(), ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", sanity.FormatJSON, "report format: json or yaml")
	return cmd
}
