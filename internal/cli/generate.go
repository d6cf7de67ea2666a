package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/splax/worksim/internal/app/generate"
	"github.com/splax/worksim/internal/app/store"
	"github.com/splax/worksim/internal/metrics"
	"github.com/splax/worksim/internal/repository"
	"github.com/splax/worksim/internal/repository/memory"
	"github.com/splax/worksim/internal/service/enrich"
	"github.com/splax/worksim/internal/service/org"
)

func newGenerateCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the dataset from scratch",
		Long: `Regenerate the whole dataset into DB_PATH, or DATABASE_URL when set. Any
previous dataset is discarded. The sanity report is written to REPORT_PATH
afterwards.

With --dry-run the rows are generated and counted in memory only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			m := metrics.New()
			enricher, closer, err := enrich.FromConfig(cfg.Enrich, log, m)
			if err != nil {
				return err
			}
			defer closer.Close()

			var corpus org.CompanyCorpus = org.StaticCorpus{}
			if cfg.EnableWebScrape {
				corpus = org.NewWebCorpus("", nil, log)
			}
			pipeline := generate.New(cfg, log,
				generate.WithMetrics(m),
				generate.WithEnricher(enricher),
				generate.WithCorpus(corpus),
			)

			var st repository.Store
			if dryRun {
				st = memory.New()
			} else {
				st, err = store.Open(ctx, cfg, log, true)
				if err != nil {
					return fmt.Errorf("open store: %w", err)
				}
			}
			defer st.Close()

			summary, err := pipeline.Run(ctx, st)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSummary(out, summary)

			if !dryRun {
				report, err := pipeline.Check(ctx, st)
				if err != nil {
					return fmt.Errorf("sanity checks: %w", err)
				}
				if cfg.ReportPath != "" {
					fmt.Fprintf(out, "Sanity report written to %s\n", cfg.ReportPath)
				}
				fmt.Fprintf(out, "All checks OK: %t\n", report.OK())
			}
			if cfg.MetricsPath != "" {
				if err := m.WriteTextfile(cfg.MetricsPath); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "generate in memory without writing a database")
	return cmd
}

func printSummary(w io.Writer, s generate.Summary) {
	fmt.Fprintf(w, "seed %d, window ending %s\n", s.Seed, s.WindowEnd.Format("2006-01-02"))
	for _, c := range s.Counts {
		fmt.Fprintf(w, "  %-26s %d\n", c.Table, c.Rows)
	}
	fmt.Fprintf(w, "digest %s\n", s.Digest)
}
