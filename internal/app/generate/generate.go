// Package generate runs the full pipeline: every stage in order, then one
// transaction that writes the dataset.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/metrics"
	"github.com/splax/worksim/internal/repository"
	"github.com/splax/worksim/internal/service/activity"
	"github.com/splax/worksim/internal/service/enrich"
	"github.com/splax/worksim/internal/service/membership"
	"github.com/splax/worksim/internal/service/org"
	"github.com/splax/worksim/internal/service/project"
	"github.com/splax/worksim/internal/service/sanity"
	"github.com/splax/worksim/internal/service/task"
	"github.com/splax/worksim/internal/service/taxonomy"
	"github.com/splax/worksim/pkg/config"
)

// Pipeline generates and stores one dataset.
type Pipeline struct {
	cfg      config.GeneratorConfig
	logger   *slog.Logger
	metrics  *metrics.Metrics
	corpus   org.CompanyCorpus
	enricher enrich.Enricher
}

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithEnricher rewrites task text through e.
func WithEnricher(e enrich.Enricher) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.enricher = e
		}
	}
}

// WithCorpus draws organization names from c.
func WithCorpus(c org.CompanyCorpus) Option {
	return func(p *Pipeline) {
		if c != nil {
			p.corpus = c
		}
	}
}

// WithMetrics records row counts and stage timings in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}

// New returns a pipeline for cfg.
func New(cfg config.GeneratorConfig, logger *slog.Logger, opts ...Option) Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := Pipeline{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics.New(),
		corpus:   org.StaticCorpus{},
		enricher: enrich.Disabled{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Summary describes a finished run.
type Summary struct {
	Seed      int64
	WindowEnd time.Time
	Counts    []sanity.TableCount
	// Digest is a sha256 over every written row in write order. Equal
	// configurations produce equal digests.
	Digest   string
	Duration time.Duration
}

// Build runs every generation stage without touching storage.
func (p Pipeline) Build(ctx context.Context) (Dataset, error) {
	end, err := p.cfg.WindowEnd()
	if err != nil {
		return Dataset{}, err
	}
	s := p.cfg.Seed
	d := Dataset{Window: calendar.WindowEndingAt(end, p.cfg.HistoryDays)}

	done := p.metrics.StartStage("org")
	d.Org, err = org.New(p.corpus, p.logger).Generate(ctx, org.Input{
		Seed:        s,
		Window:      d.Window,
		HistoryDays: p.cfg.HistoryDays,
		TargetUsers: p.cfg.TargetUsers,
		TeamsCount:  p.cfg.TeamsCount,
	})
	done()
	if err != nil {
		return Dataset{}, fmt.Errorf("generate org: %w", err)
	}

	done = p.metrics.StartStage("memberships")
	d.Memberships = membership.New(p.logger).Generate(membership.Input{
		Seed:   s,
		Window: d.Window,
		Teams:  d.Org.Teams,
		Users:  d.Org.Users,
	})
	done()

	done = p.metrics.StartStage("projects")
	projects := project.New(p.logger)
	d.Projects, err = projects.Generate(project.Input{
		Seed:          s,
		Window:        d.Window,
		HistoryDays:   p.cfg.HistoryDays,
		ProjectsCount: p.cfg.ProjectsCount,
		Organization:  d.Org.Organization,
		Teams:         d.Org.Teams,
	})
	if err != nil {
		done()
		return Dataset{}, fmt.Errorf("generate projects: %w", err)
	}
	d.Sections = projects.Sections(s, d.Window.End, d.Projects)
	done()

	done = p.metrics.StartStage("taxonomy")
	taxa := taxonomy.New(p.logger)
	d.Tags = taxa.Tags(s, d.Org.Organization, d.Window.End)
	d.Schema, err = taxa.CustomFields(s, d.Org.Organization, d.Projects, d.Window.End)
	done()
	if err != nil {
		return Dataset{}, fmt.Errorf("generate custom fields: %w", err)
	}

	tagIDs := make([]string, len(d.Tags))
	for i, t := range d.Tags {
		tagIDs[i] = t.ID
	}
	fields := make(map[string]domain.CustomFieldDefinition, len(d.Schema.Definitions))
	for _, def := range d.Schema.Definitions {
		fields[def.ID] = def
	}

	done = p.metrics.StartStage("tasks")
	d.Work, err = task.New(p.enricher, p.logger).Generate(ctx, task.Input{
		Seed:               s,
		Window:             d.Window,
		AvgTasksPerProject: p.cfg.AvgTasksPerProject,
		Projects:           d.Projects,
		Sections:           project.SectionIDsByProject(d.Sections),
		Rosters:            membership.ActiveRosters(d.Memberships),
		Users:              d.Org.Users,
		TagIDs:             tagIDs,
		ProjectFields:      d.Schema.ByProject,
		Fields:             fields,
		Load:               task.NewLoadTable(),
	})
	done()
	if err != nil {
		return Dataset{}, fmt.Errorf("generate tasks: %w", err)
	}

	done = p.metrics.StartStage("activity")
	act := activity.New(p.logger)
	actIn := activity.Input{
		Seed:     s,
		Window:   d.Window,
		Users:    d.Org.Users,
		Tasks:    d.Work.Tasks,
		Subtasks: d.Work.Subtasks,
	}
	d.Comments = act.Comments(actIn)
	d.Attachments = act.Attachments(actIn)
	done()
	return d, nil
}

// Write stores d in one transaction and returns the digest of what was
// written.
func (p Pipeline) Write(ctx context.Context, st repository.Store, d Dataset) (string, error) {
	done := p.metrics.StartStage("write")
	defer done()

	var digest string
	err := st.RunInTx(ctx, func(ctx context.Context, tx repository.RowWriter) error {
		dw := newDigestWriter(p.metrics.Writer(tx))
		w := repository.Chunked(dw, p.cfg.BatchSize)
		for _, b := range d.batches() {
			if err := w.InsertRows(ctx, b.table.Name, b.table.Columns, b.rows); err != nil {
				return fmt.Errorf("insert %s: %w", b.table.Name, err)
			}
			if b.table.Name == domain.UsersTable.Name && len(d.Org.Managers) > 0 {
				err := w.UpdateRows(ctx, domain.UsersTable.Name, "user_id", []string{"manager_user_id"}, domain.Rows(d.Org.Managers))
				if err != nil {
					return fmt.Errorf("assign managers: %w", err)
				}
			}
		}
		digest = dw.Sum()
		return nil
	})
	if err != nil {
		return "", err
	}
	return digest, nil
}

// Run builds the dataset and writes it to st.
func (p Pipeline) Run(ctx context.Context, st repository.Store) (Summary, error) {
	if st == nil {
		return Summary{}, errors.New("generate: nil store")
	}
	start := time.Now()
	p.logger.Info("generation started",
		"seed", p.cfg.Seed,
		"window_end", p.cfg.WindowEndDate,
		"history_days", p.cfg.HistoryDays,
	)
	d, err := p.Build(ctx)
	if err != nil {
		return Summary{}, err
	}
	digest, err := p.Write(ctx, st, d)
	if err != nil {
		return Summary{}, fmt.Errorf("write dataset: %w", err)
	}

	counts := d.Counts()
	summary := Summary{
		Seed:      p.cfg.Seed,
		WindowEnd: d.Window.End,
		Digest:    digest,
		Duration:  time.Since(start),
	}
	attrs := []any{"digest", digest}
	for _, t := range domain.Tables() {
		summary.Counts = append(summary.Counts, sanity.TableCount{Table: t.Name, Rows: int64(counts[t.Name])})
		attrs = append(attrs, t.Name, counts[t.Name])
	}
	p.logger.Info("generation finished", attrs...)
	return summary, nil
}

// Check runs the sanity report against st and saves it when a report path
// is configured.
func (p Pipeline) Check(ctx context.Context, st repository.Store) (sanity.Report, error) {
	end, err := p.cfg.WindowEnd()
	if err != nil {
		return sanity.Report{}, err
	}
	done := p.metrics.StartStage("sanity")
	report, err := sanity.Run(ctx, st, end)
	done()
	if err != nil {
		return sanity.Report{}, err
	}
	if p.cfg.ReportPath != "" {
		if err := sanity.Save(p.cfg.ReportPath, report); err != nil {
			return sanity.Report{}, err
		}
	}
	if report.OK() {
		p.logger.Info("sanity checks passed", "checks", len(report.Checks))
	} else {
		p.logger.Warn("sanity checks failed", "failed", report.Failed())
	}
	return report, nil
}
