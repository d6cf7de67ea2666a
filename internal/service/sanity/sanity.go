// Package sanity inspects a generated database and reports integrity and
// distribution checks.
package sanity

import (
	"context"
	"fmt"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/domain"
)

// Counter runs single-value aggregate queries. repository.Store satisfies it.
type Counter interface {
	Count(ctx context.Context, query string) (int64, error)
}

// TableCount is the row count of one table.
type TableCount struct {
	Table string `json:"table" yaml:"table"`
	Rows  int64  `json:"rows" yaml:"rows"`
}

// Check is one named probe and its evidence.
type Check struct {
	Name    string         `json:"name" yaml:"name"`
	OK      bool           `json:"ok" yaml:"ok"`
	Details map[string]any `json:"details" yaml:"details"`
}

// Report is the outcome of a sanity run.
type Report struct {
	WindowEnd string       `json:"window_end" yaml:"window_end"`
	Counts    []TableCount `json:"counts" yaml:"counts"`
	Checks    []Check      `json:"checks" yaml:"checks"`
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	for _, c := range r.Checks {
		if !c.OK {
			return false
		}
	}
	return true
}

// Failed lists the names of failing checks.
func (r Report) Failed() []string {
	var out []string
	for _, c := range r.Checks {
		if !c.OK {
			out = append(out, c.Name)
		}
	}
	return out
}

// Count returns the recorded row count of table.
func (r Report) Count(table string) int64 {
	for _, c := range r.Counts {
		if c.Table == table {
			return c.Rows
		}
	}
	return 0
}

// Integrity probes. Each counts offending rows.
const (
	QueryOrphanTaskSections = `SELECT COUNT(*) FROM tasks t LEFT JOIN sections s ON s.section_id = t.section_id WHERE s.section_id IS NULL`
	QueryOrphanSubtasks     = `SELECT COUNT(*) FROM subtasks st LEFT JOIN tasks t ON t.task_id = st.parent_task_id WHERE t.task_id IS NULL`
	QueryTaskCompletion     = `SELECT COUNT(*) FROM tasks WHERE (completed = 1 AND completed_at IS NULL) OR (completed = 0 AND completed_at IS NOT NULL)`
	QuerySubtaskCompletion  = `SELECT COUNT(*) FROM subtasks WHERE (completed = 1 AND completed_at IS NULL) OR (completed = 0 AND completed_at IS NOT NULL)`
	QueryTaskTimeline       = `SELECT COUNT(*) FROM tasks WHERE updated_at < created_at OR completed_at < created_at`
	QuerySubtaskTimeline    = `SELECT COUNT(*) FROM subtasks WHERE updated_at < created_at OR completed_at < created_at`
	QuerySubtaskCreation    = `SELECT COUNT(*) FROM subtasks st JOIN tasks t ON t.task_id = st.parent_task_id WHERE st.created_at <> t.updated_at`
	QueryUntypedValues      = `SELECT COUNT(*) FROM custom_field_values v JOIN custom_field_definitions d ON d.custom_field_id = v.custom_field_id ` +
		`WHERE (d.field_type = 'enum' AND v.value_enum IS NULL) OR (d.field_type = 'number' AND v.value_number IS NULL) OR (d.field_type = 'text' AND v.value_text IS NULL)`
	QueryUnattachedValues = `SELECT COUNT(*) FROM custom_field_values v JOIN tasks t ON t.task_id = v.task_id ` +
		`LEFT JOIN project_custom_fields pcf ON pcf.project_id = t.project_id AND pcf.custom_field_id = v.custom_field_id WHERE pcf.project_id IS NULL`
	QueryUnassigned = `SELECT COUNT(*) FROM tasks WHERE assignee_user_id IS NULL`
	QueryNoDue      = `SELECT COUNT(*) FROM tasks WHERE due_date IS NULL`
)

// ownedTables carry a task_id/subtask_id pair of which exactly one is set.
var ownedTables = []string{"task_tags", "custom_field_values", "comments", "attachments"}

// QueryOwnership counts rows of table whose owner columns are both set or
// both empty.
func QueryOwnership(table string) string {
	return fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE (task_id IS NULL AND subtask_id IS NULL) OR (task_id IS NOT NULL AND subtask_id IS NOT NULL)`, table)
}

// QueryOverdueOpen counts open tasks due before the window end. The date is
// inlined because placeholder syntax differs between backends.
func QueryOverdueOpen(windowEnd time.Time) string {
	return fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE due_date IS NOT NULL AND due_date < '%s' AND completed = 0`, calendar.ISODate(windowEnd))
}

// QueryCount counts every row of table.
func QueryCount(table string) string {
	return "SELECT COUNT(*) FROM " + table
}

type runner struct {
	ctx context.Context
	db  Counter
	err error
}

func (r *runner) count(query string) int64 {
	if r.err != nil {
		return 0
	}
	n, err := r.db.Count(r.ctx, query)
	if err != nil {
		r.err = fmt.Errorf("sanity query %q: %w", query, err)
	}
	return n
}

func zeroCheck(name, detail string, n int64) Check {
	return Check{Name: name, OK: n == 0, Details: map[string]any{detail: n}}
}

// Run counts every table and evaluates the checks against db. windowEnd
// anchors the overdue check.
func Run(ctx context.Context, db Counter, windowEnd time.Time) (Report, error) {
	r := &runner{ctx: ctx, db: db}
	report := Report{WindowEnd: calendar.ISODate(windowEnd)}
	for _, t := range domain.Tables() {
		report.Counts = append(report.Counts, TableCount{Table: t.Name, Rows: r.count(QueryCount(t.Name))})
	}
	if r.err != nil {
		return Report{}, r.err
	}

	checks := []Check{
		zeroCheck("tasks_have_valid_sections", "invalid_task_section_rows", r.count(QueryOrphanTaskSections)),
		zeroCheck("subtasks_have_valid_parent", "invalid_subtask_parent_rows", r.count(QueryOrphanSubtasks)),
		zeroCheck("task_completed_fields_consistent", "mismatch_rows", r.count(QueryTaskCompletion)),
		zeroCheck("subtask_completed_fields_consistent", "mismatch_rows", r.count(QuerySubtaskCompletion)),
		zeroCheck("task_timestamps_ordered", "out_of_order_rows", r.count(QueryTaskTimeline)),
		zeroCheck("subtask_timestamps_ordered", "out_of_order_rows", r.count(QuerySubtaskTimeline)),
		zeroCheck("subtasks_created_at_parent_update", "mismatch_rows", r.count(QuerySubtaskCreation)),
		zeroCheck("custom_field_values_match_type", "mistyped_rows", r.count(QueryUntypedValues)),
		zeroCheck("custom_field_values_on_attached_fields", "unattached_rows", r.count(QueryUnattachedValues)),
	}
	owners := Check{Name: "single_owner_rows", OK: true, Details: map[string]any{}}
	for _, table := range ownedTables {
		n := r.count(QueryOwnership(table))
		owners.Details[table] = n
		owners.OK = owners.OK && n == 0
	}
	checks = append(checks, owners)

	tasks := report.Count("tasks")
	total := float64(max(tasks, 1))
	unassigned := r.count(QueryUnassigned)
	noDue := r.count(QueryNoDue)
	overdue := r.count(QueryOverdueOpen(windowEnd))
	if r.err != nil {
		return Report{}, r.err
	}

	values := report.Count("custom_field_values")
	comments := report.Count("comments")
	attachments := report.Count("attachments")
	checks = append(checks,
		Check{
			Name:    "unassigned_rate_reasonable",
			OK:      between(float64(unassigned)/total, 0.08, 0.25),
			Details: map[string]any{"unassigned": unassigned, "total_tasks": tasks, "unassigned_pct": float64(unassigned) / total},
		},
		Check{
			Name:    "no_due_date_rate_reasonable",
			OK:      between(float64(noDue)/total, 0.05, 0.25),
			Details: map[string]any{"no_due": noDue, "total_tasks": tasks, "no_due_pct": float64(noDue) / total},
		},
		Check{
			Name:    "overdue_open_tasks_exist",
			OK:      overdue > 0,
			Details: map[string]any{"overdue_open": overdue, "overdue_open_pct": float64(overdue) / total},
		},
		Check{
			Name:    "custom_fields_present",
			OK:      values > 0 && float64(values)/total >= 0.6,
			Details: map[string]any{"custom_field_values": values, "tasks": tasks, "cfv_per_task": float64(values) / total},
		},
		Check{
			Name:    "comments_density_reasonable",
			OK:      between(float64(comments)/total, 0.15, 1.5),
			Details: map[string]any{"comments": comments, "tasks": tasks, "comments_per_task": float64(comments) / total},
		},
		Check{
			Name:    "attachments_density_reasonable",
			OK:      between(float64(attachments)/total, 0.01, 0.20),
			Details: map[string]any{"attachments": attachments, "tasks": tasks, "attachments_per_task": float64(attachments) / total},
		},
	)
	report.Checks = checks
	return report, nil
}

func between(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}
