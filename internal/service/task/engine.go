// Package task generates the tasks and subtasks of every project together
// with their tags and custom-field values.
package task

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
	"github.com/splax/worksim/internal/service/enrich"
)

// ErrNoUsers is returned when there is nobody to create tasks.
var ErrNoUsers = errors.New("task: no users to create tasks")

const (
	minTasksPerProject = 40
	maxTasksPerProject = 900

	unassignedProb     = 0.15
	managerCreatorProb = 0.60
	sprintDueProb      = 0.92
	startDateProb      = 0.35
	taskTagProb        = 0.55
	fieldSkipProb      = 0.12
	fieldSparsityProb  = 0.20
	subtaskProb        = 0.35
	subtaskBlankProb   = 0.65
	subtaskDueProb     = 0.65
	subtaskFollowProb  = 0.85
	subtaskAssignProb  = 0.70
	subtaskTagProb     = 0.35
)

var (
	tagCounts      = []int{1, 2, 3}
	tagWeights     = []float64{0.65, 0.25, 0.10}
	subtaskCounts  = []int{1, 2, 3, 4, 5}
	subtaskWeights = []float64{0.35, 0.30, 0.20, 0.10, 0.05}
)

// Input is everything the engine reads from earlier stages.
type Input struct {
	Seed               int64
	Window             calendar.Window
	AvgTasksPerProject int
	Projects           []domain.Project
	// Sections maps a project to its section ids.
	Sections map[string][]string
	// Rosters maps a team to its active members.
	Rosters map[string][]string
	Users   []domain.User
	TagIDs  []string
	// ProjectFields maps a project to its attached field ids in attachment order.
	ProjectFields map[string][]string
	Fields        map[string]domain.CustomFieldDefinition
	// Load is shared across projects. A nil Load starts empty.
	Load *LoadTable
}

// Result holds the generated rows.
type Result struct {
	Tasks    []domain.Task
	Subtasks []domain.Subtask
	TaskTags []domain.TaskTag
	Values   []domain.CustomFieldValue
}

// Engine generates tasks and subtasks.
type Engine struct {
	enricher enrich.Enricher
	logger   *slog.Logger
}

// New returns an engine that passes heuristic text through enricher.
func New(enricher enrich.Enricher, logger *slog.Logger) Engine {
	if enricher == nil {
		enricher = enrich.Disabled{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return Engine{enricher: enricher, logger: logger}
}

type run struct {
	in         Input
	r          *seed.Rand
	ids        *seed.IDs
	load       *LoadTable
	allUsers   []string
	managerial map[string]bool
	categories map[string]domain.FieldCategory
	out        Result
}

// Generate produces every project's tasks in project order.
func (e Engine) Generate(ctx context.Context, in Input) (Result, error) {
	if len(in.Users) == 0 {
		return Result{}, ErrNoUsers
	}
	g := &run{
		in:         in,
		r:          seed.New(in.Seed, seed.StageTasks),
		ids:        seed.NewIDs(in.Seed, seed.StageTasks),
		load:       in.Load,
		managerial: make(map[string]bool, len(in.Users)),
		categories: make(map[string]domain.FieldCategory, len(in.Fields)),
	}
	if g.load == nil {
		g.load = NewLoadTable()
	}
	for _, u := range in.Users {
		g.allUsers = append(g.allUsers, u.ID)
		g.managerial[u.ID] = u.Managerial()
	}
	for id, def := range in.Fields {
		g.categories[id] = categoryOf(def)
	}

	for _, p := range in.Projects {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sections := in.Sections[p.ID]
		if len(sections) == 0 {
			e.logger.Warn("project has no sections, skipping", "project_id", p.ID, "project", p.Name)
			continue
		}
		g.project(ctx, e.enricher, p, sections)
	}

	e.logger.Info("tasks generated",
		"tasks", len(g.out.Tasks),
		"subtasks", len(g.out.Subtasks),
		"task_tags", len(g.out.TaskTags),
		"custom_field_values", len(g.out.Values),
	)
	return g.out, nil
}

// volume draws a project's task count, pulled toward the configured average.
func volume(r *seed.Rand, avg int) int {
	n := max(10, int(r.LogNormal(5.2, 0.35)))
	n = int(0.6*float64(n) + 0.4*float64(avg))
	return min(max(n, minTasksPerProject), maxTasksPerProject)
}

// completionRate draws the baseline share of completed tasks for a project.
func completionRate(r *seed.Rand, t domain.ProjectType) float64 {
	switch t {
	case domain.ProjectSprint:
		return r.Uniform(0.70, 0.85)
	case domain.ProjectBugTriage:
		return r.Uniform(0.60, 0.75)
	case domain.ProjectMarketingCampaign, domain.ProjectSalesEnablement:
		return r.Uniform(0.55, 0.75)
	case domain.ProjectOpsInitiative:
		return r.Uniform(0.45, 0.65)
	}
	return r.Uniform(0.40, 0.60)
}

// ageBoost raises completion odds for tasks older than a week.
func ageBoost(created, end time.Time) float64 {
	days := calendar.WholeDaysBetween(created, end)
	return min(0.20, max(0, float64(days-7)/120))
}

func (g *run) pool(team string) []string {
	if roster := g.in.Rosters[team]; len(roster) > 0 {
		return roster
	}
	return g.allUsers
}

func (g *run) pickCreator(pool []string) string {
	if g.r.Chance(managerCreatorProb) {
		var managers []string
		for _, id := range pool {
			if g.managerial[id] {
				managers = append(managers, id)
			}
		}
		if len(managers) > 0 {
			return seed.Pick(g.r, managers)
		}
	}
	return seed.Pick(g.r, pool)
}

func (g *run) pickAssignee(pool []string) *string {
	if g.r.Chance(unassignedProb) {
		return nil
	}
	if len(pool) == 0 {
		return nil
	}
	id := g.load.Pick(g.r, pool)
	return &id
}

func (g *run) project(ctx context.Context, enricher enrich.Enricher, p domain.Project, sections []string) {
	n := volume(g.r, g.in.AvgTasksPerProject)
	rate := completionRate(g.r, p.Type)
	pool := g.pool(p.OwnerTeamID)
	w := g.in.Window

	for range n {
		t := domain.Task{
			ID:        g.ids.Next(),
			ProjectID: p.ID,
			SectionID: seed.Pick(g.r, sections),
		}
		t.CreatorID = g.pickCreator(pool)
		t.AssigneeID = g.pickAssignee(pool)
		t.CreatedAt = w.Workday(g.r)
		t.UpdatedAt = w.UpdatedAt(g.r, t.CreatedAt)

		created := calendar.Day(t.CreatedAt)
		if p.Type == domain.ProjectSprint {
			if g.r.Chance(sprintDueProb) {
				d := calendar.AdjustToWeekday(g.r, created.AddDate(0, 0, g.r.IntBetween(7, 14)))
				t.DueDate = &d
			}
		} else {
			t.DueDate = calendar.DueDate(g.r, created, calendar.DueHorizonDays)
		}
		if t.DueDate != nil {
			d := calendar.AdjustToWeekday(g.r, *t.DueDate)
			t.DueDate = &d
		}

		if g.r.Chance(startDateProb) {
			t.StartDate = &created
		}
		t.Completed = g.r.Chance(min(0.98, rate+ageBoost(t.CreatedAt, w.End)))
		if t.Completed {
			at := w.CompletedAt(g.r, t.CreatedAt)
			t.CompletedAt = &at
		}

		text := enricher.Rewrite(ctx, enrich.Request{
			System:      enrich.SystemPrompt,
			Title:       heuristicName(g.r, p.Type),
			Description: heuristicDescription(g.r),
			ProjectName: p.Name,
		})
		t.Name, t.Description = text.Title, text.Description
		g.out.Tasks = append(g.out.Tasks, t)

		g.tagTask(t)
		g.fieldValues(p, t)
		g.subtasks(t, pool, rate)
	}
}

func (g *run) tagTask(t domain.Task) {
	if len(g.in.TagIDs) == 0 || !g.r.Chance(taskTagProb) {
		return
	}
	k := seed.PickWeighted(g.r, tagCounts, tagWeights)
	for range k {
		id := t.ID
		g.out.TaskTags = append(g.out.TaskTags, domain.TaskTag{
			TaskID:  &id,
			TagID:   seed.Pick(g.r, g.in.TagIDs),
			AddedAt: t.CreatedAt,
		})
	}
}

func (g *run) fieldValues(p domain.Project, t domain.Task) {
	for _, fieldID := range g.in.ProjectFields[p.ID] {
		if g.r.Chance(fieldSkipProb) {
			continue
		}
		def, ok := g.in.Fields[fieldID]
		if !ok {
			continue
		}
		category := g.categories[fieldID]
		v := fieldValue(g.r, def, category)
		if category != domain.CategoryStatus && g.r.Chance(fieldSparsityProb) {
			continue
		}
		if v.Slots() == 0 {
			continue
		}
		id := t.ID
		v.ID = g.ids.Next()
		v.CustomFieldID = fieldID
		v.TaskID = &id
		v.CreatedAt = t.CreatedAt
		g.out.Values = append(g.out.Values, v)
	}
}

func (g *run) subtasks(parent domain.Task, pool []string, rate float64) {
	if !g.r.Chance(subtaskProb) {
		return
	}
	w := g.in.Window
	n := seed.PickWeighted(g.r, subtaskCounts, subtaskWeights)
	for range n {
		s := domain.Subtask{
			ID:           g.ids.Next(),
			ParentTaskID: parent.ID,
			Name:         seed.Pick(g.r, corpora.SubtaskNames),
			CreatorID:    parent.CreatorID,
			CreatedAt:    parent.UpdatedAt,
		}
		if !g.r.Chance(subtaskBlankProb) {
			d := corpora.SubtaskDescription
			s.Description = &d
		}
		s.UpdatedAt = w.UpdatedAt(g.r, s.CreatedAt)
		if parent.DueDate != nil && g.r.Chance(subtaskDueProb) {
			d := *parent.DueDate
			s.DueDate = &d
		}
		s.Completed = parent.Completed && g.r.Chance(subtaskFollowProb)
		if !s.Completed {
			s.Completed = g.r.Chance(rate * 0.6)
		}
		if s.Completed {
			at := w.CompletedAt(g.r, s.CreatedAt)
			s.CompletedAt = &at
		}
		if g.r.Chance(subtaskAssignProb) {
			s.AssigneeID = parent.AssigneeID
		} else {
			s.AssigneeID = g.pickAssignee(pool)
		}
		g.out.Subtasks = append(g.out.Subtasks, s)

		if len(g.in.TagIDs) > 0 && g.r.Chance(subtaskTagProb) {
			id := s.ID
			g.out.TaskTags = append(g.out.TaskTags, domain.TaskTag{
				SubtaskID: &id,
				TagID:     seed.Pick(g.r, g.in.TagIDs),
				AddedAt:   s.CreatedAt,
			})
		}
	}
}
