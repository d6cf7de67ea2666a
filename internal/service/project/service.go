// Package project generates projects and their workflow sections.
package project

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

// Input carries the context projects are drawn from.
type Input struct {
	Seed          int64
	Window        calendar.Window
	HistoryDays   int
	ProjectsCount int
	Organization  domain.Organization
	Teams         []domain.Team
}

// Service generates projects and sections.
type Service struct {
	logger *slog.Logger
}

// New returns a project service.
func New(logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return Service{logger: logger}
}

type weightedTypes struct {
	types   []domain.ProjectType
	weights []float64
}

var typesByTeam = map[string]weightedTypes{
	domain.TeamTypeTechnical: {
		[]domain.ProjectType{domain.ProjectSprint, domain.ProjectBugTriage, domain.ProjectProductRoadmap, domain.ProjectOpsInitiative},
		[]float64{0.55, 0.25, 0.15, 0.05},
	},
	domain.TeamTypeGoToMarket: {
		[]domain.ProjectType{domain.ProjectMarketingCampaign, domain.ProjectContentCalendar, domain.ProjectSalesEnablement, domain.ProjectOpsInitiative},
		[]float64{0.45, 0.25, 0.20, 0.10},
	},
	domain.TeamTypeBusinessOps: {
		[]domain.ProjectType{domain.ProjectOpsInitiative, domain.ProjectContentCalendar, domain.ProjectSalesEnablement},
		[]float64{0.65, 0.20, 0.15},
	},
	domain.TeamTypeCrossFunctional: {
		[]domain.ProjectType{domain.ProjectOpsInitiative, domain.ProjectProductRoadmap, domain.ProjectMarketingCampaign},
		[]float64{1, 1, 1},
	},
}

// TypeForTeam draws a project type suited to the owning team.
func TypeForTeam(r *seed.Rand, teamType string) domain.ProjectType {
	w, ok := typesByTeam[teamType]
	if !ok {
		w = typesByTeam[domain.TeamTypeCrossFunctional]
	}
	return seed.PickWeighted(r, w.types, w.weights)
}

// Generate builds the projects.
func (s Service) Generate(in Input) ([]domain.Project, error) {
	if len(in.Teams) == 0 {
		return nil, fmt.Errorf("projects need at least one team")
	}
	r := seed.New(in.Seed, seed.StageProjects)
	ids := seed.NewIDs(in.Seed, seed.StageProjects)

	used := map[string]struct{}{}
	projects := make([]domain.Project, 0, in.ProjectsCount)
	for i := 0; i < in.ProjectsCount; i++ {
		team := seed.Pick(r, in.Teams)
		ptype := TypeForTeam(r, team.TeamType)
		name := projectName(r, ptype)
		if _, dup := used[name]; dup {
			name = fmt.Sprintf("%s (%d)", name, r.IntBetween(2, 9))
		}
		used[name] = struct{}{}

		created := in.Window.Workday(r)
		var start, due *time.Time
		if r.Chance(0.85) {
			d := calendar.Day(created)
			start = &d
			if days := scheduleDays(r, ptype); days > 0 {
				end := d.AddDate(0, 0, days)
				due = &end
			}
		}

		privacy := seed.PickWeighted(r, []string{domain.PrivacyPublic, domain.PrivacyPrivate}, []float64{0.86, 0.14})
		status := seed.PickWeighted(r,
			[]string{domain.ProjectActive, domain.ProjectOnHold, domain.ProjectCompleted},
			[]float64{0.76, 0.07, 0.17})

		var archived *time.Time
		if status == domain.ProjectCompleted && r.Chance(0.55) {
			a := in.Window.Clamp(created.AddDate(0, 0, r.IntBetween(30, min(in.HistoryDays, 180))))
			archived = &a
		}

		var description *string
		if r.Chance(0.65) {
			d := seed.Pick(r, corpora.ProjectDescriptions)
			description = &d
		}

		projects = append(projects, domain.Project{
			ID:             ids.Next(),
			OrganizationID: in.Organization.ID,
			OwnerTeamID:    team.ID,
			Name:           name,
			Type:           ptype,
			Privacy:        privacy,
			Status:         status,
			StartDate:      start,
			DueDate:        due,
			CreatedAt:      created,
			ArchivedAt:     archived,
			Description:    description,
		})
	}
	s.logger.Info("projects generated", "projects", len(projects))
	return projects, nil
}

// scheduleDays is the planned project length. Sprints always run two weeks.
func scheduleDays(r *seed.Rand, t domain.ProjectType) int {
	switch t {
	case domain.ProjectSprint:
		return 14
	case domain.ProjectBugTriage:
		return r.IntBetween(21, 45)
	case domain.ProjectProductRoadmap:
		return r.IntBetween(45, 120)
	case domain.ProjectMarketingCampaign:
		return r.IntBetween(28, 70)
	case domain.ProjectContentCalendar:
		return r.IntBetween(60, 120)
	case domain.ProjectSalesEnablement:
		return r.IntBetween(45, 90)
	case domain.ProjectOpsInitiative:
		return r.IntBetween(30, 150)
	}
	return 0
}

func projectName(r *seed.Rand, t domain.ProjectType) string {
	years := []int{2025, 2026}
	switch t {
	case domain.ProjectSprint:
		area := seed.Pick(r, corpora.EngineeringAreas)
		week := r.IntBetween(18, 38)
		return fmt.Sprintf("%s Sprint %d-W%02d", area, seed.Pick(r, years), week)
	case domain.ProjectBugTriage:
		return seed.Pick(r, corpora.EngineeringAreas) + " Bug Triage & Fixes"
	case domain.ProjectProductRoadmap:
		area := seed.Pick(r, corpora.ProductAreas)
		q := seed.Pick(r, corpora.Quarters)
		return fmt.Sprintf("%s Roadmap %s %d", area, q, seed.Pick(r, years))
	case domain.ProjectMarketingCampaign:
		return seed.Pick(r, corpora.MarketingCampaigns) + " Campaign"
	case domain.ProjectContentCalendar:
		q := seed.Pick(r, corpora.Quarters)
		return fmt.Sprintf("Content Calendar %s %d", q, seed.Pick(r, years))
	case domain.ProjectSalesEnablement:
		q := seed.Pick(r, corpora.Quarters)
		return fmt.Sprintf("Sales Enablement %s %d", q, seed.Pick(r, years))
	case domain.ProjectOpsInitiative:
		return seed.Pick(r, corpora.OpsInitiatives)
	}
	return fmt.Sprintf("Project %d", r.IntBetween(100, 999))
}
