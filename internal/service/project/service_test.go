package project

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

func newService() Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testInput() Input {
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return Input{
		Seed:          1337,
		Window:        calendar.WindowEndingAt(end, 180),
		HistoryDays:   180,
		ProjectsCount: 120,
		Organization:  domain.Organization{ID: "org-1"},
		Teams: []domain.Team{
			{ID: "t-tech", TeamType: domain.TeamTypeTechnical},
			{ID: "t-gtm", TeamType: domain.TeamTypeGoToMarket},
			{ID: "t-ops", TeamType: domain.TeamTypeBusinessOps},
			{ID: "t-x", TeamType: domain.TeamTypeCrossFunctional},
		},
	}
}

func TestGenerateProjects(t *testing.T) {
	in := testInput()
	projects, err := newService().Generate(in)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(projects) != in.ProjectsCount {
		t.Fatalf("expected %d projects, got %d", in.ProjectsCount, len(projects))
	}
	teamType := map[string]string{}
	for _, team := range in.Teams {
		teamType[team.ID] = team.TeamType
	}
	for _, p := range projects {
		if !in.Window.Contains(p.CreatedAt) {
			t.Fatalf("project created outside window: %s", p.CreatedAt)
		}
		if p.DueDate != nil && (p.StartDate == nil || p.DueDate.Before(*p.StartDate)) {
			t.Fatalf("project %s due before start", p.Name)
		}
		if p.Type == domain.ProjectSprint && p.DueDate != nil && p.DueDate.Sub(*p.StartDate) != 14*24*time.Hour {
			t.Fatalf("sprint %s does not span two weeks", p.Name)
		}
		if p.ArchivedAt != nil && p.Status != domain.ProjectCompleted {
			t.Fatalf("non-completed project %s archived", p.Name)
		}
		if teamType[p.OwnerTeamID] == domain.TeamTypeTechnical {
			switch p.Type {
			case domain.ProjectSprint, domain.ProjectBugTriage, domain.ProjectProductRoadmap, domain.ProjectOpsInitiative:
			default:
				t.Fatalf("technical team owns %s project", p.Type)
			}
		}
	}
}

func TestGenerateRequiresTeams(t *testing.T) {
	in := testInput()
	in.Teams = nil
	if _, err := newService().Generate(in); err == nil {
		t.Fatal("expected error without teams")
	}
}

func TestSectionsFollowTemplates(t *testing.T) {
	projects := []domain.Project{
		{ID: "p-sprint", Type: domain.ProjectSprint},
		{ID: "p-road", Type: domain.ProjectProductRoadmap},
		{ID: "p-odd", Type: domain.ProjectType("unknown")},
	}
	created := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sections := newService().Sections(42, created, projects)
	byProject := map[string][]domain.Section{}
	for _, s := range sections {
		byProject[s.ProjectID] = append(byProject[s.ProjectID], s)
	}

	sprint := byProject["p-sprint"]
	if len(sprint) != len(Template(domain.ProjectSprint)) {
		t.Fatalf("sprint must not get extra sections, got %d", len(sprint))
	}
	for i, s := range sprint {
		if s.Position != i || s.Name != Template(domain.ProjectSprint)[i] {
			t.Fatalf("unexpected sprint section %d: %+v", i, s)
		}
	}

	road := byProject["p-road"]
	base := len(Template(domain.ProjectProductRoadmap))
	if len(road) < base || len(road) > base+2 {
		t.Fatalf("roadmap has %d sections", len(road))
	}
	for i, s := range road {
		if s.Position != i {
			t.Fatalf("roadmap positions not contiguous: %+v", road)
		}
	}

	if len(byProject["p-odd"]) != 3 {
		t.Fatalf("unknown type should use the default template, got %d", len(byProject["p-odd"]))
	}

	ids := SectionIDsByProject(sections)
	if len(ids["p-sprint"]) != len(sprint) || ids["p-sprint"][0] != sprint[0].ID {
		t.Fatalf("unexpected grouping %v", ids["p-sprint"])
	}
}

func TestTypeForTeamFallsBack(t *testing.T) {
	r := seed.New(1, seed.StageProjects)
	for i := 0; i < 50; i++ {
		switch TypeForTeam(r, "mystery") {
		case domain.ProjectOpsInitiative, domain.ProjectProductRoadmap, domain.ProjectMarketingCampaign:
		default:
			t.Fatal("unexpected type for unknown team")
		}
	}
}
