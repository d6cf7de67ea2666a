package project

import (
	"time"

	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

var extendable = map[domain.ProjectType]bool{
	domain.ProjectMarketingCampaign: true,
	domain.ProjectContentCalendar:   true,
	domain.ProjectOpsInitiative:     true,
	domain.ProjectProductRoadmap:    true,
}

// Template returns the ordered workflow sections of a project type.
func Template(t domain.ProjectType) []string {
	if tpl, ok := corpora.ProjectTemplates[string(t)]; ok {
		return tpl
	}
	return corpora.DefaultTemplate
}

// Sections lays out each project's template, then appends up to two extra
// review stages for the project types that tend to grow them.
func (s Service) Sections(seedValue int64, createdAt time.Time, projects []domain.Project) []domain.Section {
	r := seed.New(seedValue, seed.StageSections)
	ids := seed.NewIDs(seedValue, seed.StageSections)

	var out []domain.Section
	for _, p := range projects {
		tpl := Template(p.Type)
		for i, name := range tpl {
			out = append(out, domain.Section{ID: ids.Next(), ProjectID: p.ID, Name: name, Position: i, CreatedAt: createdAt})
		}
		if !extendable[p.Type] {
			continue
		}
		extra := seed.PickWeighted(r, []int{0, 1, 2}, []float64{0.55, 0.35, 0.10})
		for i, name := range seed.Sample(r, corpora.ExtraSections, extra) {
			out = append(out, domain.Section{
				ID:        ids.Next(),
				ProjectID: p.ID,
				Name:      name,
				Position:  len(tpl) + i,
				CreatedAt: createdAt,
			})
		}
	}
	s.logger.Info("sections generated", "sections", len(out))
	return out
}

// SectionIDsByProject groups section ids per project in position order.
func SectionIDsByProject(sections []domain.Section) map[string][]string {
	out := map[string][]string{}
	for _, sec := range sections {
		out[sec.ProjectID] = append(out[sec.ProjectID], sec.ID)
	}
	return out
}
