package task

import (
	"fmt"

	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

// heuristicName builds a title from the vocabulary of the project's type.
func heuristicName(r *seed.Rand, t domain.ProjectType) string {
	switch t {
	case domain.ProjectSprint, domain.ProjectBugTriage:
		area := seed.Pick(r, corpora.EngineeringAreas)
		verb := seed.Pick(r, corpora.EngineeringVerbs)
		obj := seed.Pick(r, corpora.EngineeringObjects)
		detail := seed.Pick(r, corpora.EngineeringDetails)
		return fmt.Sprintf("%s: %s %s (%s)", area, verb, obj, detail)
	case domain.ProjectProductRoadmap:
		return seed.Pick(r, corpora.ProductAreas) + ": " + seed.Pick(r, corpora.RoadmapDeliverables)
	case domain.ProjectMarketingCampaign, domain.ProjectContentCalendar:
		return seed.Pick(r, corpora.MarketingCampaigns) + " - " + seed.Pick(r, corpora.CampaignDeliverables)
	case domain.ProjectOpsInitiative, domain.ProjectSalesEnablement:
		return seed.Pick(r, corpora.OpsInitiatives) + ": " + seed.Pick(r, corpora.OpsDeliverables)
	}
	return fmt.Sprintf("Task %d", r.IntBetween(1000, 9999))
}

// heuristicDescription is empty a fifth of the time, a single sentence half
// the time, and a bullet skeleton otherwise.
func heuristicDescription(r *seed.Rand) *string {
	x := r.Float64()
	switch {
	case x < 0.20:
		return nil
	case x < 0.70:
		d := seed.Pick(r, corpora.TaskDescriptions)
		return &d
	}
	d := corpora.TaskDescriptionSkeleton
	return &d
}
