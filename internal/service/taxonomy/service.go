// Package taxonomy generates the tag vocabulary and the custom-field schema.
package taxonomy

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

const planningTagDraws = 70

// Service generates tags and custom fields.
type Service struct {
	logger *slog.Logger
}

// New returns a taxonomy service.
func New(logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return Service{logger: logger}
}

// Tags returns the base tags followed by distinct quarterly planning tags.
func (s Service) Tags(seedValue int64, org domain.Organization, createdAt time.Time) []domain.Tag {
	r := seed.New(seedValue, seed.StageTags)
	ids := seed.NewIDs(seedValue, seed.StageTags)

	names := append([]string(nil), corpora.BaseTags...)
	for i := 0; i < planningTagDraws; i++ {
		q := seed.Pick(r, corpora.Quarters)
		topic := seed.Pick(r, corpora.TagTopics)
		names = append(names, fmt.Sprintf("q%c-%s", q[1], topic))
	}

	seen := map[string]struct{}{}
	var tags []domain.Tag
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		tags = append(tags, domain.Tag{
			ID:             ids.Next(),
			OrganizationID: org.ID,
			Name:           n,
			Color:          seed.Pick(r, corpora.TagColors),
			CreatedAt:      createdAt,
		})
	}
	s.logger.Info("tags generated", "tags", len(tags))
	return tags
}

// Schema is the custom-field catalog plus its per-project attachment.
type Schema struct {
	Definitions []domain.CustomFieldDefinition
	Attachments []domain.ProjectCustomField
	// ByProject lists attached field ids per project in attachment order.
	ByProject map[string][]string
}

// Definition returns the definition with id.
func (s Schema) Definition(id string) (domain.CustomFieldDefinition, bool) {
	for _, d := range s.Definitions {
		if d.ID == id {
			return d, true
		}
	}
	return domain.CustomFieldDefinition{}, false
}

type fieldSpec struct {
	name     string
	t        domain.FieldType
	category domain.FieldCategory
	options  []string
}

var catalog = []fieldSpec{
	{"Priority", domain.FieldEnum, domain.CategoryOptions, corpora.PriorityOptions},
	{"Status", domain.FieldEnum, domain.CategoryStatus, corpora.StatusOptions},
	{"Customer Impact", domain.FieldEnum, domain.CategoryOptions, corpora.CustomerImpactOptions},
	{"Channel", domain.FieldEnum, domain.CategoryOptions, corpora.ChannelOptions},
	{"Region", domain.FieldEnum, domain.CategoryOptions, corpora.RegionOptions},
	{"Effort (hours)", domain.FieldNumber, domain.CategoryEffort, nil},
	{"Story Points", domain.FieldNumber, domain.CategoryStoryPoints, nil},
	{"Confidence", domain.FieldNumber, domain.CategoryConfidence, nil},
	{"Target Release", domain.FieldText, domain.CategoryRelease, nil},
	{"Owner Group", domain.FieldText, domain.CategoryOwner, nil},
}

// fieldsByType lists, after Status, the catalog fields each project type attaches.
var fieldsByType = map[domain.ProjectType][]string{
	domain.ProjectSprint:            {"Priority", "Story Points", "Effort (hours)"},
	domain.ProjectBugTriage:         {"Priority", "Story Points", "Effort (hours)"},
	domain.ProjectProductRoadmap:    {"Priority", "Confidence", "Owner Group", "Target Release"},
	domain.ProjectMarketingCampaign: {"Channel", "Region"},
	domain.ProjectContentCalendar:   {"Channel", "Region"},
	domain.ProjectOpsInitiative:     {"Priority", "Owner Group"},
	domain.ProjectSalesEnablement:   {"Priority", "Owner Group"},
}

// CustomFields defines the catalog and attaches a type-appropriate subset to
// every project. Status is always attached first.
func (s Service) CustomFields(seedValue int64, org domain.Organization, projects []domain.Project, createdAt time.Time) (Schema, error) {
	r := seed.New(seedValue, seed.StageCustomFields)
	ids := seed.NewIDs(seedValue, seed.StageCustomFields)

	schema := Schema{ByProject: make(map[string][]string, len(projects))}
	byName := map[string]string{}
	for _, spec := range catalog {
		def, err := domain.NewCustomFieldDefinition(ids.Next(), org.ID, spec.name, spec.t, spec.category, spec.options, createdAt)
		if err != nil {
			return Schema{}, fmt.Errorf("define custom field: %w", err)
		}
		schema.Definitions = append(schema.Definitions, def)
		byName[spec.name] = def.ID
	}

	statusID := byName["Status"]
	for _, p := range projects {
		chosen := []string{statusID}
		for _, name := range fieldsByType[p.Type] {
			chosen = append(chosen, byName[name])
		}
		if (p.Type == domain.ProjectBugTriage || p.Type == domain.ProjectProductRoadmap) && r.Chance(0.75) {
			chosen = append(chosen, byName["Customer Impact"])
		}
		chosen = dedupe(chosen)
		schema.ByProject[p.ID] = chosen
		for _, id := range chosen {
			schema.Attachments = append(schema.Attachments, domain.ProjectCustomField{
				ProjectID:     p.ID,
				CustomFieldID: id,
				IsRequired:    id == statusID && r.Chance(0.35),
				CreatedAt:     createdAt,
			})
		}
	}
	s.logger.Info("custom fields generated",
		"definitions", len(schema.Definitions),
		"attachments", len(schema.Attachments),
	)
	return schema, nil
}

func dedupe(ids []string) []string {
	seen := map[string]struct{}{}
	out := ids[:0]
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
