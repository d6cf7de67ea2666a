package taxonomy

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
)

func newService() Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var created = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestTagsAreDistinct(t *testing.T) {
	tags := newService().Tags(1337, domain.Organization{ID: "org"}, created)
	if len(tags) <= len(corpora.BaseTags) {
		t.Fatalf("expected planning tags beyond the base set, got %d", len(tags))
	}
	if len(tags) > len(corpora.BaseTags)+len(corpora.Quarters)*len(corpora.TagTopics) {
		t.Fatalf("too many tags: %d", len(tags))
	}
	seen := map[string]bool{}
	for i, tag := range tags {
		if seen[tag.Name] {
			t.Fatalf("duplicate tag %s", tag.Name)
		}
		seen[tag.Name] = true
		if i < len(corpora.BaseTags) && tag.Name != corpora.BaseTags[i] {
			t.Fatalf("base tags must come first, got %s at %d", tag.Name, i)
		}
		if i >= len(corpora.BaseTags) && !strings.HasPrefix(tag.Name, "q") {
			t.Fatalf("unexpected planning tag %s", tag.Name)
		}
	}
}

func TestCustomFieldsAttachStatusFirst(t *testing.T) {
	projects := []domain.Project{
		{ID: "sprint", Type: domain.ProjectSprint},
		{ID: "road", Type: domain.ProjectProductRoadmap},
		{ID: "mkt", Type: domain.ProjectMarketingCampaign},
	}
	schema, err := newService().CustomFields(1337, domain.Organization{ID: "org"}, projects, created)
	if err != nil {
		t.Fatalf("custom fields: %v", err)
	}
	if len(schema.Definitions) != len(catalog) {
		t.Fatalf("expected %d definitions, got %d", len(catalog), len(schema.Definitions))
	}
	for _, p := range projects {
		ids := schema.ByProject[p.ID]
		if len(ids) == 0 {
			t.Fatalf("project %s has no fields", p.ID)
		}
		status, ok := schema.Definition(ids[0])
		if !ok || status.Category != domain.CategoryStatus {
			t.Fatalf("first field of %s is not status", p.ID)
		}
		seen := map[string]bool{}
		for _, id := range ids {
			if seen[id] {
				t.Fatalf("field %s attached twice to %s", id, p.ID)
			}
			seen[id] = true
		}
	}
	if got := len(schema.ByProject["sprint"]); got != 4 {
		t.Fatalf("sprint should carry 4 fields, got %d", got)
	}
	if got := len(schema.ByProject["mkt"]); got != 3 {
		t.Fatalf("marketing should carry 3 fields, got %d", got)
	}
	for _, a := range schema.Attachments {
		def, _ := schema.Definition(a.CustomFieldID)
		if a.IsRequired && def.Category != domain.CategoryStatus {
			t.Fatalf("only status may be required, got %s", def.Name)
		}
	}
}

func TestDefinitionsCarryCategories(t *testing.T) {
	schema, err := newService().CustomFields(1, domain.Organization{ID: "org"}, nil, created)
	if err != nil {
		t.Fatalf("custom fields: %v", err)
	}
	for _, d := range schema.Definitions {
		if d.Category.FieldType() != d.Type {
			t.Fatalf("%s: category %s inconsistent with %s", d.Name, d.Category, d.Type)
		}
		if d.Type == domain.FieldEnum {
			if _, err := d.Options(); err != nil {
				t.Fatalf("%s: %v", d.Name, err)
			}
		}
	}
}
