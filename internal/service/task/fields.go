package task

import (
	"math"
	"strings"

	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

// categoryOf returns the definition's category, inferring one from the name
// when it is missing or belongs to a different field type.
func categoryOf(def domain.CustomFieldDefinition) domain.FieldCategory {
	if def.Category != "" && def.Category.FieldType() == def.Type {
		return def.Category
	}
	return domain.CategoryForName(def.Type, def.Name)
}

// fieldValue draws a candidate value for def into the slot its category
// implies. An enum field without usable options yields an empty value and
// consumes no randomness.
func fieldValue(r *seed.Rand, def domain.CustomFieldDefinition, category domain.FieldCategory) domain.CustomFieldValue {
	var v domain.CustomFieldValue
	switch category {
	case domain.CategoryStatus, domain.CategoryOptions:
		options, err := def.Options()
		if err != nil {
			return v
		}
		choice := seed.Pick(r, options)
		v.Enum = &choice
	case domain.CategoryStoryPoints:
		n := seed.Pick(r, corpora.StoryPointScale)
		v.Number = &n
	case domain.CategoryEffort:
		n := round(r.LogNormal(1.1, 0.7), 1)
		v.Number = &n
	case domain.CategoryConfidence:
		n := round(r.Uniform(0.3, 0.95), 2)
		v.Number = &n
	case domain.CategoryNumber:
		n := round(r.Uniform(1, 10), 1)
		v.Number = &n
	case domain.CategoryRelease:
		s := seed.Pick(r, corpora.ReleaseTags)
		v.Text = &s
	case domain.CategoryOwner:
		s := seed.Pick(r, corpora.OwnerGroups)
		v.Text = &s
	default:
		alt := "Follow up"
		if r.Float64() < 0.5 {
			alt = ""
		}
		s := seed.Pick(r, []string{"TBD", alt})
		v.Text = &s
	}
	if v.Text != nil && strings.TrimSpace(*v.Text) == "" {
		v.Text = nil
	}
	return v
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
