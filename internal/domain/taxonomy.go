package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// ErrNoOptions is returned when an enum field has no usable options.
var ErrNoOptions = errors.New("domain: enum field has no options")

// Tag is an organization-wide label.
type Tag struct {
	ID             string
	OrganizationID string
	Name           string
	Color          string
	CreatedAt      time.Time
}

// FieldType is the declared storage type of a custom field.
type FieldType string

const (
	FieldEnum   FieldType = "enum"
	FieldNumber FieldType = "number"
	FieldText   FieldType = "text"
)

// FieldCategory fixes what kind of value a custom field holds. It is set when
// the definition is created so value generation never inspects field names.
type FieldCategory string

const (
	CategoryStatus      FieldCategory = "status"
	CategoryOptions     FieldCategory = "options"
	CategoryStoryPoints FieldCategory = "story_points"
	CategoryEffort      FieldCategory = "effort"
	CategoryConfidence  FieldCategory = "confidence"
	CategoryNumber      FieldCategory = "number"
	CategoryRelease     FieldCategory = "release"
	CategoryOwner       FieldCategory = "owner"
	CategoryText        FieldCategory = "text"
)

// FieldType returns the storage type a category implies.
func (c FieldCategory) FieldType() FieldType {
	switch c {
	case CategoryStatus, CategoryOptions:
		return FieldEnum
	case CategoryStoryPoints, CategoryEffort, CategoryConfidence, CategoryNumber:
		return FieldNumber
	default:
		return FieldText
	}
}

// CategoryForName infers a category from a display name for definitions that
// arrive without one. It is meant to run once, at definition time.
func CategoryForName(t FieldType, name string) FieldCategory {
	lname := strings.ToLower(name)
	switch t {
	case FieldEnum:
		if lname == "status" {
			return CategoryStatus
		}
		return CategoryOptions
	case FieldNumber:
		switch {
		case strings.Contains(lname, "story"):
			return CategoryStoryPoints
		case strings.Contains(lname, "effort"), strings.Contains(lname, "hour"):
			return CategoryEffort
		case strings.Contains(lname, "confidence"):
			return CategoryConfidence
		}
		return CategoryNumber
	default:
		switch {
		case strings.Contains(lname, "release"):
			return CategoryRelease
		case strings.Contains(lname, "owner"):
			return CategoryOwner
		}
		return CategoryText
	}
}

// CustomFieldDefinition declares a typed field that projects can attach.
type CustomFieldDefinition struct {
	ID              string
	OrganizationID  string
	Name            string
	Type            FieldType
	Category        FieldCategory
	EnumOptionsJSON *string
	CreatedAt       time.Time
}

// NewCustomFieldDefinition builds a definition, encoding enum options and
// resolving the category from the name when none is given.
func NewCustomFieldDefinition(id, orgID, name string, t FieldType, category FieldCategory, options []string, createdAt time.Time) (CustomFieldDefinition, error) {
	if category == "" {
		category = CategoryForName(t, name)
	}
	if category.FieldType() != t {
		return CustomFieldDefinition{}, fmt.Errorf("custom field %q: category %s does not fit type %s", name, category, t)
	}
	def := CustomFieldDefinition{
		ID:             id,
		OrganizationID: orgID,
		Name:           name,
		Type:           t,
		Category:       category,
		CreatedAt:      createdAt,
	}
	if t == FieldEnum {
		raw, err := sonic.ConfigStd.Marshal(options)
		if err != nil {
			return CustomFieldDefinition{}, fmt.Errorf("encode options for %q: %w", name, err)
		}
		encoded := string(raw)
		def.EnumOptionsJSON = &encoded
	}
	return def, nil
}

// Options decodes the enum option list.
func (d CustomFieldDefinition) Options() ([]string, error) {
	if d.EnumOptionsJSON == nil || strings.TrimSpace(*d.EnumOptionsJSON) == "" {
		return nil, ErrNoOptions
	}
	var options []string
	if err := sonic.UnmarshalString(*d.EnumOptionsJSON, &options); err != nil {
		return nil, fmt.Errorf("decode options for %q: %w", d.Name, err)
	}
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	return options, nil
}

// ProjectCustomField attaches a definition to a project.
type ProjectCustomField struct {
	ProjectID     string
	CustomFieldID string
	IsRequired    bool
	CreatedAt     time.Time
}
