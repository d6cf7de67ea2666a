package domain

import (
	"errors"
	"testing"
	"time"
)

func TestRowsMatchTableColumns(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	text := "x"
	cases := []struct {
		table Table
		row   []any
	}{
		{OrganizationsTable, Organization{}.Row()},
		{TeamsTable, Team{}.Row()},
		{UsersTable, User{}.Row()},
		{TeamMembershipsTable, TeamMembership{}.Row()},
		{ProjectsTable, Project{}.Row()},
		{SectionsTable, Section{}.Row()},
		{TagsTable, Tag{}.Row()},
		{CustomFieldDefinitionsTable, CustomFieldDefinition{}.Row()},
		{ProjectCustomFieldsTable, ProjectCustomField{}.Row()},
		{TasksTable, Task{CreatedAt: now, UpdatedAt: now}.Row()},
		{SubtasksTable, Subtask{}.Row()},
		{TaskTagsTable, TaskTag{TaskID: &text}.Row()},
		{CustomFieldValuesTable, CustomFieldValue{Text: &text}.Row()},
		{CommentsTable, Comment{}.Row()},
		{AttachmentsTable, Attachment{}.Row()},
	}
	for _, tc := range cases {
		if len(tc.row) != len(tc.table.Columns) {
			t.Fatalf("%s: row has %d values, table has %d columns", tc.table.Name, len(tc.row), len(tc.table.Columns))
		}
	}
}

func TestTablesAreRegistered(t *testing.T) {
	seen := map[string]bool{}
	for _, table := range Tables() {
		if seen[table.Name] {
			t.Fatalf("duplicate table %s", table.Name)
		}
		seen[table.Name] = true
		got, ok := LookupTable(table.Name)
		if !ok || got.Name != table.Name {
			t.Fatalf("lookup %s failed", table.Name)
		}
	}
	if _, ok := LookupTable("nope"); ok {
		t.Fatal("expected unknown table lookup to fail")
	}
	if !TasksTable.Has("completed_at") || TasksTable.Has("project_type") {
		t.Fatal("unexpected column membership for tasks")
	}
}

func TestTaskRowEncoding(t *testing.T) {
	created := time.Date(2026, 3, 4, 9, 30, 15, 0, time.UTC)
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assignee := "user-2"
	task := Task{
		ID:         "task-1",
		ProjectID:  "project-1",
		SectionID:  "section-1",
		Name:       "Fix pagination",
		CreatorID:  "user-1",
		AssigneeID: &assignee,
		CreatedAt:  created,
		UpdatedAt:  created.Add(2 * time.Hour),
		DueDate:    &due,
	}
	row := task.Row()
	if row[4] != nil {
		t.Fatalf("expected nil description, got %v", row[4])
	}
	if row[6] != "user-2" {
		t.Fatalf("unexpected assignee %v", row[6])
	}
	if row[7] != "2026-03-04T09:30:15Z" {
		t.Fatalf("unexpected created_at %v", row[7])
	}
	if row[10] != "2026-03-10" {
		t.Fatalf("unexpected due_date %v", row[10])
	}
	if row[11] != int64(0) || row[12] != nil {
		t.Fatalf("unexpected completion columns %v %v", row[11], row[12])
	}
}

func TestCategoryForName(t *testing.T) {
	cases := []struct {
		fieldType FieldType
		name      string
		want      FieldCategory
	}{
		{FieldEnum, "Status", CategoryStatus},
		{FieldEnum, "Priority", CategoryOptions},
		{FieldNumber, "Story Points", CategoryStoryPoints},
		{FieldNumber, "Effort (hours)", CategoryEffort},
		{FieldNumber, "Confidence", CategoryConfidence},
		{FieldNumber, "Budget", CategoryNumber},
		{FieldText, "Target Release", CategoryRelease},
		{FieldText, "Owner Group", CategoryOwner},
		{FieldText, "Notes", CategoryText},
	}
	for _, tc := range cases {
		if got := CategoryForName(tc.fieldType, tc.name); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
		if tc.want.FieldType() != tc.fieldType {
			t.Fatalf("%s: category %s maps to %s", tc.name, tc.want, tc.want.FieldType())
		}
	}
}

func TestNewCustomFieldDefinition(t *testing.T) {
	now := time.Now()
	def, err := NewCustomFieldDefinition("cf-1", "org-1", "Priority", FieldEnum, "", []string{"P0", "P1", "P2", "P3"}, now)
	if err != nil {
		t.Fatalf("new definition: %v", err)
	}
	if def.Category != CategoryOptions {
		t.Fatalf("expected options category, got %s", def.Category)
	}
	options, err := def.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(options) != 4 || options[0] != "P0" || options[3] != "P3" {
		t.Fatalf("unexpected options %v", options)
	}

	if _, err := NewCustomFieldDefinition("cf-2", "org-1", "Story Points", FieldText, CategoryStoryPoints, nil, now); err == nil {
		t.Fatal("expected category/type mismatch error")
	}

	number, err := NewCustomFieldDefinition("cf-3", "org-1", "Story Points", FieldNumber, "", nil, now)
	if err != nil {
		t.Fatalf("new number definition: %v", err)
	}
	if number.EnumOptionsJSON != nil {
		t.Fatal("number field must not carry options")
	}
	if _, err := number.Options(); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
}

func TestOptionsRejectsMalformedJSON(t *testing.T) {
	raw := "{not json"
	def := CustomFieldDefinition{Name: "Broken", Type: FieldEnum, EnumOptionsJSON: &raw}
	if _, err := def.Options(); err == nil {
		t.Fatal("expected decode error")
	}
	empty := "[]"
	def.EnumOptionsJSON = &empty
	if _, err := def.Options(); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions for empty list, got %v", err)
	}
}

func TestCustomFieldValueSlots(t *testing.T) {
	n := 3.0
	v := CustomFieldValue{Number: &n}
	if v.Slots() != 1 || v.SlotType() != FieldNumber {
		t.Fatalf("unexpected slots %d type %s", v.Slots(), v.SlotType())
	}
	if (CustomFieldValue{}).Slots() != 0 {
		t.Fatal("empty value must have no slots")
	}
}
