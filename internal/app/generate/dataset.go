package generate

import (
	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/service/org"
	"github.com/splax/worksim/internal/service/task"
	"github.com/splax/worksim/internal/service/taxonomy"
)

// Dataset is every entity of one run, before it is written.
type Dataset struct {
	Window      calendar.Window
	Org         org.Result
	Memberships []domain.TeamMembership
	Projects    []domain.Project
	Sections    []domain.Section
	Tags        []domain.Tag
	Schema      taxonomy.Schema
	Work        task.Result
	Comments    []domain.Comment
	Attachments []domain.Attachment
}

type batch struct {
	table domain.Table
	rows  [][]any
}

// batches lists the inserts in foreign-key order. Users are inserted without
// managers; the edges follow as updates.
func (d Dataset) batches() []batch {
	return []batch{
		{domain.OrganizationsTable, [][]any{d.Org.Organization.Row()}},
		{domain.TeamsTable, domain.Rows(d.Org.Teams)},
		{domain.UsersTable, d.Org.UserRows()},
		{domain.TeamMembershipsTable, domain.Rows(d.Memberships)},
		{domain.ProjectsTable, domain.Rows(d.Projects)},
		{domain.SectionsTable, domain.Rows(d.Sections)},
		{domain.TagsTable, domain.Rows(d.Tags)},
		{domain.CustomFieldDefinitionsTable, domain.Rows(d.Schema.Definitions)},
		{domain.ProjectCustomFieldsTable, domain.Rows(d.Schema.Attachments)},
		{domain.TasksTable, domain.Rows(d.Work.Tasks)},
		{domain.SubtasksTable, domain.Rows(d.Work.Subtasks)},
		{domain.TaskTagsTable, domain.Rows(d.Work.TaskTags)},
		{domain.CustomFieldValuesTable, domain.Rows(d.Work.Values)},
		{domain.CommentsTable, domain.Rows(d.Comments)},
		{domain.AttachmentsTable, domain.Rows(d.Attachments)},
	}
}

// Counts returns the row count of every table.
func (d Dataset) Counts() map[string]int {
	out := map[string]int{}
	for _, b := range d.batches() {
		out[b.table.Name] = len(b.rows)
	}
	return out
}
