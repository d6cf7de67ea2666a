package domain

import "time"

const (
	timeLayout = time.RFC3339
	dateLayout = "2006-01-02"
)

// Table describes a persisted relation: its name and ordered column list.
type Table struct {
	Name    string
	Columns []string
}

// Has reports whether column belongs to the table.
func (t Table) Has(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

var (
	OrganizationsTable = Table{"organizations", []string{"organization_id", "name", "domain", "created_at"}}
	TeamsTable         = Table{"teams", []string{"team_id", "organization_id", "name", "team_type", "created_at"}}
	UsersTable         = Table{"users", []string{
		"user_id", "organization_id", "email", "full_name", "title", "department",
		"location", "role", "manager_user_id", "hire_date", "created_at", "deactivated_at",
	}}
	TeamMembershipsTable = Table{"team_memberships", []string{"team_id", "user_id", "is_team_admin", "joined_at", "left_at"}}
	ProjectsTable        = Table{"projects", []string{
		"project_id", "organization_id", "owner_team_id", "name", "project_type", "privacy",
		"status", "start_date", "due_date", "created_at", "archived_at", "description",
	}}
	SectionsTable               = Table{"sections", []string{"section_id", "project_id", "name", "position", "created_at"}}
	TagsTable                   = Table{"tags", []string{"tag_id", "organization_id", "name", "color", "created_at"}}
	CustomFieldDefinitionsTable = Table{"custom_field_definitions", []string{
		"custom_field_id", "organization_id", "name", "field_type", "category", "enum_options_json", "created_at",
	}}
	ProjectCustomFieldsTable = Table{"project_custom_fields", []string{"project_id", "custom_field_id", "is_required", "created_at"}}
	TasksTable               = Table{"tasks", []string{
		"task_id", "project_id", "section_id", "name", "description", "creator_user_id",
		"assignee_user_id", "created_at", "updated_at", "start_date", "due_date", "completed", "completed_at",
	}}
	SubtasksTable = Table{"subtasks", []string{
		"subtask_id", "parent_task_id", "name", "description", "creator_user_id", "assignee_user_id",
		"created_at", "updated_at", "due_date", "completed", "completed_at",
	}}
	TaskTagsTable          = Table{"task_tags", []string{"task_id", "subtask_id", "tag_id", "added_at"}}
	CustomFieldValuesTable = Table{"custom_field_values", []string{
		"custom_field_value_id", "custom_field_id", "task_id", "subtask_id",
		"value_text", "value_number", "value_enum", "created_at",
	}}
	CommentsTable    = Table{"comments", []string{"comment_id", "author_user_id", "task_id", "subtask_id", "body", "created_at"}}
	AttachmentsTable = Table{"attachments", []string{
		"attachment_id", "task_id", "subtask_id", "uploader_user_id", "file_name",
		"file_type", "file_size_bytes", "created_at", "url",
	}}
)

// Tables lists every table in foreign-key order: parents before children.
func Tables() []Table {
	return []Table{
		OrganizationsTable,
		TeamsTable,
		UsersTable,
		TeamMembershipsTable,
		ProjectsTable,
		SectionsTable,
		TagsTable,
		CustomFieldDefinitionsTable,
		ProjectCustomFieldsTable,
		TasksTable,
		SubtasksTable,
		TaskTagsTable,
		CustomFieldValuesTable,
		CommentsTable,
		AttachmentsTable,
	}
}

// LookupTable returns the table registered under name.
func LookupTable(name string) (Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Rower is implemented by every persisted entity. Row values line up with the
// entity's Table columns and use only string, int64, float64 and nil.
type Rower interface {
	Row() []any
}

// Rows converts entities into row tuples.
func Rows[T Rower](items []T) [][]any {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = item.Row()
	}
	return rows
}

func (o Organization) Row() []any {
	return []any{o.ID, o.Name, o.Domain, timestamp(o.CreatedAt)}
}

func (t Team) Row() []any {
	return []any{t.ID, t.OrganizationID, t.Name, t.TeamType, timestamp(t.CreatedAt)}
}

func (u User) Row() []any {
	return []any{
		u.ID, u.OrganizationID, u.Email, u.FullName, u.Title, u.Department,
		u.Location, u.Role, nullString(u.ManagerUserID), date(u.HireDate),
		timestamp(u.CreatedAt), nullTimestamp(u.DeactivatedAt),
	}
}

func (m TeamMembership) Row() []any {
	return []any{m.TeamID, m.UserID, flag(m.IsTeamAdmin), timestamp(m.JoinedAt), nullTimestamp(m.LeftAt)}
}

func (p Project) Row() []any {
	return []any{
		p.ID, p.OrganizationID, p.OwnerTeamID, p.Name, string(p.Type), p.Privacy,
		p.Status, nullDate(p.StartDate), nullDate(p.DueDate), timestamp(p.CreatedAt),
		nullTimestamp(p.ArchivedAt), nullString(p.Description),
	}
}

func (s Section) Row() []any {
	return []any{s.ID, s.ProjectID, s.Name, int64(s.Position), timestamp(s.CreatedAt)}
}

func (t Tag) Row() []any {
	return []any{t.ID, t.OrganizationID, t.Name, t.Color, timestamp(t.CreatedAt)}
}

func (d CustomFieldDefinition) Row() []any {
	return []any{
		d.ID, d.OrganizationID, d.Name, string(d.Type), string(d.Category),
		nullString(d.EnumOptionsJSON), timestamp(d.CreatedAt),
	}
}

func (f ProjectCustomField) Row() []any {
	return []any{f.ProjectID, f.CustomFieldID, flag(f.IsRequired), timestamp(f.CreatedAt)}
}

func (t Task) Row() []any {
	return []any{
		t.ID, t.ProjectID, t.SectionID, t.Name, nullString(t.Description), t.CreatorID,
		nullString(t.AssigneeID), timestamp(t.CreatedAt), timestamp(t.UpdatedAt),
		nullDate(t.StartDate), nullDate(t.DueDate), flag(t.Completed), nullTimestamp(t.CompletedAt),
	}
}

func (s Subtask) Row() []any {
	return []any{
		s.ID, s.ParentTaskID, s.Name, nullString(s.Description), s.CreatorID,
		nullString(s.AssigneeID), timestamp(s.CreatedAt), timestamp(s.UpdatedAt),
		nullDate(s.DueDate), flag(s.Completed), nullTimestamp(s.CompletedAt),
	}
}

func (t TaskTag) Row() []any {
	return []any{nullString(t.TaskID), nullString(t.SubtaskID), t.TagID, timestamp(t.AddedAt)}
}

func (v CustomFieldValue) Row() []any {
	var number any
	if v.Number != nil {
		number = *v.Number
	}
	return []any{
		v.ID, v.CustomFieldID, nullString(v.TaskID), nullString(v.SubtaskID),
		nullString(v.Text), number, nullString(v.Enum), timestamp(v.CreatedAt),
	}
}

func (c Comment) Row() []any {
	return []any{c.ID, c.AuthorID, nullString(c.TaskID), nullString(c.SubtaskID), c.Body, timestamp(c.CreatedAt)}
}

func (a Attachment) Row() []any {
	return []any{
		a.ID, nullString(a.TaskID), nullString(a.SubtaskID), a.UploaderID, a.FileName,
		a.FileType, a.SizeBytes, timestamp(a.CreatedAt), nullString(a.URL),
	}
}

// Row encodes the assignment for an update keyed on user_id: the new
// manager first, then the key.
func (m ManagerAssignment) Row() []any {
	return []any{m.ManagerUserID, m.UserID}
}

func timestamp(t time.Time) any {
	return t.UTC().Format(timeLayout)
}

func date(t time.Time) any {
	return t.UTC().Format(dateLayout)
}

func nullTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return timestamp(*t)
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return date(*t)
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func flag(b bool) any {
	if b {
		return int64(1)
	}
	return int64(0)
}
