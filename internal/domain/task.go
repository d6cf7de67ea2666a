package domain

import "time"

// Task is a unit of work inside a project section.
type Task struct {
	ID          string
	ProjectID   string
	SectionID   string
	Name        string
	Description *string
	CreatorID   string
	AssigneeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	StartDate   *time.Time
	DueDate     *time.Time
	Completed   bool
	CompletedAt *time.Time
}

// Subtask is a child of a task; project and section come from the parent.
type Subtask struct {
	ID           string
	ParentTaskID string
	Name         string
	Description  *string
	CreatorID    string
	AssigneeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DueDate      *time.Time
	Completed    bool
	CompletedAt  *time.Time
}

// TaskTag attaches a tag to exactly one of a task or a subtask.
type TaskTag struct {
	TaskID    *string
	SubtaskID *string
	TagID     string
	AddedAt   time.Time
}

// CustomFieldValue holds one typed value for a task or subtask. Exactly one
// of Text, Number and Enum is set.
type CustomFieldValue struct {
	ID            string
	CustomFieldID string
	TaskID        *string
	SubtaskID     *string
	Text          *string
	Number        *float64
	Enum          *string
	CreatedAt     time.Time
}

// Slots returns how many value slots are populated.
func (v CustomFieldValue) Slots() int {
	n := 0
	if v.Text != nil {
		n++
	}
	if v.Number != nil {
		n++
	}
	if v.Enum != nil {
		n++
	}
	return n
}

// SlotType reports the field type matching the populated slot.
func (v CustomFieldValue) SlotType() FieldType {
	switch {
	case v.Enum != nil:
		return FieldEnum
	case v.Number != nil:
		return FieldNumber
	case v.Text != nil:
		return FieldText
	}
	return ""
}
