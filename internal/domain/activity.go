package domain

import "time"

// Comment is a note left on a task or a subtask.
type Comment struct {
	ID        string
	AuthorID  string
	TaskID    *string
	SubtaskID *string
	Body      string
	CreatedAt time.Time
}

// Attachment is a file uploaded to a task or a subtask.
type Attachment struct {
	ID         string
	TaskID     *string
	SubtaskID  *string
	UploaderID string
	FileName   string
	FileType   string
	SizeBytes  int64
	CreatedAt  time.Time
	URL        *string
}
