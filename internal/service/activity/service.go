// Package activity generates the comments and attachments left on tasks and
// subtasks.
package activity

import (
	"log/slog"
	"time"

	"github.com/splax/worksim/internal/calendar"
	"github.com/splax/worksim/internal/corpora"
	"github.com/splax/worksim/internal/domain"
	"github.com/splax/worksim/internal/seed"
)

// Input is the work items activity attaches to.
type Input struct {
	Seed     int64
	Window   calendar.Window
	Users    []domain.User
	Tasks    []domain.Task
	Subtasks []domain.Subtask
}

// Service generates comments and attachments.
type Service struct {
	logger *slog.Logger
}

// New returns an activity service.
func New(logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return Service{logger: logger}
}

type density struct {
	prob    float64
	counts  []int
	weights []float64
}

var (
	taskComments    = density{prob: 0.30, counts: []int{1, 2, 3, 4}, weights: []float64{0.55, 0.25, 0.15, 0.05}}
	subtaskComments = density{prob: 0.15, counts: []int{1, 2}, weights: []float64{0.75, 0.25}}
)

const (
	taskAttachmentProb    = 0.06
	subtaskAttachmentProb = 0.03
)

// after returns the part of w that follows created, so activity never
// predates the item it belongs to.
func after(w calendar.Window, created time.Time) calendar.Window {
	return calendar.Window{Start: w.Clamp(created), End: w.End}
}

// Comments leaves a few comments on about 30% of tasks and 15% of subtasks.
func (s Service) Comments(in Input) []domain.Comment {
	if len(in.Users) == 0 {
		return nil
	}
	r := seed.New(in.Seed, seed.StageComments)
	ids := seed.NewIDs(in.Seed, seed.StageComments)

	var out []domain.Comment
	add := func(d density, created time.Time, bodies []string, task, subtask *string) {
		if !r.Chance(d.prob) {
			return
		}
		n := seed.PickWeighted(r, d.counts, d.weights)
		for range n {
			out = append(out, domain.Comment{
				ID:        ids.Next(),
				AuthorID:  seed.Pick(r, in.Users).ID,
				TaskID:    task,
				SubtaskID: subtask,
				CreatedAt: after(in.Window, created).Workday(r),
				Body:      seed.Pick(r, bodies),
			})
		}
	}
	for _, t := range in.Tasks {
		id := t.ID
		add(taskComments, t.CreatedAt, corpora.TaskComments, &id, nil)
	}
	for _, st := range in.Subtasks {
		id := st.ID
		add(subtaskComments, st.CreatedAt, corpora.SubtaskComments, nil, &id)
	}
	s.logger.Info("comments generated", "comments", len(out))
	return out
}

// Attachments uploads a file to about 6% of tasks and 3% of subtasks.
func (s Service) Attachments(in Input) []domain.Attachment {
	if len(in.Users) == 0 {
		return nil
	}
	r := seed.New(in.Seed, seed.StageAttachments)
	ids := seed.NewIDs(in.Seed, seed.StageAttachments)

	var out []domain.Attachment
	add := func(created time.Time, names []string, mu, sigma float64, task, subtask *string) {
		uploader := seed.Pick(r, in.Users).ID
		at := after(in.Window, created).Workday(r)
		ext := seed.Pick(r, corpora.FileTypes)
		out = append(out, domain.Attachment{
			ID:         ids.Next(),
			TaskID:     task,
			SubtaskID:  subtask,
			UploaderID: uploader,
			FileName:   seed.Pick(r, names) + "." + ext,
			FileType:   ext,
			SizeBytes:  int64(r.LogNormal(mu, sigma)),
			CreatedAt:  at,
		})
	}
	for _, t := range in.Tasks {
		if r.Chance(taskAttachmentProb) {
			id := t.ID
			add(t.CreatedAt, corpora.TaskAttachmentNames, 10.0, 0.8, &id, nil)
		}
	}
	for _, st := range in.Subtasks {
		if r.Chance(subtaskAttachmentProb) {
			id := st.ID
			add(st.CreatedAt, corpora.SubtaskAttachmentNames, 9.6, 0.9, nil, &id)
		}
	}
	s.logger.Info("attachments generated", "attachments", len(out))
	return out
}
