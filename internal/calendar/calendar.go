// Package calendar holds the time-window and scheduling helpers shared by the
// generators. Every timestamp it returns is UTC and whole-second.
package calendar

import (
	"math"
	"time"

	"github.com/splax/worksim/internal/seed"
)

const (
	// TimeLayout is the persisted timestamp format.
	TimeLayout = time.RFC3339
	// DateLayout is the persisted date format.
	DateLayout = "2006-01-02"

	// KeepWeekendProb is how often a weekend date is left alone.
	KeepWeekendProb = 0.15
	// DueHorizonDays bounds the long-term due-date bucket.
	DueHorizonDays = 120

	workdayAttempts = 40
	day             = 24 * time.Hour
)

// Window is the closed interval all generated activity falls into.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowEndingAt returns the window of the given length ending at end.
func WindowEndingAt(end time.Time, days int) Window {
	end = end.UTC().Truncate(time.Second)
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// Contains reports whether t lies inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Clamp pins t to the window bounds.
func (w Window) Clamp(t time.Time) time.Time {
	if t.Before(w.Start) {
		return w.Start
	}
	if t.After(w.End) {
		return w.End
	}
	return t
}

// Random returns a uniform instant inside the window.
func (w Window) Random(r *seed.Rand) time.Time {
	span := w.End.Sub(w.Start)
	offset := time.Duration(r.Float64() * float64(span))
	return w.Start.Add(offset).Truncate(time.Second)
}

// Workday returns an instant biased toward Monday–Wednesday and office hours.
func (w Window) Workday(r *seed.Rand) time.Time {
	for i := 0; i < workdayAttempts; i++ {
		t := w.Random(r)
		if !r.Chance(weekdayAcceptance(t.Weekday())) {
			continue
		}
		if h := t.Hour(); h >= 8 && h <= 19 {
			return t
		}
	}
	return w.Random(r)
}

func weekdayAcceptance(d time.Weekday) float64 {
	switch d {
	case time.Monday, time.Tuesday, time.Wednesday:
		return 0.75
	case time.Thursday:
		return 0.55
	case time.Friday:
		return 0.45
	default:
		return 0.15
	}
}

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WholeDaysBetween returns the number of complete days from a to b.
func WholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / day)
}

// AdjustToWeekday moves a weekend day forward to the following Monday
// (two days from Saturday, one from Sunday) unless the KeepWeekendProb roll
// keeps it. Weekdays are returned unchanged without
// consuming randomness.
func AdjustToWeekday(r *seed.Rand, d time.Time) time.Time {
	wd := d.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		return d
	}
	if r.Float64() > 1-KeepWeekendProb {
		return d
	}
	if wd == time.Saturday {
		return d.AddDate(0, 0, 2)
	}
	return d.AddDate(0, 0, 1)
}

// DueDate draws a due date relative to the creation day. A nil result means
// no due date. The thresholds are cumulative: 10% none, then 5% overdue, then
// near/short/mid/long-term buckets at 25/65/85%.
func DueDate(r *seed.Rand, created time.Time, horizonDays int) *time.Time {
	created = Day(created)
	if r.Chance(0.10) {
		return nil
	}
	if r.Chance(0.05) {
		overdue := int(math.Max(1, r.LogNormal(1.2, 0.6)))
		if overdue > 30 {
			overdue = 30
		}
		d := created.AddDate(0, 0, -overdue)
		return &d
	}
	var offset int
	switch x := r.Float64(); {
	case x < 0.25:
		offset = r.IntBetween(1, 7)
	case x < 0.65:
		offset = r.IntBetween(8, 30)
	case x < 0.85:
		offset = r.IntBetween(31, 90)
	default:
		offset = r.IntBetween(91, horizonDays)
	}
	d := created.AddDate(0, 0, offset)
	return &d
}

// UpdatedAt returns created plus a log-normal number of hours, clamped.
func (w Window) UpdatedAt(r *seed.Rand, created time.Time) time.Time {
	hours := math.Max(0.1, r.LogNormal(2.2, 0.9))
	t := created.Add(time.Duration(hours * float64(time.Hour))).Truncate(time.Second)
	return w.Clamp(t)
}

// CompletedAt returns created plus a log-normal cycle time in days, clamped.
func (w Window) CompletedAt(r *seed.Rand, created time.Time) time.Time {
	days := math.Max(0.15, r.LogNormal(1.35, 0.75))
	t := created.Add(time.Duration(days * float64(day))).Truncate(time.Second)
	return w.Clamp(t)
}

// ISO formats a timestamp for storage.
func ISO(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ISODate formats a date for storage.
func ISODate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
