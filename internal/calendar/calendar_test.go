package calendar

import (
	"testing"
	"time"

	"github.com/splax/worksim/internal/seed"
)

var testEnd = time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

func TestWorkdayStaysInWindow(t *testing.T) {
	w := WindowEndingAt(testEnd, 90)
	r := seed.New(1337, seed.StageTasks)
	weekend := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		ts := w.Workday(r)
		if !w.Contains(ts) {
			t.Fatalf("%s outside window %s..%s", ts, w.Start, w.End)
		}
		if ts.Nanosecond() != 0 {
			t.Fatalf("expected whole seconds, got %s", ts)
		}
		if wd := ts.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend++
		}
	}
	if frac := float64(weekend) / draws; frac > 0.15 {
		t.Fatalf("weekend share %.2f is not biased toward workdays", frac)
	}
}

func TestAdjustToWeekday(t *testing.T) {
	r := seed.New(3, seed.StageTasks)
	monday := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if got := AdjustToWeekday(r, monday); !got.Equal(monday) {
		t.Fatalf("weekday should be unchanged, got %s", got)
	}

	saturday := monday.AddDate(0, 0, 5)
	moved, kept := 0, 0
	for i := 0; i < 1000; i++ {
		got := AdjustToWeekday(r, saturday)
		switch {
		case got.Equal(saturday):
			kept++
		case got.Equal(saturday.AddDate(0, 0, 2)):
			moved++
		default:
			t.Fatalf("unexpected adjusted date %s", got)
		}
	}
	if kept == 0 || moved < 700 {
		t.Fatalf("unexpected split moved=%d kept=%d", moved, kept)
	}
}

func TestDueDateDistribution(t *testing.T) {
	r := seed.New(11, seed.StageTasks)
	created := time.Date(2026, time.February, 10, 14, 30, 0, 0, time.UTC)
	none, overdue := 0, 0
	const draws = 5000
	for i := 0; i < draws; i++ {
		due := DueDate(r, created, DueHorizonDays)
		if due == nil {
			none++
			continue
		}
		delta := WholeDaysBetween(Day(created), *due)
		if delta < 0 {
			overdue++
			if delta < -30 {
				t.Fatalf("overdue offset %d beyond 30 days", delta)
			}
			continue
		}
		if delta < 1 || delta > DueHorizonDays {
			t.Fatalf("offset %d outside 1..%d", delta, DueHorizonDays)
		}
	}
	if frac := float64(none) / draws; frac < 0.07 || frac > 0.13 {
		t.Fatalf("no-due fraction %.3f far from 0.10", frac)
	}
	if overdue == 0 {
		t.Fatalf("expected some overdue dates")
	}
}

func TestUpdatedAndCompletedAreOrderedAndClamped(t *testing.T) {
	w := WindowEndingAt(testEnd, 30)
	r := seed.New(5, seed.StageTasks)
	for i := 0; i < 1000; i++ {
		created := w.Workday(r)
		updated := w.UpdatedAt(r, created)
		completed := w.CompletedAt(r, created)
		if updated.Before(created) || completed.Before(created) {
			t.Fatalf("timestamps before creation: created=%s updated=%s completed=%s", created, updated, completed)
		}
		if updated.After(w.End) || completed.After(w.End) {
			t.Fatalf("timestamps after window end")
		}
		if ISO(updated) < ISO(created) {
			t.Fatalf("formatted timestamps out of order: %s < %s", ISO(updated), ISO(created))
		}
	}
}
