package task

import "github.com/splax/worksim/internal/seed"

// LoadTable counts how many tasks and subtasks each user has been assigned.
// One table is shared by every project of a run.
type LoadTable struct {
	counts map[string]int
}

// NewLoadTable returns an empty table.
func NewLoadTable() *LoadTable {
	return &LoadTable{counts: map[string]int{}}
}

// Count returns the assignments recorded for user.
func (l *LoadTable) Count(user string) int {
	return l.counts[user]
}

// Total returns the number of recorded assignments.
func (l *LoadTable) Total() int {
	n := 0
	for _, c := range l.counts {
		n += c
	}
	return n
}

// Pick samples up to three distinct candidates from pool and assigns the
// least loaded one. The earliest drawn candidate wins ties. pool must not be
// empty.
func (l *LoadTable) Pick(r *seed.Rand, pool []string) string {
	candidates := seed.Sample(r, pool, min(3, len(pool)))
	chosen := candidates[0]
	for _, c := range candidates[1:] {
		if l.counts[c] < l.counts[chosen] {
			chosen = c
		}
	}
	l.counts[chosen]++
	return chosen
}
