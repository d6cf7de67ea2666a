package task

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/splax/worksim/internal/seed"
)

func TestGeneratedRowsHoldInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seedValue := rapid.Int64().Draw(rt, "seed")
		projects := rapid.IntRange(1, 4).Draw(rt, "projects")
		sections := rapid.IntRange(1, 5).Draw(rt, "sections")
		avg := rapid.IntRange(0, 120).Draw(rt, "avg")
		tags := rapid.IntRange(0, 6).Draw(rt, "tags")

		in := fixture(rt, seedValue, projects, sections, avg, tags)
		res := generate(rt, in)
		checkInvariants(rt, in, res)
	})
}

func TestSameSeedSameRows(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seedValue := rapid.Int64().Draw(rt, "seed")
		a := generate(rt, fixture(rt, seedValue, 2, 3, 40, 3))
		b := generate(rt, fixture(rt, seedValue, 2, 3, 40, 3))
		if !reflect.DeepEqual(a, b) {
			rt.Fatalf("seed %d is not reproducible", seedValue)
		}
	})
}

func TestLoadTablePicksFromPool(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pool := rapid.SliceOfNDistinct(rapid.StringMatching(`u-[a-z]{3}`), 1, 8, rapid.ID[string]).Draw(rt, "pool")
		picks := rapid.IntRange(1, 50).Draw(rt, "picks")
		r := fixtureRand(rapid.Int64().Draw(rt, "seed"))
		load := NewLoadTable()
		for range picks {
			got := load.Pick(r, pool)
			found := false
			for _, id := range pool {
				found = found || id == got
			}
			if !found {
				rt.Fatalf("picked %s outside pool", got)
			}
		}
		if load.Total() != picks {
			rt.Fatalf("expected %d assignments, got %d", picks, load.Total())
		}
		if len(pool) <= 3 {
			lo, hi := picks, 0
			for _, id := range pool {
				lo = min(lo, load.Count(id))
				hi = max(hi, load.Count(id))
			}
			if hi-lo > 1 {
				rt.Fatalf("full-pool sampling left loads unbalanced: %d..%d", lo, hi)
			}
		}
	})
}

func fixtureRand(s int64) *seed.Rand {
	return seed.New(s, seed.StageTasks)
}
