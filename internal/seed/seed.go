// Package seed derives every random stream of a run from one master seed.
package seed

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Stage is the fixed offset added to the master seed for one pipeline stage.
type Stage uint64

const (
	StageOrganization Stage = 11
	StageTeams        Stage = 17
	StageUsers        Stage = 23
	StageNames        Stage = 29
	StageMemberships  Stage = 31
	StageProjects     Stage = 37
	StageSections     Stage = 39
	StageTags         Stage = 41
	StageCustomFields Stage = 43
	StageTasks        Stage = 47
	StageComments     Stage = 59
	StageAttachments  Stage = 61
)

const idStreamSeparation = 0x9e3779b97f4a7c15

// Rand is a PCG-backed generator with the sampling helpers the generators share.
type Rand struct {
	*rand.Rand
}

// New returns the value stream for stage.
func New(seed int64, stage Stage) *Rand {
	return &Rand{rand.New(rand.NewPCG(uint64(seed)+uint64(stage), uint64(stage)))}
}

// NewIDs returns the identifier stream for stage. It never shares state with
// the value stream, so adding an entity does not shift sampled values.
func NewIDs(seed int64, stage Stage) *IDs {
	return &IDs{r: rand.New(rand.NewPCG(uint64(seed)+uint64(stage), uint64(stage)^idStreamSeparation))}
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// IntBetween returns a uniform integer in [lo, hi].
func (r *Rand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi).
func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// LogNormal draws from a log-normal distribution with the given underlying
// normal mean and standard deviation.
func (r *Rand) LogNormal(mu, sigma float64) float64 {
	return math.Exp(mu + sigma*r.NormFloat64())
}

// Weighted returns an index into weights chosen proportionally to its weight.
func (r *Rand) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := r.Float64() * total
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](r *Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// PickWeighted returns items[i] with probability proportional to weights[i].
func PickWeighted[T any](r *Rand, items []T, weights []float64) T {
	return items[r.Weighted(weights)]
}

// Sample draws k distinct elements in draw order. k is capped at len(items).
func Sample[T any](r *Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	if k*4 > len(items) {
		idx := r.Perm(len(items))[:k]
		out := make([]T, k)
		for i, j := range idx {
			out[i] = items[j]
		}
		return out
	}
	out := make([]T, 0, k)
	seen := make(map[int]struct{}, k)
	for len(out) < k {
		j := r.IntN(len(items))
		if _, dup := seen[j]; dup {
			continue
		}
		seen[j] = struct{}{}
		out = append(out, items[j])
	}
	return out
}

// IDs produces reproducible version 4 UUID strings.
type IDs struct {
	r *rand.Rand
}

// Read fills p from the underlying stream; it never fails.
func (g *IDs) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := g.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// Next returns the next identifier.
func (g *IDs) Next() string {
	id, err := uuid.NewRandomFromReader(g)
	if err != nil {
		panic("seed: id stream failed: " + err.Error())
	}
	return id.String()
}
