// Package distribute decides how a pool of questions is split across
// output quizzes. Partition mode assigns every question to exactly one
// unit with sizes differing by at most one; duplicate-allowed mode is
// the legacy behavior where each unit samples the full pool
// independently.
package distribute

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/abhisek/quizzer/internal/quiz"
)

// ErrEmptyInput is returned when there are no questions to distribute.
var ErrEmptyInput = errors.New("no questions to distribute")

// Plan is the computed distribution: one size per output unit.
// Warnings carry non-fatal conditions the caller should surface.
type Plan struct {
	UnitSizes []int
	Warnings  []string
}

// Total returns the number of question slots across all units.
func (p Plan) Total() int {
	sum := 0
	for _, s := range p.UnitSizes {
		sum += s
	}
	return sum
}

// Partition computes a plan that uses every question exactly once.
// unitCount <= 0 selects the default count, max(1, round(total/cap)).
// An explicit unitCount is honored even when it is below the computed
// minimum; sizes are still spread evenly over the requested count, so
// units may exceed cap, and a warning is attached. The first
// total%unitCount units get one extra question, which keeps the size
// difference between any two units at most 1.
func Partition(total, maxPer, unitCount int) (Plan, error) {
	if total <= 0 {
		return Plan{}, ErrEmptyInput
	}
	if maxPer <= 0 {
		return Plan{}, fmt.Errorf("max questions per quiz must be positive, got %d", maxPer)
	}

	computed := int(math.Round(float64(total) / float64(maxPer)))
	if computed < 1 {
		computed = 1
	}

	var warnings []string
	if unitCount <= 0 {
		unitCount = computed
	} else if unitCount < computed {
		warnings = append(warnings, fmt.Sprintf(
			"%d questions need %d quizzes (max %d each), but only generating %d: quiz sizes will exceed the cap",
			total, computed, maxPer, unitCount,
		))
	}

	base := total / unitCount
	remainder := total % unitCount

	sizes := make([]int, unitCount)
	for i := range sizes {
		sizes[i] = base
		if i < remainder {
			sizes[i]++
		}
	}

	return Plan{UnitSizes: sizes, Warnings: warnings}, nil
}

// Duplicates computes the legacy plan: unitCount units (default 1) of
// min(cap, total) questions each. Each unit is later filled by an
// independent shuffle of the full pool, so questions may repeat across
// units or be left out entirely.
func Duplicates(total, maxPer, unitCount int) (Plan, error) {
	if total <= 0 {
		return Plan{}, ErrEmptyInput
	}
	if maxPer <= 0 {
		return Plan{}, fmt.Errorf("max questions per quiz must be positive, got %d", maxPer)
	}
	if unitCount <= 0 {
		unitCount = 1
	}

	size := maxPer
	var warnings []string
	if total < maxPer {
		warnings = append(warnings, fmt.Sprintf(
			"source has %d questions, less than max %d: shrinking every quiz to %d",
			total, maxPer, total,
		))
		size = total
	}

	sizes := make([]int, unitCount)
	for i := range sizes {
		sizes[i] = size
	}
	return Plan{UnitSizes: sizes, Warnings: warnings}, nil
}

// Shuffle permutes pairs in place using rng. The planner's partition
// mode relies on a single shuffle of the whole pool before slicing, so
// callers shuffle once and then cut consecutive slices per unit.
func Shuffle(pairs []quiz.RawPair, rng *rand.Rand) {
	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
}

// Cut returns the consecutive slices of pairs described by the plan's
// unit sizes. It is the partition-mode counterpart of Shuffle: shuffle
// once, then cut. The total plan size must not exceed len(pairs).
func Cut(pairs []quiz.RawPair, p Plan) ([][]quiz.RawPair, error) {
	if p.Total() > len(pairs) {
		return nil, fmt.Errorf("plan needs %d questions, pool has %d", p.Total(), len(pairs))
	}

	units := make([][]quiz.RawPair, len(p.UnitSizes))
	offset := 0
	for i, size := range p.UnitSizes {
		units[i] = pairs[offset : offset+size]
		offset += size
	}
	return units, nil
}

// Sample fills each unit of the duplicate-allowed plan by reshuffling a
// copy of the full pool and truncating to the unit size.
func Sample(pairs []quiz.RawPair, p Plan, rng *rand.Rand) [][]quiz.RawPair {
	units := make([][]quiz.RawPair, len(p.UnitSizes))
	for i, size := range p.UnitSizes {
		pool := make([]quiz.RawPair, len(pairs))
		copy(pool, pairs)
		Shuffle(pool, rng)
		if size > len(pool) {
			size = len(pool)
		}
		units[i] = pool[:size]
	}
	return units
}
