package planner

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmptyCategory is returned when a catalog category has no items to pick from.
var ErrEmptyCategory = errors.New("catalog category is empty")

// RandSource supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// SelectForWeek returns count items drawn from items. The items are shuffled
// once (Fisher-Yates) and then taken cyclically, so no item repeats while
// count <= len(items) and repeats follow the same shuffled order otherwise.
func SelectForWeek[T any](rng RandSource, items []T, count int) ([]T, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCategory
	}
	if count < 0 {
		count = 0
	}

	shuffled := slices.Clone(items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	selected := make([]T, count)
	for i := range selected {
		selected[i] = shuffled[i%len(shuffled)]
	}
	return selected, nil
}
