package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

/*
Split takes a slice of samples, the fraction of them to hold out for testing
and a source of randomness, and returns a training and a testing slice.

The testing slice has round(testFraction * len(samples)) samples, rounding
halves to even. Both slices are disjoint and together hold every given sample;
the given slice is not modified.
*/
func Split(samples []Sample, testFraction float64, r *rand.Rand) (train, test []Sample, err error) {
	if math.IsNaN(testFraction) || testFraction < 0 || testFraction > 1 {
		return nil, nil, fmt.Errorf("test fraction must be between 0 and 1, got %v", testFraction)
	}
	testSize := int(math.RoundToEven(testFraction * float64(len(samples))))
	shuffled := make([]Sample, len(samples))
	copy(shuffled, samples)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[testSize:], shuffled[:testSize], nil
}
