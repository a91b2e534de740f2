package dtree

import (
	"math"

	"github.com/minhnghia2208/dtree/feature"
)

// epsilon smooths empty partitions on entropy computations. It never takes
// part in the counts themselves.
const epsilon = 1e-15

/*
ClassCounts holds the number of samples seen for each value of a class
feature, in the order the class feature declares its values.
*/
type ClassCounts struct {
	class  *feature.DiscreteFeature
	counts []int
	total  int
}

/*
NewClassCounts takes a discrete class feature and returns empty ClassCounts
for its values.
*/
func NewClassCounts(class *feature.DiscreteFeature) *ClassCounts {
	return &ClassCounts{class: class, counts: make([]int, len(class.AvailableValues()))}
}

/*
Add takes a label and increases its count, returning the updated count or
an *UnknownClassError if the label is not a value of the class feature.
*/
func (cc *ClassCounts) Add(label string) (int, error) {
	i := cc.class.Index(label)
	if i < 0 {
		return 0, &UnknownClassError{Class: cc.class.Name(), Label: label}
	}
	return cc.addIndex(i), nil
}

func (cc *ClassCounts) addIndex(i int) int {
	cc.counts[i]++
	cc.total++
	return cc.counts[i]
}

// empty returns ClassCounts for the same class feature with no counts.
func (cc *ClassCounts) empty() *ClassCounts {
	return NewClassCounts(cc.class)
}

// Count returns the count for the given label, 0 for unknown labels.
func (cc *ClassCounts) Count(label string) int {
	i := cc.class.Index(label)
	if i < 0 {
		return 0
	}
	return cc.counts[i]
}

// Total returns the sum of all counts.
func (cc *ClassCounts) Total() int {
	return cc.total
}

/*
Entropy takes class counts and their total and returns the Shannon
entropy in bits of the distribution they describe. A tiny epsilon is added
on the logarithms so that empty classes, or even an empty total, do not
produce NaN or infinite values.
*/
func Entropy(cc *ClassCounts, total int) float64 {
	t := float64(total) + epsilon
	var result float64
	for _, n := range cc.counts {
		c := float64(n)
		result -= c / t * math.Log2((c+epsilon)/t)
	}
	return result
}
