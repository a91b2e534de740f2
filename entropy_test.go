package dtree

import (
	"errors"
	"math"
	"testing"

	"github.com/minhnghia2208/dtree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClass = feature.NewDiscreteFeature("class", []string{"a", "b", "c", "d"})

func countsFor(t *testing.T, labels ...string) *ClassCounts {
	cc := NewClassCounts(testClass)
	for _, l := range labels {
		_, err := cc.Add(l)
		require.NoError(t, err)
	}
	return cc
}

func TestEntropy(t *testing.T) {
	testCases := []struct {
		name     string
		labels   []string
		expected float64
	}{
		{"empty", nil, 0},
		{"pure", []string{"a", "a", "a"}, 0},
		{"two even classes", []string{"a", "b", "a", "b"}, 1},
		{"four even classes", []string{"a", "b", "c", "d", "d", "c", "b", "a"}, 2},
		{"uneven", []string{"a", "a", "a", "b"}, -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cc := countsFor(t, tc.labels...)
			e := Entropy(cc, cc.Total())
			assert.False(t, math.IsNaN(e))
			assert.InDelta(t, tc.expected, e, 1e-9)
		})
	}
}

func TestClassCounts(t *testing.T) {
	cc := countsFor(t, "a", "c", "a")
	assert.Equal(t, 3, cc.Total())
	assert.Equal(t, 2, cc.Count("a"))
	assert.Equal(t, 0, cc.Count("b"))
	assert.Equal(t, 1, cc.Count("c"))
	assert.Equal(t, 0, cc.Count("z"))

	n, err := cc.Add("a")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = cc.Add("z")
	var uce *UnknownClassError
	require.True(t, errors.As(err, &uce))
	assert.Equal(t, "z", uce.Label)
	assert.Equal(t, "class", uce.Class)
	assert.Equal(t, 4, cc.Total())

	_, err = cc.Add("")
	assert.EqualError(t, err, "sample has no value for class feature class")
}
