package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuousFeatureParse(t *testing.T) {
	cf := NewContinuousFeature("income")
	testCases := []struct {
		raw      string
		expected interface{}
		fails    bool
	}{
		{"", nil, false},
		{UndefinedValue, nil, false},
		{"52.5", 52.5, false},
		{"-3", -3.0, false},
		{"1e3", 1000.0, false},
		{"high", nil, true},
		{"NaN", nil, true},
		{"Inf", nil, true},
		{"-Inf", nil, true},
	}
	for _, tc := range testCases {
		v, err := cf.Parse(tc.raw)
		if tc.fails {
			assert.Error(t, err, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.expected, v, tc.raw)
	}
}

func TestDiscreteFeatureParse(t *testing.T) {
	df := NewDiscreteFeature("label", []string{"red", "light blue"})
	v, err := df.Parse("light blue")
	require.NoError(t, err)
	assert.Equal(t, "light blue", v)
	for _, raw := range []string{"", UndefinedValue} {
		v, err = df.Parse(raw)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
	_, err = df.Parse("green")
	assert.Error(t, err)
	assert.Equal(t, 1, df.Index("light blue"))
	assert.Equal(t, -1, df.Index("green"))
}

func TestValid(t *testing.T) {
	cf := NewContinuousFeature("income")
	for _, v := range []interface{}{nil, 1.5} {
		ok, err := cf.Valid(v)
		assert.True(t, ok)
		assert.NoError(t, err)
	}
	ok, err := cf.Valid("1.5")
	assert.False(t, ok)
	assert.Error(t, err)

	df := NewDiscreteFeature("label", []string{"red"})
	ok, err = df.Valid(1.0)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestCriterionRoute(t *testing.T) {
	c := NewCriterion(NewContinuousFeature("income"), 50)
	testCases := []struct {
		name     string
		value    interface{}
		expected Branch
		invalid  bool
	}{
		{"below", 49.99, LessThan, false},
		{"at threshold", 50.0, GreaterOrEqual, false},
		{"above", 80.0, GreaterOrEqual, false},
		{"undefined", nil, Undefined, false},
		{"nan", math.NaN(), Undefined, false},
		{"infinite", math.Inf(-1), Undefined, false},
		{"string", "50", Undefined, true},
		{"int", 50, Undefined, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := c.Route(tc.value)
			assert.Equal(t, tc.expected, b)
			if !tc.invalid {
				assert.NoError(t, err)
				return
			}
			var ive *InvalidValueError
			require.ErrorAs(t, err, &ive)
			assert.Equal(t, "income", ive.Feature)
		})
	}
	assert.Equal(t, "income < 50.0000", c.String())
}

func TestNumber(t *testing.T) {
	v, ok := Number(2.5)
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)
	for _, value := range []interface{}{nil, "2.5", math.NaN(), math.Inf(1)} {
		_, ok = Number(value)
		assert.False(t, ok)
	}
}

func TestFind(t *testing.T) {
	features := []Feature{NewContinuousFeature("income"), NewDiscreteFeature("label", nil)}
	assert.Equal(t, features[1], Find(features, "label"))
	assert.Nil(t, Find(features, "town"))
}
