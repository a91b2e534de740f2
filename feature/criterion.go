package feature

import (
	"fmt"
	"math"
)

/*
Branch identifies which of the three subtrees under a threshold test a
value is routed to.
*/
type Branch int

const (
	// LessThan is the branch for defined values below the threshold
	LessThan Branch = iota
	// GreaterOrEqual is the branch for defined values at or above the threshold
	GreaterOrEqual
	// Undefined is the branch for missing values
	Undefined
)

func (b Branch) String() string {
	switch b {
	case LessThan:
		return "<"
	case GreaterOrEqual:
		return ">="
	case Undefined:
		return "undefined"
	}
	return fmt.Sprintf("Branch(%d)", int(b))
}

/*
Criterion represents a binary threshold test on a continuous feature.
Samples are routed by it both when partitioning a training set and when
classifying, so the two always agree.
*/
type Criterion struct {
	feature   *ContinuousFeature
	threshold float64
}

/*
InvalidValueError is returned by Route when the tested value is neither
undefined nor a float64.
*/
type InvalidValueError struct {
	Feature string
	Value   interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("continuous feature %s expects float64 value, got %T value %v", e.Feature, e.Value, e.Value)
}

/*
NewCriterion takes a ContinuousFeature and a threshold and returns the
Criterion that splits values of the feature at the threshold.
*/
func NewCriterion(f *ContinuousFeature, threshold float64) *Criterion {
	return &Criterion{f, threshold}
}

/*
Feature returns the feature to which the criterion applies.
*/
func (c *Criterion) Feature() *ContinuousFeature {
	return c.feature
}

/*
Threshold returns the value at which the criterion splits.
*/
func (c *Criterion) Threshold() float64 {
	return c.threshold
}

/*
Number takes a value of a continuous feature and returns it as a float64 along
true if it is a finite number. NaN and infinite values are taken as undefined.
*/
func Number(value interface{}) (float64, bool) {
	v, ok := value.(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

/*
Route takes a value for the criterion's feature and returns the branch it
belongs to: Undefined for nil and non-finite numbers, LessThan for float64
values below the threshold and GreaterOrEqual for the rest. Any other value
is routed to Undefined along an *InvalidValueError.
*/
func (c *Criterion) Route(value interface{}) (Branch, error) {
	if value == nil {
		return Undefined, nil
	}
	if _, ok := value.(float64); !ok {
		return Undefined, &InvalidValueError{c.feature.Name(), value}
	}
	v, ok := Number(value)
	if !ok {
		return Undefined, nil
	}
	if v < c.threshold {
		return LessThan, nil
	}
	return GreaterOrEqual, nil
}

func (c *Criterion) String() string {
	return fmt.Sprintf("%s < %.4f", c.feature.Name(), c.threshold)
}
