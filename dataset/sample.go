package dataset

import (
	"fmt"
	"sort"
	"strings"
)

/*
Sample represents an item to process or from which to learn how to process them.

Its ValueFor method returns the value of the sample corresponding to the feature
name passed as parameter: a float64, a string or nil for an undefined value.
Implementations must return a *MissingFeatureError when the sample has no entry
at all for the feature, as opposed to an undefined value.
*/
type Sample interface {
	ValueFor(string) (interface{}, error)
}

/*
MissingFeatureError is returned when a sample is asked for the value of a
feature it does not define at all.
*/
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("sample has no value for feature %s", e.Feature)
}

type sample struct {
	featureValues map[string]interface{}
}

/*
NewSample takes a map of feature string names to values and returns
a sample. The map is retained; callers should not modify it afterwards.
*/
func NewSample(featureValues map[string]interface{}) Sample {
	return &sample{featureValues}
}

func (s *sample) ValueFor(name string) (interface{}, error) {
	v, ok := s.featureValues[name]
	if !ok {
		return nil, &MissingFeatureError{name}
	}
	return v, nil
}

func (s *sample) String() string {
	keys := make([]string, 0, len(s.featureValues))
	for k := range s.featureValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%v", k, s.featureValues[k])
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}
