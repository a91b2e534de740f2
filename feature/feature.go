package feature

import (
	"fmt"
	"strconv"
)

/*
UndefinedValue is the cell content that, besides the empty string, codifies
an undefined value when parsing values from text.
*/
const UndefinedValue = "?"

/*
Feature represents a property that can be observed
*/
type Feature interface {
	Name() string
	Valid(interface{}) (bool, error)
	Parse(string) (interface{}, error)
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
ContinuousFeature represents a property that can be observed and that can take
a numeric value
*/
type ContinuousFeature struct {
	name string
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given names and available values.
The order of the available values is kept, and is the order in which
classes are reported when the feature is used as class feature.
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues}
}

/*
NewContinuousFeature takes a name string and returns a continuous feature with
the given name.
*/
func NewContinuousFeature(name string) *ContinuousFeature {
	return &ContinuousFeature{name}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is nil or included in the available values fo the feature, the
method returns true and nil. Otherwise it returns false and an error describing
the reason.
*/
func (df *DiscreteFeature) Valid(value interface{}) (bool, error) {
	if value == nil {
		return true, nil
	}
	vs, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("discrete feature %s expects string value, got %T value", df.Name(), value)
	}
	if df.Index(vs) < 0 {
		return false, fmt.Errorf("discrete feature %s got unknown value %s", df.Name(), vs)
	}
	return true, nil
}

/*
Parse takes a string and returns it as value for the feature, nil if it
codifies an undefined value, or an error if it is not one of the available
values.
*/
func (df *DiscreteFeature) Parse(s string) (interface{}, error) {
	if s == "" || s == UndefinedValue {
		return nil, nil
	}
	if _, err := df.Valid(s); err != nil {
		return nil, err
	}
	return s, nil
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

/*
Index returns the position of the given value among the available values of
the feature, or -1 if it is not one of them.
*/
func (df *DiscreteFeature) Index(value string) int {
	for i, av := range df.availableValues {
		if av == value {
			return i
		}
	}
	return -1
}

func (df *DiscreteFeature) String() string {
	return df.name
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is nil or a float64 it returns true and nil, otherwise it returns
false and an error describing the reason.
*/
func (cf *ContinuousFeature) Valid(value interface{}) (bool, error) {
	if value == nil {
		return true, nil
	}
	_, ok := value.(float64)
	if !ok {
		return false, fmt.Errorf("continuous feature %s expects float64 value, got %T value", cf.Name(), value)
	}
	return true, nil
}

/*
Parse takes a string and returns its float64 value, nil if it codifies an
undefined value, or an error if it is not a finite number.
*/
func (cf *ContinuousFeature) Parse(s string) (interface{}, error) {
	if s == "" || s == UndefinedValue {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("continuous feature %s: converting %s to float64: %w", cf.Name(), s, err)
	}
	if _, ok := Number(v); !ok {
		return nil, fmt.Errorf("continuous feature %s: %s is not a finite number", cf.Name(), s)
	}
	return v, nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

/*
Find takes a slice of features and a name and returns the feature with that
name or nil if there is none.
*/
func Find(features []Feature, name string) Feature {
	for _, f := range features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
