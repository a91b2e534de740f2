package dtree

import "fmt"

// LearnError represents an error that prevents learning a tree
type LearnError string

/*
ErrEmptyDataset is the error returned when trying to learn a tree from a
set with no samples, for which there is no majority class nor entropy.
*/
const ErrEmptyDataset = LearnError("cannot learn a tree from an empty set")

func (le LearnError) Error() string {
	return string(le)
}

/*
UnknownClassError is returned when a sample's label is not one of the values
of the class feature. An empty Label means the sample left it undefined.
*/
type UnknownClassError struct {
	Class string
	Label string
}

func (e *UnknownClassError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("sample has no value for class feature %s", e.Class)
	}
	return fmt.Sprintf("unknown label %q for class feature %s", e.Label, e.Class)
}
