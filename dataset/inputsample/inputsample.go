/*
Package inputsample provides an implementation of dataset.Sample that is read
from an io.Reader.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
)

/*
readSample represents a sample whose feature values
are retrieved from a reader. A feature value will be
requested using a FeatureValueRequester before reading it.
*/
type readSample struct {
	obtainedValues        map[string]interface{}
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	features              []feature.Feature
}

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string, error) error
}

/*
New takes an io.Reader, a slice of features and a FeatureValueRequester
and returns a Sample.

The returned Sample ValueFor method reads feature values first
requesting them with the given FeatureValueRequester and
then parsing the values from the reader, one per line. Each value
is read only once and remembered for further calls.

Lines are read from the reader until one is parsed successfully by
the feature, and the lines that cannot be parsed are rejected with
the FeatureValueRequester's RejectValueFor method. An empty line or
one with feature.UndefinedValue is an undefined value.

Attempting to obtain a value for a feature not in the given
features slice returns a *dataset.MissingFeatureError.
*/
func New(r io.Reader, features []feature.Feature, featureValueRequester FeatureValueRequester) dataset.Sample {
	scanner := bufio.NewScanner(r)
	return &readSample{make(map[string]interface{}), scanner, featureValueRequester, features}
}

func (rs *readSample) ValueFor(name string) (interface{}, error) {
	value, ok := rs.obtainedValues[name]
	if ok {
		return value, nil
	}
	f := feature.Find(rs.features, name)
	if f == nil {
		return nil, &dataset.MissingFeatureError{Feature: name}
	}
	err := rs.featureValueRequester.RequestValueFor(f)
	if err != nil {
		return nil, err
	}
	for rs.scanner.Scan() {
		line := rs.scanner.Text()
		value, err = f.Parse(line)
		if err == nil {
			rs.obtainedValues[name] = value
			return value, nil
		}
		err = rs.featureValueRequester.RejectValueFor(f, line, err)
		if err != nil {
			return nil, err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("EOF when requesting value for %s", name)
}
