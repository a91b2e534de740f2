package dataset

import (
	"fmt"
	"strconv"

	"github.com/minhnghia2208/dtree/feature"
)

/*
InferValue takes a raw string value with no feature information and returns
nil for the empty string, its float64 value if it parses as a finite number
and the string itself otherwise. Strings parsing as NaN or infinite numbers
are undefined too.
*/
func InferValue(raw string) interface{} {
	if raw == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		if _, ok := feature.Number(v); !ok {
			return nil
		}
		return v
	}
	return raw
}

/*
LabelOf takes a sample and the name of the class feature and returns the
sample's class label as a string: string values are returned as they are,
other values are formatted with %v and undefined values result in an
empty string. An error is returned if the sample does not define the
class feature at all.
*/
func LabelOf(s Sample, class string) (string, error) {
	v, err := s.ValueFor(class)
	if err != nil {
		return "", err
	}
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

/*
InferFeatures takes the ordered names of the features available on a set of
samples, the samples and the name of the class feature, and returns
features for them in the same order.

A feature whose defined values are all float64 is continuous, otherwise it
is discrete with its values in the order they are first seen. The class
feature is always discrete. Samples lacking any of the given names result
in an error.
*/
func InferFeatures(names []string, samples []Sample, class string) ([]feature.Feature, error) {
	features := make([]feature.Feature, 0, len(names))
	for _, name := range names {
		continuous := name != class
		var values []string
		seen := make(map[string]bool)
		for i, s := range samples {
			v, err := s.ValueFor(name)
			if err != nil {
				return nil, fmt.Errorf("inferring feature %s from sample %d: %w", name, i, err)
			}
			if v == nil {
				continue
			}
			if _, ok := v.(float64); !ok {
				continuous = false
			}
			vs := fmt.Sprintf("%v", v)
			if !seen[vs] {
				seen[vs] = true
				values = append(values, vs)
			}
		}
		if continuous {
			features = append(features, feature.NewContinuousFeature(name))
		} else {
			features = append(features, feature.NewDiscreteFeature(name, values))
		}
	}
	return features, nil
}
