/*
Package yaml provides methods to parse feature.Feature definitions
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/minhnghia2208/dtree/feature"
	yaml "gopkg.in/yaml.v2"
)

const continuousDeclaration = "continuous"

/*
ReadFeatures takes a slice of bytes with feature definitions in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value for this
should be an object with a property for each feature with its name and either a
string value of 'continuous' for continuous features or a list of valid values
for discrete features. Features are returned in the order they are declared,
and so are the values of discrete features.
*/
func ReadFeatures(md []byte) ([]feature.Feature, error) {
	metadata := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %w", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	features := make([]feature.Feature, 0, len(metadata.Features))
	for _, item := range metadata.Features {
		fn := fmt.Sprintf("%v", item.Key)
		if feature.Find(features, fn) != nil {
			return nil, fmt.Errorf("feature %s declared more than once", fn)
		}
		switch values := item.Value.(type) {
		case string:
			if values != continuousDeclaration {
				return nil, fmt.Errorf("invalid declaration %q for feature %s: expected %q or a list of values", values, fn, continuousDeclaration)
			}
			features = append(features, feature.NewContinuousFeature(fn))
		case []interface{}:
			if len(values) == 0 {
				return nil, fmt.Errorf("discrete feature %s declares no values", fn)
			}
			stringVs := make([]string, 0, len(values))
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			features = append(features, feature.NewDiscreteFeature(fn, stringVs))
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", item.Value, fn)
		}
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %w", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %w", filepath, err)
	}
	return features, err
}
