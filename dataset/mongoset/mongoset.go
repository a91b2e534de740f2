/*
Package mongoset reads sets of samples from MongoDB collections.

Each document in the collection is a sample whose fields are its feature
values. Fields missing on a document are undefined values for it.
*/
package mongoset

import (
	"context"
	"fmt"
	"strings"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

// DefaultCollection is the collection read when none is given
const DefaultCollection = "samples"

/*
Read takes a context, a MongoDB session, a collection name and a slice of
features and returns the names of the fields found on the documents of the
collection, in the order they are first seen, and the samples they
represent. The collection is taken from the default database of the session.
*/
func Read(ctx context.Context, session *mgo.Session, collection string, features []feature.Feature) ([]string, []dataset.Sample, error) {
	if collection == "" {
		collection = DefaultCollection
	}
	iter := session.DB("").C(collection).Find(nil).Iter()
	defer iter.Close()
	var docs []bson.D
	var doc bson.D
	for iter.Next(&doc) {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		docs = append(docs, doc)
		doc = nil
	}
	if err := iter.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading collection %s: %w", collection, err)
	}
	return FromDocuments(docs, features)
}

/*
FromDocuments takes a slice of documents and a slice of features and returns
the names of the fields in the documents, in the order they are first seen,
and the samples the documents represent. The _id field is ignored.

Values on fields for one of the given features are parsed by it, numbers
on other fields are taken as float64 values and text is inferred with
dataset.InferValue.
*/
func FromDocuments(docs []bson.D, features []feature.Feature) ([]string, []dataset.Sample, error) {
	var names []string
	seen := make(map[string]bool)
	for _, d := range docs {
		for _, e := range d {
			if e.Name == "_id" || seen[e.Name] {
				continue
			}
			if strings.ContainsAny(e.Name, ".$") {
				return nil, nil, fmt.Errorf("invalid field name %q: contains reserved characters %q or %q", e.Name, ".", "$")
			}
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	samples := make([]dataset.Sample, 0, len(docs))
	for i, d := range docs {
		values := make(map[string]interface{}, len(names))
		for _, name := range names {
			values[name] = nil
		}
		for _, e := range d {
			if e.Name == "_id" {
				continue
			}
			v, err := convertValue(e.Value, feature.Find(features, e.Name))
			if err != nil {
				return nil, nil, fmt.Errorf("document %d, field %s: %w", i, e.Name, err)
			}
			values[e.Name] = v
		}
		samples = append(samples, dataset.NewSample(values))
	}
	return names, samples, nil
}

func convertValue(raw interface{}, f feature.Feature) (interface{}, error) {
	var number *float64
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int:
		n := float64(v)
		number = &n
	case int64:
		n := float64(v)
		number = &n
	case float64:
		number = &v
	case string:
		if f == nil {
			return dataset.InferValue(v), nil
		}
		return f.Parse(v)
	default:
		return nil, fmt.Errorf("unsupported value %v of type %T", v, v)
	}
	if df, ok := f.(*feature.DiscreteFeature); ok {
		return df.Parse(fmt.Sprintf("%v", *number))
	}
	return *number, nil
}
