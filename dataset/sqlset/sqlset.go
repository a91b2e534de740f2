/*
Package sqlset reads sets of samples from SQL database tables.

Every column of the table is a feature: a row is read as a sample holding
the values of its columns by name, with NULL as the undefined value.
Database specifics are left to Adapter implementations, like the ones
in the sqlite3adapter and pgadapter subpackages.
*/
package sqlset

import (
	"context"
	"fmt"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
)

/*
Adapter is an interface providing the methods
needed to read samples from a database backend.
*/
type Adapter interface {
	// ColumnName takes a feature name and returns the
	// name of the column holding its values or an
	// error if the name is not acceptable as column.
	ColumnName(string) (string, error)
	// ListColumns takes a table name and returns the
	// names of its columns in their declared order.
	ListColumns(ctx context.Context, table string) ([]string, error)
	// IterateOnRows calls lambda with the index and the
	// values of each row of the table for the given
	// columns until it returns false or an error.
	IterateOnRows(ctx context.Context, table string, columns []string, lambda func(int, map[string]interface{}) (bool, error)) error
	Close() error
}

/*
Read takes a context, an Adapter, a table name and a slice of features and
returns the names of the table columns and the samples in the table, or an
error.

Values in columns for one of the given features are converted for it,
values in other columns are inferred as text cells would be.
*/
func Read(ctx context.Context, a Adapter, table string, features []feature.Feature) ([]string, []dataset.Sample, error) {
	if _, err := a.ColumnName(table); err != nil {
		return nil, nil, fmt.Errorf("invalid table name: %w", err)
	}
	columns, err := a.ListColumns(ctx, table)
	if err != nil {
		return nil, nil, fmt.Errorf("listing columns of %s: %w", table, err)
	}
	for _, c := range columns {
		if _, err = a.ColumnName(c); err != nil {
			return nil, nil, err
		}
	}
	var samples []dataset.Sample
	err = a.IterateOnRows(ctx, table, columns, func(i int, row map[string]interface{}) (bool, error) {
		values := make(map[string]interface{}, len(row))
		for _, c := range columns {
			v, err := ConvertValue(row[c], feature.Find(features, c))
			if err != nil {
				return false, fmt.Errorf("reading row %d: %w", i, err)
			}
			values[c] = v
		}
		samples = append(samples, dataset.NewSample(values))
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return columns, samples, nil
}

/*
ConvertValue takes a value as scanned from a database column and the
feature for the column, which may be nil, and returns the sample value it
represents.

Without a feature, numbers are float64 values and text is inferred with
dataset.InferValue. NULL values are always undefined.
*/
func ConvertValue(raw interface{}, f feature.Feature) (interface{}, error) {
	var text string
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []byte:
		text = string(v)
	case string:
		text = v
	case int64:
		if _, ok := f.(*feature.DiscreteFeature); ok {
			text = fmt.Sprintf("%d", v)
			break
		}
		return float64(v), nil
	case float64:
		if _, ok := f.(*feature.DiscreteFeature); ok {
			text = fmt.Sprintf("%v", v)
			break
		}
		return v, nil
	default:
		text = fmt.Sprintf("%v", v)
	}
	if f == nil {
		return dataset.InferValue(text), nil
	}
	return f.Parse(text)
}
