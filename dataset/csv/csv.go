/*
Package csv reads samples from and writes samples to CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
)

/*
Writer is an interface for a set to which samples
can be written to.
*/
type Writer interface {
	// Write will attempt to write the given
	// samples and will return the actually written
	// number of samples and an error (if not all samples
	// could be written)
	Write([]dataset.Sample) (int, error)
	// Count returns the total number of samples written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}

type csvWriter struct {
	count int
	names []string
	w     *csv.Writer
}

/*
ReadSet takes an io.Reader for a CSV stream and a slice of features and
returns the names on the header of the stream and the samples parsed from
it, or an error.

The header or first row of the CSV content is expected to consist of the names
of the features. Values on columns for which a feature is given are parsed with
that feature, so an empty cell or the '?' string indicate an undefined value.
Values on the rest of columns are inferred: empty cells are undefined, cells
holding a number are float64 and any other is kept as a string.
*/
func ReadSet(reader io.Reader, features []feature.Feature) ([]string, []dataset.Sample, error) {
	samples := []dataset.Sample{}
	names, err := ReadSetBySample(reader, features, func(_ int, s dataset.Sample) (bool, error) {
		samples = append(samples, s)
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return names, samples, nil
}

/*
ReadSetBySample takes an io.Reader for a CSV stream, a slice of features and a
lambda function on an integer and a dataset.Sample that returns a boolean value.
It parses the samples from the reader and for each it calls the lambda function
with the sample and its index as parameters. If the lambda function returns true,
it will continue processing the next sample, otherwise it will stop. The names
on the header are returned along an error if something goes wrong when reading
the stream or parsing a sample.

Values are parsed as described for ReadSet.
*/
func ReadSetBySample(reader io.Reader, features []feature.Feature, lambda func(int, dataset.Sample) (bool, error)) ([]string, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	columns, err := columnFeatures(header, features)
	if err != nil {
		return nil, err
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		sample, err := parseSampleFromCSVRow(row, header, columns)
		if err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", l, err)
		}
		ok, err := lambda(l-2, sample)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return header, nil
}

/*
ReadSetFromFilePath takes a filepath string and a slice of features,
opens the file to which the filepath points to and uses ReadSet to return
the header names and samples read from it or an error. If the filepath is
"" os.Stdin is used instead. It will return an error if the given filepath
cannot be opened for reading.
*/
func ReadSetFromFilePath(filepath string, features []feature.Feature) ([]string, []dataset.Sample, error) {
	f := os.Stdin
	if filepath != "" {
		var err error
		f, err = os.Open(filepath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening CSV file %s: %w", filepath, err)
		}
		defer f.Close()
	}
	names, samples, err := ReadSet(f, features)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return names, samples, err
}

/*
NewWriter takes an io.Writer and a slice of feature names and
returns a Writer that will write any samples on the io.Writer,
starting with a header with the given names.
Undefined values are written as empty cells.
*/
func NewWriter(writer io.Writer, names []string) (Writer, error) {
	w := csv.NewWriter(writer)
	err := w.Write(names)
	if err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	return &csvWriter{names: names, w: w}, nil
}

/*
WriteSet takes a writer, a slice of samples and a slice of feature names and
dumps to the writer the samples in CSV format, specifying only the features
with the given names. It returns the number of samples written and an error
if something went wrong when writing to the writer, or codifying the samples.
*/
func WriteSet(writer io.Writer, samples []dataset.Sample, names []string) (int, error) {
	cw, err := NewWriter(writer, names)
	if err != nil {
		return 0, err
	}
	_, err = cw.Write(samples)
	if err == nil {
		err = cw.Flush()
	}
	return cw.Count(), err
}

func columnFeatures(header []string, features []feature.Feature) ([]feature.Feature, error) {
	columns := make([]feature.Feature, len(header))
	seen := make(map[string]bool)
	for i, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("parsing header: column %s appears more than once", name)
		}
		seen[name] = true
		columns[i] = feature.Find(features, name)
	}
	return columns, nil
}

func parseSampleFromCSVRow(row, header []string, columns []feature.Feature) (dataset.Sample, error) {
	featureValues := make(map[string]interface{}, len(header))
	for i, name := range header {
		f := columns[i]
		if f == nil {
			featureValues[name] = dataset.InferValue(row[i])
			continue
		}
		value, err := f.Parse(row[i])
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for feature %s: %w", row[i], name, err)
		}
		featureValues[name] = value
	}
	return dataset.NewSample(featureValues), nil
}

func (cw *csvWriter) Count() int {
	return cw.count
}

func (cw *csvWriter) Write(samples []dataset.Sample) (int, error) {
	for n, s := range samples {
		err := cw.writeSample(s)
		if err != nil {
			return n, err
		}
	}
	return len(samples), nil
}

func (cw *csvWriter) writeSample(sample dataset.Sample) error {
	record := make([]string, len(cw.names))
	for j, name := range cw.names {
		v, err := sample.ValueFor(name)
		if err != nil {
			return err
		}
		switch v := v.(type) {
		case nil:
		case float64:
			record[j] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			record[j] = fmt.Sprintf("%v", v)
		}
	}
	err := cw.w.Write(record)
	if err != nil {
		return fmt.Errorf("writing CSV row for sample %d: %w", cw.count+1, err)
	}
	cw.count++
	return nil
}

func (cw *csvWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}
