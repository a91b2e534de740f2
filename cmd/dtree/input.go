package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/dataset/csv"
	"github.com/minhnghia2208/dtree/dataset/mongoset"
	"github.com/minhnghia2208/dtree/dataset/sqlset"
	"github.com/minhnghia2208/dtree/dataset/sqlset/pgadapter"
	"github.com/minhnghia2208/dtree/dataset/sqlset/sqlite3adapter"
	"github.com/minhnghia2208/dtree/feature"
	"github.com/minhnghia2208/dtree/feature/yaml"
	mgo "gopkg.in/mgo.v2"
)

const mongoDialTimeout = 10 * time.Second

// inputSet is a set of samples read from the input with the features describing it
type inputSet struct {
	names    []string
	samples  []dataset.Sample
	features []feature.Feature
	class    *feature.DiscreteFeature
}

/*
readInput reads the samples from the configured input and resolves their
features: those in the metadata file, if any, and inferred ones for the
rest of the columns.
*/
func (rcc *rootCmdConfig) readInput(ctx context.Context) (*inputSet, error) {
	var declared []feature.Feature
	var err error
	if rcc.Data.Metadata != "" {
		rcc.Logf("Reading feature metadata from %s...", rcc.Data.Metadata)
		declared, err = yaml.ReadFeaturesFromFile(rcc.Data.Metadata)
		if err != nil {
			return nil, err
		}
	}
	names, samples, err := rcc.readSamples(ctx, declared)
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}
	var undeclared []string
	for _, n := range names {
		if feature.Find(declared, n) == nil {
			undeclared = append(undeclared, n)
		}
	}
	inferred, err := dataset.InferFeatures(undeclared, samples, rcc.Tree.ClassFeature)
	if err != nil {
		return nil, err
	}
	is := &inputSet{names: names, samples: samples}
	for _, n := range names {
		f := feature.Find(declared, n)
		if f == nil {
			f = feature.Find(inferred, n)
		}
		is.features = append(is.features, f)
	}
	f := feature.Find(is.features, rcc.Tree.ClassFeature)
	if f == nil {
		return nil, fmt.Errorf("class feature '%s' is not defined", rcc.Tree.ClassFeature)
	}
	class, ok := f.(*feature.DiscreteFeature)
	if !ok {
		return nil, fmt.Errorf("class feature '%s' must be discrete", rcc.Tree.ClassFeature)
	}
	is.class = class
	rcc.Logf("Read %d samples with %d features", len(samples), len(names))
	return is, nil
}

func (rcc *rootCmdConfig) readSamples(ctx context.Context, features []feature.Feature) ([]string, []dataset.Sample, error) {
	input := rcc.Data.Input
	switch {
	case strings.HasPrefix(input, "postgresql://"), strings.HasPrefix(input, "postgres://"):
		rcc.Logf("Creating PostgreSQL adapter for url %s...", input)
		a, err := pgadapter.New(input)
		if err != nil {
			return nil, nil, err
		}
		defer a.Close()
		return sqlset.Read(ctx, a, rcc.Data.Table, features)
	case strings.HasSuffix(input, ".db"):
		rcc.Logf("Creating SQLite3 adapter for file %s...", input)
		a, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, nil, err
		}
		defer a.Close()
		return sqlset.Read(ctx, a, rcc.Data.Table, features)
	case strings.HasPrefix(input, "mongodb://"):
		rcc.Logf("Connecting to MongoDB at %s...", input)
		session, err := mgo.DialWithTimeout(input, mongoDialTimeout)
		if err != nil {
			return nil, nil, err
		}
		defer session.Close()
		return mongoset.Read(ctx, session, rcc.Data.Table, features)
	}
	if input == "" {
		rcc.Logf("Reading samples from STDIN...")
	} else {
		rcc.Logf("Opening %s to read samples...", input)
	}
	return csv.ReadSetFromFilePath(input, features)
}

// idOf returns the identifier of a sample to show on reports.
func (rcc *rootCmdConfig) idOf(s dataset.Sample) string {
	if rcc.Tree.IDFeature == "" {
		return fmt.Sprintf("%v", s)
	}
	v, err := s.ValueFor(rcc.Tree.IDFeature)
	if err != nil || v == nil {
		return "?"
	}
	return fmt.Sprintf("%v", v)
}
