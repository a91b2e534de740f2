package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/minhnghia2208/dtree/config"
	"github.com/minhnghia2208/dtree/feature"
	"github.com/minhnghia2208/dtree/tree"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const townsCSV = `town,population,income,2020_label
Amherst,40000,55.5,light blue
Boston,690000,80.1,wicked blue
Chelsea,40000,52.0,medium blue
Dover,6000,,red
Easton,25000,71.3,red
`

const townsYML = `features:
  income: continuous
  2020_label:
    - red
    - light blue
    - medium blue
    - wicked blue
`

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testRootConfig(input, metadata string) *rootCmdConfig {
	return &rootCmdConfig{
		Config: &config.Config{
			Data: config.DataConf{Input: input, Metadata: metadata},
			Tree: config.TreeConf{IDFeature: "town", ClassFeature: "2020_label", MinLeafCount: 0},
		},
		logger: newLogger(logrus.PanicLevel),
	}
}

func TestReadInputInfersFeatures(t *testing.T) {
	dir := t.TempDir()
	rcc := testRootConfig(writeFile(t, dir, "towns.csv", townsCSV), "")
	is, err := rcc.readInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"town", "population", "income", "2020_label"}, is.names)
	require.Len(t, is.samples, 5)
	require.Len(t, is.features, 4)
	assert.IsType(t, &feature.DiscreteFeature{}, is.features[0])
	assert.IsType(t, &feature.ContinuousFeature{}, is.features[1])
	assert.IsType(t, &feature.ContinuousFeature{}, is.features[2])
	assert.Equal(t, []string{"light blue", "wicked blue", "medium blue", "red"}, is.class.AvailableValues())
}

func TestReadInputWithMetadata(t *testing.T) {
	dir := t.TempDir()
	rcc := testRootConfig(writeFile(t, dir, "towns.csv", townsCSV), writeFile(t, dir, "towns.yml", townsYML))
	is, err := rcc.readInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "light blue", "medium blue", "wicked blue"}, is.class.AvailableValues())
	assert.Equal(t, "population", is.features[1].Name())
	assert.IsType(t, &feature.ContinuousFeature{}, is.features[1])

	t.Run("learns a tree", func(t *testing.T) {
		dt, err := rcc.learn(context.Background(), is, is.samples)
		require.NoError(t, err)
		assert.Equal(t, "2020_label", dt.ClassFeature)
		var total int
		for _, l := range dt.Leaves() {
			total += l.Total
		}
		assert.Greater(t, total, 0)
		_, ok := dt.Root.(*tree.DecisionNode)
		assert.True(t, ok)
	})
}

func TestReadInputErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "towns.csv", townsCSV)

	rcc := testRootConfig(input, "")
	rcc.Tree.ClassFeature = "label"
	_, err := rcc.readInput(context.Background())
	assert.EqualError(t, err, "class feature 'label' is not defined")

	rcc = testRootConfig(input, writeFile(t, dir, "towns.yml", townsYML))
	rcc.Tree.ClassFeature = "income"
	_, err = rcc.readInput(context.Background())
	assert.EqualError(t, err, "class feature 'income' must be discrete")

	rcc = testRootConfig(filepath.Join(dir, "missing.csv"), "")
	_, err = rcc.readInput(context.Background())
	assert.Error(t, err)
}

func TestIDOf(t *testing.T) {
	dir := t.TempDir()
	rcc := testRootConfig(writeFile(t, dir, "towns.csv", townsCSV), "")
	is, err := rcc.readInput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Amherst", rcc.idOf(is.samples[0]))
	rcc.Tree.IDFeature = "county"
	assert.Equal(t, "?", rcc.idOf(is.samples[0]))
}
