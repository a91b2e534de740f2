package inputsample

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRequester struct {
	out bytes.Buffer
}

func (rr *recordingRequester) RequestValueFor(f feature.Feature) error {
	fmt.Fprintf(&rr.out, "%s? ", f.Name())
	return nil
}

func (rr *recordingRequester) RejectValueFor(f feature.Feature, v string, _ error) error {
	fmt.Fprintf(&rr.out, "bad %s %q. ", f.Name(), v)
	return nil
}

func TestValueFor(t *testing.T) {
	features := []feature.Feature{
		feature.NewContinuousFeature("petal"),
		feature.NewDiscreteFeature("color", []string{"red", "blue"}),
		feature.NewContinuousFeature("sepal"),
	}
	in := strings.NewReader("wide\n1.5\ngreen\nblue\n?\n")
	rr := &recordingRequester{}
	s := New(in, features, rr)

	v, err := s.ValueFor("petal")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	v, err = s.ValueFor("color")
	require.NoError(t, err)
	assert.Equal(t, "blue", v)

	v, err = s.ValueFor("sepal")
	require.NoError(t, err)
	assert.Nil(t, v)

	// values are remembered
	v, err = s.ValueFor("petal")
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	assert.Equal(t, `petal? bad petal "wide". color? bad color "green". sepal? `, rr.out.String())

	_, err = s.ValueFor("unknown")
	assert.IsType(t, &dataset.MissingFeatureError{}, err)
}

func TestValueForEOF(t *testing.T) {
	features := []feature.Feature{feature.NewContinuousFeature("petal")}
	s := New(strings.NewReader("wide\n"), features, &recordingRequester{})
	_, err := s.ValueFor("petal")
	assert.EqualError(t, err, "EOF when requesting value for petal")
}
