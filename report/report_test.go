package report

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/fatih/color"
	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var labels = []string{"red", "light blue", "medium blue", "wicked blue"}

func testConfusion() *Confusion {
	c := NewConfusion([]*tree.Outcome{
		{Actual: "red", Predicted: "red"},
		{Actual: "light blue", Predicted: "red"},
		{Actual: "wicked blue", Predicted: "wicked blue"},
	})
	c.Add("red", "red")
	return c
}

func TestConfusionCounts(t *testing.T) {
	c := testConfusion()
	assert.Equal(t, 4, c.Total())
	assert.Equal(t, 2, c.Count("red", "red"))
	assert.Equal(t, 1, c.Count("light blue", "red"))
	assert.Equal(t, 0, c.Count("red", "light blue"))
	assert.Equal(t, 0.75, c.Accuracy())
	assert.Equal(t, 1.0, c.Almost(labels))

	c.Add("red", "wicked blue")
	assert.Equal(t, 0.6, c.Accuracy())
	assert.Equal(t, 0.8, c.Almost(labels))
	c.Add("purple", "red")
	assert.InDelta(t, 4.0/6, c.Almost(labels), 1e-12)
}

func TestEmptyConfusion(t *testing.T) {
	c := NewConfusion(nil)
	assert.Equal(t, 0.0, c.Accuracy())
	assert.Equal(t, 0.0, c.Almost(labels))
	for _, row := range c.Normalized(labels) {
		for _, v := range row {
			assert.Equal(t, 0.0, v)
		}
	}
}

func TestNormalizedSumsToOne(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		c := NewConfusion(nil)
		for j := 0; j <= r.Intn(100); j++ {
			c.Add(labels[r.Intn(len(labels))], labels[r.Intn(len(labels))])
		}
		m := c.Normalized(labels)
		require.Len(t, m, 4)
		var sum float64
		for _, row := range m {
			require.Len(t, row, 4)
			for _, v := range row {
				assert.GreaterOrEqual(t, v, 0.0)
				sum += v
			}
		}
		assert.InDelta(t, 1, sum, 1e-9)
	}
}

func TestRender(t *testing.T) {
	expected := " actual ___________________________________  \n" +
		"       |        |        |        |        | \n" +
		"   r   |  0.50  |  0.00  |  0.00  |  0.00  | \n" +
		"       |________|________|________|________| \n" +
		"       |        |        |        |        | \n" +
		"   lb  |  0.25  |  0.00  |  0.00  |  0.00  | \n" +
		"       |________|________|________|________| \n" +
		"       |        |        |        |        | \n" +
		"   mb  |  0.00  |  0.00  |  0.00  |  0.00  | \n" +
		"       |________|________|________|________| \n" +
		"       |        |        |        |        | \n" +
		"   wb  |  0.00  |  0.00  |  0.00  |  0.25  | \n" +
		"       |________|________|________|________| \n" +
		"           r        lb       mb       wb  \n" +
		"                     predicted \n"
	assert.Equal(t, expected, testConfusion().Render(labels))
}

func TestRenderTwoLabels(t *testing.T) {
	c := NewConfusion(nil)
	c.Add("yes", "no")
	expected := " actual _________________  \n" +
		"       |        |        | \n" +
		"   y   |  0.00  |  1.00  | \n" +
		"       |________|________| \n" +
		"       |        |        | \n" +
		"   n   |  0.00  |  0.00  | \n" +
		"       |________|________| \n" +
		"           y        n   \n" +
		"                     predicted \n"
	assert.Equal(t, expected, c.Render([]string{"yes", "no"}))
}

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "wb", Abbreviate("wicked blue"))
	assert.Equal(t, "r", Abbreviate("red"))
	assert.Equal(t, "", Abbreviate(""))
	assert.Equal(t, "ñb", Abbreviate("ñandu  blanco"))
}

func TestWriteOutcomes(t *testing.T) {
	color.NoColor = true
	outcomes := []*tree.Outcome{
		{Sample: dataset.NewSample(map[string]interface{}{"town": "Amherst"}), Actual: "red", Predicted: "red", Probability: 0.75},
		{Sample: dataset.NewSample(map[string]interface{}{"town": "Boston"}), Actual: "light blue", Predicted: "red", Probability: 0.5},
	}
	var b bytes.Buffer
	err := WriteOutcomes(&b, outcomes, func(o *tree.Outcome) string {
		v, _ := o.Sample.ValueFor("town")
		return v.(string)
	})
	require.NoError(t, err)
	expected := "Amherst:                       pred 'red'           (0.75), actual 'red'           *\n" +
		"Boston:                        pred 'red'           (0.50), actual 'light blue'    \n"
	assert.Equal(t, expected, b.String())

	b.Reset()
	require.NoError(t, WriteSummary(&b, NewConfusion(outcomes), labels))
	assert.Contains(t, b.String(), "\naccuracy: 0.50\nalmost:   1.00\n\n actual ")
}
