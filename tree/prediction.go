package tree

import (
	"fmt"

	"github.com/minhnghia2208/dtree/dataset"
)

/*
Outcome represents the classification of a sample whose actual label is
known, as obtained when testing a tree.
*/
type Outcome struct {
	Sample      dataset.Sample
	Actual      string
	Predicted   string
	Probability float64
}

// Correct tells whether the predicted label matches the actual one.
func (o *Outcome) Correct() bool {
	return o.Actual == o.Predicted
}

func (o *Outcome) String() string {
	return fmt.Sprintf("pred %q (%.2f), actual %q", o.Predicted, o.Probability, o.Actual)
}

/*
Test takes a slice of samples and classifies each, returning the outcomes in
the same order as the samples. The actual label of a sample is read from the
tree's class feature. An error is returned for the first sample that cannot
be classified, along the outcomes obtained up to it.
*/
func (t *Tree) Test(samples []dataset.Sample) ([]*Outcome, error) {
	outcomes := make([]*Outcome, 0, len(samples))
	for i, s := range samples {
		actual, err := dataset.LabelOf(s, t.ClassFeature)
		if err != nil {
			return outcomes, fmt.Errorf("testing sample %d: %w", i, err)
		}
		predicted, prob, err := t.Classify(s)
		if err != nil {
			return outcomes, fmt.Errorf("testing sample %d: %w", i, err)
		}
		outcomes = append(outcomes, &Outcome{s, actual, predicted, prob})
	}
	return outcomes, nil
}

/*
SuccessRate takes outcomes and returns the fraction of them that are
correct, 0 if there are none.
*/
func SuccessRate(outcomes []*Outcome) float64 {
	if len(outcomes) == 0 {
		return 0
	}
	var correct int
	for _, o := range outcomes {
		if o.Correct() {
			correct++
		}
	}
	return float64(correct) / float64(len(outcomes))
}
