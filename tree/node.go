package tree

import (
	"fmt"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
)

/*
Node is a node of the tree. Its Classify method takes a sample and returns
the predicted label with its probability according to the subtree under
the node, or an error if the sample cannot be classified.
*/
type Node interface {
	Classify(dataset.Sample) (string, float64, error)
	String() string
}

/*
DecisionNode is an internal node of the tree. It tests a continuous feature
against a threshold and delegates to one of its three subtrees.
*/
type DecisionNode struct {
	// The test applied to samples reaching the node
	Criterion *feature.Criterion
	// Subtree for samples with a value below the threshold
	LessThan Node
	// Subtree for samples with a value at or above the threshold
	GreaterOrEqual Node
	// Subtree for samples that do not define a value for the feature
	Missing Node
}

/*
LeafNode is a terminal node of the tree. Every sample reaching it is
predicted its Label with probability Count/Total, Count being the number
of training samples with that label and Total the number of training
samples that reached the node.
*/
type LeafNode struct {
	Label string
	Count int
	Total int
}

/*
NewDecisionNode takes a criterion and the subtrees for each of its branches
and returns a DecisionNode with them.
*/
func NewDecisionNode(c *feature.Criterion, lessThan, greaterOrEqual, missing Node) *DecisionNode {
	return &DecisionNode{c, lessThan, greaterOrEqual, missing}
}

/*
NewLeafNode takes the predicted label, the count of training samples with
that label and the total count of training samples and returns a LeafNode.
*/
func NewLeafNode(label string, count, total int) *LeafNode {
	return &LeafNode{label, count, total}
}

// FeatureName returns the name of the feature tested on the node.
func (dn *DecisionNode) FeatureName() string {
	return dn.Criterion.Feature().Name()
}

// Threshold returns the value against which the feature is tested.
func (dn *DecisionNode) Threshold() float64 {
	return dn.Criterion.Threshold()
}

/*
Child returns the subtree for the given branch.
*/
func (dn *DecisionNode) Child(b feature.Branch) Node {
	switch b {
	case feature.LessThan:
		return dn.LessThan
	case feature.GreaterOrEqual:
		return dn.GreaterOrEqual
	default:
		return dn.Missing
	}
}

/*
Classify reads the sample's value for the tested feature and delegates on
the Missing subtree if it is undefined, on the LessThan subtree if it is
below the threshold and on GreaterOrEqual subtree otherwise. It returns a
*dataset.MissingFeatureError if the sample does not define the feature at all.
*/
func (dn *DecisionNode) Classify(s dataset.Sample) (string, float64, error) {
	v, err := s.ValueFor(dn.FeatureName())
	if err != nil {
		return "", 0, err
	}
	b, err := dn.Criterion.Route(v)
	if err != nil {
		return "", 0, err
	}
	return dn.Child(b).Classify(s)
}

func (dn *DecisionNode) String() string {
	return fmt.Sprintf("test: %s < %.4f", dn.FeatureName(), dn.Threshold())
}

// Probability returns Count/Total.
func (ln *LeafNode) Probability() float64 {
	return float64(ln.Count) / float64(ln.Total)
}

/*
Classify returns the label and probability stored on the leaf, the same
for every sample.
*/
func (ln *LeafNode) Classify(dataset.Sample) (string, float64, error) {
	return ln.Label, ln.Probability(), nil
}

func (ln *LeafNode) String() string {
	return fmt.Sprintf("leaf %s %d/%d=%.2f", ln.Label, ln.Count, ln.Total, ln.Probability())
}
