package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minhnghia2208/dtree/dataset"
)

// indent sets the width of the rendered tree
const indent = 7

// Tree represents a decision tree classifier. It is composed
// of the root node, the names of the feature identifying
// samples and of the class feature it predicts, and the
// minimum leaf count it was learnt with.
type Tree struct {
	Root         Node
	IDFeature    string
	ClassFeature string
	MinLeafCount int
}

// New takes the root node, the names of the id and class features
// and the minimum leaf count and returns a tree.
func New(root Node, idFeature, classFeature string, minLeafCount int) *Tree {
	return &Tree{root, idFeature, classFeature, minLeafCount}
}

// Classify takes a sample and returns the predicted label and its probability
// according to the tree, or an error if the prediction could not be made.
func (t *Tree) Classify(s dataset.Sample) (string, float64, error) {
	if t == nil || t.Root == nil {
		return "", 0, fmt.Errorf("nil tree cannot classify samples")
	}
	label, prob, err := t.Root.Classify(s)
	if err != nil {
		return "", 0, fmt.Errorf("classifying sample: %w", err)
	}
	return label, prob, nil
}

// Traverse takes a function and goes through the tree from
// the root calling it with every node, parents before their
// children and for each decision node its LessThan, GreaterOrEqual
// and Missing subtrees in that order. If the call to the function
// returns an error, the traversing is aborted and the error is
// returned.
func (t *Tree) Traverse(f func(Node) error) error {
	return Traverse(t.Root, f)
}

// Traverse goes through the subtree under n as described for
// the Tree's Traverse method.
func Traverse(n Node, f func(Node) error) error {
	stack := []Node{n}
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := f(n); err != nil {
			return err
		}
		if dn, ok := n.(*DecisionNode); ok {
			stack = append(stack, dn.Missing, dn.GreaterOrEqual, dn.LessThan)
		}
	}
	return nil
}

// Leaves returns the leaves of the tree in traversal order.
func (t *Tree) Leaves() []*LeafNode {
	var leaves []*LeafNode
	t.Traverse(func(n Node) error {
		if ln, ok := n.(*LeafNode); ok {
			leaves = append(leaves, ln)
		}
		return nil
	})
	return leaves
}

// Depth returns the number of decision nodes on the longest
// path from the root to a leaf.
func (t *Tree) Depth() int {
	return depth(t.Root)
}

func depth(n Node) int {
	dn, ok := n.(*DecisionNode)
	if !ok {
		return 0
	}
	d := depth(dn.LessThan)
	if ge := depth(dn.GreaterOrEqual); ge > d {
		d = ge
	}
	return d + 1
}

// String renders the tree sideways: the GreaterOrEqual subtree
// of every decision node above it and the LessThan subtree below.
func (t *Tree) String() string {
	before, line, after := asciiTree(t.Root)
	lines := append(append(before, line), after...)
	return strings.Join(lines, "\n")
}

func asciiTree(n Node) ([]string, string, []string) {
	dn, ok := n.(*DecisionNode)
	if !ok {
		return []string{""}, n.String(), []string{""}
	}
	margin := strings.Repeat(" ", indent*2)
	pad := strings.Repeat(" ", indent)
	threshold := strconv.FormatFloat(dn.Threshold(), 'f', -1, 64)

	childBefore, childLine, childAfter := asciiTree(dn.GreaterOrEqual)
	var before []string
	for _, l := range childBefore {
		before = append(before, margin+" "+pad+l)
	}
	before = append(before, margin+"┌ >="+threshold+"----"+childLine)
	for _, l := range childAfter {
		before = append(before, margin+"|"+pad+l)
	}

	childBefore, childLine, childAfter = asciiTree(dn.LessThan)
	var after []string
	for _, l := range childBefore {
		after = append(after, margin+"|"+pad+l)
	}
	after = append(after, margin+"└- <"+threshold+"----"+childLine)
	for _, l := range childAfter {
		after = append(after, margin+" "+pad+l)
	}
	return before, dn.FeatureName(), after
}
