package queue

import (
	"fmt"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/tree"
)

// Task represents a tree.Node yet to be learnt.
type Task struct {
	// Where the learnt node must be placed: the
	// tree's root or a subtree field of its parent.
	Target *tree.Node
	// The training samples that reach the node.
	Samples []dataset.Sample
	// The number of decision nodes above the node.
	Depth int
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task depth %d, %d samples}", t.Depth, len(t.Samples))
}
