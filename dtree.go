/*
Package dtree learns binary decision trees that classify samples with
continuous features, some of them possibly undefined, into the values of a
discrete class feature.

Nodes are split greedily on the feature and threshold that provide the most
information gain, trying 25 evenly spaced thresholds over the range of each
feature. Samples that do not define the tested feature are handled by a
third subtree on every decision node: a leaf predicting as the node would
have if it were not split.
*/
package dtree

import (
	"context"
	"fmt"
	"io"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
	"github.com/minhnghia2208/dtree/queue"
	"github.com/minhnghia2208/dtree/tree"
	"github.com/sirupsen/logrus"
)

/*
Config holds what is needed to learn a tree besides the training samples.
*/
type Config struct {
	// IDFeature is the name of the feature identifying samples,
	// never used to split them. It may be empty.
	IDFeature string
	// Class is the feature the tree predicts. Its available
	// values are the labels samples can be classified into.
	Class *feature.DiscreteFeature
	// Features are the features available on the samples, in
	// the order they are tried as splitting candidates, which
	// decides between splits with equal information gain.
	// Only continuous features other than the id and class
	// features are tried.
	Features []feature.Feature
	// MinLeafCount is the number of samples each part of a
	// split must exceed for the split to be accepted. Nodes
	// reached by MinLeafCount samples or less become leaves.
	MinLeafCount int
	// Logger receives a debug entry for every learnt node.
	// Nothing is logged if it is nil.
	Logger logrus.FieldLogger
}

type learner struct {
	Config
	candidates []*feature.ContinuousFeature
}

/*
Learn takes a context, a slice of training samples and a Config and returns
the tree learnt from them, or an error.

Learning fails with ErrEmptyDataset when there are no samples, with an
*UnknownClassError when a sample's label is not one of the class feature
values, and with the context error if it is cancelled before the tree is
complete. No tree is returned in any of these cases.
*/
func Learn(ctx context.Context, samples []dataset.Sample, cfg Config) (*tree.Tree, error) {
	l, err := newLearner(cfg)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrEmptyDataset
	}
	var root tree.Node
	q := queue.New()
	err = q.Push(ctx, &queue.Task{Target: &root, Samples: samples})
	if err != nil {
		return nil, err
	}
	err = l.work(ctx, q)
	if err != nil {
		return nil, err
	}
	return tree.New(root, cfg.IDFeature, cfg.Class.Name(), cfg.MinLeafCount), nil
}

func newLearner(cfg Config) (*learner, error) {
	if cfg.Class == nil {
		return nil, fmt.Errorf("no class feature to learn a tree for")
	}
	if cfg.MinLeafCount < 0 {
		return nil, fmt.Errorf("minimum leaf count must not be negative, got %d", cfg.MinLeafCount)
	}
	if cfg.Logger == nil {
		logger := logrus.New()
		logger.Out = io.Discard
		cfg.Logger = logger
	}
	l := &learner{Config: cfg}
	for _, f := range cfg.Features {
		cf, ok := f.(*feature.ContinuousFeature)
		if !ok || f.Name() == cfg.IDFeature || f.Name() == cfg.Class.Name() {
			continue
		}
		l.candidates = append(l.candidates, cf)
	}
	return l, nil
}

// work pulls tasks from the queue, branching out their
// nodes and pushing the resulting tasks, until it is empty.
func (l *learner) work(ctx context.Context, q queue.Queue) error {
	for {
		task, err := q.Pull(ctx)
		if err != nil {
			return err
		}
		if task == nil {
			return nil
		}
		tasks, err := l.branchOut(task)
		if err != nil {
			return err
		}
		for _, st := range tasks {
			err = q.Push(ctx, st)
			if err != nil {
				return err
			}
		}
	}
}

/*
branchOut learns the node for the given task and places it on the task's
target. It returns the tasks to learn the node's subtrees, none if the node
is a leaf.
*/
func (l *learner) branchOut(task *queue.Task) ([]*queue.Task, error) {
	ns, err := l.newNodeSet(task.Samples)
	if err != nil {
		return nil, err
	}
	leaf := tree.NewLeafNode(ns.majority, ns.majorityCount, ns.counts.Total())
	if ns.counts.Total() <= l.MinLeafCount {
		*task.Target = leaf
		return nil, nil
	}
	p, err := bestPartition(ns, l.candidates, l.MinLeafCount)
	if err != nil {
		return nil, err
	}
	if p == nil {
		*task.Target = leaf
		return nil, nil
	}
	l.Logger.WithFields(logrus.Fields{
		"depth":     task.Depth,
		"feature":   p.Criterion.Feature().Name(),
		"threshold": p.Criterion.Threshold(),
		"gain":      p.InformationGain(),
		"samples":   len(task.Samples),
	}).Debug("splitting node")
	dn := tree.NewDecisionNode(p.Criterion, nil, nil, leaf)
	*task.Target = dn
	return []*queue.Task{
		{Target: &dn.LessThan, Samples: p.LessThan, Depth: task.Depth + 1},
		{Target: &dn.GreaterOrEqual, Samples: p.GreaterOrEqual, Depth: task.Depth + 1},
	}, nil
}

/*
newNodeSet counts the labels of the given samples. The majority label is the
first to reach the highest count while going through the samples in order.
*/
func (l *learner) newNodeSet(samples []dataset.Sample) (*nodeSet, error) {
	ns := &nodeSet{
		samples: samples,
		labels:  make([]int, len(samples)),
		counts:  NewClassCounts(l.Class),
	}
	for i, s := range samples {
		label, err := dataset.LabelOf(s, l.Class.Name())
		if err != nil {
			return nil, fmt.Errorf("reading label of sample: %w", err)
		}
		n, err := ns.counts.Add(label)
		if err != nil {
			return nil, err
		}
		ns.labels[i] = l.Class.Index(label)
		if n > ns.majorityCount {
			ns.majority = label
			ns.majorityCount = n
		}
	}
	ns.entropy = Entropy(ns.counts, ns.counts.Total())
	return ns, nil
}
