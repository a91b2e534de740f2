package dtree

import (
	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/feature"
)

// thresholdCount is the number of evenly spaced thresholds tried on the
// range of values of a feature.
const thresholdCount = 25

/*
Partition represents the split of a set of samples in two according to a
criterion, with the information gain it provides to predict the class feature.
Samples that do not define a value for the criterion's feature are in neither
part.
*/
type Partition struct {
	Criterion       *feature.Criterion
	LessThan        []dataset.Sample
	GreaterOrEqual  []dataset.Sample
	informationGain float64
}

// InformationGain returns the entropy reduction obtained with the partition.
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

// nodeSet is a set of samples with the labels of each
// already resolved into indexes of the class values.
type nodeSet struct {
	samples       []dataset.Sample
	labels        []int
	counts        *ClassCounts
	majority      string
	majorityCount int
	entropy       float64
}

/*
bestPartition goes through the given continuous features in order and, for
each, through thresholdCount thresholds evenly spaced over the range of its
values on the set, returning the partition with the highest information
gain. Every candidate with two non-empty parts competes for the best gain,
starting at 0, but one that improves strictly on it is only accepted when both
its parts hold more than minLeafCount samples. A rejected candidate still
raises the gain later candidates must beat. The result is nil if no candidate
is accepted.
*/
func bestPartition(ns *nodeSet, features []*feature.ContinuousFeature, minLeafCount int) (*Partition, error) {
	var (
		highest       float64
		bestGain      float64
		bestFeature   *feature.ContinuousFeature
		bestThreshold float64
	)
	values := make([]float64, 0, len(ns.samples))
	labels := make([]int, 0, len(ns.samples))
	for _, f := range features {
		values, labels = values[:0], labels[:0]
		for i, s := range ns.samples {
			v, err := s.ValueFor(f.Name())
			if err != nil {
				return nil, err
			}
			if fv, ok := feature.Number(v); ok {
				values = append(values, fv)
				labels = append(labels, ns.labels[i])
			}
		}
		if len(values) == 0 {
			continue
		}
		min, max := values[0], values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		seg := (max - min) / thresholdCount
		for i := 1; i <= thresholdCount; i++ {
			threshold := min + seg*float64(i)
			left, right := ns.counts.empty(), ns.counts.empty()
			for j, v := range values {
				if v < threshold {
					left.addIndex(labels[j])
				} else {
					right.addIndex(labels[j])
				}
			}
			pl, pr := left.Total(), right.Total()
			if pl == 0 || pr == 0 {
				continue
			}
			n := float64(pl + pr)
			gain := ns.entropy - (float64(pl)/n*Entropy(left, pl) + float64(pr)/n*Entropy(right, pr))
			if gain <= highest {
				continue
			}
			highest = gain
			if pl > minLeafCount && pr > minLeafCount {
				bestGain = gain
				bestFeature = f
				bestThreshold = threshold
			}
		}
	}
	if bestFeature == nil {
		return nil, nil
	}
	return newPartition(ns, feature.NewCriterion(bestFeature, bestThreshold), bestGain)
}

func newPartition(ns *nodeSet, c *feature.Criterion, informationGain float64) (*Partition, error) {
	p := &Partition{Criterion: c, informationGain: informationGain}
	for _, s := range ns.samples {
		v, err := s.ValueFor(c.Feature().Name())
		if err != nil {
			return nil, err
		}
		b, err := c.Route(v)
		if err != nil {
			// values that are not numbers are taken as undefined
			continue
		}
		switch b {
		case feature.LessThan:
			p.LessThan = append(p.LessThan, s)
		case feature.GreaterOrEqual:
			p.GreaterOrEqual = append(p.GreaterOrEqual, s)
		}
	}
	return p, nil
}
