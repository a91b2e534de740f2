/*
Package report summarizes how a tree performs on a test set: accuracy,
near misses on ordered classes and confusion matrices.
*/
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/minhnghia2208/dtree/tree"
)

type pair struct {
	actual, predicted string
}

/*
Confusion counts the (actual, predicted) label pairs of a set of outcomes.
*/
type Confusion struct {
	counts map[pair]int
	total  int
}

// NewConfusion returns a Confusion counting the given outcomes.
func NewConfusion(outcomes []*tree.Outcome) *Confusion {
	c := &Confusion{counts: make(map[pair]int)}
	for _, o := range outcomes {
		c.Add(o.Actual, o.Predicted)
	}
	return c
}

// Add counts one more sample with the given actual and predicted labels.
func (c *Confusion) Add(actual, predicted string) {
	c.counts[pair{actual, predicted}]++
	c.total++
}

// Count returns the number of samples with the given actual and predicted labels.
func (c *Confusion) Count(actual, predicted string) int {
	return c.counts[pair{actual, predicted}]
}

// Total returns the number of samples counted.
func (c *Confusion) Total() int {
	return c.total
}

/*
Accuracy returns the fraction of samples whose predicted label is the
actual one, 0 if there are none.
*/
func (c *Confusion) Accuracy() float64 {
	if c.total == 0 {
		return 0
	}
	var correct int
	for p, n := range c.counts {
		if p.actual == p.predicted {
			correct += n
		}
	}
	return float64(correct) / float64(c.total)
}

/*
Almost takes the labels in their natural order and returns the fraction of
samples whose predicted label is at most one position away from the
actual one. Samples with labels not in the order never count as almost
right.
*/
func (c *Confusion) Almost(order []string) float64 {
	if c.total == 0 {
		return 0
	}
	position := make(map[string]int, len(order))
	for i, l := range order {
		position[l] = i
	}
	var almost int
	for p, n := range c.counts {
		a, ok := position[p.actual]
		if !ok {
			continue
		}
		b, ok := position[p.predicted]
		if !ok {
			continue
		}
		if a-b < 2 && b-a < 2 {
			almost += n
		}
	}
	return float64(almost) / float64(c.total)
}

/*
Normalized takes the labels to report and returns the matrix of the
fraction of all samples in each cell, rows for actual labels and columns for
predicted labels in the given order. All cells are 0 if nothing was counted.
*/
func (c *Confusion) Normalized(labels []string) [][]float64 {
	m := make([][]float64, len(labels))
	for i, a := range labels {
		m[i] = make([]float64, len(labels))
		if c.total == 0 {
			continue
		}
		for j, p := range labels {
			m[i][j] = float64(c.Count(a, p)) / float64(c.total)
		}
	}
	return m
}

/*
Render takes the labels to report and returns the normalized confusion
matrix drawn as a table with actual labels on the rows and predicted labels
on the columns. Labels are abbreviated with the initials of their words.
*/
func (c *Confusion) Render(labels []string) string {
	m := c.Normalized(labels)
	abbr := make([]string, len(labels))
	for i, l := range labels {
		abbr[i] = Abbreviate(l)
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, " actual %s  \n", strings.Repeat("_", 9*len(labels)-1))
	for i, row := range m {
		b.WriteString("       |")
		b.WriteString(strings.Repeat("        |", len(labels)))
		b.WriteString(" \n")
		fmt.Fprintf(&b, "  %s |", center(abbr[i], 4))
		for _, v := range row {
			fmt.Fprintf(&b, " %5.2f  |", v)
		}
		b.WriteString(" \n")
		b.WriteString("       |")
		b.WriteString(strings.Repeat("________|", len(labels)))
		b.WriteString(" \n")
	}
	centered := make([]string, len(abbr))
	for i, a := range abbr {
		centered[i] = center(a, 4)
	}
	fmt.Fprintf(&b, "          %s \n", strings.Join(centered, "     "))
	b.WriteString("                     predicted \n")
	return b.String()
}

// Abbreviate returns the initials of the words in a label.
func Abbreviate(label string) string {
	var b strings.Builder
	for _, w := range strings.Fields(label) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

// center pads s with spaces up to width, putting the odd space on the right.
func center(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n/2) + s + strings.Repeat(" ", n-n/2)
}
