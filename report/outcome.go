package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/minhnghia2208/dtree/tree"
)

var correctMark = color.New(color.FgGreen).SprintFunc()

/*
WriteOutcomes takes a writer, the outcomes of testing a tree and a function
returning the name to show for each sample, and writes a line per outcome
with the predicted and actual labels, marking correct predictions with *.
*/
func WriteOutcomes(w io.Writer, outcomes []*tree.Outcome, name func(*tree.Outcome) string) error {
	for _, o := range outcomes {
		mark := ""
		if o.Correct() {
			mark = correctMark("*")
		}
		_, err := fmt.Fprintf(w, "%-30s pred %-15s (%.2f), actual %-15s %s\n",
			name(o)+":", "'"+o.Predicted+"'", o.Probability, "'"+o.Actual+"'", mark)
		if err != nil {
			return err
		}
	}
	return nil
}

/*
WriteSummary takes a writer, a Confusion and the class labels in their
natural order and writes the accuracy, the almost right fraction and the
rendered confusion matrix.
*/
func WriteSummary(w io.Writer, c *Confusion, labels []string) error {
	_, err := fmt.Fprintf(w, "\naccuracy: %.2f\nalmost:   %.2f\n\n%s\n", c.Accuracy(), c.Almost(labels), c.Render(labels))
	return err
}
