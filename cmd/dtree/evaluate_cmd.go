package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/minhnghia2208/dtree"
	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/report"
	"github.com/minhnghia2208/dtree/tree"
	"github.com/spf13/cobra"
)

func evaluateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the trees learnt from a set of data",
		Long:  `Split a set of data in training and test sets, learn a tree from the training set and report how it classifies the samples in the test set.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.load(cmd, true)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			is, err := rootConfig.readInput(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			train, test, err := dataset.Split(is.samples, rootConfig.Split.TestFraction, rootConfig.random())
			if err != nil {
				fmt.Fprintf(os.Stderr, "splitting samples: %v\n", err)
				os.Exit(3)
			}
			t, err := rootConfig.learn(ctx, is, train)
			if err != nil {
				fmt.Fprintf(os.Stderr, "learning the tree: %v\n", err)
				os.Exit(4)
			}
			rootConfig.Logf("Testing tree against test set with %d samples...", len(test))
			outcomes, err := t.Test(test)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(5)
			}
			rootConfig.Logf("Done: %.2f%% of the test samples predicted correctly", 100*tree.SuccessRate(outcomes))
			err = report.WriteOutcomes(os.Stdout, outcomes, func(o *tree.Outcome) string {
				return rootConfig.idOf(o.Sample)
			})
			if err == nil {
				err = report.WriteSummary(os.Stdout, report.NewConfusion(outcomes), is.class.AvailableValues())
			}
			if err == nil {
				_, err = fmt.Println(t)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
}

/*
learn learns a tree from the given samples with the configured settings.
*/
func (rcc *rootCmdConfig) learn(ctx context.Context, is *inputSet, samples []dataset.Sample) (*tree.Tree, error) {
	rcc.Logf("Learning tree from a set with %d samples and %d features to predict %s ...", len(samples), len(is.features)-1, is.class.Name())
	t, err := dtree.Learn(ctx, samples, dtree.Config{
		IDFeature:    rcc.Tree.IDFeature,
		Class:        is.class,
		Features:     is.features,
		MinLeafCount: rcc.Tree.MinLeafCount,
		Logger:       rcc.logger.Logger,
	})
	if err != nil {
		return nil, err
	}
	rcc.Logf("Done: %d leaves, depth %d", len(t.Leaves()), t.Depth())
	return t, nil
}

// random returns the source of randomness to split sets.
func (rcc *rootCmdConfig) random() *rand.Rand {
	seed := rcc.Split.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rcc.Logf("Shuffling samples with seed %d", seed)
	return rand.New(rand.NewSource(seed))
}
