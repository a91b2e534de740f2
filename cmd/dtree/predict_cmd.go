package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/minhnghia2208/dtree/dataset/inputsample"
	"github.com/minhnghia2208/dtree/feature"
	"github.com/spf13/cobra"
)

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Predict a value for a sample answering questions",
		Long:  `Learn a tree from a set of data and use it to predict the class of a sample whose feature values are asked on STDIN as the tree needs them.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.load(cmd, true)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if rootConfig.Data.Input == "" {
				fmt.Fprintln(os.Stderr, "required input flag was not set, STDIN is used to read the sample")
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			is, err := rootConfig.readInput(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			t, err := rootConfig.learn(ctx, is, is.samples)
			if err != nil {
				fmt.Fprintf(os.Stderr, "learning the tree: %v\n", err)
				os.Exit(4)
			}
			s := inputsample.New(os.Stdin, is.features, &stdinRequester{})
			label, prob, err := t.Classify(s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "predicting: %v\n", err)
				os.Exit(5)
			}
			fmt.Printf("%s: %s (%.2f)\n", is.class.Name(), label, prob)
		},
	}
}

type stdinRequester struct{}

func (sr *stdinRequester) RequestValueFor(f feature.Feature) error {
	if df, ok := f.(*feature.DiscreteFeature); ok {
		fmt.Printf("Please, provide a value for %s (one of %s, or %s if unknown):\n", f.Name(), strings.Join(df.AvailableValues(), ", "), feature.UndefinedValue)
		return nil
	}
	fmt.Printf("Please, provide a number for %s (or %s if unknown):\n", f.Name(), feature.UndefinedValue)
	return nil
}

func (sr *stdinRequester) RejectValueFor(f feature.Feature, v string, err error) error {
	fmt.Printf("Invalid value %q for %s: %v. Try again:\n", v, f.Name(), err)
	return nil
}
