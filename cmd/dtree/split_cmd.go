package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/minhnghia2208/dtree/dataset"
	"github.com/minhnghia2208/dtree/dataset/csv"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	trainOutput string
	testOutput  string
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into training and test sets",
		Long:  `Shuffle a set and split it into a training set and a test set with the configured fraction of the samples, written as CSV`,
		Run: func(cmd *cobra.Command, args []string) {
			err := rootConfig.load(cmd, false)
			if err == nil {
				err = config.Validate()
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			names, samples, err := rootConfig.readSamples(ctx, nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading samples: %v\n", err)
				os.Exit(2)
			}
			train, test, err := dataset.Split(samples, rootConfig.Split.TestFraction, rootConfig.random())
			if err != nil {
				fmt.Fprintf(os.Stderr, "splitting samples: %v\n", err)
				os.Exit(3)
			}

			var trainFile *os.File
			if config.trainOutput != "" {
				rootConfig.Logf("Creating %s to dump training set...", config.trainOutput)
				trainFile, err = os.Create(config.trainOutput)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				defer trainFile.Close()
			} else {
				rootConfig.Logf("Using STDOUT to dump training set...")
				trainFile = os.Stdout
			}
			rootConfig.Logf("Creating %s to dump test set...", config.testOutput)
			testFile, err := os.Create(config.testOutput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			defer testFile.Close()

			rootConfig.Logf("Writing %d training samples and %d test samples...", len(train), len(test))
			n, err := csv.WriteSet(trainFile, train, names)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing training set after %d samples: %v\n", n, err)
				os.Exit(6)
			}
			rootConfig.Logf("Wrote %d training samples", n)
			n, err = csv.WriteSet(testFile, test, names)
			if err != nil {
				fmt.Fprintf(os.Stderr, "writing test set after %d samples: %v\n", n, err)
				os.Exit(7)
			}
			rootConfig.Logf("Wrote %d test samples", n)
		},
	}
	cmd.Flags().StringVarP(&(config.trainOutput), "output", "o", "", "path to a file to which the training set will be written in CSV (defaults to STDOUT)")
	cmd.Flags().StringVarP(&(config.testOutput), "test-output", "t", "", "path to a file to which the test set will be written in CSV (required)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.testOutput == "" {
		return fmt.Errorf("required test-output flag was not set")
	}
	return nil
}
