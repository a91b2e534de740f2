package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Learn a tree from a set of data and print it",
		Long:  `Learn a tree from every sample in a set of data to predict a certain feature and print it.`,
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
			t, err := rootConfig.learn(ctx, is, is.samples)
			if err != nil {
				fmt.Fprintf(os.Stderr, "learning the tree: %v\n", err)
				os.Exit(4)
			}
			fmt.Println(t)
		},
	}
}
