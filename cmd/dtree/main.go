package main

import (
	"os"

	"github.com/minhnghia2208/dtree/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	*config.Config
	logger
	configPath string
	verbose    bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dtree",
		Short: "dtree is a tool to learn decision trees",
		Long:  `A tool to learn binary decision trees from samples with continuous, possibly undefined, features, evaluate them and use them to make predictions`,
	}
	rootConfig := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(rootConfig.verbose), "verbose", "v", false, "log the progress of the command, including every split")
	rootCmd.PersistentFlags().StringVar(&(rootConfig.configPath), "config", "", "path to a YAML, TOML or JSON configuration file")
	config.AddFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(
		versionCmd(),
		evaluateCmd(rootConfig),
		treeCmd(rootConfig),
		predictCmd(rootConfig),
		splitCmd(rootConfig),
	)
	return rootCmd
}

/*
load reads the configuration for the given command and sets up the logger.
Commands that learn trees require a class feature.
*/
func (rcc *rootCmdConfig) load(cmd *cobra.Command, learns bool) error {
	v := config.New()
	err := config.BindFlags(v, cmd.Flags())
	if err != nil {
		return err
	}
	rcc.Config, err = config.Load(v, rcc.configPath)
	if err != nil {
		return err
	}
	err = rcc.Validate()
	if err != nil {
		return err
	}
	if learns {
		err = rcc.RequireClassFeature()
		if err != nil {
			return err
		}
	}
	level, err := rcc.LogLevel()
	if err != nil {
		return err
	}
	if rcc.verbose {
		level = logrus.DebugLevel
	}
	rcc.logger = newLogger(level)
	return nil
}
