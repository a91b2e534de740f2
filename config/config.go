/*
Package config gathers the settings of the dtree commands from defaults, an
optional configuration file and command line flags, in increasing order of
precedence.
*/
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every setting of the dtree commands
type Config struct {
	Data  DataConf  `mapstructure:"data"`
	Tree  TreeConf  `mapstructure:"tree"`
	Split SplitConf `mapstructure:"split"`
	Log   LogConf   `mapstructure:"log"`
}

// DataConf describes where samples are read from.
type DataConf struct {
	// Path to a CSV or SQLite3 file, or a PostgreSQL or MongoDB URL.
	// Empty means CSV from STDIN.
	Input string `mapstructure:"input"`
	// Table or collection holding the samples on databases
	Table string `mapstructure:"table"`
	// Path to the YAML feature metadata, features are inferred without it
	Metadata string `mapstructure:"metadata"`
}

// TreeConf holds the settings to learn trees.
type TreeConf struct {
	IDFeature    string `mapstructure:"id_feature"`
	ClassFeature string `mapstructure:"class_feature"`
	MinLeafCount int    `mapstructure:"min_leaf_count"`
}

// SplitConf holds the settings to split sets in training and test sets.
type SplitConf struct {
	TestFraction float64 `mapstructure:"test_fraction"`
	// Seed for the shuffle, 0 to take one from the current time
	Seed int64 `mapstructure:"seed"`
}

// LogConf holds the settings of the command line logger.
type LogConf struct {
	// Level is one of the logrus level names, like debug or info
	Level string `mapstructure:"level"`
}

// Defaults for the settings not given on flags or a file.
const (
	DefaultMinLeafCount = 1
	DefaultTestFraction = 0.25
	DefaultLogLevel     = "info"
)

// flagKeys maps flag names to the configuration keys they set
var flagKeys = map[string]string{
	"input":          "data.input",
	"table":          "data.table",
	"metadata":       "data.metadata",
	"id-feature":     "tree.id_feature",
	"class-feature":  "tree.class_feature",
	"min-leaf-count": "tree.min_leaf_count",
	"test-fraction":  "split.test_fraction",
	"seed":           "split.seed",
	"log-level":      "log.level",
}

/*
New returns a viper instance holding the default settings.
*/
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("data.input", "")
	v.SetDefault("data.table", "")
	v.SetDefault("data.metadata", "")
	v.SetDefault("tree.id_feature", "")
	v.SetDefault("tree.class_feature", "")
	v.SetDefault("tree.min_leaf_count", DefaultMinLeafCount)
	v.SetDefault("split.test_fraction", DefaultTestFraction)
	v.SetDefault("split.seed", 0)
	v.SetDefault("log.level", DefaultLogLevel)
	return v
}

/*
AddFlags defines on the flag set the flags that can override settings.
*/
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the samples (defaults to STDIN, interpreted as CSV)")
	fs.String("table", "", "table or collection with the samples when reading from a database")
	fs.StringP("metadata", "m", "", "path to a YML file with metadata describing the features available on the input (features are inferred from the data if not set)")
	fs.String("id-feature", "", "name of the feature identifying samples, ignored to learn the tree")
	fs.StringP("class-feature", "c", "", "name of the feature the tree should predict (required)")
	fs.Int("min-leaf-count", DefaultMinLeafCount, "number of samples each side of a split must exceed")
	fs.Float64("test-fraction", DefaultTestFraction, "fraction of the samples set apart to test the tree")
	fs.Int64("seed", 0, "seed to shuffle samples before splitting them (defaults to 0: seeded with current time)")
	fs.String("log-level", DefaultLogLevel, "level of the log entries written to STDERR")
}

/*
BindFlags binds the flags defined with AddFlags present on the flag set to
their configuration keys, so that flags set on the command line take
precedence over the configuration file.
*/
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

/*
Load takes a viper instance and the path to a configuration file, which may
be empty, and returns the resulting Config or an error. The format of the
file is taken from its extension.
*/
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration file %s: %w", path, err)
		}
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return c, nil
}

/*
Validate returns an error describing the first invalid setting found, if any.
*/
func (c *Config) Validate() error {
	if c.Tree.MinLeafCount < 0 {
		return fmt.Errorf("min-leaf-count must not be negative, got %d", c.Tree.MinLeafCount)
	}
	if c.Split.TestFraction < 0 || c.Split.TestFraction > 1 {
		return fmt.Errorf("test-fraction must be between 0 and 1, got %v", c.Split.TestFraction)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// RequireClassFeature fails if no class feature was set.
func (c *Config) RequireClassFeature() error {
	if c.Tree.ClassFeature == "" {
		return fmt.Errorf("required class-feature flag was not set")
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (logrus.Level, error) {
	return logrus.ParseLevel(c.Log.Level)
}
