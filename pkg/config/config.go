// Package config loads the engine configuration: the statement owner's own
// account references, the classifier's tuned constants, and the optional
// category rules file.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	// OwnAccounts are the statement owner's account reference strings.
	OwnAccounts []string `mapstructure:"own_accounts"`
	// IncomeThreshold and ExpenseThreshold tune the classifier's magnitude
	// heuristic.
	IncomeThreshold  float64 `mapstructure:"income_threshold"`
	ExpenseThreshold float64 `mapstructure:"expense_threshold"`
	// CategoriesFile points to a YAML category rule table; empty means the
	// built-in defaults.
	CategoriesFile string `mapstructure:"categories_file"`
	// MinInputRunes is the shortest extracted text worth parsing.
	MinInputRunes int `mapstructure:"min_input_runes"`
	// OutputPath is where review CSVs are written; empty means next to the
	// input file.
	OutputPath string `mapstructure:"output_path"`
}

// Build loads configuration from the given file (config.yaml in the working
// directory when empty) and overlays any bound command-line flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("income_threshold", 100.0)
	v.SetDefault("expense_threshold", 50.0)
	v.SetDefault("min_input_runes", 100)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Only an explicitly named file is required to exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
