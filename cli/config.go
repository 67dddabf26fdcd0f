package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abiiranathan/pdfdedup/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration for the CLI.
type Config struct {
	// Max files extracted at a time.
	// Large values will increase CPU and memory usage.
	// Default is 1.
	MaxConcurrency int `mapstructure:"concurrency"`

	// the folder scanned recursively for PDFs
	Root string `mapstructure:"root"`

	// the folder duplicates are deleted from
	Target string `mapstructure:"target"`

	// pairs scoring at least this are similar. default is 0.9
	Threshold float64 `mapstructure:"threshold"`

	// word or prose
	Tokenizer string `mapstructure:"tokenizer"`

	// Language code for stop-word removal. Empty disables it.
	StopWords string `mapstructure:"stopwords"`

	// first or cluster
	Policy string `mapstructure:"policy"`

	DryRun     bool `mapstructure:"dry_run"`
	SkipHidden bool `mapstructure:"skip_hidden"`

	// Optional .json, .yaml or .yml file receiving the run report.
	Report string `mapstructure:"report"`

	Verbose bool `mapstructure:"verbose"`
}

var DefaultConfig = Config{
	MaxConcurrency: 1,
	Threshold:      0.9,
	Tokenizer:      "word",
	Policy:         "first",
}

// Name of the config file, without extension, looked up in the working
// directory and in $HOME/.config/pdfdedup.
const configName = "pdfdedup"

// LoadConfig layers DefaultConfig, a .env file, the config file and PDFDEDUP_*
// environment variables, in increasing order of precedence. Flags are parsed
// into the returned Config afterwards.
// PDFDEDUP_CONFIG names an explicit config file; it must exist.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logging.Log.Debug("No .env file found, using system environment")
	}

	v := viper.New()
	v.SetEnvPrefix("PDFDEDUP")
	v.AutomaticEnv()

	v.SetDefault("concurrency", DefaultConfig.MaxConcurrency)
	v.SetDefault("root", DefaultConfig.Root)
	v.SetDefault("target", DefaultConfig.Target)
	v.SetDefault("threshold", DefaultConfig.Threshold)
	v.SetDefault("tokenizer", DefaultConfig.Tokenizer)
	v.SetDefault("stopwords", DefaultConfig.StopWords)
	v.SetDefault("policy", DefaultConfig.Policy)
	v.SetDefault("dry_run", DefaultConfig.DryRun)
	v.SetDefault("skip_hidden", DefaultConfig.SkipHidden)
	v.SetDefault("report", DefaultConfig.Report)
	v.SetDefault("verbose", DefaultConfig.Verbose)

	if file := os.Getenv("PDFDEDUP_CONFIG"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", file, err)
		}
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("unable to read config file: %w", err)
			}
		}
	}

	if used := v.ConfigFileUsed(); used != "" {
		logging.Log.Debugf("Using config file: %s", used)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}
