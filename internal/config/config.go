// Package config resolves collation settings from flags, environment,
// config file and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when resolved settings cannot drive a run.
var ErrInvalidConfig = errors.New("invalid configuration")

// Setting keys. Environment variables use the POKECOLLATE_ prefix and the
// upper-cased key, e.g. POKECOLLATE_DATA_DIR.
const (
	KeyConfigFile = "config"
	KeyDataDir    = "data_dir"
	KeyOutDir     = "out_dir"
	KeyWorkers    = "workers"
	KeySummary    = "summary"
	KeyNoSummary  = "no_summary"
	KeyVerbose    = "verbose"
)

const (
	envPrefix  = "POKECOLLATE"
	configName = ".pokecollate"
)

// Config holds the settings of one collation run.
type Config struct {
	DataDir string // dataset root holding the resource directories
	OutDir  string // directory receiving the generation artifacts
	Workers int    // generations collated in parallel
	Summary bool   // write summary.json next to the artifacts
	Verbose bool   // debug logging

	// ConfigFile is the config file that was read, empty when none was found.
	ConfigFile string
}

// New returns a viper instance carrying the defaults, the config file
// search path and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pokecollate"))
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDataDir, filepath.Join("data", "pokemon-data"))
	v.SetDefault(KeyOutDir, ".")
	v.SetDefault(KeyWorkers, 4)
	v.SetDefault(KeySummary, true)
	v.SetDefault(KeyNoSummary, false)
	v.SetDefault(KeyVerbose, false)
	return v
}

// BindGlobalFlags registers the flags shared by every command.
func BindGlobalFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (default .pokecollate.yaml in . or ~/.config/pokecollate)")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	return errors.Join(
		v.BindPFlag(KeyConfigFile, flags.Lookup("config")),
		v.BindPFlag(KeyVerbose, flags.Lookup("verbose")),
	)
}

// BindCollateFlags registers the flags of the collate command.
func BindCollateFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()
	flags.String("data", v.GetString(KeyDataDir), "dataset root directory")
	flags.String("out", v.GetString(KeyOutDir), "output directory for generation files")
	flags.Int("workers", v.GetInt(KeyWorkers), "generations collated in parallel")
	flags.Bool("no-summary", false, "skip writing summary.json")

	return errors.Join(
		v.BindPFlag(KeyDataDir, flags.Lookup("data")),
		v.BindPFlag(KeyOutDir, flags.Lookup("out")),
		v.BindPFlag(KeyWorkers, flags.Lookup("workers")),
		v.BindPFlag(KeyNoSummary, flags.Lookup("no-summary")),
	)
}

// Load reads the config file, if any, and resolves the settings.
// A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		DataDir:    v.GetString(KeyDataDir),
		OutDir:     v.GetString(KeyOutDir),
		Workers:    v.GetInt(KeyWorkers),
		Summary:    v.GetBool(KeySummary) && !v.GetBool(KeyNoSummary),
		Verbose:    v.GetBool(KeyVerbose),
		ConfigFile: v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings can drive a run.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data directory is empty", ErrInvalidConfig)
	}
	if c.OutDir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}
