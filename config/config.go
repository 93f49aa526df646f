package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config represents the settings of one run. Values come from flags and
// CMTSCAN_* environment variables; no configuration file is read.
type Config struct {
	Version     string `mapstructure:"version"`
	Theme       string `mapstructure:"theme"`
	NoColor     bool   `mapstructure:"no_color"`
	EnableCache bool   `mapstructure:"enable_cache"`
	CacheDir    string `mapstructure:"cache_dir"`
	Summary     bool   `mapstructure:"summary"`
	Verbose     bool   `mapstructure:"verbose"`
}

// DefaultConfig values
var DefaultConfig = Config{
	Version:     "0.1.0",
	Theme:       "",
	NoColor:     false,
	EnableCache: false,
	CacheDir:    "",
	Summary:     false,
	Verbose:     false,
}

// LoadConfigs resolves defaults, environment variables, and flags, in increasing priority.
func LoadConfigs(rootCmd *cobra.Command) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	bindEnv(v)

	if err := bindFlags(v, rootCmd); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &config, nil
}

// setDefaults sets all default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", DefaultConfig.Version)
	v.SetDefault("theme", DefaultConfig.Theme)
	v.SetDefault("no_color", DefaultConfig.NoColor)
	v.SetDefault("enable_cache", DefaultConfig.EnableCache)
	v.SetDefault("cache_dir", DefaultConfig.CacheDir)
	v.SetDefault("summary", DefaultConfig.Summary)
	v.SetDefault("verbose", DefaultConfig.Verbose)
}

// bindEnv explicitly binds environment variables to configuration keys
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("theme", "CMTSCAN_THEME")
	_ = v.BindEnv("no_color", "CMTSCAN_NO_COLOR")
	_ = v.BindEnv("enable_cache", "CMTSCAN_ENABLE_CACHE")
	_ = v.BindEnv("cache_dir", "CMTSCAN_CACHE_DIR")
	_ = v.BindEnv("summary", "CMTSCAN_SUMMARY")
	_ = v.BindEnv("verbose", "CMTSCAN_VERBOSE")
}

// bindFlags binds the CLI flags to configuration values.
func bindFlags(v *viper.Viper, rootCmd *cobra.Command) error {
	bindings := map[string]string{
		"theme":        "theme",
		"no_color":     "no-color",
		"enable_cache": "enable-cache",
		"cache_dir":    "cache-dir",
		"summary":      "summary",
		"verbose":      "verbose",
	}

	for key, flagName := range bindings {
		flag := rootCmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
		}
	}

	return nil
}

// InitFlags initializes the flags for the root command.
func InitFlags(rootCmd *cobra.Command) {
	// Use PersistentFlags so that these flags are available in all subcommands
	rootCmd.PersistentFlags().String("theme", DefaultConfig.Theme, "Highlight comment text with a chroma theme (e.g., 'dracula', 'monokai'). Empty disables highlighting.")
	rootCmd.PersistentFlags().Bool("no-color", DefaultConfig.NoColor, "Print the report without ANSI color codes.")
	rootCmd.PersistentFlags().Bool("enable-cache", DefaultConfig.EnableCache, "Reuse scan results of unchanged files from the on-disk cache.")
	rootCmd.PersistentFlags().String("cache-dir", DefaultConfig.CacheDir, "Directory of the scan cache (default is <user cache dir>/cmtscan).")
	rootCmd.PersistentFlags().Bool("summary", DefaultConfig.Summary, "Print a box with file and comment totals after the report.")
	rootCmd.PersistentFlags().Bool("verbose", DefaultConfig.Verbose, "Write debug diagnostics to stderr.")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Specifies the version of the application.")
}
