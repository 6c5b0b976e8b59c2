package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"

	generrors "github.com/jsonbind-lang/jsonbind/internal/codegen/errors"
)

// Config represents the jsonbind configuration
type Config struct {
	Generate GenerateConfig `mapstructure:"generate"`
	Input    InputConfig    `mapstructure:"input"`
}

// GenerateConfig represents code generation configuration
type GenerateConfig struct {
	Package string `mapstructure:"package"`
	Output  string `mapstructure:"output"`
}

// InputConfig represents sample ingestion configuration
type InputConfig struct {
	Format   string `mapstructure:"format"`
	TopLevel string `mapstructure:"top_level"`
}

// Load loads the configuration from jsonbind.yml or jsonbind.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("generate.package", "quicktype")
	v.SetDefault("generate.output", "")
	v.SetDefault("input.format", "json")
	v.SetDefault("input.top_level", "TopLevel")

	// Set config name and paths. The project root is searched after the
	// working directory, so running from a subdirectory still finds the
	// project's jsonbind.yml.
	v.SetConfigName("jsonbind")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if root, err := GetProjectRoot(); err == nil {
		v.AddConfigPath(root)
	}

	// Enable environment variable support
	v.SetEnvPrefix("JSONBIND")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	if err := checkKnownKeys(v); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// GetProjectRoot tries to find the project root by looking for jsonbind.yml
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "jsonbind.yml")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "jsonbind.yaml")); err == nil {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return "", fmt.Errorf("no jsonbind.yml found")
		}
		dir = parent
	}
}

// checkKnownKeys rejects config keys the generator does not understand, so
// a typo fails loudly instead of silently falling back to a default.
func checkKnownKeys(v *viper.Viper) error {
	known := map[string]bool{
		"generate.package": true,
		"generate.output":  true,
		"input.format":     true,
		"input.top_level":  true,
	}

	keys := v.AllKeys()
	sort.Strings(keys)
	for _, key := range keys {
		if !known[key] {
			return generrors.NewUnknownOption(key)
		}
	}
	return nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	switch cfg.Input.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("input.format must be json or yaml, got: %s", cfg.Input.Format)
	}
	if cfg.Input.TopLevel == "" {
		return fmt.Errorf("input.top_level must not be empty")
	}
	return nil
}
