// Package config loads gradebook settings from a config file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. GRADEBOOK_LOGGING_LEVEL.
const EnvPrefix = "GRADEBOOK"

// ErrConfigExists indicates WriteStarter would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// Config is the on-disk configuration.
type Config struct {
	Categories           []models.Category `mapstructure:"categories" yaml:"categories" validate:"dive"`
	ShowCategoryAverages bool              `mapstructure:"show_category_averages" yaml:"show_category_averages"`
	Logging              LoggingConfig     `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Categories: models.DefaultCategories(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultDir returns $HOME/.config/gradebook.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "gradebook"), nil
}

// Load reads cfgFile, or searches $HOME/.config/gradebook and the working directory
// for config.yaml when cfgFile is empty. A missing config file is not an error.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	def := Default()
	v.SetDefault("show_category_averages", def.ShowCategoryAverages)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if !v.IsSet("categories") {
		cfg.Categories = def.Categories
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints on cfg.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// WriteStarter writes the default configuration as YAML to path. It refuses to
// overwrite an existing file unless force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
