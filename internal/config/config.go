// Package config loads neocat's runtime configuration.
//
// Values come from, in increasing priority: built-in defaults, an optional
// .neocat.yaml file, NEOCAT_* environment variables (a .env file in the
// working directory is loaded into the environment first) and command-line
// flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Init.
const EnvPrefix = "NEOCAT"

// Config holds all runtime configuration for a neocat run.
type Config struct {
	NEOFile string `mapstructure:"neofile" validate:"required"`
	CADFile string `mapstructure:"cadfile" validate:"required"`
	Format  string `mapstructure:"format" validate:"oneof=table csv json"`
	Limit   int    `mapstructure:"limit" validate:"gte=0"`
	Verbose bool   `mapstructure:"verbose"`
}

// Init points v at its config sources. An explicit cfgFile must exist;
// otherwise .neocat.yaml is looked up in the working and home directories
// and may be missing.
func Init(v *viper.Viper, cfgFile string) error {
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".neocat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// loadDotEnv exports the variables of path into the process environment
// without overriding variables that are already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("neofile", "data/neos.csv")
	v.SetDefault("cadfile", "data/cad.json")
	v.SetDefault("format", "table")
	v.SetDefault("limit", 10)
	v.SetDefault("verbose", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every violation.
func (c Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("key=%q, value=%q, failed %q validation",
			strings.ToLower(e.Field()), fmt.Sprint(e.Value()), e.ActualTag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
