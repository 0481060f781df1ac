// Package config handles configuration loading for the FRN duration
// service. It supports YAML config files with environment variable
// overrides; command-line flags in cmd/server take final precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete service configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// ServerConfig holds HTTP server and storage settings.
type ServerConfig struct {
	Port           int      `mapstructure:"port"            yaml:"port"`
	DBPath         string   `mapstructure:"db_path"         yaml:"db_path"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	HistoryLimit   int      `mapstructure:"history_limit"   yaml:"history_limit"`
}

// Load reads the configuration from ./config/config.yaml (optional) and
// environment variables. Format: FRN_<SECTION>_<KEY>, e.g. FRN_SERVER_PORT.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FRN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file: defaults plus env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("FRN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.db_path", "frn.db")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:8080",
	})
	v.SetDefault("server.history_limit", 100)
}
