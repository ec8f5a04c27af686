package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from the process environment and an optional
// config file. The API token (TOKEN) and profile list (PROFILE) always come
// from the environment; the file only carries logging and rename settings.
func Load(configPath string) (*Config, error) {
	// Pick up a local .env if present. A missing file is fine.
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".controld-renamer"))
		}

		// Check /etc
		v.AddConfigPath("/etc/controld-renamer/")

		// The config file is optional since the environment can carry
		// everything this tool needs.
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	_ = v.BindEnv("token", "TOKEN")
	_ = v.BindEnv("profile", "PROFILE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Token = v.GetString("token")
	cfg.Profiles = SplitProfiles(v.GetString("profile"))

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// SplitProfiles parses a comma-separated profile list, trimming whitespace
// and dropping empty entries.
func SplitProfiles(raw string) []string {
	var profiles []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			profiles = append(profiles, part)
		}
	}
	return profiles
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Rename defaults
	v.SetDefault("rename.prefix", "HA-")
	v.SetDefault("rename.dry_run", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Token == "" {
		return fmt.Errorf("TOKEN is required - set it in the environment or a .env file")
	}

	if len(cfg.Profiles) == 0 {
		return fmt.Errorf("PROFILE is required - set a comma-separated list of profile ids")
	}

	if cfg.Rename.Prefix == "" {
		return fmt.Errorf("rename.prefix must not be empty")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
