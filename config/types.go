package config

// Config represents the complete configuration structure
type Config struct {
	// Token is the Control D API bearer token, from the TOKEN env var
	Token string `mapstructure:"token"`
	// Profiles holds the profile ids parsed from the PROFILE env var
	Profiles []string `mapstructure:"-"`

	Rename  RenameConfig  `mapstructure:"rename"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RenameConfig contains settings for the rename workflow
type RenameConfig struct {
	Prefix string `mapstructure:"prefix"`
	DryRun bool   `mapstructure:"dry_run"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
