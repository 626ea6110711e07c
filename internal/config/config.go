package config

import (
	"os"
	"path/filepath"
)

// Config is the root application configuration.
type Config struct {
	DB       DBConfig  `yaml:"db"`
	Log      LogConfig `yaml:"log"`
	Timezone string    `yaml:"timezone" env:"JOURNAL_TZ" env-default:"Local"`
}

// DBConfig holds the SQLite file location.
type DBConfig struct {
	Path string `yaml:"path" env:"JOURNAL_DB"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DefaultDBPath is used when no path is configured.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".learning-journal", "journal.db")
}
