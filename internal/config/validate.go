package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the loaded values and fills the DB path default.
func (c *Config) Validate() error {
	if c.DB.Path == "" {
		c.DB.Path = DefaultDBPath()
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	return nil
}

// Location resolves Timezone. "Local" and "" mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
