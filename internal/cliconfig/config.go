package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/bft-labs/daybound/pkg/daytime"
)

// DefaultZone is used when no zone is configured anywhere.
const DefaultZone = "UTC"

// Config holds CLI configuration for daybound.
type Config struct {
	// Zones are IANA zone names to compute boundaries for.
	Zones []string

	// At is the reference instant in RFC3339; empty means now.
	At string

	// Format selects CLI output: "text" or "json".
	Format string

	// Watch runs the day-rollover watcher instead of a one-shot print.
	Watch bool

	// Reload enables config-file hot reload in watch mode.
	Reload bool

	// DebounceDelay is the settle time after a config file change
	// before the zone list is reloaded.
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Zones:         []string{DefaultZone},
		Format:        "text",
		Reload:        true,
		DebounceDelay: 100 * time.Millisecond,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if len(c.Zones) == 0 {
		c.Zones = []string{DefaultZone}
	}
	for _, z := range c.Zones {
		if strings.TrimSpace(z) == "" {
			return fmt.Errorf("zone name must not be empty")
		}
		if _, err := daytime.LoadZone(z); err != nil {
			return err
		}
	}

	if c.At != "" {
		if _, err := time.Parse(time.RFC3339, c.At); err != nil {
			return fmt.Errorf("parse at: %w", err)
		}
	}

	switch c.Format {
	case "", "text":
		c.Format = "text"
	case "json":
	default:
		return fmt.Errorf("format must be text or json, got %q", c.Format)
	}

	if c.DebounceDelay <= 0 {
		c.DebounceDelay = 100 * time.Millisecond
	}

	return nil
}

// ReferenceTime resolves the configured instant, defaulting to the
// current time.
func (c *Config) ReferenceTime() (time.Time, error) {
	if c.At == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, c.At)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse at: %w", err)
	}
	return t.UTC(), nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setStringsFromCSV splits a comma-separated string and sets the
// destination slice. Used for environment variables.
func (s *configSetter) setStringsFromCSV(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
