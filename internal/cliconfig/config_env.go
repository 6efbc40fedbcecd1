package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (DAYBOUND_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setStringsFromCSV("zone", os.Getenv("DAYBOUND_ZONES"), &cfg.Zones)
	s.setString("at", os.Getenv("DAYBOUND_AT"), &cfg.At)
	s.setString("format", os.Getenv("DAYBOUND_FORMAT"), &cfg.Format)

	if err := s.setDuration("debounce", os.Getenv("DAYBOUND_DEBOUNCE_DELAY"), &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("DAYBOUND_WATCH"), &cfg.Watch)
	s.setBoolFromString("reload", os.Getenv("DAYBOUND_RELOAD"), &cfg.Reload)

	return nil
}
