// Package settings loads the behavior tunables of the intervention state
// machine from a YAML file, so cooldowns and channels can be changed per
// environment without a rebuild.
package settings

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the complete tunable configuration.
type Settings struct {
	Monitor  MonitorSettings `yaml:"monitor"`
	Timer    TimerSettings   `yaml:"timer"`
	Channels ChannelSettings `yaml:"channels"`
}

// MonitorSettings tunes the enforcement monitor.
type MonitorSettings struct {
	// CooldownMillis is the debounce window between repeat redirects for the
	// same blocked app.
	CooldownMillis int `yaml:"cooldownMillis"`
	// HostAppIDs are this app's own package/bundle identifiers per platform;
	// they are never blocked.
	HostAppIDs []string `yaml:"hostAppIds"`
}

// TimerSettings tunes the session timer.
type TimerSettings struct {
	// TickIntervalMillis is the cadence of the elapsed-time recomputation
	// loop. Must stay under 100ms for smooth display.
	TickIntervalMillis int `yaml:"tickIntervalMillis"`
}

// ChannelSettings names the Redis channels shared with device agents.
type ChannelSettings struct {
	ForegroundEvents string `yaml:"foregroundEvents"`
}

// Default returns the settings used when no file is present.
func Default() *Settings {
	return &Settings{
		Monitor: MonitorSettings{
			CooldownMillis: 1000,
			HostAppIDs: []string{
				"app.unhooked.android",
				"app.unhooked.ios",
			},
		},
		Timer: TimerSettings{
			TickIntervalMillis: 50,
		},
		Channels: ChannelSettings{
			ForegroundEvents: "craving_intervention:foreground_events",
		},
	}
}

// Load reads settings from a YAML file, falling back to defaults for any
// field the file leaves unset.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Validate checks the tunables for values the state machine cannot run with.
func (s *Settings) Validate() error {
	if s.Monitor.CooldownMillis <= 0 {
		return fmt.Errorf("monitor.cooldownMillis must be positive, got %d", s.Monitor.CooldownMillis)
	}

	if s.Timer.TickIntervalMillis <= 0 || s.Timer.TickIntervalMillis > 100 {
		return fmt.Errorf("timer.tickIntervalMillis must be in (0, 100], got %d", s.Timer.TickIntervalMillis)
	}

	if s.Channels.ForegroundEvents == "" {
		return fmt.Errorf("channels.foregroundEvents must not be empty")
	}

	return nil
}

// Cooldown returns the monitor debounce window as a duration.
func (s *Settings) Cooldown() time.Duration {
	return time.Duration(s.Monitor.CooldownMillis) * time.Millisecond
}

// TickInterval returns the timer loop cadence as a duration.
func (s *Settings) TickInterval() time.Duration {
	return time.Duration(s.Timer.TickIntervalMillis) * time.Millisecond
}
