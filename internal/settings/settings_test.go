package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intervention.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeSettings(t, `
monitor:
  cooldownMillis: 2500
  hostAppIds:
    - app.test.android
timer:
  tickIntervalMillis: 25
channels:
  foregroundEvents: test:events
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Monitor.CooldownMillis != 2500 {
		t.Errorf("CooldownMillis = %d, expected 2500", s.Monitor.CooldownMillis)
	}
	if len(s.Monitor.HostAppIDs) != 1 || s.Monitor.HostAppIDs[0] != "app.test.android" {
		t.Errorf("HostAppIDs = %v, expected [app.test.android]", s.Monitor.HostAppIDs)
	}
	if s.Timer.TickIntervalMillis != 25 {
		t.Errorf("TickIntervalMillis = %d, expected 25", s.Timer.TickIntervalMillis)
	}
	if s.Channels.ForegroundEvents != "test:events" {
		t.Errorf("ForegroundEvents = %q, expected test:events", s.Channels.ForegroundEvents)
	}

	if s.Cooldown() != 2500*time.Millisecond {
		t.Errorf("Cooldown() = %v, expected 2.5s", s.Cooldown())
	}
	if s.TickInterval() != 25*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 25ms", s.TickInterval())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, `
monitor:
  cooldownMillis: 500
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Monitor.CooldownMillis != 500 {
		t.Errorf("CooldownMillis = %d, expected 500", s.Monitor.CooldownMillis)
	}

	def := Default()
	if s.Timer.TickIntervalMillis != def.Timer.TickIntervalMillis {
		t.Errorf("TickIntervalMillis = %d, expected default %d", s.Timer.TickIntervalMillis, def.Timer.TickIntervalMillis)
	}
	if len(s.Monitor.HostAppIDs) != len(def.Monitor.HostAppIDs) {
		t.Errorf("HostAppIDs = %v, expected defaults %v", s.Monitor.HostAppIDs, def.Monitor.HostAppIDs)
	}
	if s.Channels.ForegroundEvents != def.Channels.ForegroundEvents {
		t.Errorf("ForegroundEvents = %q, expected default %q", s.Channels.ForegroundEvents, def.Channels.ForegroundEvents)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected os.ErrNotExist", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults are valid", func(s *Settings) {}, false},
		{"zero cooldown", func(s *Settings) { s.Monitor.CooldownMillis = 0 }, true},
		{"negative cooldown", func(s *Settings) { s.Monitor.CooldownMillis = -5 }, true},
		{"zero tick interval", func(s *Settings) { s.Timer.TickIntervalMillis = 0 }, true},
		{"tick interval too coarse", func(s *Settings) { s.Timer.TickIntervalMillis = 200 }, true},
		{"tick interval at bound", func(s *Settings) { s.Timer.TickIntervalMillis = 100 }, false},
		{"empty events channel", func(s *Settings) { s.Channels.ForegroundEvents = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
