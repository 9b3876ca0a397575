package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"

	"github.com/goliatone/go-bookform/pkg/booking"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EmailCheck.Delay != booking.DefaultEmailDelay {
		t.Fatalf("unexpected delay %v", cfg.EmailCheck.Delay)
	}
	if diff := cmp.Diff(booking.DefaultDestinations(), cfg.Destinations); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(booking.DefaultRates(), cfg.RateTable()); diff != "" {
		t.Fatalf("rates mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output != OutputPretty || cfg.Log.Level != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookform.yaml")
	content := []byte(`
email_check:
  delay: 250ms
  registered: [taken@example.com]
destinations: [Lisboa, Porto]
rates:
  - class: Economy
    rate: 80
output: YAML
messages:
  - kind: minLength
    text: "Mínimo %s caracteres"
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOKFORM_LOG_LEVEL", "debug")

	v := New()
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("read file: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.EmailCheck.Delay != 250*time.Millisecond {
		t.Fatalf("unexpected delay %v", cfg.EmailCheck.Delay)
	}
	if diff := cmp.Diff([]string{"taken@example.com"}, cfg.EmailCheck.Registered); diff != "" {
		t.Fatalf("registered mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Lisboa", "Porto"}, cfg.Destinations); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]float64{"Economy": 80}, cfg.RateTable()); diff != "" {
		t.Fatalf("rates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"minLength": "Mínimo %s caracteres"}, cfg.MessageOverrides()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if cfg.Output != OutputYAML || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected output/log %q %q", cfg.Output, cfg.Log.Level)
	}
	if got := len(cfg.BookingOptions()); got != 4 {
		t.Fatalf("expected 4 booking options, got %d", got)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	tests := map[string]func(v *viper.Viper){
		"output":   func(v *viper.Viper) { v.Set("output", "xml") },
		"delay":    func(v *viper.Viper) { v.Set("email_check.delay", "-1s") },
		"rate":     func(v *viper.Viper) { v.Set("rates", []map[string]any{{"class": "First", "rate": -1}}) },
		"class":    func(v *viper.Viper) { v.Set("rates", []map[string]any{{"rate": 10}}) },
		"loglevel": func(v *viper.Viper) { v.Set("log.level", "loud") },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			v := New()
			mutate(v)
			if _, err := Load(v); !errors.Is(err, errInvalid) {
				t.Fatalf("expected invalid config error, got %v", err)
			}
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	if err := ReadFile(New(), filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if err := ReadFile(New(), ""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
}
