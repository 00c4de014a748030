package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "EVENT_STORE", "EVENTS_CSV", "ANALYSIS_LOOKBACK", "INFLUX_MEASUREMENT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.EventStore != StoreMemory || cfg.Lookback != 24*time.Hour {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Influx.Measurement != "device_events" {
		t.Fatalf("expected default measurement, got %q", cfg.Influx.Measurement)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ANALYSIS_LOOKBACK", "")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=9090\nANALYSIS_LOOKBACK=90m\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	// godotenv does not override variables that are already set, even empty ones
	os.Unsetenv("PORT")
	os.Unsetenv("ANALYSIS_LOOKBACK")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Lookback != 90*time.Minute {
		t.Fatalf("expected values from env file, got %+v", cfg)
	}
}

func TestLoad_InvalidLookback(t *testing.T) {
	t.Setenv("ANALYSIS_LOOKBACK", "soon")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for invalid lookback")
	}
}

func TestLoad_InfluxRequiresConnection(t *testing.T) {
	t.Setenv("ANALYSIS_LOOKBACK", "")
	t.Setenv("EVENT_STORE", StoreInflux)
	t.Setenv("INFLUX_URL", "")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for incomplete influx config")
	}
}

func TestLoad_UnknownStore(t *testing.T) {
	t.Setenv("ANALYSIS_LOOKBACK", "")
	t.Setenv("EVENT_STORE", "cassandra")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for unknown store")
	}
}
