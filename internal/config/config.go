package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreInflux = "influx"
)

type InfluxConfig struct {
	URL         string
	Token       string
	Org         string
	Bucket      string
	Measurement string
}

type Config struct {
	Port       string
	EventStore string
	EventsCSV  string
	Lookback   time.Duration
	Influx     InfluxConfig
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads envFile (a missing file is only logged) and then the process
// environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("Error loading %s file", envFile)
		}
	}

	lookback, err := time.ParseDuration(getenv("ANALYSIS_LOOKBACK", "24h"))
	if err != nil {
		return nil, fmt.Errorf("ANALYSIS_LOOKBACK: %w", err)
	}
	if lookback < 0 {
		return nil, fmt.Errorf("ANALYSIS_LOOKBACK must be >= 0")
	}

	cfg := &Config{
		Port:       getenv("PORT", "8080"),
		EventStore: getenv("EVENT_STORE", StoreMemory),
		EventsCSV:  os.Getenv("EVENTS_CSV"),
		Lookback:   lookback,
		Influx: InfluxConfig{
			URL:         os.Getenv("INFLUX_URL"),
			Token:       os.Getenv("INFLUX_TOKEN"),
			Org:         os.Getenv("INFLUX_ORG"),
			Bucket:      os.Getenv("INFLUX_BUCKET"),
			Measurement: getenv("INFLUX_MEASUREMENT", "device_events"),
		},
	}

	switch cfg.EventStore {
	case StoreMemory:
	case StoreInflux:
		if cfg.Influx.URL == "" || cfg.Influx.Org == "" || cfg.Influx.Bucket == "" {
			return nil, fmt.Errorf("INFLUX_URL, INFLUX_ORG and INFLUX_BUCKET are required for the influx store")
		}
	default:
		return nil, fmt.Errorf("unknown EVENT_STORE %q", cfg.EventStore)
	}
	return cfg, nil
}
