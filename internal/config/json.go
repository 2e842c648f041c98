package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the layout of the JSON configuration file. Unknown
// keys are rejected so that typos do not silently fall back to defaults.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      int      `json:"rate_limit"`
	} `json:"server,omitempty"`

	Workers struct {
		HealthCheckInterval Duration `json:"health_check_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var file StructuredJSONConfig
	if err = dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("error decoding json configs from %s: %w", path, err)
	}

	return file.toStructured(), nil
}

// toStructured never carries a JSON path, a file cannot point at another file.
func (c *StructuredJSONConfig) toStructured() *StructuredConfig {
	var cfg StructuredConfig

	cfg.App.Version = c.App.Version
	cfg.App.LogLevel = c.App.LogLevel

	cfg.Storage.DB.DSN = c.Storage.DB.DSN
	cfg.Storage.Redis.Address = c.Storage.Redis.Address
	cfg.Storage.Redis.Password = c.Storage.Redis.Password
	cfg.Storage.Redis.DB = c.Storage.Redis.DB

	cfg.Server.HTTPAddress = c.Server.HTTPAddress
	cfg.Server.GRPCAddress = c.Server.GRPCAddress
	cfg.Server.RequestTimeout = time.Duration(c.Server.RequestTimeout)
	cfg.Server.RateLimit = c.Server.RateLimit

	cfg.Workers.HealthCheckInterval = time.Duration(c.Workers.HealthCheckInterval)

	return &cfg
}

// Duration accepts either a Go duration string ("1m30s") or a number of
// nanoseconds. It always marshals to the string form.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
