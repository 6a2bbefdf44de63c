package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashCost int    `json:"password_hash_cost"`
		Version          string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

// parseJSON reads the config file at path. Unknown keys are rejected so a
// misspelt option fails at startup instead of being silently ignored.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var jsonCfg StructuredJSONConfig
	if err := dec.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs in %s: %w", path, err)
	}

	return jsonCfg.structured(), nil
}

func (j *StructuredJSONConfig) structured() *StructuredConfig {
	cfg := new(StructuredConfig)

	cfg.App.PasswordHashCost = j.App.PasswordHashCost
	cfg.App.Version = j.App.Version

	cfg.Storage.DB = DB{
		Driver:       j.Storage.DB.Driver,
		DSN:          j.Storage.DB.DSN,
		MaxOpenConns: j.Storage.DB.MaxOpenConns,
		MaxIdleConns: j.Storage.DB.MaxIdleConns,
	}

	cfg.Server.HTTPAddress = j.Server.HTTPAddress
	cfg.Server.GRPCAddress = j.Server.GRPCAddress
	cfg.Server.RequestTimeout = time.Duration(j.Server.RequestTimeout)
	cfg.Server.ShutdownTimeout = time.Duration(j.Server.ShutdownTimeout)

	cfg.Adapter.HTTPAddress = j.Adapter.HTTPAddress
	cfg.Adapter.RequestTimeout = time.Duration(j.Adapter.RequestTimeout)

	return cfg
}

// Duration accepts either a Go duration string ("1m30s") or an integer
// count of nanoseconds. Negative values are rejected.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var parsed time.Duration

	var text string
	if err := json.Unmarshal(b, &text); err == nil {
		if parsed, err = time.ParseDuration(text); err != nil {
			return err
		}
	} else {
		var nanos int64
		if err := json.Unmarshal(b, &nanos); err != nil {
			return fmt.Errorf("invalid duration %s", b)
		}
		parsed = time.Duration(nanos)
	}

	if parsed < 0 {
		return fmt.Errorf("negative duration %s", b)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
