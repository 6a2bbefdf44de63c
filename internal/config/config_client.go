package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view used by cmd/client. It is
// assembled from defaults, environment variables and the optional JSON
// file; command-line flags belong to the client's sub-commands.
type ClientConfig struct {
	// HTTPAddress is the base address of the API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}

	return clientCfg, clientCfg.validate()
}
