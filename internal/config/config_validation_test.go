package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid postgres",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "valid sqlite",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Driver = DriverSQLite
				cfg.Storage.DB.DSN = "file::memory:"
			},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "hash cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 3 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "hash cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_validate(t *testing.T) {
	assert.NoError(t, (&ClientConfig{HTTPAddress: "localhost:8080", RequestTimeout: time.Second}).validate())
	assert.ErrorIs(t, (&ClientConfig{RequestTimeout: time.Second}).validate(), ErrInvalidAdapterConfigs)
	assert.ErrorIs(t, (&ClientConfig{HTTPAddress: "localhost:8080"}).validate(), ErrInvalidAdapterConfigs)
}
