package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransport(t *testing.T) {
	for _, transport := range ValidTransports() {
		assert.NoError(t, ValidateTransport(transport))
	}

	err := ValidateTransport("websocket")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "websocket")
	assert.Contains(t, err.Error(), "stdio, sse, streamable-http")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name: "bad transport",
			mutate: func(c *Config) {
				c.Server.Transport = "carrier-pigeon"
			},
			wantErr: "unsupported transport",
		},
		{
			name: "http transport needs a valid port",
			mutate: func(c *Config) {
				c.Server.Transport = MCPTransportStreamableHTTP
				c.Server.Port = 0
			},
			wantErr: "invalid port",
		},
		{
			name: "http transport needs a host",
			mutate: func(c *Config) {
				c.Server.Transport = MCPTransportSSE
				c.Server.Host = ""
			},
			wantErr: "host must not be empty",
		},
		{
			name: "stdio ignores the port",
			mutate: func(c *Config) {
				c.Server.Port = 0
			},
		},
		{
			name: "empty base URL",
			mutate: func(c *Config) {
				c.Catalog.BaseURL = ""
			},
			wantErr: "baseURL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
