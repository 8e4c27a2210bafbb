package config

import (
	"github.com/melaodoidao/datagov-mcp-server/internal/ckan"
)

const (
	// DefaultHost is the bind address for HTTP transports.
	DefaultHost = "localhost"

	// DefaultPort is the port for HTTP transports.
	DefaultPort = 8866
)

// GetDefaultConfig returns the configuration used when no config.yaml
// exists: stdio transport against the public data.gov catalog.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:      DefaultHost,
			Port:      DefaultPort,
			Transport: MCPTransportStdio,
		},
		Catalog: CatalogConfig{
			BaseURL: ckan.DefaultBaseURL,
		},
	}
}
