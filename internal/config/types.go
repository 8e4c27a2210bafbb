package config

// Config is the top-level configuration structure for datagov-mcp-server.
type Config struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
}

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Host      string `yaml:"host,omitempty"`      // Host to bind HTTP transports to (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Port for HTTP transports (default: 8866)
	Transport string `yaml:"transport,omitempty"` // Transport to serve on (default: stdio)
}

// CatalogConfig points the server at a CKAN catalog.
type CatalogConfig struct {
	BaseURL string `yaml:"baseURL,omitempty"` // CKAN API root (default: https://catalog.data.gov/api/3)
}
