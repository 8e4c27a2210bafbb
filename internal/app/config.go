package app

// Config carries the serve command's settings into the bootstrap. Zero
// values mean "not set": the value from config.yaml, or its default,
// applies.
type Config struct {
	// Transport overrides the configured MCP transport
	// (stdio, sse or streamable-http).
	Transport string

	// Host overrides the bind host for HTTP transports.
	Host string

	// Port overrides the bind port for HTTP transports.
	Port int

	// BaseURL overrides the CKAN API root.
	BaseURL string

	// ConfigPath points at an alternative configuration directory.
	// Empty means ~/.config/datagov-mcp-server.
	ConfigPath string

	// Debug enables debug-level logging.
	Debug bool

	// Silent discards all log output.
	Silent bool

	// Version is reported to MCP clients during the initialize
	// handshake.
	Version string
}
