package config

import (
	"fmt"
	"strings"
)

// ValidTransports lists the transports the server can serve on.
func ValidTransports() []string {
	return []string{MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP}
}

// ValidateTransport rejects anything but stdio, sse and streamable-http.
func ValidateTransport(transport string) error {
	switch transport {
	case MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP:
		return nil
	}
	return fmt.Errorf("unsupported transport %q (valid: %s)", transport, strings.Join(ValidTransports(), ", "))
}

// Validate checks the configuration for values the server cannot start
// with. The port is only checked for HTTP transports; stdio never binds
// a socket.
func (c Config) Validate() error {
	if err := ValidateTransport(c.Server.Transport); err != nil {
		return err
	}
	if c.Server.Transport != MCPTransportStdio {
		if c.Server.Port < 1 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid port %d (must be between 1 and 65535)", c.Server.Port)
		}
		if c.Server.Host == "" {
			return fmt.Errorf("host must not be empty for the %s transport", c.Server.Transport)
		}
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog baseURL must not be empty")
	}
	return nil
}
