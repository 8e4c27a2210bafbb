// Package config provides configuration management for datagov-mcp-server.
//
// Configuration is loaded from a single directory containing a
// config.yaml file. The default directory is ~/.config/datagov-mcp-server;
// the serve command's --config-path flag points at an alternative one.
// A missing config.yaml is not an error: the built-in defaults (stdio
// transport, public data.gov catalog) apply, and any file that does
// exist overrides them field by field.
//
// # Configuration Structure
//
// The configuration file uses YAML format:
//
//	server:
//	  transport: "stdio"       # stdio, sse or streamable-http (default: stdio)
//	  host: "localhost"        # Bind host for HTTP transports (default: localhost)
//	  port: 8866               # Bind port for HTTP transports (default: 8866)
//	catalog:
//	  baseURL: "https://catalog.data.gov/api/3"  # CKAN API root
//
// # Usage
//
//	cfg, err := config.LoadConfig(config.GetDefaultConfigPathOrPanic())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
