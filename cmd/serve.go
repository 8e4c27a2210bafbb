package cmd

import (
	"context"
	"fmt"

	"github.com/melaodoidao/datagov-mcp-server/internal/app"
	"github.com/melaodoidao/datagov-mcp-server/internal/ckan"
	"github.com/melaodoidao/datagov-mcp-server/internal/config"

	"github.com/spf13/cobra"
)

// serveTransport selects the MCP transport. Empty means the configured
// (or default) transport.
var serveTransport string

// serveHost and servePort override where HTTP transports bind.
var (
	serveHost string
	servePort int
)

// serveBaseURL points the server at a different CKAN catalog, e.g. a
// mirror or a demo instance.
var serveBaseURL string

// serveConfigPath specifies a custom configuration directory path.
// When set, config.yaml is read from this directory instead of
// ~/.config/datagov-mcp-server.
var serveConfigPath string

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveSilent suppresses all log output.
var serveSilent bool

// serveCmd defines the serve command structure. This is the main
// command: it starts the MCP server on the configured transport and
// serves catalog queries until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts the data.gov MCP server and serves catalog queries until the
process is interrupted or the client disconnects.

Transports:
  stdio            Speak MCP over stdin/stdout (default). This is the mode
                   AI assistants such as Claude Desktop or Cursor use when
                   they launch the server as a subprocess. Logs go to stderr.
  sse              Serve the HTTP+SSE transport on --host:--port.
  streamable-http  Serve the streamable HTTP transport on --host:--port.

Configuration:
  Settings are read from config.yaml in ~/.config/datagov-mcp-server
  (or the directory given via --config-path). A missing file means
  defaults. Flags override the file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg := &app.Config{
		Transport:  serveTransport,
		Host:       serveHost,
		Port:       servePort,
		BaseURL:    serveBaseURL,
		ConfigPath: serveConfigPath,
		Debug:      serveDebug,
		Silent:     serveSilent,
		Version:    rootCmd.Version,
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", "",
		fmt.Sprintf("MCP transport: stdio, sse or streamable-http (default %q)", config.MCPTransportStdio))
	serveCmd.Flags().StringVar(&serveHost, "host", "",
		fmt.Sprintf("Host to bind HTTP transports to (default %q)", config.DefaultHost))
	serveCmd.Flags().IntVar(&servePort, "port", 0,
		fmt.Sprintf("Port for HTTP transports (default %d)", config.DefaultPort))
	serveCmd.Flags().StringVar(&serveBaseURL, "base-url", "",
		fmt.Sprintf("CKAN API root (default %q)", ckan.DefaultBaseURL))
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory path")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveSilent, "silent", false, "Suppress all log output")
}
