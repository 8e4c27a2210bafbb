package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/melaodoidao/datagov-mcp-server/internal/catalog"
	"github.com/melaodoidao/datagov-mcp-server/internal/ckan"
	"github.com/melaodoidao/datagov-mcp-server/internal/config"
	"github.com/melaodoidao/datagov-mcp-server/internal/server"
	"github.com/melaodoidao/datagov-mcp-server/pkg/logging"
)

// Application wires the CKAN client, the dispatcher and the MCP server
// together and runs them until the process is told to stop.
type Application struct {
	config *Config
	server *server.Server
}

// NewApplication performs the bootstrap sequence: initialize logging,
// load configuration, apply flag overrides, validate the result and
// construct the server. It returns an error when the configuration
// cannot be loaded or does not validate; the transport is not started
// yet.
func NewApplication(cfg *Config) (*Application, error) {
	// Route logs to stderr until the effective transport is known;
	// stdout may turn out to carry protocol frames.
	initLogging(cfg, config.MCPTransportStdio)

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from %s", configPath)
		return nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}

	resolved := resolve(fileCfg, cfg)
	if err := resolved.Validate(); err != nil {
		logging.Error("Bootstrap", err, "Invalid configuration")
		return nil, err
	}

	initLogging(cfg, resolved.Server.Transport)

	client := ckan.NewClient(resolved.Catalog.BaseURL)
	dispatcher := catalog.NewDispatcher(client)
	srv := server.New(resolved.Server, dispatcher, cfg.Version)

	logging.Info("Bootstrap", "Catalog API root: %s", client.BaseURL())

	return &Application{
		config: cfg,
		server: srv,
	}, nil
}

// resolve merges flag overrides over the loaded file configuration.
// Flags win; unset flags leave the file values (or defaults) alone.
func resolve(fileCfg config.Config, cfg *Config) config.Config {
	if cfg.Transport != "" {
		fileCfg.Server.Transport = cfg.Transport
	}
	if cfg.Host != "" {
		fileCfg.Server.Host = cfg.Host
	}
	if cfg.Port != 0 {
		fileCfg.Server.Port = cfg.Port
	}
	if cfg.BaseURL != "" {
		fileCfg.Catalog.BaseURL = cfg.BaseURL
	}
	return fileCfg
}

// initLogging configures the global logger for the given transport.
// Stdio reserves stdout for protocol frames, so logs go to stderr.
func initLogging(cfg *Config, transport string) {
	level := logging.LevelInfo
	if cfg.Debug {
		level = logging.LevelDebug
	}

	var output io.Writer
	switch {
	case cfg.Silent:
		output = io.Discard
	case transport == config.MCPTransportStdio:
		output = os.Stderr
	default:
		output = os.Stdout
	}
	logging.Init(level, output)
}

// Run starts the transport and blocks until an interrupt arrives, the
// context is cancelled, or the transport terminates on its own (stdio
// EOF, listener failure). It always performs a shutdown before
// returning; the returned error is the transport failure, if any.
func (a *Application) Run(ctx context.Context) error {
	if err := a.server.Start(ctx); err != nil {
		return err
	}

	logging.Info("Bootstrap", "datagov-mcp-server ready (%s)", a.server.Endpoint())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case sig := <-sigChan:
		logging.Info("Bootstrap", "Received %s, shutting down", sig)
	case err := <-a.server.Done():
		runErr = err
		if err != nil {
			logging.Error("Bootstrap", err, "Transport terminated")
		} else {
			logging.Info("Bootstrap", "Transport closed, shutting down")
		}
	case <-ctx.Done():
		logging.Info("Bootstrap", "Context cancelled, shutting down")
	}

	if err := a.server.Stop(context.Background()); err != nil {
		logging.Error("Bootstrap", err, "Shutdown error")
	}

	return runErr
}
