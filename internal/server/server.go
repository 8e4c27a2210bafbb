package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/melaodoidao/datagov-mcp-server/internal/catalog"
	"github.com/melaodoidao/datagov-mcp-server/internal/config"
	"github.com/melaodoidao/datagov-mcp-server/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// serverName identifies this server in the MCP initialize handshake.
const serverName = "datagov-mcp-server"

// shutdownTimeout bounds how long Stop waits for HTTP transports to
// drain in-flight responses.
const shutdownTimeout = 5 * time.Second

// Server serves the catalog operations over a single MCP transport.
type Server struct {
	cfg        config.ServerConfig
	dispatcher *catalog.Dispatcher
	mcpServer  *mcpserver.MCPServer

	sseServer            *mcpserver.SSEServer
	streamableHTTPServer *mcpserver.StreamableHTTPServer
	stdioServer          *mcpserver.StdioServer

	ctx        context.Context
	cancelFunc context.CancelFunc
	done       chan error
	mu         sync.Mutex
	started    bool
}

// New creates an MCP server backed by the dispatcher. version is
// reported to clients during the initialize handshake.
func New(cfg config.ServerConfig, dispatcher *catalog.Dispatcher, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		done:       make(chan error, 1),
	}

	s.mcpServer = mcpserver.NewMCPServer(
		serverName,
		version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithResourceCapabilities(false, false),
	)
	s.registerCapabilities()

	return s
}

// registerCapabilities declares one tool per catalog operation and the
// resource template for raw downloads. The handlers only adapt request
// types; validation and error mapping live in the dispatcher.
func (s *Server) registerCapabilities() {
	ops := catalog.Operations()
	for _, op := range ops {
		name := op.Name
		s.mcpServer.AddTool(op.Tool(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.dispatcher.Invoke(ctx, name, request.GetArguments())
		})
	}

	template := mcp.NewResourceTemplate(
		catalog.ResourceURITemplate,
		"Data.gov resource",
		mcp.WithTemplateDescription("Content of a catalog resource, fetched from its percent-encoded URL and returned as a data: URI"),
	)
	s.mcpServer.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return s.dispatcher.ReadResource(ctx, request.Params.URI)
	})

	logging.Debug("Server", "Registered %d tools and 1 resource template", len(ops))
}

// Start launches the configured transport. The transport runs on its
// own goroutine; its termination, clean or not, is delivered through
// Done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("server already started")
	}
	s.started = true

	s.ctx, s.cancelFunc = context.WithCancel(ctx)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	switch s.cfg.Transport {
	case config.MCPTransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s:%d", s.cfg.Host, s.cfg.Port)
		s.sseServer = mcpserver.NewSSEServer(
			s.mcpServer,
			mcpserver.WithBaseURL(baseURL),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		go func() {
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "SSE server error")
				s.done <- err
				return
			}
			s.done <- nil
		}()

	case config.MCPTransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		s.stdioServer = mcpserver.NewStdioServer(s.mcpServer)
		stdioServer := s.stdioServer
		listenCtx := s.ctx
		go func() {
			err := stdioServer.Listen(listenCtx, os.Stdin, os.Stdout)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
				logging.Error("Server", err, "Stdio server error")
				s.done <- err
				return
			}
			s.done <- nil
		}()

	case config.MCPTransportStreamableHTTP:
		fallthrough
	default:
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = mcpserver.NewStreamableHTTPServer(s.mcpServer)
		streamableServer := s.streamableHTTPServer
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
				s.done <- err
				return
			}
			s.done <- nil
		}()
	}

	return nil
}

// Done delivers the transport's termination exactly once: nil after a
// clean shutdown or stdio EOF, the failure otherwise.
func (s *Server) Done() <-chan error {
	return s.done
}

// Endpoint reports where clients reach the server for the configured
// transport.
func (s *Server) Endpoint() string {
	switch s.cfg.Transport {
	case config.MCPTransportSSE:
		return fmt.Sprintf("http://%s:%d/sse", s.cfg.Host, s.cfg.Port)
	case config.MCPTransportStdio:
		return "stdio"
	default:
		return fmt.Sprintf("http://%s:%d/mcp", s.cfg.Host, s.cfg.Port)
	}
}

// Stop shuts the transport down. HTTP transports get shutdownTimeout to
// drain in-flight responses; shutdown errors are logged, not returned,
// because the process is exiting either way.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}
	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.mu.Unlock()

	logging.Info("Server", "Stopping MCP server")

	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}

	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}

	// Stdio server stops on context cancellation, no explicit shutdown needed.

	return nil
}
