// Package server exposes the catalog dispatcher over the Model Context
// Protocol.
//
// The Server owns the protocol surface and the transport lifecycle. At
// construction it registers one MCP tool per catalog operation plus the
// datagov://resource/{url} resource template; the handlers are thin
// closures over the dispatcher, so all request semantics live in the
// catalog package.
//
// Start launches exactly one transport, chosen by configuration: stdio
// for subprocess use by MCP clients, or SSE / streamable HTTP listening
// on host:port. The transport runs on its own goroutine and reports
// termination through Done, which lets the application exit when a
// stdio client hangs up. Stop drains HTTP transports within a bounded
// window; the stdio transport stops with its context.
package server
