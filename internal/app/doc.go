// Package app bootstraps and runs datagov-mcp-server.
//
// The Application follows a two-phase pattern:
//  1. Bootstrap phase (NewApplication): initialize logging, load the
//     configuration file, apply flag overrides, validate the result and
//     wire the CKAN client, the dispatcher and the MCP server together.
//  2. Execution phase (Run): start the configured transport and block
//     until an interrupt arrives or the transport terminates on its
//     own, then shut down gracefully.
//
// Log routing is transport-aware: when serving stdio, stdout carries
// protocol frames, so logs go to stderr. HTTP transports log to stdout
// and --silent discards logs entirely.
package app
