package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/melaodoidao/datagov-mcp-server/internal/ckan"
	"github.com/melaodoidao/datagov-mcp-server/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// Sentinel errors for requests rejected before any network activity.
// The protocol layer maps them to request-level faults.
var (
	// ErrUnknownOperation rejects operation names outside the catalog.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidArguments rejects argument bags that do not match the
	// operation's schema.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidResourceURI rejects resource URIs that do not match
	// datagov://resource/{url} or whose target cannot be decoded.
	ErrInvalidResourceURI = errors.New("invalid resource URI")
)

// Dispatcher routes named operations and resource reads to a CKAN
// client and renders the outcomes as MCP results. It holds no state
// beyond the client, so one Dispatcher serves concurrent requests.
type Dispatcher struct {
	client *ckan.Client
}

// NewDispatcher creates a dispatcher backed by the given client.
func NewDispatcher(client *ckan.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

// Invoke executes the named operation with the given argument bag.
//
// An unknown name or a schema violation returns a plain error wrapping
// the matching sentinel, before any request is made. Once a request has
// been issued, failures are folded into the returned result: a single
// text block describing what went wrong, with the error flag set. A
// non-nil error therefore always means the caller's request itself was
// invalid, never that the upstream call failed.
//
// On success the result carries the CKAN response re-indented with two
// spaces, key order and values untouched. Bodies that are not valid
// JSON pass through verbatim.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	op, ok := Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}

	params, err := validateArguments(op, args)
	if err != nil {
		return nil, err
	}

	logging.Debug("Catalog", "Invoking %s (CKAN action %s)", op.Name, op.Action)

	body, err := d.client.Action(ctx, op.Action, params)
	if err != nil {
		return errorResult(op.Name, err), nil
	}

	return mcp.NewToolResultText(prettyJSON(body)), nil
}

// errorResult folds an upstream failure into a normal tool result with
// the error flag set.
func errorResult(name string, err error) *mcp.CallToolResult {
	var apiErr *ckan.APIError
	if errors.As(err, &apiErr) {
		logging.Warn("Catalog", "%s: %v", name, apiErr)
		return mcp.NewToolResultError(fmt.Sprintf("Data.gov API error: %v", apiErr))
	}
	logging.Error("Catalog", err, "%s failed unexpectedly", name)
	return mcp.NewToolResultError(fmt.Sprintf("Error invoking %s: %v", name, err))
}

// prettyJSON re-indents a JSON document with two-space indentation,
// preserving key order. Invalid JSON passes through unchanged.
func prettyJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
