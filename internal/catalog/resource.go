package catalog

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/melaodoidao/datagov-mcp-server/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

const (
	// ResourceURITemplate is the RFC 6570 template advertised to MCP
	// clients for raw resource downloads. The single variable is the
	// percent-encoded URL of the file to fetch.
	ResourceURITemplate = "datagov://resource/{url}"

	// resourceURIPrefix is what concrete read requests must start with.
	resourceURIPrefix = "datagov://resource/"

	// defaultContentType stands in when the remote response carries no
	// Content-Type header.
	defaultContentType = "application/octet-stream"
)

// ReadResource fetches the URL embedded in a datagov://resource/ URI
// and returns its content as a data: URI, so binary payloads survive
// the text-only content channel.
//
// Unlike Invoke, fetch failures propagate as errors and become
// request-level faults; the resource channel has no in-band error
// representation to fold them into.
func (d *Dispatcher) ReadResource(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	encoded, ok := strings.CutPrefix(uri, resourceURIPrefix)
	if !ok || encoded == "" {
		return nil, fmt.Errorf("%w: %q does not match %s", ErrInvalidResourceURI, uri, ResourceURITemplate)
	}

	target, err := url.PathUnescape(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode target in %q: %v", ErrInvalidResourceURI, uri, err)
	}

	logging.Debug("Catalog", "Reading resource %s", target)

	body, contentType, err := d.client.Fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(body))
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: contentType,
			Text:     dataURI,
		},
	}, nil
}
