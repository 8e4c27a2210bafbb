package catalog

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/melaodoidao/datagov-mcp-server/internal/ckan"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResource(t *testing.T) {
	payload := "station_id,temp\nKNYC,21.4\n"
	var gotPath string
	d, requests := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(payload))
	})

	target := d.client.BaseURL() + "/download/weather.csv"
	uri := "datagov://resource/" + url.PathEscape(target)

	contents, err := d.ReadResource(context.Background(), uri)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, int64(1), requests.Load())
	assert.Equal(t, "/download/weather.csv", gotPath)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok, "expected text resource contents, got %T", contents[0])
	assert.Equal(t, uri, text.URI)
	assert.Equal(t, "text/csv", text.MIMEType)

	encoded, found := strings.CutPrefix(text.Text, "data:text/csv;base64,")
	require.True(t, found, "payload must be a data: URI, got %q", text.Text)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, string(decoded))
}

func TestReadResourceDefaultsContentType(t *testing.T) {
	d, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress sniffing
		w.Write([]byte{0x00, 0x01, 0x02})
	})

	uri := "datagov://resource/" + url.PathEscape(d.client.BaseURL()+"/blob")
	contents, err := d.ReadResource(context.Background(), uri)
	require.NoError(t, err)

	text := contents[0].(mcp.TextResourceContents)
	assert.Equal(t, "application/octet-stream", text.MIMEType)
	assert.True(t, strings.HasPrefix(text.Text, "data:application/octet-stream;base64,"))
}

func TestReadResourcePreservesPlusSigns(t *testing.T) {
	// Percent-decoding only: a literal plus in the target URL must not
	// turn into a space.
	var gotPath string
	d, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("ok"))
	})

	target := d.client.BaseURL() + "/files/report+2024.csv"
	uri := "datagov://resource/" + url.PathEscape(target)

	_, err := d.ReadResource(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, "/files/report+2024.csv", gotPath)
}

func TestReadResourceInvalidURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "wrong scheme", uri: "https://example.com/data.csv"},
		{name: "wrong host segment", uri: "datagov://package/abc"},
		{name: "empty target", uri: "datagov://resource/"},
		{name: "undecodable escape", uri: "datagov://resource/http%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, requests := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("ok"))
			})

			contents, err := d.ReadResource(context.Background(), tt.uri)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidResourceURI)
			assert.Nil(t, contents)
			assert.Zero(t, requests.Load(), "no request may be issued for an invalid URI")
		})
	}
}

func TestReadResourceFetchFailurePropagates(t *testing.T) {
	d, _ := newTestDispatcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	})

	uri := "datagov://resource/" + url.PathEscape(d.client.BaseURL()+"/broken")
	contents, err := d.ReadResource(context.Background(), uri)
	require.Error(t, err, "fetch failures must surface as errors, not results")
	assert.Nil(t, contents)

	var apiErr *ckan.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "500")
}
