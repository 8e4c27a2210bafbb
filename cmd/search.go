package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/melaodoidao/datagov-mcp-server/internal/ckan"
	"github.com/melaodoidao/datagov-mcp-server/internal/cli"
	pkgstrings "github.com/melaodoidao/datagov-mcp-server/pkg/strings"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Flags for the search command.
var (
	searchRows    int
	searchStart   int
	searchSort    string
	searchBaseURL string
	searchOutput  string
)

// organizationMaxLen keeps the organization column narrow enough for
// the title to stay readable.
const organizationMaxLen = 30

// searchResponse mirrors the slice of the CKAN package_search response
// the table output needs. Raw output formats print the payload
// verbatim, so nothing else is decoded.
type searchResponse struct {
	Result struct {
		Count   int `json:"count"`
		Results []struct {
			Title        string `json:"title"`
			Name         string `json:"name"`
			Organization struct {
				Title string `json:"title"`
			} `json:"organization"`
			MetadataModified string `json:"metadata_modified"`
		} `json:"results"`
	} `json:"result"`
}

// searchCmd queries the catalog from the terminal, using the same CKAN
// client the MCP server uses.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search datasets on data.gov",
	Long: `Runs a package_search against the catalog and prints the matching
datasets. Without a query, the newest datasets are listed.

The command talks to the same API the MCP server exposes to AI
assistants, so its results match what an assistant would see.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

// runSearch performs the search and renders the result.
func runSearch(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(searchOutput)
	if err != nil {
		return err
	}

	params := url.Values{}
	if len(args) > 0 {
		params.Set("q", args[0])
	}
	params.Set("rows", strconv.Itoa(searchRows))
	if searchStart > 0 {
		params.Set("start", strconv.Itoa(searchStart))
	}
	if searchSort != "" {
		params.Set("sort", searchSort)
	}

	client := ckan.NewClient(searchBaseURL)

	// The spinner only makes sense for interactive table output; raw
	// formats are typically piped.
	var spin *spinner.Spinner
	if format == cli.OutputFormatTable {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = fmt.Sprintf(" Searching %s...", client.BaseURL())
		spin.Start()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	body, err := client.Action(ctx, "package_search", params)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), text.FgRed.Sprint("Search failed"))
		return err
	}

	switch format {
	case cli.OutputFormatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			// Not JSON; print what the server sent.
			fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), buf.String())
		return nil

	case cli.OutputFormatYAML:
		var payload interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			return fmt.Errorf("unexpected response from %s: %w", client.BaseURL(), err)
		}
		out, err := cli.FormatYAML(payload)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("unexpected response from %s: %w", client.BaseURL(), err)
	}

	if len(payload.Result.Results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), text.FgYellow.Sprint("No datasets found"))
		return nil
	}

	t := cli.NewTable(cmd.OutOrStdout())
	t.AppendHeader(cli.Header("TITLE", "NAME", "ORGANIZATION", "MODIFIED"))
	for _, dataset := range payload.Result.Results {
		t.AppendRow([]interface{}{
			pkgstrings.Truncate(dataset.Title, pkgstrings.DefaultDescriptionMaxLen),
			dataset.Name,
			pkgstrings.Truncate(dataset.Organization.Title, organizationMaxLen),
			modifiedDate(dataset.MetadataModified),
		})
	}
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d datasets\n", len(payload.Result.Results), payload.Result.Count)
	return nil
}

// modifiedDate trims a CKAN timestamp like 2024-03-01T12:34:56.789012
// down to its date part.
func modifiedDate(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchRows, "rows", 10, "Maximum number of datasets to return")
	searchCmd.Flags().IntVar(&searchStart, "start", 0, "Offset of the first result")
	searchCmd.Flags().StringVar(&searchSort, "sort", "", "Sort order, e.g. 'metadata_modified desc'")
	searchCmd.Flags().StringVar(&searchBaseURL, "base-url", "",
		fmt.Sprintf("CKAN API root (default %q)", ckan.DefaultBaseURL))
	searchCmd.Flags().StringVarP(&searchOutput, "output", "o", "table", "Output format (table, json, yaml)")
}
