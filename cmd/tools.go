package cmd

import (
	"fmt"
	"strings"

	"github.com/melaodoidao/datagov-mcp-server/internal/catalog"
	"github.com/melaodoidao/datagov-mcp-server/internal/cli"
	pkgstrings "github.com/melaodoidao/datagov-mcp-server/pkg/strings"

	"github.com/spf13/cobra"
)

// toolsOutput selects the rendering of the operation catalog.
var toolsOutput string

// toolsCmd prints the static operation catalog: every tool the MCP
// server advertises, with its argument schema. The command is purely
// local and never talks to data.gov.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	Long: `Prints the catalog of MCP tools the server advertises to clients,
including each tool's argument schema. Required arguments are marked
with an asterisk in table output.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

// runTools renders the operation catalog in the requested format.
func runTools(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(toolsOutput)
	if err != nil {
		return err
	}

	ops := catalog.Operations()

	switch format {
	case cli.OutputFormatJSON:
		out, err := cli.FormatJSON(ops)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)

	case cli.OutputFormatYAML:
		out, err := cli.FormatYAML(ops)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

	default:
		t := cli.NewTable(cmd.OutOrStdout())
		t.AppendHeader(cli.Header("NAME", "DESCRIPTION", "ARGUMENTS"))
		for _, op := range ops {
			t.AppendRow([]interface{}{
				op.Name,
				pkgstrings.Truncate(op.Description, pkgstrings.DefaultDescriptionMaxLen),
				formatArgs(op.Args),
			})
		}
		t.Render()
	}
	return nil
}

// formatArgs renders an argument list as name:type pairs, an asterisk
// marking required arguments.
func formatArgs(args []catalog.ArgSpec) string {
	if len(args) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		part := fmt.Sprintf("%s:%s", arg.Name, arg.Type)
		if arg.Required {
			part += "*"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.Flags().StringVarP(&toolsOutput, "output", "o", "table", "Output format (table, json, yaml)")
}
