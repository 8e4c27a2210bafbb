package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunToolsJSON(t *testing.T) {
	originalOutput := toolsOutput
	defer func() { toolsOutput = originalOutput }()
	toolsOutput = "json"

	var buf bytes.Buffer
	toolsCmd.SetOut(&buf)
	defer toolsCmd.SetOut(nil)

	require.NoError(t, runTools(toolsCmd, nil))

	var ops []struct {
		Name      string `json:"name"`
		Arguments []struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Required bool   `json:"required"`
		} `json:"arguments"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ops))
	require.Len(t, ops, 4)
	assert.Equal(t, "search-packages", ops[0].Name)

	var hasRequiredID bool
	for _, op := range ops {
		if op.Name != "show-package" {
			continue
		}
		for _, arg := range op.Arguments {
			if arg.Name == "id" && arg.Required {
				hasRequiredID = true
			}
		}
	}
	assert.True(t, hasRequiredID, "show-package must require id")
}

func TestRunToolsTable(t *testing.T) {
	originalOutput := toolsOutput
	defer func() { toolsOutput = originalOutput }()
	toolsOutput = "table"

	var buf bytes.Buffer
	toolsCmd.SetOut(&buf)
	defer toolsCmd.SetOut(nil)

	require.NoError(t, runTools(toolsCmd, nil))

	out := buf.String()
	for _, name := range []string{"search-packages", "show-package", "list-groups", "list-tags"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "id:string*", "required arguments are marked with an asterisk")
}

func TestRunToolsYAML(t *testing.T) {
	originalOutput := toolsOutput
	defer func() { toolsOutput = originalOutput }()
	toolsOutput = "yaml"

	var buf bytes.Buffer
	toolsCmd.SetOut(&buf)
	defer toolsCmd.SetOut(nil)

	require.NoError(t, runTools(toolsCmd, nil))
	assert.Contains(t, buf.String(), "name: search-packages")
}

func TestRunToolsInvalidFormat(t *testing.T) {
	originalOutput := toolsOutput
	defer func() { toolsOutput = originalOutput }()
	toolsOutput = "csv"

	err := runTools(toolsCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestFormatArgs(t *testing.T) {
	assert.Equal(t, "-", formatArgs(nil))
}
