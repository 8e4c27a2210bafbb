package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the supported output formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatTable formats output as a human-readable table.
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON formats output as JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML formats output as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates an --output flag value.
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return OutputFormat(format), nil
	}
	return "", fmt.Errorf("unsupported output format %q (valid: table, json, yaml)", format)
}

// FormatJSON renders data as two-space indented JSON.
func FormatJSON(data interface{}) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format as JSON: %w", err)
	}
	return string(jsonData), nil
}

// FormatYAML renders data as YAML.
func FormatYAML(data interface{}) (string, error) {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to format as YAML: %w", err)
	}
	return string(yamlData), nil
}
