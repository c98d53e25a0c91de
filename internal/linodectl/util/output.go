// Package util provides shared utilities for the CLI
package util

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// PrintJSON writes a JSON representation of v to w with proper indentation
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintYAML writes a YAML representation of v to w
func PrintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// Print writes v to w in the requested format: "json", "yaml", or ""
// for the caller's default tabular output (in which case it reports
// false so the caller knows to render the table itself).
func Print(w io.Writer, format string, v interface{}) (bool, error) {
	switch format {
	case "json":
		return true, PrintJSON(w, v)
	case "yaml":
		return true, PrintYAML(w, v)
	case "", "table":
		return false, nil
	default:
		return false, fmt.Errorf("unknown output format %q", format)
	}
}

// NewTabWriter creates a new tabwriter configured for CLI output
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
