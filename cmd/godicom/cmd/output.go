package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"godicom/parser"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to encode json")
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	return errors.Wrap(enc.Close(), "failed to flush yaml")
}

// formatValue renders a dictionary value the way it is stored in a file:
// multiple values joined by a backslash.
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []float64:
		parts := make([]string, len(t))
		for i, f := range t {
			parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		return strings.Join(parts, parser.ValueDelimiter)
	}
	return fmt.Sprint(v)
}

// writeInfoTable prints info in InfoKeys order.
func writeInfoTable(w io.Writer, filename string, info parser.Info) {
	fmt.Fprintf(w, "%s\n", filename)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"field", "value"})
	table.SetAutoWrapText(false)
	for _, key := range parser.InfoKeys {
		if v, ok := info[key]; ok {
			table.Append([]string{key, formatValue(v)})
		}
	}
	table.Render()
}
