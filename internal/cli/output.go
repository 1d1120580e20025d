package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type printer struct {
	out    io.Writer
	format string
}

func newPrinter(out io.Writer, format string) (*printer, error) {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return &printer{out: out, format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (table, json, yaml)", format)
	}
}

// print writes v as JSON or YAML, or calls table with a tab-aligned writer.
func (p *printer) print(v any, table func(w io.Writer)) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
		table(w)
		return w.Flush()
	}
}
