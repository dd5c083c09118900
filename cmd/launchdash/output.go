package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/spektr-org/launchdash/engine"
)

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, format string) error {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// ============================================================================
// TABLE OUTPUT
// ============================================================================

func writeTables(w io.Writer, specs []engine.ChartSpec) error {
	for i, spec := range specs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, renderTable(engine.BuildTable(spec))); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(td *engine.TableData) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(td.Title)

	header := make(table.Row, len(td.Columns))
	configs := make([]table.ColumnConfig, len(td.Columns))
	for i, c := range td.Columns {
		header[i] = c.Label
		configs[i] = table.ColumnConfig{Number: i + 1, Align: alignOf(c.Align)}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, r := range td.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		tw.AppendRow(row)
	}

	if td.Summary != nil {
		footer := make(table.Row, len(td.Columns))
		footer[0] = td.Summary.Label
		for i, c := range td.Columns {
			if v, ok := td.Summary.Values[c.Key]; ok {
				footer[i] = v
			}
		}
		tw.AppendFooter(footer)
	}
	return tw.Render()
}

func alignOf(a string) text.Align {
	switch a {
	case "right":
		return text.AlignRight
	case "center":
		return text.AlignCenter
	case "left":
		return text.AlignLeft
	default:
		return text.AlignDefault
	}
}

// ============================================================================
// CSV OUTPUT: One block per view, separated by a blank record
// ============================================================================

func writeCSV(w io.Writer, specs []engine.ChartSpec) error {
	cw := csv.NewWriter(w)

	for i, spec := range specs {
		if i > 0 {
			if err := cw.Write([]string{}); err != nil {
				return err
			}
		}
		td := engine.BuildTable(spec)

		headers := make([]string, len(td.Columns))
		for j, c := range td.Columns {
			headers[j] = c.Label
		}
		if err := cw.Write(headers); err != nil {
			return err
		}
		for _, row := range td.Rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
