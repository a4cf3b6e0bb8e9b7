// Package render turns listing outcomes into terminal output. Each
// call is a one-shot transformation; no state survives between calls.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/awsinv/awsinv/inventory"
)

// Table writes the result as an aligned text table under a title
// banner. Column widths are computed over the full row set before
// anything is written, so every value fits its column. An empty
// result prints an explicit line instead of a bare header.
func Table(w io.Writer, result *inventory.Result) error {
	title := fmt.Sprintf("%s in %s", result.Kind.Title(), result.Region)
	banner := strings.Repeat("=", utf8.RuneCountInString(title))
	if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", banner, title, banner); err != nil {
		return err
	}

	if len(result.Rows) == 0 {
		_, err := fmt.Fprintln(w, "(no resources found)")
		return err
	}

	headers := result.Kind.Columns()
	widths := columnWidths(headers, result.Rows)

	if _, err := fmt.Fprintln(w, formatRow(headers, widths)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, separator(widths)); err != nil {
		return err
	}
	for _, row := range result.Rows {
		if _, err := fmt.Fprintln(w, formatRow(row, widths)); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the result as an indented JSON document with the column
// schema alongside the rows.
func JSON(w io.Writer, result *inventory.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Service string          `json:"service"`
		Region  string          `json:"region"`
		Columns []string        `json:"columns"`
		Rows    []inventory.Row `json:"rows"`
	}{
		Service: string(result.Kind),
		Region:  result.Region,
		Columns: result.Kind.Columns(),
		Rows:    result.Rows,
	})
}

// CSV writes the result as a header record plus one record per row.
func CSV(w io.Writer, result *inventory.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(result.Kind.Columns()); err != nil {
		return err
	}
	for _, row := range result.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Error writes the one-line failure report. Callers point w at stderr
// so tables and failures never share a stream.
func Error(w io.Writer, err *inventory.Error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// columnWidths returns, per column, the widest value across the
// header and every row.
func columnWidths(headers []string, rows []inventory.Row) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, col := range row {
			if n := utf8.RuneCountInString(col); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func formatRow(cols []string, widths []int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = pad(col, widths[i])
	}
	return strings.Join(parts, " | ")
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("-", width)
	}
	return strings.Join(parts, "-+-")
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}
