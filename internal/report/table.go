package report

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used by the table formatter.
var (
	// TitleStyle is used for the report title.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// HeaderStyle is used for column headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	// NoteStyle is used for trailing notes.
	NoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// RuleStyle is used for the separator under the header.
	RuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// TableFormatter renders an aligned, styled table for terminals.
type TableFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *TableFormatter) Format(w *bytes.Buffer, r *Report) error {
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range r.Rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	if r.Title != "" {
		w.WriteString(TitleStyle.Render(r.Title))
		w.WriteString("\n\n")
	}

	header := make([]string, len(r.Columns))
	rule := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		header[i] = HeaderStyle.Render(pad(col, widths[i]))
		rule[i] = strings.Repeat("─", widths[i])
	}
	w.WriteString(strings.Join(header, "  "))
	w.WriteString("\n")
	w.WriteString(RuleStyle.Render(strings.Join(rule, "  ")))
	w.WriteString("\n")

	for _, row := range r.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		w.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		w.WriteString("\n")
	}

	if len(r.Notes) > 0 {
		w.WriteString("\n")
		for _, n := range r.Notes {
			w.WriteString(NoteStyle.Render(n))
			w.WriteString("\n")
		}
	}

	return nil
}

// pad right-pads s with spaces to the given display width.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func init() {
	Register("table", func() Formatter {
		return &TableFormatter{}
	})
}

// PlainFormatter formats output as tab-separated values with a header row.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Report) error {
	w.WriteString(strings.Join(r.Columns, "\t"))
	w.WriteString("\n")
	for _, row := range r.Rows {
		w.WriteString(strings.Join(row, "\t"))
		w.WriteString("\n")
	}
	for _, n := range r.Notes {
		w.WriteString("# " + n + "\n")
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// CSVFormatter formats output as comma-separated values with proper quoting.
// Notes are omitted so the output stays machine-readable.
type CSVFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *CSVFormatter) Format(w *bytes.Buffer, r *Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(r.Columns); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func init() {
	Register("csv", func() Formatter {
		return &CSVFormatter{}
	})
}

// Ensure formatters implement Formatter.
var (
	_ Formatter = (*TableFormatter)(nil)
	_ Formatter = (*PlainFormatter)(nil)
	_ Formatter = (*CSVFormatter)(nil)
)
