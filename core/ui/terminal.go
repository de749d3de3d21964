// Package ui - Terminal user interface
// Colored CLI output with headers, aligned tables and summary boxes.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"saas-economics/core/types"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
	err       error
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// Err returns the first write error, if any
func (w *Writer) Err() error {
	return w.err
}

// Color applies color if enabled
func (w *Writer) Color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// ToneColor maps a health tone to a terminal color
func ToneColor(t types.Tone) string {
	switch t {
	case types.ToneGood:
		return Green
	case types.ToneFair:
		return Yellow
	default:
		return Red
	}
}

// SeverityColor maps an advisory severity to a terminal color
func SeverityColor(s types.Severity) string {
	switch s {
	case types.SeverityDanger:
		return Red
	case types.SeverityWarning:
		return Yellow
	default:
		return Blue
	}
}

// SignColor is green for non-negative amounts and red otherwise
func SignColor(v float64) string {
	if v >= 0 {
		return Green
	}
	return Red
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	w.printf(format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.Color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println("%s", w.Color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Green, "✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Yellow, "⚠ "), fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println("%s%s", w.Color(Red, "✗ "), fmt.Sprintf(format, args...))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	w.Println("%s%s", w.Color(Blue, "ℹ "), fmt.Sprintf(format, args...))
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	w.Println("%s", w.Color(Dim, "  "+fmt.Sprintf(format, args...)))
}

// Severity prints a message with the icon and color for its severity
func (w *Writer) Severity(s types.Severity, format string, args ...interface{}) {
	switch s {
	case types.SeverityDanger:
		w.Error(format, args...)
	case types.SeverityWarning:
		w.Warning(format, args...)
	default:
		w.Println("%s%s", w.Color(Blue, "ℹ "), fmt.Sprintf(format, args...))
	}
}

// KeyValue prints an aligned "label  value" row
func (w *Writer) KeyValue(label, value string) {
	w.Println("  %s %s", pad(label+":", 26), value)
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	colors  [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = width(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	t.AddColoredRow(nil, cells...)
}

// AddColoredRow adds a row; colors[i] (if set) is applied to cell i after
// padding so alignment is unaffected
func (t *Table) AddColoredRow(colors []string, cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if n := width(row[i]); n > t.widths[i] {
			t.widths[i] = n
		}
	}
	t.rows = append(t.rows, row)
	t.colors = append(t.colors, colors)
}

// Render prints the table
func (t *Table) Render() {
	header := make([]string, len(t.headers))
	for i, h := range t.headers {
		header[i] = pad(h, t.widths[i])
	}
	t.w.Println("%s", t.w.Color(Bold, strings.Join(header, " │ ")))

	sep := make([]string, len(t.widths))
	for i, n := range t.widths {
		sep[i] = strings.Repeat("─", n)
	}
	t.w.Println("%s", strings.Join(sep, "─┼─"))

	for r, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, t.widths[i])
			if colors := t.colors[r]; i < len(colors) && colors[i] != "" {
				cells[i] = t.w.Color(colors[i], cells[i])
			}
		}
		t.w.Println("%s", strings.Join(cells, " │ "))
	}
}

// ProfitSummary renders the headline revenue/cost/profit box
type ProfitSummary struct {
	w        *Writer
	Revenue  string
	Costs    string
	Profit   string
	Margin   string
	Positive bool
}

// NewProfitSummary creates a profit summary
func (w *Writer) NewProfitSummary() *ProfitSummary {
	return &ProfitSummary{w: w}
}

// Render prints the profit summary
func (s *ProfitSummary) Render() {
	profitColor := Green
	if !s.Positive {
		profitColor = Red
	}

	s.w.Println("%s", s.w.Color(Bold, "╭─────────────────────────────────────╮"))
	s.w.Println("%s%s%s", s.w.Color(Bold, "│"), fmt.Sprintf("  Monthly Revenue: %-18s", s.Revenue), s.w.Color(Bold, "│"))
	s.w.Println("%s%s%s", s.w.Color(Bold, "│"), s.w.Color(Dim, fmt.Sprintf("  Total Costs:     %-18s", s.Costs)), s.w.Color(Bold, "│"))
	s.w.Println("%s%s%s", s.w.Color(Bold, "│"), s.w.Color(profitColor, fmt.Sprintf("  Net Profit:      %-18s", s.Profit)), s.w.Color(Bold, "│"))
	s.w.Println("%s%s%s", s.w.Color(Bold, "│"), s.w.Color(profitColor, fmt.Sprintf("  Profit Margin:   %-18s", s.Margin)), s.w.Color(Bold, "│"))
	s.w.Println("%s", s.w.Color(Bold, "╰─────────────────────────────────────╯"))
}

// width counts runes so "∞" and "━" take one column
func width(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
