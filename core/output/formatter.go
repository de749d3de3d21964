// Package output provides output formatting.
// This package turns engine reports into human and machine-readable
// outputs. Nothing here computes a business figure.
package output

import (
	"io"
	"strings"

	"saas-economics/core/engine"
	"saas-economics/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCLI, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", errors.NotSupported("output format " + s)
}

// Section selects which parts of a report are rendered
type Section uint8

const (
	SectionMetrics Section = 1 << iota
	SectionProjection
	SectionScenarios
	SectionAdvice

	SectionAll = SectionMetrics | SectionProjection | SectionScenarios | SectionAdvice
)

// Has reports whether s includes section
func (s Section) Has(section Section) bool {
	return s&section != 0
}

// Options tune human-readable output
type Options struct {
	// NoColor disables ANSI colors
	NoColor bool

	// ShowMonths prints the month-by-month projection table
	ShowMonths bool

	// Verbose prints run metadata
	Verbose bool

	// Sections selects what to render; zero means everything
	Sections Section
}

func (o Options) sections() Section {
	if o.Sections == 0 {
		return SectionAll
	}
	return o.Sections
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// New returns the formatter for a format
func New(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{opts: opts}, nil
	}
	return nil, errors.NotSupported("output format " + string(format))
}

// Result is a report plus its rendered advice and execution context
type Result struct {
	// Report is the engine output
	Report *engine.Report `json:"report"`

	// Advice holds the advisories rendered as text
	Advice AdviceText `json:"messages"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// RequestID identifies the run
	RequestID string `json:"request_id"`

	// InputHash is a hash of the normalized inputs
	InputHash string `json:"input_hash"`

	// EngineVersion is the tool version
	EngineVersion string `json:"engine_version"`

	// Timestamp is when the run happened (RFC 3339)
	Timestamp string `json:"timestamp"`

	// DurationMS is how long the run took
	DurationMS float64 `json:"duration_ms"`
}

// NewResult wraps a report and renders its advice
func NewResult(report *engine.Report, meta Metadata) *Result {
	return &Result{
		Report:   report,
		Advice:   RenderAdvice(report.Advice),
		Metadata: meta,
	}
}
