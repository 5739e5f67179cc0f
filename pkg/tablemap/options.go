// Package tablemap normalises HTML tables with row and column spans into a
// dense logical grid.
//
// A Mapper takes a private copy of a table, strips whitespace-only text,
// partitions its rows into groups and resolves every (group, row, column)
// position to the cell that owns it.
package tablemap

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/ukaji3/tablemap-go/pkg/tablemap/parser"
)

// Format represents an output format.
type Format string

const (
	// FormatJSON writes the resolved grid as JSON.
	FormatJSON Format = "json"
	// FormatText writes one terminal table per row group.
	FormatText Format = "text"
	// FormatHTML writes the debug HTML projection.
	FormatHTML Format = "html"
	// FormatXLSX writes a workbook with merged ranges for spanning cells.
	FormatXLSX Format = "xlsx"
	// FormatCoverage writes the raw coverage records.
	FormatCoverage Format = "coverage"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatText, FormatHTML, FormatXLSX, FormatCoverage:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, text, html, xlsx, or coverage)", s)
	}
}

// Visitor receives callbacks while a table is mapped, in document order.
// VisitRow is called once per physical row; VisitCell once per cell of each
// group's defining row, after VisitRow for that row.
type Visitor interface {
	VisitRow(tr *html.Node)
	VisitCell(cell, tr *html.Node)
}

// VisitorFuncs adapts plain functions to Visitor. Nil fields are skipped.
type VisitorFuncs struct {
	Row  func(tr *html.Node)
	Cell func(cell, tr *html.Node)
}

// VisitRow calls f.Row if set.
func (f VisitorFuncs) VisitRow(tr *html.Node) {
	if f.Row != nil {
		f.Row(tr)
	}
}

// VisitCell calls f.Cell if set.
func (f VisitorFuncs) VisitCell(cell, tr *html.Node) {
	if f.Cell != nil {
		f.Cell(cell, tr)
	}
}

// Options configures mapping behavior.
type Options struct {
	// Format is the output format used by the CLI.
	Format Format `toml:"format"`
	// Selector is the XPath expression selecting tables in a document.
	// Empty selects every table.
	Selector string `toml:"selector"`
	// Strict turns malformed spans into errors instead of recorded issues.
	// If nil, defaults to false.
	Strict *bool `toml:"strict"`
	// Pretty specifies whether JSON output is indented.
	// If nil, defaults to false.
	Pretty *bool `toml:"pretty"`

	// Visitor receives row and cell callbacks while mapping.
	Visitor Visitor `toml:"-"`
	// Logger receives debug output. If nil, nothing is logged.
	Logger *log.Logger `toml:"-"`
}

// DefaultOptions returns default mapping options.
func DefaultOptions() Options {
	return Options{
		Format:   FormatJSON,
		Selector: parser.DefaultSelector,
	}
}

// LoadOptions reads options from a TOML file on top of DefaultOptions.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

// ShouldFailOnMalformed returns whether malformed spans abort mapping.
func (o Options) ShouldFailOnMalformed() bool {
	return o.Strict != nil && *o.Strict
}

// ShouldPretty returns whether JSON output is indented.
func (o Options) ShouldPretty() bool {
	return o.Pretty != nil && *o.Pretty
}

func (o Options) selector() string {
	if o.Selector == "" {
		return parser.DefaultSelector
	}
	return o.Selector
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o Options) visitor() Visitor {
	if o.Visitor != nil {
		return o.Visitor
	}
	return VisitorFuncs{}
}
