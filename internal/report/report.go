// Package report renders tabular exercise results in several output
// formats (table, plain, csv, json, yaml).
//
// The package uses a registry pattern so formatters can be selected by
// name at runtime:
//
//	f, err := report.Get("table")
//	if err != nil {
//	    return err
//	}
//	var buf bytes.Buffer
//	if err := f.Format(&buf, r); err != nil {
//	    return err
//	}
package report

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Meta describes where a report came from.
type Meta struct {
	// RunID uniquely identifies the invocation that produced the report.
	RunID string `json:"run_id" yaml:"run_id"`

	// GeneratedAt is when the report was built.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Source names the input, e.g. "sample" or a file path.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Report is a titled table with optional trailing notes.
type Report struct {
	Title   string
	Columns []string
	Rows    [][]string
	Notes   []string
	Meta    Meta
}

// New creates an empty report with a fresh run ID.
func New(title string, columns ...string) *Report {
	return &Report{
		Title:   title,
		Columns: columns,
		Meta: Meta{
			RunID:       uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
		},
	}
}

// AddRow appends a row. It panics if the cell count does not match the
// column count, which is always a programming error.
func (r *Report) AddRow(cells ...string) {
	if len(cells) != len(r.Columns) {
		panic(fmt.Sprintf("report: row has %d cells, want %d", len(cells), len(r.Columns)))
	}
	r.Rows = append(r.Rows, cells)
}

// AddNote appends a free-form line shown after the table.
func (r *Report) AddNote(format string, args ...interface{}) {
	r.Notes = append(r.Notes, fmt.Sprintf(format, args...))
}

// Records returns rows as column → cell maps, for structured encoders.
func (r *Report) Records() []map[string]string {
	out := make([]map[string]string, len(r.Rows))
	for i, row := range r.Rows {
		rec := make(map[string]string, len(r.Columns))
		for j, col := range r.Columns {
			rec[col] = row[j]
		}
		out[i] = rec
	}

	return out
}

// Int formats n with thousands separators.
func Int(n int) string {
	return humanize.Comma(int64(n))
}

// Rate formats a 0..1 ratio as a percentage with one decimal.
func Rate(r float64) string {
	return strconv.FormatFloat(r*100, 'f', 1, 64) + "%"
}

// Float formats f without trailing zeros.
func Float(f float64) string {
	return humanize.Ftoa(f)
}

// Date formats t as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// Formatter is the interface that all output formatters must implement.
type Formatter interface {
	// Format writes the formatted report to the buffer.
	Format(w *bytes.Buffer, r *Report) error
}

// FormatterFactory is a function that creates a new Formatter instance.
type FormatterFactory func() Formatter

// ErrUnknownFormat is returned when no formatter is registered under a name.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Registry maps format names to formatter factories. The zero value is
// ready to use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// Register adds or replaces the formatter for name.
func (r *Registry) Register(name string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.factories == nil {
		r.factories = make(map[string]FormatterFactory)
	}
	r.factories[name] = factory
}

// Get returns a fresh formatter for name.
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if factory, ok := r.factories[name]; ok {
		return factory(), nil
	}

	return nil, fmt.Errorf("%w %q, available: %s", ErrUnknownFormat, name, strings.Join(r.names(), ", "))
}

// Available lists the registered names in order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.names()
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// formats holds every formatter shipped with the package.
var formats Registry

// Register adds a formatter to the package registry.
func Register(name string, factory FormatterFactory) {
	formats.Register(name, factory)
}

// Get returns a formatter from the package registry.
func Get(name string) (Formatter, error) {
	return formats.Get(name)
}

// Available lists the formats of the package registry.
func Available() []string {
	return formats.Available()
}
