package report

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// document is the shared JSON/YAML output structure.
type document struct {
	Title   string              `json:"title" yaml:"title"`
	Columns []string            `json:"columns" yaml:"columns"`
	Rows    []map[string]string `json:"rows" yaml:"rows"`
	Notes   []string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	Meta    Meta                `json:"meta" yaml:"meta"`
}

func newDocument(r *Report) document {
	return document{
		Title:   r.Title,
		Columns: r.Columns,
		Rows:    r.Records(),
		Notes:   r.Notes,
		Meta:    r.Meta,
	}
}

// JSONFormatter formats output as a single indented JSON object.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newDocument(r))
}

// YAMLFormatter formats output as a YAML document.
type YAMLFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *YAMLFormatter) Format(w *bytes.Buffer, r *Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newDocument(r)); err != nil {
		return err
	}
	return encoder.Close()
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
	Register("yaml", func() Formatter {
		return &YAMLFormatter{}
	})
}

var (
	_ Formatter = (*JSONFormatter)(nil)
	_ Formatter = (*YAMLFormatter)(nil)
)
