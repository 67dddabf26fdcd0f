// Package report writes the record of a run as JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abiiranathan/pdfdedup/search"
	"gopkg.in/yaml.v3"
)

// Report is the record of one run, written when a report path is configured.
type Report struct {
	RunID     string               `json:"run_id" yaml:"run_id"`
	CreatedAt time.Time            `json:"created_at" yaml:"created_at"`
	Root      string               `json:"root" yaml:"root"`
	Target    string               `json:"target,omitempty" yaml:"target,omitempty"`
	Threshold float64              `json:"threshold" yaml:"threshold"`
	DryRun    bool                 `json:"dry_run" yaml:"dry_run"`
	Stats     search.CollectStats  `json:"stats" yaml:"stats"`
	Pairs     []search.SimilarPair `json:"pairs" yaml:"pairs"`
	Deletions []DeletionEntry      `json:"deletions,omitempty" yaml:"deletions,omitempty"`
	Stopped   string               `json:"stopped,omitempty" yaml:"stopped,omitempty"`
}

// DeletionEntry is the outcome of one deletion attempt.
type DeletionEntry struct {
	Path    string `json:"path" yaml:"path"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Format is the encoding of a report file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ReportFormat picks the encoding from the extension of path.
func ReportFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported report extension %q: use .json, .yaml or .yml", filepath.Ext(path))
}

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown report format %q", format)
}

// Serialize writes the report to path, choosing the format from its extension.
func (r *Report) Serialize(path string) error {
	format, err := ReportFormat(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create report: %w", err)
	}
	defer f.Close()

	if err := r.Encode(f, format); err != nil {
		return fmt.Errorf("unable to write report %s: %w", path, err)
	}
	return f.Close()
}
