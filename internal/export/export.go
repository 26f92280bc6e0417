// Package export writes and reads task snapshots as JSON or YAML documents.
// All file access goes through an afero.Fs so callers can swap the real
// filesystem for an in-memory one.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/tasktide/tasktide/pkg/planner"
	"gopkg.in/yaml.v3"
)

// Format is a snapshot encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported format name or extension.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Document is the exported shape.
type Document struct {
	GeneratedAt time.Time          `json:"generated_at" yaml:"generated_at"`
	Tasks       []planner.GanttRow `json:"tasks" yaml:"tasks"`
}

// Encode writes doc to w.
func Encode(w io.Writer, f Format, doc Document) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Decode reads a document from r.
func Decode(r io.Reader, f Format) (Document, error) {
	var doc Document
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	default:
		return doc, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return doc, err
}

// Exporter reads and writes snapshot files.
type Exporter struct {
	fs  afero.Fs
	now func() time.Time
}

// New creates an Exporter on fs. A nil fs means the OS filesystem.
func New(fs afero.Fs) *Exporter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Exporter{fs: fs, now: time.Now}
}

// Write stores rows at path, encoded by the path's extension. Missing
// parent directories are created.
func (e *Exporter) Write(path string, rows []planner.GanttRow) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := e.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	file, err := e.fs.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	doc := Document{GeneratedAt: e.now(), Tasks: rows}
	if err := Encode(file, f, doc); err != nil {
		file.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return file.Close()
}

// Read loads the rows stored at path.
func (e *Exporter) Read(path string) ([]planner.GanttRow, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := e.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	defer file.Close()
	doc, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", path, err)
	}
	return doc.Tasks, nil
}
