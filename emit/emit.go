// Package emit serializes schema documents and writes them to disk.
package emit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	js "github.com/reoring/wmdrschema/jsonschema"
)

// Format is a serialization format for schema documents.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively. The
// empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("emit: unknown format %q (want json or yaml)", s)
	}
}

// Suffix is the file name suffix for documents in f.
func (f Format) Suffix() string {
	if f == YAML {
		return ".schema.yaml"
	}
	return ".schema.json"
}

// Encode serializes s in format f with indent spaces per level.
func Encode(s *js.Schema, f Format, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	var buf bytes.Buffer
	switch f {
	case YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(indent)
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// File is one encoded document and its destination.
type File struct {
	Path string
	Data []byte
}

// WriteAll writes every file, creating parent directories as needed. Each
// document is first written to a temporary file next to its destination;
// targets are replaced by rename only once every document is staged. When
// staging fails the temporaries are removed and existing files are left as
// they were.
func WriteAll(files []File) error {
	staged := make([]string, 0, len(files))
	discard := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}
	for _, f := range files {
		tmp, err := stage(f)
		if err != nil {
			discard()
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
		staged = append(staged, tmp)
	}
	for i, f := range files {
		if err := os.Rename(staged[i], f.Path); err != nil {
			staged = staged[i:]
			discard()
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}

// errIsDir is returned when a destination path names a directory.
var errIsDir = errors.New("destination is a directory")

// stage writes f.Data to a temporary file in f.Path's directory and returns
// its name.
func stage(f File) (string, error) {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if fi, err := os.Stat(f.Path); err == nil && fi.IsDir() {
		return "", errIsDir
	}
	tmp, err := os.CreateTemp(dir, ".wmdrschema-*")
	if err != nil {
		return "", err
	}
	_, err = tmp.Write(f.Data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0o644)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
