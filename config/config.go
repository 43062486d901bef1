// Package config loads the optional YAML run configuration.
//
//	split: true
//	idBase: https://schemas.wmo.int/wmdr/json-schema/
//	format: json
//	indent: 2
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reoring/wmdrschema/emit"
)

// File is the decoded configuration. Zero values mean "not set".
type File struct {
	Split  *bool  `yaml:"split"`
	IDBase string `yaml:"idBase"`
	Format string `yaml:"format"`
	Indent int    `yaml:"indent"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes one YAML document. Unknown keys are rejected; an empty
// document yields the zero File.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, err
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate checks value ranges.
func (f File) Validate() error {
	if _, err := emit.ParseFormat(f.Format); err != nil {
		return err
	}
	if f.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", f.Indent)
	}
	return nil
}
