package descriptor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// FormatForPath picks the descriptor encoding from the file extension.
// Anything that is not .yaml/.yml is treated as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// ParseFile reads a descriptor file and parses it, detecting the encoding
// from the file extension.
func ParseFile(path string) (*Descriptor, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a descriptor and checks the required fields: project name
// must be non-empty and the project version must parse as a semantic
// version. Failures carry the field path and raw value via *FieldError.
func Parse(data []byte, format Format) (*Descriptor, error) {
	d, err := decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := d.checkRequired(); err != nil {
		return nil, err
	}
	return d, nil
}

// decode unmarshals without required-field checks. Validate uses it to
// collect violations from descriptors Parse would reject outright.
func decode(data []byte, format Format) (*Descriptor, error) {
	var d Descriptor
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing YAML descriptor: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing TOML descriptor: %w", err)
		}
	}
	return &d, nil
}

func (d *Descriptor) checkRequired() error {
	if strings.TrimSpace(d.Project.Name) == "" {
		return &FieldError{Field: "project.name", Err: ErrMissingField}
	}
	if strings.TrimSpace(d.Project.Version) == "" {
		return &FieldError{Field: "project.version", Err: ErrMissingField}
	}
	if _, err := semver.StrictNewVersion(d.Project.Version); err != nil {
		return &FieldError{Field: "project.version", Value: d.Project.Version, Err: ErrMalformedVersion}
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
