package descriptor

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseFile_Valid(t *testing.T) {
	d, err := ParseFile(testPath("valid-project.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if d.Project.Name != "embercast" {
		t.Errorf("Name = %q, want %q", d.Project.Name, "embercast")
	}
	if d.Project.Version != "0.1.0" {
		t.Errorf("Version = %q, want %q", d.Project.Version, "0.1.0")
	}
	if d.Project.License != "MPL-2.0" {
		t.Errorf("License = %q, want %q", d.Project.License, "MPL-2.0")
	}
	if len(d.Project.Authors) != 1 {
		t.Fatalf("Authors len = %d, want 1", len(d.Project.Authors))
	}
	if d.Project.Authors[0] != "Mara Voss <mara@embercast.dev>" {
		t.Errorf("Authors[0] = %q", d.Project.Authors[0])
	}
	if len(d.Dependencies) != 2 {
		t.Errorf("Dependencies len = %d, want 2", len(d.Dependencies))
	}
	if d.Dependencies["cffi"] != "^1.13.2" {
		t.Errorf("Dependencies[cffi] = %q, want %q", d.Dependencies["cffi"], "^1.13.2")
	}
	if d.DevDependencies["isort"] != "^4.3.21" {
		t.Errorf("DevDependencies[isort] = %q, want %q", d.DevDependencies["isort"], "^4.3.21")
	}
	black := d.Tool("black")
	if black == nil {
		t.Fatal("Tool(black) = nil, want options")
	}
	if black["line-length"] != int64(79) {
		t.Errorf("black line-length = %v (%T), want 79", black["line-length"], black["line-length"])
	}
	if black["skip-string-normalization"] != true {
		t.Errorf("black skip-string-normalization = %v, want true", black["skip-string-normalization"])
	}
	targets, ok := black["target-version"].([]interface{})
	if !ok || len(targets) != 3 {
		t.Errorf("black target-version = %v, want 3 entries", black["target-version"])
	}
	if d.Tool("isort") == nil {
		t.Error("Tool(isort) = nil, want options")
	}
	if d.Tool("flake8") != nil {
		t.Error("Tool(flake8) != nil, want nil")
	}
}

func TestParseFile_YAML(t *testing.T) {
	d, err := ParseFile(testPath("valid-project.yaml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if d.Project.Name != "embercast" {
		t.Errorf("Name = %q, want %q", d.Project.Name, "embercast")
	}
	if d.Dependencies["cffi"] != "^1.13.2" {
		t.Errorf("Dependencies[cffi] = %q, want %q", d.Dependencies["cffi"], "^1.13.2")
	}
	if d.Tool("black") == nil {
		t.Error("Tool(black) = nil, want options")
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil, FormatTOML)
	if err == nil {
		t.Fatal("expected error for empty descriptor, got nil")
	}
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("error = %v, want ErrMissingField", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a *FieldError", err)
	}
	if fe.Field != "project.name" {
		t.Errorf("Field = %q, want %q", fe.Field, "project.name")
	}
}

func TestParse_MissingVersion(t *testing.T) {
	_, err := ParseFile(testPath("invalid-missing-version.toml"))
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("error = %v, want ErrMissingField", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a *FieldError", err)
	}
	if fe.Field != "project.version" {
		t.Errorf("Field = %q, want %q", fe.Field, "project.version")
	}
}

func TestParse_MalformedVersion(t *testing.T) {
	_, err := ParseFile(testPath("invalid-bad-version.toml"))
	if !errors.Is(err, ErrMalformedVersion) {
		t.Fatalf("error = %v, want ErrMalformedVersion", err)
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a *FieldError", err)
	}
	if fe.Value != "one.two" {
		t.Errorf("Value = %q, want %q", fe.Value, "one.two")
	}
}

func TestParseFile_NotTOML(t *testing.T) {
	_, err := ParseFile(testPath("invalid-not-toml.toml"))
	if err == nil {
		t.Fatal("expected error for malformed TOML, got nil")
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(testPath("nonexistent.toml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"project.toml", FormatTOML},
		{"project.yaml", FormatYAML},
		{"project.yml", FormatYAML},
		{"project.YAML", FormatYAML},
		{"project", FormatTOML},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	d := &Descriptor{
		Project: Project{
			Name:        "embercast",
			Version:     "0.1.0",
			Description: "Build standalone executables from interpreted scripts.",
			Authors:     []string{"Mara Voss <mara@embercast.dev>"},
			License:     "MPL-2.0",
		},
		Dependencies: map[string]string{
			"cffi":   "^1.13.2",
			"python": "^3.6,<3.9",
		},
		DevDependencies: map[string]string{
			"black": "^19.10.0",
		},
		Tools: map[string]ToolOptions{
			"black": {
				"line-length":               int64(79),
				"skip-string-normalization": true,
				"target-version":            []interface{}{"py36", "py37"},
			},
		},
	}

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	got, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse(Marshal(d)) error: %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Errorf("round trip mismatch:\n got: %#v\nwant: %#v", got, d)
	}
}

func TestConstraint_Lookup(t *testing.T) {
	d, err := ParseFile(testPath("valid-project.toml"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}

	expr, ok := d.Constraint("cffi")
	if !ok || expr != "^1.13.2" {
		t.Errorf("Constraint(cffi) = %q, %v; want ^1.13.2, true", expr, ok)
	}
	expr, ok = d.Constraint("black")
	if !ok || expr != "^19.10.0" {
		t.Errorf("Constraint(black) = %q, %v; want ^19.10.0, true", expr, ok)
	}
	if _, ok := d.Constraint("requests"); ok {
		t.Error("Constraint(requests) found, want missing")
	}
}
