package descriptor

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/proper-build/proper/internal/constraint"
)

//go:embed schema/descriptor.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of descriptor validation.
type ValidationResult struct {
	Valid      bool
	Violations []Violation
}

// Violation is a single validation failure.
type Violation struct {
	Path    string // Instance location (e.g., "/project/name", "/dependencies/cffi")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed; empty for semantic checks
	Value   string // Raw offending value where known
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("descriptor.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("descriptor.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate validates raw descriptor bytes: JSON Schema structural checks
// first, then semantic checks (semver grammar, constraint satisfiability).
// The error return is for structurally corrupt input or schema compilation
// failures; merely-invalid descriptors come back as violations.
func Validate(data []byte, format Format) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	raw, err := decodeGeneric(data, format)
	if err != nil {
		return nil, err
	}

	// Normalize to JSON-compatible types and re-decode with the validator's
	// own JSON reader so numbers survive as json.Number.
	jsonData, err := json.Marshal(normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var violations []Violation
	if err := schema.Validate(inst); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		violations = extractViolations(validationErr)
	}

	// Semantic checks run on the typed decode, skipping anything the schema
	// pass already flagged structurally.
	d, err := decode(data, format)
	if err == nil {
		violations = append(violations, semanticViolations(d)...)
	}

	return &ValidationResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}, nil
}

// ValidateFile reads a descriptor file and validates it.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data, FormatForPath(path))
}

// semanticViolations checks what the schema cannot express: the version must
// satisfy semver grammar and every dependency constraint must parse to a
// satisfiable range. Tool block options are opaque and never checked.
func semanticViolations(d *Descriptor) []Violation {
	var out []Violation

	if v := d.Project.Version; v != "" {
		if _, err := semver.StrictNewVersion(v); err != nil {
			out = append(out, Violation{
				Path:    "/project/version",
				Message: "not a valid semantic version",
				Value:   v,
			})
		}
	}

	out = append(out, constraintViolations("dependencies", d.Dependencies)...)
	out = append(out, constraintViolations("dev-dependencies", d.DevDependencies)...)
	return out
}

func constraintViolations(section string, deps map[string]string) []Violation {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []Violation
	for _, name := range names {
		expr := deps[name]
		if _, err := constraint.Parse(expr); err != nil {
			msg := "invalid version constraint"
			if errors.Is(err, constraint.ErrUnsatisfiable) {
				msg = "constraint admits no versions"
			}
			out = append(out, Violation{
				Path:    "/" + section + "/" + name,
				Message: msg,
				Value:   expr,
			})
		}
	}
	return out
}

// decodeGeneric unmarshals descriptor bytes into generic maps for the
// schema pass.
func decodeGeneric(data []byte, format Format) (interface{}, error) {
	var raw interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML descriptor: %w", err)
		}
	default:
		m := map[string]interface{}{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing TOML descriptor: %w", err)
		}
		raw = m
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	return raw, nil
}

// extractViolations walks the ValidationError tree and returns leaf-level
// failures, dropping uninformative container keywords.
func extractViolations(ve *jsonschema.ValidationError) []Violation {
	var out []Violation
	collectViolations(ve, &out)
	if len(out) == 0 {
		return []Violation{{Message: ve.Error()}}
	}
	return deduplicate(out)
}

func collectViolations(ve *jsonschema.ValidationError, out *[]Violation) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		if keyword == "oneOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*out = append(*out, Violation{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectViolations(cause, out)
	}
}

func deduplicate(violations []Violation) []Violation {
	seen := make(map[string]bool)
	var result []Violation
	for _, v := range violations {
		key := v.Path + "|" + v.Keyword + "|" + v.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, v)
		}
	}
	return result
}

// normalize recursively converts decoded values to JSON-compatible types.
// The YAML and TOML decoders both produce map[string]interface{} for tables,
// but scalar types (int vs int64, time values) vary between them.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[k] = normalize(item)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, item := range val {
			a[i] = normalize(item)
		}
		return a
	case fmt.Stringer:
		return val.String()
	default:
		return val
	}
}
