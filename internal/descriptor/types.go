package descriptor

// Project holds the identity metadata of a project.
type Project struct {
	Name        string   `toml:"name" yaml:"name" json:"name"`
	Version     string   `toml:"version" yaml:"version" json:"version"`
	Description string   `toml:"description,omitempty" yaml:"description,omitempty" json:"description,omitempty"`
	Authors     []string `toml:"authors,omitempty" yaml:"authors,omitempty" json:"authors,omitempty"`
	License     string   `toml:"license,omitempty" yaml:"license,omitempty" json:"license,omitempty"`
}

// ToolOptions is a single tool block: option name to value, passed to the
// external tool without semantic interpretation. Values are strings,
// booleans, integers, or sequences of strings.
type ToolOptions map[string]interface{}

// Descriptor is a fully parsed project descriptor. It is read once at
// startup and treated as immutable for the rest of the invocation.
type Descriptor struct {
	Project         Project                `toml:"project" yaml:"project" json:"project"`
	Dependencies    map[string]string      `toml:"dependencies,omitempty" yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
	DevDependencies map[string]string      `toml:"dev-dependencies,omitempty" yaml:"dev-dependencies,omitempty" json:"dev-dependencies,omitempty"`
	Tools           map[string]ToolOptions `toml:"tool,omitempty" yaml:"tool,omitempty" json:"tool,omitempty"`
}

// Constraint returns the declared constraint expression for a package,
// checking runtime dependencies before dev dependencies.
func (d *Descriptor) Constraint(pkg string) (string, bool) {
	if expr, ok := d.Dependencies[pkg]; ok {
		return expr, true
	}
	if expr, ok := d.DevDependencies[pkg]; ok {
		return expr, true
	}
	return "", false
}

// Tool returns the option block for a named tool, or nil if absent.
func (d *Descriptor) Tool(name string) ToolOptions {
	return d.Tools[name]
}

// Format identifies the on-disk encoding of a descriptor.
type Format int

const (
	// FormatTOML is the native descriptor encoding.
	FormatTOML Format = iota
	// FormatYAML is accepted for descriptors with a .yaml/.yml extension.
	FormatYAML
)
