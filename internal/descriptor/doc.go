// Package descriptor handles parsing, serialization, and validation of
// project packaging descriptors. A descriptor carries the project metadata,
// the runtime and dev dependency constraints, and opaque per-tool option
// blocks consumed by external formatting tools. Validation combines JSON
// Schema structural checks with semantic checks (semver grammar, constraint
// satisfiability).
package descriptor
