package constraint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrUnsatisfiable marks a constraint whose bounds intersect to an empty
// version set, e.g. "^3.6,<3.0".
var ErrUnsatisfiable = errors.New("constraint admits no versions")

// SyntaxError reports an expression that does not parse as a version range.
type SyntaxError struct {
	Expr string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid constraint %q: %v", e.Expr, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Constraint is a parsed, satisfiable version range expression.
//
// Grammar: a comma-separated conjunction of parts, each either a caret range
// ("^1.13.2", partial "^3.6"), a comparison ("<3.9", ">=1.0.0", "=1.2.3"),
// or a bare version (exact, with missing segments treated as wildcards).
type Constraint struct {
	expr string
	set  *semver.Constraints
}

// Parse validates the expression syntax and checks that the conjunction of
// its parts is satisfiable. An empty intersection returns ErrUnsatisfiable.
func Parse(expr string) (*Constraint, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, &SyntaxError{Expr: expr, Err: errors.New("empty expression")}
	}

	set, err := semver.NewConstraint(trimmed)
	if err != nil {
		return nil, &SyntaxError{Expr: expr, Err: err}
	}

	// Intersect the per-part intervals to detect empty conjunctions, which
	// the constraint matcher alone cannot report.
	span := unbounded()
	for _, part := range strings.Split(trimmed, ",") {
		iv, err := parsePart(strings.TrimSpace(part))
		if err != nil {
			return nil, &SyntaxError{Expr: expr, Err: err}
		}
		span = span.intersect(iv)
	}
	if span.empty() {
		return nil, fmt.Errorf("constraint %q: %w", trimmed, ErrUnsatisfiable)
	}

	return &Constraint{expr: trimmed, set: set}, nil
}

// Check reports whether a concrete version satisfies the constraint.
// A leading "v" on the version is tolerated.
func (c *Constraint) Check(version string) (bool, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.set.Check(v), nil
}

// String returns the original (trimmed) expression.
func (c *Constraint) String() string { return c.expr }
