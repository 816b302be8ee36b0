package constraint

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// bound is one endpoint of an interval. A nil *bound means unbounded.
type bound struct {
	v         *semver.Version
	inclusive bool
}

// interval is a contiguous range of versions.
type interval struct {
	lower *bound
	upper *bound
}

func unbounded() interval { return interval{} }

// parsePart converts a single conjunction part into an interval, mirroring
// the matcher's semantics: partial versions are zero-padded for comparisons
// and wildcarded for exact and caret forms.
func parsePart(part string) (interval, error) {
	if part == "" {
		return interval{}, fmt.Errorf("empty constraint part")
	}

	switch {
	case strings.HasPrefix(part, "^"):
		return caretInterval(strings.TrimSpace(part[1:]))
	case strings.HasPrefix(part, ">="):
		return lowerBounded(strings.TrimSpace(part[2:]), true)
	case strings.HasPrefix(part, "<="):
		return upperBounded(strings.TrimSpace(part[2:]), true)
	case strings.HasPrefix(part, ">"):
		return lowerBounded(strings.TrimSpace(part[1:]), false)
	case strings.HasPrefix(part, "<"):
		return upperBounded(strings.TrimSpace(part[1:]), false)
	case strings.HasPrefix(part, "=="):
		return exactInterval(strings.TrimSpace(part[2:]))
	case strings.HasPrefix(part, "="):
		return exactInterval(strings.TrimSpace(part[1:]))
	default:
		return exactInterval(part)
	}
}

func parseVersion(s string) (*semver.Version, int, error) {
	if s == "" {
		return nil, 0, fmt.Errorf("missing version")
	}
	segments := strings.Count(s, ".") + 1
	v, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return nil, 0, fmt.Errorf("parsing version %q: %w", s, err)
	}
	return v, segments, nil
}

func lowerBounded(s string, inclusive bool) (interval, error) {
	v, _, err := parseVersion(s)
	if err != nil {
		return interval{}, err
	}
	return interval{lower: &bound{v: v, inclusive: inclusive}}, nil
}

func upperBounded(s string, inclusive bool) (interval, error) {
	v, _, err := parseVersion(s)
	if err != nil {
		return interval{}, err
	}
	return interval{upper: &bound{v: v, inclusive: inclusive}}, nil
}

// exactInterval treats missing segments as wildcards: "3.6" covers
// [3.6.0, 3.7.0), "3" covers [3.0.0, 4.0.0), "3.6.1" is a single point.
func exactInterval(s string) (interval, error) {
	v, segments, err := parseVersion(s)
	if err != nil {
		return interval{}, err
	}
	switch segments {
	case 1:
		return halfOpen(v, v.IncMajor()), nil
	case 2:
		return halfOpen(v, v.IncMinor()), nil
	default:
		return interval{
			lower: &bound{v: v, inclusive: true},
			upper: &bound{v: v, inclusive: true},
		}, nil
	}
}

// caretInterval applies compatible-release semantics: the range admits
// anything at or above the version and below the next breaking boundary
// (next major, or next minor/patch in the 0.x regime).
func caretInterval(s string) (interval, error) {
	v, segments, err := parseVersion(s)
	if err != nil {
		return interval{}, err
	}
	switch {
	case v.Major() > 0 || segments == 1:
		return halfOpen(v, v.IncMajor()), nil
	case v.Minor() > 0 || segments == 2:
		return halfOpen(v, v.IncMinor()), nil
	default:
		return halfOpen(v, v.IncPatch()), nil
	}
}

func halfOpen(lower *semver.Version, upper semver.Version) interval {
	return interval{
		lower: &bound{v: lower, inclusive: true},
		upper: &bound{v: &upper, inclusive: false},
	}
}

// intersect keeps the tighter of each pair of endpoints.
func (a interval) intersect(b interval) interval {
	out := a
	if tighterLower(b.lower, out.lower) {
		out.lower = b.lower
	}
	if tighterUpper(b.upper, out.upper) {
		out.upper = b.upper
	}
	return out
}

func tighterLower(candidate, current *bound) bool {
	if candidate == nil {
		return false
	}
	if current == nil {
		return true
	}
	cmp := candidate.v.Compare(current.v)
	if cmp != 0 {
		return cmp > 0
	}
	return !candidate.inclusive && current.inclusive
}

func tighterUpper(candidate, current *bound) bool {
	if candidate == nil {
		return false
	}
	if current == nil {
		return true
	}
	cmp := candidate.v.Compare(current.v)
	if cmp != 0 {
		return cmp < 0
	}
	return !candidate.inclusive && current.inclusive
}

// empty reports whether no version can satisfy the interval.
func (a interval) empty() bool {
	if a.lower == nil || a.upper == nil {
		return false
	}
	cmp := a.lower.v.Compare(a.upper.v)
	if cmp > 0 {
		return true
	}
	if cmp == 0 {
		return !(a.lower.inclusive && a.upper.inclusive)
	}
	return false
}
