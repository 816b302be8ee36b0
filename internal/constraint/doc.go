// Package constraint parses dependency version range expressions.
// It supports caret (compatible-release) ranges, comparison operators,
// and comma-separated conjunctions, and rejects expressions whose
// intersection admits no versions.
package constraint
