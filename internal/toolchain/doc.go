// Package toolchain drives the external formatting and import-sorting
// engines configured by descriptor tool blocks. Recognized options are
// translated to each tool's real flag spelling; unrecognized options are
// reported and passed through verbatim, never rejected.
package toolchain
