package toolchain

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/proper-build/proper/internal/descriptor"
)

type flagKind int

const (
	// kindValue emits "--flag value".
	kindValue flagKind = iota
	// kindSwitch emits "--flag" when the option is true, nothing otherwise.
	kindSwitch
	// kindRepeated emits "--flag item" once per sequence element.
	kindRepeated
)

type flagSpec struct {
	flag string
	kind flagKind
}

// Tool describes one external collaborator: its binary name (which doubles
// as the descriptor tool block name) and the options it recognizes.
type Tool struct {
	Name  string
	flags map[string]flagSpec
}

// Formatter is the code formatting engine.
var Formatter = Tool{
	Name: "black",
	flags: map[string]flagSpec{
		"line-length":               {flag: "--line-length", kind: kindValue},
		"target-version":            {flag: "--target-version", kind: kindRepeated},
		"include":                   {flag: "--include", kind: kindValue},
		"exclude":                   {flag: "--exclude", kind: kindValue},
		"skip-string-normalization": {flag: "--skip-string-normalization", kind: kindSwitch},
	},
}

// Sorter is the import-sorting engine.
var Sorter = Tool{
	Name: "isort",
	flags: map[string]flagSpec{
		"multi_line_output":      {flag: "--multi-line", kind: kindValue},
		"include_trailing_comma": {flag: "--trailing-comma", kind: kindSwitch},
		"force_grid_wrap":        {flag: "--force-grid-wrap", kind: kindValue},
		"use_parentheses":        {flag: "--use-parentheses", kind: kindSwitch},
		"line_length":            {flag: "--line-length", kind: kindValue},
	},
}

// BuildArgs translates a descriptor tool block into command-line arguments.
// Options are processed in sorted order so invocations are reproducible.
// Unrecognized options are reported through warn and passed through as
// "--name[ value]".
func (t Tool) BuildArgs(opts descriptor.ToolOptions, warn func(option string)) []string {
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)

	var args []string
	for _, name := range names {
		val := opts[name]
		spec, ok := t.flags[name]
		if !ok {
			if warn != nil {
				warn(name)
			}
			args = append(args, passthrough(name, val)...)
			continue
		}

		switch spec.kind {
		case kindSwitch:
			if val == true {
				args = append(args, spec.flag)
			}
		case kindRepeated:
			for _, item := range sequence(val) {
				args = append(args, spec.flag, item)
			}
		default:
			args = append(args, spec.flag, scalar(val))
		}
	}
	return args
}

// passthrough renders an unrecognized option verbatim: booleans become bare
// switches, sequences repeat the flag, everything else is "--name value".
func passthrough(name string, val interface{}) []string {
	flag := "--" + name
	switch v := val.(type) {
	case bool:
		if v {
			return []string{flag}
		}
		return nil
	case []interface{}, []string:
		var out []string
		for _, item := range sequence(v) {
			out = append(out, flag, item)
		}
		return out
	default:
		return []string{flag, scalar(val)}
	}
}

func scalar(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sequence(val interface{}) []string {
	switch v := val.(type) {
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = scalar(item)
		}
		return out
	case []string:
		return v
	default:
		return []string{scalar(val)}
	}
}
