package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// keyPrefix namespaces every cache key written by this service.
const keyPrefix = "books"

// Arg is a single argument of a wrapped operation. Name is empty for
// positional arguments and set for keyword-style arguments.
type Arg struct {
	Name  string
	Value any
}

// Pos builds a positional argument.
func Pos(value any) Arg {
	return Arg{Value: value}
}

// Named builds a keyword-style argument.
func Named(name string, value any) Arg {
	return Arg{Name: name, Value: value}
}

// Key derives the deterministic cache key for one call of the operation op.
//
// Positional arguments keep their call order; named arguments are sorted by
// name so that semantically identical keyword calls collide. Values are
// rendered through canonical JSON, never through default object formatting,
// so equal values always produce equal keys regardless of object identity.
//
// Format: books:<op>[:<value>...][:<name>=<value>...]
// A zero-argument call yields books:<op>.
func Key(op string, args ...Arg) string {
	parts := []string{keyPrefix, op}

	named := make([]Arg, 0, len(args))
	for _, a := range args {
		if a.Name == "" {
			parts = append(parts, renderValue(a.Value))
			continue
		}
		named = append(named, a)
	}

	sort.Slice(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	for _, a := range named {
		parts = append(parts, a.Name+"="+renderValue(a.Value))
	}

	return strings.Join(parts, ":")
}

// renderValue produces the canonical textual form of an argument value.
// json.Marshal is deterministic for structs (declared field order) and maps
// (sorted keys), which keeps keys stable across process runs.
func renderValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Unmarshalable values (channels, funcs) have no business in a cache
		// key; fall back to the type name so the key stays well-formed.
		return fmt.Sprintf("!%T", v)
	}
	return string(b)
}
