package dot

import (
	"slices"
	"strings"

	"github.com/hasbyte1/go-fp/list"
	"github.com/hasbyte1/go-fp/option"
)

// Separator splits a path into map keys.
const Separator = "."

// ─────────────────────────────────────────────────────────────────────────────
// Reading
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored at path, or Nothing when a segment is missing
// or an intermediate value is not a map[string]any.
func Get(m map[string]any, path string) option.Option[any] {
	segments := strings.Split(path, Separator)
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return option.Nothing[any]()
		}
		if i == len(segments)-1 {
			return option.Some(val)
		}
		nested, ok := val.(map[string]any)
		if !ok {
			return option.Nothing[any]()
		}
		current = nested
	}
	return option.Nothing[any]()
}

// Lookup returns the value at path as a T. It is Nothing when the path is
// missing or the stored value is not a T. Numbers decoded by encoding/json
// are float64.
//
//	port := dot.Lookup[int](cfg, "server.port").OrElse(8080)
func Lookup[T any](m map[string]any, path string) option.Option[T] {
	return option.FlatMap(Get(m, path), func(v any) option.Option[T] {
		t, ok := v.(T)
		return option.FromOk(t, ok)
	})
}

// Has reports whether path exists in m. A key holding nil exists.
func Has(m map[string]any, path string) bool {
	return Get(m, path).IsDefined()
}

// Paths returns the dot paths of every leaf in m, sorted. Nested maps are
// descended into; every other value, including slices and nil, is a leaf.
func Paths(m map[string]any) list.List[string] {
	flat := Flatten(m)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return list.From(keys)
}

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

// Set writes value into m at path, creating intermediate maps as needed.
// A non-map value in the way is replaced by a new map.
func Set(m map[string]any, path string, value any) {
	seg, rest, nested := strings.Cut(path, Separator)
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[seg] = child
	}
	Set(child, rest, value)
}

// Forget removes path from m. Intermediate maps are left in place, even when
// they become empty.
func Forget(m map[string]any, path string) {
	seg, rest, nested := strings.Cut(path, Separator)
	if !nested {
		delete(m, path)
		return
	}
	child, ok := m[seg].(map[string]any)
	if !ok {
		return
	}
	Forget(child, rest)
}

// ─────────────────────────────────────────────────────────────────────────────
// Reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Flatten returns a single-level copy of m keyed by dot path.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Flatten(m map[string]any) map[string]any {
	out := make(map[string]any)
	flatten("", m, out)
	return out
}

func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + Separator + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
		} else {
			out[key] = v
		}
	}
}

// Expand is the inverse of [Flatten]: it nests a flat dot-path map.
//
//	Expand(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Expand(m map[string]any) map[string]any {
	out := make(map[string]any)
	for key, val := range m {
		Set(out, key, val)
	}
	return out
}
