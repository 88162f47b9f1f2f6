// Package props provides dotted-path access to tree-structured mappings.
//
// A dotted path like "a.b.c" addresses a nested value inside a
// map[string]any, one segment per level. The functions here are the
// low-level primitives behind the widget option and state accessors.
package props

import "strings"

// Lookup resolves a dotted path against the mapping.
// It walks one segment at a time; a missing segment or a non-mapping
// intermediate value short-circuits to (nil, false). The empty path
// returns the mapping itself, by reference.
func Lookup(m map[string]any, path string) (any, bool) {
	if path == "" {
		return m, true
	}
	segments := strings.Split(path, ".")
	current := m
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		child, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		current = child
	}
	return nil, false
}

// Set assigns value at the dotted path, creating an empty mapping at every
// intermediate segment that does not already hold one. An intermediate
// segment occupied by a non-mapping value is replaced, so a Set followed by
// a Lookup of the same path always yields the assigned value.
// It returns the root mapping, allocating it when m is nil.
func Set(m map[string]any, path string, value any) map[string]any {
	if m == nil {
		m = make(map[string]any)
	}
	if path == "" {
		return m
	}
	segments := strings.Split(path, ".")
	current := m
	for _, segment := range segments[:len(segments)-1] {
		child, ok := current[segment].(map[string]any)
		if !ok {
			child = make(map[string]any)
			current[segment] = child
		}
		current = child
	}
	current[segments[len(segments)-1]] = value
	return m
}

// Delete removes the value at the dotted path.
// It returns false when any intermediate segment is absent or does not hold
// a mapping, and reports whether the leaf was actually present.
func Delete(m map[string]any, path string) bool {
	if m == nil || path == "" {
		return false
	}
	segments := strings.Split(path, ".")
	current := m
	for _, segment := range segments[:len(segments)-1] {
		value, ok := current[segment]
		if !ok {
			return false
		}
		child, ok := value.(map[string]any)
		if !ok {
			return false
		}
		current = child
	}
	leaf := segments[len(segments)-1]
	if _, ok := current[leaf]; !ok {
		return false
	}
	delete(current, leaf)
	return true
}

// Merge copies every top-level key of src into dst, later values winning
// wholesale per key. Nested mappings under a colliding key are replaced,
// not merged recursively. It returns dst, allocating it when nil.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
