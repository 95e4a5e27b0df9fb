package models

import "strings"

// MediaRef is a stored media reference: either an absolute URL or a path
// relative to the configured media base.
type MediaRef string

// IsAbsolute reports whether the reference already carries a scheme.
func (r MediaRef) IsAbsolute() bool {
	s := string(r)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Resolve turns the reference into a fetchable URL. Absolute references are
// used verbatim, never re-prefixed; relative ones are joined to base.
func (r MediaRef) Resolve(base string) string {
	if r == "" {
		return ""
	}
	if r.IsAbsolute() {
		return string(r)
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(string(r), "/")
}
