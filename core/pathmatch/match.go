package pathmatch

import (
	"net/url"
	"strings"
)

// Separator is the path segment delimiter.
const Separator = "/"

// PlaceholderPrefix marks a pattern segment as a named parameter.
const PlaceholderPrefix = ":"

// missing stands in for a pattern position that has no request segment.
// It contains a "/" so it can never be produced by Split.
const missing = "\x00/missing"

// Split breaks a path into segments on "/". Empty segments are kept.
func Split(path string) []string {
	return strings.Split(path, Separator)
}

// IsPlaceholder reports whether a pattern segment binds a parameter.
func IsPlaceholder(segment string) bool {
	return strings.HasPrefix(segment, PlaceholderPrefix)
}

// Name returns the parameter name of a placeholder segment.
// Literal segments return an empty string.
func Name(segment string) string {
	if !IsPlaceholder(segment) {
		return ""
	}
	return segment[len(PlaceholderPrefix):]
}

// Params maps each placeholder in pattern to the path segment at the same
// position. Placeholders beyond the end of path are skipped.
func Params(pattern, path []string) map[string]string {
	params := make(map[string]string)
	for i, segment := range pattern {
		if !IsPlaceholder(segment) || i >= len(path) {
			continue
		}
		params[Name(segment)] = path[i]
	}
	return params
}

// Substitute returns pattern with every placeholder replaced by the path
// segment at the same position. Literal segments pass through unchanged.
func Substitute(pattern, path []string) []string {
	match := make([]string, len(pattern))
	for i, segment := range pattern {
		switch {
		case !IsPlaceholder(segment):
			match[i] = segment
		case i < len(path):
			match[i] = path[i]
		default:
			match[i] = missing
		}
	}
	return match
}

// Equal reports whether a and b have the same length and identical segments.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Match reports whether path satisfies pattern and returns the bound
// parameters. Parameter values are percent-decoded; a value that fails to
// decode is returned as is.
func Match(pattern, path []string) (map[string]string, bool) {
	if len(pattern) != len(path) {
		return nil, false
	}
	if !Equal(Substitute(pattern, path), path) {
		return nil, false
	}

	params := Params(pattern, path)
	for name, value := range params {
		if decoded, err := url.PathUnescape(value); err == nil {
			params[name] = decoded
		}
	}
	return params, true
}

// Query flattens the URL query string into a single value per key.
// When a key repeats, the last occurrence wins.
func Query(u *url.URL) map[string]string {
	query := make(map[string]string)
	if u == nil || u.RawQuery == "" {
		return query
	}
	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		query[key] = values[len(values)-1]
	}
	return query
}
