// Package utils holds path helpers and error wrappers shared across synfs packages.
package utils

import (
	"regexp"
	"strings"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(path string) string {
	return hasTrailingSlash.ReplaceAllString(path, "")
}

// RemoveLeadingSlash removes leading slash, if any
func RemoveLeadingSlash(path string) string {
	return hasLeadingSlash.ReplaceAllString(path, "")
}

// SplitPath breaks a relative path into its segments. Leading and trailing
// slashes are ignored and empty segments are dropped, so "", "/", and "//"
// all yield no segments.
func SplitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// JoinPath joins segments into a relative path, skipping empty segments.
func JoinPath(segments ...string) string {
	nonEmpty := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			nonEmpty = append(nonEmpty, segment)
		}
	}
	return strings.Join(nonEmpty, "/")
}

// LastSegment returns the final segment of path, or "" when path has none.
func LastSegment(path string) string {
	segments := SplitPath(path)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// Ptr returns a pointer to the given value of any type
func Ptr[T any](value T) *T {
	return &value
}
