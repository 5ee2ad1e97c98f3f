package utils

import (
	"github.com/bmatcuk/doublestar/v4"
)

// MatchPattern checks if a slash separated identifier matches a glob pattern.
// An empty pattern matches everything.
func MatchPattern(pattern, id string) bool {
	if pattern == "" {
		return true
	}
	match, _ := doublestar.Match(pattern, id)
	return match
}
