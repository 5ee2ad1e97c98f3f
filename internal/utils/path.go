package utils

import (
	"path/filepath"
	"strings"

	"github.com/rahulagarwal0605/pomgen/internal/constants"
)

// AbsPath returns the absolute path, returning error if conversion fails.
func AbsPath(path string) (string, error) {
	return filepath.Abs(path)
}

// MetaInfDir returns the jar metadata directory for a Maven coordinate.
// Example: MetaInfDir("out", "org.clojure", "clojure") -> "out/META-INF/maven/org.clojure/clojure"
func MetaInfDir(base, groupID, artifactID string) string {
	return filepath.Join(base, filepath.FromSlash(constants.MetaInfMavenDir), groupID, artifactID)
}

// HasPathTraversal reports whether a path segment would escape its parent.
func HasPathTraversal(segment string) bool {
	return segment == ".." || strings.Contains(segment, "../") || strings.Contains(segment, `..\`)
}
