package utils

import (
	"strings"
)

// TrimOutputToString converts file or command output to a trimmed string.
func TrimOutputToString(out []byte) string {
	return strings.TrimSpace(string(out))
}
