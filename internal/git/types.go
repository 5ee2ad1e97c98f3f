// Package git reads repository metadata straight from a .git directory.
package git

// Hash represents a Git commit hash.
type Hash string

// String returns the hash as a string.
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 7 characters of the hash.
func (h Hash) Short() string {
	if len(h) > 7 {
		return string(h[:7])
	}
	return string(h)
}

// GitHubURLs holds the canonical URLs derived from a GitHub remote.
type GitHubURLs struct {
	PublicClone string // git://github.com/<owner>/<repo>.git
	DevClone    string // ssh://git@github.com/<owner>/<repo>.git
	Browse      string // http://github.com/<owner>/<repo>
}

// scanState is the position of the config scanner relative to the wanted section.
type scanState int

const (
	seekingSection scanState = iota
	insideSection
	done
)
