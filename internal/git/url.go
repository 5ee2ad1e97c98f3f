package git

import (
	"net/url"
	"regexp"
	"strings"

	giturls "github.com/whilp/git-urls"
)

var (
	// git@github.com:owner/repo.git, github.com:owner/repo.git
	githubSCPRE = regexp.MustCompile(`^(?:git@)?github\.com:([^/]+)/([^/]+)\.git$`)
	// https://github.com/owner/repo.git, ssh://git@github.com/owner/repo.git
	githubURLRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://(?:git@)?github\.com/([^/]+)/([^/]+)\.git$`)
)

// ParseGitHubURL extracts owner and repo from a GitHub remote URL.
// Only whole-string matches of the scp-like and scheme forms ending in .git are accepted.
func ParseGitHubURL(remote string) (owner, repo string, ok bool) {
	for _, re := range []*regexp.Regexp{githubSCPRE, githubURLRE} {
		if m := re.FindStringSubmatch(remote); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}

// GitHubURLsFor derives the canonical clone and browse URLs for a GitHub remote.
func GitHubURLsFor(remote string) (GitHubURLs, bool) {
	owner, repo, ok := ParseGitHubURL(remote)
	if !ok {
		return GitHubURLs{}, false
	}
	path := owner + "/" + repo
	return GitHubURLs{
		PublicClone: "git://github.com/" + path + ".git",
		DevClone:    "ssh://git@github.com/" + path + ".git",
		Browse:      "http://github.com/" + path,
	}, true
}

// WebURL derives an https browse URL for any remote with a host.
// git@gitlab.com:org/repo.git -> https://gitlab.com/org/repo
func WebURL(remote string) (string, bool) {
	u, err := giturls.Parse(remote)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	path := strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), ".git")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "", false
	}
	return (&url.URL{Scheme: "https", Host: u.Hostname(), Path: "/" + path}).String(), true
}
