package git

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var urlKeyRE = regexp.MustCompile(`^url\s*=\s*(\S.*?)\s*$`)

// scanRemoteURL finds the url key of a [remote "<name>"] section.
// Only the first such section is considered; the first url key inside it wins.
func scanRemoteURL(r io.Reader, remote string) (string, bool, error) {
	header := fmt.Sprintf("[remote %q]", remote)
	state := seekingSection
	url := ""
	found := false

	sc := bufio.NewScanner(r)
	for state != done && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch state {
		case seekingSection:
			if line == header {
				state = insideSection
			}
		case insideSection:
			if strings.HasPrefix(line, "[") {
				state = done
				continue
			}
			if m := urlKeyRE.FindStringSubmatch(line); m != nil {
				url, found = m[1], true
				state = done
			}
		}
	}
	if err := sc.Err(); err != nil {
		return "", false, err
	}
	return url, found, nil
}
