package source

import "strings"

// LineAt returns the 1-based line of content without its trailing
// newline. It reports false when the line number is out of range.
func LineAt(content string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	rest := content
	for i := 1; ; i++ {
		idx := strings.IndexByte(rest, '\n')
		if i == line {
			if idx < 0 {
				if rest == "" && i > 1 {
					return "", false
				}
				return strings.TrimSuffix(rest, "\r"), true
			}
			return strings.TrimSuffix(rest[:idx], "\r"), true
		}
		if idx < 0 {
			return "", false
		}
		rest = rest[idx+1:]
	}
}
