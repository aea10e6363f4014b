package sanitize

import (
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Text collapses runs of whitespace and trims the result
func Text(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// Lines keeps line breaks but trims every line and drops empty ones
func Lines(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = Text(line); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
