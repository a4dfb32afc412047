package trajectplan

import (
	"regexp"
	"strings"
)

var (
	// Matches the special-bracket source annotations the completion provider
	// appends, e.g. 【4:13†bron.pdf】.
	cjkCitationRe = regexp.MustCompile(`【[^】]*】`)
	// Matches bracketed numeric-range-plus-filename markers, e.g. [4:13†x.pdf].
	bracketCitationRe = regexp.MustCompile(`\[\d+(:\d+)?†[^\]]*\]`)
	multiSpaceRe      = regexp.MustCompile(` {2,}`)
)

// Strip removes inline citation markers from generated text, collapses runs
// of spaces, and trims the result. Newlines are preserved; paragraph breaks
// matter to the rendered report.
func Strip(text string) string {
	text = cjkCitationRe.ReplaceAllString(text, "")
	text = bracketCitationRe.ReplaceAllString(text, "")
	text = multiSpaceRe.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// StripFields applies Strip to every string value in a field map, in place.
func StripFields(fields map[string]any) {
	for name, value := range fields {
		if str, ok := value.(string); ok {
			fields[name] = Strip(str)
		}
	}
}
