package extract

import (
	"regexp"
	"strings"
)

// labelPatterns match "label: value" pairs for field labels that occur in
// intake forms and assessment reports. Dutch labels first, since most source
// documents are Dutch.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(naam|name)\s*:\s*([^\r\n]{2,120})`),
	regexp.MustCompile(`(?i)(geboortedatum|date of birth)\s*:\s*([^\r\n]{2,40})`),
	regexp.MustCompile(`(?i)(functie|function|beroep)\s*:\s*([^\r\n]{2,120})`),
	regexp.MustCompile(`(?i)(werkgever|organisatie|organization|employer)\s*:\s*([^\r\n]{2,120})`),
	regexp.MustCompile(`(?i)(datum|date)\s*:\s*([^\r\n]{2,40})`),
	regexp.MustCompile(`(?i)(eerste ziektedag|first sick day)\s*:\s*([^\r\n]{2,40})`),
	regexp.MustCompile(`(?i)(telefoon|phone)\s*:\s*([^\r\n]{2,40})`),
	regexp.MustCompile(`(?i)(e-?mail)\s*:\s*([^\r\n]{2,120})`),
}

// extractLabeledFields recovers a minimal "label: value" skeleton from a raw
// decode of the bytes. Last-resort strategy for documents with no recoverable
// prose at all.
func extractLabeledFields(data []byte) string {
	raw := string(data)
	var lines []string
	for _, re := range labelPatterns {
		for _, m := range re.FindAllStringSubmatch(raw, -1) {
			label := strings.TrimSpace(m[1])
			value := strings.TrimSpace(m[2])
			if value == "" {
				continue
			}
			lines = append(lines, label+": "+value)
		}
	}
	return strings.Join(lines, "\n")
}
