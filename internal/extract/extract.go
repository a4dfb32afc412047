package extract

import "strings"

// DefaultMinUsable is the usable-text threshold applied when a caller passes 0.
const DefaultMinUsable = 20

// Extract pulls best-effort plain text out of raw document bytes.
//
// Strategies are tried in order, each only when the previous one produced
// text shorter than minUsable characters: structured PDF parse, printable-run
// scan over a UTF-8 decode, printable-run scan over a Latin-1 decode, and a
// labeled-field skeleton as last resort. Extract never fails; it returns ""
// when no strategy clears the threshold, and callers skip the document.
func Extract(data []byte, minUsable int) string {
	text, _ := ExtractDetailed(data, minUsable)
	return text
}

// ExtractDetailed is Extract plus the name of the strategy that produced the
// text, for logging.
func ExtractDetailed(data []byte, minUsable int) (string, string) {
	if minUsable <= 0 {
		minUsable = DefaultMinUsable
	}
	if len(data) == 0 {
		return "", ""
	}

	for _, s := range strategies {
		text := strings.TrimSpace(s.fn(data))
		if len(text) >= minUsable {
			return text, s.name
		}
	}
	return "", ""
}

type strategy struct {
	name string
	fn   func([]byte) string
}

var strategies = []strategy{
	{name: "pdf", fn: extractPDF},
	{name: "utf8-scan", fn: scanUTF8},
	{name: "latin1-scan", fn: scanLatin1},
	{name: "labeled-fields", fn: extractLabeledFields},
}
