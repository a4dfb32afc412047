package trajectplan

import "strings"

// Chunk splits text into pieces of at most maxLen characters, accumulating
// whole lines greedily. A single line longer than maxLen is kept intact in
// its own chunk. Chunks are trimmed; joining them with newlines reconstructs
// the text up to per-chunk trim whitespace.
func Chunk(text string, maxLen int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if maxLen < 1 {
		maxLen = 1
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}
		current.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		needed := len(line)
		if current.Len() > 0 {
			needed += current.Len() + 1
		}
		if current.Len() > 0 && needed > maxLen {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	flush()

	return chunks
}
