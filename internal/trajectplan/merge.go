package trajectplan

import (
	"sort"
	"strings"
)

// Merge reconciles field maps given in descending priority (index 0 wins).
// For each field the first filled value is kept; a string is filled when it
// is non-empty after trimming, any other non-nil value counts as filled.
// Fields absent or unfilled in every source are omitted.
func Merge(sources ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, source := range sources {
		for name, value := range source {
			if _, taken := out[name]; taken {
				continue
			}
			if isFilled(value) {
				out[name] = value
			}
		}
	}
	return out
}

// FilledNames returns the sorted list of field names present in the map.
func FilledNames(fields map[string]any) []string {
	out := make([]string, 0, len(fields))
	for name := range fields {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func isFilled(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return true
	}
}
