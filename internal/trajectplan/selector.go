package trajectplan

import (
	"sort"
	"strings"

	"trajectplan-backend/internal/documents"
)

// Canonical source categories. Uploaded documents carry free-form labels;
// matching is done through the synonym lists below.
const (
	CategoryIntake     = "intake"
	CategoryAssessment = "assessment"
	CategoryCapability = "capability"
)

// categorySynonyms maps a canonical category to the label variants seen in
// practice. A document belongs to a category when its normalized label
// contains any of the variants.
var categorySynonyms = map[string][]string{
	CategoryIntake: {
		"intake",
		"intakeformulier",
		"intakegesprek",
	},
	CategoryAssessment: {
		"assessment",
		"arbeidsdeskundig",
		"ad rapport",
		"ad-rapport",
		"probleemanalyse",
	},
	CategoryCapability: {
		"capability",
		"belastbaarheid",
		"fml",
		"izp",
		"inzetbaarheidsprofiel",
		"functionele mogelijkheden",
	},
}

// priorityTable ranks canonical categories; lower rank wins. Labels matching
// no category sort last.
var priorityTable = map[string]int{
	CategoryIntake:     0,
	CategoryAssessment: 1,
	CategoryCapability: 2,
}

const unrankedPriority = 1 << 10

// Select filters and orders a subject's documents for one section.
//
// When wantedCategories is non-empty, only documents whose label matches a
// synonym of one of the wanted canonical categories are kept. The result is
// sorted by category rank ascending, then uploadedAt descending, so the first
// element is the preferred source. An empty result is a valid "no source"
// answer, never an error.
func Select(docs []documents.Document, wantedCategories []string) []documents.Document {
	out := make([]documents.Document, 0, len(docs))
	for _, doc := range docs {
		if len(wantedCategories) > 0 && !matchesAny(doc.Category, wantedCategories) {
			continue
		}
		out = append(out, doc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := categoryRank(out[i].Category), categoryRank(out[j].Category)
		if ri != rj {
			return ri < rj
		}
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out
}

// categoryRank resolves a free-form label to its priority rank. When the
// label matches synonyms of several categories, the best (lowest) rank wins.
func categoryRank(label string) int {
	normalized := normalizeLabel(label)
	rank := unrankedPriority
	for canonical, synonyms := range categorySynonyms {
		for _, syn := range synonyms {
			if strings.Contains(normalized, syn) {
				if r := priorityTable[canonical]; r < rank {
					rank = r
				}
				break
			}
		}
	}
	return rank
}

func matchesAny(label string, wanted []string) bool {
	normalized := normalizeLabel(label)
	for _, category := range wanted {
		for _, syn := range categorySynonyms[category] {
			if strings.Contains(normalized, syn) {
				return true
			}
		}
	}
	return false
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
