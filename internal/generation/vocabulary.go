package generation

import (
	"strings"
)

// Vocabulary is a closed set of approved keywords produced by a free-text
// extraction stage. A later schema-bound formatting stage may only use words
// from this set; anything else is dropped by Filter rather than trusted to
// provider compliance.
type Vocabulary map[string]struct{}

func NewVocabulary(words []string) Vocabulary {
	v := make(Vocabulary, len(words))
	for _, w := range words {
		key := normalizeKeyword(w)
		if key != "" {
			v[key] = struct{}{}
		}
	}
	return v
}

func (v Vocabulary) Contains(word string) bool {
	_, ok := v[normalizeKeyword(word)]
	return ok
}

// Filter splits candidate keywords into those present in the vocabulary and
// those that are not. Matching is case-insensitive; the original spelling of
// kept keywords is preserved.
func (v Vocabulary) Filter(words []string) (kept, dropped []string) {
	for _, w := range words {
		if v.Contains(w) {
			kept = append(kept, w)
		} else {
			dropped = append(dropped, w)
		}
	}
	return kept, dropped
}

// ParseKeywords extracts keywords from the free-text output of an extraction
// call. Accepts newline- or comma-separated lists, with optional list
// markers.
func ParseKeywords(raw string) []string {
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		for _, part := range strings.Split(line, ",") {
			word := strings.TrimSpace(part)
			word = strings.TrimLeft(word, "-*• \t")
			word = strings.TrimSpace(word)
			if word != "" {
				words = append(words, word)
			}
		}
	}
	return words
}

func normalizeKeyword(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
