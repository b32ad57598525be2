package filter

import (
	"fmt"
	"sort"
	"strings"
)

const (
	KeywordSetAdapterV1 = "adapter-v1"
	KeywordSetDisplayV1 = "display-v1"

	DefaultKeywordSet = KeywordSetDisplayV1
)

// Keywords is an explicit, case-insensitive title vocabulary.
type Keywords []string

// The two vocabularies differ on purpose and are kept as separate versions.
var keywordSets = map[string]Keywords{
	KeywordSetAdapterV1: {
		"data", "ai", "machine learning", "analyst", "scientist", "analytics",
	},
	KeywordSetDisplayV1: {
		"data", "ai", "machine learning", "analyst", "scientist", "analytics",
		"artificial intelligence", "nlp", "neural",
	},
}

// KeywordSet returns a copy of the named vocabulary.
func KeywordSet(name string) (Keywords, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultKeywordSet
	}
	set, ok := keywordSets[name]
	if !ok {
		return nil, fmt.Errorf("unknown keyword set: %s", name)
	}
	return append(Keywords{}, set...), nil
}

// KeywordSetNames lists the shipped vocabularies.
func KeywordSetNames() []string {
	names := make([]string, 0, len(keywordSets))
	for name := range keywordSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseKeywords splits a comma-separated list, dropping blanks and
// case-insensitive duplicates.
func ParseKeywords(raw string) Keywords {
	var out Keywords
	seen := map[string]struct{}{}
	for _, part := range strings.Split(raw, ",") {
		keyword := strings.ToLower(strings.TrimSpace(part))
		if keyword == "" {
			continue
		}
		if _, ok := seen[keyword]; ok {
			continue
		}
		seen[keyword] = struct{}{}
		out = append(out, keyword)
	}
	return out
}

// Resolve picks the explicit list when given, otherwise the named set.
func Resolve(setName string, explicit []string) (Keywords, error) {
	if kw := ParseKeywords(strings.Join(explicit, ",")); len(kw) > 0 {
		return kw, nil
	}
	return KeywordSet(setName)
}
