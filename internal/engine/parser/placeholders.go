package parser

import (
	"regexp"
	"sort"
)

var placeholderPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// ExtractPlaceholders returns the distinct bracketed tokens of body, sorted.
// Tokens are returned verbatim, brackets included.
func ExtractPlaceholders(body string) []string {
	matches := placeholderPattern.FindAllString(body, -1)
	seen := make(map[string]struct{}, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		tokens = append(tokens, m)
	}
	sort.Strings(tokens)
	return tokens
}
