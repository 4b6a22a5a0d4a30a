package api

import "strings"

// ParseBINs flattens raw `bin` query values into a clean token list. Each
// value may itself be comma-separated; tokens are trimmed, empties dropped,
// and duplicates removed preserving first-seen order. No validation happens
// here: invalid tokens still get a per-token result downstream.
func ParseBINs(values []string) []string {
	seen := make(map[string]struct{})
	var bins []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			token := strings.TrimSpace(part)
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			bins = append(bins, token)
		}
	}
	return bins
}
