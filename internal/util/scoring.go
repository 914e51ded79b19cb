package util

import "github.com/sahilm/fuzzy"

// MatchIndexes returns the indexes of candidates matching the input,
// best score first. An empty input matches everything in original order.
func MatchIndexes(input string, candidates []string) []int {
	if input == "" {
		out := make([]int, len(candidates))
		for i := range candidates {
			out[i] = i
		}
		return out
	}
	matches := fuzzy.Find(input, candidates)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

// Closest returns the top N matches for the input among the candidates,
// used for "did you mean" suggestions on a lookup miss.
func Closest(input string, candidates []string, n int) []string {
	if input == "" {
		return nil
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}
	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}
