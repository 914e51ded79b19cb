package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// Alias rankings are data, not control flow, so tests can assert on the
// exact precedence and new aliases land in one place.
var (
	// textKeys is the object search order for NormalizeText. Callers
	// depend on "body" winning over the looser synonyms.
	textKeys = []string{"body", "text", "copy", "paragraph", "value"}

	// bodyKeys ranks the accepted aliases for a content block body.
	bodyKeys = []string{"body", "text", "copy", "description", "value", "content"}

	// imageKeys ranks the accepted aliases for a block image source.
	imageKeys = []string{"src", "image"}

	// heroImageKeys ranks the hero image source inside the hero mapping.
	heroImageKeys = []string{"image", "src"}

	// cardImageKeys ranks the card thumbnail inside the card mapping.
	cardImageKeys = []string{"thumb", "image"}
)

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// NormalizeText collapses a free-form value into a single text string.
// Strings pass through, sequences are normalized recursively and joined
// with a blank line, and mappings are searched in textKeys order for the
// first present key. Anything else yields the empty string.
func NormalizeText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := NormalizeText(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n\n")
	case map[string]any:
		for _, k := range textKeys {
			if inner, ok := t[k]; ok {
				return NormalizeText(inner)
			}
		}
		return ""
	default:
		return ""
	}
}

// NormalizeParagraphs splits text on runs of two or more newlines, trims
// each segment and drops empty ones. A single newline does not split.
// Used for the plain dialect, where no markdown interpretation happens.
func NormalizeParagraphs(v any) []string {
	s := strings.ReplaceAll(NormalizeText(v), "\r\n", "\n")
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, seg := range paragraphBreak.Split(s, -1) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// stringField returns the first present, non-empty string among the
// ranked keys. Non-string scalars are coerced; empty results lose.
func stringField(m map[string]any, keys ...string) string {
	if m == nil {
		return ""
	}
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s := strings.TrimSpace(coerceScalar(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstPresent returns the value of the first key present in the mapping,
// matching the presence-wins semantics of the body alias chain.
func firstPresent(m map[string]any, keys ...string) (any, bool) {
	if m == nil {
		return nil, false
	}
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func mapField(m map[string]any, keys ...string) map[string]any {
	if m == nil {
		return nil
	}
	for _, k := range keys {
		if sub, ok := m[k].(map[string]any); ok {
			return sub
		}
	}
	return nil
}

func listField(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	list, _ := m[key].([]any)
	return list
}

// coerceScalar renders a scalar for display. Falsy scalars (empty string,
// zero-value absent types, false) coerce to "" and are dropped upstream.
func coerceScalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		if t == 0 {
			return ""
		}
		return strconv.Itoa(t)
	case int64:
		if t == 0 {
			return ""
		}
		return strconv.FormatInt(t, 10)
	case uint64:
		if t == 0 {
			return ""
		}
		return strconv.FormatUint(t, 10)
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

func stringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := strings.TrimSpace(coerceScalar(item)); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
