package catalog

import (
	"sort"
	"strings"

	"github.com/karolinacerm/profolio/pkg/api"
)

// PlaceholderTitle is displayed when a record carries no usable title.
const PlaceholderTitle = "Untitled"

// Options tune normalization for the current render target.
type Options struct {
	// Dialect stamps text-bearing blocks; plain disables markdown
	// interpretation downstream.
	Dialect api.Dialect
}

// Catalog is an immutable, ordered collection of normalized projects.
type Catalog struct {
	Projects []api.Project
}

// Normalize collapses raw records into the canonical shape, preserving
// input order. Records are never rejected; missing or misshapen fields
// coerce to their zero value and the affected section is later omitted.
func Normalize(records []map[string]any, opts Options) Catalog {
	if opts.Dialect == "" {
		opts.Dialect = api.DialectMarkdown
	}
	out := make([]api.Project, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		out = append(out, normalizeRecord(rec, opts))
	}
	return Catalog{Projects: out}
}

// Find returns the project with the given id, or nil on a lookup miss.
func (c Catalog) Find(id string) *api.Project {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i]
		}
	}
	return nil
}

// Len reports the number of projects in the catalogue.
func (c Catalog) Len() int { return len(c.Projects) }

func normalizeRecord(raw map[string]any, opts Options) api.Project {
	p := api.Project{
		ID:        stringField(raw, "id"),
		Title:     stringField(raw, "title"),
		Summary:   stringField(raw, "summary"),
		Deck:      stringField(raw, "deck"),
		Href:      stringField(raw, "href"),
		AriaLabel: stringField(raw, "ariaLabel", "aria_label"),
		Tags:      stringList(raw["tags"]),
	}
	if p.Title == "" {
		p.Title = PlaceholderTitle
	}

	if hero := mapField(raw, "hero"); hero != nil {
		if img := stringField(hero, heroImageKeys...); img != "" {
			p.Hero = &api.Hero{
				Image:   img,
				Alt:     stringField(hero, "alt"),
				Caption: stringField(hero, "caption"),
			}
		}
	}

	if img, alt := cardOverride(raw); img != "" {
		p.Card = &api.CardMedia{Image: img, Alt: alt}
	}

	p.Details = normalizeDetails(raw)
	p.Content = normalizeContent(listField(raw, "content"), opts.Dialect)
	p.Links = normalizeLinks(listField(raw, "links"))
	return p
}

// cardOverride resolves the explicit card thumbnail: card.thumb, then
// card.image, then the top-level thumbnail key. Hero fallback happens at
// card render time, not here, so the override stays distinguishable.
func cardOverride(raw map[string]any) (img, alt string) {
	if card := mapField(raw, "card"); card != nil {
		img = stringField(card, cardImageKeys...)
		alt = stringField(card, "alt")
	}
	if img == "" {
		img = stringField(raw, "thumbnail")
	}
	return img, alt
}

// normalizeDetails accepts either a mapping of label to value or a
// sequence of {label, value} pairs. The sequence form preserves author
// order; the mapping form is sorted by label since decoded Go maps carry
// no order and output must stay deterministic.
func normalizeDetails(raw map[string]any) []api.DetailEntry {
	v, ok := firstPresent(raw, "details", "meta")
	if !ok {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		labels := make([]string, 0, len(t))
		for label := range t {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		var out []api.DetailEntry
		for _, label := range labels {
			if entry, ok := detailEntry(label, t[label]); ok {
				out = append(out, entry)
			}
		}
		return out
	case []any:
		var out []api.DetailEntry
		for _, item := range t {
			pair, ok := item.(map[string]any)
			if !ok {
				continue
			}
			label := stringField(pair, "label", "name")
			if label == "" {
				continue
			}
			value, ok := firstPresent(pair, "value", "values")
			if !ok {
				continue
			}
			if entry, ok := detailEntry(label, value); ok {
				out = append(out, entry)
			}
		}
		return out
	default:
		return nil
	}
}

// detailEntry filters out entries whose value is an empty sequence or a
// falsy scalar; those never reach the definition list.
func detailEntry(label string, value any) (api.DetailEntry, bool) {
	var values []string
	if list, ok := value.([]any); ok {
		values = stringList(list)
	} else if s := strings.TrimSpace(coerceScalar(value)); s != "" {
		values = []string{s}
	}
	if len(values) == 0 {
		return api.DetailEntry{}, false
	}
	return api.DetailEntry{Label: label, Values: values}, true
}

func normalizeContent(list []any, dialect api.Dialect) []api.ContentBlock {
	var out []api.ContentBlock
	for _, item := range list {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		blk := Classify(raw)
		if blk == nil {
			continue
		}
		blk.Dialect = dialect
		out = append(out, *blk)
	}
	return out
}

func normalizeLinks(list []any) []api.Link {
	var out []api.Link
	for _, item := range list {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		url := stringField(raw, "url")
		if url == "" {
			continue
		}
		out = append(out, api.Link{URL: url, Label: stringField(raw, "label")})
	}
	return out
}
