// Package view projects normalized projects into the two render surfaces:
// summary cards and the detail layout. Projections are pure; anything the
// template would have to decide (fallbacks, omit-or-render) is decided here.
package view

import (
	"fmt"
	"net/url"

	"github.com/karolinacerm/profolio/pkg/api"
)

// ThumbPlaceholder is shown in place of a missing card image. It stays a
// visible, intentional placeholder, never a broken image element.
const ThumbPlaceholder = "4:3"

// CardView is everything a summary card needs. Thumb may be empty, in
// which case Placeholder is rendered instead.
type CardView struct {
	Href        string   `json:"href"`
	Thumb       string   `json:"thumb,omitempty"`
	ThumbAlt    string   `json:"thumb_alt,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AriaLabel   string   `json:"aria_label"`
}

// ToCard projects a project onto its summary card.
func ToCard(p api.Project) CardView {
	c := CardView{
		Href:    p.Href,
		Title:   p.Title,
		Summary: p.Summary,
		Tags:    p.Tags,
	}
	if c.Href == "" {
		if p.ID != "" {
			c.Href = fmt.Sprintf("projects/%s/", url.PathEscape(p.ID))
		} else {
			// Non-navigating placeholder link.
			c.Href = "#"
		}
	}

	// Thumbnail resolution: explicit card override first, then the hero
	// image (which already collapsed image-then-src). The alt text chains
	// independently, so a card override without alt inherits the hero's.
	switch {
	case p.Card != nil:
		c.Thumb = p.Card.Image
		c.ThumbAlt = p.Card.Alt
		if c.ThumbAlt == "" && p.Hero != nil {
			c.ThumbAlt = p.Hero.Alt
		}
	case p.Hero != nil:
		c.Thumb = p.Hero.Image
		c.ThumbAlt = p.Hero.Alt
	}
	if c.Thumb == "" {
		c.Placeholder = ThumbPlaceholder
	}

	c.AriaLabel = p.AriaLabel
	if c.AriaLabel == "" {
		c.AriaLabel = c.Title
	}
	return c
}

// ToCards projects the whole catalogue, preserving order.
func ToCards(projects []api.Project) []CardView {
	out := make([]CardView, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToCard(p))
	}
	return out
}
