package view

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/karolinacerm/profolio/internal/render"
	"github.com/karolinacerm/profolio/pkg/api"
)

var externalURL = regexp.MustCompile(`(?i)^https?://`)

// DetailView is the full detail layout. Every optional section is either
// populated or zero; templates render a section if and only if its backing
// field is non-zero, so absent data never leaves an empty container.
type DetailView struct {
	Found   bool        `json:"found"`
	ID      string      `json:"id,omitempty"`
	Title   string      `json:"title,omitempty"`
	Meta    string      `json:"meta,omitempty"`
	Summary string      `json:"summary,omitempty"`
	Hero    *HeroView   `json:"hero,omitempty"`
	Details []DetailRow `json:"details,omitempty"`
	Blocks  []BlockView `json:"blocks,omitempty"`
	Links   []LinkView  `json:"links,omitempty"`
}

type HeroView struct {
	Image   string `json:"image"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// DetailRow is one definition-list row; multi-valued entries are joined
// with a middle dot for single-line display.
type DetailRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type BlockView struct {
	Kind     api.BlockKind `json:"kind"`
	BodyHTML template.HTML `json:"body_html,omitempty"`
	Src      string        `json:"src,omitempty"`
	Alt      string        `json:"alt,omitempty"`
	Caption  template.HTML `json:"caption,omitempty"`
}

type LinkView struct {
	URL      string `json:"url"`
	Label    string `json:"label"`
	External bool   `json:"external"`
}

// ToDetail projects a project onto the detail layout. A nil project (a
// lookup miss or a failed load) yields the explicit not-found state.
func ToDetail(p *api.Project) (DetailView, error) {
	if p == nil {
		return DetailView{}, nil
	}

	d := DetailView{
		Found:   true,
		ID:      p.ID,
		Title:   p.Title,
		Summary: p.Summary,
	}

	// Meta line: explicit deck, else the tags. Absent both, the section
	// is omitted.
	d.Meta = p.Deck
	if d.Meta == "" && len(p.Tags) > 0 {
		d.Meta = strings.Join(p.Tags, " / ")
	}

	if p.Hero != nil {
		d.Hero = &HeroView{Image: p.Hero.Image, Alt: p.Hero.Alt, Caption: p.Hero.Caption}
	}

	for _, e := range p.Details {
		d.Details = append(d.Details, DetailRow{
			Label: e.Label,
			Value: strings.Join(e.Values, " · "),
		})
	}

	for _, blk := range p.Content {
		bv, err := toBlockView(blk)
		if err != nil {
			return DetailView{}, err
		}
		d.Blocks = append(d.Blocks, bv)
	}

	for _, l := range p.Links {
		label := l.Label
		if label == "" {
			label = l.URL
		}
		d.Links = append(d.Links, LinkView{
			URL:      l.URL,
			Label:    label,
			External: externalURL.MatchString(l.URL),
		})
	}

	return d, nil
}

func toBlockView(blk api.ContentBlock) (BlockView, error) {
	bv := BlockView{Kind: blk.Kind, Src: blk.Src, Alt: blk.Alt}
	if blk.HasText() {
		body, err := render.HTML(blk.Body, blk.Dialect)
		if err != nil {
			return BlockView{}, err
		}
		bv.BodyHTML = body
	}
	if blk.Caption != "" {
		caption, err := render.InlineHTML(blk.Caption, blk.Dialect)
		if err != nil {
			return BlockView{}, err
		}
		bv.Caption = caption
	}
	return bv, nil
}
