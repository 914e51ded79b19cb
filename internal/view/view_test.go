package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/pkg/api"
)

func TestToCardHref(t *testing.T) {
	t.Run("explicit href wins", func(t *testing.T) {
		c := ToCard(api.Project{ID: "a", Href: "https://example.com"})
		assert.Equal(t, "https://example.com", c.Href)
	})
	t.Run("id builds detail link", func(t *testing.T) {
		c := ToCard(api.Project{ID: "poster series"})
		assert.Equal(t, "projects/poster%20series/", c.Href)
	})
	t.Run("neither yields placeholder link", func(t *testing.T) {
		c := ToCard(api.Project{})
		assert.Equal(t, "#", c.Href)
	})
}

func TestToCardThumbnailResolution(t *testing.T) {
	t.Run("card override wins over hero", func(t *testing.T) {
		c := ToCard(api.Project{
			Card: &api.CardMedia{Image: "card.png", Alt: "card alt"},
			Hero: &api.Hero{Image: "hero.png"},
		})
		assert.Equal(t, "card.png", c.Thumb)
		assert.Equal(t, "card alt", c.ThumbAlt)
		assert.Empty(t, c.Placeholder)
	})
	t.Run("card override without alt inherits hero alt", func(t *testing.T) {
		c := ToCard(api.Project{
			Card: &api.CardMedia{Image: "card.png"},
			Hero: &api.Hero{Image: "hero.png", Alt: "hero alt"},
		})
		assert.Equal(t, "card.png", c.Thumb)
		assert.Equal(t, "hero alt", c.ThumbAlt)
	})
	t.Run("hero fallback", func(t *testing.T) {
		c := ToCard(api.Project{Hero: &api.Hero{Image: "hero.png", Alt: "h"}})
		assert.Equal(t, "hero.png", c.Thumb)
		assert.Equal(t, "h", c.ThumbAlt)
	})
	t.Run("hero src only, via catalog", func(t *testing.T) {
		// End to end over the normalizer: only hero.src set resolves as
		// the card thumbnail.
		c := catalog.Normalize([]map[string]any{
			{"id": "a", "hero": map[string]any{"src": "hero-src.png"}},
		}, catalog.Options{})
		card := ToCard(c.Projects[0])
		assert.Equal(t, "hero-src.png", card.Thumb)
	})
	t.Run("no image yields textual placeholder", func(t *testing.T) {
		c := ToCard(api.Project{Title: "X"})
		assert.Empty(t, c.Thumb)
		assert.Equal(t, ThumbPlaceholder, c.Placeholder)
	})
}

func TestToCardAriaLabel(t *testing.T) {
	assert.Equal(t, "custom", ToCard(api.Project{Title: "T", AriaLabel: "custom"}).AriaLabel)
	assert.Equal(t, "T", ToCard(api.Project{Title: "T"}).AriaLabel)
}

func TestToDetailNotFound(t *testing.T) {
	d, err := ToDetail(nil)
	require.NoError(t, err)
	assert.False(t, d.Found)
	assert.Empty(t, d.Blocks)
}

func TestToDetailSectionsOmitIndependently(t *testing.T) {
	d, err := ToDetail(&api.Project{ID: "a", Title: "Bare"})
	require.NoError(t, err)
	assert.True(t, d.Found)
	assert.Empty(t, d.Meta)
	assert.Empty(t, d.Summary)
	assert.Nil(t, d.Hero)
	assert.Nil(t, d.Details)
	assert.Nil(t, d.Blocks)
	assert.Nil(t, d.Links, "no links means no links section at all")
}

func TestToDetailMetaLine(t *testing.T) {
	t.Run("deck wins", func(t *testing.T) {
		d, err := ToDetail(&api.Project{Deck: "Identity / 2024", Tags: []string{"a", "b"}})
		require.NoError(t, err)
		assert.Equal(t, "Identity / 2024", d.Meta)
	})
	t.Run("tags fallback", func(t *testing.T) {
		d, err := ToDetail(&api.Project{Tags: []string{"print", "web"}})
		require.NoError(t, err)
		assert.Equal(t, "print / web", d.Meta)
	})
}

func TestToDetailDetailsJoin(t *testing.T) {
	d, err := ToDetail(&api.Project{Details: []api.DetailEntry{
		{Label: "Role", Values: []string{"Design", "Direction"}},
	}})
	require.NoError(t, err)
	require.Len(t, d.Details, 1)
	assert.Equal(t, "Design · Direction", d.Details[0].Value)
}

func TestToDetailBlocks(t *testing.T) {
	d, err := ToDetail(&api.Project{Content: []api.ContentBlock{
		{Kind: api.BlockText, Body: "Some **bold** text.", Dialect: api.DialectMarkdown},
		{Kind: api.BlockImage, Src: "a.png", Caption: "the *board*", Dialect: api.DialectMarkdown},
	}})
	require.NoError(t, err)
	require.Len(t, d.Blocks, 2)
	assert.Contains(t, string(d.Blocks[0].BodyHTML), "<strong>bold</strong>")
	assert.Equal(t, "a.png", d.Blocks[1].Src)
	assert.Contains(t, string(d.Blocks[1].Caption), "<em>board</em>")
}

func TestToDetailLinks(t *testing.T) {
	d, err := ToDetail(&api.Project{Links: []api.Link{
		{URL: "https://example.com"},
		{URL: "HTTP://EXAMPLE.ORG", Label: "Mirror"},
		{URL: "./local.pdf", Label: "Deck"},
	}})
	require.NoError(t, err)
	require.Len(t, d.Links, 3)
	assert.Equal(t, "https://example.com", d.Links[0].Label, "label falls back to url")
	assert.True(t, d.Links[0].External)
	assert.True(t, d.Links[1].External, "scheme match is case-insensitive")
	assert.False(t, d.Links[2].External)
}

func TestCardAndDetailAgree(t *testing.T) {
	// The two surfaces must agree on title and tags for the same record.
	c := catalog.Normalize([]map[string]any{
		{"id": "a", "title": "Shared", "tags": []any{"x", "y"}},
	}, catalog.Options{})
	p := c.Projects[0]

	card := ToCard(p)
	detail, err := ToDetail(&p)
	require.NoError(t, err)

	assert.Equal(t, card.Title, detail.Title)
	assert.Equal(t, card.Tags, p.Tags)
	assert.Equal(t, "x / y", detail.Meta)
}
