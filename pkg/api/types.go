package api

// Project is one catalogue entry after normalization. Raw records are
// loosely-typed maps; the catalog package is responsible for collapsing
// the accepted field aliases into this shape.
type Project struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Summary   string         `json:"summary,omitempty"`
	Deck      string         `json:"deck,omitempty"`
	Href      string         `json:"href,omitempty"`
	AriaLabel string         `json:"aria_label,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Hero      *Hero          `json:"hero,omitempty"`
	Card      *CardMedia     `json:"card,omitempty"`
	Details   []DetailEntry  `json:"details,omitempty"`
	Content   []ContentBlock `json:"content,omitempty"`
	Links     []Link         `json:"links,omitempty"`
}

// Hero is the lead image of a project detail page.
type Hero struct {
	Image   string `json:"image"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// CardMedia overrides the hero image on summary cards.
type CardMedia struct {
	Image string `json:"image"`
	Alt   string `json:"alt,omitempty"`
}

// DetailEntry is one row of the definition list on the detail page.
// Values are joined for single-line display at render time.
type DetailEntry struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Link is an outbound reference. Label falls back to the URL when empty.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// BlockKind tags a ContentBlock variant.
type BlockKind string

const (
	BlockImage     BlockKind = "image"
	BlockText      BlockKind = "text"
	BlockTextImage BlockKind = "textimage"
)

// Dialect selects how text bodies are interpreted at render time.
type Dialect string

const (
	DialectMarkdown Dialect = "markdown"
	DialectPlain    Dialect = "plain"
)

// ContentBlock is one renderable unit of a project body. Classification
// happens once at load time; renderers switch on Kind and never inspect
// raw maps. A block that resolves neither text nor an image source is
// dropped during classification and never reaches a renderer.
type ContentBlock struct {
	Kind    BlockKind `json:"kind"`
	Body    string    `json:"body,omitempty"`
	Dialect Dialect   `json:"dialect,omitempty"`
	Src     string    `json:"src,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Caption string    `json:"caption,omitempty"`
}

// HasText reports whether the block carries renderable text.
func (b ContentBlock) HasText() bool { return b.Body != "" }

// HasImage reports whether the block carries a resolvable image source.
func (b ContentBlock) HasImage() bool { return b.Src != "" }
