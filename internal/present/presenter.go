// Package present routes catalogue output to the terminal formatters.
package present

import (
	"io"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/internal/present/format"
	"github.com/karolinacerm/profolio/pkg/api"
)

type Mode int

const (
	ModePlain Mode = iota
	ModeJSON
	ModeNDJSON
	ModeCards
	ModePretty
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
}

// ParseMode parses a string like "plain", "json", "ndjson", "cards", "pretty".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "plain":
		return ModePlain, true
	case "json":
		return ModeJSON, true
	case "ndjson":
		return ModeNDJSON, true
	case "cards":
		return ModeCards, true
	case "pretty":
		return ModePretty, true
	default:
		return ModePlain, false
	}
}

// RenderCatalog renders the project list according to options.
func RenderCatalog(w io.Writer, cat catalog.Catalog, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONCards(w, cat.Projects, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteNDJSONCards(w, cat.Projects)
	case ModeCards:
		return format.WriteTermCards(w, cat.Projects)
	case ModePretty:
		// Pretty list falls back to the card boxes.
		return format.WriteTermCards(w, cat.Projects)
	default:
		return format.WritePlainProjects(w, cat.Projects, opts.Headers)
	}
}

// RenderProject renders a single project detail. A nil project renders
// the not-found state rather than erroring.
func RenderProject(w io.Writer, p *api.Project, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONDetail(w, p, opts.JSONIndent)
	case ModeNDJSON:
		return format.WriteJSONDetail(w, p, false)
	case ModePretty, ModeCards:
		return format.WritePrettyProject(w, p)
	default:
		return format.WritePlainProject(w, p)
	}
}
