package format

import (
	"encoding/json"
	"io"

	"github.com/karolinacerm/profolio/internal/view"
	"github.com/karolinacerm/profolio/pkg/api"
)

func WriteJSONCards(w io.Writer, projects []api.Project, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(view.ToCards(projects))
}

// WriteJSONDetail emits the same detail view the JSON API serves, so CLI
// and server output stay interchangeable.
func WriteJSONDetail(w io.Writer, p *api.Project, indent bool) error {
	detail, err := view.ToDetail(p)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(detail)
}
