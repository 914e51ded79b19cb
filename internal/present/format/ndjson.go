package format

import (
	"encoding/json"
	"io"

	"github.com/karolinacerm/profolio/internal/view"
	"github.com/karolinacerm/profolio/pkg/api"
)

// WriteNDJSONCards writes one card view per line.
func WriteNDJSONCards(w io.Writer, projects []api.Project) error {
	enc := json.NewEncoder(w)
	for _, p := range projects {
		if err := enc.Encode(view.ToCard(p)); err != nil {
			return err
		}
	}
	return nil
}
