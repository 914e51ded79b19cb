package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/karolinacerm/profolio/pkg/api"
)

// WritePrettyProject renders the detail view as terminal markdown via
// glamour. The document it builds mirrors the detail page section order:
// title, meta, summary, details list, content blocks, links.
func WritePrettyProject(w io.Writer, p *api.Project) error {
	if p == nil {
		_, err := io.WriteString(w, "Project not found.\n")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if meta := metaLine(p); meta != "" {
		fmt.Fprintf(&b, "> %s\n\n", meta)
	}
	if p.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Summary)
	}
	if len(p.Details) > 0 {
		for _, d := range p.Details {
			fmt.Fprintf(&b, "- **%s:** %s\n", d.Label, strings.Join(d.Values, " · "))
		}
		b.WriteString("\n")
	}
	if len(p.Content) > 0 {
		b.WriteString("---\n\n")
		for _, blk := range p.Content {
			if blk.HasText() {
				fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(blk.Body))
			}
			if blk.HasImage() {
				alt := blk.Alt
				if alt == "" {
					alt = "image"
				}
				fmt.Fprintf(&b, "![%s](%s)\n\n", alt, blk.Src)
			}
			if blk.Caption != "" {
				fmt.Fprintf(&b, "*%s*\n\n", blk.Caption)
			}
		}
	}
	if len(p.Links) > 0 {
		b.WriteString("## Links\n\n")
		for _, l := range p.Links {
			label := l.Label
			if label == "" {
				label = l.URL
			}
			fmt.Fprintf(&b, "- [%s](%s)\n", label, l.URL)
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(b.String())
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
