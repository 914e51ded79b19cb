package format

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/karolinacerm/profolio/pkg/api"
)

// TSV columns: id, title, tags, summary
var headerLine = "id\ttitle\ttags\tsummary\n"

func esc(field string) string {
	field = strings.ReplaceAll(field, "\t", "\\t")
	field = strings.ReplaceAll(field, "\n", "\\n")
	return field
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return strings.Join(tags, ",")
}

func WritePlainProjects(w io.Writer, projects []api.Project, headers bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if headers {
		_, _ = io.WriteString(tw, headerLine)
	}
	for _, p := range projects {
		line := fmt.Sprintf("%s\t%s\t%s\t%s\n",
			esc(p.ID), esc(p.Title), esc(joinTags(p.Tags)), esc(p.Summary))
		_, _ = io.WriteString(tw, line)
	}
	return tw.Flush()
}

// WritePlainProject prints a detail rendition without any styling, close
// to what the detail page shows.
func WritePlainProject(w io.Writer, p *api.Project) error {
	if p == nil {
		_, err := io.WriteString(w, "project not found\n")
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\nTitle: %s\n", p.ID, p.Title)
	if meta := metaLine(p); meta != "" {
		fmt.Fprintf(&b, "Meta: %s\n", meta)
	}
	if p.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", p.Summary)
	}
	for _, d := range p.Details {
		fmt.Fprintf(&b, "%s: %s\n", d.Label, strings.Join(d.Values, " · "))
	}
	if len(p.Content) > 0 {
		b.WriteString("---\n")
		for _, blk := range p.Content {
			switch blk.Kind {
			case api.BlockImage:
				fmt.Fprintf(&b, "[image] %s\n", blk.Src)
			case api.BlockTextImage:
				fmt.Fprintf(&b, "%s\n[image] %s\n", blk.Body, blk.Src)
			default:
				fmt.Fprintf(&b, "%s\n", blk.Body)
			}
			if blk.Caption != "" {
				fmt.Fprintf(&b, "  (%s)\n", blk.Caption)
			}
		}
	}
	for _, l := range p.Links {
		label := l.Label
		if label == "" {
			label = l.URL
		}
		fmt.Fprintf(&b, "Link: %s <%s>\n", label, l.URL)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func metaLine(p *api.Project) string {
	if p.Deck != "" {
		return p.Deck
	}
	return strings.Join(p.Tags, " / ")
}
