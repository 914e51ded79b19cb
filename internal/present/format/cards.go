package format

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/karolinacerm/profolio/internal/view"
	"github.com/karolinacerm/profolio/pkg/api"
)

var (
	cardBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(44)
	cardTitle   = lipgloss.NewStyle().Bold(true)
	cardSummary = lipgloss.NewStyle().Faint(true)
	cardTag     = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "111"})
	cardHref = lipgloss.NewStyle().Faint(true).Italic(true)
)

// WriteTermCards renders the card grid as stacked terminal boxes, one per
// project, mirroring what the summary card shows on the web grid.
func WriteTermCards(w io.Writer, projects []api.Project) error {
	if len(projects) == 0 {
		_, err := io.WriteString(w, "No projects could be loaded.\n")
		return err
	}
	for _, p := range projects {
		card := view.ToCard(p)
		lines := []string{cardTitle.Render(card.Title)}
		if card.Summary != "" {
			lines = append(lines, cardSummary.Render(card.Summary))
		}
		if len(card.Tags) > 0 {
			chips := make([]string, len(card.Tags))
			for i, tag := range card.Tags {
				chips[i] = cardTag.Render("[" + tag + "]")
			}
			lines = append(lines, strings.Join(chips, " "))
		}
		lines = append(lines, cardHref.Render(card.Href))
		if _, err := io.WriteString(w, cardBox.Render(strings.Join(lines, "\n"))+"\n"); err != nil {
			return err
		}
	}
	return nil
}
