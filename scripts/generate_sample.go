// Generates a demo projects.yaml covering the field shapes the normalizer
// accepts: string and list paragraphs, keyed text maps, every alias tier
// for images, and both detail forms. Usage: go run scripts/generate_sample.go > projects.yaml
package main

import (
	"fmt"
	mrand "math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	projects := []map[string]any{
		{
			"id":      "atrium",
			"title":   "Atrium",
			"summary": "Courtyard renovation with a focus on natural light.",
			"deck":    "Residential, 2024",
			"tags":    []string{"interior", "light"},
			"hero": map[string]any{
				"image":   "img/atrium-hero.jpg",
				"alt":     "Sunlit atrium",
				"caption": "Completed courtyard, *spring 2024*.",
			},
			"details": []map[string]any{
				{"label": "Client", "value": "Private"},
				{"label": "Materials", "values": []string{"oak", "travertine"}},
			},
			"content": []map[string]any{
				{"type": "text", "body": "First paragraph.\n\nSecond paragraph."},
				{"type": "image", "src": "img/atrium-01.jpg", "alt": "Detail"},
				{"type": "textimage", "text": "Shot on site.", "src": "img/atrium-02.jpg"},
			},
			"links": []map[string]any{
				{"url": "https://example.com/atrium", "label": "Press feature"},
			},
		},
		{
			// Alias coverage: copy for body text, thumb under card,
			// paragraphs as a list.
			"id":    "loft",
			"title": "Loft",
			"copy":  []string{"Open plan conversion.", "Steel and glass mezzanine."},
			"card":  map[string]any{"thumb": "img/loft-thumb.jpg"},
			"details": map[string]any{
				"Year": "2023",
				"Area": "120 m2",
			},
		},
		{
			// Minimal record: placeholder title and thumbnail fallback.
			"id":        "poster-series",
			"thumbnail": "img/posters.jpg",
		},
	}

	// Deterministic filler so paging and filtering have something to chew on.
	mr := mrand.New(mrand.NewSource(42))
	tags := []string{"interior", "identity", "print", "web", "exhibition"}
	for i := 0; i < 12; i++ {
		projects = append(projects, map[string]any{
			"id":      fmt.Sprintf("study-%02d", i+1),
			"title":   fmt.Sprintf("Study %02d", i+1),
			"summary": "Exploratory piece.",
			"tags":    []string{tags[mr.Intn(len(tags))]},
		})
	}

	doc := map[string]any{"projects": projects}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	_ = enc.Close()
}
