package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karolinacerm/profolio/internal/catalog"
	"github.com/karolinacerm/profolio/internal/present"
	"github.com/karolinacerm/profolio/internal/util"
	"github.com/karolinacerm/profolio/pkg/api"
)

func newListCmd() *cobra.Command {
	var outputMode string
	var filter string
	var noHeaders bool
	var pageSize int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			cat, err := app.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if filter != "" {
				cat = filterCatalog(cat, filter)
			}
			if pageSize <= 0 {
				pageSize = app.Cfg.GetInt("list.page_size")
			}
			if len(cat.Projects) > pageSize {
				cat.Projects = cat.Projects[:pageSize]
			}
			opts := present.Options{
				Mode:       mode,
				JSONIndent: false, // pretty-print via external tools like jq
				Headers:    !noHeaders,
			}
			return present.RenderCatalog(cmd.OutOrStdout(), cat, opts)
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|json|ndjson|cards|pretty")
	cmd.Flags().StringVar(&filter, "filter", "", "fuzzy filter over id, title and tags")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "max projects listed (0 uses config)")
	cmd.Flags().BoolVar(&noHeaders, "noheaders", false, "hide column headers (plain)")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "json", "ndjson", "cards", "pretty"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// filterCatalog keeps projects fuzzy-matching the query on id, title or tags.
func filterCatalog(cat catalog.Catalog, query string) catalog.Catalog {
	haystack := make([]string, len(cat.Projects))
	for i, p := range cat.Projects {
		haystack[i] = searchText(p)
	}
	idx := util.MatchIndexes(query, haystack)
	out := make([]api.Project, 0, len(idx))
	for _, i := range idx {
		out = append(out, cat.Projects[i])
	}
	return catalog.Catalog{Projects: out}
}

func searchText(p api.Project) string {
	parts := []string{p.ID, p.Title}
	parts = append(parts, p.Tags...)
	return strings.Join(parts, " ")
}
