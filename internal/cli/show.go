package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karolinacerm/profolio/internal/present"
	"github.com/karolinacerm/profolio/internal/util"
)

func newShowCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one project in full",
		Args:  cobra.ExactArgs(1),
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
			id := args[0]
			p := cat.Find(id)
			if p == nil {
				ids := make([]string, len(cat.Projects))
				for i, pr := range cat.Projects {
					ids[i] = pr.ID
				}
				if near := util.Closest(id, ids, 3); len(near) > 0 {
					return fmt.Errorf("no project %q; did you mean %s?", id, strings.Join(near, ", "))
				}
				return fmt.Errorf("no project %q", id)
			}
			return present.RenderProject(cmd.OutOrStdout(), p, present.Options{Mode: mode})
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "pretty", "output mode: plain|json|pretty")
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"plain", "json", "pretty"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
