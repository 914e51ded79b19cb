package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd() *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the static site from the project catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if outputDir != "" {
				app.Builder.OutputDir = outputDir
			}
			cat, err := app.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if err := app.Builder.Build(cat); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d project pages to %s\n",
				cat.Len(), app.Builder.OutputDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (overrides config)")
	return cmd
}
