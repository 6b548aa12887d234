package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/prefkit/internal/ui/render"
)

var (
	previewWidth  int
	previewOutput string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the resolved preferences as an HTML page",
	Long: `Render a standalone HTML page showing the resolved preferences in
the resolved locale and theme.

Examples:
  prefkit preview > prefs.html
  prefkit preview --width 400 -o mobile.html`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 1280, "viewport width in pixels")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "write to file instead of stdout")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	a.Viewport.SetWidth(previewWidth)

	page := render.PreviewPage(a.Prefs.Snapshot(), time.Now())

	if previewOutput == "" {
		return page.Render(cmd.OutOrStdout())
	}

	f, err := os.Create(previewOutput)
	if err != nil {
		return fmt.Errorf("create preview file: %w", err)
	}
	if err := page.Render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render preview: %w", err)
	}
	return f.Close()
}
