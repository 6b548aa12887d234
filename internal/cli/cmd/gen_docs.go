package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	xdgadapter "github.com/bnema/prefkit/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat describes one output format of gen-docs.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext: ".1",
		defaultDir: func() (string, error) {
			return xdgadapter.New().ManDir()
		},
		generate: func(root *cobra.Command, dir string) error {
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "PREFKIT",
				Section: "1",
				Source:  "prefkit " + buildInfo.Version,
				Manual:  "prefkit Manual",
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for every command",
	Long: `Write one page per command. Man pages go to $XDG_DATA_HOME/man/man1
by default so 'man prefkit' finds them; markdown goes to ./docs.`,
	Example: `  prefkit gen-docs
  prefkit gen-docs --format markdown --output site/cli`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	format, ok := docFormats[genDocsFormat]
	if !ok {
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	dir := genDocsOutputDir
	if dir == "" {
		var err error
		if dir, err = format.defaultDir(); err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Generated pages stay byte-stable across runs.
	rootCmd.DisableAutoGenTag = true
	if err := format.generate(rootCmd, dir); err != nil {
		return fmt.Errorf("generate %s docs: %w", genDocsFormat, err)
	}
	return listGenerated(cmd.OutOrStdout(), dir, format.ext)
}

func listGenerated(w io.Writer, dir, ext string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Wrote %d pages to %s\n", len(files), dir)
	for _, f := range files {
		_, _ = fmt.Fprintf(w, "  %s\n", filepath.Base(f))
	}
	return nil
}
