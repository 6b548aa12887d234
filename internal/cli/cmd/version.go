package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/prefkit/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "prefkit %s\n", buildInfo.Version)
	fmt.Fprintf(out, "  commit:  %s\n", buildInfo.Commit)
	fmt.Fprintf(out, "  built:   %s\n", buildInfo.BuildDate)
	fmt.Fprintf(out, "  go:      %s\n", buildInfo.GoVersion)
	fmt.Fprintf(out, "  source:  %s\n", build.RepoURL())
	return nil
}
