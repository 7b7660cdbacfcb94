package commands

import (
	"github.com/phaer/pip/internal/app"
	"github.com/phaer/pip/internal/core/ports"
	"github.com/spf13/cobra"
)

func (c *CLI) newReportCmd() *cobra.Command {
	var (
		output   string
		cacheDir string
	)

	cmd := &cobra.Command{
		Use:   "report <resolution-file>",
		Short: "Compile an installation report from a resolution result",
		Long: `Compile an installation report from a resolution result file.

The report records, for every distribution slated for installation, where it
would be obtained from and whether it was requested directly or pulled in as
a dependency. With --cache-dir, cache hits are reconciled so VCS checkouts
served from cache still report their original repository URL and commit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{
				ResolutionFile: args[0],
				Output:         output,
				CacheDir:       cacheDir,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ports.StdoutDestination, `report destination, "-" for stdout`)
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "local wheel cache directory")

	return cmd
}
