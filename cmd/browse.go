package cmd

import (
	"github.com/spf13/cobra"

	"linterman.dev/pkg/linterman/internal/controller"
	"linterman.dev/pkg/linterman/internal/engine"
)

// browseCmd represents the browse command.
var browseCmd = newBrowseCmd()

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [collection]",
		Short: "Browse lint issues interactively",
		Long: `Lint the collection and open the issues in an interactive, filterable
list. Falls back to the plain report when stdout is not a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := enabledRules()
			if err != nil {
				return err
			}

			collection, err := loadCollection(args)
			if err != nil {
				return err
			}

			result := engine.Lint(collection, rules)

			if !controller.IsInteractive() {
				return controller.NewSimpleUI(cmd, outputFormat()).DisplayResult(result)
			}

			return controller.RunIssueBrowser(result, cmd.OutOrStdout())
		},
	}
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
