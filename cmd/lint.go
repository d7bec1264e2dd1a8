package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"linterman.dev/pkg/linterman/internal/controller"
	"linterman.dev/pkg/linterman/internal/engine"
)

// lintCmd represents the lint command.
var lintCmd = newLintCmd()

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [collection]",
		Short: "Lint a collection and print the scored report",
		Long: `Run every enabled rule over the collection and print the issues, the
structure statistics and the 0-100 quality score.`,
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
			slog.Debug("lint completed", "score", result.Score, "issues", len(result.Issues))

			return controller.NewSimpleUI(cmd, outputFormat()).DisplayResult(result)
		},
	}
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
