package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linterman.dev/pkg/linterman/internal/controller"
	"linterman.dev/pkg/linterman/internal/engine"
	m "linterman.dev/pkg/linterman/internal/model"
)

var fixWriteFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [collection]",
		Short: "Apply automatic fixes to a collection",
		Long: `Lint the collection, apply every suggested fix and lint again. Without
--write the fixed collection is not saved; a unified diff of the change is
printed instead.`,
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

			outcome := engine.LintAndFix(collection, rules)
			slog.Debug(
				"fix completed",
				"applied", outcome.FixesApplied,
				"score_before", outcome.Before.Score,
				"score_after", outcome.After.Score,
			)

			ui := controller.NewSimpleUI(cmd, outputFormat())
			if err := ui.DisplayFixOutcome(outcome); err != nil {
				return err
			}

			path := collectionPath(args)
			write := viper.GetBool(fixWriteConfigKey)

			if write {
				if path == "" {
					return fmt.Errorf("--write requires a collection file argument")
				}

				return collectionStore.Write(path, outcome.FixedCollection)
			}

			if outputFormat() == controller.FormatText && outcome.FixesApplied > 0 {
				diff, err := collectionDiff(collection, outcome.FixedCollection, path)
				if err != nil {
					return err
				}

				cmd.Printf("\n%s", diff)
			}

			return nil
		},
	}

	configureFixFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func configureFixFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&fixWriteFlag, "write", "w", viper.GetBool(fixWriteConfigKey), "write the fixed collection back to the input file")
	bindFlagToConfig(cmd.Flags().Lookup("write"), fixWriteConfigKey)
}

// collectionDiff renders a unified diff between the original and the fixed
// collection serializations.
func collectionDiff(before, after *m.Collection, path string) (string, error) {
	beforeJSON, err := json.MarshalIndent(before, "", "  ")
	if err != nil {
		return "", err
	}

	afterJSON, err := json.MarshalIndent(after, "", "  ")
	if err != nil {
		return "", err
	}

	label := path
	if label == "" {
		label = "collection.json"
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(beforeJSON) + "\n"),
		B:        difflib.SplitLines(string(afterJSON) + "\n"),
		FromFile: label,
		ToFile:   label + " (fixed)",
		Context:  3,
	})
}
