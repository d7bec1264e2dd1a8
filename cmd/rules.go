package cmd

import (
	"github.com/spf13/cobra"

	"linterman.dev/pkg/linterman/internal/controller"
	"linterman.dev/pkg/linterman/internal/engine"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available rules",
		Long:  "List every registered rule with its category and severity, in evaluation order.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return controller.NewSimpleUI(cmd, outputFormat()).DisplayRules(engine.Rules())
		},
	}
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
