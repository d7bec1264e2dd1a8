// Package cmd provides the root command and CLI setup for linterman.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"linterman.dev/pkg/linterman/internal/adapter"
	"linterman.dev/pkg/linterman/internal/controller"
	m "linterman.dev/pkg/linterman/internal/model"
)

var collectionStore adapter.CollectionStore

// formatFlag selects the output rendering, text or json.
var formatFlag string

// rulesFlag holds a comma-separated rule selection overriding the config.
var rulesFlag string

// rulesConfigFlag points at a rules configuration exported from the UI.
var rulesConfigFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	collectionStore = adapter.NewFileCollectionStore()
}

const rootLongDescription = `Linterman statically analyzes Postman collection documents against testing,
structure, performance, best-practice, documentation and security rules,
scores the collection and can apply the suggested fixes automatically.

Collections are read from a file argument or from stdin:
  cat collection.json | linterman lint
  linterman lint collection.json
  linterman fix --write collection.json`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "linterman",
		Short: "Postman collection linter and auto-fixer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&formatFlag, formatFlagName, "f",
			viper.GetString(formatConfigKey),
			"output format: text or json",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringVarP(&rulesFlag, rulesFlagName, "r", "", "comma-separated list of rule IDs to enable")

	cmd.PersistentFlags().StringVarP(&rulesConfigFlag, rulesConfigFlagName, "c", viper.GetString(rulesConfigPathKey), "rules configuration file exported from the linterman UI")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rulesConfigFlagName), rulesConfigPathKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// enabledRules resolves the rule selection: --rules wins, then the exported
// config file, then everything (nil).
func enabledRules() ([]string, error) {
	if rulesFlag != "" {
		parts := strings.Split(rulesFlag, ",")
		rules := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				rules = append(rules, trimmed)
			}
		}

		return rules, nil
	}

	configPath := viper.GetString(rulesConfigPathKey)
	if configPath == "" {
		return nil, nil
	}

	cfg, err := adapter.LoadRulesConfig(configPath)
	if err != nil {
		return nil, err
	}

	return cfg.EnabledRules, nil
}

// collectionPath returns the collection file argument, empty meaning stdin.
func collectionPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return ""
}

func loadCollection(args []string) (*m.Collection, error) {
	return collectionStore.Load(collectionPath(args))
}

func outputFormat() string {
	if formatFlag == controller.FormatJSON {
		return controller.FormatJSON
	}

	return controller.FormatText
}
