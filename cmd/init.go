package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// defaultConfig mirrors the viper keys read at startup. Kept as a struct so
// the generated file has stable key order and can carry comments later.
type defaultConfig struct {
	Version int `yaml:"version"`
	Output  struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
	Rules struct {
		Enabled []string `yaml:"enabled"`
		Config  string   `yaml:"config"`
	} `yaml:"rules"`
	Watch struct {
		DebounceMS int `yaml:"debounce_ms"`
	} `yaml:"watch"`
	Log struct {
		Filename   string `yaml:"filename"`
		Level      int    `yaml:"level"`
		Verbose    bool   `yaml:"verbose"`
		MaxSize    int    `yaml:"max_size"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAge     int    `yaml:"max_age"`
		Compress   bool   `yaml:"compress"`
	} `yaml:"log"`
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default linterman.yaml configuration file",
		Long: `Create a linterman.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if _, err := os.Stat(targetPath); err == nil {
				return fmt.Errorf("config file %s already exists", targetPath)
			}

			var cfg defaultConfig
			cfg.Version = currentConfigVersion
			cfg.Output.Format = defaultFormat
			cfg.Rules.Enabled = []string{}
			cfg.Watch.DebounceMS = defaultDebounceMS
			cfg.Log.Filename = defaultLogFilename
			cfg.Log.Level = defaultLogLevel
			cfg.Log.Verbose = defaultLogVerbose
			cfg.Log.MaxSize = defaultLogMaxSize
			cfg.Log.MaxBackups = defaultLogMaxBackups
			cfg.Log.MaxAge = defaultLogMaxAge
			cfg.Log.Compress = defaultLogCompress

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to serialize config: %w", err)
			}

			if err := os.WriteFile(targetPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
