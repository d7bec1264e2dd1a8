package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linterman.dev/pkg/linterman/internal/controller"
	"linterman.dev/pkg/linterman/internal/engine"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <collection>",
		Short: "Re-lint a collection whenever the file changes",
		Long: `Watch the collection file and print a fresh lint report after every save.
Rapid successive writes are coalesced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := enabledRules()
			if err != nil {
				return err
			}

			return runWatch(cmd, args[0], rules, nil)
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// runWatch lints path on every change event until stop is closed. A nil stop
// channel watches forever.
func runWatch(cmd *cobra.Command, path string, rules []string, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init failed: %w", err)
	}

	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch %s failed: %w", path, err)
	}

	lintOnce := func() {
		collection, err := collectionStore.Load(path)
		if err != nil {
			cmd.PrintErrf("reload failed: %v\n", err)
			return
		}

		result := engine.Lint(collection, rules)
		slog.Debug("watch lint completed", "path", path, "score", result.Score)

		if err := controller.NewSimpleUI(cmd, outputFormat()).DisplayResult(result); err != nil {
			cmd.PrintErrf("display failed: %v\n", err)
		}
	}

	lintOnce()

	debounce := time.Duration(viper.GetInt(watchDebounceKey)) * time.Millisecond

	var timer *time.Timer

	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			// Editors replace files on save; re-arm the watch in case the
			// original inode went away.
			_ = watcher.Add(path)

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, lintOnce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			cmd.PrintErrf("watch error: %v\n", err)
		}
	}
}
