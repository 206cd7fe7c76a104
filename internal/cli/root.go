package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpad/internal/config"
	"github.com/jyang234/taskpad/internal/store"
	"github.com/jyang234/taskpad/internal/task"
)

// errNotFound signals an already-reported not-found outcome that should only
// set the exit code, without the Error: prefix.
var errNotFound = errors.New("not found")

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "taskpad",
		Short: "taskpad - personal task tracker",
		Long: `taskpad tracks personal tasks in a single JSON file on disk.

Tasks carry a priority (1..5), optional tags and a done flag. Besides CRUD,
taskpad reports aggregate statistics and runs a simulated batched sync over
the store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Execute runs the root command.
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotFound) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

// buildService wires the task service against the configured store path.
func buildService() (*task.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return task.NewService(store.New(cfg.Store.Path)), nil
}
