package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpad/internal/config"
	"github.com/jyang234/taskpad/internal/store"
	"github.com/jyang234/taskpad/internal/syncjob"
	"github.com/jyang234/taskpad/internal/task"
)

var (
	syncBatchSize int
	syncDelay     time.Duration
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a simulated batched sync over the store",
	Long: `Walks the whole task collection in consecutive batches, spending the
configured delay per item to stand in for real sync I/O, and reports how many
items were synced. Nothing is mutated.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVar(&syncBatchSize, "batch-size", 0, "items per batch (default from config)")
	syncCmd.Flags().DurationVar(&syncDelay, "delay", 0, "simulated per-item delay (default from config)")
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	batchSize := cfg.Sync.BatchSize
	if cmd.Flags().Changed("batch-size") {
		batchSize = syncBatchSize
	}
	delay := syncDelay
	if !cmd.Flags().Changed("delay") {
		if delay, err = time.ParseDuration(cfg.Sync.Delay); err != nil {
			return fmt.Errorf("invalid sync delay in config: %w", err)
		}
	}

	svc := task.NewService(store.New(cfg.Store.Path))
	tasks, err := svc.List(task.ListOptions{IncludeDone: true})
	if err != nil {
		return err
	}

	synced, err := syncjob.InBatches(cmd.Context(), tasks, batchSize, delay)
	if err != nil {
		return err
	}

	fmt.Printf("synced: %d\n", synced)
	return nil
}
