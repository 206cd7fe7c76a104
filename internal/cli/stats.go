package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpad/internal/analytics"
	"github.com/jyang234/taskpad/internal/model"
	"github.com/jyang234/taskpad/internal/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate task statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	st, err := svc.Stats()
	if err != nil {
		return err
	}
	tasks, err := svc.List(task.ListOptions{IncludeDone: true})
	if err != nil {
		return err
	}

	fmt.Printf("total=%d done=%d open=%d rate=%.2f%%\n", st.Total, st.Done, st.Open, st.CompletionRate)

	dist := analytics.PriorityDistribution(tasks)
	parts := make([]string, 0, model.MaxPriority)
	for level := model.MinPriority; level <= model.MaxPriority; level++ {
		parts = append(parts, fmt.Sprintf("%d:%d", level, dist[level]))
	}
	fmt.Printf("distribution=%s\n", strings.Join(parts, " "))

	keywords := analytics.TopKeywords(tasks, 5)
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		kw = append(kw, fmt.Sprintf("%s:%d", k.Word, k.Count))
	}
	fmt.Printf("keywords=%s\n", strings.Join(kw, " "))
	return nil
}
