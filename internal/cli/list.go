package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpad/internal/model"
	"github.com/jyang234/taskpad/internal/task"
)

var (
	listOpenOnly bool
	listQuery    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks by priority",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listOpenOnly, "open", false, "only open tasks")
	listCmd.Flags().StringVar(&listQuery, "query", "", "filter by title substring (case-insensitive)")
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	tasks, err := svc.List(task.ListOptions{IncludeDone: !listOpenOnly, Query: listQuery})
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return nil
	}
	for _, t := range tasks {
		fmt.Println(formatTask(t))
	}
	return nil
}

func formatTask(t model.Task) string {
	state := " "
	if t.Done {
		state = "x"
	}
	line := fmt.Sprintf("[%s] (%d) %s %s", state, t.Priority, t.ID, t.Title)
	if len(t.Tags) > 0 {
		line += " tags=" + strings.Join(t.Tags, ",")
	}
	return line
}
