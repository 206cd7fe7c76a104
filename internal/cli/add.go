package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jyang234/taskpad/internal/model"
)

var (
	addDescription string
	addPriority    int
	addTags        []string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "task description")
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", model.DefaultPriority, "priority (1..5)")
	addCmd.Flags().StringArrayVar(&addTags, "tag", nil, "tag (repeatable)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	t, err := svc.Add(args[0], addDescription, addPriority, addTags)
	if err != nil {
		return err
	}

	fmt.Printf("created: %s\n", t.ID)
	return nil
}
