package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next task to work on",
	RunE:  runNext,
}

func runNext(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	t, err := svc.Next()
	if err != nil {
		return err
	}
	if t == nil {
		fmt.Println("all tasks completed")
		return nil
	}

	fmt.Printf("next: (%d) %s %s\n", t.Priority, t.ID, t.Title)
	return nil
}
