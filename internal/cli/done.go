package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func runDone(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	changed, err := svc.Complete(args[0])
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("not found")
		return errNotFound
	}

	fmt.Println("done")
	return nil
}
