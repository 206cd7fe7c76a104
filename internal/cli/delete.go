package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	changed, err := svc.Delete(args[0])
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("not found")
		return errNotFound
	}

	fmt.Println("deleted")
	return nil
}
