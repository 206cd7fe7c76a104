package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countOpenOnly bool

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count tasks",
	RunE:  runCount,
}

func init() {
	countCmd.Flags().BoolVar(&countOpenOnly, "open", false, "only open tasks")
}

func runCount(cmd *cobra.Command, args []string) error {
	svc, err := buildService()
	if err != nil {
		return err
	}

	n, err := svc.Count(!countOpenOnly)
	if err != nil {
		return err
	}

	fmt.Println(n)
	return nil
}
