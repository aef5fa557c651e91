package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		st, err := svc.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Attempts:        %d\n", st.TotalAttempts)
		fmt.Printf("Average quality: %.2f\n", st.AverageQuality)
		fmt.Printf("Tracked items:   %d\n", st.TrackedItems)
		return nil
	},
}
