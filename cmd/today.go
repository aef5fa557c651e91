package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's coding drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		today := resolveDate(cmd)
		exercises, err := svc.TodayDrills(cmd.Context(), today)
		if err != nil {
			return err
		}

		if len(exercises) == 0 {
			fmt.Println("No drills available. Add tracks to the catalog or complete some lessons.")
			return nil
		}

		fmt.Printf("Drills for %s:\n\n", today)
		for i, ex := range exercises {
			fmt.Printf("%2d. [%s] %s (%s, %s)\n", i+1, ex.Type, ex.Drill.Title, ex.Drill.TrackID, ex.Drill.Difficulty)
			fmt.Printf("    id: %s\n", ex.Drill.ID)
		}
		fmt.Println("\nRecord a result with: codedrill complete drill <id> <quality 0-5>")
		return nil
	},
}
