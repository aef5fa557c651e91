package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Show today's quiz questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		today := resolveDate(cmd)
		exercises, err := svc.TodayQuizzes(cmd.Context(), today)
		if err != nil {
			return err
		}

		if len(exercises) == 0 {
			fmt.Println("No quizzes available. Add tracks to the catalog or complete some lessons.")
			return nil
		}

		fmt.Printf("Quizzes for %s:\n\n", today)
		for i, ex := range exercises {
			fmt.Printf("%2d. [%s] %s (%s, %s)\n", i+1, ex.Type, ex.Quiz.Question, ex.Quiz.TrackID, ex.Quiz.Difficulty)
			for j, choice := range ex.Quiz.Choices {
				fmt.Printf("      %c) %s\n", 'a'+rune(j), choice)
			}
			fmt.Printf("    id: %s\n", ex.Quiz.ID)
		}
		fmt.Println("\nRecord a result with: codedrill complete quiz <id> <quality 0-5>")
		return nil
	},
}
