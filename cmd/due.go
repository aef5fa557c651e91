package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/review"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/store"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List review items due today",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		today := resolveDate(cmd)
		labels := map[store.Kind]string{store.KindDrill: "Drills", store.KindQuiz: "Quizzes"}
		total := 0
		for _, kind := range []store.Kind{store.KindDrill, store.KindQuiz} {
			items, err := svc.DueReviews(cmd.Context(), kind, today)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				continue
			}
			fmt.Printf("%s due:\n", labels[kind])
			for _, it := range items {
				fmt.Printf("  %s (%s, due %s, %d reps)\n",
					it.ChallengeID, it.TrackID, review.FormatDay(it.DueDate), it.Repetitions)
			}
			total += len(items)
		}
		if total == 0 {
			fmt.Println("Nothing due. Nice.")
		}
		return nil
	},
}
