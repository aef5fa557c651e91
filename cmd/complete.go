package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/practice"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/review"
)

var completeCmd = &cobra.Command{
	Use:   "complete <drill|quiz> <id> <quality>",
	Short: "Record a completed exercise with a quality score (0-5)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, id := args[0], args[1]
		quality, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("quality must be a number 0-5, got %q", args[2])
		}

		svc, closer, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		today := resolveDate(cmd)
		var result practice.CompletionResult
		switch variant {
		case "drill":
			result, err = svc.CompleteDrill(cmd.Context(), id, quality, today)
		case "quiz":
			result, err = svc.CompleteQuiz(cmd.Context(), id, quality, today)
		default:
			return fmt.Errorf("unknown exercise variant %q, want drill or quiz", variant)
		}
		if err != nil {
			return err
		}

		if result.FirstReview {
			fmt.Printf("Started tracking %s.\n", id)
		}
		fmt.Printf("Next review of %s on %s (interval %dd, EF %.2f).\n",
			id, review.FormatDay(result.Item.DueDate), result.Item.Interval, result.Item.EasinessFactor)
		return nil
	},
}

var lessonCmd = &cobra.Command{
	Use:   "lesson <slug>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closer, err := newService(cmd)
		if err != nil {
			return err
		}
		defer closer()

		if err := svc.CompleteLesson(cmd.Context(), args[0], resolveDate(cmd)); err != nil {
			return err
		}
		fmt.Printf("Lesson %s completed.\n", args[0])
		return nil
	},
}
