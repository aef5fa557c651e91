package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/catalog"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/config"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/practice"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/review"
	"github.com/puzhiyu123/personal-coding-learning-tool-sub002/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "codedrill",
	Short: "Daily coding practice with spaced repetition",
	Long:  "Codedrill — terminal tool that schedules a daily set of coding drills and quizzes using SM-2 spaced repetition.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return todayCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEDRILL_DB env var)")
	rootCmd.PersistentFlags().String("date", "", "Act as if today were this date, YYYY-MM-DD (defaults to the current day)")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file, then CODEDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// resolveDate returns the --date flag value or the current local day.
func resolveDate(cmd *cobra.Command) string {
	if d, _ := cmd.Flags().GetString("date"); d != "" {
		return d
	}
	return review.FormatDay(time.Now())
}

// newService wires config, catalog, store, and the practice service for a
// command invocation. The returned closer releases the store.
func newService(cmd *cobra.Command) (*practice.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	drillCfg := practice.DefaultDrillConfig()
	quizCfg := practice.DefaultQuizConfig()
	if n := cfg.Practice.TargetCount; n > 0 {
		drillCfg.TargetCount = n
		quizCfg.TargetCount = n
	}
	if n := cfg.Practice.ReviewCap; n > 0 {
		drillCfg.ReviewCap = n
		quizCfg.ReviewCap = n
	}
	if n := cfg.Practice.NewBudget; n > 0 {
		drillCfg.NewBudget = n
		quizCfg.NewBudget = n
	}

	svc := practice.NewService(st.Progress(), cat, cfg.NewLogger(), drillCfg, quizCfg)
	return svc, func() { _ = st.Close() }, nil
}
