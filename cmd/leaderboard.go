package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/store"
	"github.com/spf13/cobra"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		users, err := st.UserRepo().Leaderboard(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query leaderboard: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No learners yet.")
			return nil
		}

		fmt.Printf("%-4s  %-20s  %-20s  %8s  %9s  %6s\n", "#", "Learner", "Rank", "XP", "Accuracy", "Streak")
		fmt.Println(strings.Repeat("─", 76))
		for i, u := range users {
			rank := fmt.Sprintf("level %d", u.Progress.Level)
			if req, ok := progression.LevelRequirement(u.Progress.Level); ok {
				rank = req.Icon + " " + req.Name
			}
			fmt.Printf("%-4d  %-20s  %-20s  %8d  %8.1f%%  %6d\n",
				i+1, u.Name, rank, u.Progress.XP, u.Progress.Accuracy(), u.Progress.CurrentStreak)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().IntP("limit", "n", 10, "Number of learners to show")
}
