package cmd

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/tui"
	"github.com/spf13/cobra"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Take the promotion exam for the next level",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, eng, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		name := resolveUser(cmd)
		u, err := st.UserRepo().GetOrCreate(context.Background(), name)
		if err != nil {
			return fmt.Errorf("load user %q: %w", name, err)
		}

		// Check eligibility up front so the learner gets a plain
		// explanation instead of an error screen.
		if _, ok := progression.EligibleForPromotion(u.Progress); !ok {
			p := u.Progress
			next, hasNext := progression.LevelRequirement(p.Level + 1)
			if !hasNext {
				fmt.Println("You are already at the top level.")
				return nil
			}
			fmt.Printf("Not eligible for the level %d exam yet.\n", next.Level)
			fmt.Printf("Requires %d XP (you have %d) and %.0f%% accuracy over at least %d attempts.\n",
				next.RequiredXP, p.XP, next.MinAccuracy, next.MinAttempts)
			fmt.Println("Keep practicing with `aiquest play`.")
			return nil
		}

		return tui.RunExam(eng, name, u.Progress)
	},
}
