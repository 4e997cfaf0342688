package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/haneul/aiquest/internal/game"
	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		name := resolveUser(cmd)

		u, err := st.UserRepo().Get(ctx, name)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if u == nil {
			fmt.Printf("No data for %q yet. Start with `aiquest play`.\n", name)
			return nil
		}

		p := u.Progress
		printProgress(name, p)

		unlocks, err := st.EventRepo().Achievements(ctx, name)
		if err != nil {
			return fmt.Errorf("query achievements: %w", err)
		}
		printAchievements(unlocks)

		attempts, err := st.EventRepo().QueryAttempts(ctx, name, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		printRecentAttempts(attempts)

		exams, err := st.EventRepo().QueryExams(ctx, name, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query exams: %w", err)
		}
		printExamHistory(exams)

		return nil
	},
}

func printProgress(name string, p progression.Progress) {
	rank := fmt.Sprintf("level %d", p.Level)
	if req, ok := progression.LevelRequirement(p.Level); ok {
		rank = fmt.Sprintf("%s %s (level %d)", req.Icon, req.Name, req.Level)
	}

	fmt.Printf("%s — %s\n", name, rank)
	fmt.Println(strings.Repeat("─", 56))
	fmt.Printf("XP:        %d\n", p.XP)
	fmt.Printf("Attempts:  %d (%d passed, %.1f%% accuracy)\n",
		p.TotalAttempted, p.TotalCorrect, p.Accuracy())
	fmt.Printf("Streak:    %d (best %d)\n", p.CurrentStreak, p.BestStreak)

	if next, ok := progression.LevelRequirement(p.Level + 1); ok {
		fmt.Printf("Next:      %s %s at %d XP (%d to go)\n",
			next.Icon, next.Name, next.RequiredXP, max(next.RequiredXP-p.XP, 0))
	} else {
		fmt.Println("Next:      top of the ladder")
	}
	fmt.Println()
}

func printAchievements(unlocks []store.AchievementRecord) {
	earned := make(map[string]time.Time, len(unlocks))
	for _, rec := range unlocks {
		earned[rec.AchievementID] = rec.Timestamp
	}

	fmt.Printf("Achievements (%d/%d)\n", len(earned), len(game.Achievements()))
	fmt.Println(strings.Repeat("─", 56))
	for _, a := range game.Achievements() {
		if at, ok := earned[a.ID]; ok {
			fmt.Printf("  %s %-18s %s  (%s)\n", a.Icon, a.Name, a.Desc, at.Local().Format("2006-01-02"))
		} else {
			fmt.Printf("  🔒 %-18s %s\n", a.Name, a.Desc)
		}
	}
	fmt.Println()
}

func printRecentAttempts(attempts []store.AttemptRecord) {
	if len(attempts) == 0 {
		return
	}
	fmt.Println("Recent attempts")
	fmt.Println(strings.Repeat("─", 56))
	for _, a := range attempts {
		mark := "✓"
		if !a.Passed {
			mark = "✗"
		}
		fmt.Printf("  %s  %-24s %-9s %5.0f pts  +%d XP\n",
			mark, a.QuestionID, a.Difficulty, a.Score, a.XPEarned)
	}
	fmt.Println()
}

func printExamHistory(exams []store.ExamRecord) {
	if len(exams) == 0 {
		return
	}
	fmt.Println("Exam history")
	fmt.Println(strings.Repeat("─", 56))
	for _, e := range exams {
		verdict := "passed"
		if !e.Passed {
			verdict = "failed"
		}
		fmt.Printf("  %s  level %d exam %s (%d/%d)  +%d XP\n",
			e.Timestamp.Local().Format("2006-01-02"),
			e.TargetLevel, verdict, e.QuestionsPassed, e.QuestionsTotal, e.XPEarned)
	}
}
