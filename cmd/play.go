package cmd

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/internal/quiz"
	"github.com/haneul/aiquest/internal/tui"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		return runPractice(cmd, difficulty)
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "", "Question difficulty (very_easy, easy, normal, hard, very_hard); defaults to the level-appropriate tier")
}

func runPractice(cmd *cobra.Command, difficulty string) error {
	d := quiz.Difficulty(difficulty)
	if difficulty != "" && !d.Valid() {
		return fmt.Errorf("unknown difficulty %q", difficulty)
	}

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

	return tui.RunPractice(eng, name, d, u.Progress)
}
