package cmd

import (
	"fmt"
	"os"

	"github.com/haneul/aiquest/internal/game"
	"github.com/haneul/aiquest/internal/judge"
	"github.com/haneul/aiquest/internal/llm"
	"github.com/haneul/aiquest/internal/reward"
	"github.com/haneul/aiquest/internal/store"
	"github.com/spf13/cobra"
)

// openEngine opens the store and builds the game engine with its grader.
// The caller owns the returned store and must close it.
func openEngine(cmd *cobra.Command) (*store.Store, *game.Engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	grader := buildGrader(cmd, st)

	eng, err := game.NewEngine(st.UserRepo(), st.QuestionRepo(), st.EventRepo(), grader, reward.DefaultConfig())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("build engine: %w", err)
	}
	return st, eng, nil
}

// buildGrader wires the LLM judge when a provider is configured and always
// keeps the heuristic judge as the offline fallback.
func buildGrader(cmd *cobra.Command, st *store.Store) *judge.Grader {
	fallback := judge.NewHeuristicJudge()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Answers will be graded by the built-in heuristic judge.")
		return judge.NewGrader(nil, fallback)
	}

	primary := judge.NewLLMJudge(provider, judge.DefaultLLMJudgeConfig())
	return judge.NewGrader(primary, fallback)
}
