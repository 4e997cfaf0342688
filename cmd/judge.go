package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/haneul/aiquest/internal/judge"
	"github.com/haneul/aiquest/internal/llm"
	"github.com/haneul/aiquest/internal/quiz"
	"github.com/spf13/cobra"
)

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Check LLM judge connectivity with a canned question",
	Long: `Send a built-in question and a correct answer through the configured
LLM judge and print the verdict. Useful for verifying provider setup
before a session. No events are recorded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := llm.WithPurpose(context.Background(), llm.PurposeConnectivity)

		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		fmt.Printf("Provider OK: %s\n\n", provider.ModelID())

		q := cannedQuestion()
		sub := quiz.Submission{"B"}
		outcome := quiz.Evaluate(q, sub)

		j := judge.NewLLMJudge(provider, judge.DefaultLLMJudgeConfig())
		verdict, err := j.Judge(ctx, judge.Request{
			Question:      q,
			Submission:    sub,
			Outcome:       outcome,
			WeightedScore: quiz.WeightedScore(q, sub),
		})
		if err != nil {
			return fmt.Errorf("judge request: %w", err)
		}

		fmt.Printf("Verdict:   %s\n", passLabel(verdict.Passed))
		fmt.Printf("Score:     %.0f\n", verdict.Total())
		fmt.Printf("Tokens:    %d\n", verdict.TokensUsed)
		if verdict.Feedback != "" {
			fmt.Printf("Feedback:  %s\n", verdict.Feedback)
		}
		if len(verdict.Strengths) > 0 {
			fmt.Printf("Strengths: %s\n", strings.Join(verdict.Strengths, "; "))
		}
		return nil
	},
}

func passLabel(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

func cannedQuestion() *quiz.Question {
	return &quiz.Question{
		ID:         "connectivity-check",
		Difficulty: quiz.DifficultyEasy,
		Type:       quiz.TypePractice,
		Scenario:   "A colleague asks an AI assistant for the population of a small village and gets a precise-sounding number with no source.",
		Steps: []quiz.Step{
			{
				Title: "Judge the answer",
				Text:  "How should the colleague treat that number?",
				Options: []quiz.Option{
					{ID: "A", Text: "Trust it, AI systems look facts up", Weight: 0.0},
					{ID: "B", Text: "Verify it, the model may have made it up", Weight: 1.0, Feedback: "Unsourced specifics are a classic hallucination shape."},
					{ID: "C", Text: "Reject it outright", Weight: 0.3},
				},
			},
		},
	}
}
