package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/haneul/aiquest/internal/quiz"
	"github.com/haneul/aiquest/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Load a question bank into the database",
	Long: `Load questions from a JSON file into the question pool.

The file holds an array of questions; existing questions with the same ID
are replaced. Example entry:

  {
    "id": "prompt-injection-01",
    "difficulty": "normal",
    "type": "practice",
    "scenario": "A chatbot user pastes text containing hidden instructions...",
    "steps": [
      {
        "title": "Spot the risk",
        "text": "What is the main risk here?",
        "options": [
          {"id": "A", "text": "Prompt injection", "weight": 1.0},
          {"id": "B", "text": "Slow responses", "weight": 0.0}
        ]
      }
    ]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		var questions []*quiz.Question
		if err := json.Unmarshal(raw, &questions); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if len(questions) == 0 {
			return fmt.Errorf("%s holds no questions", args[0])
		}
		for _, q := range questions {
			if q.Type == "" {
				q.Type = quiz.TypePractice
			}
			if err := q.Validate(); err != nil {
				return err
			}
		}

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
		if err := st.QuestionRepo().Seed(ctx, questions); err != nil {
			return fmt.Errorf("seed questions: %w", err)
		}

		total, err := st.QuestionRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		fmt.Printf("Seeded %d questions (%d total in pool).\n", len(questions), total)
		return nil
	},
}
