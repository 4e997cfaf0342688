package store

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/ent"
	"github.com/haneul/aiquest/ent/question"
	entschema "github.com/haneul/aiquest/ent/schema"
	"github.com/haneul/aiquest/internal/quiz"
)

// questionRepo implements QuestionRepo backed by ent.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Seed(ctx context.Context, questions []*quiz.Question) error {
	for _, q := range questions {
		steps := toStepRecords(q.Steps)

		err := r.client.Question.Create().
			SetQid(q.ID).
			SetDifficulty(string(q.Difficulty)).
			SetQtype(string(q.Type)).
			SetScenario(q.Scenario).
			SetSteps(steps).
			OnConflictColumns(question.FieldQid).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed question %q: %w", q.ID, err)
		}
	}
	return nil
}

func (r *questionRepo) Questions(ctx context.Context, difficulty quiz.Difficulty, qtype quiz.QuestionType) ([]*quiz.Question, error) {
	rows, err := r.client.Question.Query().
		Where(
			question.Difficulty(string(difficulty)),
			question.Qtype(string(qtype)),
		).
		Order(ent.Asc(question.FieldQid)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	out := make([]*quiz.Question, len(rows))
	for i, row := range rows {
		out[i] = fromEntQuestion(row)
	}
	return out, nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*quiz.Question, error) {
	row, err := r.client.Question.Query().
		Where(question.Qid(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question %q: %w", id, err)
	}
	return fromEntQuestion(row), nil
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func toStepRecords(steps []quiz.Step) []entschema.StepRecord {
	out := make([]entschema.StepRecord, len(steps))
	for i, s := range steps {
		options := make([]entschema.OptionRecord, len(s.Options))
		for j, o := range s.Options {
			options[j] = entschema.OptionRecord{
				ID:       o.ID,
				Text:     o.Text,
				Weight:   o.Weight,
				Feedback: o.Feedback,
			}
		}
		out[i] = entschema.StepRecord{
			Title:   s.Title,
			Text:    s.Text,
			Options: options,
		}
	}
	return out
}

func fromEntQuestion(row *ent.Question) *quiz.Question {
	steps := make([]quiz.Step, len(row.Steps))
	for i, s := range row.Steps {
		options := make([]quiz.Option, len(s.Options))
		for j, o := range s.Options {
			options[j] = quiz.Option{
				ID:       o.ID,
				Text:     o.Text,
				Weight:   o.Weight,
				Feedback: o.Feedback,
			}
		}
		steps[i] = quiz.Step{
			Title:   s.Title,
			Text:    s.Text,
			Options: options,
		}
	}
	return &quiz.Question{
		ID:         row.Qid,
		Difficulty: quiz.Difficulty(row.Difficulty),
		Type:       quiz.QuestionType(row.Qtype),
		Scenario:   row.Scenario,
		Steps:      steps,
	}
}
