package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/haneul/aiquest/internal/quiz"
)

type staticPool struct {
	questions []*quiz.Question
	err       error
}

func (p *staticPool) Questions(ctx context.Context, d quiz.Difficulty, t quiz.QuestionType) ([]*quiz.Question, error) {
	return p.questions, p.err
}

func poolOf(ids ...string) *staticPool {
	qs := make([]*quiz.Question, len(ids))
	for i, id := range ids {
		qs[i] = &quiz.Question{ID: id, Difficulty: quiz.DifficultyNormal, Type: quiz.TypePractice}
	}
	return &staticPool{questions: qs}
}

// fixedRand returns a canned sequence of draws, repeating the last value.
func fixedRand(draws ...int) func(int) int {
	i := 0
	return func(n int) int {
		d := draws[i]
		if i < len(draws)-1 {
			i++
		}
		return d % n
	}
}

func TestSelectEmptyPool(t *testing.T) {
	s := New(poolOf())
	q, err := s.Select(context.Background(), Filter{Difficulty: quiz.DifficultyNormal})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if q != nil {
		t.Errorf("Select() = %v, want nil on empty pool", q.ID)
	}
}

func TestSelectAllExcluded(t *testing.T) {
	s := New(poolOf("q1", "q2"))
	q, err := s.Select(context.Background(), Filter{
		Exclude: map[string]bool{"q1": true, "q2": true},
	})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if q != nil {
		t.Errorf("Select() = %v, want nil when every question is excluded", q.ID)
	}
}

func TestSelectSkipsExcluded(t *testing.T) {
	s := New(poolOf("q1", "q2", "q3"))
	for i := 0; i < 50; i++ {
		q, err := s.Select(context.Background(), Filter{
			Exclude: map[string]bool{"q1": true, "q3": true},
		})
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if q == nil || q.ID != "q2" {
			t.Fatalf("Select() = %v, want q2", q)
		}
	}
}

func TestSelectAvoidsCurrentQuestion(t *testing.T) {
	// First draw lands on the current question, second draw moves off it.
	s := NewWithRand(poolOf("q1", "q2"), fixedRand(0, 1))
	q, err := s.Select(context.Background(), Filter{CurrentID: "q1"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if q.ID != "q2" {
		t.Errorf("Select() = %v, want q2 after redraw", q.ID)
	}
}

func TestSelectServesCurrentWhenOnlyOption(t *testing.T) {
	// Every redraw lands on the sole candidate; the last draw is served
	// rather than returning nothing.
	s := NewWithRand(poolOf("q1"), fixedRand(0))
	q, err := s.Select(context.Background(), Filter{CurrentID: "q1"})
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if q == nil || q.ID != "q1" {
		t.Errorf("Select() = %v, want q1 served despite matching CurrentID", q)
	}
}

func TestSelectPoolError(t *testing.T) {
	poolErr := errors.New("db locked")
	s := New(&staticPool{err: poolErr})
	_, err := s.Select(context.Background(), Filter{})
	if !errors.Is(err, poolErr) {
		t.Errorf("Select() error = %v, want wrapped %v", err, poolErr)
	}
}
