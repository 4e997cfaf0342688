// Package selector picks practice and exam questions from the stored pool.
package selector

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/haneul/aiquest/internal/quiz"
)

// redrawAttempts bounds how often Select redraws to avoid re-serving the
// question currently on screen. After that the last draw is served anyway;
// availability beats strict novelty.
const redrawAttempts = 5

// Pool is the read side of the question store.
type Pool interface {
	// Questions returns all stored questions with the given difficulty and
	// type. An empty result is not an error.
	Questions(ctx context.Context, difficulty quiz.Difficulty, qtype quiz.QuestionType) ([]*quiz.Question, error)
}

// Filter describes one selection request.
type Filter struct {
	Difficulty quiz.Difficulty
	Type       quiz.QuestionType

	// Exclude removes questions permanently for this request (already passed,
	// already shown this session).
	Exclude map[string]bool

	// CurrentID is the question on screen. Unlike Exclude it is only avoided
	// on a best-effort basis ("different question" requests).
	CurrentID string
}

// Selector draws uniformly at random from a Pool.
type Selector struct {
	pool Pool
	intn func(n int) int
}

// New creates a Selector over the given pool.
func New(pool Pool) *Selector {
	return &Selector{pool: pool, intn: rand.IntN}
}

// NewWithRand creates a Selector with an injected random source for tests.
func NewWithRand(pool Pool, intn func(n int) int) *Selector {
	return &Selector{pool: pool, intn: intn}
}

// Select draws one question matching the filter, or nil (with no error)
// when nothing matches. A pool read failure is returned as an error.
func (s *Selector) Select(ctx context.Context, f Filter) (*quiz.Question, error) {
	all, err := s.pool.Questions(ctx, f.Difficulty, f.Type)
	if err != nil {
		return nil, fmt.Errorf("query question pool: %w", err)
	}

	candidates := all[:0:0]
	for _, q := range all {
		if !f.Exclude[q.ID] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	q := candidates[s.intn(len(candidates))]
	for attempt := 0; attempt < redrawAttempts && q.ID == f.CurrentID; attempt++ {
		q = candidates[s.intn(len(candidates))]
	}
	return q, nil
}
