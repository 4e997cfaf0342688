// Package game orchestrates grading: it wires the evaluator, judge, reward
// table, and progression rules to the store and exposes the operations the
// CLI and TUI surfaces call.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haneul/aiquest/internal/judge"
	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/quiz"
	"github.com/haneul/aiquest/internal/reward"
	"github.com/haneul/aiquest/internal/selector"
	"github.com/haneul/aiquest/internal/store"
)

// ErrNoQuestions indicates the question pool has nothing left to serve for
// the requested filter.
var ErrNoQuestions = errors.New("no questions available")

// Engine grades submissions and maintains learner progress.
type Engine struct {
	users     store.UserRepo
	questions store.QuestionRepo
	events    store.EventRepo
	sel       *selector.Selector
	grader    judge.Judge
	rewards   reward.Config

	now func() time.Time
}

// NewEngine wires an Engine. The reward table and level ladder are
// validated here; a broken table is a startup failure, not a per-grade one.
func NewEngine(users store.UserRepo, questions store.QuestionRepo, events store.EventRepo, grader judge.Judge, rewards reward.Config) (*Engine, error) {
	if err := rewards.Validate(); err != nil {
		return nil, fmt.Errorf("reward config: %w", err)
	}
	if err := progression.ValidateLevelTable(); err != nil {
		return nil, err
	}
	return &Engine{
		users:     users,
		questions: questions,
		events:    events,
		sel:       selector.New(questions),
		grader:    grader,
		rewards:   rewards,
		now:       time.Now,
	}, nil
}

// GradeOutcome is everything a surface needs to render one graded attempt.
type GradeOutcome struct {
	Outcome quiz.Outcome
	Verdict *judge.Verdict

	// XPEarned is the question award; BonusXP adds achievement bonuses.
	XPEarned int
	BonusXP  int

	// Progress is the learner's state after this attempt, as persisted.
	Progress progression.Progress

	// LeveledUp is set when the attempt promoted the learner directly.
	LeveledUp bool

	// ExamAvailable is set when thresholds are met but promotion requires
	// passing an exam; ExamTarget is the level it would grant.
	ExamAvailable bool
	ExamTarget    int

	Unlocked []Achievement
}

// SubmitAnswer grades a completed session: answer-key evaluation, judging,
// XP, progress update, achievement checks, and the promotion check, with
// everything persisted before returning. Any write failure surfaces as an
// error and the grade is not considered recorded.
func (e *Engine) SubmitAnswer(ctx context.Context, sc *SessionContext) (*GradeOutcome, error) {
	u, err := e.users.GetOrCreate(ctx, sc.User)
	if err != nil {
		return nil, err
	}

	outcome := quiz.Evaluate(sc.Question, sc.Answers)
	weighted := quiz.WeightedScore(sc.Question, sc.Answers)

	verdict, err := e.grader.Judge(ctx, judge.Request{
		Question:      sc.Question,
		Submission:    sc.Answers,
		Outcome:       outcome,
		WeightedScore: weighted,
	})
	if err != nil {
		return nil, fmt.Errorf("judge submission: %w", err)
	}

	timeTaken := e.now().Sub(sc.StartedAt)
	score := verdict.Total()
	xp := e.rewards.ComputeXP(reward.Input{
		Passed:        outcome.Passed,
		TimeTaken:     timeTaken,
		ResourceUnits: verdict.TokensUsed,
		Difficulty:    sc.Question.Difficulty,
		Score:         &score,
	})

	// The previous attempt's result feeds the comeback check; read it
	// before this attempt is appended.
	previousFailed := false
	if outcome.Passed {
		last, err := e.events.QueryAttempts(ctx, sc.User, store.QueryOpts{Limit: 1})
		if err != nil {
			return nil, fmt.Errorf("query previous attempt: %w", err)
		}
		previousFailed = len(last) == 1 && !last[0].Passed
	}

	progress := progression.ApplyResult(u.Progress, outcome.Passed, xp)

	err = e.events.AppendAttempt(ctx, store.AttemptEventData{
		UserName:     sc.User,
		QuestionID:   sc.Question.ID,
		Difficulty:   string(sc.Question.Difficulty),
		QuestionType: string(sc.Question.Type),
		Passed:       outcome.Passed,
		Score:        score,
		XPEarned:     xp,
		TimeMs:       timeTaken.Milliseconds(),
		TokensUsed:   verdict.TokensUsed,
		Simulated:    verdict.Simulated,
		Feedback:     verdict.Feedback,
	})
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	unlocked, bonus, err := e.grantAchievements(ctx, sc.User, attemptFacts{
		passed:         outcome.Passed,
		timeTaken:      timeTaken,
		tokensUsed:     verdict.TokensUsed,
		totalCorrect:   progress.TotalCorrect,
		currentStreak:  progress.CurrentStreak,
		previousFailed: previousFailed,
	})
	if err != nil {
		return nil, err
	}
	progress.XP += bonus

	out := &GradeOutcome{
		Outcome:  outcome,
		Verdict:  verdict,
		XPEarned: xp,
		BonusXP:  bonus,
		Unlocked: unlocked,
	}

	if target, ok := progression.EligibleForPromotion(progress); ok {
		hasExam, err := e.examPoolExists(ctx, target)
		if err != nil {
			return nil, err
		}
		if hasExam {
			out.ExamAvailable = true
			out.ExamTarget = target
		} else {
			// No exam bank for this target; thresholds alone promote.
			promoted, err := progression.ApplyLevelTransition(progress, progression.ContinuousPromotion, target)
			if err != nil {
				return nil, fmt.Errorf("apply promotion: %w", err)
			}
			progress = promoted
			progress.XP += e.rewards.LevelUpBonus
			out.LeveledUp = true
		}
	}

	if err := e.users.SaveProgress(ctx, sc.User, progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	out.Progress = progress
	return out, nil
}

// NextQuestion serves a practice question the user has not passed yet,
// avoiding the question currently on screen. An empty difficulty means
// "match the user's level". Returns ErrNoQuestions when the pool for the
// filter is exhausted.
func (e *Engine) NextQuestion(ctx context.Context, user string, difficulty quiz.Difficulty, currentID string) (*quiz.Question, error) {
	if difficulty == "" {
		u, err := e.users.GetOrCreate(ctx, user)
		if err != nil {
			return nil, err
		}
		difficulty = DifficultyForLevel(u.Progress.Level)
	}

	passed, err := e.events.PassedQuestionIDs(ctx, user)
	if err != nil {
		return nil, err
	}

	q, err := e.sel.Select(ctx, selector.Filter{
		Difficulty: difficulty,
		Type:       quiz.TypePractice,
		Exclude:    passed,
		CurrentID:  currentID,
	})
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrNoQuestions
	}
	return q, nil
}

// Leaderboard returns the ranked user list.
func (e *Engine) Leaderboard(ctx context.Context, limit int) ([]store.User, error) {
	return e.users.Leaderboard(ctx, limit)
}

// DifficultyForLevel maps the five levels onto the five difficulty tiers.
func DifficultyForLevel(level int) quiz.Difficulty {
	tiers := quiz.Difficulties()
	if level < 1 {
		level = 1
	}
	if level > len(tiers) {
		level = len(tiers)
	}
	return tiers[level-1]
}

// grantAchievements appends every newly earned unlock and returns them with
// the summed bonus XP. Already-held achievements are skipped by the store.
func (e *Engine) grantAchievements(ctx context.Context, user string, facts attemptFacts) ([]Achievement, int, error) {
	var unlocked []Achievement
	bonus := 0
	for _, id := range earnedAchievements(facts) {
		a, ok := AchievementByID(id)
		if !ok {
			continue
		}
		granted, err := e.events.AppendAchievement(ctx, store.AchievementEventData{
			UserName:      user,
			AchievementID: a.ID,
			BonusXP:       a.BonusXP,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("grant achievement %s: %w", a.ID, err)
		}
		if granted {
			unlocked = append(unlocked, a)
			bonus += a.BonusXP
		}
	}
	return unlocked, bonus, nil
}

// examPoolExists reports whether any exam question exists for the target
// level's blueprint difficulties.
func (e *Engine) examPoolExists(ctx context.Context, target int) (bool, error) {
	seen := map[quiz.Difficulty]bool{}
	for _, slot := range progression.ExamBlueprint(target) {
		if seen[slot.Difficulty] {
			continue
		}
		seen[slot.Difficulty] = true
		qs, err := e.questions.Questions(ctx, slot.Difficulty, quiz.TypeExam)
		if err != nil {
			return false, fmt.Errorf("check exam pool: %w", err)
		}
		if len(qs) > 0 {
			return true, nil
		}
	}
	return false, nil
}
