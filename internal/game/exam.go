package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haneul/aiquest/internal/judge"
	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/quiz"
	"github.com/haneul/aiquest/internal/reward"
	"github.com/haneul/aiquest/internal/selector"
	"github.com/haneul/aiquest/internal/store"
)

// ErrNotEligible indicates the user has not met the next level's thresholds.
var ErrNotEligible = errors.New("not eligible for a promotion exam")

// Exam is an assembled promotion exam awaiting submission.
type Exam struct {
	ID          string
	User        string
	TargetLevel int
	Questions   []*quiz.Question
	StartedAt   time.Time
}

// ExamQuestionGrade is one graded exam question.
type ExamQuestionGrade struct {
	Question *quiz.Question
	Outcome  quiz.Outcome
	Verdict  *judge.Verdict
	XPEarned int
}

// ExamOutcome is the result of a submitted exam.
type ExamOutcome struct {
	Result progression.ExamResult
	Grades []ExamQuestionGrade

	// XPEarned totals the per-question awards plus the level-up bonus.
	XPEarned int

	Progress progression.Progress
	Promoted bool
	Unlocked []Achievement
}

// BuildExam assembles a promotion exam from the target level's blueprint.
// Slots fall back to the practice pool when the exam pool has no match;
// slots with no question at all are dropped rather than blocking the exam.
func (e *Engine) BuildExam(ctx context.Context, user string) (*Exam, error) {
	u, err := e.users.GetOrCreate(ctx, user)
	if err != nil {
		return nil, err
	}

	target, ok := progression.EligibleForPromotion(u.Progress)
	if !ok {
		return nil, fmt.Errorf("level %d: %w", u.Progress.Level, ErrNotEligible)
	}

	chosen := map[string]bool{}
	var questions []*quiz.Question
	for _, slot := range progression.ExamBlueprint(target) {
		q, err := e.sel.Select(ctx, selector.Filter{
			Difficulty: slot.Difficulty,
			Type:       quiz.TypeExam,
			Exclude:    chosen,
		})
		if err != nil {
			return nil, err
		}
		if q == nil {
			q, err = e.sel.Select(ctx, selector.Filter{
				Difficulty: slot.Difficulty,
				Type:       quiz.TypePractice,
				Exclude:    chosen,
			})
			if err != nil {
				return nil, err
			}
		}
		if q == nil {
			continue
		}
		chosen[q.ID] = true
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	return &Exam{
		ID:          uuid.NewString(),
		User:        user,
		TargetLevel: target,
		Questions:   questions,
		StartedAt:   time.Now(),
	}, nil
}

// SubmitExam grades every exam question, records the attempt trail and the
// exam outcome, runs the per-attempt achievement checks, and applies the
// promotion when the pass ratio clears the bar. submissions must align
// one-to-one with exam.Questions.
func (e *Engine) SubmitExam(ctx context.Context, exam *Exam, submissions []quiz.Submission) (*ExamOutcome, error) {
	if len(submissions) != len(exam.Questions) {
		return nil, fmt.Errorf("exam has %d questions, got %d submissions", len(exam.Questions), len(submissions))
	}

	u, err := e.users.GetOrCreate(ctx, exam.User)
	if err != nil {
		return nil, err
	}
	progress := u.Progress
	elapsed := e.now().Sub(exam.StartedAt)

	result := progression.ExamResult{TargetLevel: exam.TargetLevel}
	var grades []ExamQuestionGrade
	var unlocked []Achievement
	totalXP := 0

	// Seed the comeback check with the attempt preceding the exam; inside
	// the loop each question's outcome feeds the next.
	last, err := e.events.QueryAttempts(ctx, exam.User, store.QueryOpts{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("query previous attempt: %w", err)
	}
	previousFailed := len(last) == 1 && !last[0].Passed

	for i, q := range exam.Questions {
		sub := submissions[i]
		outcome := quiz.Evaluate(q, sub)
		weighted := quiz.WeightedScore(q, sub)

		verdict, err := e.grader.Judge(ctx, judge.Request{
			Question:      q,
			Submission:    sub,
			Outcome:       outcome,
			WeightedScore: weighted,
		})
		if err != nil {
			return nil, fmt.Errorf("judge exam question %s: %w", q.ID, err)
		}

		score := verdict.Total()
		xp := e.rewards.ComputeXP(reward.Input{
			Passed:        outcome.Passed,
			TimeTaken:     elapsed,
			ResourceUnits: verdict.TokensUsed,
			Difficulty:    q.Difficulty,
			Score:         &score,
		})

		progress = progression.ApplyResult(progress, outcome.Passed, xp)
		totalXP += xp

		err = e.events.AppendAttempt(ctx, store.AttemptEventData{
			UserName:     exam.User,
			QuestionID:   q.ID,
			Difficulty:   string(q.Difficulty),
			QuestionType: string(quiz.TypeExam),
			Passed:       outcome.Passed,
			Score:        score,
			XPEarned:     xp,
			TimeMs:       elapsed.Milliseconds(),
			TokensUsed:   verdict.TokensUsed,
			Simulated:    verdict.Simulated,
			Feedback:     verdict.Feedback,
		})
		if err != nil {
			return nil, fmt.Errorf("record exam attempt: %w", err)
		}

		earned, bonus, err := e.grantAchievements(ctx, exam.User, attemptFacts{
			passed:         outcome.Passed,
			timeTaken:      elapsed,
			tokensUsed:     verdict.TokensUsed,
			totalCorrect:   progress.TotalCorrect,
			currentStreak:  progress.CurrentStreak,
			previousFailed: previousFailed,
		})
		if err != nil {
			return nil, err
		}
		progress.XP += bonus
		unlocked = append(unlocked, earned...)
		previousFailed = !outcome.Passed

		result.Results = append(result.Results, progression.ExamQuestionResult{
			QuestionID: q.ID,
			Passed:     outcome.Passed,
		})
		grades = append(grades, ExamQuestionGrade{
			Question: q,
			Outcome:  outcome,
			Verdict:  verdict,
			XPEarned: xp,
		})
	}

	out := &ExamOutcome{Result: result, Grades: grades, Unlocked: unlocked}

	if result.Passed() {
		promoted, err := progression.ApplyLevelTransition(progress, progression.ExamPromotion, exam.TargetLevel)
		if err != nil {
			return nil, fmt.Errorf("apply exam promotion: %w", err)
		}
		progress = promoted
		progress.XP += e.rewards.LevelUpBonus
		totalXP += e.rewards.LevelUpBonus
		out.Promoted = true

		if result.PassRatio() == 1.0 {
			if a, ok := AchievementByID("perfect_exam"); ok {
				granted, err := e.events.AppendAchievement(ctx, store.AchievementEventData{
					UserName:      exam.User,
					AchievementID: a.ID,
					BonusXP:       a.BonusXP,
				})
				if err != nil {
					return nil, fmt.Errorf("grant achievement %s: %w", a.ID, err)
				}
				if granted {
					out.Unlocked = append(out.Unlocked, a)
					progress.XP += a.BonusXP
				}
			}
		}
	}

	err = e.events.AppendExam(ctx, store.ExamEventData{
		ExamID:          exam.ID,
		UserName:        exam.User,
		TargetLevel:     exam.TargetLevel,
		Passed:          result.Passed(),
		PassRatio:       result.PassRatio(),
		QuestionsTotal:  len(result.Results),
		QuestionsPassed: passedCount(result),
		XPEarned:        totalXP,
	})
	if err != nil {
		return nil, fmt.Errorf("record exam: %w", err)
	}

	if err := e.users.SaveProgress(ctx, exam.User, progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	out.XPEarned = totalXP
	out.Progress = progress
	return out, nil
}

func passedCount(r progression.ExamResult) int {
	n := 0
	for _, q := range r.Results {
		if q.Passed {
			n++
		}
	}
	return n
}
