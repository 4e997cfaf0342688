package progression

import "github.com/haneul/aiquest/internal/quiz"

// ExamPassRatio is the fraction of exam questions that must individually
// pass for the exam to pass.
const ExamPassRatio = 0.8

// ExamSlot is one question request in an exam blueprint.
type ExamSlot struct {
	Difficulty quiz.Difficulty
	// Review marks a recap question drawn from an earlier level's pool.
	Review bool
}

// examMix is the per-target-level difficulty composition.
var examMix = map[int][]ExamSlot{
	2: repeatSlots(quiz.DifficultyEasy, 3, quiz.DifficultyNormal, 2),
	3: append(repeatSlots(quiz.DifficultyEasy, 2, quiz.DifficultyNormal, 3), ExamSlot{Difficulty: quiz.DifficultyHard}),
	4: repeatSlots(quiz.DifficultyNormal, 3, quiz.DifficultyHard, 3),
	5: repeatSlots(quiz.DifficultyNormal, 2, quiz.DifficultyHard, 4),
}

func repeatSlots(d1 quiz.Difficulty, n1 int, d2 quiz.Difficulty, n2 int) []ExamSlot {
	out := make([]ExamSlot, 0, n1+n2)
	for range n1 {
		out = append(out, ExamSlot{Difficulty: d1})
	}
	for range n2 {
		out = append(out, ExamSlot{Difficulty: d2})
	}
	return out
}

// ExamBlueprint returns the slots for a promotion exam to the target level.
// Exams to level 4 and above append one review question per earlier level.
// Unknown targets get a five-question easy exam.
func ExamBlueprint(target int) []ExamSlot {
	mix, ok := examMix[target]
	if !ok {
		return repeatSlots(quiz.DifficultyEasy, 5, quiz.DifficultyNormal, 0)
	}

	slots := make([]ExamSlot, len(mix))
	copy(slots, mix)

	if target >= 4 {
		for range target - 1 {
			slots = append(slots, ExamSlot{Difficulty: quiz.DifficultyEasy, Review: true})
		}
	}
	return slots
}

// ExamQuestionResult records the outcome of one exam question.
type ExamQuestionResult struct {
	QuestionID string
	Passed     bool
}

// ExamResult aggregates a finished promotion exam.
type ExamResult struct {
	TargetLevel int
	Results     []ExamQuestionResult
}

// PassRatio returns the fraction of individually-passed questions,
// 0 for an empty exam.
func (e ExamResult) PassRatio() float64 {
	if len(e.Results) == 0 {
		return 0
	}
	passed := 0
	for _, r := range e.Results {
		if r.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(e.Results))
}

// Passed reports whether the exam clears ExamPassRatio.
func (e ExamResult) Passed() bool {
	return len(e.Results) > 0 && e.PassRatio() >= ExamPassRatio
}
