package quiz

import "fmt"

// Difficulty is the ordered question difficulty scale.
type Difficulty string

const (
	DifficultyVeryEasy Difficulty = "very_easy"
	DifficultyEasy     Difficulty = "easy"
	DifficultyNormal   Difficulty = "normal"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// Difficulties lists all difficulties from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{
		DifficultyVeryEasy,
		DifficultyEasy,
		DifficultyNormal,
		DifficultyHard,
		DifficultyVeryHard,
	}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyVeryEasy, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyVeryHard:
		return true
	}
	return false
}

// Rank returns the position of d on the scale (0 = easiest).
// Unknown difficulties rank below very_easy.
func (d Difficulty) Rank() int {
	for i, x := range Difficulties() {
		if x == d {
			return i
		}
	}
	return -1
}

// Label returns a display name for the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyVeryEasy:
		return "Very Easy"
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyVeryHard:
		return "Very Hard"
	}
	return string(d)
}

// QuestionType distinguishes the practice pool from promotion exam items.
type QuestionType string

const (
	TypePractice QuestionType = "practice"
	TypeExam     QuestionType = "exam"
)

// OptionIDs is the closed alphabet of option identifiers. Correct answers
// outside this set fail validation.
var OptionIDs = []string{"A", "B", "C", "D"}

// Option is one selectable choice within a Step. Weight 1.0 marks the
// unique correct choice; other weights are metadata used only by the
// secondary weighted-score mode.
type Option struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Weight   float64 `json:"weight"`
	Feedback string  `json:"feedback,omitempty"`
}

// Step is one sub-question within a multi-part Question, presented and
// answered independently.
type Step struct {
	Title   string   `json:"title"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// CorrectOption returns the option carrying weight exactly 1.0, or false
// when no such option exists.
func (s Step) CorrectOption() (Option, bool) {
	for _, o := range s.Options {
		if o.Weight == 1.0 {
			return o, true
		}
	}
	return Option{}, false
}

// Option looks up an option by identifier.
func (s Step) Option(id string) (Option, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Question is a multi-step scenario question. Questions are seeded into the
// store externally and read-only to the engine.
type Question struct {
	ID         string       `json:"id"`
	Difficulty Difficulty   `json:"difficulty"`
	Type       QuestionType `json:"type"`
	Scenario   string       `json:"scenario"`
	Steps      []Step       `json:"steps"`
}

// Validate checks structural integrity: a non-empty ID and scenario, a
// known difficulty and type, and per step at least two options with
// exactly one correct choice drawn from OptionIDs.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no ID")
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
	}
	if q.Type != TypePractice && q.Type != TypeExam {
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	if q.Scenario == "" {
		return fmt.Errorf("question %s: empty scenario", q.ID)
	}
	if len(q.Steps) == 0 {
		return fmt.Errorf("question %s: no steps", q.ID)
	}
	for i, s := range q.Steps {
		if len(s.Options) < 2 {
			return fmt.Errorf("question %s step %d: needs at least two options", q.ID, i+1)
		}
		correct := 0
		for _, o := range s.Options {
			if !validOptionID(o.ID) {
				return fmt.Errorf("question %s step %d: option ID %q outside %v", q.ID, i+1, o.ID, OptionIDs)
			}
			if o.Weight == 1.0 {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("question %s step %d: expected exactly one correct option, found %d", q.ID, i+1, correct)
		}
	}
	return nil
}

// Submission is the ordered sequence of selected option identifiers,
// one per step.
type Submission []string
