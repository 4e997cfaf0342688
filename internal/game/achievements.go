package game

import "time"

// Achievement is a named unlock with its bonus XP.
type Achievement struct {
	ID      string
	Name    string
	Desc    string
	Icon    string
	BonusXP int
}

// Catalog of every achievement. IDs are stable; the store enforces
// once-per-user grants.
var achievementCatalog = []Achievement{
	{ID: "first_solve", Name: "First Steps", Desc: "Pass your first question", Icon: "👣", BonusXP: 50},
	{ID: "streak_5", Name: "On a Roll", Desc: "Pass 5 questions in a row", Icon: "🔥", BonusXP: 100},
	{ID: "streak_10", Name: "Unstoppable", Desc: "Pass 10 questions in a row", Icon: "⚡", BonusXP: 200},
	{ID: "speed_demon", Name: "Speed Demon", Desc: "Pass a question in under 30 seconds", Icon: "🏎️", BonusXP: 150},
	{ID: "token_saver", Name: "Token Saver", Desc: "Pass with under 200 judge tokens", Icon: "🪙", BonusXP: 100},
	{ID: "perfect_exam", Name: "Flawless", Desc: "Pass every question in a promotion exam", Icon: "💯", BonusXP: 300},
	{ID: "ai_enthusiast", Name: "AI Enthusiast", Desc: "Pass 100 questions", Icon: "🤖", BonusXP: 500},
	{ID: "comeback_kid", Name: "Comeback Kid", Desc: "Pass right after a fail", Icon: "🪃", BonusXP: 150},
}

// AchievementByID returns the catalog entry for an ID.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range achievementCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Achievements returns the full catalog in display order.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

const (
	speedDemonThreshold = 30 * time.Second
	tokenSaverThreshold = 200
	enthusiastThreshold = 100
)

// attemptFacts is what the unlock conditions see after one graded attempt.
type attemptFacts struct {
	passed         bool
	timeTaken      time.Duration
	tokensUsed     int
	totalCorrect   int // after this attempt
	currentStreak  int // after this attempt
	previousFailed bool
}

// earnedAchievements returns the IDs whose conditions hold for this attempt.
// The store filters out already-granted ones.
func earnedAchievements(f attemptFacts) []string {
	if !f.passed {
		return nil
	}

	var ids []string
	if f.totalCorrect == 1 {
		ids = append(ids, "first_solve")
	}
	if f.currentStreak >= 5 {
		ids = append(ids, "streak_5")
	}
	if f.currentStreak >= 10 {
		ids = append(ids, "streak_10")
	}
	if f.timeTaken > 0 && f.timeTaken < speedDemonThreshold {
		ids = append(ids, "speed_demon")
	}
	if f.tokensUsed > 0 && f.tokensUsed < tokenSaverThreshold {
		ids = append(ids, "token_saver")
	}
	if f.totalCorrect >= enthusiastThreshold {
		ids = append(ids, "ai_enthusiast")
	}
	if f.previousFailed {
		ids = append(ids, "comeback_kid")
	}
	return ids
}
