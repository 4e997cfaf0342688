package game

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/haneul/aiquest/internal/judge"
	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/quiz"
	"github.com/haneul/aiquest/internal/reward"
	"github.com/haneul/aiquest/internal/store"
)

type memUsers struct {
	users map[string]*store.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*store.User{}}
}

func (m *memUsers) Get(_ context.Context, name string) (*store.User, error) {
	u, ok := m.users[name]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) GetOrCreate(ctx context.Context, name string) (*store.User, error) {
	if u, _ := m.Get(ctx, name); u != nil {
		return u, nil
	}
	m.users[name] = &store.User{Name: name, Progress: progression.NewProgress(), CreatedAt: time.Now()}
	copied := *m.users[name]
	return &copied, nil
}

func (m *memUsers) SaveProgress(_ context.Context, name string, p progression.Progress) error {
	u, ok := m.users[name]
	if !ok {
		return errors.New("user not found")
	}
	u.Progress = p
	return nil
}

func (m *memUsers) Leaderboard(_ context.Context, limit int) ([]store.User, error) {
	var out []store.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Progress.Level != out[j].Progress.Level {
			return out[i].Progress.Level > out[j].Progress.Level
		}
		return out[i].Progress.XP > out[j].Progress.XP
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memUsers) Reset(_ context.Context, name string) error {
	delete(m.users, name)
	return nil
}

type memQuestions struct {
	questions []*quiz.Question
}

func (m *memQuestions) Seed(_ context.Context, qs []*quiz.Question) error {
	m.questions = append(m.questions, qs...)
	return nil
}

func (m *memQuestions) Questions(_ context.Context, d quiz.Difficulty, t quiz.QuestionType) ([]*quiz.Question, error) {
	var out []*quiz.Question
	for _, q := range m.questions {
		if q.Difficulty == d && q.Type == t {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestions) Get(_ context.Context, id string) (*quiz.Question, error) {
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (m *memQuestions) Count(_ context.Context) (int, error) {
	return len(m.questions), nil
}

type memEvents struct {
	attempts     []store.AttemptEventData
	exams        []store.ExamEventData
	achievements map[string]map[string]bool
	appendErr    error
}

func newMemEvents() *memEvents {
	return &memEvents{achievements: map[string]map[string]bool{}}
}

func (m *memEvents) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.attempts = append(m.attempts, data)
	return nil
}

func (m *memEvents) QueryAttempts(_ context.Context, userName string, opts store.QueryOpts) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for i := len(m.attempts) - 1; i >= 0; i-- {
		if m.attempts[i].UserName != userName {
			continue
		}
		out = append(out, store.AttemptRecord{AttemptEventData: m.attempts[i]})
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *memEvents) PassedQuestionIDs(_ context.Context, userName string) (map[string]bool, error) {
	ids := map[string]bool{}
	for _, a := range m.attempts {
		if a.UserName == userName && a.Passed {
			ids[a.QuestionID] = true
		}
	}
	return ids, nil
}

func (m *memEvents) AppendExam(_ context.Context, data store.ExamEventData) error {
	m.exams = append(m.exams, data)
	return nil
}

func (m *memEvents) QueryExams(_ context.Context, userName string, _ store.QueryOpts) ([]store.ExamRecord, error) {
	var out []store.ExamRecord
	for i := len(m.exams) - 1; i >= 0; i-- {
		if m.exams[i].UserName == userName {
			out = append(out, store.ExamRecord{ExamEventData: m.exams[i]})
		}
	}
	return out, nil
}

func (m *memEvents) AppendAchievement(_ context.Context, data store.AchievementEventData) (bool, error) {
	held := m.achievements[data.UserName]
	if held == nil {
		held = map[string]bool{}
		m.achievements[data.UserName] = held
	}
	if held[data.AchievementID] {
		return false, nil
	}
	held[data.AchievementID] = true
	return true, nil
}

func (m *memEvents) Achievements(_ context.Context, userName string) ([]store.AchievementRecord, error) {
	var out []store.AchievementRecord
	for id := range m.achievements[userName] {
		out = append(out, store.AchievementRecord{
			AchievementEventData: store.AchievementEventData{UserName: userName, AchievementID: id},
		})
	}
	return out, nil
}

func (m *memEvents) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *memEvents) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func (m *memEvents) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestRecord, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (m *memEvents) LLMUsageByModel(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

// practiceQuestion builds a one-step question where A is correct.
func practiceQuestion(id string, d quiz.Difficulty, t quiz.QuestionType) *quiz.Question {
	return &quiz.Question{
		ID:         id,
		Difficulty: d,
		Type:       t,
		Scenario:   "An AI tool suggests sharing internal data.",
		Steps: []quiz.Step{
			{
				Text: "What do you do?",
				Options: []quiz.Option{
					{ID: "A", Text: "Decline and check policy", Weight: 1.0, Feedback: "Policy first."},
					{ID: "B", Text: "Share it", Weight: 0.0, Feedback: "Never share internal data."},
				},
			},
		},
	}
}

type fixture struct {
	engine    *Engine
	users     *memUsers
	questions *memQuestions
	events    *memEvents
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := newMemUsers()
	questions := &memQuestions{}
	events := newMemEvents()

	eng, err := NewEngine(users, questions, events, judge.NewHeuristicJudge(), reward.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	eng.now = func() time.Time { return now }

	return &fixture{engine: eng, users: users, questions: questions, events: events, now: now}
}

func (f *fixture) session(user string, q *quiz.Question, elapsed time.Duration, answers ...string) *SessionContext {
	return &SessionContext{
		SessionID: "s1",
		User:      user,
		Question:  q,
		Answers:   quiz.Submission(answers),
		StartedAt: f.now.Add(-elapsed),
	}
}

func TestSubmitAnswerPass(t *testing.T) {
	f := newFixture(t)
	q := practiceQuestion("q1", quiz.DifficultyNormal, quiz.TypePractice)

	out, err := f.engine.SubmitAnswer(context.Background(), f.session("haneul", q, 10*time.Second, "A"))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if !out.Outcome.Passed {
		t.Fatal("expected pass")
	}
	// base 50 * 1.2 = 60, speed 30, efficiency 20, perfection 100.
	if out.XPEarned != 210 {
		t.Errorf("XPEarned = %d, want 210", out.XPEarned)
	}
	if out.Progress.CurrentStreak != 1 || out.Progress.TotalCorrect != 1 {
		t.Errorf("progress = %+v", out.Progress)
	}

	// first_solve and speed_demon unlock on this attempt.
	ids := map[string]bool{}
	for _, a := range out.Unlocked {
		ids[a.ID] = true
	}
	if !ids["first_solve"] || !ids["speed_demon"] {
		t.Errorf("unlocked = %v, want first_solve and speed_demon", out.Unlocked)
	}
	if out.BonusXP == 0 {
		t.Error("expected achievement bonus XP")
	}
	if out.Progress.XP != out.XPEarned+out.BonusXP {
		t.Errorf("XP = %d, want %d", out.Progress.XP, out.XPEarned+out.BonusXP)
	}

	if len(f.events.attempts) != 1 {
		t.Fatalf("attempts recorded = %d, want 1", len(f.events.attempts))
	}
	rec := f.events.attempts[0]
	if !rec.Passed || rec.QuestionID != "q1" || !rec.Simulated {
		t.Errorf("attempt record = %+v", rec)
	}

	// Persisted state matches the returned outcome.
	u, _ := f.users.Get(context.Background(), "haneul")
	if u.Progress != out.Progress {
		t.Errorf("persisted = %+v, returned = %+v", u.Progress, out.Progress)
	}
}

func TestSubmitAnswerFail(t *testing.T) {
	f := newFixture(t)
	q := practiceQuestion("q1", quiz.DifficultyNormal, quiz.TypePractice)

	out, err := f.engine.SubmitAnswer(context.Background(), f.session("haneul", q, 2*time.Minute, "B"))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if out.Outcome.Passed {
		t.Fatal("expected fail")
	}
	// base 10 * 1.2 = 12, efficiency 20; too slow for the speed bonus.
	if out.XPEarned != 32 {
		t.Errorf("XPEarned = %d, want 32", out.XPEarned)
	}
	if out.Progress.CurrentStreak != 0 || out.Progress.TotalCorrect != 0 {
		t.Errorf("progress = %+v", out.Progress)
	}
	if len(out.Unlocked) != 0 {
		t.Errorf("unlocked = %v, want none on fail", out.Unlocked)
	}
}

func TestSubmitAnswerComebackKid(t *testing.T) {
	f := newFixture(t)
	q := practiceQuestion("q1", quiz.DifficultyNormal, quiz.TypePractice)
	ctx := context.Background()

	if _, err := f.engine.SubmitAnswer(ctx, f.session("haneul", q, time.Minute, "B")); err != nil {
		t.Fatalf("fail attempt: %v", err)
	}
	out, err := f.engine.SubmitAnswer(ctx, f.session("haneul", q, time.Minute, "A"))
	if err != nil {
		t.Fatalf("pass attempt: %v", err)
	}

	found := false
	for _, a := range out.Unlocked {
		if a.ID == "comeback_kid" {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocked = %v, want comeback_kid", out.Unlocked)
	}
}

func TestSubmitAnswerWriteFailure(t *testing.T) {
	f := newFixture(t)
	f.events.appendErr = errors.New("disk full")
	q := practiceQuestion("q1", quiz.DifficultyNormal, quiz.TypePractice)

	_, err := f.engine.SubmitAnswer(context.Background(), f.session("haneul", q, time.Minute, "A"))
	if err == nil {
		t.Fatal("expected write failure to surface")
	}

	// Progress must not advance when the attempt was not recorded.
	u, _ := f.users.Get(context.Background(), "haneul")
	if u.Progress.TotalAttempted != 0 {
		t.Errorf("progress advanced despite write failure: %+v", u.Progress)
	}
}

// promotableProgress clears level 2's thresholds once one more pass lands.
func promotableProgress() progression.Progress {
	return progression.Progress{
		Level: 1, XP: 500,
		TotalAttempted: 40, TotalCorrect: 30,
		CurrentStreak: 2, BestStreak: 5,
	}
}

func TestSubmitAnswerExamGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.GetOrCreate(ctx, "haneul"); err != nil {
		t.Fatal(err)
	}
	if err := f.users.SaveProgress(ctx, "haneul", promotableProgress()); err != nil {
		t.Fatal(err)
	}
	// An exam bank exists for the target level's blueprint.
	f.questions.Seed(ctx, []*quiz.Question{practiceQuestion("e1", quiz.DifficultyEasy, quiz.TypeExam)})

	q := practiceQuestion("q1", quiz.DifficultyNormal, quiz.TypePractice)
	out, err := f.engine.SubmitAnswer(ctx, f.session("haneul", q, time.Minute, "A"))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if out.LeveledUp {
		t.Error("promotion must go through the exam when a bank exists")
	}
	if !out.ExamAvailable || out.ExamTarget != 2 {
		t.Errorf("ExamAvailable = %v, ExamTarget = %d, want true/2", out.ExamAvailable, out.ExamTarget)
	}
	if out.Progress.Level != 1 {
		t.Errorf("level = %d, want 1", out.Progress.Level)
	}
}

func TestSubmitAnswerContinuousPromotion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.GetOrCreate(ctx, "haneul"); err != nil {
		t.Fatal(err)
	}
	if err := f.users.SaveProgress(ctx, "haneul", promotableProgress()); err != nil {
		t.Fatal(err)
	}

	// No exam bank seeded: thresholds alone promote.
	q := practiceQuestion("q1", quiz.DifficultyNormal, quiz.TypePractice)
	out, err := f.engine.SubmitAnswer(ctx, f.session("haneul", q, time.Minute, "A"))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if !out.LeveledUp {
		t.Fatal("expected continuous promotion")
	}
	if out.Progress.Level != 2 {
		t.Errorf("level = %d, want 2", out.Progress.Level)
	}
}

func TestNextQuestionExcludesPassed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.questions.Seed(ctx, []*quiz.Question{
		practiceQuestion("q1", quiz.DifficultyNormal, quiz.TypePractice),
		practiceQuestion("q2", quiz.DifficultyNormal, quiz.TypePractice),
	})
	f.events.attempts = append(f.events.attempts, store.AttemptEventData{
		UserName: "haneul", QuestionID: "q1", Passed: true,
	})

	for i := 0; i < 20; i++ {
		q, err := f.engine.NextQuestion(ctx, "haneul", quiz.DifficultyNormal, "")
		if err != nil {
			t.Fatalf("NextQuestion: %v", err)
		}
		if q.ID != "q2" {
			t.Fatalf("served %s, want q2 (q1 already passed)", q.ID)
		}
	}
}

func TestNextQuestionExhaustedPool(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.NextQuestion(context.Background(), "haneul", quiz.DifficultyNormal, "")
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestNextQuestionDifficultyFromLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// A fresh level-1 user gets the easiest tier when no difficulty given.
	f.questions.Seed(ctx, []*quiz.Question{
		practiceQuestion("q1", quiz.DifficultyVeryEasy, quiz.TypePractice),
		practiceQuestion("q2", quiz.DifficultyHard, quiz.TypePractice),
	})

	q, err := f.engine.NextQuestion(ctx, "haneul", "", "")
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if q.ID != "q1" {
		t.Errorf("served %s, want the very-easy q1", q.ID)
	}
}

func TestDifficultyForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  quiz.Difficulty
	}{
		{0, quiz.DifficultyVeryEasy},
		{1, quiz.DifficultyVeryEasy},
		{3, quiz.DifficultyNormal},
		{5, quiz.DifficultyVeryHard},
		{9, quiz.DifficultyVeryHard},
	}
	for _, tt := range tests {
		if got := DifficultyForLevel(tt.level); got != tt.want {
			t.Errorf("DifficultyForLevel(%d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestBuildExamNotEligible(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.BuildExam(context.Background(), "haneul")
	if !errors.Is(err, ErrNotEligible) {
		t.Errorf("err = %v, want ErrNotEligible", err)
	}
}

func TestBuildAndSubmitExam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.GetOrCreate(ctx, "haneul"); err != nil {
		t.Fatal(err)
	}
	if err := f.users.SaveProgress(ctx, "haneul", promotableProgress()); err != nil {
		t.Fatal(err)
	}

	// Level 2 blueprint wants 3 easy + 2 normal.
	f.questions.Seed(ctx, []*quiz.Question{
		practiceQuestion("e1", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("e2", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("e3", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("n1", quiz.DifficultyNormal, quiz.TypeExam),
		practiceQuestion("n2", quiz.DifficultyNormal, quiz.TypeExam),
	})

	exam, err := f.engine.BuildExam(ctx, "haneul")
	if err != nil {
		t.Fatalf("BuildExam: %v", err)
	}
	if exam.TargetLevel != 2 {
		t.Errorf("target = %d, want 2", exam.TargetLevel)
	}
	if len(exam.Questions) != 5 {
		t.Fatalf("exam size = %d, want 5", len(exam.Questions))
	}
	seen := map[string]bool{}
	for _, q := range exam.Questions {
		if seen[q.ID] {
			t.Errorf("question %s repeated in one exam", q.ID)
		}
		seen[q.ID] = true
	}

	exam.StartedAt = f.now.Add(-5 * time.Minute)
	subs := make([]quiz.Submission, len(exam.Questions))
	for i := range subs {
		subs[i] = quiz.Submission{"A"}
	}

	out, err := f.engine.SubmitExam(ctx, exam, subs)
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}

	if !out.Result.Passed() || !out.Promoted {
		t.Fatalf("result = %+v, Promoted = %v", out.Result, out.Promoted)
	}
	if out.Progress.Level != 2 {
		t.Errorf("level = %d, want 2", out.Progress.Level)
	}
	perfect := false
	for _, a := range out.Unlocked {
		if a.ID == "perfect_exam" {
			perfect = true
		}
	}
	if !perfect {
		t.Errorf("unlocked = %v, want perfect_exam", out.Unlocked)
	}

	if len(f.events.exams) != 1 {
		t.Fatalf("exam events = %d, want 1", len(f.events.exams))
	}
	rec := f.events.exams[0]
	if !rec.Passed || rec.QuestionsPassed != 5 || rec.PassRatio != 1.0 {
		t.Errorf("exam record = %+v", rec)
	}
	// One attempt event per exam question.
	if len(f.events.attempts) != 5 {
		t.Errorf("attempt events = %d, want 5", len(f.events.attempts))
	}
}

func TestSubmitExamGrantsPerQuestionAchievements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.GetOrCreate(ctx, "haneul"); err != nil {
		t.Fatal(err)
	}
	if err := f.users.SaveProgress(ctx, "haneul", promotableProgress()); err != nil {
		t.Fatal(err)
	}
	f.questions.Seed(ctx, []*quiz.Question{
		practiceQuestion("e1", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("e2", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("e3", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("n1", quiz.DifficultyNormal, quiz.TypeExam),
		practiceQuestion("n2", quiz.DifficultyNormal, quiz.TypeExam),
	})

	exam, err := f.engine.BuildExam(ctx, "haneul")
	if err != nil {
		t.Fatalf("BuildExam: %v", err)
	}
	exam.StartedAt = f.now.Add(-5 * time.Minute)
	subs := make([]quiz.Submission, len(exam.Questions))
	for i := range subs {
		subs[i] = quiz.Submission{"A"}
	}

	out, err := f.engine.SubmitExam(ctx, exam, subs)
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}

	// Streak runs 2 -> 7 across the exam, so streak_5 unlocks on the third
	// question, alongside perfect_exam at the end.
	ids := map[string]bool{}
	for _, a := range out.Unlocked {
		ids[a.ID] = true
	}
	if !ids["streak_5"] {
		t.Errorf("unlocked = %v, want streak_5 from the mid-exam streak", out.Unlocked)
	}
	if !ids["perfect_exam"] {
		t.Errorf("unlocked = %v, want perfect_exam", out.Unlocked)
	}
	if !f.events.achievements["haneul"]["streak_5"] {
		t.Error("streak_5 grant was not recorded")
	}
}

func TestAchievementCatalogBonuses(t *testing.T) {
	want := map[string]int{
		"first_solve":   50,
		"streak_5":      100,
		"streak_10":     200,
		"speed_demon":   150,
		"token_saver":   100,
		"perfect_exam":  300,
		"ai_enthusiast": 500,
		"comeback_kid":  150,
	}

	all := Achievements()
	if len(all) != len(want) {
		t.Fatalf("catalog size = %d, want %d", len(all), len(want))
	}
	for _, a := range all {
		if a.BonusXP != want[a.ID] {
			t.Errorf("%s BonusXP = %d, want %d", a.ID, a.BonusXP, want[a.ID])
		}
	}
}

func TestSubmitExamPartialFailKeepsLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.GetOrCreate(ctx, "haneul"); err != nil {
		t.Fatal(err)
	}
	if err := f.users.SaveProgress(ctx, "haneul", promotableProgress()); err != nil {
		t.Fatal(err)
	}
	f.questions.Seed(ctx, []*quiz.Question{
		practiceQuestion("e1", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("e2", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("e3", quiz.DifficultyEasy, quiz.TypeExam),
		practiceQuestion("n1", quiz.DifficultyNormal, quiz.TypeExam),
		practiceQuestion("n2", quiz.DifficultyNormal, quiz.TypeExam),
	})

	exam, err := f.engine.BuildExam(ctx, "haneul")
	if err != nil {
		t.Fatalf("BuildExam: %v", err)
	}
	exam.StartedAt = f.now.Add(-5 * time.Minute)

	// 3 of 5 passes is under the 0.8 bar.
	subs := []quiz.Submission{{"A"}, {"A"}, {"A"}, {"B"}, {"B"}}
	out, err := f.engine.SubmitExam(ctx, exam, subs)
	if err != nil {
		t.Fatalf("SubmitExam: %v", err)
	}

	if out.Promoted {
		t.Error("3/5 must not promote")
	}
	if out.Progress.Level != 1 {
		t.Errorf("level = %d, want 1", out.Progress.Level)
	}
	if len(f.events.exams) != 1 || f.events.exams[0].Passed {
		t.Errorf("exam record = %+v", f.events.exams)
	}
}
