package store

import (
	"context"
	"testing"

	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestUserGetOrCreate(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	// Missing user returns nil without error.
	u, err := repo.Get(ctx, "haneul")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if u != nil {
		t.Fatal("expected nil for missing user")
	}

	u, err = repo.GetOrCreate(ctx, "haneul")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if u.Name != "haneul" {
		t.Errorf("name = %q, want haneul", u.Name)
	}
	if u.Progress.Level != 1 || u.Progress.XP != 0 {
		t.Errorf("fresh user progress = %+v, want level 1 / 0 XP", u.Progress)
	}

	// Second call returns the same row, not a fresh one.
	again, err := repo.GetOrCreate(ctx, "haneul")
	if err != nil {
		t.Fatalf("get or create (again): %v", err)
	}
	if !again.CreatedAt.Equal(u.CreatedAt) {
		t.Error("expected the existing row on second GetOrCreate")
	}
}

func TestUserSaveProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if _, err := repo.GetOrCreate(ctx, "haneul"); err != nil {
		t.Fatalf("create: %v", err)
	}

	p := progression.Progress{
		Level: 2, XP: 640,
		TotalAttempted: 12, TotalCorrect: 9,
		CurrentStreak: 3, BestStreak: 6,
	}
	if err := repo.SaveProgress(ctx, "haneul", p); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	u, err := repo.Get(ctx, "haneul")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Progress != p {
		t.Errorf("progress = %+v, want %+v", u.Progress, p)
	}

	// Saving to a missing user is an error.
	if err := repo.SaveProgress(ctx, "ghost", p); err == nil {
		t.Error("expected error saving progress for missing user")
	}
}

func TestLeaderboardOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	rows := []struct {
		name  string
		level int
		xp    int
	}{
		{"low", 1, 900},
		{"mid", 2, 100},
		{"top", 3, 50},
		{"rich-mid", 2, 800},
	}
	for _, row := range rows {
		if _, err := repo.GetOrCreate(ctx, row.name); err != nil {
			t.Fatalf("create %s: %v", row.name, err)
		}
		err := repo.SaveProgress(ctx, row.name, progression.Progress{Level: row.level, XP: row.xp})
		if err != nil {
			t.Fatalf("save %s: %v", row.name, err)
		}
	}

	board, err := repo.Leaderboard(ctx, 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}

	// Level outranks XP; XP breaks ties within a level.
	want := []string{"top", "rich-mid", "mid", "low"}
	if len(board) != len(want) {
		t.Fatalf("leaderboard size = %d, want %d", len(board), len(want))
	}
	for i, name := range want {
		if board[i].Name != name {
			t.Errorf("board[%d] = %q, want %q", i, board[i].Name, name)
		}
	}

	limited, err := repo.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("leaderboard (limit): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited leaderboard size = %d, want 2", len(limited))
	}
}

func seedQuestion(id string, d quiz.Difficulty) *quiz.Question {
	return &quiz.Question{
		ID:         id,
		Difficulty: d,
		Type:       quiz.TypePractice,
		Scenario:   "A chatbot states a citation that does not exist.",
		Steps: []quiz.Step{
			{
				Text: "What should you do first?",
				Options: []quiz.Option{
					{ID: "A", Text: "Verify the citation", Weight: 1.0, Feedback: "Always verify."},
					{ID: "B", Text: "Trust it", Weight: 0.0, Feedback: "Models fabricate sources."},
				},
			},
		},
	}
}

func TestQuestionSeedAndRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := seedQuestion("q-halluc-1", quiz.DifficultyNormal)
	if err := repo.Seed(ctx, []*quiz.Question{q}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := repo.Get(ctx, "q-halluc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored question")
	}
	if got.Scenario != q.Scenario {
		t.Errorf("scenario = %q, want %q", got.Scenario, q.Scenario)
	}
	if len(got.Steps) != 1 || len(got.Steps[0].Options) != 2 {
		t.Fatalf("steps shape = %+v, want 1 step with 2 options", got.Steps)
	}
	if got.Steps[0].Options[0].Weight != 1.0 {
		t.Errorf("option weight = %v, want 1.0", got.Steps[0].Options[0].Weight)
	}

	// Re-seeding the same ID updates rather than duplicates.
	q.Scenario = "Updated scenario text."
	if err := repo.Seed(ctx, []*quiz.Question{q}); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1 after upsert", count)
	}
	got, err = repo.Get(ctx, "q-halluc-1")
	if err != nil {
		t.Fatalf("get (updated): %v", err)
	}
	if got.Scenario != "Updated scenario text." {
		t.Errorf("scenario = %q, want updated text", got.Scenario)
	}
}

func TestQuestionFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	err := repo.Seed(ctx, []*quiz.Question{
		seedQuestion("q1", quiz.DifficultyEasy),
		seedQuestion("q2", quiz.DifficultyEasy),
		seedQuestion("q3", quiz.DifficultyHard),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	easy, err := repo.Questions(ctx, quiz.DifficultyEasy, quiz.TypePractice)
	if err != nil {
		t.Fatalf("query easy: %v", err)
	}
	if len(easy) != 2 {
		t.Errorf("easy questions = %d, want 2", len(easy))
	}

	exam, err := repo.Questions(ctx, quiz.DifficultyEasy, quiz.TypeExam)
	if err != nil {
		t.Fatalf("query exam: %v", err)
	}
	if len(exam) != 0 {
		t.Errorf("exam questions = %d, want 0", len(exam))
	}
}

func TestAttemptEventsAndPassedIDs(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	appends := []AttemptEventData{
		{UserName: "haneul", QuestionID: "q1", Difficulty: "normal", QuestionType: "practice", Passed: true, Score: 92, XPEarned: 150},
		{UserName: "haneul", QuestionID: "q2", Difficulty: "normal", QuestionType: "practice", Passed: false, Score: 40, XPEarned: 10},
		{UserName: "haneul", QuestionID: "q2", Difficulty: "normal", QuestionType: "practice", Passed: true, Score: 75, XPEarned: 50},
		{UserName: "other", QuestionID: "q3", Difficulty: "easy", QuestionType: "practice", Passed: true, Score: 80, XPEarned: 40},
	}
	for i, data := range appends {
		if err := events.AppendAttempt(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := events.QueryAttempts(ctx, "haneul", QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("attempts = %d, want 3", len(records))
	}
	// Newest first.
	if records[0].QuestionID != "q2" || !records[0].Passed {
		t.Errorf("newest attempt = %+v, want the q2 pass", records[0])
	}

	ids, err := events.PassedQuestionIDs(ctx, "haneul")
	if err != nil {
		t.Fatalf("passed IDs: %v", err)
	}
	if !ids["q1"] || !ids["q2"] {
		t.Errorf("passed IDs = %v, want q1 and q2", ids)
	}
	if ids["q3"] {
		t.Error("q3 belongs to another user")
	}
}

func TestAchievementGrantedOnce(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	data := AchievementEventData{UserName: "haneul", AchievementID: "first_solve", BonusXP: 0}

	granted, err := events.AppendAchievement(ctx, data)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !granted {
		t.Error("first append should grant")
	}

	granted, err = events.AppendAchievement(ctx, data)
	if err != nil {
		t.Fatalf("re-append: %v", err)
	}
	if granted {
		t.Error("second append should be a no-op")
	}

	// Same achievement for another user still grants.
	granted, err = events.AppendAchievement(ctx, AchievementEventData{UserName: "other", AchievementID: "first_solve"})
	if err != nil {
		t.Fatalf("append other: %v", err)
	}
	if !granted {
		t.Error("unlock is per user")
	}

	unlocks, err := events.Achievements(ctx, "haneul")
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if len(unlocks) != 1 {
		t.Errorf("unlocks = %d, want 1", len(unlocks))
	}
}

func TestExamEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendExam(ctx, ExamEventData{
		ExamID: "exam-1", UserName: "haneul", TargetLevel: 2,
		Passed: true, PassRatio: 0.8, QuestionsTotal: 5, QuestionsPassed: 4,
		XPEarned: 780,
	})
	if err != nil {
		t.Fatalf("append exam: %v", err)
	}

	records, err := events.QueryExams(ctx, "haneul", QueryOpts{})
	if err != nil {
		t.Fatalf("query exams: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("exams = %d, want 1", len(records))
	}
	if records[0].TargetLevel != 2 || !records[0].Passed {
		t.Errorf("exam record = %+v", records[0])
	}
}

func TestLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-haiku", Purpose: "judge",
		InputTokens: 250, OutputTokens: 120, LatencyMs: 900, Success: true,
		RequestBody: "[system]\njudge prompt", ResponseBody: `{"passed":true}`,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("LLM request events = %d, want 1", count)
	}
}

func TestLLMEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	seedEvents := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "judge",
			InputTokens: 200, OutputTokens: 100, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "judge",
			InputTokens: 300, OutputTokens: 150, LatencyMs: 1200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "connectivity",
			InputTokens: 50, OutputTokens: 20, LatencyMs: 400, Success: false,
			ErrorMessage: "rate limited"},
	}
	for _, e := range seedEvents {
		if err := events.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Purpose != "connectivity" {
		t.Errorf("records[0].Purpose = %q, want connectivity", records[0].Purpose)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("sequence not descending: %d then %d", records[0].Sequence, records[1].Sequence)
	}

	got, err := events.GetLLMEvent(ctx, records[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ErrorMessage != "rate limited" {
		t.Errorf("GetLLMEvent = %+v, want rate limited event", got)
	}

	missing, err := events.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("GetLLMEvent(99999) = %+v, want nil", missing)
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	usage := map[string]LLMUsage{}
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	j := usage["judge"]
	if j.Calls != 2 || j.InputTokens != 500 || j.OutputTokens != 250 {
		t.Errorf("judge usage = %+v, want 2 calls, 500 in, 250 out", j)
	}
	if j.AvgLatencyMs != 1000 {
		t.Errorf("judge avg latency = %d, want 1000", j.AvgLatencyMs)
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	models := map[string]LLMUsage{}
	for _, u := range byModel {
		models[u.Model] = u
	}
	if m := models["claude-haiku"]; m.Calls != 2 || m.InputTokens != 500 {
		t.Errorf("claude-haiku usage = %+v, want 2 calls, 500 in", m)
	}
	if m := models["gpt-4o-mini"]; m.Calls != 1 || m.OutputTokens != 20 {
		t.Errorf("gpt-4o-mini usage = %+v, want 1 call, 20 out", m)
	}
}
