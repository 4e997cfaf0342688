package store

import (
	"context"
	"time"

	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/quiz"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// User pairs a learner name with their live progression state.
type User struct {
	Name      string
	Progress  progression.Progress
	CreatedAt time.Time
}

// UserRepo manages learner rows.
type UserRepo interface {
	// Get returns the user by name, or nil if not found.
	Get(ctx context.Context, name string) (*User, error)

	// GetOrCreate returns the user by name, creating a fresh level-1 row
	// when none exists.
	GetOrCreate(ctx context.Context, name string) (*User, error)

	// SaveProgress writes the user's progression state back in one update.
	SaveProgress(ctx context.Context, name string, p progression.Progress) error

	// Leaderboard returns users ordered by level descending, then XP
	// descending. limit 0 means no limit.
	Leaderboard(ctx context.Context, limit int) ([]User, error)

	// Reset deletes the user row. Event history is kept.
	Reset(ctx context.Context, name string) error
}

// QuestionRepo manages the stored question pool.
type QuestionRepo interface {
	// Seed upserts questions by their stable ID.
	Seed(ctx context.Context, questions []*quiz.Question) error

	// Questions returns all questions with the given difficulty and type.
	Questions(ctx context.Context, difficulty quiz.Difficulty, qtype quiz.QuestionType) ([]*quiz.Question, error)

	// Get returns the question with the given ID, or nil if not found.
	Get(ctx context.Context, id string) (*quiz.Question, error)

	// Count returns the number of stored questions.
	Count(ctx context.Context) (int, error)
}

// AttemptEventData captures one graded answer submission.
type AttemptEventData struct {
	UserName     string
	QuestionID   string
	Difficulty   string
	QuestionType string
	Passed       bool
	Score        float64
	XPEarned     int
	TimeMs       int64
	TokensUsed   int
	Simulated    bool
	Feedback     string
}

// AttemptRecord is a stored attempt with its event ordering fields.
type AttemptRecord struct {
	AttemptEventData
	Sequence  int64
	Timestamp time.Time
}

// ExamEventData captures the outcome of one promotion exam.
type ExamEventData struct {
	ExamID          string
	UserName        string
	TargetLevel     int
	Passed          bool
	PassRatio       float64
	QuestionsTotal  int
	QuestionsPassed int
	XPEarned        int
}

// ExamRecord is a stored exam outcome with its event ordering fields.
type ExamRecord struct {
	ExamEventData
	Sequence  int64
	Timestamp time.Time
}

// AchievementEventData captures one achievement unlock.
type AchievementEventData struct {
	UserName      string
	AchievementID string
	BonusXP       int
}

// AchievementRecord is a stored unlock with its event ordering fields.
type AchievementRecord struct {
	AchievementEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event with its identity and
// ordering fields.
type LLMRequestRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsage aggregates token counts over a group of LLM request events,
// keyed by purpose or by model depending on the query.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a graded answer submission.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// QueryAttempts returns a user's attempts, newest first.
	QueryAttempts(ctx context.Context, userName string, opts QueryOpts) ([]AttemptRecord, error)

	// PassedQuestionIDs returns the IDs of every question the user has
	// passed at least once.
	PassedQuestionIDs(ctx context.Context, userName string) (map[string]bool, error)

	// AppendExam records a promotion exam outcome.
	AppendExam(ctx context.Context, data ExamEventData) error

	// QueryExams returns a user's exam history, newest first.
	QueryExams(ctx context.Context, userName string, opts QueryOpts) ([]ExamRecord, error)

	// AppendAchievement records an unlock. Appending an achievement the
	// user already holds is a no-op returning false.
	AppendAchievement(ctx context.Context, data AchievementEventData) (bool, error)

	// Achievements returns every unlock for the user, oldest first.
	Achievements(ctx context.Context, userName string) ([]AchievementRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns a single LLM request event by ID, or nil when
	// no such event exists.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
