// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/haneul/aiquest/ent/achievementevent"
	"github.com/haneul/aiquest/ent/attemptevent"
	"github.com/haneul/aiquest/ent/examevent"
	"github.com/haneul/aiquest/ent/llmrequestevent"
	"github.com/haneul/aiquest/ent/question"
	"github.com/haneul/aiquest/ent/schema"
	"github.com/haneul/aiquest/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescUserName is the schema descriptor for user_name field.
	achievementeventDescUserName := achievementeventFields[0].Descriptor()
	// achievementevent.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	achievementevent.UserNameValidator = achievementeventDescUserName.Validators[0].(func(string) error)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[1].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescBonusXp is the schema descriptor for bonus_xp field.
	achievementeventDescBonusXp := achievementeventFields[2].Descriptor()
	// achievementevent.DefaultBonusXp holds the default value on creation for the bonus_xp field.
	achievementevent.DefaultBonusXp = achievementeventDescBonusXp.Default.(int)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserName is the schema descriptor for user_name field.
	attempteventDescUserName := attempteventFields[0].Descriptor()
	// attemptevent.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	attemptevent.UserNameValidator = attempteventDescUserName.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[1].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescDifficulty is the schema descriptor for difficulty field.
	attempteventDescDifficulty := attempteventFields[2].Descriptor()
	// attemptevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attemptevent.DifficultyValidator = attempteventDescDifficulty.Validators[0].(func(string) error)
	// attempteventDescQuestionType is the schema descriptor for question_type field.
	attempteventDescQuestionType := attempteventFields[3].Descriptor()
	// attemptevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	attemptevent.QuestionTypeValidator = attempteventDescQuestionType.Validators[0].(func(string) error)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[5].Descriptor()
	// attemptevent.DefaultScore holds the default value on creation for the score field.
	attemptevent.DefaultScore = attempteventDescScore.Default.(float64)
	// attempteventDescXpEarned is the schema descriptor for xp_earned field.
	attempteventDescXpEarned := attempteventFields[6].Descriptor()
	// attemptevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	attemptevent.DefaultXpEarned = attempteventDescXpEarned.Default.(int)
	// attempteventDescTimeMs is the schema descriptor for time_ms field.
	attempteventDescTimeMs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	attemptevent.DefaultTimeMs = attempteventDescTimeMs.Default.(int64)
	// attempteventDescTokensUsed is the schema descriptor for tokens_used field.
	attempteventDescTokensUsed := attempteventFields[8].Descriptor()
	// attemptevent.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	attemptevent.DefaultTokensUsed = attempteventDescTokensUsed.Default.(int)
	// attempteventDescSimulated is the schema descriptor for simulated field.
	attempteventDescSimulated := attempteventFields[9].Descriptor()
	// attemptevent.DefaultSimulated holds the default value on creation for the simulated field.
	attemptevent.DefaultSimulated = attempteventDescSimulated.Default.(bool)
	// attempteventDescFeedback is the schema descriptor for feedback field.
	attempteventDescFeedback := attempteventFields[10].Descriptor()
	// attemptevent.DefaultFeedback holds the default value on creation for the feedback field.
	attemptevent.DefaultFeedback = attempteventDescFeedback.Default.(string)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescExamID is the schema descriptor for exam_id field.
	exameventDescExamID := exameventFields[0].Descriptor()
	// examevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	examevent.ExamIDValidator = exameventDescExamID.Validators[0].(func(string) error)
	// exameventDescUserName is the schema descriptor for user_name field.
	exameventDescUserName := exameventFields[1].Descriptor()
	// examevent.UserNameValidator is a validator for the "user_name" field. It is called by the builders before save.
	examevent.UserNameValidator = exameventDescUserName.Validators[0].(func(string) error)
	// exameventDescXpEarned is the schema descriptor for xp_earned field.
	exameventDescXpEarned := exameventFields[7].Descriptor()
	// examevent.DefaultXpEarned holds the default value on creation for the xp_earned field.
	examevent.DefaultXpEarned = exameventDescXpEarned.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQid is the schema descriptor for qid field.
	questionDescQid := questionFields[0].Descriptor()
	// question.QidValidator is a validator for the "qid" field. It is called by the builders before save.
	question.QidValidator = questionDescQid.Validators[0].(func(string) error)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[1].Descriptor()
	// question.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	question.DifficultyValidator = questionDescDifficulty.Validators[0].(func(string) error)
	// questionDescQtype is the schema descriptor for qtype field.
	questionDescQtype := questionFields[2].Descriptor()
	// question.QtypeValidator is a validator for the "qtype" field. It is called by the builders before save.
	question.QtypeValidator = questionDescQtype.Validators[0].(func(string) error)
	// questionDescScenario is the schema descriptor for scenario field.
	questionDescScenario := questionFields[3].Descriptor()
	// question.ScenarioValidator is a validator for the "scenario" field. It is called by the builders before save.
	question.ScenarioValidator = questionDescScenario.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescLevel is the schema descriptor for level field.
	userDescLevel := userFields[1].Descriptor()
	// user.DefaultLevel holds the default value on creation for the level field.
	user.DefaultLevel = userDescLevel.Default.(int)
	// userDescXp is the schema descriptor for xp field.
	userDescXp := userFields[2].Descriptor()
	// user.DefaultXp holds the default value on creation for the xp field.
	user.DefaultXp = userDescXp.Default.(int)
	// userDescTotalAttempted is the schema descriptor for total_attempted field.
	userDescTotalAttempted := userFields[3].Descriptor()
	// user.DefaultTotalAttempted holds the default value on creation for the total_attempted field.
	user.DefaultTotalAttempted = userDescTotalAttempted.Default.(int)
	// userDescTotalCorrect is the schema descriptor for total_correct field.
	userDescTotalCorrect := userFields[4].Descriptor()
	// user.DefaultTotalCorrect holds the default value on creation for the total_correct field.
	user.DefaultTotalCorrect = userDescTotalCorrect.Default.(int)
	// userDescCurrentStreak is the schema descriptor for current_streak field.
	userDescCurrentStreak := userFields[5].Descriptor()
	// user.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	user.DefaultCurrentStreak = userDescCurrentStreak.Default.(int)
	// userDescBestStreak is the schema descriptor for best_streak field.
	userDescBestStreak := userFields[6].Descriptor()
	// user.DefaultBestStreak holds the default value on creation for the best_streak field.
	user.DefaultBestStreak = userDescBestStreak.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
