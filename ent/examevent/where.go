// Code generated by ent, DO NOT EDIT.

package examevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/haneul/aiquest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ExamID applies equality check predicate on the "exam_id" field. It's identical to ExamIDEQ.
func ExamID(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldExamID, v))
}

// UserName applies equality check predicate on the "user_name" field. It's identical to UserNameEQ.
func UserName(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldUserName, v))
}

// TargetLevel applies equality check predicate on the "target_level" field. It's identical to TargetLevelEQ.
func TargetLevel(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTargetLevel, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPassed, v))
}

// PassRatio applies equality check predicate on the "pass_ratio" field. It's identical to PassRatioEQ.
func PassRatio(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPassRatio, v))
}

// QuestionsTotal applies equality check predicate on the "questions_total" field. It's identical to QuestionsTotalEQ.
func QuestionsTotal(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsPassed applies equality check predicate on the "questions_passed" field. It's identical to QuestionsPassedEQ.
func QuestionsPassed(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldQuestionsPassed, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldXpEarned, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ExamIDEQ applies the EQ predicate on the "exam_id" field.
func ExamIDEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldExamID, v))
}

// ExamIDNEQ applies the NEQ predicate on the "exam_id" field.
func ExamIDNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldExamID, v))
}

// ExamIDIn applies the In predicate on the "exam_id" field.
func ExamIDIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldExamID, vs...))
}

// ExamIDNotIn applies the NotIn predicate on the "exam_id" field.
func ExamIDNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldExamID, vs...))
}

// ExamIDGT applies the GT predicate on the "exam_id" field.
func ExamIDGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldExamID, v))
}

// ExamIDGTE applies the GTE predicate on the "exam_id" field.
func ExamIDGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldExamID, v))
}

// ExamIDLT applies the LT predicate on the "exam_id" field.
func ExamIDLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldExamID, v))
}

// ExamIDLTE applies the LTE predicate on the "exam_id" field.
func ExamIDLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldExamID, v))
}

// ExamIDContains applies the Contains predicate on the "exam_id" field.
func ExamIDContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldExamID, v))
}

// ExamIDHasPrefix applies the HasPrefix predicate on the "exam_id" field.
func ExamIDHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldExamID, v))
}

// ExamIDHasSuffix applies the HasSuffix predicate on the "exam_id" field.
func ExamIDHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldExamID, v))
}

// ExamIDEqualFold applies the EqualFold predicate on the "exam_id" field.
func ExamIDEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldExamID, v))
}

// ExamIDContainsFold applies the ContainsFold predicate on the "exam_id" field.
func ExamIDContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldExamID, v))
}

// UserNameEQ applies the EQ predicate on the "user_name" field.
func UserNameEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldUserName, v))
}

// UserNameNEQ applies the NEQ predicate on the "user_name" field.
func UserNameNEQ(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldUserName, v))
}

// UserNameIn applies the In predicate on the "user_name" field.
func UserNameIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldUserName, vs...))
}

// UserNameNotIn applies the NotIn predicate on the "user_name" field.
func UserNameNotIn(vs ...string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldUserName, vs...))
}

// UserNameGT applies the GT predicate on the "user_name" field.
func UserNameGT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldUserName, v))
}

// UserNameGTE applies the GTE predicate on the "user_name" field.
func UserNameGTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldUserName, v))
}

// UserNameLT applies the LT predicate on the "user_name" field.
func UserNameLT(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldUserName, v))
}

// UserNameLTE applies the LTE predicate on the "user_name" field.
func UserNameLTE(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldUserName, v))
}

// UserNameContains applies the Contains predicate on the "user_name" field.
func UserNameContains(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContains(FieldUserName, v))
}

// UserNameHasPrefix applies the HasPrefix predicate on the "user_name" field.
func UserNameHasPrefix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasPrefix(FieldUserName, v))
}

// UserNameHasSuffix applies the HasSuffix predicate on the "user_name" field.
func UserNameHasSuffix(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldHasSuffix(FieldUserName, v))
}

// UserNameEqualFold applies the EqualFold predicate on the "user_name" field.
func UserNameEqualFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEqualFold(FieldUserName, v))
}

// UserNameContainsFold applies the ContainsFold predicate on the "user_name" field.
func UserNameContainsFold(v string) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldContainsFold(FieldUserName, v))
}

// TargetLevelEQ applies the EQ predicate on the "target_level" field.
func TargetLevelEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldTargetLevel, v))
}

// TargetLevelNEQ applies the NEQ predicate on the "target_level" field.
func TargetLevelNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldTargetLevel, v))
}

// TargetLevelIn applies the In predicate on the "target_level" field.
func TargetLevelIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldTargetLevel, vs...))
}

// TargetLevelNotIn applies the NotIn predicate on the "target_level" field.
func TargetLevelNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldTargetLevel, vs...))
}

// TargetLevelGT applies the GT predicate on the "target_level" field.
func TargetLevelGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldTargetLevel, v))
}

// TargetLevelGTE applies the GTE predicate on the "target_level" field.
func TargetLevelGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldTargetLevel, v))
}

// TargetLevelLT applies the LT predicate on the "target_level" field.
func TargetLevelLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldTargetLevel, v))
}

// TargetLevelLTE applies the LTE predicate on the "target_level" field.
func TargetLevelLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldTargetLevel, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldPassed, v))
}

// PassRatioEQ applies the EQ predicate on the "pass_ratio" field.
func PassRatioEQ(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldPassRatio, v))
}

// PassRatioNEQ applies the NEQ predicate on the "pass_ratio" field.
func PassRatioNEQ(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldPassRatio, v))
}

// PassRatioIn applies the In predicate on the "pass_ratio" field.
func PassRatioIn(vs ...float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldPassRatio, vs...))
}

// PassRatioNotIn applies the NotIn predicate on the "pass_ratio" field.
func PassRatioNotIn(vs ...float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldPassRatio, vs...))
}

// PassRatioGT applies the GT predicate on the "pass_ratio" field.
func PassRatioGT(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldPassRatio, v))
}

// PassRatioGTE applies the GTE predicate on the "pass_ratio" field.
func PassRatioGTE(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldPassRatio, v))
}

// PassRatioLT applies the LT predicate on the "pass_ratio" field.
func PassRatioLT(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldPassRatio, v))
}

// PassRatioLTE applies the LTE predicate on the "pass_ratio" field.
func PassRatioLTE(v float64) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldPassRatio, v))
}

// QuestionsTotalEQ applies the EQ predicate on the "questions_total" field.
func QuestionsTotalEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalNEQ applies the NEQ predicate on the "questions_total" field.
func QuestionsTotalNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalIn applies the In predicate on the "questions_total" field.
func QuestionsTotalIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalNotIn applies the NotIn predicate on the "questions_total" field.
func QuestionsTotalNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalGT applies the GT predicate on the "questions_total" field.
func QuestionsTotalGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldQuestionsTotal, v))
}

// QuestionsTotalGTE applies the GTE predicate on the "questions_total" field.
func QuestionsTotalGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldQuestionsTotal, v))
}

// QuestionsTotalLT applies the LT predicate on the "questions_total" field.
func QuestionsTotalLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldQuestionsTotal, v))
}

// QuestionsTotalLTE applies the LTE predicate on the "questions_total" field.
func QuestionsTotalLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldQuestionsTotal, v))
}

// QuestionsPassedEQ applies the EQ predicate on the "questions_passed" field.
func QuestionsPassedEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldQuestionsPassed, v))
}

// QuestionsPassedNEQ applies the NEQ predicate on the "questions_passed" field.
func QuestionsPassedNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldQuestionsPassed, v))
}

// QuestionsPassedIn applies the In predicate on the "questions_passed" field.
func QuestionsPassedIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldQuestionsPassed, vs...))
}

// QuestionsPassedNotIn applies the NotIn predicate on the "questions_passed" field.
func QuestionsPassedNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldQuestionsPassed, vs...))
}

// QuestionsPassedGT applies the GT predicate on the "questions_passed" field.
func QuestionsPassedGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldQuestionsPassed, v))
}

// QuestionsPassedGTE applies the GTE predicate on the "questions_passed" field.
func QuestionsPassedGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldQuestionsPassed, v))
}

// QuestionsPassedLT applies the LT predicate on the "questions_passed" field.
func QuestionsPassedLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldQuestionsPassed, v))
}

// QuestionsPassedLTE applies the LTE predicate on the "questions_passed" field.
func QuestionsPassedLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldQuestionsPassed, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.ExamEvent {
	return predicate.ExamEvent(sql.FieldLTE(FieldXpEarned, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExamEvent) predicate.ExamEvent {
	return predicate.ExamEvent(sql.NotPredicates(p))
}
