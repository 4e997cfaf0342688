package store

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/ent"
	"github.com/haneul/aiquest/ent/examevent"
)

func (r *eventRepo) AppendExam(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetExamID(data.ExamID).
		SetUserName(data.UserName).
		SetTargetLevel(data.TargetLevel).
		SetPassed(data.Passed).
		SetPassRatio(data.PassRatio).
		SetQuestionsTotal(data.QuestionsTotal).
		SetQuestionsPassed(data.QuestionsPassed).
		SetXpEarned(data.XPEarned).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryExams(ctx context.Context, userName string, opts QueryOpts) ([]ExamRecord, error) {
	query := r.client.ExamEvent.Query().
		Where(examevent.UserName(userName)).
		Order(ent.Desc(examevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(examevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(examevent.SequenceLT(opts.Before))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exams: %w", err)
	}

	records := make([]ExamRecord, len(events))
	for i, e := range events {
		records[i] = ExamRecord{
			ExamEventData: ExamEventData{
				ExamID:          e.ExamID,
				UserName:        e.UserName,
				TargetLevel:     e.TargetLevel,
				Passed:          e.Passed,
				PassRatio:       e.PassRatio,
				QuestionsTotal:  e.QuestionsTotal,
				QuestionsPassed: e.QuestionsPassed,
				XPEarned:        e.XpEarned,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
