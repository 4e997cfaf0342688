package store

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/ent"
	"github.com/haneul/aiquest/ent/attemptevent"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetUserName(data.UserName).
		SetQuestionID(data.QuestionID).
		SetDifficulty(data.Difficulty).
		SetQuestionType(data.QuestionType).
		SetPassed(data.Passed).
		SetScore(data.Score).
		SetXpEarned(data.XPEarned).
		SetTimeMs(data.TimeMs).
		SetTokensUsed(data.TokensUsed).
		SetSimulated(data.Simulated).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, userName string, opts QueryOpts) ([]AttemptRecord, error) {
	query := r.client.AttemptEvent.Query().
		Where(attemptevent.UserName(userName)).
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, len(events))
	for i, e := range events {
		records[i] = AttemptRecord{
			AttemptEventData: AttemptEventData{
				UserName:     e.UserName,
				QuestionID:   e.QuestionID,
				Difficulty:   e.Difficulty,
				QuestionType: e.QuestionType,
				Passed:       e.Passed,
				Score:        e.Score,
				XPEarned:     e.XpEarned,
				TimeMs:       e.TimeMs,
				TokensUsed:   e.TokensUsed,
				Simulated:    e.Simulated,
				Feedback:     e.Feedback,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) PassedQuestionIDs(ctx context.Context, userName string) (map[string]bool, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserName(userName),
			attemptevent.Passed(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query passed questions: %w", err)
	}

	ids := make(map[string]bool, len(events))
	for _, e := range events {
		ids[e.QuestionID] = true
	}
	return ids, nil
}
