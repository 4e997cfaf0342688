package store

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/ent"
	"github.com/haneul/aiquest/ent/achievementevent"
)

func (r *eventRepo) AppendAchievement(ctx context.Context, data AchievementEventData) (bool, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return false, fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetUserName(data.UserName).
		SetAchievementID(data.AchievementID).
		SetBonusXp(data.BonusXP).
		Save(ctx)
	if err != nil {
		// The (user, achievement) unique index makes re-grants a no-op.
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("save achievement event: %w", err)
	}
	return true, nil
}

func (r *eventRepo) Achievements(ctx context.Context, userName string) ([]AchievementRecord, error) {
	events, err := r.client.AchievementEvent.Query().
		Where(achievementevent.UserName(userName)).
		Order(ent.Asc(achievementevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}

	records := make([]AchievementRecord, len(events))
	for i, e := range events {
		records[i] = AchievementRecord{
			AchievementEventData: AchievementEventData{
				UserName:      e.UserName,
				AchievementID: e.AchievementID,
				BonusXP:       e.BonusXp,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
