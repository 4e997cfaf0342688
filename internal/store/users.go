package store

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/ent"
	"github.com/haneul/aiquest/ent/user"
	"github.com/haneul/aiquest/internal/progression"
)

// userRepo implements UserRepo backed by ent.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Get(ctx context.Context, name string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user %q: %w", name, err)
	}
	return fromEntUser(u), nil
}

func (r *userRepo) GetOrCreate(ctx context.Context, name string) (*User, error) {
	existing, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	u, err := r.client.User.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		// Lost a create race; the row exists now.
		if ent.IsConstraintError(err) {
			return r.Get(ctx, name)
		}
		return nil, fmt.Errorf("create user %q: %w", name, err)
	}
	return fromEntUser(u), nil
}

func (r *userRepo) SaveProgress(ctx context.Context, name string, p progression.Progress) error {
	n, err := r.client.User.Update().
		Where(user.Name(name)).
		SetLevel(p.Level).
		SetXp(p.XP).
		SetTotalAttempted(p.TotalAttempted).
		SetTotalCorrect(p.TotalCorrect).
		SetCurrentStreak(p.CurrentStreak).
		SetBestStreak(p.BestStreak).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress for %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("save progress for %q: user not found", name)
	}
	return nil
}

func (r *userRepo) Leaderboard(ctx context.Context, limit int) ([]User, error) {
	query := r.client.User.Query().
		Order(ent.Desc(user.FieldLevel), ent.Desc(user.FieldXp))
	if limit > 0 {
		query = query.Limit(limit)
	}

	users, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	out := make([]User, len(users))
	for i, u := range users {
		out[i] = *fromEntUser(u)
	}
	return out, nil
}

func (r *userRepo) Reset(ctx context.Context, name string) error {
	_, err := r.client.User.Delete().
		Where(user.Name(name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset user %q: %w", name, err)
	}
	return nil
}

func fromEntUser(u *ent.User) *User {
	return &User{
		Name: u.Name,
		Progress: progression.Progress{
			Level:          u.Level,
			XP:             u.Xp,
			TotalAttempted: u.TotalAttempted,
			TotalCorrect:   u.TotalCorrect,
			CurrentStreak:  u.CurrentStreak,
			BestStreak:     u.BestStreak,
		},
		CreatedAt: u.CreatedAt,
	}
}
