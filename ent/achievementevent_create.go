// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/haneul/aiquest/ent/achievementevent"
)

// AchievementEventCreate is the builder for creating a AchievementEvent entity.
type AchievementEventCreate struct {
	config
	mutation *AchievementEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AchievementEventCreate) SetSequence(v int64) *AchievementEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AchievementEventCreate) SetTimestamp(v time.Time) *AchievementEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AchievementEventCreate) SetNillableTimestamp(v *time.Time) *AchievementEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *AchievementEventCreate) SetUserName(v string) *AchievementEventCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetAchievementID sets the "achievement_id" field.
func (_c *AchievementEventCreate) SetAchievementID(v string) *AchievementEventCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetBonusXp sets the "bonus_xp" field.
func (_c *AchievementEventCreate) SetBonusXp(v int) *AchievementEventCreate {
	_c.mutation.SetBonusXp(v)
	return _c
}

// SetNillableBonusXp sets the "bonus_xp" field if the given value is not nil.
func (_c *AchievementEventCreate) SetNillableBonusXp(v *int) *AchievementEventCreate {
	if v != nil {
		_c.SetBonusXp(*v)
	}
	return _c
}

// Mutation returns the AchievementEventMutation object of the builder.
func (_c *AchievementEventCreate) Mutation() *AchievementEventMutation {
	return _c.mutation
}

// Save creates the AchievementEvent in the database.
func (_c *AchievementEventCreate) Save(ctx context.Context) (*AchievementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementEventCreate) SaveX(ctx context.Context) *AchievementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := achievementevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.BonusXp(); !ok {
		v := achievementevent.DefaultBonusXp
		_c.mutation.SetBonusXp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AchievementEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AchievementEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserName(); !ok {
		return &ValidationError{Name: "user_name", err: errors.New(`ent: missing required field "AchievementEvent.user_name"`)}
	}
	if v, ok := _c.mutation.UserName(); ok {
		if err := achievementevent.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.user_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementID(); !ok {
		return &ValidationError{Name: "achievement_id", err: errors.New(`ent: missing required field "AchievementEvent.achievement_id"`)}
	}
	if v, ok := _c.mutation.AchievementID(); ok {
		if err := achievementevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BonusXp(); !ok {
		return &ValidationError{Name: "bonus_xp", err: errors.New(`ent: missing required field "AchievementEvent.bonus_xp"`)}
	}
	return nil
}

func (_c *AchievementEventCreate) sqlSave(ctx context.Context) (*AchievementEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AchievementEventCreate) createSpec() (*AchievementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievementevent.Table, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(achievementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(achievementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(achievementevent.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(achievementevent.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := _c.mutation.BonusXp(); ok {
		_spec.SetField(achievementevent.FieldBonusXp, field.TypeInt, value)
		_node.BonusXp = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AchievementEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementEventCreate) OnConflict(opts ...sql.ConflictOption) *AchievementEventUpsertOne {
	_c.conflict = opts
	return &AchievementEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementEventCreate) OnConflictColumns(columns ...string) *AchievementEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementEventUpsertOne{
		create: _c,
	}
}

type (
	// AchievementEventUpsertOne is the builder for "upsert"-ing
	//  one AchievementEvent node.
	AchievementEventUpsertOne struct {
		create *AchievementEventCreate
	}

	// AchievementEventUpsert is the "OnConflict" setter.
	AchievementEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserName sets the "user_name" field.
func (u *AchievementEventUpsert) SetUserName(v string) *AchievementEventUpsert {
	u.Set(achievementevent.FieldUserName, v)
	return u
}

// UpdateUserName sets the "user_name" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateUserName() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldUserName)
	return u
}

// SetAchievementID sets the "achievement_id" field.
func (u *AchievementEventUpsert) SetAchievementID(v string) *AchievementEventUpsert {
	u.Set(achievementevent.FieldAchievementID, v)
	return u
}

// UpdateAchievementID sets the "achievement_id" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateAchievementID() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldAchievementID)
	return u
}

// SetBonusXp sets the "bonus_xp" field.
func (u *AchievementEventUpsert) SetBonusXp(v int) *AchievementEventUpsert {
	u.Set(achievementevent.FieldBonusXp, v)
	return u
}

// UpdateBonusXp sets the "bonus_xp" field to the value that was provided on create.
func (u *AchievementEventUpsert) UpdateBonusXp() *AchievementEventUpsert {
	u.SetExcluded(achievementevent.FieldBonusXp)
	return u
}

// AddBonusXp adds v to the "bonus_xp" field.
func (u *AchievementEventUpsert) AddBonusXp(v int) *AchievementEventUpsert {
	u.Add(achievementevent.FieldBonusXp, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AchievementEventUpsertOne) UpdateNewValues() *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(achievementevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(achievementevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AchievementEventUpsertOne) Ignore() *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementEventUpsertOne) DoNothing() *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementEventCreate.OnConflict
// documentation for more info.
func (u *AchievementEventUpsertOne) Update(set func(*AchievementEventUpsert)) *AchievementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserName sets the "user_name" field.
func (u *AchievementEventUpsertOne) SetUserName(v string) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetUserName(v)
	})
}

// UpdateUserName sets the "user_name" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateUserName() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateUserName()
	})
}

// SetAchievementID sets the "achievement_id" field.
func (u *AchievementEventUpsertOne) SetAchievementID(v string) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetAchievementID(v)
	})
}

// UpdateAchievementID sets the "achievement_id" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateAchievementID() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateAchievementID()
	})
}

// SetBonusXp sets the "bonus_xp" field.
func (u *AchievementEventUpsertOne) SetBonusXp(v int) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetBonusXp(v)
	})
}

// AddBonusXp adds v to the "bonus_xp" field.
func (u *AchievementEventUpsertOne) AddBonusXp(v int) *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.AddBonusXp(v)
	})
}

// UpdateBonusXp sets the "bonus_xp" field to the value that was provided on create.
func (u *AchievementEventUpsertOne) UpdateBonusXp() *AchievementEventUpsertOne {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateBonusXp()
	})
}

// Exec executes the query.
func (u *AchievementEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AchievementEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AchievementEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AchievementEventCreateBulk is the builder for creating many AchievementEvent entities in bulk.
type AchievementEventCreateBulk struct {
	config
	err      error
	builders []*AchievementEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AchievementEvent entities in the database.
func (_c *AchievementEventCreateBulk) Save(ctx context.Context) ([]*AchievementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AchievementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AchievementEventCreateBulk) SaveX(ctx context.Context) []*AchievementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AchievementEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AchievementEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AchievementEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AchievementEventUpsertBulk {
	_c.conflict = opts
	return &AchievementEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AchievementEventCreateBulk) OnConflictColumns(columns ...string) *AchievementEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AchievementEventUpsertBulk{
		create: _c,
	}
}

// AchievementEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AchievementEvent nodes.
type AchievementEventUpsertBulk struct {
	create *AchievementEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AchievementEventUpsertBulk) UpdateNewValues() *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(achievementevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(achievementevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AchievementEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AchievementEventUpsertBulk) Ignore() *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AchievementEventUpsertBulk) DoNothing() *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AchievementEventCreateBulk.OnConflict
// documentation for more info.
func (u *AchievementEventUpsertBulk) Update(set func(*AchievementEventUpsert)) *AchievementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AchievementEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserName sets the "user_name" field.
func (u *AchievementEventUpsertBulk) SetUserName(v string) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetUserName(v)
	})
}

// UpdateUserName sets the "user_name" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateUserName() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateUserName()
	})
}

// SetAchievementID sets the "achievement_id" field.
func (u *AchievementEventUpsertBulk) SetAchievementID(v string) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetAchievementID(v)
	})
}

// UpdateAchievementID sets the "achievement_id" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateAchievementID() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateAchievementID()
	})
}

// SetBonusXp sets the "bonus_xp" field.
func (u *AchievementEventUpsertBulk) SetBonusXp(v int) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.SetBonusXp(v)
	})
}

// AddBonusXp adds v to the "bonus_xp" field.
func (u *AchievementEventUpsertBulk) AddBonusXp(v int) *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.AddBonusXp(v)
	})
}

// UpdateBonusXp sets the "bonus_xp" field to the value that was provided on create.
func (u *AchievementEventUpsertBulk) UpdateBonusXp() *AchievementEventUpsertBulk {
	return u.Update(func(s *AchievementEventUpsert) {
		s.UpdateBonusXp()
	})
}

// Exec executes the query.
func (u *AchievementEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AchievementEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AchievementEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AchievementEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
