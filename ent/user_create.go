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
	"github.com/haneul/aiquest/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *UserCreate) SetName(v string) *UserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *UserCreate) SetLevel(v int) *UserCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *UserCreate) SetNillableLevel(v *int) *UserCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetXp sets the "xp" field.
func (_c *UserCreate) SetXp(v int) *UserCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *UserCreate) SetNillableXp(v *int) *UserCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetTotalAttempted sets the "total_attempted" field.
func (_c *UserCreate) SetTotalAttempted(v int) *UserCreate {
	_c.mutation.SetTotalAttempted(v)
	return _c
}

// SetNillableTotalAttempted sets the "total_attempted" field if the given value is not nil.
func (_c *UserCreate) SetNillableTotalAttempted(v *int) *UserCreate {
	if v != nil {
		_c.SetTotalAttempted(*v)
	}
	return _c
}

// SetTotalCorrect sets the "total_correct" field.
func (_c *UserCreate) SetTotalCorrect(v int) *UserCreate {
	_c.mutation.SetTotalCorrect(v)
	return _c
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_c *UserCreate) SetNillableTotalCorrect(v *int) *UserCreate {
	if v != nil {
		_c.SetTotalCorrect(*v)
	}
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *UserCreate) SetCurrentStreak(v int) *UserCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *UserCreate) SetNillableCurrentStreak(v *int) *UserCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetBestStreak sets the "best_streak" field.
func (_c *UserCreate) SetBestStreak(v int) *UserCreate {
	_c.mutation.SetBestStreak(v)
	return _c
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_c *UserCreate) SetNillableBestStreak(v *int) *UserCreate {
	if v != nil {
		_c.SetBestStreak(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := user.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Xp(); !ok {
		v := user.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.TotalAttempted(); !ok {
		v := user.DefaultTotalAttempted
		_c.mutation.SetTotalAttempted(v)
	}
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		v := user.DefaultTotalCorrect
		_c.mutation.SetTotalCorrect(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := user.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		v := user.DefaultBestStreak
		_c.mutation.SetBestStreak(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "User.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "User.level"`)}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "User.xp"`)}
	}
	if _, ok := _c.mutation.TotalAttempted(); !ok {
		return &ValidationError{Name: "total_attempted", err: errors.New(`ent: missing required field "User.total_attempted"`)}
	}
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		return &ValidationError{Name: "total_correct", err: errors.New(`ent: missing required field "User.total_correct"`)}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "User.current_streak"`)}
	}
	if _, ok := _c.mutation.BestStreak(); !ok {
		return &ValidationError{Name: "best_streak", err: errors.New(`ent: missing required field "User.best_streak"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(user.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.TotalAttempted(); ok {
		_spec.SetField(user.FieldTotalAttempted, field.TypeInt, value)
		_node.TotalAttempted = value
	}
	if value, ok := _c.mutation.TotalCorrect(); ok {
		_spec.SetField(user.FieldTotalCorrect, field.TypeInt, value)
		_node.TotalCorrect = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(user.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.BestStreak(); ok {
		_spec.SetField(user.FieldBestStreak, field.TypeInt, value)
		_node.BestStreak = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreate) OnConflict(opts ...sql.ConflictOption) *UserUpsertOne {
	_c.conflict = opts
	return &UserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertOne{
		create: _c,
	}
}

type (
	// UserUpsertOne is the builder for "upsert"-ing
	//  one User node.
	UserUpsertOne struct {
		create *UserCreate
	}

	// UserUpsert is the "OnConflict" setter.
	UserUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *UserUpsert) SetName(v string) *UserUpsert {
	u.Set(user.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsert) UpdateName() *UserUpsert {
	u.SetExcluded(user.FieldName)
	return u
}

// SetLevel sets the "level" field.
func (u *UserUpsert) SetLevel(v int) *UserUpsert {
	u.Set(user.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserUpsert) UpdateLevel() *UserUpsert {
	u.SetExcluded(user.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *UserUpsert) AddLevel(v int) *UserUpsert {
	u.Add(user.FieldLevel, v)
	return u
}

// SetXp sets the "xp" field.
func (u *UserUpsert) SetXp(v int) *UserUpsert {
	u.Set(user.FieldXp, v)
	return u
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *UserUpsert) UpdateXp() *UserUpsert {
	u.SetExcluded(user.FieldXp)
	return u
}

// AddXp adds v to the "xp" field.
func (u *UserUpsert) AddXp(v int) *UserUpsert {
	u.Add(user.FieldXp, v)
	return u
}

// SetTotalAttempted sets the "total_attempted" field.
func (u *UserUpsert) SetTotalAttempted(v int) *UserUpsert {
	u.Set(user.FieldTotalAttempted, v)
	return u
}

// UpdateTotalAttempted sets the "total_attempted" field to the value that was provided on create.
func (u *UserUpsert) UpdateTotalAttempted() *UserUpsert {
	u.SetExcluded(user.FieldTotalAttempted)
	return u
}

// AddTotalAttempted adds v to the "total_attempted" field.
func (u *UserUpsert) AddTotalAttempted(v int) *UserUpsert {
	u.Add(user.FieldTotalAttempted, v)
	return u
}

// SetTotalCorrect sets the "total_correct" field.
func (u *UserUpsert) SetTotalCorrect(v int) *UserUpsert {
	u.Set(user.FieldTotalCorrect, v)
	return u
}

// UpdateTotalCorrect sets the "total_correct" field to the value that was provided on create.
func (u *UserUpsert) UpdateTotalCorrect() *UserUpsert {
	u.SetExcluded(user.FieldTotalCorrect)
	return u
}

// AddTotalCorrect adds v to the "total_correct" field.
func (u *UserUpsert) AddTotalCorrect(v int) *UserUpsert {
	u.Add(user.FieldTotalCorrect, v)
	return u
}

// SetCurrentStreak sets the "current_streak" field.
func (u *UserUpsert) SetCurrentStreak(v int) *UserUpsert {
	u.Set(user.FieldCurrentStreak, v)
	return u
}

// UpdateCurrentStreak sets the "current_streak" field to the value that was provided on create.
func (u *UserUpsert) UpdateCurrentStreak() *UserUpsert {
	u.SetExcluded(user.FieldCurrentStreak)
	return u
}

// AddCurrentStreak adds v to the "current_streak" field.
func (u *UserUpsert) AddCurrentStreak(v int) *UserUpsert {
	u.Add(user.FieldCurrentStreak, v)
	return u
}

// SetBestStreak sets the "best_streak" field.
func (u *UserUpsert) SetBestStreak(v int) *UserUpsert {
	u.Set(user.FieldBestStreak, v)
	return u
}

// UpdateBestStreak sets the "best_streak" field to the value that was provided on create.
func (u *UserUpsert) UpdateBestStreak() *UserUpsert {
	u.SetExcluded(user.FieldBestStreak)
	return u
}

// AddBestStreak adds v to the "best_streak" field.
func (u *UserUpsert) AddBestStreak(v int) *UserUpsert {
	u.Add(user.FieldBestStreak, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(user.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertOne) DoNothing() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreate.OnConflict
// documentation for more info.
func (u *UserUpsertOne) Update(set func(*UserUpsert)) *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *UserUpsertOne) SetName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateName()
	})
}

// SetLevel sets the "level" field.
func (u *UserUpsertOne) SetLevel(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *UserUpsertOne) AddLevel(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLevel() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLevel()
	})
}

// SetXp sets the "xp" field.
func (u *UserUpsertOne) SetXp(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *UserUpsertOne) AddXp(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateXp() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateXp()
	})
}

// SetTotalAttempted sets the "total_attempted" field.
func (u *UserUpsertOne) SetTotalAttempted(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetTotalAttempted(v)
	})
}

// AddTotalAttempted adds v to the "total_attempted" field.
func (u *UserUpsertOne) AddTotalAttempted(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddTotalAttempted(v)
	})
}

// UpdateTotalAttempted sets the "total_attempted" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateTotalAttempted() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTotalAttempted()
	})
}

// SetTotalCorrect sets the "total_correct" field.
func (u *UserUpsertOne) SetTotalCorrect(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetTotalCorrect(v)
	})
}

// AddTotalCorrect adds v to the "total_correct" field.
func (u *UserUpsertOne) AddTotalCorrect(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddTotalCorrect(v)
	})
}

// UpdateTotalCorrect sets the "total_correct" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateTotalCorrect() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTotalCorrect()
	})
}

// SetCurrentStreak sets the "current_streak" field.
func (u *UserUpsertOne) SetCurrentStreak(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetCurrentStreak(v)
	})
}

// AddCurrentStreak adds v to the "current_streak" field.
func (u *UserUpsertOne) AddCurrentStreak(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddCurrentStreak(v)
	})
}

// UpdateCurrentStreak sets the "current_streak" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateCurrentStreak() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCurrentStreak()
	})
}

// SetBestStreak sets the "best_streak" field.
func (u *UserUpsertOne) SetBestStreak(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetBestStreak(v)
	})
}

// AddBestStreak adds v to the "best_streak" field.
func (u *UserUpsertOne) AddBestStreak(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddBestStreak(v)
	})
}

// UpdateBestStreak sets the "best_streak" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateBestStreak() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateBestStreak()
	})
}

// Exec executes the query.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
	conflict []sql.ConflictOption
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserUpsertBulk {
	_c.conflict = opts
	return &UserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflictColumns(columns ...string) *UserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertBulk{
		create: _c,
	}
}

// UserUpsertBulk is the builder for "upsert"-ing
// a bulk of User nodes.
type UserUpsertBulk struct {
	create *UserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *UserUpsertBulk) UpdateNewValues() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(user.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserUpsertBulk) Ignore() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertBulk) DoNothing() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreateBulk.OnConflict
// documentation for more info.
func (u *UserUpsertBulk) Update(set func(*UserUpsert)) *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *UserUpsertBulk) SetName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateName()
	})
}

// SetLevel sets the "level" field.
func (u *UserUpsertBulk) SetLevel(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *UserUpsertBulk) AddLevel(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLevel() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLevel()
	})
}

// SetXp sets the "xp" field.
func (u *UserUpsertBulk) SetXp(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetXp(v)
	})
}

// AddXp adds v to the "xp" field.
func (u *UserUpsertBulk) AddXp(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddXp(v)
	})
}

// UpdateXp sets the "xp" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateXp() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateXp()
	})
}

// SetTotalAttempted sets the "total_attempted" field.
func (u *UserUpsertBulk) SetTotalAttempted(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetTotalAttempted(v)
	})
}

// AddTotalAttempted adds v to the "total_attempted" field.
func (u *UserUpsertBulk) AddTotalAttempted(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddTotalAttempted(v)
	})
}

// UpdateTotalAttempted sets the "total_attempted" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateTotalAttempted() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTotalAttempted()
	})
}

// SetTotalCorrect sets the "total_correct" field.
func (u *UserUpsertBulk) SetTotalCorrect(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetTotalCorrect(v)
	})
}

// AddTotalCorrect adds v to the "total_correct" field.
func (u *UserUpsertBulk) AddTotalCorrect(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddTotalCorrect(v)
	})
}

// UpdateTotalCorrect sets the "total_correct" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateTotalCorrect() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTotalCorrect()
	})
}

// SetCurrentStreak sets the "current_streak" field.
func (u *UserUpsertBulk) SetCurrentStreak(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetCurrentStreak(v)
	})
}

// AddCurrentStreak adds v to the "current_streak" field.
func (u *UserUpsertBulk) AddCurrentStreak(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddCurrentStreak(v)
	})
}

// UpdateCurrentStreak sets the "current_streak" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateCurrentStreak() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateCurrentStreak()
	})
}

// SetBestStreak sets the "best_streak" field.
func (u *UserUpsertBulk) SetBestStreak(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetBestStreak(v)
	})
}

// AddBestStreak adds v to the "best_streak" field.
func (u *UserUpsertBulk) AddBestStreak(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddBestStreak(v)
	})
}

// UpdateBestStreak sets the "best_streak" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateBestStreak() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateBestStreak()
	})
}

// Exec executes the query.
func (u *UserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
