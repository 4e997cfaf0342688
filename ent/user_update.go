// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/haneul/aiquest/ent/predicate"
	"github.com/haneul/aiquest/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserUpdate) SetLevel(v int) *UserUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLevel(v *int) *UserUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *UserUpdate) AddLevel(v int) *UserUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *UserUpdate) SetXp(v int) *UserUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *UserUpdate) SetNillableXp(v *int) *UserUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *UserUpdate) AddXp(v int) *UserUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetTotalAttempted sets the "total_attempted" field.
func (_u *UserUpdate) SetTotalAttempted(v int) *UserUpdate {
	_u.mutation.ResetTotalAttempted()
	_u.mutation.SetTotalAttempted(v)
	return _u
}

// SetNillableTotalAttempted sets the "total_attempted" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTotalAttempted(v *int) *UserUpdate {
	if v != nil {
		_u.SetTotalAttempted(*v)
	}
	return _u
}

// AddTotalAttempted adds value to the "total_attempted" field.
func (_u *UserUpdate) AddTotalAttempted(v int) *UserUpdate {
	_u.mutation.AddTotalAttempted(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *UserUpdate) SetTotalCorrect(v int) *UserUpdate {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTotalCorrect(v *int) *UserUpdate {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *UserUpdate) AddTotalCorrect(v int) *UserUpdate {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *UserUpdate) SetCurrentStreak(v int) *UserUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCurrentStreak(v *int) *UserUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *UserUpdate) AddCurrentStreak(v int) *UserUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *UserUpdate) SetBestStreak(v int) *UserUpdate {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *UserUpdate) SetNillableBestStreak(v *int) *UserUpdate {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *UserUpdate) AddBestStreak(v int) *UserUpdate {
	_u.mutation.AddBestStreak(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(user.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempted(); ok {
		_spec.SetField(user.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempted(); ok {
		_spec.AddField(user.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(user.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(user.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(user.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(user.FieldBestStreak, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserUpdateOne) SetLevel(v int) *UserUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLevel(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *UserUpdateOne) AddLevel(v int) *UserUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetXp sets the "xp" field.
func (_u *UserUpdateOne) SetXp(v int) *UserUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableXp(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *UserUpdateOne) AddXp(v int) *UserUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetTotalAttempted sets the "total_attempted" field.
func (_u *UserUpdateOne) SetTotalAttempted(v int) *UserUpdateOne {
	_u.mutation.ResetTotalAttempted()
	_u.mutation.SetTotalAttempted(v)
	return _u
}

// SetNillableTotalAttempted sets the "total_attempted" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTotalAttempted(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetTotalAttempted(*v)
	}
	return _u
}

// AddTotalAttempted adds value to the "total_attempted" field.
func (_u *UserUpdateOne) AddTotalAttempted(v int) *UserUpdateOne {
	_u.mutation.AddTotalAttempted(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *UserUpdateOne) SetTotalCorrect(v int) *UserUpdateOne {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTotalCorrect(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *UserUpdateOne) AddTotalCorrect(v int) *UserUpdateOne {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *UserUpdateOne) SetCurrentStreak(v int) *UserUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCurrentStreak(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *UserUpdateOne) AddCurrentStreak(v int) *UserUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetBestStreak sets the "best_streak" field.
func (_u *UserUpdateOne) SetBestStreak(v int) *UserUpdateOne {
	_u.mutation.ResetBestStreak()
	_u.mutation.SetBestStreak(v)
	return _u
}

// SetNillableBestStreak sets the "best_streak" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableBestStreak(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetBestStreak(*v)
	}
	return _u
}

// AddBestStreak adds value to the "best_streak" field.
func (_u *UserUpdateOne) AddBestStreak(v int) *UserUpdateOne {
	_u.mutation.AddBestStreak(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(user.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(user.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAttempted(); ok {
		_spec.SetField(user.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempted(); ok {
		_spec.AddField(user.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(user.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(user.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(user.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestStreak(); ok {
		_spec.SetField(user.FieldBestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestStreak(); ok {
		_spec.AddField(user.FieldBestStreak, field.TypeInt, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
