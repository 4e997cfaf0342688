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
	"github.com/haneul/aiquest/ent/examevent"
)

// ExamEventCreate is the builder for creating a ExamEvent entity.
type ExamEventCreate struct {
	config
	mutation *ExamEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *ExamEventCreate) SetSequence(v int64) *ExamEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamEventCreate) SetTimestamp(v time.Time) *ExamEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableTimestamp(v *time.Time) *ExamEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetExamID sets the "exam_id" field.
func (_c *ExamEventCreate) SetExamID(v string) *ExamEventCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetUserName sets the "user_name" field.
func (_c *ExamEventCreate) SetUserName(v string) *ExamEventCreate {
	_c.mutation.SetUserName(v)
	return _c
}

// SetTargetLevel sets the "target_level" field.
func (_c *ExamEventCreate) SetTargetLevel(v int) *ExamEventCreate {
	_c.mutation.SetTargetLevel(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ExamEventCreate) SetPassed(v bool) *ExamEventCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetPassRatio sets the "pass_ratio" field.
func (_c *ExamEventCreate) SetPassRatio(v float64) *ExamEventCreate {
	_c.mutation.SetPassRatio(v)
	return _c
}

// SetQuestionsTotal sets the "questions_total" field.
func (_c *ExamEventCreate) SetQuestionsTotal(v int) *ExamEventCreate {
	_c.mutation.SetQuestionsTotal(v)
	return _c
}

// SetQuestionsPassed sets the "questions_passed" field.
func (_c *ExamEventCreate) SetQuestionsPassed(v int) *ExamEventCreate {
	_c.mutation.SetQuestionsPassed(v)
	return _c
}

// SetXpEarned sets the "xp_earned" field.
func (_c *ExamEventCreate) SetXpEarned(v int) *ExamEventCreate {
	_c.mutation.SetXpEarned(v)
	return _c
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_c *ExamEventCreate) SetNillableXpEarned(v *int) *ExamEventCreate {
	if v != nil {
		_c.SetXpEarned(*v)
	}
	return _c
}

// Mutation returns the ExamEventMutation object of the builder.
func (_c *ExamEventCreate) Mutation() *ExamEventMutation {
	return _c.mutation
}

// Save creates the ExamEvent in the database.
func (_c *ExamEventCreate) Save(ctx context.Context) (*ExamEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamEventCreate) SaveX(ctx context.Context) *ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		v := examevent.DefaultXpEarned
		_c.mutation.SetXpEarned(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExamEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "ExamEvent.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserName(); !ok {
		return &ValidationError{Name: "user_name", err: errors.New(`ent: missing required field "ExamEvent.user_name"`)}
	}
	if v, ok := _c.mutation.UserName(); ok {
		if err := examevent.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.user_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetLevel(); !ok {
		return &ValidationError{Name: "target_level", err: errors.New(`ent: missing required field "ExamEvent.target_level"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ExamEvent.passed"`)}
	}
	if _, ok := _c.mutation.PassRatio(); !ok {
		return &ValidationError{Name: "pass_ratio", err: errors.New(`ent: missing required field "ExamEvent.pass_ratio"`)}
	}
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		return &ValidationError{Name: "questions_total", err: errors.New(`ent: missing required field "ExamEvent.questions_total"`)}
	}
	if _, ok := _c.mutation.QuestionsPassed(); !ok {
		return &ValidationError{Name: "questions_passed", err: errors.New(`ent: missing required field "ExamEvent.questions_passed"`)}
	}
	if _, ok := _c.mutation.XpEarned(); !ok {
		return &ValidationError{Name: "xp_earned", err: errors.New(`ent: missing required field "ExamEvent.xp_earned"`)}
	}
	return nil
}

func (_c *ExamEventCreate) sqlSave(ctx context.Context) (*ExamEvent, error) {
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

func (_c *ExamEventCreate) createSpec() (*ExamEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examevent.Table, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(examevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.UserName(); ok {
		_spec.SetField(examevent.FieldUserName, field.TypeString, value)
		_node.UserName = value
	}
	if value, ok := _c.mutation.TargetLevel(); ok {
		_spec.SetField(examevent.FieldTargetLevel, field.TypeInt, value)
		_node.TargetLevel = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.PassRatio(); ok {
		_spec.SetField(examevent.FieldPassRatio, field.TypeFloat64, value)
		_node.PassRatio = value
	}
	if value, ok := _c.mutation.QuestionsTotal(); ok {
		_spec.SetField(examevent.FieldQuestionsTotal, field.TypeInt, value)
		_node.QuestionsTotal = value
	}
	if value, ok := _c.mutation.QuestionsPassed(); ok {
		_spec.SetField(examevent.FieldQuestionsPassed, field.TypeInt, value)
		_node.QuestionsPassed = value
	}
	if value, ok := _c.mutation.XpEarned(); ok {
		_spec.SetField(examevent.FieldXpEarned, field.TypeInt, value)
		_node.XpEarned = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExamEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExamEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExamEventCreate) OnConflict(opts ...sql.ConflictOption) *ExamEventUpsertOne {
	_c.conflict = opts
	return &ExamEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExamEventCreate) OnConflictColumns(columns ...string) *ExamEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExamEventUpsertOne{
		create: _c,
	}
}

type (
	// ExamEventUpsertOne is the builder for "upsert"-ing
	//  one ExamEvent node.
	ExamEventUpsertOne struct {
		create *ExamEventCreate
	}

	// ExamEventUpsert is the "OnConflict" setter.
	ExamEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetExamID sets the "exam_id" field.
func (u *ExamEventUpsert) SetExamID(v string) *ExamEventUpsert {
	u.Set(examevent.FieldExamID, v)
	return u
}

// UpdateExamID sets the "exam_id" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateExamID() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldExamID)
	return u
}

// SetUserName sets the "user_name" field.
func (u *ExamEventUpsert) SetUserName(v string) *ExamEventUpsert {
	u.Set(examevent.FieldUserName, v)
	return u
}

// UpdateUserName sets the "user_name" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateUserName() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldUserName)
	return u
}

// SetTargetLevel sets the "target_level" field.
func (u *ExamEventUpsert) SetTargetLevel(v int) *ExamEventUpsert {
	u.Set(examevent.FieldTargetLevel, v)
	return u
}

// UpdateTargetLevel sets the "target_level" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateTargetLevel() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldTargetLevel)
	return u
}

// AddTargetLevel adds v to the "target_level" field.
func (u *ExamEventUpsert) AddTargetLevel(v int) *ExamEventUpsert {
	u.Add(examevent.FieldTargetLevel, v)
	return u
}

// SetPassed sets the "passed" field.
func (u *ExamEventUpsert) SetPassed(v bool) *ExamEventUpsert {
	u.Set(examevent.FieldPassed, v)
	return u
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdatePassed() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldPassed)
	return u
}

// SetPassRatio sets the "pass_ratio" field.
func (u *ExamEventUpsert) SetPassRatio(v float64) *ExamEventUpsert {
	u.Set(examevent.FieldPassRatio, v)
	return u
}

// UpdatePassRatio sets the "pass_ratio" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdatePassRatio() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldPassRatio)
	return u
}

// AddPassRatio adds v to the "pass_ratio" field.
func (u *ExamEventUpsert) AddPassRatio(v float64) *ExamEventUpsert {
	u.Add(examevent.FieldPassRatio, v)
	return u
}

// SetQuestionsTotal sets the "questions_total" field.
func (u *ExamEventUpsert) SetQuestionsTotal(v int) *ExamEventUpsert {
	u.Set(examevent.FieldQuestionsTotal, v)
	return u
}

// UpdateQuestionsTotal sets the "questions_total" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateQuestionsTotal() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldQuestionsTotal)
	return u
}

// AddQuestionsTotal adds v to the "questions_total" field.
func (u *ExamEventUpsert) AddQuestionsTotal(v int) *ExamEventUpsert {
	u.Add(examevent.FieldQuestionsTotal, v)
	return u
}

// SetQuestionsPassed sets the "questions_passed" field.
func (u *ExamEventUpsert) SetQuestionsPassed(v int) *ExamEventUpsert {
	u.Set(examevent.FieldQuestionsPassed, v)
	return u
}

// UpdateQuestionsPassed sets the "questions_passed" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateQuestionsPassed() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldQuestionsPassed)
	return u
}

// AddQuestionsPassed adds v to the "questions_passed" field.
func (u *ExamEventUpsert) AddQuestionsPassed(v int) *ExamEventUpsert {
	u.Add(examevent.FieldQuestionsPassed, v)
	return u
}

// SetXpEarned sets the "xp_earned" field.
func (u *ExamEventUpsert) SetXpEarned(v int) *ExamEventUpsert {
	u.Set(examevent.FieldXpEarned, v)
	return u
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *ExamEventUpsert) UpdateXpEarned() *ExamEventUpsert {
	u.SetExcluded(examevent.FieldXpEarned)
	return u
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *ExamEventUpsert) AddXpEarned(v int) *ExamEventUpsert {
	u.Add(examevent.FieldXpEarned, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExamEventUpsertOne) UpdateNewValues() *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(examevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(examevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExamEventUpsertOne) Ignore() *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExamEventUpsertOne) DoNothing() *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExamEventCreate.OnConflict
// documentation for more info.
func (u *ExamEventUpsertOne) Update(set func(*ExamEventUpsert)) *ExamEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExamEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetExamID sets the "exam_id" field.
func (u *ExamEventUpsertOne) SetExamID(v string) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetExamID(v)
	})
}

// UpdateExamID sets the "exam_id" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateExamID() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateExamID()
	})
}

// SetUserName sets the "user_name" field.
func (u *ExamEventUpsertOne) SetUserName(v string) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetUserName(v)
	})
}

// UpdateUserName sets the "user_name" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateUserName() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateUserName()
	})
}

// SetTargetLevel sets the "target_level" field.
func (u *ExamEventUpsertOne) SetTargetLevel(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetTargetLevel(v)
	})
}

// AddTargetLevel adds v to the "target_level" field.
func (u *ExamEventUpsertOne) AddTargetLevel(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddTargetLevel(v)
	})
}

// UpdateTargetLevel sets the "target_level" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateTargetLevel() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateTargetLevel()
	})
}

// SetPassed sets the "passed" field.
func (u *ExamEventUpsertOne) SetPassed(v bool) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdatePassed() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdatePassed()
	})
}

// SetPassRatio sets the "pass_ratio" field.
func (u *ExamEventUpsertOne) SetPassRatio(v float64) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetPassRatio(v)
	})
}

// AddPassRatio adds v to the "pass_ratio" field.
func (u *ExamEventUpsertOne) AddPassRatio(v float64) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddPassRatio(v)
	})
}

// UpdatePassRatio sets the "pass_ratio" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdatePassRatio() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdatePassRatio()
	})
}

// SetQuestionsTotal sets the "questions_total" field.
func (u *ExamEventUpsertOne) SetQuestionsTotal(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetQuestionsTotal(v)
	})
}

// AddQuestionsTotal adds v to the "questions_total" field.
func (u *ExamEventUpsertOne) AddQuestionsTotal(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddQuestionsTotal(v)
	})
}

// UpdateQuestionsTotal sets the "questions_total" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateQuestionsTotal() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateQuestionsTotal()
	})
}

// SetQuestionsPassed sets the "questions_passed" field.
func (u *ExamEventUpsertOne) SetQuestionsPassed(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetQuestionsPassed(v)
	})
}

// AddQuestionsPassed adds v to the "questions_passed" field.
func (u *ExamEventUpsertOne) AddQuestionsPassed(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddQuestionsPassed(v)
	})
}

// UpdateQuestionsPassed sets the "questions_passed" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateQuestionsPassed() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateQuestionsPassed()
	})
}

// SetXpEarned sets the "xp_earned" field.
func (u *ExamEventUpsertOne) SetXpEarned(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetXpEarned(v)
	})
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *ExamEventUpsertOne) AddXpEarned(v int) *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddXpEarned(v)
	})
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *ExamEventUpsertOne) UpdateXpEarned() *ExamEventUpsertOne {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateXpEarned()
	})
}

// Exec executes the query.
func (u *ExamEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExamEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExamEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExamEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExamEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExamEventCreateBulk is the builder for creating many ExamEvent entities in bulk.
type ExamEventCreateBulk struct {
	config
	err      error
	builders []*ExamEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ExamEvent entities in the database.
func (_c *ExamEventCreateBulk) Save(ctx context.Context) ([]*ExamEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamEventMutation)
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
func (_c *ExamEventCreateBulk) SaveX(ctx context.Context) []*ExamEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExamEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExamEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *ExamEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExamEventUpsertBulk {
	_c.conflict = opts
	return &ExamEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExamEventCreateBulk) OnConflictColumns(columns ...string) *ExamEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExamEventUpsertBulk{
		create: _c,
	}
}

// ExamEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ExamEvent nodes.
type ExamEventUpsertBulk struct {
	create *ExamEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExamEventUpsertBulk) UpdateNewValues() *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(examevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(examevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExamEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExamEventUpsertBulk) Ignore() *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExamEventUpsertBulk) DoNothing() *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExamEventCreateBulk.OnConflict
// documentation for more info.
func (u *ExamEventUpsertBulk) Update(set func(*ExamEventUpsert)) *ExamEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExamEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetExamID sets the "exam_id" field.
func (u *ExamEventUpsertBulk) SetExamID(v string) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetExamID(v)
	})
}

// UpdateExamID sets the "exam_id" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateExamID() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateExamID()
	})
}

// SetUserName sets the "user_name" field.
func (u *ExamEventUpsertBulk) SetUserName(v string) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetUserName(v)
	})
}

// UpdateUserName sets the "user_name" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateUserName() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateUserName()
	})
}

// SetTargetLevel sets the "target_level" field.
func (u *ExamEventUpsertBulk) SetTargetLevel(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetTargetLevel(v)
	})
}

// AddTargetLevel adds v to the "target_level" field.
func (u *ExamEventUpsertBulk) AddTargetLevel(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddTargetLevel(v)
	})
}

// UpdateTargetLevel sets the "target_level" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateTargetLevel() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateTargetLevel()
	})
}

// SetPassed sets the "passed" field.
func (u *ExamEventUpsertBulk) SetPassed(v bool) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetPassed(v)
	})
}

// UpdatePassed sets the "passed" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdatePassed() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdatePassed()
	})
}

// SetPassRatio sets the "pass_ratio" field.
func (u *ExamEventUpsertBulk) SetPassRatio(v float64) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetPassRatio(v)
	})
}

// AddPassRatio adds v to the "pass_ratio" field.
func (u *ExamEventUpsertBulk) AddPassRatio(v float64) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddPassRatio(v)
	})
}

// UpdatePassRatio sets the "pass_ratio" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdatePassRatio() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdatePassRatio()
	})
}

// SetQuestionsTotal sets the "questions_total" field.
func (u *ExamEventUpsertBulk) SetQuestionsTotal(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetQuestionsTotal(v)
	})
}

// AddQuestionsTotal adds v to the "questions_total" field.
func (u *ExamEventUpsertBulk) AddQuestionsTotal(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddQuestionsTotal(v)
	})
}

// UpdateQuestionsTotal sets the "questions_total" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateQuestionsTotal() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateQuestionsTotal()
	})
}

// SetQuestionsPassed sets the "questions_passed" field.
func (u *ExamEventUpsertBulk) SetQuestionsPassed(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetQuestionsPassed(v)
	})
}

// AddQuestionsPassed adds v to the "questions_passed" field.
func (u *ExamEventUpsertBulk) AddQuestionsPassed(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddQuestionsPassed(v)
	})
}

// UpdateQuestionsPassed sets the "questions_passed" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateQuestionsPassed() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateQuestionsPassed()
	})
}

// SetXpEarned sets the "xp_earned" field.
func (u *ExamEventUpsertBulk) SetXpEarned(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.SetXpEarned(v)
	})
}

// AddXpEarned adds v to the "xp_earned" field.
func (u *ExamEventUpsertBulk) AddXpEarned(v int) *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.AddXpEarned(v)
	})
}

// UpdateXpEarned sets the "xp_earned" field to the value that was provided on create.
func (u *ExamEventUpsertBulk) UpdateXpEarned() *ExamEventUpsertBulk {
	return u.Update(func(s *ExamEventUpsert) {
		s.UpdateXpEarned()
	})
}

// Exec executes the query.
func (u *ExamEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExamEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExamEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExamEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
