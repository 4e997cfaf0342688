// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/haneul/aiquest/ent/examevent"
	"github.com/haneul/aiquest/ent/predicate"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdate) SetExamID(v string) *ExamEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableExamID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *ExamEventUpdate) SetUserName(v string) *ExamEventUpdate {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableUserName(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *ExamEventUpdate) SetTargetLevel(v int) *ExamEventUpdate {
	_u.mutation.ResetTargetLevel()
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTargetLevel(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// AddTargetLevel adds value to the "target_level" field.
func (_u *ExamEventUpdate) AddTargetLevel(v int) *ExamEventUpdate {
	_u.mutation.AddTargetLevel(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdate) SetPassed(v bool) *ExamEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePassed(v *bool) *ExamEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPassRatio sets the "pass_ratio" field.
func (_u *ExamEventUpdate) SetPassRatio(v float64) *ExamEventUpdate {
	_u.mutation.ResetPassRatio()
	_u.mutation.SetPassRatio(v)
	return _u
}

// SetNillablePassRatio sets the "pass_ratio" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePassRatio(v *float64) *ExamEventUpdate {
	if v != nil {
		_u.SetPassRatio(*v)
	}
	return _u
}

// AddPassRatio adds value to the "pass_ratio" field.
func (_u *ExamEventUpdate) AddPassRatio(v float64) *ExamEventUpdate {
	_u.mutation.AddPassRatio(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *ExamEventUpdate) SetQuestionsTotal(v int) *ExamEventUpdate {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableQuestionsTotal(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *ExamEventUpdate) AddQuestionsTotal(v int) *ExamEventUpdate {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsPassed sets the "questions_passed" field.
func (_u *ExamEventUpdate) SetQuestionsPassed(v int) *ExamEventUpdate {
	_u.mutation.ResetQuestionsPassed()
	_u.mutation.SetQuestionsPassed(v)
	return _u
}

// SetNillableQuestionsPassed sets the "questions_passed" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableQuestionsPassed(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetQuestionsPassed(*v)
	}
	return _u
}

// AddQuestionsPassed adds value to the "questions_passed" field.
func (_u *ExamEventUpdate) AddQuestionsPassed(v int) *ExamEventUpdate {
	_u.mutation.AddQuestionsPassed(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *ExamEventUpdate) SetXpEarned(v int) *ExamEventUpdate {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableXpEarned(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *ExamEventUpdate) AddXpEarned(v int) *ExamEventUpdate {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserName(); ok {
		if err := examevent.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.user_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(examevent.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(examevent.FieldTargetLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetLevel(); ok {
		_spec.AddField(examevent.FieldTargetLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PassRatio(); ok {
		_spec.SetField(examevent.FieldPassRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRatio(); ok {
		_spec.AddField(examevent.FieldPassRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(examevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(examevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsPassed(); ok {
		_spec.SetField(examevent.FieldQuestionsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPassed(); ok {
		_spec.AddField(examevent.FieldQuestionsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(examevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(examevent.FieldXpEarned, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdateOne) SetExamID(v string) *ExamEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableExamID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetUserName sets the "user_name" field.
func (_u *ExamEventUpdateOne) SetUserName(v string) *ExamEventUpdateOne {
	_u.mutation.SetUserName(v)
	return _u
}

// SetNillableUserName sets the "user_name" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableUserName(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetUserName(*v)
	}
	return _u
}

// SetTargetLevel sets the "target_level" field.
func (_u *ExamEventUpdateOne) SetTargetLevel(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTargetLevel()
	_u.mutation.SetTargetLevel(v)
	return _u
}

// SetNillableTargetLevel sets the "target_level" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTargetLevel(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTargetLevel(*v)
	}
	return _u
}

// AddTargetLevel adds value to the "target_level" field.
func (_u *ExamEventUpdateOne) AddTargetLevel(v int) *ExamEventUpdateOne {
	_u.mutation.AddTargetLevel(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdateOne) SetPassed(v bool) *ExamEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePassed(v *bool) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPassRatio sets the "pass_ratio" field.
func (_u *ExamEventUpdateOne) SetPassRatio(v float64) *ExamEventUpdateOne {
	_u.mutation.ResetPassRatio()
	_u.mutation.SetPassRatio(v)
	return _u
}

// SetNillablePassRatio sets the "pass_ratio" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePassRatio(v *float64) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPassRatio(*v)
	}
	return _u
}

// AddPassRatio adds value to the "pass_ratio" field.
func (_u *ExamEventUpdateOne) AddPassRatio(v float64) *ExamEventUpdateOne {
	_u.mutation.AddPassRatio(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *ExamEventUpdateOne) SetQuestionsTotal(v int) *ExamEventUpdateOne {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableQuestionsTotal(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *ExamEventUpdateOne) AddQuestionsTotal(v int) *ExamEventUpdateOne {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsPassed sets the "questions_passed" field.
func (_u *ExamEventUpdateOne) SetQuestionsPassed(v int) *ExamEventUpdateOne {
	_u.mutation.ResetQuestionsPassed()
	_u.mutation.SetQuestionsPassed(v)
	return _u
}

// SetNillableQuestionsPassed sets the "questions_passed" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableQuestionsPassed(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetQuestionsPassed(*v)
	}
	return _u
}

// AddQuestionsPassed adds value to the "questions_passed" field.
func (_u *ExamEventUpdateOne) AddQuestionsPassed(v int) *ExamEventUpdateOne {
	_u.mutation.AddQuestionsPassed(v)
	return _u
}

// SetXpEarned sets the "xp_earned" field.
func (_u *ExamEventUpdateOne) SetXpEarned(v int) *ExamEventUpdateOne {
	_u.mutation.ResetXpEarned()
	_u.mutation.SetXpEarned(v)
	return _u
}

// SetNillableXpEarned sets the "xp_earned" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableXpEarned(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetXpEarned(*v)
	}
	return _u
}

// AddXpEarned adds value to the "xp_earned" field.
func (_u *ExamEventUpdateOne) AddXpEarned(v int) *ExamEventUpdateOne {
	_u.mutation.AddXpEarned(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserName(); ok {
		if err := examevent.UserNameValidator(v); err != nil {
			return &ValidationError{Name: "user_name", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.user_name": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserName(); ok {
		_spec.SetField(examevent.FieldUserName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLevel(); ok {
		_spec.SetField(examevent.FieldTargetLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetLevel(); ok {
		_spec.AddField(examevent.FieldTargetLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PassRatio(); ok {
		_spec.SetField(examevent.FieldPassRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPassRatio(); ok {
		_spec.AddField(examevent.FieldPassRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(examevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(examevent.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsPassed(); ok {
		_spec.SetField(examevent.FieldQuestionsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsPassed(); ok {
		_spec.AddField(examevent.FieldQuestionsPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpEarned(); ok {
		_spec.SetField(examevent.FieldXpEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpEarned(); ok {
		_spec.AddField(examevent.FieldXpEarned, field.TypeInt, value)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
