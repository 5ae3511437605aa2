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
	"github.com/google/uuid"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contract"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contractfile"
	"github.com/joseph-ayodele/contract-intel/gen/ent/extractjob"
	"github.com/joseph-ayodele/contract-intel/gen/ent/predicate"
)

// ContractUpdate is the builder for updating Contract entities.
type ContractUpdate struct {
	config
	hooks    []Hook
	mutation *ContractMutation
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdate) Where(ps ...predicate.Contract) *ContractUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ContractUpdate) SetFileID(v uuid.UUID) *ContractUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableFileID(v *uuid.UUID) *ContractUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetServiceProvider sets the "service_provider" field.
func (_u *ContractUpdate) SetServiceProvider(v string) *ContractUpdate {
	_u.mutation.SetServiceProvider(v)
	return _u
}

// SetNillableServiceProvider sets the "service_provider" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableServiceProvider(v *string) *ContractUpdate {
	if v != nil {
		_u.SetServiceProvider(*v)
	}
	return _u
}

// ClearServiceProvider clears the value of the "service_provider" field.
func (_u *ContractUpdate) ClearServiceProvider() *ContractUpdate {
	_u.mutation.ClearServiceProvider()
	return _u
}

// SetCustomer sets the "customer" field.
func (_u *ContractUpdate) SetCustomer(v string) *ContractUpdate {
	_u.mutation.SetCustomer(v)
	return _u
}

// SetNillableCustomer sets the "customer" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCustomer(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCustomer(*v)
	}
	return _u
}

// ClearCustomer clears the value of the "customer" field.
func (_u *ContractUpdate) ClearCustomer() *ContractUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// SetAnnualContractValue sets the "annual_contract_value" field.
func (_u *ContractUpdate) SetAnnualContractValue(v float64) *ContractUpdate {
	_u.mutation.ResetAnnualContractValue()
	_u.mutation.SetAnnualContractValue(v)
	return _u
}

// SetNillableAnnualContractValue sets the "annual_contract_value" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableAnnualContractValue(v *float64) *ContractUpdate {
	if v != nil {
		_u.SetAnnualContractValue(*v)
	}
	return _u
}

// AddAnnualContractValue adds value to the "annual_contract_value" field.
func (_u *ContractUpdate) AddAnnualContractValue(v float64) *ContractUpdate {
	_u.mutation.AddAnnualContractValue(v)
	return _u
}

// ClearAnnualContractValue clears the value of the "annual_contract_value" field.
func (_u *ContractUpdate) ClearAnnualContractValue() *ContractUpdate {
	_u.mutation.ClearAnnualContractValue()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ContractUpdate) SetCurrencyCode(v string) *ContractUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCurrencyCode(v *string) *ContractUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetRevenueType sets the "revenue_type" field.
func (_u *ContractUpdate) SetRevenueType(v string) *ContractUpdate {
	_u.mutation.SetRevenueType(v)
	return _u
}

// SetNillableRevenueType sets the "revenue_type" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableRevenueType(v *string) *ContractUpdate {
	if v != nil {
		_u.SetRevenueType(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ContractUpdate) SetConfidenceScore(v int) *ContractUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableConfidenceScore(v *int) *ContractUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ContractUpdate) AddConfidenceScore(v int) *ContractUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ContractUpdate) SetProcessedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableProcessedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdate) SetCreatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdate) SetNillableCreatedAt(v *time.Time) *ContractUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdate) SetUpdatedAt(v time.Time) *ContractUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the ContractFile entity.
func (_u *ContractUpdate) SetFile(v *ContractFile) *ContractUpdate {
	return _u.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdate) AddJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) AddJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdate) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ContractFile entity.
func (_u *ContractUpdate) ClearFile() *ContractUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdate) ClearJobs() *ContractUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdate) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdate) RemoveJobs(v ...*ExtractJob) *ContractUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdate) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := contract.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Contract.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RevenueType(); ok {
		if err := contract.RevenueTypeValidator(v); err != nil {
			return &ValidationError{Name: "revenue_type", err: fmt.Errorf(`ent: validator failed for field "Contract.revenue_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := contract.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Contract.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.file"`)
	}
	return nil
}

func (_u *ContractUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ServiceProvider(); ok {
		_spec.SetField(contract.FieldServiceProvider, field.TypeString, value)
	}
	if _u.mutation.ServiceProviderCleared() {
		_spec.ClearField(contract.FieldServiceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Customer(); ok {
		_spec.SetField(contract.FieldCustomer, field.TypeString, value)
	}
	if _u.mutation.CustomerCleared() {
		_spec.ClearField(contract.FieldCustomer, field.TypeString)
	}
	if value, ok := _u.mutation.AnnualContractValue(); ok {
		_spec.SetField(contract.FieldAnnualContractValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnnualContractValue(); ok {
		_spec.AddField(contract.FieldAnnualContractValue, field.TypeFloat64, value)
	}
	if _u.mutation.AnnualContractValueCleared() {
		_spec.ClearField(contract.FieldAnnualContractValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(contract.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevenueType(); ok {
		_spec.SetField(contract.FieldRevenueType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(contract.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(contract.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(contract.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.FileTable,
			Columns: []string{contract.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.FileTable,
			Columns: []string{contract.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractUpdateOne is the builder for updating a single Contract entity.
type ContractUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractMutation
}

// SetFileID sets the "file_id" field.
func (_u *ContractUpdateOne) SetFileID(v uuid.UUID) *ContractUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableFileID(v *uuid.UUID) *ContractUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetServiceProvider sets the "service_provider" field.
func (_u *ContractUpdateOne) SetServiceProvider(v string) *ContractUpdateOne {
	_u.mutation.SetServiceProvider(v)
	return _u
}

// SetNillableServiceProvider sets the "service_provider" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableServiceProvider(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetServiceProvider(*v)
	}
	return _u
}

// ClearServiceProvider clears the value of the "service_provider" field.
func (_u *ContractUpdateOne) ClearServiceProvider() *ContractUpdateOne {
	_u.mutation.ClearServiceProvider()
	return _u
}

// SetCustomer sets the "customer" field.
func (_u *ContractUpdateOne) SetCustomer(v string) *ContractUpdateOne {
	_u.mutation.SetCustomer(v)
	return _u
}

// SetNillableCustomer sets the "customer" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCustomer(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCustomer(*v)
	}
	return _u
}

// ClearCustomer clears the value of the "customer" field.
func (_u *ContractUpdateOne) ClearCustomer() *ContractUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// SetAnnualContractValue sets the "annual_contract_value" field.
func (_u *ContractUpdateOne) SetAnnualContractValue(v float64) *ContractUpdateOne {
	_u.mutation.ResetAnnualContractValue()
	_u.mutation.SetAnnualContractValue(v)
	return _u
}

// SetNillableAnnualContractValue sets the "annual_contract_value" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableAnnualContractValue(v *float64) *ContractUpdateOne {
	if v != nil {
		_u.SetAnnualContractValue(*v)
	}
	return _u
}

// AddAnnualContractValue adds value to the "annual_contract_value" field.
func (_u *ContractUpdateOne) AddAnnualContractValue(v float64) *ContractUpdateOne {
	_u.mutation.AddAnnualContractValue(v)
	return _u
}

// ClearAnnualContractValue clears the value of the "annual_contract_value" field.
func (_u *ContractUpdateOne) ClearAnnualContractValue() *ContractUpdateOne {
	_u.mutation.ClearAnnualContractValue()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *ContractUpdateOne) SetCurrencyCode(v string) *ContractUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCurrencyCode(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetRevenueType sets the "revenue_type" field.
func (_u *ContractUpdateOne) SetRevenueType(v string) *ContractUpdateOne {
	_u.mutation.SetRevenueType(v)
	return _u
}

// SetNillableRevenueType sets the "revenue_type" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableRevenueType(v *string) *ContractUpdateOne {
	if v != nil {
		_u.SetRevenueType(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ContractUpdateOne) SetConfidenceScore(v int) *ContractUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableConfidenceScore(v *int) *ContractUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ContractUpdateOne) AddConfidenceScore(v int) *ContractUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ContractUpdateOne) SetProcessedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableProcessedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractUpdateOne) SetCreatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractUpdateOne) SetUpdatedAt(v time.Time) *ContractUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFile sets the "file" edge to the ContractFile entity.
func (_u *ContractUpdateOne) SetFile(v *ContractFile) *ContractUpdateOne {
	return _u.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *ContractUpdateOne) AddJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) AddJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_u *ContractUpdateOne) Mutation() *ContractMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the ContractFile entity.
func (_u *ContractUpdateOne) ClearFile() *ContractUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *ContractUpdateOne) ClearJobs() *ContractUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *ContractUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *ContractUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *ContractUpdateOne) RemoveJobs(v ...*ExtractJob) *ContractUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the ContractUpdate builder.
func (_u *ContractUpdateOne) Where(ps ...predicate.Contract) *ContractUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractUpdateOne) Select(field string, fields ...string) *ContractUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contract entity.
func (_u *ContractUpdateOne) Save(ctx context.Context) (*Contract, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractUpdateOne) SaveX(ctx context.Context) *Contract {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contract.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractUpdateOne) check() error {
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := contract.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Contract.currency_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RevenueType(); ok {
		if err := contract.RevenueTypeValidator(v); err != nil {
			return &ValidationError{Name: "revenue_type", err: fmt.Errorf(`ent: validator failed for field "Contract.revenue_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := contract.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Contract.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Contract.file"`)
	}
	return nil
}

func (_u *ContractUpdateOne) sqlSave(ctx context.Context) (_node *Contract, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contract.Table, contract.Columns, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contract.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contract.FieldID)
		for _, f := range fields {
			if !contract.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contract.FieldID {
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
	if value, ok := _u.mutation.ServiceProvider(); ok {
		_spec.SetField(contract.FieldServiceProvider, field.TypeString, value)
	}
	if _u.mutation.ServiceProviderCleared() {
		_spec.ClearField(contract.FieldServiceProvider, field.TypeString)
	}
	if value, ok := _u.mutation.Customer(); ok {
		_spec.SetField(contract.FieldCustomer, field.TypeString, value)
	}
	if _u.mutation.CustomerCleared() {
		_spec.ClearField(contract.FieldCustomer, field.TypeString)
	}
	if value, ok := _u.mutation.AnnualContractValue(); ok {
		_spec.SetField(contract.FieldAnnualContractValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnnualContractValue(); ok {
		_spec.AddField(contract.FieldAnnualContractValue, field.TypeFloat64, value)
	}
	if _u.mutation.AnnualContractValueCleared() {
		_spec.ClearField(contract.FieldAnnualContractValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(contract.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RevenueType(); ok {
		_spec.SetField(contract.FieldRevenueType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(contract.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(contract.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(contract.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.FileTable,
			Columns: []string{contract.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contract.FileTable,
			Columns: []string{contract.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contractfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contract.JobsTable,
			Columns: []string{contract.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contract{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contract.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
