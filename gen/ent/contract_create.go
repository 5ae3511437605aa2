// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contract"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contractfile"
	"github.com/joseph-ayodele/contract-intel/gen/ent/extractjob"
)

// ContractCreate is the builder for creating a Contract entity.
type ContractCreate struct {
	config
	mutation *ContractMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *ContractCreate) SetFileID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetServiceProvider sets the "service_provider" field.
func (_c *ContractCreate) SetServiceProvider(v string) *ContractCreate {
	_c.mutation.SetServiceProvider(v)
	return _c
}

// SetNillableServiceProvider sets the "service_provider" field if the given value is not nil.
func (_c *ContractCreate) SetNillableServiceProvider(v *string) *ContractCreate {
	if v != nil {
		_c.SetServiceProvider(*v)
	}
	return _c
}

// SetCustomer sets the "customer" field.
func (_c *ContractCreate) SetCustomer(v string) *ContractCreate {
	_c.mutation.SetCustomer(v)
	return _c
}

// SetNillableCustomer sets the "customer" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCustomer(v *string) *ContractCreate {
	if v != nil {
		_c.SetCustomer(*v)
	}
	return _c
}

// SetAnnualContractValue sets the "annual_contract_value" field.
func (_c *ContractCreate) SetAnnualContractValue(v float64) *ContractCreate {
	_c.mutation.SetAnnualContractValue(v)
	return _c
}

// SetNillableAnnualContractValue sets the "annual_contract_value" field if the given value is not nil.
func (_c *ContractCreate) SetNillableAnnualContractValue(v *float64) *ContractCreate {
	if v != nil {
		_c.SetAnnualContractValue(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *ContractCreate) SetCurrencyCode(v string) *ContractCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetRevenueType sets the "revenue_type" field.
func (_c *ContractCreate) SetRevenueType(v string) *ContractCreate {
	_c.mutation.SetRevenueType(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ContractCreate) SetConfidenceScore(v int) *ContractCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ContractCreate) SetProcessedAt(v time.Time) *ContractCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableProcessedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractCreate) SetCreatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableCreatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractCreate) SetUpdatedAt(v time.Time) *ContractCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractCreate) SetNillableUpdatedAt(v *time.Time) *ContractCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractCreate) SetID(v uuid.UUID) *ContractCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractCreate) SetNillableID(v *uuid.UUID) *ContractCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the ContractFile entity.
func (_c *ContractCreate) SetFile(v *ContractFile) *ContractCreate {
	return _c.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *ContractCreate) AddJobIDs(ids ...uuid.UUID) *ContractCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *ContractCreate) AddJobs(v ...*ExtractJob) *ContractCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the ContractMutation object of the builder.
func (_c *ContractCreate) Mutation() *ContractMutation {
	return _c.mutation
}

// Save creates the Contract in the database.
func (_c *ContractCreate) Save(ctx context.Context) (*Contract, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractCreate) SaveX(ctx context.Context) *Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := contract.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contract.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contract.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contract.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "Contract.file_id"`)}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Contract.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := contract.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "Contract.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RevenueType(); !ok {
		return &ValidationError{Name: "revenue_type", err: errors.New(`ent: missing required field "Contract.revenue_type"`)}
	}
	if v, ok := _c.mutation.RevenueType(); ok {
		if err := contract.RevenueTypeValidator(v); err != nil {
			return &ValidationError{Name: "revenue_type", err: fmt.Errorf(`ent: validator failed for field "Contract.revenue_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Contract.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := contract.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Contract.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "Contract.processed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contract.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contract.updated_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "Contract.file"`)}
	}
	return nil
}

func (_c *ContractCreate) sqlSave(ctx context.Context) (*Contract, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContractCreate) createSpec() (*Contract, *sqlgraph.CreateSpec) {
	var (
		_node = &Contract{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contract.Table, sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ServiceProvider(); ok {
		_spec.SetField(contract.FieldServiceProvider, field.TypeString, value)
		_node.ServiceProvider = &value
	}
	if value, ok := _c.mutation.Customer(); ok {
		_spec.SetField(contract.FieldCustomer, field.TypeString, value)
		_node.Customer = &value
	}
	if value, ok := _c.mutation.AnnualContractValue(); ok {
		_spec.SetField(contract.FieldAnnualContractValue, field.TypeFloat64, value)
		_node.AnnualContractValue = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(contract.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.RevenueType(); ok {
		_spec.SetField(contract.FieldRevenueType, field.TypeString, value)
		_node.RevenueType = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(contract.FieldConfidenceScore, field.TypeInt, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(contract.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contract.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contract.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractCreateBulk is the builder for creating many Contract entities in bulk.
type ContractCreateBulk struct {
	config
	err      error
	builders []*ContractCreate
}

// Save creates the Contract entities in the database.
func (_c *ContractCreateBulk) Save(ctx context.Context) ([]*Contract, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contract, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractMutation)
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
func (_c *ContractCreateBulk) SaveX(ctx context.Context) []*Contract {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
