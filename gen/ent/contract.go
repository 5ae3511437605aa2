// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contract"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contractfile"
)

// Contract is the model entity for the Contract schema.
type Contract struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// ServiceProvider holds the value of the "service_provider" field.
	ServiceProvider *string `json:"service_provider,omitempty"`
	// Customer holds the value of the "customer" field.
	Customer *string `json:"customer,omitempty"`
	// AnnualContractValue holds the value of the "annual_contract_value" field.
	AnnualContractValue *float64 `json:"annual_contract_value,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// RevenueType holds the value of the "revenue_type" field.
	RevenueType string `json:"revenue_type,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore int `json:"confidence_score,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractQuery when eager-loading is set.
	Edges        ContractEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractEdges holds the relations/edges for other nodes in the graph.
type ContractEdges struct {
	// File holds the value of the file edge.
	File *ContractFile `json:"file,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractEdges) FileOrErr() (*ContractFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contractfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e ContractEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contract) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contract.FieldAnnualContractValue:
			values[i] = new(sql.NullFloat64)
		case contract.FieldConfidenceScore:
			values[i] = new(sql.NullInt64)
		case contract.FieldServiceProvider, contract.FieldCustomer, contract.FieldCurrencyCode, contract.FieldRevenueType:
			values[i] = new(sql.NullString)
		case contract.FieldProcessedAt, contract.FieldCreatedAt, contract.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contract.FieldID, contract.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contract fields.
func (_m *Contract) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contract.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contract.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case contract.FieldServiceProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_provider", values[i])
			} else if value.Valid {
				_m.ServiceProvider = new(string)
				*_m.ServiceProvider = value.String
			}
		case contract.FieldCustomer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer", values[i])
			} else if value.Valid {
				_m.Customer = new(string)
				*_m.Customer = value.String
			}
		case contract.FieldAnnualContractValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field annual_contract_value", values[i])
			} else if value.Valid {
				_m.AnnualContractValue = new(float64)
				*_m.AnnualContractValue = value.Float64
			}
		case contract.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case contract.FieldRevenueType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revenue_type", values[i])
			} else if value.Valid {
				_m.RevenueType = value.String
			}
		case contract.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = int(value.Int64)
			}
		case contract.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		case contract.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contract.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contract.
// This includes values selected through modifiers, order, etc.
func (_m *Contract) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the Contract entity.
func (_m *Contract) QueryFile() *ContractFileQuery {
	return NewContractClient(_m.config).QueryFile(_m)
}

// QueryJobs queries the "jobs" edge of the Contract entity.
func (_m *Contract) QueryJobs() *ExtractJobQuery {
	return NewContractClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Contract.
// Note that you need to call Contract.Unwrap() before calling this method if this Contract
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contract) Update() *ContractUpdateOne {
	return NewContractClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contract entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contract) Unwrap() *Contract {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contract is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contract) String() string {
	var builder strings.Builder
	builder.WriteString("Contract(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	if v := _m.ServiceProvider; v != nil {
		builder.WriteString("service_provider=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Customer; v != nil {
		builder.WriteString("customer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnnualContractValue; v != nil {
		builder.WriteString("annual_contract_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("revenue_type=")
	builder.WriteString(_m.RevenueType)
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contracts is a parsable slice of Contract.
type Contracts []*Contract
