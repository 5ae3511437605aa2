// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/contract-intel/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldFileID, v))
}

// ServiceProvider applies equality check predicate on the "service_provider" field. It's identical to ServiceProviderEQ.
func ServiceProvider(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldServiceProvider, v))
}

// Customer applies equality check predicate on the "customer" field. It's identical to CustomerEQ.
func Customer(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomer, v))
}

// AnnualContractValue applies equality check predicate on the "annual_contract_value" field. It's identical to AnnualContractValueEQ.
func AnnualContractValue(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAnnualContractValue, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCurrencyCode, v))
}

// RevenueType applies equality check predicate on the "revenue_type" field. It's identical to RevenueTypeEQ.
func RevenueType(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRevenueType, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldConfidenceScore, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldProcessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldFileID, vs...))
}

// ServiceProviderEQ applies the EQ predicate on the "service_provider" field.
func ServiceProviderEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldServiceProvider, v))
}

// ServiceProviderNEQ applies the NEQ predicate on the "service_provider" field.
func ServiceProviderNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldServiceProvider, v))
}

// ServiceProviderIn applies the In predicate on the "service_provider" field.
func ServiceProviderIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldServiceProvider, vs...))
}

// ServiceProviderNotIn applies the NotIn predicate on the "service_provider" field.
func ServiceProviderNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldServiceProvider, vs...))
}

// ServiceProviderGT applies the GT predicate on the "service_provider" field.
func ServiceProviderGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldServiceProvider, v))
}

// ServiceProviderGTE applies the GTE predicate on the "service_provider" field.
func ServiceProviderGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldServiceProvider, v))
}

// ServiceProviderLT applies the LT predicate on the "service_provider" field.
func ServiceProviderLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldServiceProvider, v))
}

// ServiceProviderLTE applies the LTE predicate on the "service_provider" field.
func ServiceProviderLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldServiceProvider, v))
}

// ServiceProviderContains applies the Contains predicate on the "service_provider" field.
func ServiceProviderContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldServiceProvider, v))
}

// ServiceProviderHasPrefix applies the HasPrefix predicate on the "service_provider" field.
func ServiceProviderHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldServiceProvider, v))
}

// ServiceProviderHasSuffix applies the HasSuffix predicate on the "service_provider" field.
func ServiceProviderHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldServiceProvider, v))
}

// ServiceProviderIsNil applies the IsNil predicate on the "service_provider" field.
func ServiceProviderIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldServiceProvider))
}

// ServiceProviderNotNil applies the NotNil predicate on the "service_provider" field.
func ServiceProviderNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldServiceProvider))
}

// ServiceProviderEqualFold applies the EqualFold predicate on the "service_provider" field.
func ServiceProviderEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldServiceProvider, v))
}

// ServiceProviderContainsFold applies the ContainsFold predicate on the "service_provider" field.
func ServiceProviderContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldServiceProvider, v))
}

// CustomerEQ applies the EQ predicate on the "customer" field.
func CustomerEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCustomer, v))
}

// CustomerNEQ applies the NEQ predicate on the "customer" field.
func CustomerNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCustomer, v))
}

// CustomerIn applies the In predicate on the "customer" field.
func CustomerIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCustomer, vs...))
}

// CustomerNotIn applies the NotIn predicate on the "customer" field.
func CustomerNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCustomer, vs...))
}

// CustomerGT applies the GT predicate on the "customer" field.
func CustomerGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCustomer, v))
}

// CustomerGTE applies the GTE predicate on the "customer" field.
func CustomerGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCustomer, v))
}

// CustomerLT applies the LT predicate on the "customer" field.
func CustomerLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCustomer, v))
}

// CustomerLTE applies the LTE predicate on the "customer" field.
func CustomerLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCustomer, v))
}

// CustomerContains applies the Contains predicate on the "customer" field.
func CustomerContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCustomer, v))
}

// CustomerHasPrefix applies the HasPrefix predicate on the "customer" field.
func CustomerHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCustomer, v))
}

// CustomerHasSuffix applies the HasSuffix predicate on the "customer" field.
func CustomerHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCustomer, v))
}

// CustomerIsNil applies the IsNil predicate on the "customer" field.
func CustomerIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldCustomer))
}

// CustomerNotNil applies the NotNil predicate on the "customer" field.
func CustomerNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldCustomer))
}

// CustomerEqualFold applies the EqualFold predicate on the "customer" field.
func CustomerEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCustomer, v))
}

// CustomerContainsFold applies the ContainsFold predicate on the "customer" field.
func CustomerContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCustomer, v))
}

// AnnualContractValueEQ applies the EQ predicate on the "annual_contract_value" field.
func AnnualContractValueEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldAnnualContractValue, v))
}

// AnnualContractValueNEQ applies the NEQ predicate on the "annual_contract_value" field.
func AnnualContractValueNEQ(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldAnnualContractValue, v))
}

// AnnualContractValueIn applies the In predicate on the "annual_contract_value" field.
func AnnualContractValueIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldAnnualContractValue, vs...))
}

// AnnualContractValueNotIn applies the NotIn predicate on the "annual_contract_value" field.
func AnnualContractValueNotIn(vs ...float64) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldAnnualContractValue, vs...))
}

// AnnualContractValueGT applies the GT predicate on the "annual_contract_value" field.
func AnnualContractValueGT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldAnnualContractValue, v))
}

// AnnualContractValueGTE applies the GTE predicate on the "annual_contract_value" field.
func AnnualContractValueGTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldAnnualContractValue, v))
}

// AnnualContractValueLT applies the LT predicate on the "annual_contract_value" field.
func AnnualContractValueLT(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldAnnualContractValue, v))
}

// AnnualContractValueLTE applies the LTE predicate on the "annual_contract_value" field.
func AnnualContractValueLTE(v float64) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldAnnualContractValue, v))
}

// AnnualContractValueIsNil applies the IsNil predicate on the "annual_contract_value" field.
func AnnualContractValueIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldAnnualContractValue))
}

// AnnualContractValueNotNil applies the NotNil predicate on the "annual_contract_value" field.
func AnnualContractValueNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldAnnualContractValue))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// RevenueTypeEQ applies the EQ predicate on the "revenue_type" field.
func RevenueTypeEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRevenueType, v))
}

// RevenueTypeNEQ applies the NEQ predicate on the "revenue_type" field.
func RevenueTypeNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldRevenueType, v))
}

// RevenueTypeIn applies the In predicate on the "revenue_type" field.
func RevenueTypeIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldRevenueType, vs...))
}

// RevenueTypeNotIn applies the NotIn predicate on the "revenue_type" field.
func RevenueTypeNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldRevenueType, vs...))
}

// RevenueTypeGT applies the GT predicate on the "revenue_type" field.
func RevenueTypeGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldRevenueType, v))
}

// RevenueTypeGTE applies the GTE predicate on the "revenue_type" field.
func RevenueTypeGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldRevenueType, v))
}

// RevenueTypeLT applies the LT predicate on the "revenue_type" field.
func RevenueTypeLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldRevenueType, v))
}

// RevenueTypeLTE applies the LTE predicate on the "revenue_type" field.
func RevenueTypeLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldRevenueType, v))
}

// RevenueTypeContains applies the Contains predicate on the "revenue_type" field.
func RevenueTypeContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldRevenueType, v))
}

// RevenueTypeHasPrefix applies the HasPrefix predicate on the "revenue_type" field.
func RevenueTypeHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldRevenueType, v))
}

// RevenueTypeHasSuffix applies the HasSuffix predicate on the "revenue_type" field.
func RevenueTypeHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldRevenueType, v))
}

// RevenueTypeEqualFold applies the EqualFold predicate on the "revenue_type" field.
func RevenueTypeEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldRevenueType, v))
}

// RevenueTypeContainsFold applies the ContainsFold predicate on the "revenue_type" field.
func RevenueTypeContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldRevenueType, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v int) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...int) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v int) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldConfidenceScore, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldProcessedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.ContractFile) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
