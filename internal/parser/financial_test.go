package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFinancialHourlyLineItem(t *testing.T) {
	financial := extractFinancialDetails("Consulting: 10 hours ($1000)")

	require.Len(t, financial.LineItems, 1)
	item := financial.LineItems[0]
	assert.Equal(t, "Consulting", item.Service)
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, "hour", item.Unit)
	assert.Equal(t, 100.0, item.UnitPrice)
	assert.Equal(t, 1000.0, item.MonthlyTotal)
}

func TestExtractFinancialZeroHoursGuard(t *testing.T) {
	financial := extractFinancialDetails("Consulting: 0 hours ($1000)")

	require.Len(t, financial.LineItems, 1)
	assert.Equal(t, 0.0, financial.LineItems[0].UnitPrice)
	assert.Equal(t, 1000.0, financial.LineItems[0].MonthlyTotal)
}

func TestExtractFinancialServiceRateDefaultUnit(t *testing.T) {
	financial := extractFinancialDetails("Security Assessment - $150")

	require.Len(t, financial.LineItems, 1)
	item := financial.LineItems[0]
	assert.Equal(t, "Security Assessment", item.Service)
	assert.Equal(t, "hour", item.Unit)
	assert.Equal(t, 150.0, item.UnitPrice)
	assert.Equal(t, 0.0, item.MonthlyTotal)
}

func TestExtractFinancialFixedUnitFeedsOneTimeCosts(t *testing.T) {
	financial := extractFinancialDetails("Migration Service - $2,500/fixed")

	require.Len(t, financial.LineItems, 1)
	item := financial.LineItems[0]
	assert.Equal(t, "fixed", item.Unit)
	assert.Equal(t, 2500.0, item.MonthlyTotal)
	assert.Equal(t, 2500.0, financial.OneTimeCosts["Migration Service"])
	assert.Equal(t, 2500.0, financial.TotalOneTime)
}

func TestExtractFinancialCostTotals(t *testing.T) {
	text := "Monthly Services Total: $5,000\nSetup Fee: $1,200\n"
	financial := extractFinancialDetails(text)

	assert.Equal(t, 5000.0, financial.MonthlyCosts["Monthly Total"])
	assert.Equal(t, 1200.0, financial.OneTimeCosts["Setup Fee"])
	assert.Equal(t, 5000.0, financial.TotalMonthly)
	assert.Equal(t, 1200.0, financial.TotalOneTime)
}

func TestExtractFinancialAnnualValueExplicit(t *testing.T) {
	financial := extractFinancialDetails("Annual Contract Value: $60,000")
	assert.Equal(t, 60000.0, financial.AnnualContractValue)
}

func TestExtractFinancialAnnualValueDerived(t *testing.T) {
	// No explicit annual figure: monthly total x contract term.
	text := "Monthly Services Total: $5,000\nTerm: 24 months\n"
	financial := extractFinancialDetails(text)
	assert.Equal(t, 120000.0, financial.AnnualContractValue)
}

func TestExtractFinancialAnnualValueDefaultTerm(t *testing.T) {
	// No term stated: 12 months assumed.
	financial := extractFinancialDetails("Monthly Services Total: $5,000\n")
	assert.Equal(t, 60000.0, financial.AnnualContractValue)
}

func TestExtractFinancialEmptyText(t *testing.T) {
	financial := extractFinancialDetails("")

	assert.Empty(t, financial.LineItems)
	assert.Empty(t, financial.MonthlyCosts)
	assert.Empty(t, financial.OneTimeCosts)
	assert.Equal(t, 0.0, financial.TotalMonthly)
	assert.Equal(t, 0.0, financial.TotalOneTime)
	assert.Equal(t, 0.0, financial.AnnualContractValue)
	assert.Equal(t, "USD", financial.Currency)
}
