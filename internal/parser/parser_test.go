package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContract = `SERVICE AGREEMENT

Between:
Acme Data Services LLC
123 Main Street
ap@acme.example
(555) 111-2233

And:
Northwind Retail Inc
billing@northwind.example

Agreement ID: CI-2024-001
Billing contact: Jane Smith, AP team
Email: jane@northwind.example
Billing phone: (555) 222-3344

Managed Hosting Service - $10,000/fixed
Monthly total: $10,000
Setup fee: $5,000
Term: 24 months
Payment terms: Net 30 days
Payment method: ACH transfer
Services are billed monthly.
Provider guarantees 99.9% uptime.
Critical issues resolved within 2 hours.
`

func TestParseEmptyDocument(t *testing.T) {
	data := New(nil).Parse("")

	assert.Nil(t, data.Parties.ServiceProvider)
	assert.Nil(t, data.Parties.Customer)
	assert.Equal(t, "USD", data.FinancialDetails.Currency)
	assert.Equal(t, "mixed", data.RevenueClassification.Type)
	assert.True(t, data.SLATerms.ResponseTimes.Defaulted)
	assert.Equal(t, "1 hour", data.SLATerms.ResponseTimes.Critical)
	require.NotNil(t, data.SLATerms.ServiceCredits)
	assert.Len(t, data.SLATerms.ServiceCredits, 0)
	assert.Len(t, data.GapAnalysis.MissingFields, 6)
	assert.Equal(t, 0, data.ConfidenceScore)
}

func TestParseFullContract(t *testing.T) {
	data := New(nil).Parse(sampleContract)

	require.NotNil(t, data.Parties.ServiceProvider)
	assert.Equal(t, "Acme Data Services LLC", data.Parties.ServiceProvider.Name)
	assert.Equal(t, "ap@acme.example", data.Parties.ServiceProvider.Email)
	assert.Equal(t, "(555) 111-2233", data.Parties.ServiceProvider.Phone)
	require.NotNil(t, data.Parties.Customer)
	assert.Equal(t, "Northwind Retail Inc", data.Parties.Customer.Name)
	assert.Equal(t, "billing@northwind.example", data.Parties.Customer.Email)

	require.Len(t, data.FinancialDetails.LineItems, 1)
	assert.Equal(t, "Managed Hosting Service", data.FinancialDetails.LineItems[0].Service)
	assert.Equal(t, "fixed", data.FinancialDetails.LineItems[0].Unit)
	assert.Equal(t, 10000.0, data.FinancialDetails.MonthlyCosts["Monthly Total"])
	assert.Equal(t, 5000.0, data.FinancialDetails.OneTimeCosts["Setup Fee"])
	assert.Equal(t, 10000.0, data.FinancialDetails.OneTimeCosts["Managed Hosting Service"])
	assert.Equal(t, 10000.0, data.FinancialDetails.TotalMonthly)
	assert.Equal(t, 15000.0, data.FinancialDetails.TotalOneTime)
	assert.Equal(t, 240000.0, data.FinancialDetails.AnnualContractValue)

	assert.Equal(t, "Net 30 days", data.PaymentStructure.PaymentTerms)
	assert.Equal(t, "ACH transfer", data.PaymentStructure.PaymentMethod)
	assert.Equal(t, "billed monthly", data.PaymentStructure.PaymentSchedule)
	assert.Nil(t, data.PaymentStructure.BankingInfo)

	assert.Equal(t, "CI-2024-001", data.AccountInfo.AccountNumber)
	require.NotNil(t, data.AccountInfo.BillingContact)
	assert.Equal(t, "Jane Smith", data.AccountInfo.BillingContact.Name)
	assert.Equal(t, "jane@northwind.example", data.AccountInfo.BillingContact.Email)
	assert.Equal(t, "(555) 222-3344", data.AccountInfo.BillingContact.Phone)

	assert.Equal(t, "recurring", data.RevenueClassification.Type)
	assert.Equal(t, "24 months", data.RevenueClassification.ContractTerm)
	assert.Equal(t, "monthly", data.RevenueClassification.BillingCycle)

	assert.Equal(t, "99.9% uptime guarantee", data.SLATerms.UptimeCommitment)
	assert.Equal(t, "2 hours", data.SLATerms.ResponseTimes.Critical)
	assert.False(t, data.SLATerms.ResponseTimes.Defaulted)

	assert.Empty(t, data.GapAnalysis.MissingFields)
	assert.Empty(t, data.GapAnalysis.IncompleteFields)
	assert.Equal(t, 95, data.ConfidenceScore)
}

func TestParseIsDeterministic(t *testing.T) {
	p := New(nil)

	first, err := json.Marshal(p.Parse(sampleContract))
	require.NoError(t, err)
	second, err := json.Marshal(p.Parse(sampleContract))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseOutputMatchesSchema(t *testing.T) {
	schema := BuildExtractionJSONSchema()
	p := New(nil)

	for _, text := range []string{"", sampleContract} {
		b, err := json.Marshal(p.Parse(text))
		require.NoError(t, err)
		require.NoError(t, ValidateJSONAgainstSchema(schema, b))
	}
}
