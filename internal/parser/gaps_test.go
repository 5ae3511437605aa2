package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGapAnalysisEmptyDocument(t *testing.T) {
	gaps := analyzeGaps(
		extractParties(""),
		extractFinancialDetails(""),
		extractPaymentStructure(""),
		extractSLATerms(""),
	)

	assert.Equal(t, []string{
		"service_provider_name",
		"customer_name",
		"annual_contract_value",
		"cost_breakdown",
		"payment_terms",
		"uptime_commitment",
	}, gaps.MissingFields)
	assert.Equal(t, []string{"payment_method"}, gaps.IncompleteFields)
	assert.Equal(t, "Contract is missing 6 critical fields; Contract has 1 incomplete sections", gaps.Notes)
}

func TestGapAnalysisZeroValueResponseTimes(t *testing.T) {
	gaps := analyzeGaps(Parties{}, FinancialDetails{}, PaymentStructure{}, SLATerms{})
	assert.Contains(t, gaps.MissingFields, "response_times")
}

func TestGapAnalysisIncompleteContacts(t *testing.T) {
	parties := Parties{
		ServiceProvider: &PartyInfo{Name: "Acme Data Services LLC"},
		Customer:        &PartyInfo{Name: "Northwind Retail Inc", Email: "billing@northwind.example"},
	}
	gaps := analyzeGaps(parties, FinancialDetails{}, PaymentStructure{}, SLATerms{})

	assert.NotContains(t, gaps.MissingFields, "service_provider_name")
	assert.NotContains(t, gaps.MissingFields, "customer_name")
	assert.Contains(t, gaps.IncompleteFields, "service_provider_contact")
	assert.NotContains(t, gaps.IncompleteFields, "customer_contact")
}

func TestGapAnalysisComprehensiveContract(t *testing.T) {
	parties := Parties{
		ServiceProvider: &PartyInfo{Name: "Acme Data Services LLC", Email: "ap@acme.example"},
		Customer:        &PartyInfo{Name: "Northwind Retail Inc", Email: "billing@northwind.example"},
	}
	financial := FinancialDetails{
		AnnualContractValue: 120000,
		MonthlyCosts:        map[string]float64{"Monthly Total": 10000},
		OneTimeCosts:        map[string]float64{},
	}
	payment := PaymentStructure{PaymentTerms: "Net 30 days", PaymentMethod: "ACH transfer"}
	sla := extractSLATerms("99.9% uptime")

	gaps := analyzeGaps(parties, financial, payment, sla)

	assert.Empty(t, gaps.MissingFields)
	assert.Empty(t, gaps.IncompleteFields)
	assert.Equal(t, "Contract appears to be comprehensive with all major sections present", gaps.Notes)
}
