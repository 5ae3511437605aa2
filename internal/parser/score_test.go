package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func emptyExtraction() ExtractedData {
	return ExtractedData{
		Parties:               extractParties(""),
		FinancialDetails:      extractFinancialDetails(""),
		PaymentStructure:      extractPaymentStructure(""),
		AccountInfo:           extractAccountInfo(""),
		RevenueClassification: extractRevenueClassification(""),
		SLATerms:              extractSLATerms(""),
	}
}

func TestScoreEmptyDocumentIsZero(t *testing.T) {
	assert.Equal(t, 0, Score(emptyExtraction()))
}

func TestScoreFinancialComponents(t *testing.T) {
	data := emptyExtraction()
	data.FinancialDetails.AnnualContractValue = 120000
	assert.Equal(t, 10, Score(data))

	data.FinancialDetails.MonthlyCosts = map[string]float64{"Monthly Total": 10000}
	assert.Equal(t, 20, Score(data))

	data.FinancialDetails.LineItems = []LineItem{{Service: "Consulting", Quantity: 1, Unit: "hour", UnitPrice: 150, MonthlyTotal: 150}}
	assert.Equal(t, 30, Score(data))
}

func TestScoreParties(t *testing.T) {
	data := emptyExtraction()
	data.Parties.ServiceProvider = &PartyInfo{Name: "Acme Data Services LLC"}
	assert.Equal(t, 10, Score(data))

	data.Parties.Customer = &PartyInfo{Name: "Northwind Retail Inc"}
	assert.Equal(t, 20, Score(data))

	data.Parties.Customer.Email = "billing@northwind.example"
	assert.Equal(t, 25, Score(data))

	// email points are awarded once, not per party
	data.Parties.ServiceProvider.Email = "ap@acme.example"
	assert.Equal(t, 25, Score(data))
}

func TestScorePaymentAndSLA(t *testing.T) {
	data := emptyExtraction()
	data.PaymentStructure = PaymentStructure{
		PaymentTerms:    "Net 30 days",
		PaymentMethod:   "ACH transfer",
		PaymentSchedule: "Monthly recurring billing",
	}
	assert.Equal(t, 20, Score(data))

	data.SLATerms.UptimeCommitment = "99.9% uptime guarantee"
	data.SLATerms.ResponseTimes.Defaulted = false
	data.SLATerms.PerformanceMetrics = &PerformanceMetrics{SystemResponseTime: "< 2 seconds"}
	assert.Equal(t, 35, Score(data))
}

func TestScoreDefaultResponseTimesDoNotCount(t *testing.T) {
	data := emptyExtraction()
	data.SLATerms = extractSLATerms("support matrix omitted")
	assert.Equal(t, 0, Score(data))

	data.SLATerms = extractSLATerms("critical issues resolved within 2 hours")
	assert.Equal(t, 5, Score(data))
}

func TestScoreBillingContact(t *testing.T) {
	data := emptyExtraction()
	data.AccountInfo.BillingContact = &BillingContact{Email: "ap@acme.example"}
	assert.Equal(t, 5, Score(data))

	data.AccountInfo.BillingContact.Phone = "(555) 222-3344"
	assert.Equal(t, 10, Score(data))
}

func TestScoreFullExtractionCapsAtOneHundred(t *testing.T) {
	data := ExtractedData{
		Parties: Parties{
			ServiceProvider: &PartyInfo{Name: "Acme Data Services LLC", Email: "ap@acme.example"},
			Customer:        &PartyInfo{Name: "Northwind Retail Inc", Email: "billing@northwind.example"},
		},
		FinancialDetails: FinancialDetails{
			AnnualContractValue: 120000,
			MonthlyCosts:        map[string]float64{"Monthly Total": 10000},
			OneTimeCosts:        map[string]float64{"Setup Fee": 5000},
			LineItems:           []LineItem{{Service: "Managed Hosting", Quantity: 1, Unit: "month", UnitPrice: 10000, MonthlyTotal: 10000}},
		},
		PaymentStructure: PaymentStructure{
			PaymentTerms:    "Net 30 days",
			PaymentMethod:   "ACH transfer",
			PaymentSchedule: "Monthly recurring billing",
		},
		AccountInfo: AccountInfo{
			BillingContact: &BillingContact{Name: "Jane Smith", Email: "jane@northwind.example", Phone: "(555) 222-3344"},
		},
		SLATerms: SLATerms{
			UptimeCommitment:   "99.9% uptime guarantee",
			ResponseTimes:      ResponseTimes{Critical: "1 hour", High: "4 hours", Medium: "8 hours", Low: "24 hours"},
			PerformanceMetrics: &PerformanceMetrics{SystemResponseTime: "< 2 seconds"},
		},
	}
	assert.Equal(t, 100, Score(data))
}
