package parser

import (
	"fmt"
	"strings"
)

// analyzeGaps inspects the assembled sub-records for required fields that
// are absent or underspecified. It is a pure function over its inputs.
func analyzeGaps(parties Parties, financial FinancialDetails, payment PaymentStructure, sla SLATerms) GapAnalysis {
	missing := []string{}
	incomplete := []string{}

	if parties.ServiceProvider == nil || parties.ServiceProvider.Name == "" {
		missing = append(missing, "service_provider_name")
	}
	if parties.Customer == nil || parties.Customer.Name == "" {
		missing = append(missing, "customer_name")
	}
	if parties.ServiceProvider != nil && parties.ServiceProvider.Email == "" {
		incomplete = append(incomplete, "service_provider_contact")
	}
	if parties.Customer != nil && parties.Customer.Email == "" {
		incomplete = append(incomplete, "customer_contact")
	}

	if financial.AnnualContractValue == 0 {
		missing = append(missing, "annual_contract_value")
	}
	if len(financial.MonthlyCosts) == 0 && len(financial.OneTimeCosts) == 0 {
		missing = append(missing, "cost_breakdown")
	}

	if payment.PaymentTerms == "" {
		missing = append(missing, "payment_terms")
	}
	if payment.PaymentMethod == "" {
		incomplete = append(incomplete, "payment_method")
	}

	if sla.UptimeCommitment == "" {
		missing = append(missing, "uptime_commitment")
	}
	// Unreachable in practice: the SLA extractor fills every tier with a
	// default, so response times are never absent. Kept for parity with the
	// required-field checklist.
	if sla.ResponseTimes == (ResponseTimes{}) {
		missing = append(missing, "response_times")
	}

	var notes []string
	if len(missing) > 0 {
		notes = append(notes, fmt.Sprintf("Contract is missing %d critical fields", len(missing)))
	}
	if len(incomplete) > 0 {
		notes = append(notes, fmt.Sprintf("Contract has %d incomplete sections", len(incomplete)))
	}
	if len(missing) == 0 && len(incomplete) == 0 {
		notes = append(notes, "Contract appears to be comprehensive with all major sections present")
	}

	return GapAnalysis{
		MissingFields:    missing,
		IncompleteFields: incomplete,
		Notes:            strings.Join(notes, "; "),
	}
}
