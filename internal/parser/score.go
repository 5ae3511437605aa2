package parser

// Score computes the 0-100 completeness score for an extraction result.
// Points reflect presence of fields only, never content quality, so the
// score is a pure function of the record.
//
//	Financial  30: annual value 10, cost maps 10, line items 10
//	Parties    25: provider name 10, customer name 10, any party email 5
//	Payment    20: terms 10, method 5, schedule 5
//	SLA        15: uptime 5, response times 5, performance metrics 5
//	Contact    10: billing email 5, billing phone 5
func Score(data ExtractedData) int {
	score := 0

	if data.FinancialDetails.AnnualContractValue > 0 {
		score += 10
	}
	if len(data.FinancialDetails.MonthlyCosts) > 0 || len(data.FinancialDetails.OneTimeCosts) > 0 {
		score += 10
	}
	if len(data.FinancialDetails.LineItems) > 0 {
		score += 10
	}

	if data.Parties.ServiceProvider != nil && data.Parties.ServiceProvider.Name != "" {
		score += 10
	}
	if data.Parties.Customer != nil && data.Parties.Customer.Name != "" {
		score += 10
	}
	if (data.Parties.ServiceProvider != nil && data.Parties.ServiceProvider.Email != "") ||
		(data.Parties.Customer != nil && data.Parties.Customer.Email != "") {
		score += 5
	}

	if data.PaymentStructure.PaymentTerms != "" {
		score += 10
	}
	if data.PaymentStructure.PaymentMethod != "" {
		score += 5
	}
	if data.PaymentStructure.PaymentSchedule != "" {
		score += 5
	}

	if data.SLATerms.UptimeCommitment != "" {
		score += 5
	}
	// Defaulted tiers do not count as extracted response times; an empty
	// document must score 0.
	if !data.SLATerms.ResponseTimes.Defaulted {
		score += 5
	}
	if data.SLATerms.PerformanceMetrics != nil {
		score += 5
	}

	if data.AccountInfo.BillingContact != nil {
		if data.AccountInfo.BillingContact.Email != "" {
			score += 5
		}
		if data.AccountInfo.BillingContact.Phone != "" {
			score += 5
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}
