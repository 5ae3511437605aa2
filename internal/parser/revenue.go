package parser

// extractRevenueClassification labels the contract's revenue model and
// normalizes term, renewal, termination, and pricing clauses into fixed
// phrase templates.
func extractRevenueClassification(text string) RevenueClassification {
	var revenue RevenueClassification

	if m := firstGroup(reContractTerm, text); m != "" {
		revenue.ContractTerm = m + " months"
	}

	if m := firstGroup(reAutoRenewal, text); m != "" {
		revenue.AutoRenewal = m + "-month terms"
	}

	// Keyword priority: recurring beats one-time; "mixed" is the default
	// when neither keyword class appears.
	switch {
	case reRecurring.MatchString(text):
		revenue.Type = "recurring"
	case reOneTime.MatchString(text):
		revenue.Type = "one-time"
	default:
		revenue.Type = "mixed"
	}

	switch {
	case reMonthlyWord.MatchString(text):
		revenue.BillingCycle = "monthly"
	case reQuarterlyWord.MatchString(text):
		revenue.BillingCycle = "quarterly"
	case reAnnualWord.MatchString(text):
		revenue.BillingCycle = "annual"
	}

	if m := firstGroup(reTermination, text); m != "" {
		revenue.TerminationNotice = m + " days written notice"
	}

	if m := firstGroup(rePricingBump, text); m != "" {
		revenue.PricingAdjustments = "Limited to " + m + " annually"
	}

	return revenue
}
