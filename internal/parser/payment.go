package parser

import "strings"

// extractPaymentStructure pulls payment terms, method, schedule, late fee,
// and banking details.
func extractPaymentStructure(text string) PaymentStructure {
	var payment PaymentStructure

	// Prefer the explicit "Net N days" phrasing; fall back to a looser
	// "payment/due ... N days" pattern, always normalized to "Net N days".
	if m := firstGroup(reNetDays, text); m != "" {
		payment.PaymentTerms = "Net " + m + " days"
	} else if m := firstGroup(reAltTerms, text); m != "" {
		payment.PaymentTerms = "Net " + m + " days"
	}

	if m := firstGroup(rePaymentMethod, text); m != "" {
		payment.PaymentMethod = strings.TrimSpace(m)
	}

	// Explicit "billed/invoiced/charged <cadence>" phrase, else infer from
	// loose cadence keywords (monthly wins over quarterly over annual).
	if m := reBilledCadence.FindString(text); m != "" {
		payment.PaymentSchedule = m
	} else if reMonthlyWord.MatchString(text) {
		payment.PaymentSchedule = "Monthly recurring billing"
	} else if reQuarterlyWord.MatchString(text) {
		payment.PaymentSchedule = "Quarterly billing"
	} else if reAnnualWord.MatchString(text) {
		payment.PaymentSchedule = "Annual billing"
	}

	if m := firstGroup(reLateFee, text); m != "" {
		payment.LatePaymentFee = m + " per month on overdue amounts"
	}

	bank := firstGroup(reBankName, text)
	account := firstGroup(reBankAccount, text)
	routing := firstGroup(reBankRouting, text)
	if bank != "" || account != "" || routing != "" {
		payment.BankingInfo = &BankingInfo{
			Bank:    strings.TrimSpace(bank),
			Account: account,
			Routing: routing,
		}
	}

	return payment
}
