package parser

import "strings"

// extractAccountInfo matches an account/agreement identifier and assembles a
// billing contact from independently matched fragments.
func extractAccountInfo(text string) AccountInfo {
	var account AccountInfo

	if m := firstGroup(reAccountNumber, text); m != "" {
		account.AccountNumber = m
	}

	name := firstGroup(reBillingName, text)
	email := firstGroup(reLabeledEmail, text)
	phone := firstGroup(reBillingPhone, text)

	if name != "" || email != "" || phone != "" {
		account.BillingContact = &BillingContact{
			Name:  strings.TrimSpace(name),
			Email: email,
			Phone: phone,
		}
	}

	return account
}
