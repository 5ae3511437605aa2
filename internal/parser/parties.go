package parser

import (
	"regexp"
	"strings"
)

// Terms that disqualify a company-name candidate: job titles and legal
// boilerplate picked up by the broad suffix pattern.
var invalidCompanyTerms = []string{
	"vp of", "vice president", "manager", "director", "ceo", "cfo", "president of",
	"liability", "shall", "will", "may", "service provider", "customer", "client",
}

var determinerPrefixes = []string{"the ", "this ", "such ", "any "}

// cleanCompanyName collapses whitespace and strips label fragments the
// capture groups tend to drag in.
func cleanCompanyName(name string) string {
	cleaned := reWhitespace.ReplaceAllString(strings.ReplaceAll(name, "\n", " "), " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = reCompanyPrefix.ReplaceAllString(cleaned, "")
	cleaned = reCompanyTail.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

func isValidCompany(name string) bool {
	if len(name) < 5 {
		return false
	}
	lower := strings.ToLower(name)
	for _, term := range invalidCompanyTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	for _, det := range determinerPrefixes {
		if strings.HasPrefix(lower, det) {
			return false
		}
	}
	return true
}

// collectCompanies merges the suffix pattern and the broad boundary pattern,
// cleans each candidate, and deduplicates preserving first-occurrence order.
func collectCompanies(text string) []string {
	var candidates []string
	candidates = append(candidates, allGroups(reCompanyName, text)...)
	candidates = append(candidates, allGroups(reBroadCompany, text)...)

	seen := make(map[string]struct{}, len(candidates))
	var valid []string
	for _, raw := range candidates {
		name := cleanCompanyName(raw)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if isValidCompany(name) {
			valid = append(valid, name)
		}
	}
	return valid
}

// extractParties identifies the service provider and the customer.
//
// Contact attachment is positional: the first email/phone/address/tax-id in
// the document goes to the provider, the second to the customer. This is a
// deliberate heuristic carried over from the source system; correctness
// depends on contact order matching party order.
func extractParties(text string) Parties {
	var parties Parties

	emails := reAnyEmail.FindAllString(text, -1)
	phones := reAnyPhone.FindAllString(text, -1)
	addresses := reAnyAddress.FindAllString(text, -1)
	taxIDs := allGroups(reTaxID, text)

	validCompanies := collectCompanies(text)

	// Service provider: explicit labels win over the candidate list.
	var providerName string
	if m := firstGroup(reConsultant, text); m != "" {
		providerName = cleanCompanyName(m)
	} else if m := firstGroup(reProviderTag, text); m != "" {
		providerName = cleanCompanyName(m)
	} else if len(validCompanies) > 0 {
		providerName = validCompanies[0]
	}

	if providerName != "" {
		p := &PartyInfo{Name: providerName}
		if len(emails) > 0 {
			p.Email = emails[0]
		}
		if len(phones) > 0 {
			p.Phone = phones[0]
		}
		if len(addresses) > 0 {
			p.Address = strings.TrimSpace(reWhitespace.ReplaceAllString(strings.ReplaceAll(addresses[0], "\n", " "), " "))
		}
		if len(taxIDs) > 0 {
			p.TaxID = taxIDs[0]
		}
		parties.ServiceProvider = p
	}

	// Customer: explicit Client label, then first distinct candidate.
	var customerName string
	if m := firstGroup(reClient, text); m != "" {
		customerName = cleanCompanyName(m)
	} else {
		for _, c := range validCompanies {
			if c != providerName {
				customerName = c
				break
			}
		}
	}

	// Relationship-phrase fallbacks when nothing distinct was found.
	if customerName == "" {
		for _, re := range []*regexp.Regexp{reCustomerLabel, reCustomerBetween, reCustomerWith} {
			m := firstGroup(re, text)
			if m == "" {
				continue
			}
			candidate := cleanCompanyName(m)
			if candidate == providerName || len(candidate) < 5 {
				continue
			}
			lower := strings.ToLower(candidate)
			boilerplate := false
			for _, term := range []string{"service provider", "liability", "shall", "will"} {
				if strings.Contains(lower, term) {
					boilerplate = true
					break
				}
			}
			if !boilerplate {
				customerName = candidate
				break
			}
		}
	}

	if customerName != "" {
		c := &PartyInfo{Name: customerName}
		if len(emails) > 1 {
			c.Email = emails[1]
		}
		if len(phones) > 1 {
			c.Phone = phones[1]
		}
		if len(addresses) > 1 {
			c.Address = strings.TrimSpace(reWhitespace.ReplaceAllString(strings.ReplaceAll(addresses[1], "\n", " "), " "))
		}
		if len(taxIDs) > 1 {
			c.TaxID = taxIDs[1]
		}
		parties.Customer = c
	}

	return parties
}
