package parser

import "regexp"

// The pattern library is compiled once at init and is read-only afterwards,
// so extraction is safe to run concurrently for independent documents.

const companySuffix = `(?:LLC|Inc|Corp|Corporation|Ltd|Limited|Company|Co\.|Partners)`

var (
	// company names
	reCompanyName  = regexp.MustCompile(`(?i)([A-Za-z\s&]+` + companySuffix + `)`)
	reConsultant   = regexp.MustCompile(`(?i)(?:\*\*Consultant:\*\*|Consultant:)\s*\n?([A-Za-z\s&]+` + companySuffix + `)`)
	reClient       = regexp.MustCompile(`(?i)(?:\*\*Client:\*\*|Client:)\s*\n?([A-Za-z\s&]+` + companySuffix + `)`)
	reProviderTag  = regexp.MustCompile(`(?i)(?:\*\*Service Provider:\*\*|Service Provider:)\s*\n?([A-Za-z\s&]+` + companySuffix + `)`)
	reBroadCompany = regexp.MustCompile(`(?im)(?:^|\n|\.\s+)([A-Z][A-Za-z\s&,.-]{3,35}` + companySuffix + `)(?:\s|$|\n|\.)`)

	// contact fields
	reAnyEmail     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	reAnyPhone     = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reAnyAddress   = regexp.MustCompile(`(?i)\d+\s+[A-Za-z0-9\s,.-]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd|Way|Place|Pl)[\s,]*[A-Za-z\s,]*\d{5}`)
	reTaxID        = regexp.MustCompile(`(?i)(?:Tax ID|EIN|Federal EIN):\s*(\d{2}-\d{7})`)
	reLabeledEmail = regexp.MustCompile(`(?i)Email:\s*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,})`)

	// company-name cleanup
	reWhitespace    = regexp.MustCompile(`\s+`)
	reCompanyPrefix = regexp.MustCompile(`(?i)^(?:Service Provider|liability|limited to|between|with|and)\s+`)
	reCompanyTail   = regexp.MustCompile(`(?i)\s+(?:liability|limited to|shall|will|may).*$`)

	// customer fallbacks
	reCustomerLabel   = regexp.MustCompile(`(?i)(?:Client|Customer|Purchaser):\s*([A-Z][A-Za-z\s&,.-]{3,35}` + companySuffix + `)`)
	reCustomerBetween = regexp.MustCompile(`(?i)(?:Agreement between|Contract between)\s+[^,]+,\s*and\s+([A-Z][A-Za-z\s&,.-]{3,35}` + companySuffix + `)`)
	reCustomerWith    = regexp.MustCompile(`(?i)(?:with|for)\s+([A-Z][A-Za-z\s&,.-]{3,35}` + companySuffix + `)(?:\s|$|\n|\.)`)

	// financial
	reServiceRate  = regexp.MustCompile(`(?i)([A-Za-z\s]+(?:Consulting|Assessment|Training|Support|Service|Management))[\s\-:]*\$([0-9,]+\.?[0-9]*)/?(hour|fixed|month)?`)
	reHourlyItem   = regexp.MustCompile(`(?i)([A-Za-z\s]+):\s*([0-9]+)\s*hours?\s*\(\$([0-9,]+\.?[0-9]*)\)`)
	reMonthlyTotal = regexp.MustCompile(`(?i)(?:Monthly|Per Month)[\s\w]*Total[\s:]*\$([0-9,]+\.?[0-9]*)`)
	reSetupFee     = regexp.MustCompile(`(?i)(?:Setup|Initial|Project)[\s\w]*Fee[\s:]*\$([0-9,]+\.?[0-9]*)`)
	reAnnualValue  = regexp.MustCompile(`(?i)(?:Annual|Yearly)[\s\w]*(?:Value|Total|Amount)[\s:]*\$([0-9,]+\.?[0-9]*)`)
	reContractTerm = regexp.MustCompile(`(?i)(?:Term|Duration|Contract Period):\s*(\d+)\s*months?`)

	// payment
	reNetDays       = regexp.MustCompile(`(?i)Net\s+(\d+)\s+days?`)
	reAltTerms      = regexp.MustCompile(`(?i)(?:payment|due)[\s\w]*(\d+)[\s]*(?:days?|months?)`)
	rePaymentMethod = regexp.MustCompile(`(?i)(?:Payment Method|Payment Options?):\s*([^.\n]+)`)
	reBilledCadence = regexp.MustCompile(`(?i)(?:billed|invoiced|charged)[\s\w]*(?:monthly|quarterly|annually|yearly)`)
	reMonthlyWord   = regexp.MustCompile(`(?i)monthly|per month`)
	reQuarterlyWord = regexp.MustCompile(`(?i)quarterly|per quarter`)
	reAnnualWord    = regexp.MustCompile(`(?i)annually|yearly|per year`)
	reLateFee       = regexp.MustCompile(`(?i)(?:late fee|penalty|interest)[\s\w]*([0-9.]+%)`)
	reBankName      = regexp.MustCompile(`(?i)(?:bank|financial institution)[\s:]*([A-Za-z\s&]+)`)
	reBankAccount   = regexp.MustCompile(`(?i)(?:account|acct)[\s#:]*([A-Za-z0-9-]+)`)
	reBankRouting   = regexp.MustCompile(`(?i)(?:routing|aba)[\s#:]*([0-9]{9})`)

	// account
	reAccountNumber = regexp.MustCompile(`(?i)(?:Account ID|Client Account|Agreement ID):\s*([A-Z0-9-]+)`)
	reBillingPhone  = regexp.MustCompile(`(?i)(?:billing|accounting|finance)[\s\w]*(?:phone|tel)[\s:]*(\+?1?[-.\s]?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4})`)
	reBillingName   = regexp.MustCompile(`(?i)(?:billing contact|accounts receivable|finance contact)[\s:]*([A-Za-z\s]+)`)

	// revenue classification
	reAutoRenewal  = regexp.MustCompile(`(?i)(?:Automatic|Auto[- ]?renewal):\s*(\d+)[- ]?month`)
	reRecurring    = regexp.MustCompile(`(?i)recurring|subscription|monthly|quarterly|annual`)
	reOneTime      = regexp.MustCompile(`(?i)one.?time|single payment|lump sum`)
	reTermination  = regexp.MustCompile(`(?i)(?:termination|cancellation)[\s\w]*([0-9]+)[\s]*(?:days?|months?)`)
	rePricingBump  = regexp.MustCompile(`(?i)(?:price increase|adjustment)[\s\w]*([0-9.]+%)`)

	// SLA
	reUptime        = regexp.MustCompile(`(?i)(\d+\.?\d*%)\s*(?:uptime|availability)`)
	reCriticalTier  = regexp.MustCompile(`(?i)(?:critical|emergency)[\s\w]*([0-9]+)[\s]*(?:hours?|minutes?)`)
	reHighTier      = regexp.MustCompile(`(?i)(?:high priority|urgent)[\s\w]*([0-9]+)[\s]*(?:hours?|minutes?)`)
	reMediumTier    = regexp.MustCompile(`(?i)(?:medium|normal)[\s\w]*([0-9]+)[\s]*(?:hours?|minutes?)`)
	reLowTier       = regexp.MustCompile(`(?i)(?:low priority|routine)[\s\w]*([0-9]+)[\s]*(?:hours?|days?)`)
	reSysResponse   = regexp.MustCompile(`(?i)(?:system response|response time)[\s\w]*([0-9.]+)[\s]*(?:seconds?|ms)`)
	reBackupRate    = regexp.MustCompile(`(?i)(?:backup success|backup rate)[\s\w]*([0-9.]+%)`)
	reServiceCredit = regexp.MustCompile(`(?i)(?:service credit|penalty)[\s\w]*([0-9.]+%)[\s\w]*(?:below|under)[\s]*([0-9.]+%)`)
)

// firstGroup returns the first capture group of the first match, or "".
func firstGroup(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// allGroups returns the first capture group of every match in document order.
func allGroups(re *regexp.Regexp, text string) []string {
	ms := re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m[1])
	}
	return out
}
