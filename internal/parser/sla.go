package parser

// Hard-coded fallbacks per severity tier; response times are always fully
// populated even when the document says nothing about support.
const (
	defaultCriticalResponse = "1 hour"
	defaultHighResponse     = "4 hours"
	defaultMediumResponse   = "8 hours"
	defaultLowResponse      = "24 hours"
)

// extractSLATerms pulls uptime commitment, tiered response times,
// performance metrics, and service credits.
func extractSLATerms(text string) SLATerms {
	sla := SLATerms{ServiceCredits: []ServiceCredit{}}

	if m := firstGroup(reUptime, text); m != "" {
		sla.UptimeCommitment = m + " uptime guarantee"
	}

	rt := ResponseTimes{
		Critical: defaultCriticalResponse,
		High:     defaultHighResponse,
		Medium:   defaultMediumResponse,
		Low:      defaultLowResponse,
	}
	matched := false
	if m := firstGroup(reCriticalTier, text); m != "" {
		rt.Critical = m + " hours"
		matched = true
	}
	if m := firstGroup(reHighTier, text); m != "" {
		rt.High = m + " hours"
		matched = true
	}
	if m := firstGroup(reMediumTier, text); m != "" {
		rt.Medium = m + " hours"
		matched = true
	}
	if m := firstGroup(reLowTier, text); m != "" {
		rt.Low = m + " hours"
		matched = true
	}
	rt.Defaulted = !matched
	sla.ResponseTimes = rt

	var perf PerformanceMetrics
	if m := firstGroup(reSysResponse, text); m != "" {
		perf.SystemResponseTime = "< " + m + " seconds"
	}
	if m := firstGroup(reBackupRate, text); m != "" {
		perf.BackupSuccessRate = m
	}
	if perf != (PerformanceMetrics{}) {
		sla.PerformanceMetrics = &perf
	}

	for _, m := range reServiceCredit.FindAllStringSubmatch(text, -1) {
		credit, threshold := m[1], m[2]
		sla.ServiceCredits = append(sla.ServiceCredits, ServiceCredit{
			Threshold:        "< " + threshold + " uptime",
			CreditPercentage: credit + " monthly fee credit",
			Description:      "Service credit for uptime below " + threshold,
		})
	}

	return sla
}
