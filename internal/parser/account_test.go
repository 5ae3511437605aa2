package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccountNumber(t *testing.T) {
	account := extractAccountInfo("Agreement ID: CI-2024-001\n")
	assert.Equal(t, "CI-2024-001", account.AccountNumber)
}

func TestExtractAccountBillingContact(t *testing.T) {
	text := "Billing Contact: Jane Smith (Accounts)\nEmail: jane@acme.com\nBilling phone: (555) 222-3344\n"
	account := extractAccountInfo(text)

	require.NotNil(t, account.BillingContact)
	assert.Equal(t, "Jane Smith", account.BillingContact.Name)
	assert.Equal(t, "jane@acme.com", account.BillingContact.Email)
	assert.Equal(t, "(555) 222-3344", account.BillingContact.Phone)
}

func TestExtractAccountContactFromSingleFragment(t *testing.T) {
	// One matched fragment is enough to populate the contact group.
	account := extractAccountInfo("Email: billing@vendor.com\n")
	require.NotNil(t, account.BillingContact)
	assert.Equal(t, "billing@vendor.com", account.BillingContact.Email)
	assert.Empty(t, account.BillingContact.Name)
}

func TestExtractAccountEmpty(t *testing.T) {
	account := extractAccountInfo("nothing relevant here")
	assert.Empty(t, account.AccountNumber)
	assert.Nil(t, account.BillingContact)
}
