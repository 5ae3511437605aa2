package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labeledContract = `PROFESSIONAL SERVICES AGREEMENT

Consultant:
Acme Consulting LLC
123 Main Street, Springfield, IL 62704
Phone: (555) 123-4567
Email: john@acmeconsulting.com
Tax ID: 12-3456789

Client:
Beta Corp Inc
456 Oak Avenue, Portland, OR 97205
Phone: (555) 987-6543
Email: sue@betacorp.com
Tax ID: 98-7654321
`

func TestExtractPartiesLabeledNames(t *testing.T) {
	parties := extractParties(labeledContract)

	require.NotNil(t, parties.ServiceProvider)
	require.NotNil(t, parties.Customer)
	assert.Equal(t, "Acme Consulting LLC", parties.ServiceProvider.Name)
	assert.Equal(t, "Beta Corp Inc", parties.Customer.Name)
}

func TestExtractPartiesPositionalContacts(t *testing.T) {
	parties := extractParties(labeledContract)

	require.NotNil(t, parties.ServiceProvider)
	assert.Equal(t, "john@acmeconsulting.com", parties.ServiceProvider.Email)
	assert.Equal(t, "(555) 123-4567", parties.ServiceProvider.Phone)
	assert.Equal(t, "12-3456789", parties.ServiceProvider.TaxID)
	assert.Contains(t, parties.ServiceProvider.Address, "123 Main Street")

	require.NotNil(t, parties.Customer)
	assert.Equal(t, "sue@betacorp.com", parties.Customer.Email)
	assert.Equal(t, "(555) 987-6543", parties.Customer.Phone)
	assert.Equal(t, "98-7654321", parties.Customer.TaxID)
	assert.Contains(t, parties.Customer.Address, "456 Oak Avenue")
}

func TestExtractPartiesLabelPositionIndependent(t *testing.T) {
	// Client block before Consultant block; labels still decide roles.
	text := "Client:\nBeta Corp Inc\n\nConsultant:\nAcme Consulting LLC\n"
	parties := extractParties(text)

	require.NotNil(t, parties.ServiceProvider)
	require.NotNil(t, parties.Customer)
	assert.Equal(t, "Acme Consulting LLC", parties.ServiceProvider.Name)
	assert.Equal(t, "Beta Corp Inc", parties.Customer.Name)
}

func TestExtractPartiesUnlabeledCandidates(t *testing.T) {
	text := "Between:\nAcme Data Services LLC\n1 First Street, Austin, TX 73301\nAnd:\nNorthwind Retail Inc\n2 Second Avenue, Dallas, TX 75201\n"
	parties := extractParties(text)

	require.NotNil(t, parties.ServiceProvider)
	require.NotNil(t, parties.Customer)
	assert.Equal(t, "Acme Data Services LLC", parties.ServiceProvider.Name)
	assert.Equal(t, "Northwind Retail Inc", parties.Customer.Name)
}

func TestExtractPartiesServiceProviderLabel(t *testing.T) {
	text := "Service Provider:\nOrbit Hosting Corp\n"
	parties := extractParties(text)

	require.NotNil(t, parties.ServiceProvider)
	assert.Equal(t, "Orbit Hosting Corp", parties.ServiceProvider.Name)
}

func TestExtractPartiesNone(t *testing.T) {
	parties := extractParties("no companies are named in this text")
	assert.Nil(t, parties.ServiceProvider)
	assert.Nil(t, parties.Customer)
}

func TestIsValidCompanyFiltering(t *testing.T) {
	cases := []struct {
		name  string
		valid bool
	}{
		{"Acme Consulting LLC", true},
		{"VP of Sales Inc", false},       // job title
		{"Vice President Corp", false},   // job title
		{"The Acme Company", false},      // determiner prefix
		{"This Agreement Corp", false},   // determiner prefix
		{"Limited liability Corp", false}, // boilerplate
		{"Aco", false},                   // too short
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, isValidCompany(tc.name), tc.name)
	}
}

func TestCleanCompanyName(t *testing.T) {
	assert.Equal(t, "Acme Consulting LLC", cleanCompanyName("Acme\nConsulting   LLC"))
	assert.Equal(t, "Delta Holdings LLC", cleanCompanyName("and Delta Holdings LLC"))
	assert.Equal(t, "Acme Corp", cleanCompanyName("Acme Corp shall provide services"))
}
