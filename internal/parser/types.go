package parser

// PartyInfo holds the contact details extracted for one contracting party.
// Empty string means the field was not found in the document.
type PartyInfo struct {
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	TaxID         string `json:"tax_id,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// Parties holds both contracting parties; either may be nil when no
// candidate name survived filtering.
type Parties struct {
	ServiceProvider *PartyInfo `json:"service_provider,omitempty"`
	Customer        *PartyInfo `json:"customer,omitempty"`
}

// LineItem is one billable service entry.
type LineItem struct {
	Service      string  `json:"service"`
	Quantity     int     `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	MonthlyTotal float64 `json:"monthly_total,omitempty"`
}

// FinancialDetails aggregates monetary figures found in the document.
// Totals are sums over the cost maps and are 0 when the maps are empty.
type FinancialDetails struct {
	LineItems           []LineItem         `json:"line_items,omitempty"`
	MonthlyCosts        map[string]float64 `json:"monthly_costs,omitempty"`
	OneTimeCosts        map[string]float64 `json:"one_time_costs,omitempty"`
	TotalMonthly        float64            `json:"total_monthly"`
	TotalOneTime        float64            `json:"total_one_time"`
	AnnualContractValue float64            `json:"annual_contract_value,omitempty"`
	Currency            string             `json:"currency"`
}

// BankingInfo is populated only when at least one of its fields matched.
type BankingInfo struct {
	Bank    string `json:"bank,omitempty"`
	Account string `json:"account,omitempty"`
	Routing string `json:"routing,omitempty"`
}

type PaymentStructure struct {
	PaymentTerms    string       `json:"payment_terms,omitempty"`
	PaymentSchedule string       `json:"payment_schedule,omitempty"`
	PaymentMethod   string       `json:"payment_method,omitempty"`
	LatePaymentFee  string       `json:"late_payment_fee,omitempty"`
	BankingInfo     *BankingInfo `json:"banking_info,omitempty"`
}

// BillingContact is populated only when at least one fragment matched.
type BillingContact struct {
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type AccountInfo struct {
	AccountNumber  string          `json:"account_number,omitempty"`
	BillingContact *BillingContact `json:"billing_contact,omitempty"`
}

// RevenueClassification labels the contract's revenue model. Type is always
// one of "recurring", "one-time", or "mixed".
type RevenueClassification struct {
	Type               string `json:"type"`
	ContractTerm       string `json:"contract_term,omitempty"`
	BillingCycle       string `json:"billing_cycle,omitempty"`
	AutoRenewal        string `json:"auto_renewal,omitempty"`
	TerminationNotice  string `json:"termination_notice,omitempty"`
	PricingAdjustments string `json:"pricing_adjustments,omitempty"`
}

// ResponseTimes always carries all four tiers; unmatched tiers fall back to
// hard-coded defaults. Defaulted is true when no tier matched the text.
type ResponseTimes struct {
	Critical  string `json:"critical"`
	High      string `json:"high"`
	Medium    string `json:"medium"`
	Low       string `json:"low"`
	Defaulted bool   `json:"-"`
}

type PerformanceMetrics struct {
	SystemResponseTime string `json:"system_response_time,omitempty"`
	BackupSuccessRate  string `json:"backup_success_rate,omitempty"`
}

// ServiceCredit is one credit entry parsed from an uptime-penalty clause.
type ServiceCredit struct {
	Threshold        string `json:"threshold"`
	CreditPercentage string `json:"credit_percentage"`
	Description      string `json:"description"`
}

type SLATerms struct {
	UptimeCommitment   string              `json:"uptime_commitment,omitempty"`
	ResponseTimes      ResponseTimes       `json:"response_times"`
	PerformanceMetrics *PerformanceMetrics `json:"performance_metrics,omitempty"`
	ServiceCredits     []ServiceCredit     `json:"service_credits"`
}

// GapAnalysis reports required fields that are absent or underspecified.
type GapAnalysis struct {
	MissingFields    []string `json:"missing_fields"`
	IncompleteFields []string `json:"incomplete_fields"`
	Notes            string   `json:"notes,omitempty"`
}

// ExtractedData is the aggregate record returned by one extraction run.
// ConfidenceScore is a pure function of the other fields.
type ExtractedData struct {
	Parties               Parties               `json:"parties"`
	AccountInfo           AccountInfo           `json:"account_info"`
	FinancialDetails      FinancialDetails      `json:"financial_details"`
	PaymentStructure      PaymentStructure      `json:"payment_structure"`
	RevenueClassification RevenueClassification `json:"revenue_classification"`
	SLATerms              SLATerms              `json:"sla_terms"`
	GapAnalysis           GapAnalysis           `json:"gap_analysis"`
	ConfidenceScore       int                   `json:"confidence_score"`
}
