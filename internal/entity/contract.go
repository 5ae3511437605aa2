package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contract is the summary record persisted for a successfully parsed
// document. The full extraction lives on the job as extracted_json; this row
// carries the fields worth querying across contracts.
type Contract struct {
	ID                  uuid.UUID `json:"id"`
	FileID              uuid.UUID `json:"file_id"`
	ServiceProvider     *string   `json:"service_provider,omitempty"`
	Customer            *string   `json:"customer,omitempty"`
	AnnualContractValue *float64  `json:"annual_contract_value,omitempty"`
	CurrencyCode        string    `json:"currency_code"`
	RevenueType         string    `json:"revenue_type"`
	ConfidenceScore     int       `json:"confidence_score"`
	ProcessedAt         time.Time `json:"processed_at"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
