package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents one parsing run over a contract file for data
// transfer between layers. Progress moves through fixed checkpoints as the
// job advances through the pipeline stages.
type ExtractJob struct {
	ID              uuid.UUID       `json:"id"`
	FileID          uuid.UUID       `json:"file_id"`
	ContractID      *uuid.UUID      `json:"contract_id,omitempty"`
	Format          string          `json:"format"`
	StartedAt       time.Time       `json:"started_at"`
	FinishedAt      *time.Time      `json:"finished_at,omitempty"`
	Status          *string         `json:"status,omitempty"`
	Progress        int             `json:"progress"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
	ContractText    *string         `json:"contract_text,omitempty"`
	ExtractedJSON   json.RawMessage `json:"extracted_json,omitempty"`
	ConfidenceScore *int            `json:"confidence_score,omitempty"`
}
