package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContractFile represents an ingested contract document for data transfer
// between layers.
type ContractFile struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
