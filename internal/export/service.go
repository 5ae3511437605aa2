package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/contract-intel/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	contractsRepo repository.ContractRepository
	filesRepo     repository.ContractFileRepository
	logger        *slog.Logger
}

func NewService(repo repository.ContractRepository, filesRepo repository.ContractFileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contractsRepo: repo, filesRepo: filesRepo, logger: logger}
}

// ExportContractsXLSX returns an XLSX workbook (as bytes) for the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all contracts.
func (s *Service) ExportContractsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	contracts, err := s.contractsRepo.ListProcessedBetween(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contracts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Processed Date",
		"Service Provider",
		"Customer",
		"Revenue Type",
		"Annual Value",
		"Currency",
		"Confidence",
		"Source File",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range contracts {
		filePath := ""
		if c.FileID != uuid.Nil {
			fileRow, err := s.filesRepo.GetByID(ctx, c.FileID)
			if err == nil && fileRow != nil {
				filePath = fileRow.SourcePath
			}
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !c.ProcessedAt.IsZero() {
			write(1, c.ProcessedAt.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		if c.ServiceProvider != nil {
			write(2, *c.ServiceProvider)
		}
		if c.Customer != nil {
			write(3, *c.Customer)
		}
		write(4, c.RevenueType)
		if c.AnnualContractValue != nil {
			write(5, fmt.Sprintf("%.2f", *c.AnnualContractValue))
		}
		write(6, c.CurrencyCode)
		write(7, c.ConfidenceScore)
		write(8, filePath)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "C", 30) // parties
	_ = f.SetColWidth(sheet, "D", "D", 14) // revenue type
	_ = f.SetColWidth(sheet, "E", "F", 14) // value + currency
	_ = f.SetColWidth(sheet, "G", "G", 12) // confidence
	_ = f.SetColWidth(sheet, "H", "H", 60) // path

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(contracts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
