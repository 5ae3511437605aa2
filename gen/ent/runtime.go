// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/contract-intel/db/ent/schema"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contract"
	"github.com/joseph-ayodele/contract-intel/gen/ent/contractfile"
	"github.com/joseph-ayodele/contract-intel/gen/ent/extractjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescCurrencyCode is the schema descriptor for currency_code field.
	contractDescCurrencyCode := contractFields[5].Descriptor()
	// contract.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	contract.CurrencyCodeValidator = func() func(string) error {
		validators := contractDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescRevenueType is the schema descriptor for revenue_type field.
	contractDescRevenueType := contractFields[6].Descriptor()
	// contract.RevenueTypeValidator is a validator for the "revenue_type" field. It is called by the builders before save.
	contract.RevenueTypeValidator = func() func(string) error {
		validators := contractDescRevenueType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(revenue_type string) error {
			for _, fn := range fns {
				if err := fn(revenue_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescConfidenceScore is the schema descriptor for confidence_score field.
	contractDescConfidenceScore := contractFields[7].Descriptor()
	// contract.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	contract.ConfidenceScoreValidator = func() func(int) error {
		validators := contractDescConfidenceScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence_score int) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contractDescProcessedAt is the schema descriptor for processed_at field.
	contractDescProcessedAt := contractFields[8].Descriptor()
	// contract.DefaultProcessedAt holds the default value on creation for the processed_at field.
	contract.DefaultProcessedAt = contractDescProcessedAt.Default.(func() time.Time)
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[9].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[10].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	contractfileFields := schema.ContractFile{}.Fields()
	_ = contractfileFields
	// contractfileDescSourcePath is the schema descriptor for source_path field.
	contractfileDescSourcePath := contractfileFields[1].Descriptor()
	// contractfile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	contractfile.SourcePathValidator = contractfileDescSourcePath.Validators[0].(func(string) error)
	// contractfileDescContentHash is the schema descriptor for content_hash field.
	contractfileDescContentHash := contractfileFields[2].Descriptor()
	// contractfile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	contractfile.ContentHashValidator = contractfileDescContentHash.Validators[0].(func([]byte) error)
	// contractfileDescFilename is the schema descriptor for filename field.
	contractfileDescFilename := contractfileFields[3].Descriptor()
	// contractfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	contractfile.FilenameValidator = contractfileDescFilename.Validators[0].(func(string) error)
	// contractfileDescFileExt is the schema descriptor for file_ext field.
	contractfileDescFileExt := contractfileFields[4].Descriptor()
	// contractfile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	contractfile.FileExtValidator = contractfileDescFileExt.Validators[0].(func(string) error)
	// contractfileDescFileSize is the schema descriptor for file_size field.
	contractfileDescFileSize := contractfileFields[5].Descriptor()
	// contractfile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	contractfile.FileSizeValidator = contractfileDescFileSize.Validators[0].(func(int) error)
	// contractfileDescUploadedAt is the schema descriptor for uploaded_at field.
	contractfileDescUploadedAt := contractfileFields[6].Descriptor()
	// contractfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	contractfile.DefaultUploadedAt = contractfileDescUploadedAt.Default.(func() time.Time)
	// contractfileDescID is the schema descriptor for id field.
	contractfileDescID := contractfileFields[0].Descriptor()
	// contractfile.DefaultID holds the default value on creation for the id field.
	contractfile.DefaultID = contractfileDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[6].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescProgress is the schema descriptor for progress field.
	extractjobDescProgress := extractjobFields[7].Descriptor()
	// extractjob.DefaultProgress holds the default value on creation for the progress field.
	extractjob.DefaultProgress = extractjobDescProgress.Default.(int)
	// extractjob.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	extractjob.ProgressValidator = func() func(int) error {
		validators := extractjobDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescConfidenceScore is the schema descriptor for confidence_score field.
	extractjobDescConfidenceScore := extractjobFields[11].Descriptor()
	// extractjob.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	extractjob.ConfidenceScoreValidator = func() func(int) error {
		validators := extractjobDescConfidenceScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence_score int) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
}
