// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "service_provider", Type: field.TypeString, Nullable: true},
		{Name: "customer", Type: field.TypeString, Nullable: true},
		{Name: "annual_contract_value", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency_code", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "revenue_type", Type: field.TypeString},
		{Name: "confidence_score", Type: field.TypeInt},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contracts_contract_files_contracts",
				Columns:    []*schema.Column{ContractsColumns[10]},
				RefColumns: []*schema.Column{ContractFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contract_file_id",
				Unique:  true,
				Columns: []*schema.Column{ContractsColumns[10]},
			},
			{
				Name:    "contract_revenue_type_processed_at",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[5], ContractsColumns[7]},
			},
		},
	}
	// ContractFilesColumns holds the columns for the "contract_files" table.
	ContractFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// ContractFilesTable holds the schema information for the "contract_files" table.
	ContractFilesTable = &schema.Table{
		Name:       "contract_files",
		Columns:    ContractFilesColumns,
		PrimaryKey: []*schema.Column{ContractFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contractfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ContractFilesColumns[2]},
			},
			{
				Name:    "contractfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ContractFilesColumns[6]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "contract_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_score", Type: field.TypeInt, Nullable: true},
		{Name: "contract_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_contracts_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[10]},
				RefColumns: []*schema.Column{ContractsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_contract_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{ContractFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11]},
			},
			{
				Name:    "extractjob_contract_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractsTable,
		ContractFilesTable,
		ExtractJobTable,
	}
)

func init() {
	ContractsTable.ForeignKeys[0].RefTable = ContractFilesTable
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	ContractFilesTable.Annotation = &entsql.Annotation{
		Table: "contract_files",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = ContractsTable
	ExtractJobTable.ForeignKeys[1].RefTable = ContractFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
}
