package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ContractFile struct {
	ent.Schema
}

func (ContractFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contract_files"},
	}
}

func (ContractFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_path").NotEmpty(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (ContractFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
		// ONE file -> MANY contract versions
		edge.To("contracts", Contract.Type),
	}
}

func (ContractFile) Indexes() []ent.Index {
	return []ent.Index{
		// content hash is the dedupe key for the whole catalog
		index.Fields("content_hash").Unique(),
		index.Fields("uploaded_at"),
	}
}
