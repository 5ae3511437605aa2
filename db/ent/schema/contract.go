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

	"github.com/joseph-ayodele/contract-intel/db/ent/schema/utils"

	"github.com/google/uuid"
)

var revenueTypes = []string{"recurring", "one-time", "mixed"}

type Contract struct{ ent.Schema }

func (Contract) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contracts"},
	}
}

func (Contract) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("file_id", uuid.UUID{}),
		field.String("service_provider").Optional().Nillable(),
		field.String("customer").Optional().Nillable(),
		field.Float("annual_contract_value").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("revenue_type").NotEmpty().
			Validate(utils.EnumValidator(revenueTypes...)),
		field.Int("confidence_score").Min(0).Max(100),
		field.Time("processed_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Contract) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY contracts -> ONE file (FK: contracts.file_id)
		edge.From("file", ContractFile.Type).
			Ref("contracts").
			Field("file_id").
			Required().
			Unique(),
		// ONE contract -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Contract) Indexes() []ent.Index {
	return []ent.Index{
		// one summary row per file
		index.Fields("file_id").Unique(),
		index.Fields("revenue_type", "processed_at"),
	}
}
