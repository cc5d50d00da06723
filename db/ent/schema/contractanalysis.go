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

	"github.com/contractwise/backend/internal/entity"
)

type ContractAnalysis struct{ ent.Schema }

func (ContractAnalysis) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "contract_analyses"},
	}
}

func (ContractAnalysis) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.Text("contract_text").NotEmpty(),
		field.String("contract_type").NotEmpty(),
		field.JSON("risks", []entity.Risk{}),
		field.JSON("opportunities", []entity.Opportunity{}),
		field.Text("summary").NotEmpty(),
		field.JSON("recommendations", []string{}).Optional(),
		field.JSON("key_clauses", []string{}).Optional(),
		field.JSON("legal_compliance", []string{}).Optional(),
		field.JSON("negotiation_points", []string{}).Optional(),
		field.String("contract_duration").Optional(),
		field.String("termination_conditions").Optional(),
		field.Int("overall_score").Min(0).Max(100),
		field.JSON("compensation_structure", entity.CompensationStructure{}).Optional(),
		field.JSON("performance_metrics", []string{}).Optional(),
		field.JSON("intellectual_property_clauses", []string{}).Optional(),
		field.JSON("financial_terms", entity.FinancialTerms{}).Optional(),
		field.Int("version").Default(1),
		field.JSON("user_feedback", entity.UserFeedback{}).Optional(),
		field.JSON("custom_fields", map[string]string{}).Optional(),
		field.Time("expiration_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("language").Default("en"),
		field.String("ai_model").NotEmpty(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ContractAnalysis) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY analyses -> ONE user (FK: contract_analyses.user_id)
		edge.From("user", User.Type).
			Ref("analyses").
			Field("user_id").
			Required().
			Unique(),
	}
}

func (ContractAnalysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
