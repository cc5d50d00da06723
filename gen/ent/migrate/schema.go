// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractAnalysesColumns holds the columns for the "contract_analyses" table.
	ContractAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "contract_text", Type: field.TypeString, Size: 2147483647},
		{Name: "contract_type", Type: field.TypeString},
		{Name: "risks", Type: field.TypeJSON},
		{Name: "opportunities", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "key_clauses", Type: field.TypeJSON, Nullable: true},
		{Name: "legal_compliance", Type: field.TypeJSON, Nullable: true},
		{Name: "negotiation_points", Type: field.TypeJSON, Nullable: true},
		{Name: "contract_duration", Type: field.TypeString, Nullable: true},
		{Name: "termination_conditions", Type: field.TypeString, Nullable: true},
		{Name: "overall_score", Type: field.TypeInt},
		{Name: "compensation_structure", Type: field.TypeJSON, Nullable: true},
		{Name: "performance_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "intellectual_property_clauses", Type: field.TypeJSON, Nullable: true},
		{Name: "financial_terms", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "user_feedback", Type: field.TypeJSON, Nullable: true},
		{Name: "custom_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "expiration_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "ai_model", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ContractAnalysesTable holds the schema information for the "contract_analyses" table.
	ContractAnalysesTable = &schema.Table{
		Name:       "contract_analyses",
		Columns:    ContractAnalysesColumns,
		PrimaryKey: []*schema.Column{ContractAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contract_analyses_users_analyses",
				Columns:    []*schema.Column{ContractAnalysesColumns[25]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contractanalysis_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContractAnalysesColumns[25], ContractAnalysesColumns[23]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "google_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "profile_picture", Type: field.TypeString, Nullable: true},
		{Name: "is_premium", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractAnalysesTable,
		UsersTable,
	}
)

func init() {
	ContractAnalysesTable.ForeignKeys[0].RefTable = UsersTable
	ContractAnalysesTable.Annotation = &entsql.Annotation{
		Table: "contract_analyses",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}
