// Code generated by ent, DO NOT EDIT.

package contractanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contractanalysis type in the database.
	Label = "contract_analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldContractText holds the string denoting the contract_text field in the database.
	FieldContractText = "contract_text"
	// FieldContractType holds the string denoting the contract_type field in the database.
	FieldContractType = "contract_type"
	// FieldRisks holds the string denoting the risks field in the database.
	FieldRisks = "risks"
	// FieldOpportunities holds the string denoting the opportunities field in the database.
	FieldOpportunities = "opportunities"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldKeyClauses holds the string denoting the key_clauses field in the database.
	FieldKeyClauses = "key_clauses"
	// FieldLegalCompliance holds the string denoting the legal_compliance field in the database.
	FieldLegalCompliance = "legal_compliance"
	// FieldNegotiationPoints holds the string denoting the negotiation_points field in the database.
	FieldNegotiationPoints = "negotiation_points"
	// FieldContractDuration holds the string denoting the contract_duration field in the database.
	FieldContractDuration = "contract_duration"
	// FieldTerminationConditions holds the string denoting the termination_conditions field in the database.
	FieldTerminationConditions = "termination_conditions"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldCompensationStructure holds the string denoting the compensation_structure field in the database.
	FieldCompensationStructure = "compensation_structure"
	// FieldPerformanceMetrics holds the string denoting the performance_metrics field in the database.
	FieldPerformanceMetrics = "performance_metrics"
	// FieldIntellectualPropertyClauses holds the string denoting the intellectual_property_clauses field in the database.
	FieldIntellectualPropertyClauses = "intellectual_property_clauses"
	// FieldFinancialTerms holds the string denoting the financial_terms field in the database.
	FieldFinancialTerms = "financial_terms"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldUserFeedback holds the string denoting the user_feedback field in the database.
	FieldUserFeedback = "user_feedback"
	// FieldCustomFields holds the string denoting the custom_fields field in the database.
	FieldCustomFields = "custom_fields"
	// FieldExpirationDate holds the string denoting the expiration_date field in the database.
	FieldExpirationDate = "expiration_date"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldAiModel holds the string denoting the ai_model field in the database.
	FieldAiModel = "ai_model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the contractanalysis in the database.
	Table = "contract_analyses"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "contract_analyses"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for contractanalysis fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldContractText,
	FieldContractType,
	FieldRisks,
	FieldOpportunities,
	FieldSummary,
	FieldRecommendations,
	FieldKeyClauses,
	FieldLegalCompliance,
	FieldNegotiationPoints,
	FieldContractDuration,
	FieldTerminationConditions,
	FieldOverallScore,
	FieldCompensationStructure,
	FieldPerformanceMetrics,
	FieldIntellectualPropertyClauses,
	FieldFinancialTerms,
	FieldVersion,
	FieldUserFeedback,
	FieldCustomFields,
	FieldExpirationDate,
	FieldLanguage,
	FieldAiModel,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ContractTextValidator is a validator for the "contract_text" field. It is called by the builders before save.
	ContractTextValidator func(string) error
	// ContractTypeValidator is a validator for the "contract_type" field. It is called by the builders before save.
	ContractTypeValidator func(string) error
	// SummaryValidator is a validator for the "summary" field. It is called by the builders before save.
	SummaryValidator func(string) error
	// OverallScoreValidator is a validator for the "overall_score" field. It is called by the builders before save.
	OverallScoreValidator func(int) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// AiModelValidator is a validator for the "ai_model" field. It is called by the builders before save.
	AiModelValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ContractAnalysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByContractText orders the results by the contract_text field.
func ByContractText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractText, opts...).ToFunc()
}

// ByContractType orders the results by the contract_type field.
func ByContractType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractType, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByContractDuration orders the results by the contract_duration field.
func ByContractDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractDuration, opts...).ToFunc()
}

// ByTerminationConditions orders the results by the termination_conditions field.
func ByTerminationConditions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationConditions, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByExpirationDate orders the results by the expiration_date field.
func ByExpirationDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpirationDate, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByAiModel orders the results by the ai_model field.
func ByAiModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
