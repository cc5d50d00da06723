// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/contractwise/backend/gen/ent/contractanalysis"
	"github.com/contractwise/backend/gen/ent/user"
	"github.com/contractwise/backend/internal/entity"
	"github.com/google/uuid"
)

// ContractAnalysis is the model entity for the ContractAnalysis schema.
type ContractAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// ContractText holds the value of the "contract_text" field.
	ContractText string `json:"contract_text,omitempty"`
	// ContractType holds the value of the "contract_type" field.
	ContractType string `json:"contract_type,omitempty"`
	// Risks holds the value of the "risks" field.
	Risks []entity.Risk `json:"risks,omitempty"`
	// Opportunities holds the value of the "opportunities" field.
	Opportunities []entity.Opportunity `json:"opportunities,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// KeyClauses holds the value of the "key_clauses" field.
	KeyClauses []string `json:"key_clauses,omitempty"`
	// LegalCompliance holds the value of the "legal_compliance" field.
	LegalCompliance []string `json:"legal_compliance,omitempty"`
	// NegotiationPoints holds the value of the "negotiation_points" field.
	NegotiationPoints []string `json:"negotiation_points,omitempty"`
	// ContractDuration holds the value of the "contract_duration" field.
	ContractDuration string `json:"contract_duration,omitempty"`
	// TerminationConditions holds the value of the "termination_conditions" field.
	TerminationConditions string `json:"termination_conditions,omitempty"`
	// OverallScore holds the value of the "overall_score" field.
	OverallScore int `json:"overall_score,omitempty"`
	// CompensationStructure holds the value of the "compensation_structure" field.
	CompensationStructure entity.CompensationStructure `json:"compensation_structure,omitempty"`
	// PerformanceMetrics holds the value of the "performance_metrics" field.
	PerformanceMetrics []string `json:"performance_metrics,omitempty"`
	// IntellectualPropertyClauses holds the value of the "intellectual_property_clauses" field.
	IntellectualPropertyClauses []string `json:"intellectual_property_clauses,omitempty"`
	// FinancialTerms holds the value of the "financial_terms" field.
	FinancialTerms entity.FinancialTerms `json:"financial_terms,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// UserFeedback holds the value of the "user_feedback" field.
	UserFeedback entity.UserFeedback `json:"user_feedback,omitempty"`
	// CustomFields holds the value of the "custom_fields" field.
	CustomFields map[string]string `json:"custom_fields,omitempty"`
	// ExpirationDate holds the value of the "expiration_date" field.
	ExpirationDate time.Time `json:"expiration_date,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// AiModel holds the value of the "ai_model" field.
	AiModel string `json:"ai_model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContractAnalysisQuery when eager-loading is set.
	Edges        ContractAnalysisEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContractAnalysisEdges holds the relations/edges for other nodes in the graph.
type ContractAnalysisEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContractAnalysisEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContractAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contractanalysis.FieldRisks, contractanalysis.FieldOpportunities, contractanalysis.FieldRecommendations, contractanalysis.FieldKeyClauses, contractanalysis.FieldLegalCompliance, contractanalysis.FieldNegotiationPoints, contractanalysis.FieldCompensationStructure, contractanalysis.FieldPerformanceMetrics, contractanalysis.FieldIntellectualPropertyClauses, contractanalysis.FieldFinancialTerms, contractanalysis.FieldUserFeedback, contractanalysis.FieldCustomFields:
			values[i] = new([]byte)
		case contractanalysis.FieldOverallScore, contractanalysis.FieldVersion:
			values[i] = new(sql.NullInt64)
		case contractanalysis.FieldContractText, contractanalysis.FieldContractType, contractanalysis.FieldSummary, contractanalysis.FieldContractDuration, contractanalysis.FieldTerminationConditions, contractanalysis.FieldLanguage, contractanalysis.FieldAiModel:
			values[i] = new(sql.NullString)
		case contractanalysis.FieldExpirationDate, contractanalysis.FieldCreatedAt, contractanalysis.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case contractanalysis.FieldID, contractanalysis.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContractAnalysis fields.
func (_m *ContractAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contractanalysis.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case contractanalysis.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case contractanalysis.FieldContractText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_text", values[i])
			} else if value.Valid {
				_m.ContractText = value.String
			}
		case contractanalysis.FieldContractType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_type", values[i])
			} else if value.Valid {
				_m.ContractType = value.String
			}
		case contractanalysis.FieldRisks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field risks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Risks); err != nil {
					return fmt.Errorf("unmarshal field risks: %w", err)
				}
			}
		case contractanalysis.FieldOpportunities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field opportunities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Opportunities); err != nil {
					return fmt.Errorf("unmarshal field opportunities: %w", err)
				}
			}
		case contractanalysis.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case contractanalysis.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case contractanalysis.FieldKeyClauses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field key_clauses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.KeyClauses); err != nil {
					return fmt.Errorf("unmarshal field key_clauses: %w", err)
				}
			}
		case contractanalysis.FieldLegalCompliance:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field legal_compliance", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LegalCompliance); err != nil {
					return fmt.Errorf("unmarshal field legal_compliance: %w", err)
				}
			}
		case contractanalysis.FieldNegotiationPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field negotiation_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NegotiationPoints); err != nil {
					return fmt.Errorf("unmarshal field negotiation_points: %w", err)
				}
			}
		case contractanalysis.FieldContractDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_duration", values[i])
			} else if value.Valid {
				_m.ContractDuration = value.String
			}
		case contractanalysis.FieldTerminationConditions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field termination_conditions", values[i])
			} else if value.Valid {
				_m.TerminationConditions = value.String
			}
		case contractanalysis.FieldOverallScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = int(value.Int64)
			}
		case contractanalysis.FieldCompensationStructure:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compensation_structure", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompensationStructure); err != nil {
					return fmt.Errorf("unmarshal field compensation_structure: %w", err)
				}
			}
		case contractanalysis.FieldPerformanceMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field performance_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PerformanceMetrics); err != nil {
					return fmt.Errorf("unmarshal field performance_metrics: %w", err)
				}
			}
		case contractanalysis.FieldIntellectualPropertyClauses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field intellectual_property_clauses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.IntellectualPropertyClauses); err != nil {
					return fmt.Errorf("unmarshal field intellectual_property_clauses: %w", err)
				}
			}
		case contractanalysis.FieldFinancialTerms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field financial_terms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FinancialTerms); err != nil {
					return fmt.Errorf("unmarshal field financial_terms: %w", err)
				}
			}
		case contractanalysis.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case contractanalysis.FieldUserFeedback:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field user_feedback", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.UserFeedback); err != nil {
					return fmt.Errorf("unmarshal field user_feedback: %w", err)
				}
			}
		case contractanalysis.FieldCustomFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field custom_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CustomFields); err != nil {
					return fmt.Errorf("unmarshal field custom_fields: %w", err)
				}
			}
		case contractanalysis.FieldExpirationDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expiration_date", values[i])
			} else if value.Valid {
				_m.ExpirationDate = value.Time
			}
		case contractanalysis.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case contractanalysis.FieldAiModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_model", values[i])
			} else if value.Valid {
				_m.AiModel = value.String
			}
		case contractanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contractanalysis.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContractAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *ContractAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ContractAnalysis entity.
func (_m *ContractAnalysis) QueryUser() *UserQuery {
	return NewContractAnalysisClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this ContractAnalysis.
// Note that you need to call ContractAnalysis.Unwrap() before calling this method if this ContractAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContractAnalysis) Update() *ContractAnalysisUpdateOne {
	return NewContractAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContractAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContractAnalysis) Unwrap() *ContractAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContractAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContractAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("ContractAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("contract_text=")
	builder.WriteString(_m.ContractText)
	builder.WriteString(", ")
	builder.WriteString("contract_type=")
	builder.WriteString(_m.ContractType)
	builder.WriteString(", ")
	builder.WriteString("risks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Risks))
	builder.WriteString(", ")
	builder.WriteString("opportunities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Opportunities))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("key_clauses=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyClauses))
	builder.WriteString(", ")
	builder.WriteString("legal_compliance=")
	builder.WriteString(fmt.Sprintf("%v", _m.LegalCompliance))
	builder.WriteString(", ")
	builder.WriteString("negotiation_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.NegotiationPoints))
	builder.WriteString(", ")
	builder.WriteString("contract_duration=")
	builder.WriteString(_m.ContractDuration)
	builder.WriteString(", ")
	builder.WriteString("termination_conditions=")
	builder.WriteString(_m.TerminationConditions)
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("compensation_structure=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompensationStructure))
	builder.WriteString(", ")
	builder.WriteString("performance_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.PerformanceMetrics))
	builder.WriteString(", ")
	builder.WriteString("intellectual_property_clauses=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntellectualPropertyClauses))
	builder.WriteString(", ")
	builder.WriteString("financial_terms=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinancialTerms))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("user_feedback=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserFeedback))
	builder.WriteString(", ")
	builder.WriteString("custom_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomFields))
	builder.WriteString(", ")
	builder.WriteString("expiration_date=")
	builder.WriteString(_m.ExpirationDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("ai_model=")
	builder.WriteString(_m.AiModel)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContractAnalyses is a parsable slice of ContractAnalysis.
type ContractAnalyses []*ContractAnalysis
