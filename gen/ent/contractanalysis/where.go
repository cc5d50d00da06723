// Code generated by ent, DO NOT EDIT.

package contractanalysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/contractwise/backend/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldUserID, v))
}

// ContractText applies equality check predicate on the "contract_text" field. It's identical to ContractTextEQ.
func ContractText(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldContractText, v))
}

// ContractType applies equality check predicate on the "contract_type" field. It's identical to ContractTypeEQ.
func ContractType(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldContractType, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldSummary, v))
}

// ContractDuration applies equality check predicate on the "contract_duration" field. It's identical to ContractDurationEQ.
func ContractDuration(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldContractDuration, v))
}

// TerminationConditions applies equality check predicate on the "termination_conditions" field. It's identical to TerminationConditionsEQ.
func TerminationConditions(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldTerminationConditions, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldOverallScore, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldVersion, v))
}

// ExpirationDate applies equality check predicate on the "expiration_date" field. It's identical to ExpirationDateEQ.
func ExpirationDate(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldExpirationDate, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldLanguage, v))
}

// AiModel applies equality check predicate on the "ai_model" field. It's identical to AiModelEQ.
func AiModel(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldAiModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldUserID, vs...))
}

// ContractTextEQ applies the EQ predicate on the "contract_text" field.
func ContractTextEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldContractText, v))
}

// ContractTextNEQ applies the NEQ predicate on the "contract_text" field.
func ContractTextNEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldContractText, v))
}

// ContractTextIn applies the In predicate on the "contract_text" field.
func ContractTextIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldContractText, vs...))
}

// ContractTextNotIn applies the NotIn predicate on the "contract_text" field.
func ContractTextNotIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldContractText, vs...))
}

// ContractTextGT applies the GT predicate on the "contract_text" field.
func ContractTextGT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldContractText, v))
}

// ContractTextGTE applies the GTE predicate on the "contract_text" field.
func ContractTextGTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldContractText, v))
}

// ContractTextLT applies the LT predicate on the "contract_text" field.
func ContractTextLT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldContractText, v))
}

// ContractTextLTE applies the LTE predicate on the "contract_text" field.
func ContractTextLTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldContractText, v))
}

// ContractTextContains applies the Contains predicate on the "contract_text" field.
func ContractTextContains(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContains(FieldContractText, v))
}

// ContractTextHasPrefix applies the HasPrefix predicate on the "contract_text" field.
func ContractTextHasPrefix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasPrefix(FieldContractText, v))
}

// ContractTextHasSuffix applies the HasSuffix predicate on the "contract_text" field.
func ContractTextHasSuffix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasSuffix(FieldContractText, v))
}

// ContractTextEqualFold applies the EqualFold predicate on the "contract_text" field.
func ContractTextEqualFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEqualFold(FieldContractText, v))
}

// ContractTextContainsFold applies the ContainsFold predicate on the "contract_text" field.
func ContractTextContainsFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContainsFold(FieldContractText, v))
}

// ContractTypeEQ applies the EQ predicate on the "contract_type" field.
func ContractTypeEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldContractType, v))
}

// ContractTypeNEQ applies the NEQ predicate on the "contract_type" field.
func ContractTypeNEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldContractType, v))
}

// ContractTypeIn applies the In predicate on the "contract_type" field.
func ContractTypeIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldContractType, vs...))
}

// ContractTypeNotIn applies the NotIn predicate on the "contract_type" field.
func ContractTypeNotIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldContractType, vs...))
}

// ContractTypeGT applies the GT predicate on the "contract_type" field.
func ContractTypeGT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldContractType, v))
}

// ContractTypeGTE applies the GTE predicate on the "contract_type" field.
func ContractTypeGTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldContractType, v))
}

// ContractTypeLT applies the LT predicate on the "contract_type" field.
func ContractTypeLT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldContractType, v))
}

// ContractTypeLTE applies the LTE predicate on the "contract_type" field.
func ContractTypeLTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldContractType, v))
}

// ContractTypeContains applies the Contains predicate on the "contract_type" field.
func ContractTypeContains(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContains(FieldContractType, v))
}

// ContractTypeHasPrefix applies the HasPrefix predicate on the "contract_type" field.
func ContractTypeHasPrefix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasPrefix(FieldContractType, v))
}

// ContractTypeHasSuffix applies the HasSuffix predicate on the "contract_type" field.
func ContractTypeHasSuffix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasSuffix(FieldContractType, v))
}

// ContractTypeEqualFold applies the EqualFold predicate on the "contract_type" field.
func ContractTypeEqualFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEqualFold(FieldContractType, v))
}

// ContractTypeContainsFold applies the ContainsFold predicate on the "contract_type" field.
func ContractTypeContainsFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContainsFold(FieldContractType, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContainsFold(FieldSummary, v))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldRecommendations))
}

// KeyClausesIsNil applies the IsNil predicate on the "key_clauses" field.
func KeyClausesIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldKeyClauses))
}

// KeyClausesNotNil applies the NotNil predicate on the "key_clauses" field.
func KeyClausesNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldKeyClauses))
}

// LegalComplianceIsNil applies the IsNil predicate on the "legal_compliance" field.
func LegalComplianceIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldLegalCompliance))
}

// LegalComplianceNotNil applies the NotNil predicate on the "legal_compliance" field.
func LegalComplianceNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldLegalCompliance))
}

// NegotiationPointsIsNil applies the IsNil predicate on the "negotiation_points" field.
func NegotiationPointsIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldNegotiationPoints))
}

// NegotiationPointsNotNil applies the NotNil predicate on the "negotiation_points" field.
func NegotiationPointsNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldNegotiationPoints))
}

// ContractDurationEQ applies the EQ predicate on the "contract_duration" field.
func ContractDurationEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldContractDuration, v))
}

// ContractDurationNEQ applies the NEQ predicate on the "contract_duration" field.
func ContractDurationNEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldContractDuration, v))
}

// ContractDurationIn applies the In predicate on the "contract_duration" field.
func ContractDurationIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldContractDuration, vs...))
}

// ContractDurationNotIn applies the NotIn predicate on the "contract_duration" field.
func ContractDurationNotIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldContractDuration, vs...))
}

// ContractDurationGT applies the GT predicate on the "contract_duration" field.
func ContractDurationGT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldContractDuration, v))
}

// ContractDurationGTE applies the GTE predicate on the "contract_duration" field.
func ContractDurationGTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldContractDuration, v))
}

// ContractDurationLT applies the LT predicate on the "contract_duration" field.
func ContractDurationLT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldContractDuration, v))
}

// ContractDurationLTE applies the LTE predicate on the "contract_duration" field.
func ContractDurationLTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldContractDuration, v))
}

// ContractDurationContains applies the Contains predicate on the "contract_duration" field.
func ContractDurationContains(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContains(FieldContractDuration, v))
}

// ContractDurationHasPrefix applies the HasPrefix predicate on the "contract_duration" field.
func ContractDurationHasPrefix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasPrefix(FieldContractDuration, v))
}

// ContractDurationHasSuffix applies the HasSuffix predicate on the "contract_duration" field.
func ContractDurationHasSuffix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasSuffix(FieldContractDuration, v))
}

// ContractDurationIsNil applies the IsNil predicate on the "contract_duration" field.
func ContractDurationIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldContractDuration))
}

// ContractDurationNotNil applies the NotNil predicate on the "contract_duration" field.
func ContractDurationNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldContractDuration))
}

// ContractDurationEqualFold applies the EqualFold predicate on the "contract_duration" field.
func ContractDurationEqualFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEqualFold(FieldContractDuration, v))
}

// ContractDurationContainsFold applies the ContainsFold predicate on the "contract_duration" field.
func ContractDurationContainsFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContainsFold(FieldContractDuration, v))
}

// TerminationConditionsEQ applies the EQ predicate on the "termination_conditions" field.
func TerminationConditionsEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldTerminationConditions, v))
}

// TerminationConditionsNEQ applies the NEQ predicate on the "termination_conditions" field.
func TerminationConditionsNEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldTerminationConditions, v))
}

// TerminationConditionsIn applies the In predicate on the "termination_conditions" field.
func TerminationConditionsIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldTerminationConditions, vs...))
}

// TerminationConditionsNotIn applies the NotIn predicate on the "termination_conditions" field.
func TerminationConditionsNotIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldTerminationConditions, vs...))
}

// TerminationConditionsGT applies the GT predicate on the "termination_conditions" field.
func TerminationConditionsGT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldTerminationConditions, v))
}

// TerminationConditionsGTE applies the GTE predicate on the "termination_conditions" field.
func TerminationConditionsGTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldTerminationConditions, v))
}

// TerminationConditionsLT applies the LT predicate on the "termination_conditions" field.
func TerminationConditionsLT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldTerminationConditions, v))
}

// TerminationConditionsLTE applies the LTE predicate on the "termination_conditions" field.
func TerminationConditionsLTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldTerminationConditions, v))
}

// TerminationConditionsContains applies the Contains predicate on the "termination_conditions" field.
func TerminationConditionsContains(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContains(FieldTerminationConditions, v))
}

// TerminationConditionsHasPrefix applies the HasPrefix predicate on the "termination_conditions" field.
func TerminationConditionsHasPrefix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasPrefix(FieldTerminationConditions, v))
}

// TerminationConditionsHasSuffix applies the HasSuffix predicate on the "termination_conditions" field.
func TerminationConditionsHasSuffix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasSuffix(FieldTerminationConditions, v))
}

// TerminationConditionsIsNil applies the IsNil predicate on the "termination_conditions" field.
func TerminationConditionsIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldTerminationConditions))
}

// TerminationConditionsNotNil applies the NotNil predicate on the "termination_conditions" field.
func TerminationConditionsNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldTerminationConditions))
}

// TerminationConditionsEqualFold applies the EqualFold predicate on the "termination_conditions" field.
func TerminationConditionsEqualFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEqualFold(FieldTerminationConditions, v))
}

// TerminationConditionsContainsFold applies the ContainsFold predicate on the "termination_conditions" field.
func TerminationConditionsContainsFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContainsFold(FieldTerminationConditions, v))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldOverallScore, v))
}

// CompensationStructureIsNil applies the IsNil predicate on the "compensation_structure" field.
func CompensationStructureIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldCompensationStructure))
}

// CompensationStructureNotNil applies the NotNil predicate on the "compensation_structure" field.
func CompensationStructureNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldCompensationStructure))
}

// PerformanceMetricsIsNil applies the IsNil predicate on the "performance_metrics" field.
func PerformanceMetricsIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldPerformanceMetrics))
}

// PerformanceMetricsNotNil applies the NotNil predicate on the "performance_metrics" field.
func PerformanceMetricsNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldPerformanceMetrics))
}

// IntellectualPropertyClausesIsNil applies the IsNil predicate on the "intellectual_property_clauses" field.
func IntellectualPropertyClausesIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldIntellectualPropertyClauses))
}

// IntellectualPropertyClausesNotNil applies the NotNil predicate on the "intellectual_property_clauses" field.
func IntellectualPropertyClausesNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldIntellectualPropertyClauses))
}

// FinancialTermsIsNil applies the IsNil predicate on the "financial_terms" field.
func FinancialTermsIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldFinancialTerms))
}

// FinancialTermsNotNil applies the NotNil predicate on the "financial_terms" field.
func FinancialTermsNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldFinancialTerms))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldVersion, v))
}

// UserFeedbackIsNil applies the IsNil predicate on the "user_feedback" field.
func UserFeedbackIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldUserFeedback))
}

// UserFeedbackNotNil applies the NotNil predicate on the "user_feedback" field.
func UserFeedbackNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldUserFeedback))
}

// CustomFieldsIsNil applies the IsNil predicate on the "custom_fields" field.
func CustomFieldsIsNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIsNull(FieldCustomFields))
}

// CustomFieldsNotNil applies the NotNil predicate on the "custom_fields" field.
func CustomFieldsNotNil() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotNull(FieldCustomFields))
}

// ExpirationDateEQ applies the EQ predicate on the "expiration_date" field.
func ExpirationDateEQ(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldExpirationDate, v))
}

// ExpirationDateNEQ applies the NEQ predicate on the "expiration_date" field.
func ExpirationDateNEQ(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldExpirationDate, v))
}

// ExpirationDateIn applies the In predicate on the "expiration_date" field.
func ExpirationDateIn(vs ...time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldExpirationDate, vs...))
}

// ExpirationDateNotIn applies the NotIn predicate on the "expiration_date" field.
func ExpirationDateNotIn(vs ...time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldExpirationDate, vs...))
}

// ExpirationDateGT applies the GT predicate on the "expiration_date" field.
func ExpirationDateGT(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldExpirationDate, v))
}

// ExpirationDateGTE applies the GTE predicate on the "expiration_date" field.
func ExpirationDateGTE(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldExpirationDate, v))
}

// ExpirationDateLT applies the LT predicate on the "expiration_date" field.
func ExpirationDateLT(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldExpirationDate, v))
}

// ExpirationDateLTE applies the LTE predicate on the "expiration_date" field.
func ExpirationDateLTE(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldExpirationDate, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContainsFold(FieldLanguage, v))
}

// AiModelEQ applies the EQ predicate on the "ai_model" field.
func AiModelEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldAiModel, v))
}

// AiModelNEQ applies the NEQ predicate on the "ai_model" field.
func AiModelNEQ(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldAiModel, v))
}

// AiModelIn applies the In predicate on the "ai_model" field.
func AiModelIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldAiModel, vs...))
}

// AiModelNotIn applies the NotIn predicate on the "ai_model" field.
func AiModelNotIn(vs ...string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldAiModel, vs...))
}

// AiModelGT applies the GT predicate on the "ai_model" field.
func AiModelGT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldAiModel, v))
}

// AiModelGTE applies the GTE predicate on the "ai_model" field.
func AiModelGTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldAiModel, v))
}

// AiModelLT applies the LT predicate on the "ai_model" field.
func AiModelLT(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldAiModel, v))
}

// AiModelLTE applies the LTE predicate on the "ai_model" field.
func AiModelLTE(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldAiModel, v))
}

// AiModelContains applies the Contains predicate on the "ai_model" field.
func AiModelContains(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContains(FieldAiModel, v))
}

// AiModelHasPrefix applies the HasPrefix predicate on the "ai_model" field.
func AiModelHasPrefix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasPrefix(FieldAiModel, v))
}

// AiModelHasSuffix applies the HasSuffix predicate on the "ai_model" field.
func AiModelHasSuffix(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldHasSuffix(FieldAiModel, v))
}

// AiModelEqualFold applies the EqualFold predicate on the "ai_model" field.
func AiModelEqualFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEqualFold(FieldAiModel, v))
}

// AiModelContainsFold applies the ContainsFold predicate on the "ai_model" field.
func AiModelContainsFold(v string) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldContainsFold(FieldAiModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.ContractAnalysis {
	return predicate.ContractAnalysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContractAnalysis) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContractAnalysis) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContractAnalysis) predicate.ContractAnalysis {
	return predicate.ContractAnalysis(sql.NotPredicates(p))
}
