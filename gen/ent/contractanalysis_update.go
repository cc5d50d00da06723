// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/contractwise/backend/gen/ent/contractanalysis"
	"github.com/contractwise/backend/gen/ent/predicate"
	"github.com/contractwise/backend/gen/ent/user"
	"github.com/contractwise/backend/internal/entity"
	"github.com/google/uuid"
)

// ContractAnalysisUpdate is the builder for updating ContractAnalysis entities.
type ContractAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *ContractAnalysisMutation
}

// Where appends a list predicates to the ContractAnalysisUpdate builder.
func (_u *ContractAnalysisUpdate) Where(ps ...predicate.ContractAnalysis) *ContractAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ContractAnalysisUpdate) SetUserID(v uuid.UUID) *ContractAnalysisUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableUserID(v *uuid.UUID) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContractText sets the "contract_text" field.
func (_u *ContractAnalysisUpdate) SetContractText(v string) *ContractAnalysisUpdate {
	_u.mutation.SetContractText(v)
	return _u
}

// SetNillableContractText sets the "contract_text" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableContractText(v *string) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetContractText(*v)
	}
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ContractAnalysisUpdate) SetContractType(v string) *ContractAnalysisUpdate {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableContractType(v *string) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetRisks sets the "risks" field.
func (_u *ContractAnalysisUpdate) SetRisks(v []entity.Risk) *ContractAnalysisUpdate {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *ContractAnalysisUpdate) AppendRisks(v []entity.Risk) *ContractAnalysisUpdate {
	_u.mutation.AppendRisks(v)
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *ContractAnalysisUpdate) SetOpportunities(v []entity.Opportunity) *ContractAnalysisUpdate {
	_u.mutation.SetOpportunities(v)
	return _u
}

// AppendOpportunities appends value to the "opportunities" field.
func (_u *ContractAnalysisUpdate) AppendOpportunities(v []entity.Opportunity) *ContractAnalysisUpdate {
	_u.mutation.AppendOpportunities(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ContractAnalysisUpdate) SetSummary(v string) *ContractAnalysisUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableSummary(v *string) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ContractAnalysisUpdate) SetRecommendations(v []string) *ContractAnalysisUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *ContractAnalysisUpdate) AppendRecommendations(v []string) *ContractAnalysisUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ContractAnalysisUpdate) ClearRecommendations() *ContractAnalysisUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetKeyClauses sets the "key_clauses" field.
func (_u *ContractAnalysisUpdate) SetKeyClauses(v []string) *ContractAnalysisUpdate {
	_u.mutation.SetKeyClauses(v)
	return _u
}

// AppendKeyClauses appends value to the "key_clauses" field.
func (_u *ContractAnalysisUpdate) AppendKeyClauses(v []string) *ContractAnalysisUpdate {
	_u.mutation.AppendKeyClauses(v)
	return _u
}

// ClearKeyClauses clears the value of the "key_clauses" field.
func (_u *ContractAnalysisUpdate) ClearKeyClauses() *ContractAnalysisUpdate {
	_u.mutation.ClearKeyClauses()
	return _u
}

// SetLegalCompliance sets the "legal_compliance" field.
func (_u *ContractAnalysisUpdate) SetLegalCompliance(v []string) *ContractAnalysisUpdate {
	_u.mutation.SetLegalCompliance(v)
	return _u
}

// AppendLegalCompliance appends value to the "legal_compliance" field.
func (_u *ContractAnalysisUpdate) AppendLegalCompliance(v []string) *ContractAnalysisUpdate {
	_u.mutation.AppendLegalCompliance(v)
	return _u
}

// ClearLegalCompliance clears the value of the "legal_compliance" field.
func (_u *ContractAnalysisUpdate) ClearLegalCompliance() *ContractAnalysisUpdate {
	_u.mutation.ClearLegalCompliance()
	return _u
}

// SetNegotiationPoints sets the "negotiation_points" field.
func (_u *ContractAnalysisUpdate) SetNegotiationPoints(v []string) *ContractAnalysisUpdate {
	_u.mutation.SetNegotiationPoints(v)
	return _u
}

// AppendNegotiationPoints appends value to the "negotiation_points" field.
func (_u *ContractAnalysisUpdate) AppendNegotiationPoints(v []string) *ContractAnalysisUpdate {
	_u.mutation.AppendNegotiationPoints(v)
	return _u
}

// ClearNegotiationPoints clears the value of the "negotiation_points" field.
func (_u *ContractAnalysisUpdate) ClearNegotiationPoints() *ContractAnalysisUpdate {
	_u.mutation.ClearNegotiationPoints()
	return _u
}

// SetContractDuration sets the "contract_duration" field.
func (_u *ContractAnalysisUpdate) SetContractDuration(v string) *ContractAnalysisUpdate {
	_u.mutation.SetContractDuration(v)
	return _u
}

// SetNillableContractDuration sets the "contract_duration" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableContractDuration(v *string) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetContractDuration(*v)
	}
	return _u
}

// ClearContractDuration clears the value of the "contract_duration" field.
func (_u *ContractAnalysisUpdate) ClearContractDuration() *ContractAnalysisUpdate {
	_u.mutation.ClearContractDuration()
	return _u
}

// SetTerminationConditions sets the "termination_conditions" field.
func (_u *ContractAnalysisUpdate) SetTerminationConditions(v string) *ContractAnalysisUpdate {
	_u.mutation.SetTerminationConditions(v)
	return _u
}

// SetNillableTerminationConditions sets the "termination_conditions" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableTerminationConditions(v *string) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetTerminationConditions(*v)
	}
	return _u
}

// ClearTerminationConditions clears the value of the "termination_conditions" field.
func (_u *ContractAnalysisUpdate) ClearTerminationConditions() *ContractAnalysisUpdate {
	_u.mutation.ClearTerminationConditions()
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *ContractAnalysisUpdate) SetOverallScore(v int) *ContractAnalysisUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableOverallScore(v *int) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ContractAnalysisUpdate) AddOverallScore(v int) *ContractAnalysisUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetCompensationStructure sets the "compensation_structure" field.
func (_u *ContractAnalysisUpdate) SetCompensationStructure(v entity.CompensationStructure) *ContractAnalysisUpdate {
	_u.mutation.SetCompensationStructure(v)
	return _u
}

// SetNillableCompensationStructure sets the "compensation_structure" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableCompensationStructure(v *entity.CompensationStructure) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetCompensationStructure(*v)
	}
	return _u
}

// ClearCompensationStructure clears the value of the "compensation_structure" field.
func (_u *ContractAnalysisUpdate) ClearCompensationStructure() *ContractAnalysisUpdate {
	_u.mutation.ClearCompensationStructure()
	return _u
}

// SetPerformanceMetrics sets the "performance_metrics" field.
func (_u *ContractAnalysisUpdate) SetPerformanceMetrics(v []string) *ContractAnalysisUpdate {
	_u.mutation.SetPerformanceMetrics(v)
	return _u
}

// AppendPerformanceMetrics appends value to the "performance_metrics" field.
func (_u *ContractAnalysisUpdate) AppendPerformanceMetrics(v []string) *ContractAnalysisUpdate {
	_u.mutation.AppendPerformanceMetrics(v)
	return _u
}

// ClearPerformanceMetrics clears the value of the "performance_metrics" field.
func (_u *ContractAnalysisUpdate) ClearPerformanceMetrics() *ContractAnalysisUpdate {
	_u.mutation.ClearPerformanceMetrics()
	return _u
}

// SetIntellectualPropertyClauses sets the "intellectual_property_clauses" field.
func (_u *ContractAnalysisUpdate) SetIntellectualPropertyClauses(v []string) *ContractAnalysisUpdate {
	_u.mutation.SetIntellectualPropertyClauses(v)
	return _u
}

// AppendIntellectualPropertyClauses appends value to the "intellectual_property_clauses" field.
func (_u *ContractAnalysisUpdate) AppendIntellectualPropertyClauses(v []string) *ContractAnalysisUpdate {
	_u.mutation.AppendIntellectualPropertyClauses(v)
	return _u
}

// ClearIntellectualPropertyClauses clears the value of the "intellectual_property_clauses" field.
func (_u *ContractAnalysisUpdate) ClearIntellectualPropertyClauses() *ContractAnalysisUpdate {
	_u.mutation.ClearIntellectualPropertyClauses()
	return _u
}

// SetFinancialTerms sets the "financial_terms" field.
func (_u *ContractAnalysisUpdate) SetFinancialTerms(v entity.FinancialTerms) *ContractAnalysisUpdate {
	_u.mutation.SetFinancialTerms(v)
	return _u
}

// SetNillableFinancialTerms sets the "financial_terms" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableFinancialTerms(v *entity.FinancialTerms) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetFinancialTerms(*v)
	}
	return _u
}

// ClearFinancialTerms clears the value of the "financial_terms" field.
func (_u *ContractAnalysisUpdate) ClearFinancialTerms() *ContractAnalysisUpdate {
	_u.mutation.ClearFinancialTerms()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ContractAnalysisUpdate) SetVersion(v int) *ContractAnalysisUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableVersion(v *int) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContractAnalysisUpdate) AddVersion(v int) *ContractAnalysisUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUserFeedback sets the "user_feedback" field.
func (_u *ContractAnalysisUpdate) SetUserFeedback(v entity.UserFeedback) *ContractAnalysisUpdate {
	_u.mutation.SetUserFeedback(v)
	return _u
}

// SetNillableUserFeedback sets the "user_feedback" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableUserFeedback(v *entity.UserFeedback) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetUserFeedback(*v)
	}
	return _u
}

// ClearUserFeedback clears the value of the "user_feedback" field.
func (_u *ContractAnalysisUpdate) ClearUserFeedback() *ContractAnalysisUpdate {
	_u.mutation.ClearUserFeedback()
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *ContractAnalysisUpdate) SetCustomFields(v map[string]string) *ContractAnalysisUpdate {
	_u.mutation.SetCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *ContractAnalysisUpdate) ClearCustomFields() *ContractAnalysisUpdate {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *ContractAnalysisUpdate) SetExpirationDate(v time.Time) *ContractAnalysisUpdate {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableExpirationDate(v *time.Time) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ContractAnalysisUpdate) SetLanguage(v string) *ContractAnalysisUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableLanguage(v *string) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAiModel sets the "ai_model" field.
func (_u *ContractAnalysisUpdate) SetAiModel(v string) *ContractAnalysisUpdate {
	_u.mutation.SetAiModel(v)
	return _u
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableAiModel(v *string) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetAiModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractAnalysisUpdate) SetCreatedAt(v time.Time) *ContractAnalysisUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractAnalysisUpdate) SetNillableCreatedAt(v *time.Time) *ContractAnalysisUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractAnalysisUpdate) SetUpdatedAt(v time.Time) *ContractAnalysisUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ContractAnalysisUpdate) SetUser(v *User) *ContractAnalysisUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ContractAnalysisMutation object of the builder.
func (_u *ContractAnalysisUpdate) Mutation() *ContractAnalysisMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ContractAnalysisUpdate) ClearUser() *ContractAnalysisUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContractAnalysisUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContractAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractAnalysisUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contractanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractAnalysisUpdate) check() error {
	if v, ok := _u.mutation.ContractText(); ok {
		if err := contractanalysis.ContractTextValidator(v); err != nil {
			return &ValidationError{Name: "contract_text", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.contract_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractType(); ok {
		if err := contractanalysis.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.contract_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := contractanalysis.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallScore(); ok {
		if err := contractanalysis.OverallScoreValidator(v); err != nil {
			return &ValidationError{Name: "overall_score", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.overall_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiModel(); ok {
		if err := contractanalysis.AiModelValidator(v); err != nil {
			return &ValidationError{Name: "ai_model", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.ai_model": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContractAnalysis.user"`)
	}
	return nil
}

func (_u *ContractAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractanalysis.Table, contractanalysis.Columns, sqlgraph.NewFieldSpec(contractanalysis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContractText(); ok {
		_spec.SetField(contractanalysis.FieldContractText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(contractanalysis.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(contractanalysis.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldRisks, value)
		})
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(contractanalysis.FieldOpportunities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpportunities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldOpportunities, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(contractanalysis.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(contractanalysis.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(contractanalysis.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyClauses(); ok {
		_spec.SetField(contractanalysis.FieldKeyClauses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyClauses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldKeyClauses, value)
		})
	}
	if _u.mutation.KeyClausesCleared() {
		_spec.ClearField(contractanalysis.FieldKeyClauses, field.TypeJSON)
	}
	if value, ok := _u.mutation.LegalCompliance(); ok {
		_spec.SetField(contractanalysis.FieldLegalCompliance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLegalCompliance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldLegalCompliance, value)
		})
	}
	if _u.mutation.LegalComplianceCleared() {
		_spec.ClearField(contractanalysis.FieldLegalCompliance, field.TypeJSON)
	}
	if value, ok := _u.mutation.NegotiationPoints(); ok {
		_spec.SetField(contractanalysis.FieldNegotiationPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNegotiationPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldNegotiationPoints, value)
		})
	}
	if _u.mutation.NegotiationPointsCleared() {
		_spec.ClearField(contractanalysis.FieldNegotiationPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContractDuration(); ok {
		_spec.SetField(contractanalysis.FieldContractDuration, field.TypeString, value)
	}
	if _u.mutation.ContractDurationCleared() {
		_spec.ClearField(contractanalysis.FieldContractDuration, field.TypeString)
	}
	if value, ok := _u.mutation.TerminationConditions(); ok {
		_spec.SetField(contractanalysis.FieldTerminationConditions, field.TypeString, value)
	}
	if _u.mutation.TerminationConditionsCleared() {
		_spec.ClearField(contractanalysis.FieldTerminationConditions, field.TypeString)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(contractanalysis.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(contractanalysis.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompensationStructure(); ok {
		_spec.SetField(contractanalysis.FieldCompensationStructure, field.TypeJSON, value)
	}
	if _u.mutation.CompensationStructureCleared() {
		_spec.ClearField(contractanalysis.FieldCompensationStructure, field.TypeJSON)
	}
	if value, ok := _u.mutation.PerformanceMetrics(); ok {
		_spec.SetField(contractanalysis.FieldPerformanceMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPerformanceMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldPerformanceMetrics, value)
		})
	}
	if _u.mutation.PerformanceMetricsCleared() {
		_spec.ClearField(contractanalysis.FieldPerformanceMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntellectualPropertyClauses(); ok {
		_spec.SetField(contractanalysis.FieldIntellectualPropertyClauses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntellectualPropertyClauses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldIntellectualPropertyClauses, value)
		})
	}
	if _u.mutation.IntellectualPropertyClausesCleared() {
		_spec.ClearField(contractanalysis.FieldIntellectualPropertyClauses, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinancialTerms(); ok {
		_spec.SetField(contractanalysis.FieldFinancialTerms, field.TypeJSON, value)
	}
	if _u.mutation.FinancialTermsCleared() {
		_spec.ClearField(contractanalysis.FieldFinancialTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(contractanalysis.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(contractanalysis.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserFeedback(); ok {
		_spec.SetField(contractanalysis.FieldUserFeedback, field.TypeJSON, value)
	}
	if _u.mutation.UserFeedbackCleared() {
		_spec.ClearField(contractanalysis.FieldUserFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(contractanalysis.FieldCustomFields, field.TypeJSON, value)
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(contractanalysis.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(contractanalysis.FieldExpirationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(contractanalysis.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiModel(); ok {
		_spec.SetField(contractanalysis.FieldAiModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contractanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contractanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractanalysis.UserTable,
			Columns: []string{contractanalysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractanalysis.UserTable,
			Columns: []string{contractanalysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContractAnalysisUpdateOne is the builder for updating a single ContractAnalysis entity.
type ContractAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContractAnalysisMutation
}

// SetUserID sets the "user_id" field.
func (_u *ContractAnalysisUpdateOne) SetUserID(v uuid.UUID) *ContractAnalysisUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableUserID(v *uuid.UUID) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetContractText sets the "contract_text" field.
func (_u *ContractAnalysisUpdateOne) SetContractText(v string) *ContractAnalysisUpdateOne {
	_u.mutation.SetContractText(v)
	return _u
}

// SetNillableContractText sets the "contract_text" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableContractText(v *string) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetContractText(*v)
	}
	return _u
}

// SetContractType sets the "contract_type" field.
func (_u *ContractAnalysisUpdateOne) SetContractType(v string) *ContractAnalysisUpdateOne {
	_u.mutation.SetContractType(v)
	return _u
}

// SetNillableContractType sets the "contract_type" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableContractType(v *string) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetContractType(*v)
	}
	return _u
}

// SetRisks sets the "risks" field.
func (_u *ContractAnalysisUpdateOne) SetRisks(v []entity.Risk) *ContractAnalysisUpdateOne {
	_u.mutation.SetRisks(v)
	return _u
}

// AppendRisks appends value to the "risks" field.
func (_u *ContractAnalysisUpdateOne) AppendRisks(v []entity.Risk) *ContractAnalysisUpdateOne {
	_u.mutation.AppendRisks(v)
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *ContractAnalysisUpdateOne) SetOpportunities(v []entity.Opportunity) *ContractAnalysisUpdateOne {
	_u.mutation.SetOpportunities(v)
	return _u
}

// AppendOpportunities appends value to the "opportunities" field.
func (_u *ContractAnalysisUpdateOne) AppendOpportunities(v []entity.Opportunity) *ContractAnalysisUpdateOne {
	_u.mutation.AppendOpportunities(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ContractAnalysisUpdateOne) SetSummary(v string) *ContractAnalysisUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableSummary(v *string) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ContractAnalysisUpdateOne) SetRecommendations(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *ContractAnalysisUpdateOne) AppendRecommendations(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ContractAnalysisUpdateOne) ClearRecommendations() *ContractAnalysisUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetKeyClauses sets the "key_clauses" field.
func (_u *ContractAnalysisUpdateOne) SetKeyClauses(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.SetKeyClauses(v)
	return _u
}

// AppendKeyClauses appends value to the "key_clauses" field.
func (_u *ContractAnalysisUpdateOne) AppendKeyClauses(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.AppendKeyClauses(v)
	return _u
}

// ClearKeyClauses clears the value of the "key_clauses" field.
func (_u *ContractAnalysisUpdateOne) ClearKeyClauses() *ContractAnalysisUpdateOne {
	_u.mutation.ClearKeyClauses()
	return _u
}

// SetLegalCompliance sets the "legal_compliance" field.
func (_u *ContractAnalysisUpdateOne) SetLegalCompliance(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.SetLegalCompliance(v)
	return _u
}

// AppendLegalCompliance appends value to the "legal_compliance" field.
func (_u *ContractAnalysisUpdateOne) AppendLegalCompliance(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.AppendLegalCompliance(v)
	return _u
}

// ClearLegalCompliance clears the value of the "legal_compliance" field.
func (_u *ContractAnalysisUpdateOne) ClearLegalCompliance() *ContractAnalysisUpdateOne {
	_u.mutation.ClearLegalCompliance()
	return _u
}

// SetNegotiationPoints sets the "negotiation_points" field.
func (_u *ContractAnalysisUpdateOne) SetNegotiationPoints(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.SetNegotiationPoints(v)
	return _u
}

// AppendNegotiationPoints appends value to the "negotiation_points" field.
func (_u *ContractAnalysisUpdateOne) AppendNegotiationPoints(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.AppendNegotiationPoints(v)
	return _u
}

// ClearNegotiationPoints clears the value of the "negotiation_points" field.
func (_u *ContractAnalysisUpdateOne) ClearNegotiationPoints() *ContractAnalysisUpdateOne {
	_u.mutation.ClearNegotiationPoints()
	return _u
}

// SetContractDuration sets the "contract_duration" field.
func (_u *ContractAnalysisUpdateOne) SetContractDuration(v string) *ContractAnalysisUpdateOne {
	_u.mutation.SetContractDuration(v)
	return _u
}

// SetNillableContractDuration sets the "contract_duration" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableContractDuration(v *string) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetContractDuration(*v)
	}
	return _u
}

// ClearContractDuration clears the value of the "contract_duration" field.
func (_u *ContractAnalysisUpdateOne) ClearContractDuration() *ContractAnalysisUpdateOne {
	_u.mutation.ClearContractDuration()
	return _u
}

// SetTerminationConditions sets the "termination_conditions" field.
func (_u *ContractAnalysisUpdateOne) SetTerminationConditions(v string) *ContractAnalysisUpdateOne {
	_u.mutation.SetTerminationConditions(v)
	return _u
}

// SetNillableTerminationConditions sets the "termination_conditions" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableTerminationConditions(v *string) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetTerminationConditions(*v)
	}
	return _u
}

// ClearTerminationConditions clears the value of the "termination_conditions" field.
func (_u *ContractAnalysisUpdateOne) ClearTerminationConditions() *ContractAnalysisUpdateOne {
	_u.mutation.ClearTerminationConditions()
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *ContractAnalysisUpdateOne) SetOverallScore(v int) *ContractAnalysisUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableOverallScore(v *int) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ContractAnalysisUpdateOne) AddOverallScore(v int) *ContractAnalysisUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetCompensationStructure sets the "compensation_structure" field.
func (_u *ContractAnalysisUpdateOne) SetCompensationStructure(v entity.CompensationStructure) *ContractAnalysisUpdateOne {
	_u.mutation.SetCompensationStructure(v)
	return _u
}

// SetNillableCompensationStructure sets the "compensation_structure" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableCompensationStructure(v *entity.CompensationStructure) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetCompensationStructure(*v)
	}
	return _u
}

// ClearCompensationStructure clears the value of the "compensation_structure" field.
func (_u *ContractAnalysisUpdateOne) ClearCompensationStructure() *ContractAnalysisUpdateOne {
	_u.mutation.ClearCompensationStructure()
	return _u
}

// SetPerformanceMetrics sets the "performance_metrics" field.
func (_u *ContractAnalysisUpdateOne) SetPerformanceMetrics(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.SetPerformanceMetrics(v)
	return _u
}

// AppendPerformanceMetrics appends value to the "performance_metrics" field.
func (_u *ContractAnalysisUpdateOne) AppendPerformanceMetrics(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.AppendPerformanceMetrics(v)
	return _u
}

// ClearPerformanceMetrics clears the value of the "performance_metrics" field.
func (_u *ContractAnalysisUpdateOne) ClearPerformanceMetrics() *ContractAnalysisUpdateOne {
	_u.mutation.ClearPerformanceMetrics()
	return _u
}

// SetIntellectualPropertyClauses sets the "intellectual_property_clauses" field.
func (_u *ContractAnalysisUpdateOne) SetIntellectualPropertyClauses(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.SetIntellectualPropertyClauses(v)
	return _u
}

// AppendIntellectualPropertyClauses appends value to the "intellectual_property_clauses" field.
func (_u *ContractAnalysisUpdateOne) AppendIntellectualPropertyClauses(v []string) *ContractAnalysisUpdateOne {
	_u.mutation.AppendIntellectualPropertyClauses(v)
	return _u
}

// ClearIntellectualPropertyClauses clears the value of the "intellectual_property_clauses" field.
func (_u *ContractAnalysisUpdateOne) ClearIntellectualPropertyClauses() *ContractAnalysisUpdateOne {
	_u.mutation.ClearIntellectualPropertyClauses()
	return _u
}

// SetFinancialTerms sets the "financial_terms" field.
func (_u *ContractAnalysisUpdateOne) SetFinancialTerms(v entity.FinancialTerms) *ContractAnalysisUpdateOne {
	_u.mutation.SetFinancialTerms(v)
	return _u
}

// SetNillableFinancialTerms sets the "financial_terms" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableFinancialTerms(v *entity.FinancialTerms) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetFinancialTerms(*v)
	}
	return _u
}

// ClearFinancialTerms clears the value of the "financial_terms" field.
func (_u *ContractAnalysisUpdateOne) ClearFinancialTerms() *ContractAnalysisUpdateOne {
	_u.mutation.ClearFinancialTerms()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ContractAnalysisUpdateOne) SetVersion(v int) *ContractAnalysisUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableVersion(v *int) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ContractAnalysisUpdateOne) AddVersion(v int) *ContractAnalysisUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUserFeedback sets the "user_feedback" field.
func (_u *ContractAnalysisUpdateOne) SetUserFeedback(v entity.UserFeedback) *ContractAnalysisUpdateOne {
	_u.mutation.SetUserFeedback(v)
	return _u
}

// SetNillableUserFeedback sets the "user_feedback" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableUserFeedback(v *entity.UserFeedback) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetUserFeedback(*v)
	}
	return _u
}

// ClearUserFeedback clears the value of the "user_feedback" field.
func (_u *ContractAnalysisUpdateOne) ClearUserFeedback() *ContractAnalysisUpdateOne {
	_u.mutation.ClearUserFeedback()
	return _u
}

// SetCustomFields sets the "custom_fields" field.
func (_u *ContractAnalysisUpdateOne) SetCustomFields(v map[string]string) *ContractAnalysisUpdateOne {
	_u.mutation.SetCustomFields(v)
	return _u
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (_u *ContractAnalysisUpdateOne) ClearCustomFields() *ContractAnalysisUpdateOne {
	_u.mutation.ClearCustomFields()
	return _u
}

// SetExpirationDate sets the "expiration_date" field.
func (_u *ContractAnalysisUpdateOne) SetExpirationDate(v time.Time) *ContractAnalysisUpdateOne {
	_u.mutation.SetExpirationDate(v)
	return _u
}

// SetNillableExpirationDate sets the "expiration_date" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableExpirationDate(v *time.Time) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetExpirationDate(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ContractAnalysisUpdateOne) SetLanguage(v string) *ContractAnalysisUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableLanguage(v *string) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAiModel sets the "ai_model" field.
func (_u *ContractAnalysisUpdateOne) SetAiModel(v string) *ContractAnalysisUpdateOne {
	_u.mutation.SetAiModel(v)
	return _u
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableAiModel(v *string) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetAiModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ContractAnalysisUpdateOne) SetCreatedAt(v time.Time) *ContractAnalysisUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ContractAnalysisUpdateOne) SetNillableCreatedAt(v *time.Time) *ContractAnalysisUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContractAnalysisUpdateOne) SetUpdatedAt(v time.Time) *ContractAnalysisUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ContractAnalysisUpdateOne) SetUser(v *User) *ContractAnalysisUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ContractAnalysisMutation object of the builder.
func (_u *ContractAnalysisUpdateOne) Mutation() *ContractAnalysisMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ContractAnalysisUpdateOne) ClearUser() *ContractAnalysisUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ContractAnalysisUpdate builder.
func (_u *ContractAnalysisUpdateOne) Where(ps ...predicate.ContractAnalysis) *ContractAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContractAnalysisUpdateOne) Select(field string, fields ...string) *ContractAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContractAnalysis entity.
func (_u *ContractAnalysisUpdateOne) Save(ctx context.Context) (*ContractAnalysis, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContractAnalysisUpdateOne) SaveX(ctx context.Context) *ContractAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContractAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContractAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContractAnalysisUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contractanalysis.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContractAnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.ContractText(); ok {
		if err := contractanalysis.ContractTextValidator(v); err != nil {
			return &ValidationError{Name: "contract_text", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.contract_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContractType(); ok {
		if err := contractanalysis.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.contract_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := contractanalysis.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallScore(); ok {
		if err := contractanalysis.OverallScoreValidator(v); err != nil {
			return &ValidationError{Name: "overall_score", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.overall_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiModel(); ok {
		if err := contractanalysis.AiModelValidator(v); err != nil {
			return &ValidationError{Name: "ai_model", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.ai_model": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContractAnalysis.user"`)
	}
	return nil
}

func (_u *ContractAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *ContractAnalysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contractanalysis.Table, contractanalysis.Columns, sqlgraph.NewFieldSpec(contractanalysis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContractAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contractanalysis.FieldID)
		for _, f := range fields {
			if !contractanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contractanalysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContractText(); ok {
		_spec.SetField(contractanalysis.FieldContractText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContractType(); ok {
		_spec.SetField(contractanalysis.FieldContractType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Risks(); ok {
		_spec.SetField(contractanalysis.FieldRisks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRisks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldRisks, value)
		})
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(contractanalysis.FieldOpportunities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOpportunities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldOpportunities, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(contractanalysis.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(contractanalysis.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(contractanalysis.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeyClauses(); ok {
		_spec.SetField(contractanalysis.FieldKeyClauses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyClauses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldKeyClauses, value)
		})
	}
	if _u.mutation.KeyClausesCleared() {
		_spec.ClearField(contractanalysis.FieldKeyClauses, field.TypeJSON)
	}
	if value, ok := _u.mutation.LegalCompliance(); ok {
		_spec.SetField(contractanalysis.FieldLegalCompliance, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLegalCompliance(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldLegalCompliance, value)
		})
	}
	if _u.mutation.LegalComplianceCleared() {
		_spec.ClearField(contractanalysis.FieldLegalCompliance, field.TypeJSON)
	}
	if value, ok := _u.mutation.NegotiationPoints(); ok {
		_spec.SetField(contractanalysis.FieldNegotiationPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNegotiationPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldNegotiationPoints, value)
		})
	}
	if _u.mutation.NegotiationPointsCleared() {
		_spec.ClearField(contractanalysis.FieldNegotiationPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.ContractDuration(); ok {
		_spec.SetField(contractanalysis.FieldContractDuration, field.TypeString, value)
	}
	if _u.mutation.ContractDurationCleared() {
		_spec.ClearField(contractanalysis.FieldContractDuration, field.TypeString)
	}
	if value, ok := _u.mutation.TerminationConditions(); ok {
		_spec.SetField(contractanalysis.FieldTerminationConditions, field.TypeString, value)
	}
	if _u.mutation.TerminationConditionsCleared() {
		_spec.ClearField(contractanalysis.FieldTerminationConditions, field.TypeString)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(contractanalysis.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(contractanalysis.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompensationStructure(); ok {
		_spec.SetField(contractanalysis.FieldCompensationStructure, field.TypeJSON, value)
	}
	if _u.mutation.CompensationStructureCleared() {
		_spec.ClearField(contractanalysis.FieldCompensationStructure, field.TypeJSON)
	}
	if value, ok := _u.mutation.PerformanceMetrics(); ok {
		_spec.SetField(contractanalysis.FieldPerformanceMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPerformanceMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldPerformanceMetrics, value)
		})
	}
	if _u.mutation.PerformanceMetricsCleared() {
		_spec.ClearField(contractanalysis.FieldPerformanceMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntellectualPropertyClauses(); ok {
		_spec.SetField(contractanalysis.FieldIntellectualPropertyClauses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIntellectualPropertyClauses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contractanalysis.FieldIntellectualPropertyClauses, value)
		})
	}
	if _u.mutation.IntellectualPropertyClausesCleared() {
		_spec.ClearField(contractanalysis.FieldIntellectualPropertyClauses, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinancialTerms(); ok {
		_spec.SetField(contractanalysis.FieldFinancialTerms, field.TypeJSON, value)
	}
	if _u.mutation.FinancialTermsCleared() {
		_spec.ClearField(contractanalysis.FieldFinancialTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(contractanalysis.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(contractanalysis.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserFeedback(); ok {
		_spec.SetField(contractanalysis.FieldUserFeedback, field.TypeJSON, value)
	}
	if _u.mutation.UserFeedbackCleared() {
		_spec.ClearField(contractanalysis.FieldUserFeedback, field.TypeJSON)
	}
	if value, ok := _u.mutation.CustomFields(); ok {
		_spec.SetField(contractanalysis.FieldCustomFields, field.TypeJSON, value)
	}
	if _u.mutation.CustomFieldsCleared() {
		_spec.ClearField(contractanalysis.FieldCustomFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpirationDate(); ok {
		_spec.SetField(contractanalysis.FieldExpirationDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(contractanalysis.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiModel(); ok {
		_spec.SetField(contractanalysis.FieldAiModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(contractanalysis.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contractanalysis.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractanalysis.UserTable,
			Columns: []string{contractanalysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contractanalysis.UserTable,
			Columns: []string{contractanalysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContractAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contractanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
