// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/contractwise/backend/gen/ent/contractanalysis"
	"github.com/contractwise/backend/gen/ent/user"
	"github.com/contractwise/backend/internal/entity"
	"github.com/google/uuid"
)

// ContractAnalysisCreate is the builder for creating a ContractAnalysis entity.
type ContractAnalysisCreate struct {
	config
	mutation *ContractAnalysisMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ContractAnalysisCreate) SetUserID(v uuid.UUID) *ContractAnalysisCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetContractText sets the "contract_text" field.
func (_c *ContractAnalysisCreate) SetContractText(v string) *ContractAnalysisCreate {
	_c.mutation.SetContractText(v)
	return _c
}

// SetContractType sets the "contract_type" field.
func (_c *ContractAnalysisCreate) SetContractType(v string) *ContractAnalysisCreate {
	_c.mutation.SetContractType(v)
	return _c
}

// SetRisks sets the "risks" field.
func (_c *ContractAnalysisCreate) SetRisks(v []entity.Risk) *ContractAnalysisCreate {
	_c.mutation.SetRisks(v)
	return _c
}

// SetOpportunities sets the "opportunities" field.
func (_c *ContractAnalysisCreate) SetOpportunities(v []entity.Opportunity) *ContractAnalysisCreate {
	_c.mutation.SetOpportunities(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ContractAnalysisCreate) SetSummary(v string) *ContractAnalysisCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *ContractAnalysisCreate) SetRecommendations(v []string) *ContractAnalysisCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetKeyClauses sets the "key_clauses" field.
func (_c *ContractAnalysisCreate) SetKeyClauses(v []string) *ContractAnalysisCreate {
	_c.mutation.SetKeyClauses(v)
	return _c
}

// SetLegalCompliance sets the "legal_compliance" field.
func (_c *ContractAnalysisCreate) SetLegalCompliance(v []string) *ContractAnalysisCreate {
	_c.mutation.SetLegalCompliance(v)
	return _c
}

// SetNegotiationPoints sets the "negotiation_points" field.
func (_c *ContractAnalysisCreate) SetNegotiationPoints(v []string) *ContractAnalysisCreate {
	_c.mutation.SetNegotiationPoints(v)
	return _c
}

// SetContractDuration sets the "contract_duration" field.
func (_c *ContractAnalysisCreate) SetContractDuration(v string) *ContractAnalysisCreate {
	_c.mutation.SetContractDuration(v)
	return _c
}

// SetNillableContractDuration sets the "contract_duration" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableContractDuration(v *string) *ContractAnalysisCreate {
	if v != nil {
		_c.SetContractDuration(*v)
	}
	return _c
}

// SetTerminationConditions sets the "termination_conditions" field.
func (_c *ContractAnalysisCreate) SetTerminationConditions(v string) *ContractAnalysisCreate {
	_c.mutation.SetTerminationConditions(v)
	return _c
}

// SetNillableTerminationConditions sets the "termination_conditions" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableTerminationConditions(v *string) *ContractAnalysisCreate {
	if v != nil {
		_c.SetTerminationConditions(*v)
	}
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *ContractAnalysisCreate) SetOverallScore(v int) *ContractAnalysisCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetCompensationStructure sets the "compensation_structure" field.
func (_c *ContractAnalysisCreate) SetCompensationStructure(v entity.CompensationStructure) *ContractAnalysisCreate {
	_c.mutation.SetCompensationStructure(v)
	return _c
}

// SetNillableCompensationStructure sets the "compensation_structure" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableCompensationStructure(v *entity.CompensationStructure) *ContractAnalysisCreate {
	if v != nil {
		_c.SetCompensationStructure(*v)
	}
	return _c
}

// SetPerformanceMetrics sets the "performance_metrics" field.
func (_c *ContractAnalysisCreate) SetPerformanceMetrics(v []string) *ContractAnalysisCreate {
	_c.mutation.SetPerformanceMetrics(v)
	return _c
}

// SetIntellectualPropertyClauses sets the "intellectual_property_clauses" field.
func (_c *ContractAnalysisCreate) SetIntellectualPropertyClauses(v []string) *ContractAnalysisCreate {
	_c.mutation.SetIntellectualPropertyClauses(v)
	return _c
}

// SetFinancialTerms sets the "financial_terms" field.
func (_c *ContractAnalysisCreate) SetFinancialTerms(v entity.FinancialTerms) *ContractAnalysisCreate {
	_c.mutation.SetFinancialTerms(v)
	return _c
}

// SetNillableFinancialTerms sets the "financial_terms" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableFinancialTerms(v *entity.FinancialTerms) *ContractAnalysisCreate {
	if v != nil {
		_c.SetFinancialTerms(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ContractAnalysisCreate) SetVersion(v int) *ContractAnalysisCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableVersion(v *int) *ContractAnalysisCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetUserFeedback sets the "user_feedback" field.
func (_c *ContractAnalysisCreate) SetUserFeedback(v entity.UserFeedback) *ContractAnalysisCreate {
	_c.mutation.SetUserFeedback(v)
	return _c
}

// SetNillableUserFeedback sets the "user_feedback" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableUserFeedback(v *entity.UserFeedback) *ContractAnalysisCreate {
	if v != nil {
		_c.SetUserFeedback(*v)
	}
	return _c
}

// SetCustomFields sets the "custom_fields" field.
func (_c *ContractAnalysisCreate) SetCustomFields(v map[string]string) *ContractAnalysisCreate {
	_c.mutation.SetCustomFields(v)
	return _c
}

// SetExpirationDate sets the "expiration_date" field.
func (_c *ContractAnalysisCreate) SetExpirationDate(v time.Time) *ContractAnalysisCreate {
	_c.mutation.SetExpirationDate(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ContractAnalysisCreate) SetLanguage(v string) *ContractAnalysisCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableLanguage(v *string) *ContractAnalysisCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetAiModel sets the "ai_model" field.
func (_c *ContractAnalysisCreate) SetAiModel(v string) *ContractAnalysisCreate {
	_c.mutation.SetAiModel(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContractAnalysisCreate) SetCreatedAt(v time.Time) *ContractAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableCreatedAt(v *time.Time) *ContractAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContractAnalysisCreate) SetUpdatedAt(v time.Time) *ContractAnalysisCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableUpdatedAt(v *time.Time) *ContractAnalysisCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContractAnalysisCreate) SetID(v uuid.UUID) *ContractAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContractAnalysisCreate) SetNillableID(v *uuid.UUID) *ContractAnalysisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ContractAnalysisCreate) SetUser(v *User) *ContractAnalysisCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ContractAnalysisMutation object of the builder.
func (_c *ContractAnalysisCreate) Mutation() *ContractAnalysisMutation {
	return _c.mutation
}

// Save creates the ContractAnalysis in the database.
func (_c *ContractAnalysisCreate) Save(ctx context.Context) (*ContractAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContractAnalysisCreate) SaveX(ctx context.Context) *ContractAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContractAnalysisCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := contractanalysis.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := contractanalysis.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contractanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contractanalysis.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contractanalysis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContractAnalysisCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ContractAnalysis.user_id"`)}
	}
	if _, ok := _c.mutation.ContractText(); !ok {
		return &ValidationError{Name: "contract_text", err: errors.New(`ent: missing required field "ContractAnalysis.contract_text"`)}
	}
	if v, ok := _c.mutation.ContractText(); ok {
		if err := contractanalysis.ContractTextValidator(v); err != nil {
			return &ValidationError{Name: "contract_text", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.contract_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContractType(); !ok {
		return &ValidationError{Name: "contract_type", err: errors.New(`ent: missing required field "ContractAnalysis.contract_type"`)}
	}
	if v, ok := _c.mutation.ContractType(); ok {
		if err := contractanalysis.ContractTypeValidator(v); err != nil {
			return &ValidationError{Name: "contract_type", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.contract_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Risks(); !ok {
		return &ValidationError{Name: "risks", err: errors.New(`ent: missing required field "ContractAnalysis.risks"`)}
	}
	if _, ok := _c.mutation.Opportunities(); !ok {
		return &ValidationError{Name: "opportunities", err: errors.New(`ent: missing required field "ContractAnalysis.opportunities"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "ContractAnalysis.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := contractanalysis.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "ContractAnalysis.overall_score"`)}
	}
	if v, ok := _c.mutation.OverallScore(); ok {
		if err := contractanalysis.OverallScoreValidator(v); err != nil {
			return &ValidationError{Name: "overall_score", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.overall_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ContractAnalysis.version"`)}
	}
	if _, ok := _c.mutation.ExpirationDate(); !ok {
		return &ValidationError{Name: "expiration_date", err: errors.New(`ent: missing required field "ContractAnalysis.expiration_date"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ContractAnalysis.language"`)}
	}
	if _, ok := _c.mutation.AiModel(); !ok {
		return &ValidationError{Name: "ai_model", err: errors.New(`ent: missing required field "ContractAnalysis.ai_model"`)}
	}
	if v, ok := _c.mutation.AiModel(); ok {
		if err := contractanalysis.AiModelValidator(v); err != nil {
			return &ValidationError{Name: "ai_model", err: fmt.Errorf(`ent: validator failed for field "ContractAnalysis.ai_model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContractAnalysis.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ContractAnalysis.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "ContractAnalysis.user"`)}
	}
	return nil
}

func (_c *ContractAnalysisCreate) sqlSave(ctx context.Context) (*ContractAnalysis, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContractAnalysisCreate) createSpec() (*ContractAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &ContractAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contractanalysis.Table, sqlgraph.NewFieldSpec(contractanalysis.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContractText(); ok {
		_spec.SetField(contractanalysis.FieldContractText, field.TypeString, value)
		_node.ContractText = value
	}
	if value, ok := _c.mutation.ContractType(); ok {
		_spec.SetField(contractanalysis.FieldContractType, field.TypeString, value)
		_node.ContractType = value
	}
	if value, ok := _c.mutation.Risks(); ok {
		_spec.SetField(contractanalysis.FieldRisks, field.TypeJSON, value)
		_node.Risks = value
	}
	if value, ok := _c.mutation.Opportunities(); ok {
		_spec.SetField(contractanalysis.FieldOpportunities, field.TypeJSON, value)
		_node.Opportunities = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(contractanalysis.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(contractanalysis.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.KeyClauses(); ok {
		_spec.SetField(contractanalysis.FieldKeyClauses, field.TypeJSON, value)
		_node.KeyClauses = value
	}
	if value, ok := _c.mutation.LegalCompliance(); ok {
		_spec.SetField(contractanalysis.FieldLegalCompliance, field.TypeJSON, value)
		_node.LegalCompliance = value
	}
	if value, ok := _c.mutation.NegotiationPoints(); ok {
		_spec.SetField(contractanalysis.FieldNegotiationPoints, field.TypeJSON, value)
		_node.NegotiationPoints = value
	}
	if value, ok := _c.mutation.ContractDuration(); ok {
		_spec.SetField(contractanalysis.FieldContractDuration, field.TypeString, value)
		_node.ContractDuration = value
	}
	if value, ok := _c.mutation.TerminationConditions(); ok {
		_spec.SetField(contractanalysis.FieldTerminationConditions, field.TypeString, value)
		_node.TerminationConditions = value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(contractanalysis.FieldOverallScore, field.TypeInt, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.CompensationStructure(); ok {
		_spec.SetField(contractanalysis.FieldCompensationStructure, field.TypeJSON, value)
		_node.CompensationStructure = value
	}
	if value, ok := _c.mutation.PerformanceMetrics(); ok {
		_spec.SetField(contractanalysis.FieldPerformanceMetrics, field.TypeJSON, value)
		_node.PerformanceMetrics = value
	}
	if value, ok := _c.mutation.IntellectualPropertyClauses(); ok {
		_spec.SetField(contractanalysis.FieldIntellectualPropertyClauses, field.TypeJSON, value)
		_node.IntellectualPropertyClauses = value
	}
	if value, ok := _c.mutation.FinancialTerms(); ok {
		_spec.SetField(contractanalysis.FieldFinancialTerms, field.TypeJSON, value)
		_node.FinancialTerms = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(contractanalysis.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.UserFeedback(); ok {
		_spec.SetField(contractanalysis.FieldUserFeedback, field.TypeJSON, value)
		_node.UserFeedback = value
	}
	if value, ok := _c.mutation.CustomFields(); ok {
		_spec.SetField(contractanalysis.FieldCustomFields, field.TypeJSON, value)
		_node.CustomFields = value
	}
	if value, ok := _c.mutation.ExpirationDate(); ok {
		_spec.SetField(contractanalysis.FieldExpirationDate, field.TypeTime, value)
		_node.ExpirationDate = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(contractanalysis.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.AiModel(); ok {
		_spec.SetField(contractanalysis.FieldAiModel, field.TypeString, value)
		_node.AiModel = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contractanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contractanalysis.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContractAnalysisCreateBulk is the builder for creating many ContractAnalysis entities in bulk.
type ContractAnalysisCreateBulk struct {
	config
	err      error
	builders []*ContractAnalysisCreate
}

// Save creates the ContractAnalysis entities in the database.
func (_c *ContractAnalysisCreateBulk) Save(ctx context.Context) ([]*ContractAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContractAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContractAnalysisMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ContractAnalysisCreateBulk) SaveX(ctx context.Context) []*ContractAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContractAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContractAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
