// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/contractwise/backend/gen/ent/contractanalysis"
	"github.com/contractwise/backend/gen/ent/predicate"
	"github.com/contractwise/backend/gen/ent/user"
	"github.com/contractwise/backend/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContractAnalysis = "ContractAnalysis"
	TypeUser             = "User"
)

// ContractAnalysisMutation represents an operation that mutates the ContractAnalysis nodes in the graph.
type ContractAnalysisMutation struct {
	config
	op                                  Op
	typ                                 string
	id                                  *uuid.UUID
	contract_text                       *string
	contract_type                       *string
	risks                               *[]entity.Risk
	appendrisks                         []entity.Risk
	opportunities                       *[]entity.Opportunity
	appendopportunities                 []entity.Opportunity
	summary                             *string
	recommendations                     *[]string
	appendrecommendations               []string
	key_clauses                         *[]string
	appendkey_clauses                   []string
	legal_compliance                    *[]string
	appendlegal_compliance              []string
	negotiation_points                  *[]string
	appendnegotiation_points            []string
	contract_duration                   *string
	termination_conditions              *string
	overall_score                       *int
	addoverall_score                    *int
	compensation_structure              *entity.CompensationStructure
	performance_metrics                 *[]string
	appendperformance_metrics           []string
	intellectual_property_clauses       *[]string
	appendintellectual_property_clauses []string
	financial_terms                     *entity.FinancialTerms
	version                             *int
	addversion                          *int
	user_feedback                       *entity.UserFeedback
	custom_fields                       *map[string]string
	expiration_date                     *time.Time
	language                            *string
	ai_model                            *string
	created_at                          *time.Time
	updated_at                          *time.Time
	clearedFields                       map[string]struct{}
	user                                *uuid.UUID
	cleareduser                         bool
	done                                bool
	oldValue                            func(context.Context) (*ContractAnalysis, error)
	predicates                          []predicate.ContractAnalysis
}

var _ ent.Mutation = (*ContractAnalysisMutation)(nil)

// contractanalysisOption allows management of the mutation configuration using functional options.
type contractanalysisOption func(*ContractAnalysisMutation)

// newContractAnalysisMutation creates new mutation for the ContractAnalysis entity.
func newContractAnalysisMutation(c config, op Op, opts ...contractanalysisOption) *ContractAnalysisMutation {
	m := &ContractAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeContractAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContractAnalysisID sets the ID field of the mutation.
func withContractAnalysisID(id uuid.UUID) contractanalysisOption {
	return func(m *ContractAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *ContractAnalysis
		)
		m.oldValue = func(ctx context.Context) (*ContractAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContractAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContractAnalysis sets the old ContractAnalysis of the mutation.
func withContractAnalysis(node *ContractAnalysis) contractanalysisOption {
	return func(m *ContractAnalysisMutation) {
		m.oldValue = func(context.Context) (*ContractAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContractAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContractAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContractAnalysis entities.
func (m *ContractAnalysisMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContractAnalysisMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContractAnalysisMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContractAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ContractAnalysisMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ContractAnalysisMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ContractAnalysisMutation) ResetUserID() {
	m.user = nil
}

// SetContractText sets the "contract_text" field.
func (m *ContractAnalysisMutation) SetContractText(s string) {
	m.contract_text = &s
}

// ContractText returns the value of the "contract_text" field in the mutation.
func (m *ContractAnalysisMutation) ContractText() (r string, exists bool) {
	v := m.contract_text
	if v == nil {
		return
	}
	return *v, true
}

// OldContractText returns the old "contract_text" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldContractText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractText: %w", err)
	}
	return oldValue.ContractText, nil
}

// ResetContractText resets all changes to the "contract_text" field.
func (m *ContractAnalysisMutation) ResetContractText() {
	m.contract_text = nil
}

// SetContractType sets the "contract_type" field.
func (m *ContractAnalysisMutation) SetContractType(s string) {
	m.contract_type = &s
}

// ContractType returns the value of the "contract_type" field in the mutation.
func (m *ContractAnalysisMutation) ContractType() (r string, exists bool) {
	v := m.contract_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContractType returns the old "contract_type" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldContractType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractType: %w", err)
	}
	return oldValue.ContractType, nil
}

// ResetContractType resets all changes to the "contract_type" field.
func (m *ContractAnalysisMutation) ResetContractType() {
	m.contract_type = nil
}

// SetRisks sets the "risks" field.
func (m *ContractAnalysisMutation) SetRisks(e []entity.Risk) {
	m.risks = &e
	m.appendrisks = nil
}

// Risks returns the value of the "risks" field in the mutation.
func (m *ContractAnalysisMutation) Risks() (r []entity.Risk, exists bool) {
	v := m.risks
	if v == nil {
		return
	}
	return *v, true
}

// OldRisks returns the old "risks" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldRisks(ctx context.Context) (v []entity.Risk, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisks: %w", err)
	}
	return oldValue.Risks, nil
}

// AppendRisks adds e to the "risks" field.
func (m *ContractAnalysisMutation) AppendRisks(e []entity.Risk) {
	m.appendrisks = append(m.appendrisks, e...)
}

// AppendedRisks returns the list of values that were appended to the "risks" field in this mutation.
func (m *ContractAnalysisMutation) AppendedRisks() ([]entity.Risk, bool) {
	if len(m.appendrisks) == 0 {
		return nil, false
	}
	return m.appendrisks, true
}

// ResetRisks resets all changes to the "risks" field.
func (m *ContractAnalysisMutation) ResetRisks() {
	m.risks = nil
	m.appendrisks = nil
}

// SetOpportunities sets the "opportunities" field.
func (m *ContractAnalysisMutation) SetOpportunities(e []entity.Opportunity) {
	m.opportunities = &e
	m.appendopportunities = nil
}

// Opportunities returns the value of the "opportunities" field in the mutation.
func (m *ContractAnalysisMutation) Opportunities() (r []entity.Opportunity, exists bool) {
	v := m.opportunities
	if v == nil {
		return
	}
	return *v, true
}

// OldOpportunities returns the old "opportunities" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldOpportunities(ctx context.Context) (v []entity.Opportunity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpportunities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpportunities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpportunities: %w", err)
	}
	return oldValue.Opportunities, nil
}

// AppendOpportunities adds e to the "opportunities" field.
func (m *ContractAnalysisMutation) AppendOpportunities(e []entity.Opportunity) {
	m.appendopportunities = append(m.appendopportunities, e...)
}

// AppendedOpportunities returns the list of values that were appended to the "opportunities" field in this mutation.
func (m *ContractAnalysisMutation) AppendedOpportunities() ([]entity.Opportunity, bool) {
	if len(m.appendopportunities) == 0 {
		return nil, false
	}
	return m.appendopportunities, true
}

// ResetOpportunities resets all changes to the "opportunities" field.
func (m *ContractAnalysisMutation) ResetOpportunities() {
	m.opportunities = nil
	m.appendopportunities = nil
}

// SetSummary sets the "summary" field.
func (m *ContractAnalysisMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ContractAnalysisMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ResetSummary resets all changes to the "summary" field.
func (m *ContractAnalysisMutation) ResetSummary() {
	m.summary = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *ContractAnalysisMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *ContractAnalysisMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *ContractAnalysisMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *ContractAnalysisMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *ContractAnalysisMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[contractanalysis.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *ContractAnalysisMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *ContractAnalysisMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, contractanalysis.FieldRecommendations)
}

// SetKeyClauses sets the "key_clauses" field.
func (m *ContractAnalysisMutation) SetKeyClauses(s []string) {
	m.key_clauses = &s
	m.appendkey_clauses = nil
}

// KeyClauses returns the value of the "key_clauses" field in the mutation.
func (m *ContractAnalysisMutation) KeyClauses() (r []string, exists bool) {
	v := m.key_clauses
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyClauses returns the old "key_clauses" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldKeyClauses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyClauses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyClauses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyClauses: %w", err)
	}
	return oldValue.KeyClauses, nil
}

// AppendKeyClauses adds s to the "key_clauses" field.
func (m *ContractAnalysisMutation) AppendKeyClauses(s []string) {
	m.appendkey_clauses = append(m.appendkey_clauses, s...)
}

// AppendedKeyClauses returns the list of values that were appended to the "key_clauses" field in this mutation.
func (m *ContractAnalysisMutation) AppendedKeyClauses() ([]string, bool) {
	if len(m.appendkey_clauses) == 0 {
		return nil, false
	}
	return m.appendkey_clauses, true
}

// ClearKeyClauses clears the value of the "key_clauses" field.
func (m *ContractAnalysisMutation) ClearKeyClauses() {
	m.key_clauses = nil
	m.appendkey_clauses = nil
	m.clearedFields[contractanalysis.FieldKeyClauses] = struct{}{}
}

// KeyClausesCleared returns if the "key_clauses" field was cleared in this mutation.
func (m *ContractAnalysisMutation) KeyClausesCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldKeyClauses]
	return ok
}

// ResetKeyClauses resets all changes to the "key_clauses" field.
func (m *ContractAnalysisMutation) ResetKeyClauses() {
	m.key_clauses = nil
	m.appendkey_clauses = nil
	delete(m.clearedFields, contractanalysis.FieldKeyClauses)
}

// SetLegalCompliance sets the "legal_compliance" field.
func (m *ContractAnalysisMutation) SetLegalCompliance(s []string) {
	m.legal_compliance = &s
	m.appendlegal_compliance = nil
}

// LegalCompliance returns the value of the "legal_compliance" field in the mutation.
func (m *ContractAnalysisMutation) LegalCompliance() (r []string, exists bool) {
	v := m.legal_compliance
	if v == nil {
		return
	}
	return *v, true
}

// OldLegalCompliance returns the old "legal_compliance" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldLegalCompliance(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegalCompliance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegalCompliance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegalCompliance: %w", err)
	}
	return oldValue.LegalCompliance, nil
}

// AppendLegalCompliance adds s to the "legal_compliance" field.
func (m *ContractAnalysisMutation) AppendLegalCompliance(s []string) {
	m.appendlegal_compliance = append(m.appendlegal_compliance, s...)
}

// AppendedLegalCompliance returns the list of values that were appended to the "legal_compliance" field in this mutation.
func (m *ContractAnalysisMutation) AppendedLegalCompliance() ([]string, bool) {
	if len(m.appendlegal_compliance) == 0 {
		return nil, false
	}
	return m.appendlegal_compliance, true
}

// ClearLegalCompliance clears the value of the "legal_compliance" field.
func (m *ContractAnalysisMutation) ClearLegalCompliance() {
	m.legal_compliance = nil
	m.appendlegal_compliance = nil
	m.clearedFields[contractanalysis.FieldLegalCompliance] = struct{}{}
}

// LegalComplianceCleared returns if the "legal_compliance" field was cleared in this mutation.
func (m *ContractAnalysisMutation) LegalComplianceCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldLegalCompliance]
	return ok
}

// ResetLegalCompliance resets all changes to the "legal_compliance" field.
func (m *ContractAnalysisMutation) ResetLegalCompliance() {
	m.legal_compliance = nil
	m.appendlegal_compliance = nil
	delete(m.clearedFields, contractanalysis.FieldLegalCompliance)
}

// SetNegotiationPoints sets the "negotiation_points" field.
func (m *ContractAnalysisMutation) SetNegotiationPoints(s []string) {
	m.negotiation_points = &s
	m.appendnegotiation_points = nil
}

// NegotiationPoints returns the value of the "negotiation_points" field in the mutation.
func (m *ContractAnalysisMutation) NegotiationPoints() (r []string, exists bool) {
	v := m.negotiation_points
	if v == nil {
		return
	}
	return *v, true
}

// OldNegotiationPoints returns the old "negotiation_points" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldNegotiationPoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNegotiationPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNegotiationPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNegotiationPoints: %w", err)
	}
	return oldValue.NegotiationPoints, nil
}

// AppendNegotiationPoints adds s to the "negotiation_points" field.
func (m *ContractAnalysisMutation) AppendNegotiationPoints(s []string) {
	m.appendnegotiation_points = append(m.appendnegotiation_points, s...)
}

// AppendedNegotiationPoints returns the list of values that were appended to the "negotiation_points" field in this mutation.
func (m *ContractAnalysisMutation) AppendedNegotiationPoints() ([]string, bool) {
	if len(m.appendnegotiation_points) == 0 {
		return nil, false
	}
	return m.appendnegotiation_points, true
}

// ClearNegotiationPoints clears the value of the "negotiation_points" field.
func (m *ContractAnalysisMutation) ClearNegotiationPoints() {
	m.negotiation_points = nil
	m.appendnegotiation_points = nil
	m.clearedFields[contractanalysis.FieldNegotiationPoints] = struct{}{}
}

// NegotiationPointsCleared returns if the "negotiation_points" field was cleared in this mutation.
func (m *ContractAnalysisMutation) NegotiationPointsCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldNegotiationPoints]
	return ok
}

// ResetNegotiationPoints resets all changes to the "negotiation_points" field.
func (m *ContractAnalysisMutation) ResetNegotiationPoints() {
	m.negotiation_points = nil
	m.appendnegotiation_points = nil
	delete(m.clearedFields, contractanalysis.FieldNegotiationPoints)
}

// SetContractDuration sets the "contract_duration" field.
func (m *ContractAnalysisMutation) SetContractDuration(s string) {
	m.contract_duration = &s
}

// ContractDuration returns the value of the "contract_duration" field in the mutation.
func (m *ContractAnalysisMutation) ContractDuration() (r string, exists bool) {
	v := m.contract_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldContractDuration returns the old "contract_duration" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldContractDuration(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractDuration: %w", err)
	}
	return oldValue.ContractDuration, nil
}

// ClearContractDuration clears the value of the "contract_duration" field.
func (m *ContractAnalysisMutation) ClearContractDuration() {
	m.contract_duration = nil
	m.clearedFields[contractanalysis.FieldContractDuration] = struct{}{}
}

// ContractDurationCleared returns if the "contract_duration" field was cleared in this mutation.
func (m *ContractAnalysisMutation) ContractDurationCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldContractDuration]
	return ok
}

// ResetContractDuration resets all changes to the "contract_duration" field.
func (m *ContractAnalysisMutation) ResetContractDuration() {
	m.contract_duration = nil
	delete(m.clearedFields, contractanalysis.FieldContractDuration)
}

// SetTerminationConditions sets the "termination_conditions" field.
func (m *ContractAnalysisMutation) SetTerminationConditions(s string) {
	m.termination_conditions = &s
}

// TerminationConditions returns the value of the "termination_conditions" field in the mutation.
func (m *ContractAnalysisMutation) TerminationConditions() (r string, exists bool) {
	v := m.termination_conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationConditions returns the old "termination_conditions" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldTerminationConditions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationConditions: %w", err)
	}
	return oldValue.TerminationConditions, nil
}

// ClearTerminationConditions clears the value of the "termination_conditions" field.
func (m *ContractAnalysisMutation) ClearTerminationConditions() {
	m.termination_conditions = nil
	m.clearedFields[contractanalysis.FieldTerminationConditions] = struct{}{}
}

// TerminationConditionsCleared returns if the "termination_conditions" field was cleared in this mutation.
func (m *ContractAnalysisMutation) TerminationConditionsCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldTerminationConditions]
	return ok
}

// ResetTerminationConditions resets all changes to the "termination_conditions" field.
func (m *ContractAnalysisMutation) ResetTerminationConditions() {
	m.termination_conditions = nil
	delete(m.clearedFields, contractanalysis.FieldTerminationConditions)
}

// SetOverallScore sets the "overall_score" field.
func (m *ContractAnalysisMutation) SetOverallScore(i int) {
	m.overall_score = &i
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *ContractAnalysisMutation) OverallScore() (r int, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldOverallScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds i to the "overall_score" field.
func (m *ContractAnalysisMutation) AddOverallScore(i int) {
	if m.addoverall_score != nil {
		*m.addoverall_score += i
	} else {
		m.addoverall_score = &i
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *ContractAnalysisMutation) AddedOverallScore() (r int, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *ContractAnalysisMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetCompensationStructure sets the "compensation_structure" field.
func (m *ContractAnalysisMutation) SetCompensationStructure(es entity.CompensationStructure) {
	m.compensation_structure = &es
}

// CompensationStructure returns the value of the "compensation_structure" field in the mutation.
func (m *ContractAnalysisMutation) CompensationStructure() (r entity.CompensationStructure, exists bool) {
	v := m.compensation_structure
	if v == nil {
		return
	}
	return *v, true
}

// OldCompensationStructure returns the old "compensation_structure" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldCompensationStructure(ctx context.Context) (v entity.CompensationStructure, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompensationStructure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompensationStructure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompensationStructure: %w", err)
	}
	return oldValue.CompensationStructure, nil
}

// ClearCompensationStructure clears the value of the "compensation_structure" field.
func (m *ContractAnalysisMutation) ClearCompensationStructure() {
	m.compensation_structure = nil
	m.clearedFields[contractanalysis.FieldCompensationStructure] = struct{}{}
}

// CompensationStructureCleared returns if the "compensation_structure" field was cleared in this mutation.
func (m *ContractAnalysisMutation) CompensationStructureCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldCompensationStructure]
	return ok
}

// ResetCompensationStructure resets all changes to the "compensation_structure" field.
func (m *ContractAnalysisMutation) ResetCompensationStructure() {
	m.compensation_structure = nil
	delete(m.clearedFields, contractanalysis.FieldCompensationStructure)
}

// SetPerformanceMetrics sets the "performance_metrics" field.
func (m *ContractAnalysisMutation) SetPerformanceMetrics(s []string) {
	m.performance_metrics = &s
	m.appendperformance_metrics = nil
}

// PerformanceMetrics returns the value of the "performance_metrics" field in the mutation.
func (m *ContractAnalysisMutation) PerformanceMetrics() (r []string, exists bool) {
	v := m.performance_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldPerformanceMetrics returns the old "performance_metrics" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldPerformanceMetrics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPerformanceMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPerformanceMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPerformanceMetrics: %w", err)
	}
	return oldValue.PerformanceMetrics, nil
}

// AppendPerformanceMetrics adds s to the "performance_metrics" field.
func (m *ContractAnalysisMutation) AppendPerformanceMetrics(s []string) {
	m.appendperformance_metrics = append(m.appendperformance_metrics, s...)
}

// AppendedPerformanceMetrics returns the list of values that were appended to the "performance_metrics" field in this mutation.
func (m *ContractAnalysisMutation) AppendedPerformanceMetrics() ([]string, bool) {
	if len(m.appendperformance_metrics) == 0 {
		return nil, false
	}
	return m.appendperformance_metrics, true
}

// ClearPerformanceMetrics clears the value of the "performance_metrics" field.
func (m *ContractAnalysisMutation) ClearPerformanceMetrics() {
	m.performance_metrics = nil
	m.appendperformance_metrics = nil
	m.clearedFields[contractanalysis.FieldPerformanceMetrics] = struct{}{}
}

// PerformanceMetricsCleared returns if the "performance_metrics" field was cleared in this mutation.
func (m *ContractAnalysisMutation) PerformanceMetricsCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldPerformanceMetrics]
	return ok
}

// ResetPerformanceMetrics resets all changes to the "performance_metrics" field.
func (m *ContractAnalysisMutation) ResetPerformanceMetrics() {
	m.performance_metrics = nil
	m.appendperformance_metrics = nil
	delete(m.clearedFields, contractanalysis.FieldPerformanceMetrics)
}

// SetIntellectualPropertyClauses sets the "intellectual_property_clauses" field.
func (m *ContractAnalysisMutation) SetIntellectualPropertyClauses(s []string) {
	m.intellectual_property_clauses = &s
	m.appendintellectual_property_clauses = nil
}

// IntellectualPropertyClauses returns the value of the "intellectual_property_clauses" field in the mutation.
func (m *ContractAnalysisMutation) IntellectualPropertyClauses() (r []string, exists bool) {
	v := m.intellectual_property_clauses
	if v == nil {
		return
	}
	return *v, true
}

// OldIntellectualPropertyClauses returns the old "intellectual_property_clauses" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldIntellectualPropertyClauses(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntellectualPropertyClauses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntellectualPropertyClauses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntellectualPropertyClauses: %w", err)
	}
	return oldValue.IntellectualPropertyClauses, nil
}

// AppendIntellectualPropertyClauses adds s to the "intellectual_property_clauses" field.
func (m *ContractAnalysisMutation) AppendIntellectualPropertyClauses(s []string) {
	m.appendintellectual_property_clauses = append(m.appendintellectual_property_clauses, s...)
}

// AppendedIntellectualPropertyClauses returns the list of values that were appended to the "intellectual_property_clauses" field in this mutation.
func (m *ContractAnalysisMutation) AppendedIntellectualPropertyClauses() ([]string, bool) {
	if len(m.appendintellectual_property_clauses) == 0 {
		return nil, false
	}
	return m.appendintellectual_property_clauses, true
}

// ClearIntellectualPropertyClauses clears the value of the "intellectual_property_clauses" field.
func (m *ContractAnalysisMutation) ClearIntellectualPropertyClauses() {
	m.intellectual_property_clauses = nil
	m.appendintellectual_property_clauses = nil
	m.clearedFields[contractanalysis.FieldIntellectualPropertyClauses] = struct{}{}
}

// IntellectualPropertyClausesCleared returns if the "intellectual_property_clauses" field was cleared in this mutation.
func (m *ContractAnalysisMutation) IntellectualPropertyClausesCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldIntellectualPropertyClauses]
	return ok
}

// ResetIntellectualPropertyClauses resets all changes to the "intellectual_property_clauses" field.
func (m *ContractAnalysisMutation) ResetIntellectualPropertyClauses() {
	m.intellectual_property_clauses = nil
	m.appendintellectual_property_clauses = nil
	delete(m.clearedFields, contractanalysis.FieldIntellectualPropertyClauses)
}

// SetFinancialTerms sets the "financial_terms" field.
func (m *ContractAnalysisMutation) SetFinancialTerms(et entity.FinancialTerms) {
	m.financial_terms = &et
}

// FinancialTerms returns the value of the "financial_terms" field in the mutation.
func (m *ContractAnalysisMutation) FinancialTerms() (r entity.FinancialTerms, exists bool) {
	v := m.financial_terms
	if v == nil {
		return
	}
	return *v, true
}

// OldFinancialTerms returns the old "financial_terms" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldFinancialTerms(ctx context.Context) (v entity.FinancialTerms, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinancialTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinancialTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinancialTerms: %w", err)
	}
	return oldValue.FinancialTerms, nil
}

// ClearFinancialTerms clears the value of the "financial_terms" field.
func (m *ContractAnalysisMutation) ClearFinancialTerms() {
	m.financial_terms = nil
	m.clearedFields[contractanalysis.FieldFinancialTerms] = struct{}{}
}

// FinancialTermsCleared returns if the "financial_terms" field was cleared in this mutation.
func (m *ContractAnalysisMutation) FinancialTermsCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldFinancialTerms]
	return ok
}

// ResetFinancialTerms resets all changes to the "financial_terms" field.
func (m *ContractAnalysisMutation) ResetFinancialTerms() {
	m.financial_terms = nil
	delete(m.clearedFields, contractanalysis.FieldFinancialTerms)
}

// SetVersion sets the "version" field.
func (m *ContractAnalysisMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ContractAnalysisMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ContractAnalysisMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ContractAnalysisMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ContractAnalysisMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetUserFeedback sets the "user_feedback" field.
func (m *ContractAnalysisMutation) SetUserFeedback(ef entity.UserFeedback) {
	m.user_feedback = &ef
}

// UserFeedback returns the value of the "user_feedback" field in the mutation.
func (m *ContractAnalysisMutation) UserFeedback() (r entity.UserFeedback, exists bool) {
	v := m.user_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldUserFeedback returns the old "user_feedback" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldUserFeedback(ctx context.Context) (v entity.UserFeedback, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserFeedback: %w", err)
	}
	return oldValue.UserFeedback, nil
}

// ClearUserFeedback clears the value of the "user_feedback" field.
func (m *ContractAnalysisMutation) ClearUserFeedback() {
	m.user_feedback = nil
	m.clearedFields[contractanalysis.FieldUserFeedback] = struct{}{}
}

// UserFeedbackCleared returns if the "user_feedback" field was cleared in this mutation.
func (m *ContractAnalysisMutation) UserFeedbackCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldUserFeedback]
	return ok
}

// ResetUserFeedback resets all changes to the "user_feedback" field.
func (m *ContractAnalysisMutation) ResetUserFeedback() {
	m.user_feedback = nil
	delete(m.clearedFields, contractanalysis.FieldUserFeedback)
}

// SetCustomFields sets the "custom_fields" field.
func (m *ContractAnalysisMutation) SetCustomFields(value map[string]string) {
	m.custom_fields = &value
}

// CustomFields returns the value of the "custom_fields" field in the mutation.
func (m *ContractAnalysisMutation) CustomFields() (r map[string]string, exists bool) {
	v := m.custom_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomFields returns the old "custom_fields" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldCustomFields(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomFields: %w", err)
	}
	return oldValue.CustomFields, nil
}

// ClearCustomFields clears the value of the "custom_fields" field.
func (m *ContractAnalysisMutation) ClearCustomFields() {
	m.custom_fields = nil
	m.clearedFields[contractanalysis.FieldCustomFields] = struct{}{}
}

// CustomFieldsCleared returns if the "custom_fields" field was cleared in this mutation.
func (m *ContractAnalysisMutation) CustomFieldsCleared() bool {
	_, ok := m.clearedFields[contractanalysis.FieldCustomFields]
	return ok
}

// ResetCustomFields resets all changes to the "custom_fields" field.
func (m *ContractAnalysisMutation) ResetCustomFields() {
	m.custom_fields = nil
	delete(m.clearedFields, contractanalysis.FieldCustomFields)
}

// SetExpirationDate sets the "expiration_date" field.
func (m *ContractAnalysisMutation) SetExpirationDate(t time.Time) {
	m.expiration_date = &t
}

// ExpirationDate returns the value of the "expiration_date" field in the mutation.
func (m *ContractAnalysisMutation) ExpirationDate() (r time.Time, exists bool) {
	v := m.expiration_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpirationDate returns the old "expiration_date" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldExpirationDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpirationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpirationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpirationDate: %w", err)
	}
	return oldValue.ExpirationDate, nil
}

// ResetExpirationDate resets all changes to the "expiration_date" field.
func (m *ContractAnalysisMutation) ResetExpirationDate() {
	m.expiration_date = nil
}

// SetLanguage sets the "language" field.
func (m *ContractAnalysisMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ContractAnalysisMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ContractAnalysisMutation) ResetLanguage() {
	m.language = nil
}

// SetAiModel sets the "ai_model" field.
func (m *ContractAnalysisMutation) SetAiModel(s string) {
	m.ai_model = &s
}

// AiModel returns the value of the "ai_model" field in the mutation.
func (m *ContractAnalysisMutation) AiModel() (r string, exists bool) {
	v := m.ai_model
	if v == nil {
		return
	}
	return *v, true
}

// OldAiModel returns the old "ai_model" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldAiModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiModel: %w", err)
	}
	return oldValue.AiModel, nil
}

// ResetAiModel resets all changes to the "ai_model" field.
func (m *ContractAnalysisMutation) ResetAiModel() {
	m.ai_model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContractAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContractAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContractAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContractAnalysisMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContractAnalysisMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ContractAnalysis entity.
// If the ContractAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContractAnalysisMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContractAnalysisMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ContractAnalysisMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[contractanalysis.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ContractAnalysisMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ContractAnalysisMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ContractAnalysisMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the ContractAnalysisMutation builder.
func (m *ContractAnalysisMutation) Where(ps ...predicate.ContractAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContractAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContractAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContractAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContractAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContractAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContractAnalysis).
func (m *ContractAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContractAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.user != nil {
		fields = append(fields, contractanalysis.FieldUserID)
	}
	if m.contract_text != nil {
		fields = append(fields, contractanalysis.FieldContractText)
	}
	if m.contract_type != nil {
		fields = append(fields, contractanalysis.FieldContractType)
	}
	if m.risks != nil {
		fields = append(fields, contractanalysis.FieldRisks)
	}
	if m.opportunities != nil {
		fields = append(fields, contractanalysis.FieldOpportunities)
	}
	if m.summary != nil {
		fields = append(fields, contractanalysis.FieldSummary)
	}
	if m.recommendations != nil {
		fields = append(fields, contractanalysis.FieldRecommendations)
	}
	if m.key_clauses != nil {
		fields = append(fields, contractanalysis.FieldKeyClauses)
	}
	if m.legal_compliance != nil {
		fields = append(fields, contractanalysis.FieldLegalCompliance)
	}
	if m.negotiation_points != nil {
		fields = append(fields, contractanalysis.FieldNegotiationPoints)
	}
	if m.contract_duration != nil {
		fields = append(fields, contractanalysis.FieldContractDuration)
	}
	if m.termination_conditions != nil {
		fields = append(fields, contractanalysis.FieldTerminationConditions)
	}
	if m.overall_score != nil {
		fields = append(fields, contractanalysis.FieldOverallScore)
	}
	if m.compensation_structure != nil {
		fields = append(fields, contractanalysis.FieldCompensationStructure)
	}
	if m.performance_metrics != nil {
		fields = append(fields, contractanalysis.FieldPerformanceMetrics)
	}
	if m.intellectual_property_clauses != nil {
		fields = append(fields, contractanalysis.FieldIntellectualPropertyClauses)
	}
	if m.financial_terms != nil {
		fields = append(fields, contractanalysis.FieldFinancialTerms)
	}
	if m.version != nil {
		fields = append(fields, contractanalysis.FieldVersion)
	}
	if m.user_feedback != nil {
		fields = append(fields, contractanalysis.FieldUserFeedback)
	}
	if m.custom_fields != nil {
		fields = append(fields, contractanalysis.FieldCustomFields)
	}
	if m.expiration_date != nil {
		fields = append(fields, contractanalysis.FieldExpirationDate)
	}
	if m.language != nil {
		fields = append(fields, contractanalysis.FieldLanguage)
	}
	if m.ai_model != nil {
		fields = append(fields, contractanalysis.FieldAiModel)
	}
	if m.created_at != nil {
		fields = append(fields, contractanalysis.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, contractanalysis.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContractAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contractanalysis.FieldUserID:
		return m.UserID()
	case contractanalysis.FieldContractText:
		return m.ContractText()
	case contractanalysis.FieldContractType:
		return m.ContractType()
	case contractanalysis.FieldRisks:
		return m.Risks()
	case contractanalysis.FieldOpportunities:
		return m.Opportunities()
	case contractanalysis.FieldSummary:
		return m.Summary()
	case contractanalysis.FieldRecommendations:
		return m.Recommendations()
	case contractanalysis.FieldKeyClauses:
		return m.KeyClauses()
	case contractanalysis.FieldLegalCompliance:
		return m.LegalCompliance()
	case contractanalysis.FieldNegotiationPoints:
		return m.NegotiationPoints()
	case contractanalysis.FieldContractDuration:
		return m.ContractDuration()
	case contractanalysis.FieldTerminationConditions:
		return m.TerminationConditions()
	case contractanalysis.FieldOverallScore:
		return m.OverallScore()
	case contractanalysis.FieldCompensationStructure:
		return m.CompensationStructure()
	case contractanalysis.FieldPerformanceMetrics:
		return m.PerformanceMetrics()
	case contractanalysis.FieldIntellectualPropertyClauses:
		return m.IntellectualPropertyClauses()
	case contractanalysis.FieldFinancialTerms:
		return m.FinancialTerms()
	case contractanalysis.FieldVersion:
		return m.Version()
	case contractanalysis.FieldUserFeedback:
		return m.UserFeedback()
	case contractanalysis.FieldCustomFields:
		return m.CustomFields()
	case contractanalysis.FieldExpirationDate:
		return m.ExpirationDate()
	case contractanalysis.FieldLanguage:
		return m.Language()
	case contractanalysis.FieldAiModel:
		return m.AiModel()
	case contractanalysis.FieldCreatedAt:
		return m.CreatedAt()
	case contractanalysis.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContractAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contractanalysis.FieldUserID:
		return m.OldUserID(ctx)
	case contractanalysis.FieldContractText:
		return m.OldContractText(ctx)
	case contractanalysis.FieldContractType:
		return m.OldContractType(ctx)
	case contractanalysis.FieldRisks:
		return m.OldRisks(ctx)
	case contractanalysis.FieldOpportunities:
		return m.OldOpportunities(ctx)
	case contractanalysis.FieldSummary:
		return m.OldSummary(ctx)
	case contractanalysis.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case contractanalysis.FieldKeyClauses:
		return m.OldKeyClauses(ctx)
	case contractanalysis.FieldLegalCompliance:
		return m.OldLegalCompliance(ctx)
	case contractanalysis.FieldNegotiationPoints:
		return m.OldNegotiationPoints(ctx)
	case contractanalysis.FieldContractDuration:
		return m.OldContractDuration(ctx)
	case contractanalysis.FieldTerminationConditions:
		return m.OldTerminationConditions(ctx)
	case contractanalysis.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case contractanalysis.FieldCompensationStructure:
		return m.OldCompensationStructure(ctx)
	case contractanalysis.FieldPerformanceMetrics:
		return m.OldPerformanceMetrics(ctx)
	case contractanalysis.FieldIntellectualPropertyClauses:
		return m.OldIntellectualPropertyClauses(ctx)
	case contractanalysis.FieldFinancialTerms:
		return m.OldFinancialTerms(ctx)
	case contractanalysis.FieldVersion:
		return m.OldVersion(ctx)
	case contractanalysis.FieldUserFeedback:
		return m.OldUserFeedback(ctx)
	case contractanalysis.FieldCustomFields:
		return m.OldCustomFields(ctx)
	case contractanalysis.FieldExpirationDate:
		return m.OldExpirationDate(ctx)
	case contractanalysis.FieldLanguage:
		return m.OldLanguage(ctx)
	case contractanalysis.FieldAiModel:
		return m.OldAiModel(ctx)
	case contractanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case contractanalysis.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContractAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contractanalysis.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case contractanalysis.FieldContractText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractText(v)
		return nil
	case contractanalysis.FieldContractType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractType(v)
		return nil
	case contractanalysis.FieldRisks:
		v, ok := value.([]entity.Risk)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisks(v)
		return nil
	case contractanalysis.FieldOpportunities:
		v, ok := value.([]entity.Opportunity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpportunities(v)
		return nil
	case contractanalysis.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case contractanalysis.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case contractanalysis.FieldKeyClauses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyClauses(v)
		return nil
	case contractanalysis.FieldLegalCompliance:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegalCompliance(v)
		return nil
	case contractanalysis.FieldNegotiationPoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNegotiationPoints(v)
		return nil
	case contractanalysis.FieldContractDuration:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractDuration(v)
		return nil
	case contractanalysis.FieldTerminationConditions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationConditions(v)
		return nil
	case contractanalysis.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case contractanalysis.FieldCompensationStructure:
		v, ok := value.(entity.CompensationStructure)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompensationStructure(v)
		return nil
	case contractanalysis.FieldPerformanceMetrics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPerformanceMetrics(v)
		return nil
	case contractanalysis.FieldIntellectualPropertyClauses:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntellectualPropertyClauses(v)
		return nil
	case contractanalysis.FieldFinancialTerms:
		v, ok := value.(entity.FinancialTerms)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinancialTerms(v)
		return nil
	case contractanalysis.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case contractanalysis.FieldUserFeedback:
		v, ok := value.(entity.UserFeedback)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserFeedback(v)
		return nil
	case contractanalysis.FieldCustomFields:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomFields(v)
		return nil
	case contractanalysis.FieldExpirationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpirationDate(v)
		return nil
	case contractanalysis.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case contractanalysis.FieldAiModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiModel(v)
		return nil
	case contractanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case contractanalysis.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContractAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContractAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, contractanalysis.FieldOverallScore)
	}
	if m.addversion != nil {
		fields = append(fields, contractanalysis.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContractAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contractanalysis.FieldOverallScore:
		return m.AddedOverallScore()
	case contractanalysis.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContractAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contractanalysis.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case contractanalysis.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ContractAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContractAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(contractanalysis.FieldRecommendations) {
		fields = append(fields, contractanalysis.FieldRecommendations)
	}
	if m.FieldCleared(contractanalysis.FieldKeyClauses) {
		fields = append(fields, contractanalysis.FieldKeyClauses)
	}
	if m.FieldCleared(contractanalysis.FieldLegalCompliance) {
		fields = append(fields, contractanalysis.FieldLegalCompliance)
	}
	if m.FieldCleared(contractanalysis.FieldNegotiationPoints) {
		fields = append(fields, contractanalysis.FieldNegotiationPoints)
	}
	if m.FieldCleared(contractanalysis.FieldContractDuration) {
		fields = append(fields, contractanalysis.FieldContractDuration)
	}
	if m.FieldCleared(contractanalysis.FieldTerminationConditions) {
		fields = append(fields, contractanalysis.FieldTerminationConditions)
	}
	if m.FieldCleared(contractanalysis.FieldCompensationStructure) {
		fields = append(fields, contractanalysis.FieldCompensationStructure)
	}
	if m.FieldCleared(contractanalysis.FieldPerformanceMetrics) {
		fields = append(fields, contractanalysis.FieldPerformanceMetrics)
	}
	if m.FieldCleared(contractanalysis.FieldIntellectualPropertyClauses) {
		fields = append(fields, contractanalysis.FieldIntellectualPropertyClauses)
	}
	if m.FieldCleared(contractanalysis.FieldFinancialTerms) {
		fields = append(fields, contractanalysis.FieldFinancialTerms)
	}
	if m.FieldCleared(contractanalysis.FieldUserFeedback) {
		fields = append(fields, contractanalysis.FieldUserFeedback)
	}
	if m.FieldCleared(contractanalysis.FieldCustomFields) {
		fields = append(fields, contractanalysis.FieldCustomFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContractAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContractAnalysisMutation) ClearField(name string) error {
	switch name {
	case contractanalysis.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case contractanalysis.FieldKeyClauses:
		m.ClearKeyClauses()
		return nil
	case contractanalysis.FieldLegalCompliance:
		m.ClearLegalCompliance()
		return nil
	case contractanalysis.FieldNegotiationPoints:
		m.ClearNegotiationPoints()
		return nil
	case contractanalysis.FieldContractDuration:
		m.ClearContractDuration()
		return nil
	case contractanalysis.FieldTerminationConditions:
		m.ClearTerminationConditions()
		return nil
	case contractanalysis.FieldCompensationStructure:
		m.ClearCompensationStructure()
		return nil
	case contractanalysis.FieldPerformanceMetrics:
		m.ClearPerformanceMetrics()
		return nil
	case contractanalysis.FieldIntellectualPropertyClauses:
		m.ClearIntellectualPropertyClauses()
		return nil
	case contractanalysis.FieldFinancialTerms:
		m.ClearFinancialTerms()
		return nil
	case contractanalysis.FieldUserFeedback:
		m.ClearUserFeedback()
		return nil
	case contractanalysis.FieldCustomFields:
		m.ClearCustomFields()
		return nil
	}
	return fmt.Errorf("unknown ContractAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContractAnalysisMutation) ResetField(name string) error {
	switch name {
	case contractanalysis.FieldUserID:
		m.ResetUserID()
		return nil
	case contractanalysis.FieldContractText:
		m.ResetContractText()
		return nil
	case contractanalysis.FieldContractType:
		m.ResetContractType()
		return nil
	case contractanalysis.FieldRisks:
		m.ResetRisks()
		return nil
	case contractanalysis.FieldOpportunities:
		m.ResetOpportunities()
		return nil
	case contractanalysis.FieldSummary:
		m.ResetSummary()
		return nil
	case contractanalysis.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case contractanalysis.FieldKeyClauses:
		m.ResetKeyClauses()
		return nil
	case contractanalysis.FieldLegalCompliance:
		m.ResetLegalCompliance()
		return nil
	case contractanalysis.FieldNegotiationPoints:
		m.ResetNegotiationPoints()
		return nil
	case contractanalysis.FieldContractDuration:
		m.ResetContractDuration()
		return nil
	case contractanalysis.FieldTerminationConditions:
		m.ResetTerminationConditions()
		return nil
	case contractanalysis.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case contractanalysis.FieldCompensationStructure:
		m.ResetCompensationStructure()
		return nil
	case contractanalysis.FieldPerformanceMetrics:
		m.ResetPerformanceMetrics()
		return nil
	case contractanalysis.FieldIntellectualPropertyClauses:
		m.ResetIntellectualPropertyClauses()
		return nil
	case contractanalysis.FieldFinancialTerms:
		m.ResetFinancialTerms()
		return nil
	case contractanalysis.FieldVersion:
		m.ResetVersion()
		return nil
	case contractanalysis.FieldUserFeedback:
		m.ResetUserFeedback()
		return nil
	case contractanalysis.FieldCustomFields:
		m.ResetCustomFields()
		return nil
	case contractanalysis.FieldExpirationDate:
		m.ResetExpirationDate()
		return nil
	case contractanalysis.FieldLanguage:
		m.ResetLanguage()
		return nil
	case contractanalysis.FieldAiModel:
		m.ResetAiModel()
		return nil
	case contractanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case contractanalysis.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContractAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContractAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, contractanalysis.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContractAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contractanalysis.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContractAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContractAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContractAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, contractanalysis.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContractAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case contractanalysis.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContractAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case contractanalysis.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown ContractAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContractAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case contractanalysis.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown ContractAnalysis edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	google_id       *string
	email           *string
	display_name    *string
	profile_picture *string
	is_premium      *bool
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	analyses        map[uuid.UUID]struct{}
	removedanalyses map[uuid.UUID]struct{}
	clearedanalyses bool
	done            bool
	oldValue        func(context.Context) (*User, error)
	predicates      []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGoogleID sets the "google_id" field.
func (m *UserMutation) SetGoogleID(s string) {
	m.google_id = &s
}

// GoogleID returns the value of the "google_id" field in the mutation.
func (m *UserMutation) GoogleID() (r string, exists bool) {
	v := m.google_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoogleID returns the old "google_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldGoogleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoogleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoogleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoogleID: %w", err)
	}
	return oldValue.GoogleID, nil
}

// ResetGoogleID resets all changes to the "google_id" field.
func (m *UserMutation) ResetGoogleID() {
	m.google_id = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetDisplayName sets the "display_name" field.
func (m *UserMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *UserMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *UserMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetProfilePicture sets the "profile_picture" field.
func (m *UserMutation) SetProfilePicture(s string) {
	m.profile_picture = &s
}

// ProfilePicture returns the value of the "profile_picture" field in the mutation.
func (m *UserMutation) ProfilePicture() (r string, exists bool) {
	v := m.profile_picture
	if v == nil {
		return
	}
	return *v, true
}

// OldProfilePicture returns the old "profile_picture" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldProfilePicture(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfilePicture is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfilePicture requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfilePicture: %w", err)
	}
	return oldValue.ProfilePicture, nil
}

// ClearProfilePicture clears the value of the "profile_picture" field.
func (m *UserMutation) ClearProfilePicture() {
	m.profile_picture = nil
	m.clearedFields[user.FieldProfilePicture] = struct{}{}
}

// ProfilePictureCleared returns if the "profile_picture" field was cleared in this mutation.
func (m *UserMutation) ProfilePictureCleared() bool {
	_, ok := m.clearedFields[user.FieldProfilePicture]
	return ok
}

// ResetProfilePicture resets all changes to the "profile_picture" field.
func (m *UserMutation) ResetProfilePicture() {
	m.profile_picture = nil
	delete(m.clearedFields, user.FieldProfilePicture)
}

// SetIsPremium sets the "is_premium" field.
func (m *UserMutation) SetIsPremium(b bool) {
	m.is_premium = &b
}

// IsPremium returns the value of the "is_premium" field in the mutation.
func (m *UserMutation) IsPremium() (r bool, exists bool) {
	v := m.is_premium
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPremium returns the old "is_premium" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsPremium(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPremium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPremium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPremium: %w", err)
	}
	return oldValue.IsPremium, nil
}

// ResetIsPremium resets all changes to the "is_premium" field.
func (m *UserMutation) ResetIsPremium() {
	m.is_premium = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddAnalysisIDs adds the "analyses" edge to the ContractAnalysis entity by ids.
func (m *UserMutation) AddAnalysisIDs(ids ...uuid.UUID) {
	if m.analyses == nil {
		m.analyses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the ContractAnalysis entity.
func (m *UserMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the ContractAnalysis entity was cleared.
func (m *UserMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the ContractAnalysis entity by IDs.
func (m *UserMutation) RemoveAnalysisIDs(ids ...uuid.UUID) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the ContractAnalysis entity.
func (m *UserMutation) RemovedAnalysesIDs() (ids []uuid.UUID) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *UserMutation) AnalysesIDs() (ids []uuid.UUID) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *UserMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.google_id != nil {
		fields = append(fields, user.FieldGoogleID)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.display_name != nil {
		fields = append(fields, user.FieldDisplayName)
	}
	if m.profile_picture != nil {
		fields = append(fields, user.FieldProfilePicture)
	}
	if m.is_premium != nil {
		fields = append(fields, user.FieldIsPremium)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldGoogleID:
		return m.GoogleID()
	case user.FieldEmail:
		return m.Email()
	case user.FieldDisplayName:
		return m.DisplayName()
	case user.FieldProfilePicture:
		return m.ProfilePicture()
	case user.FieldIsPremium:
		return m.IsPremium()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldGoogleID:
		return m.OldGoogleID(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case user.FieldProfilePicture:
		return m.OldProfilePicture(ctx)
	case user.FieldIsPremium:
		return m.OldIsPremium(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldGoogleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoogleID(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case user.FieldProfilePicture:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfilePicture(v)
		return nil
	case user.FieldIsPremium:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPremium(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldProfilePicture) {
		fields = append(fields, user.FieldProfilePicture)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldProfilePicture:
		m.ClearProfilePicture()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldGoogleID:
		m.ResetGoogleID()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case user.FieldProfilePicture:
		m.ResetProfilePicture()
		return nil
	case user.FieldIsPremium:
		m.ResetIsPremium()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analyses != nil {
		edges = append(edges, user.EdgeAnalyses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedanalyses != nil {
		edges = append(edges, user.EdgeAnalyses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalyses {
		edges = append(edges, user.EdgeAnalyses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAnalyses:
		return m.clearedanalyses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
