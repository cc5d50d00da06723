package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/contractwise/backend/gen/ent"
	"github.com/contractwise/backend/gen/ent/contractanalysis"
	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/utils"
)

type ContractRepository interface {
	Create(ctx context.Context, a *entity.ContractAnalysis) (*entity.ContractAnalysis, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.ContractAnalysis, error)
	FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.ContractAnalysis, error)
	DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) Create(ctx context.Context, a *entity.ContractAnalysis) (*entity.ContractAnalysis, error) {
	rec, err := r.client.ContractAnalysis.Create().
		SetUserID(a.UserID).
		SetContractText(a.ContractText).
		SetContractType(a.ContractType).
		SetRisks(a.Risks).
		SetOpportunities(a.Opportunities).
		SetSummary(a.Summary).
		SetRecommendations(a.Recommendations).
		SetKeyClauses(a.KeyClauses).
		SetLegalCompliance(a.LegalCompliance).
		SetNegotiationPoints(a.NegotiationPoints).
		SetContractDuration(a.ContractDuration).
		SetTerminationConditions(a.TerminationConditions).
		SetOverallScore(a.OverallScore).
		SetCompensationStructure(a.CompensationStructure).
		SetPerformanceMetrics(a.PerformanceMetrics).
		SetIntellectualPropertyClauses(a.IntellectualPropertyClauses).
		SetFinancialTerms(a.FinancialTerms).
		SetVersion(a.Version).
		SetUserFeedback(a.UserFeedback).
		SetCustomFields(a.CustomFields).
		SetExpirationDate(a.ExpirationDate).
		SetLanguage(a.Language).
		SetAiModel(a.AIModel).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create analysis", "user_id", a.UserID, "error", err)
		return nil, common.WrapError(common.ErrDatabase, err.Error())
	}
	return utils.ToContractAnalysis(rec), nil
}

func (r *contractRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.ContractAnalysis, error) {
	recs, err := r.client.ContractAnalysis.Query().
		Where(contractanalysis.UserID(userID)).
		Order(ent.Desc(contractanalysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list analyses", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.ContractAnalysis, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToContractAnalysis(rec)
	}
	return result, nil
}

func (r *contractRepository) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.ContractAnalysis, error) {
	rec, err := r.client.ContractAnalysis.Query().
		Where(contractanalysis.ID(id), contractanalysis.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get analysis", "id", id, "error", err)
		return nil, err
	}
	return utils.ToContractAnalysis(rec), nil
}

func (r *contractRepository) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error {
	n, err := r.client.ContractAnalysis.Delete().
		Where(contractanalysis.ID(id), contractanalysis.UserID(userID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete analysis", "id", id, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
