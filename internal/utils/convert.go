package utils

import (
	"github.com/contractwise/backend/gen/ent"
	"github.com/contractwise/backend/internal/entity"
)

func ToUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:             e.ID,
		GoogleID:       e.GoogleID,
		Email:          e.Email,
		DisplayName:    e.DisplayName,
		ProfilePicture: e.ProfilePicture,
		IsPremium:      e.IsPremium,
	}
}

func ToContractAnalysis(e *ent.ContractAnalysis) *entity.ContractAnalysis {
	return &entity.ContractAnalysis{
		ID:                          e.ID,
		UserID:                      e.UserID,
		ContractText:                e.ContractText,
		ContractType:                e.ContractType,
		Risks:                       e.Risks,
		Opportunities:               e.Opportunities,
		Summary:                     e.Summary,
		Recommendations:             e.Recommendations,
		KeyClauses:                  e.KeyClauses,
		LegalCompliance:             e.LegalCompliance,
		NegotiationPoints:           e.NegotiationPoints,
		ContractDuration:            e.ContractDuration,
		TerminationConditions:       e.TerminationConditions,
		OverallScore:                e.OverallScore,
		CompensationStructure:       e.CompensationStructure,
		PerformanceMetrics:          e.PerformanceMetrics,
		IntellectualPropertyClauses: e.IntellectualPropertyClauses,
		FinancialTerms:              e.FinancialTerms,
		CreatedAt:                   e.CreatedAt,
		Version:                     e.Version,
		UserFeedback:                e.UserFeedback,
		CustomFields:                e.CustomFields,
		ExpirationDate:              e.ExpirationDate,
		Language:                    e.Language,
		AIModel:                     e.AiModel,
	}
}
