package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/cache"
	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/extract"
	"github.com/contractwise/backend/internal/llm"
	"github.com/contractwise/backend/internal/repository"
)

// AnalyzeParams carries one upload through the analysis pipeline.
type AnalyzeParams struct {
	User         *entity.User
	FileData     []byte
	ContractType string
}

type AnalyzeResult struct {
	Analysis *entity.ContractAnalysis
	Degraded bool
}

// AnalyzeStage stages the upload in the cache, extracts its text, runs the
// tier-appropriate analysis, and persists the finished record. The staged
// blob is always cleaned up, even when a step fails.
type AnalyzeStage struct {
	blobs     cache.BlobCache
	extractor extract.TextExtractor
	analyzer  llm.ContractAnalyzer
	contracts repository.ContractRepository
	model     string
	logger    *slog.Logger
}

func NewAnalyzeStage(
	blobs cache.BlobCache,
	extractor extract.TextExtractor,
	analyzer llm.ContractAnalyzer,
	contracts repository.ContractRepository,
	model string,
	logger *slog.Logger,
) *AnalyzeStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzeStage{
		blobs:     blobs,
		extractor: extractor,
		analyzer:  analyzer,
		contracts: contracts,
		model:     model,
		logger:    logger,
	}
}

func (s *AnalyzeStage) Run(ctx context.Context, params AnalyzeParams) (*AnalyzeResult, error) {
	start := time.Now()
	user := params.User
	fileKey := constants.StagedFileKey(user.ID.String(), time.Now())

	if err := s.blobs.Set(ctx, fileKey, params.FileData, constants.StagedFileTTL); err != nil {
		s.logger.Error("pipeline.analyze.stage_failed", "file_key", fileKey, "error", err)
		return nil, err
	}
	defer s.cleanup(ctx, fileKey)

	pdfText, err := s.extractor.Extract(ctx, fileKey)
	if err != nil {
		s.logger.Error("pipeline.analyze.extract_failed", "file_key", fileKey, "error", err)
		return nil, err
	}

	tier := constants.TierForPremium(user.IsPremium)
	result := s.analyzer.AnalyzeContract(ctx, llm.AnalyzeRequest{
		ContractText: pdfText,
		ContractType: params.ContractType,
		UserID:       user.ID,
		Tier:         tier,
	})

	record := s.buildRecord(result.Analysis, pdfText, params.ContractType)
	if record.ContractText == "" || record.ContractType == "" || record.Summary == "" {
		s.logger.Error("pipeline.analyze.invalid_record", "file_key", fileKey)
		return nil, common.InternalError("invalid analysis result: missing required fields")
	}

	saved, err := s.contracts.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("pipeline.analyze.ok",
		"user_id", user.ID,
		"analysis_id", saved.ID,
		"tier", tier,
		"degraded", result.Degraded,
		"score", saved.OverallScore,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &AnalyzeResult{Analysis: saved, Degraded: result.Degraded}, nil
}

// buildRecord applies the persist-time defaults on top of whatever the
// analyzer produced, regardless of tier. The full extracted text wins over
// the truncated echo only when the echo is empty.
func (s *AnalyzeStage) buildRecord(a *entity.ContractAnalysis, pdfText, declaredType string) *entity.ContractAnalysis {
	now := time.Now()
	r := *a

	if r.ContractText == "" {
		r.ContractText = pdfText
	}
	if r.ContractType == "" {
		r.ContractType = declaredType
	}
	if r.Risks == nil {
		r.Risks = []entity.Risk{}
	}
	if r.Opportunities == nil {
		r.Opportunities = []entity.Opportunity{}
	}
	if r.Summary == "" {
		r.Summary = constants.NoSummary
	}
	if r.Recommendations == nil {
		r.Recommendations = []string{}
	}
	if r.KeyClauses == nil {
		r.KeyClauses = []string{}
	}
	if r.LegalCompliance == nil {
		r.LegalCompliance = []string{}
	}
	if r.NegotiationPoints == nil {
		r.NegotiationPoints = []string{}
	}
	if r.ContractDuration == "" {
		r.ContractDuration = constants.NotSpecified
	}
	if r.TerminationConditions == "" {
		r.TerminationConditions = constants.NotSpecified
	}
	if r.CompensationStructure == (entity.CompensationStructure{}) {
		r.CompensationStructure = entity.CompensationStructure{
			BaseSalary:    constants.NotSpecified,
			Bonuses:       constants.NotSpecified,
			Equity:        constants.NotSpecified,
			OtherBenefits: constants.NotSpecified,
		}
	}
	if r.PerformanceMetrics == nil {
		r.PerformanceMetrics = []string{}
	}
	if r.IntellectualPropertyClauses == nil {
		r.IntellectualPropertyClauses = []string{}
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.Version == 0 {
		r.Version = constants.SchemaVersion
	}
	if r.CustomFields == nil {
		r.CustomFields = map[string]string{}
	}
	if r.ExpirationDate.IsZero() {
		r.ExpirationDate = now.Add(constants.RecordRetentionDays * 24 * time.Hour)
	}
	if r.Language == "" {
		r.Language = constants.DefaultLanguage
	}
	if r.AIModel == "" {
		r.AIModel = s.model
	}
	if r.FinancialTerms.Description == "" && len(r.FinancialTerms.Details) == 0 {
		r.FinancialTerms = entity.FinancialTerms{
			Description: constants.NotSpecified,
			Details:     []string{},
		}
	}
	return &r
}

// cleanup removes the staged upload. Failures are logged, never surfaced;
// the entry expires on its own either way.
func (s *AnalyzeStage) cleanup(ctx context.Context, fileKey string) {
	if err := s.blobs.Delete(ctx, fileKey); err != nil {
		s.logger.Warn("pipeline.cleanup_failed", "file_key", fileKey, "error", err)
	}
}
