package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/cache"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/extract"
	"github.com/contractwise/backend/internal/llm"
)

// DetectStage classifies an uploaded contract without persisting anything.
// Unlike analysis, classification failures propagate to the caller.
type DetectStage struct {
	blobs     cache.BlobCache
	extractor extract.TextExtractor
	analyzer  llm.ContractAnalyzer
	logger    *slog.Logger
}

func NewDetectStage(
	blobs cache.BlobCache,
	extractor extract.TextExtractor,
	analyzer llm.ContractAnalyzer,
	logger *slog.Logger,
) *DetectStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetectStage{
		blobs:     blobs,
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
	}
}

func (s *DetectStage) Run(ctx context.Context, user *entity.User, fileData []byte) (string, error) {
	start := time.Now()
	fileKey := constants.StagedFileKey(user.ID.String(), time.Now())

	if err := s.blobs.Set(ctx, fileKey, fileData, constants.StagedFileTTL); err != nil {
		s.logger.Error("pipeline.detect.stage_failed", "file_key", fileKey, "error", err)
		return "", err
	}
	defer s.cleanup(ctx, fileKey)

	pdfText, err := s.extractor.Extract(ctx, fileKey)
	if err != nil {
		s.logger.Error("pipeline.detect.extract_failed", "file_key", fileKey, "error", err)
		return "", err
	}

	contractType, err := s.analyzer.DetectContractType(ctx, pdfText)
	if err != nil {
		return "", err
	}

	s.logger.Info("pipeline.detect.ok",
		"user_id", user.ID,
		"contract_type", contractType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return contractType, nil
}

func (s *DetectStage) cleanup(ctx context.Context, fileKey string) {
	if err := s.blobs.Delete(ctx, fileKey); err != nil {
		s.logger.Warn("pipeline.cleanup_failed", "file_key", fileKey, "error", err)
	}
}
