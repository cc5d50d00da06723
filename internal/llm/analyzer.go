package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Analyzer turns contract text into analysis records via a text generator.
// Analysis is total: a model failure produces a degraded record, never an
// error. Classification is the exception, its callers need the failure.
type Analyzer struct {
	gen    Generator
	model  string
	logger *slog.Logger
}

func NewAnalyzer(gen Generator, model string, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{gen: gen, model: model, logger: logger}
}

// DetectContractType classifies the contract from its opening text and
// returns a bare label.
func (a *Analyzer) DetectContractType(ctx context.Context, contractText string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	a.logger.Info("llm.detect.start",
		"req_id", rid,
		"model", a.model,
		"text_len", len(contractText),
	)

	raw, err := a.gen.GenerateContent(ctx, BuildDetectPrompt(contractText))
	if err != nil {
		a.logger.Error("llm.detect.generate_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	contractType := strings.TrimSpace(raw)
	a.logger.Info("llm.detect.ok",
		"req_id", rid,
		"contract_type", contractType,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return contractType, nil
}

// AnalyzeContract runs the tier-specific prompt and lifts the response into
// a complete record. Output that cannot be parsed even after repair is
// handed to the salvage path with the original, unrepaired text.
func (a *Analyzer) AnalyzeContract(ctx context.Context, req AnalyzeRequest) Result {
	rid := uuid.New().String()
	start := time.Now()
	now := time.Now()

	a.logger.Info("llm.analyze.start",
		"req_id", rid,
		"model", a.model,
		"tier", req.Tier,
		"contract_type", req.ContractType,
		"text_len", len(req.ContractText),
	)

	prompt := BuildAnalysisPrompt(req, a.model, now)

	raw, err := a.gen.GenerateContent(ctx, prompt)
	if err != nil {
		a.logger.Error("llm.analyze.generate_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		// One retry to capture text for the salvage path; a second failure
		// leaves it working from an empty string.
		raw, err = a.gen.GenerateContent(ctx, prompt)
		if err != nil {
			a.logger.Error("llm.analyze.retry_error",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			raw = ""
		}
		return a.salvage(rid, start, req, raw, now)
	}

	repaired := RepairJSON(raw)
	m, perr := ParseAnalysis(repaired)
	if perr != nil {
		a.logger.Warn("llm.analyze.parse_error",
			"req_id", rid, "error", perr, "raw_len", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return a.salvage(rid, start, req, raw, now)
	}

	if verr := ValidateJSONAgainstSchema(BuildAnalysisJSONSchema(req.Tier), []byte(repaired)); verr != nil {
		a.logger.Warn("llm.analyze.schema_mismatch",
			"req_id", rid, "error", verr,
		)
	}

	analysis := NormalizeAnalysis(m, req, a.model, now)
	a.logger.Info("llm.analyze.ok",
		"req_id", rid,
		"score", analysis.OverallScore,
		"risks", len(analysis.Risks),
		"opportunities", len(analysis.Opportunities),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Analysis: analysis}
}

func (a *Analyzer) salvage(rid string, start time.Time, req AnalyzeRequest, raw string, now time.Time) Result {
	analysis := FallbackAnalysis(req, raw, a.model, now)
	a.logger.Warn("llm.analyze.degraded",
		"req_id", rid,
		"score", analysis.OverallScore,
		"risks", len(analysis.Risks),
		"opportunities", len(analysis.Opportunities),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Analysis: analysis, Degraded: true}
}
