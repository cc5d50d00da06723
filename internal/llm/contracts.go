package llm

import (
	"context"

	"github.com/google/uuid"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/entity"
)

// Generator produces raw model text for a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AnalyzeRequest carries everything the analyzer needs for one run.
type AnalyzeRequest struct {
	ContractText string
	ContractType string
	UserID       uuid.UUID
	Tier         constants.Tier
}

// Result is the outcome of an analysis run. Analysis is always non-nil;
// Degraded reports that the model output could not be parsed and the
// record was assembled by the salvage path instead.
type Result struct {
	Analysis *entity.ContractAnalysis
	Degraded bool
}

// ContractAnalyzer is the interface the pipeline depends on.
type ContractAnalyzer interface {
	DetectContractType(ctx context.Context, contractText string) (string, error)
	AnalyzeContract(ctx context.Context, req AnalyzeRequest) Result
}
