package llm

import (
	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/entity"
)

func severityWeight(level string) int {
	switch level {
	case constants.LevelHigh:
		return constants.ScoreWeightHigh
	case constants.LevelMedium:
		return constants.ScoreWeightMedium
	default:
		return constants.ScoreWeightLow
	}
}

// clampScore bounds a score to [0,100]. Every score that reaches the record,
// model-supplied or derived, passes through here; the database column
// enforces the same bounds.
func clampScore(score int) int {
	if score < constants.ScoreMin {
		return constants.ScoreMin
	}
	if score > constants.ScoreMax {
		return constants.ScoreMax
	}
	return score
}

// ComputeOverallScore derives a score when the model omits one: start from
// the baseline, subtract weighted risks, add weighted opportunities, clamp
// to [0,100]. The weights are fixed; persisted scores would shift if they
// changed.
func ComputeOverallScore(risks []entity.Risk, opportunities []entity.Opportunity) int {
	score := constants.ScoreBaseline
	for _, r := range risks {
		score -= severityWeight(r.Severity)
	}
	for _, o := range opportunities {
		score += severityWeight(o.Impact)
	}
	return clampScore(score)
}
