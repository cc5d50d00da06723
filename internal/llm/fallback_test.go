package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/contractwise/backend/constants"
)

func TestFallbackAnalysisFreeTierProse(t *testing.T) {
	req := AnalyzeRequest{ContractText: "some text", Tier: constants.TierFree}
	a := FallbackAnalysis(req, "The contract looks fine to me.", "m", time.Now())

	if a.Summary != constants.FallbackSummary {
		t.Errorf("Summary = %q, want %q", a.Summary, constants.FallbackSummary)
	}
	if len(a.Risks) != 0 || len(a.Opportunities) != 0 {
		t.Errorf("findings = %v / %v, want empty", a.Risks, a.Opportunities)
	}
	// Nothing salvaged: baseline score.
	if a.OverallScore != 50 {
		t.Errorf("OverallScore = %d, want 50", a.OverallScore)
	}
	if a.ContractDuration != "" {
		t.Errorf("ContractDuration = %q, want empty for free tier", a.ContractDuration)
	}
}

func TestFallbackAnalysisSalvagesRisksBlock(t *testing.T) {
	raw := "```json\n" + `{
	  "risks": [
	    {"risk": "Non-compete", "explanation": "Two year restriction", "severity": "high"},
	    {"risk": "Auto-renewal"}
	  ],
	  "summary": "Heavily one-sided agreement",
	  this is where the model went off the rails
	` + "\n```"

	req := AnalyzeRequest{ContractText: "text", Tier: constants.TierFree}
	a := FallbackAnalysis(req, raw, "m", time.Now())

	if len(a.Risks) != 2 {
		t.Fatalf("Risks = %+v, want 2 entries", a.Risks)
	}
	if a.Risks[0].Risk != "Non-compete" || a.Risks[0].Severity != "high" {
		t.Errorf("Risks[0] = %+v", a.Risks[0])
	}
	if a.Risks[1].Explanation != constants.UnknownField {
		t.Errorf("Risks[1].Explanation = %q, want %q", a.Risks[1].Explanation, constants.UnknownField)
	}
	if a.Risks[1].Severity != constants.LevelMedium {
		t.Errorf("Risks[1].Severity = %q, want medium", a.Risks[1].Severity)
	}
	if a.Summary != "Heavily one-sided agreement" {
		t.Errorf("Summary = %q", a.Summary)
	}
	// One high risk plus one defaulted-medium risk against the baseline.
	if a.OverallScore != 20 {
		t.Errorf("OverallScore = %d, want 20", a.OverallScore)
	}
}

func TestFallbackAnalysisSalvagesExplicitScore(t *testing.T) {
	raw := `"overallScore": 72, and then garbage`
	a := FallbackAnalysis(AnalyzeRequest{Tier: constants.TierFree}, raw, "m", time.Now())
	if a.OverallScore != 72 {
		t.Errorf("OverallScore = %d, want 72", a.OverallScore)
	}
}

func TestFallbackAnalysisClampsSalvagedScore(t *testing.T) {
	raw := `"overallScore": 400, and then garbage`
	a := FallbackAnalysis(AnalyzeRequest{Tier: constants.TierFree}, raw, "m", time.Now())
	if a.OverallScore != 100 {
		t.Errorf("OverallScore = %d, want 100", a.OverallScore)
	}
}

func TestFallbackAnalysisPremiumSkeleton(t *testing.T) {
	req := AnalyzeRequest{
		ContractText: strings.Repeat("x", 1500),
		ContractType: "Employment",
		Tier:         constants.TierPremium,
	}
	a := FallbackAnalysis(req, "", "gemini-1.5-flash", time.Now())

	if len(a.ContractText) != constants.AnalysisTextEchoLimit {
		t.Errorf("ContractText length = %d, want %d", len(a.ContractText), constants.AnalysisTextEchoLimit)
	}
	if len(a.Recommendations) != 1 || a.Recommendations[0] != constants.ReviewManually {
		t.Errorf("Recommendations = %v", a.Recommendations)
	}
	if len(a.KeyClauses) != 1 || a.KeyClauses[0] != constants.NoKeyClauses {
		t.Errorf("KeyClauses = %v", a.KeyClauses)
	}
	if a.CompensationStructure.BaseSalary != constants.NotSpecified {
		t.Errorf("CompensationStructure = %+v", a.CompensationStructure)
	}
	if a.AIModel != "gemini-1.5-flash" {
		t.Errorf("AIModel = %q", a.AIModel)
	}
	if a.Version != constants.SchemaVersion {
		t.Errorf("Version = %d", a.Version)
	}
}

func TestFallbackAnalysisPremiumTextHeuristics(t *testing.T) {
	req := AnalyzeRequest{
		ContractText: "Duration: 3 years. Termination: 60 days notice.",
		Tier:         constants.TierPremium,
	}
	a := FallbackAnalysis(req, "no json here", "m", time.Now())

	if a.ContractDuration != "3 years" {
		t.Errorf("ContractDuration = %q, want 3 years", a.ContractDuration)
	}
	if a.TerminationConditions != "60 days" {
		t.Errorf("TerminationConditions = %q, want 60 days", a.TerminationConditions)
	}
}

func TestFallbackAnalysisPremiumStringLists(t *testing.T) {
	raw := `{
	  "keyClauses": ["Non-compete clause", "Confidentiality clause"],
	  "recommendations": ["Negotiate notice period"],
	  "legalCompliance": [],
	  broken from here on
	`
	a := FallbackAnalysis(AnalyzeRequest{Tier: constants.TierPremium}, raw, "m", time.Now())

	if len(a.KeyClauses) != 2 || a.KeyClauses[0] != "Non-compete clause" {
		t.Errorf("KeyClauses = %v", a.KeyClauses)
	}
	if len(a.Recommendations) != 1 || a.Recommendations[0] != "Negotiate notice period" {
		t.Errorf("Recommendations = %v", a.Recommendations)
	}
	if len(a.LegalCompliance) != 0 {
		t.Errorf("LegalCompliance = %v, want empty", a.LegalCompliance)
	}
}
