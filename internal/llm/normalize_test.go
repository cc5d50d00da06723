package llm

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/entity"
)

func premiumRequest(contractText string) AnalyzeRequest {
	return AnalyzeRequest{
		ContractText: contractText,
		ContractType: "Employment",
		UserID:       uuid.New(),
		Tier:         constants.TierPremium,
	}
}

func TestNormalizeAnalysisRepairedResponse(t *testing.T) {
	raw := "```json\n" + `{
		summary: "Aggressive non-compete terms",
		risks: [{risk: "Non-compete", explanation: "Two year restriction", severity: "high"}],
		opportunities: [],
	}` + "\n```"

	m, err := ParseAnalysis(RepairJSON(raw))
	if err != nil {
		t.Fatalf("ParseAnalysis after repair: %v", err)
	}

	req := premiumRequest("Some employment contract text")
	a := NormalizeAnalysis(m, req, "gemini-1.5-flash", time.Now())

	if a.Summary != "Aggressive non-compete terms" {
		t.Errorf("Summary = %q", a.Summary)
	}
	if len(a.Risks) != 1 || a.Risks[0].Severity != "high" {
		t.Fatalf("Risks = %+v", a.Risks)
	}
	// No score in the response: one high risk against the baseline.
	if a.OverallScore != 30 {
		t.Errorf("OverallScore = %d, want 30", a.OverallScore)
	}
	if a.AIModel != "gemini-1.5-flash" {
		t.Errorf("AIModel = %q", a.AIModel)
	}
	if a.Language != constants.DefaultLanguage {
		t.Errorf("Language = %q", a.Language)
	}
}

func TestNormalizeAnalysisClampsModelScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{"above maximum", 150, 100},
		{"negative", -20, 0},
		{"in range", 73, 73},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{"summary": "ok", "overallScore": tt.score}
			a := NormalizeAnalysis(m, AnalyzeRequest{Tier: constants.TierFree}, "m", time.Now())
			if a.OverallScore != tt.want {
				t.Errorf("OverallScore = %d, want %d", a.OverallScore, tt.want)
			}
		})
	}
}

func TestNormalizeAnalysisExplicitScoreWins(t *testing.T) {
	m := map[string]any{
		"summary":      "ok",
		"risks":        []any{map[string]any{"risk": "a", "severity": "high"}},
		"overallScore": float64(88),
	}
	a := NormalizeAnalysis(m, premiumRequest("text"), "m", time.Now())
	if a.OverallScore != 88 {
		t.Errorf("OverallScore = %d, want 88", a.OverallScore)
	}
}

func TestNormalizeAnalysisToleratesWrongShapes(t *testing.T) {
	// A single malformed field must not discard the rest of the response.
	m := map[string]any{
		"summary":         "usable",
		"risks":           "not an array",
		"opportunities":   []any{map[string]any{"opportunity": "renegotiate", "impact": "high"}},
		"recommendations": float64(7),
	}
	a := NormalizeAnalysis(m, AnalyzeRequest{Tier: constants.TierFree}, "m", time.Now())

	if a.Summary != "usable" {
		t.Errorf("Summary = %q", a.Summary)
	}
	if len(a.Risks) != 0 {
		t.Errorf("Risks = %+v, want empty", a.Risks)
	}
	if len(a.Opportunities) != 1 || a.Opportunities[0].Opportunity != "renegotiate" {
		t.Errorf("Opportunities = %+v", a.Opportunities)
	}
}

func TestNormalizeAnalysisIPClausesSingleString(t *testing.T) {
	m := map[string]any{
		"summary":                     "ok",
		"intellectualPropertyClauses": "All work product belongs to the company",
	}
	a := NormalizeAnalysis(m, premiumRequest("text"), "m", time.Now())
	want := []string{"All work product belongs to the company"}
	if len(a.IntellectualPropertyClauses) != 1 || a.IntellectualPropertyClauses[0] != want[0] {
		t.Errorf("IntellectualPropertyClauses = %v, want %v", a.IntellectualPropertyClauses, want)
	}
}

func TestBackfillPremiumHeuristics(t *testing.T) {
	contractText := "This agreement has a Duration: 2 years. " +
		"Termination: 30 days notice. " +
		"The confidentiality and non-compete sections apply, " +
		"plus compliance and intellectual property assignments."

	m := map[string]any{
		"summary": "ok",
		"risks": []any{
			map[string]any{"risk": "Broad IP assignment", "severity": "medium"},
		},
	}
	a := NormalizeAnalysis(m, premiumRequest(contractText), "m", time.Now())

	if a.ContractDuration != "2 years" {
		t.Errorf("ContractDuration = %q, want 2 years", a.ContractDuration)
	}
	if a.TerminationConditions != "30 days" {
		t.Errorf("TerminationConditions = %q, want 30 days", a.TerminationConditions)
	}
	if len(a.KeyClauses) != 2 {
		t.Errorf("KeyClauses = %v, want confidentiality and non-compete", a.KeyClauses)
	}
	if len(a.LegalCompliance) != 1 || a.LegalCompliance[0] != constants.CompliantWithLocalLaws {
		t.Errorf("LegalCompliance = %v", a.LegalCompliance)
	}
	if len(a.IntellectualPropertyClauses) != 1 || a.IntellectualPropertyClauses[0] != constants.IPOwnershipClause {
		t.Errorf("IntellectualPropertyClauses = %v", a.IntellectualPropertyClauses)
	}
	if len(a.Recommendations) != 1 || a.Recommendations[0] != "Mitigate risk: Broad IP assignment" {
		t.Errorf("Recommendations = %v", a.Recommendations)
	}
	if a.CompensationStructure.BaseSalary != constants.NotSpecified {
		t.Errorf("CompensationStructure = %+v", a.CompensationStructure)
	}
	if len(a.NegotiationPoints) != 1 || a.NegotiationPoints[0] != constants.NoNegotiationPoints {
		t.Errorf("NegotiationPoints = %v", a.NegotiationPoints)
	}
	if a.FinancialTerms.Description != constants.NotSpecified {
		t.Errorf("FinancialTerms = %+v", a.FinancialTerms)
	}
}

func TestBackfillPremiumSentinelsOnPlainText(t *testing.T) {
	m := map[string]any{"summary": "ok"}
	a := NormalizeAnalysis(m, premiumRequest("nothing recognizable here"), "m", time.Now())

	if a.ContractDuration != constants.NotSpecified {
		t.Errorf("ContractDuration = %q", a.ContractDuration)
	}
	if a.TerminationConditions != constants.NotSpecified {
		t.Errorf("TerminationConditions = %q", a.TerminationConditions)
	}
	if len(a.KeyClauses) != 1 || a.KeyClauses[0] != constants.NoKeyClauses {
		t.Errorf("KeyClauses = %v", a.KeyClauses)
	}
	if len(a.Recommendations) != 1 || a.Recommendations[0] != constants.NoRecommendations {
		t.Errorf("Recommendations = %v", a.Recommendations)
	}
	if len(a.LegalCompliance) != 0 {
		t.Errorf("LegalCompliance = %v, want empty", a.LegalCompliance)
	}
	if len(a.IntellectualPropertyClauses) != 0 {
		t.Errorf("IntellectualPropertyClauses = %v, want empty", a.IntellectualPropertyClauses)
	}
}

func TestNormalizeAnalysisFreeTierSkipsBackfill(t *testing.T) {
	m := map[string]any{"summary": "ok"}
	a := NormalizeAnalysis(m, AnalyzeRequest{Tier: constants.TierFree}, "m", time.Now())

	if a.ContractDuration != "" {
		t.Errorf("ContractDuration = %q, want empty for free tier", a.ContractDuration)
	}
	if (a.CompensationStructure != entity.CompensationStructure{}) {
		t.Errorf("CompensationStructure = %+v, want zero", a.CompensationStructure)
	}
}
