package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/entity"
)

// Heuristics run against the raw contract text when the model omits a
// premium field.
var (
	reDuration    = regexp.MustCompile(`(?i)(?:duration|term)\s*:\s*(\d+\s*(?:year|month|day)s?)`)
	reTermination = regexp.MustCompile(`(?i)(?:termination|notice period)\s*:\s*(\d+\s*days)`)
)

// ParseAnalysis decodes repaired model text as a JSON object. Decoding into
// a generic map keeps one malformed field from discarding the rest of an
// otherwise usable response.
func ParseAnalysis(text string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	return m, nil
}

// NormalizeAnalysis lifts a decoded model response into a complete record.
// Every field is extracted individually; anything missing or wrong-shaped
// becomes its zero value and is then backfilled per tier.
func NormalizeAnalysis(m map[string]any, req AnalyzeRequest, model string, now time.Time) *entity.ContractAnalysis {
	a := &entity.ContractAnalysis{
		UserID:                      req.UserID,
		ContractText:                getString(m, "contractText"),
		ContractType:                getString(m, "contractType"),
		Risks:                       getRisks(m["risks"]),
		Opportunities:               getOpportunities(m["opportunities"]),
		Summary:                     getString(m, "summary"),
		Recommendations:             getStringSlice(m["recommendations"]),
		KeyClauses:                  getStringSlice(m["keyClauses"]),
		LegalCompliance:             getStringSlice(m["legalCompliance"]),
		NegotiationPoints:           getStringSlice(m["negotiationPoints"]),
		ContractDuration:            getString(m, "contractDuration"),
		TerminationConditions:       getString(m, "terminationConditions"),
		CompensationStructure:       getCompensation(m["compensationStructure"]),
		PerformanceMetrics:          getStringSlice(m["performanceMetrics"]),
		IntellectualPropertyClauses: getIPClauses(m["intellectualPropertyClauses"]),
		FinancialTerms:              getFinancialTerms(m["financialTerms"]),
		CreatedAt:                   getTime(m, "createdAt", now),
		Version:                     getInt(m, "version", constants.SchemaVersion),
		UserFeedback:                getFeedback(m["userFeedback"]),
		CustomFields:                getCustomFields(m["customFields"]),
		ExpirationDate:              getTime(m, "expirationDate", now.Add(constants.RecordRetentionDays*24*time.Hour)),
		Language:                    getString(m, "language"),
		AIModel:                     getString(m, "aiModel"),
	}

	if a.Language == "" {
		a.Language = constants.DefaultLanguage
	}
	if a.AIModel == "" {
		a.AIModel = model
	}

	if score, ok := getNumber(m, "overallScore"); ok && !math.IsNaN(score) {
		a.OverallScore = clampScore(int(score))
	} else {
		a.OverallScore = ComputeOverallScore(a.Risks, a.Opportunities)
	}

	if req.Tier == constants.TierPremium {
		backfillPremium(a, req.ContractText)
	}
	return a
}

// backfillPremium fills the premium-only fields the model left out, using
// cheap heuristics over the contract text where possible and sentinel
// values otherwise.
func backfillPremium(a *entity.ContractAnalysis, contractText string) {
	if a.ContractDuration == "" {
		if m := reDuration.FindStringSubmatch(contractText); m != nil {
			a.ContractDuration = m[1]
		} else {
			a.ContractDuration = constants.NotSpecified
		}
	}

	if a.TerminationConditions == "" {
		if m := reTermination.FindStringSubmatch(contractText); m != nil {
			a.TerminationConditions = m[1]
		} else {
			a.TerminationConditions = constants.NotSpecified
		}
	}

	if len(a.LegalCompliance) == 0 {
		if strings.Contains(contractText, "compliance") {
			a.LegalCompliance = []string{constants.CompliantWithLocalLaws}
		} else {
			a.LegalCompliance = []string{}
		}
	}

	if len(a.KeyClauses) == 0 {
		a.KeyClauses = []string{}
		if strings.Contains(contractText, "confidentiality") {
			a.KeyClauses = append(a.KeyClauses, "Confidentiality clause")
		}
		if strings.Contains(contractText, "non-compete") {
			a.KeyClauses = append(a.KeyClauses, "Non-compete clause")
		}
		if len(a.KeyClauses) == 0 {
			a.KeyClauses = append(a.KeyClauses, constants.NoKeyClauses)
		}
	}

	if len(a.Recommendations) == 0 {
		a.Recommendations = make([]string, 0, len(a.Risks))
		for _, r := range a.Risks {
			a.Recommendations = append(a.Recommendations, "Mitigate risk: "+r.Risk)
		}
		if len(a.Recommendations) == 0 {
			a.Recommendations = append(a.Recommendations, constants.NoRecommendations)
		}
	}

	if a.CompensationStructure == (entity.CompensationStructure{}) {
		a.CompensationStructure = entity.CompensationStructure{
			BaseSalary:    constants.NotSpecified,
			Bonuses:       constants.NotSpecified,
			Equity:        constants.NotSpecified,
			OtherBenefits: constants.NotSpecified,
		}
	}

	if a.IntellectualPropertyClauses == nil {
		if strings.Contains(contractText, "intellectual property") {
			a.IntellectualPropertyClauses = []string{constants.IPOwnershipClause}
		} else {
			a.IntellectualPropertyClauses = []string{}
		}
	}

	if len(a.NegotiationPoints) == 0 {
		a.NegotiationPoints = []string{constants.NoNegotiationPoints}
	}

	if len(a.PerformanceMetrics) == 0 {
		a.PerformanceMetrics = []string{constants.NoPerformanceMetrics}
	}

	if a.FinancialTerms.Description == "" && len(a.FinancialTerms.Details) == 0 {
		a.FinancialTerms = entity.FinancialTerms{
			Description: constants.NotSpecified,
			Details:     []string{},
		}
	}
}

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func getNumber(m map[string]any, key string) (float64, bool) {
	f, ok := m[key].(float64)
	return f, ok
}

func getInt(m map[string]any, key string, def int) int {
	if f, ok := m[key].(float64); ok && f != 0 {
		return int(f)
	}
	return def
}

func getTime(m map[string]any, key string, def time.Time) time.Time {
	if s, ok := m[key].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return def
}

func getStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getRisks(v any) []entity.Risk {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]entity.Risk, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, entity.Risk{
			Risk:        getString(obj, "risk"),
			Explanation: getString(obj, "explanation"),
			Severity:    getString(obj, "severity"),
		})
	}
	return out
}

func getOpportunities(v any) []entity.Opportunity {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]entity.Opportunity, 0, len(items))
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, entity.Opportunity{
			Opportunity: getString(obj, "opportunity"),
			Explanation: getString(obj, "explanation"),
			Impact:      getString(obj, "impact"),
		})
	}
	return out
}

func getCompensation(v any) entity.CompensationStructure {
	obj, ok := v.(map[string]any)
	if !ok {
		return entity.CompensationStructure{}
	}
	return entity.CompensationStructure{
		BaseSalary:    getString(obj, "baseSalary"),
		Bonuses:       getString(obj, "bonuses"),
		Equity:        getString(obj, "equity"),
		OtherBenefits: getString(obj, "otherBenefits"),
	}
}

func getFinancialTerms(v any) entity.FinancialTerms {
	obj, ok := v.(map[string]any)
	if !ok {
		return entity.FinancialTerms{}
	}
	return entity.FinancialTerms{
		Description: getString(obj, "description"),
		Details:     getStringSlice(obj["details"]),
	}
}

func getFeedback(v any) entity.UserFeedback {
	obj, ok := v.(map[string]any)
	if !ok {
		return entity.UserFeedback{}
	}
	rating, _ := obj["rating"].(float64)
	return entity.UserFeedback{
		Rating:   int(rating),
		Comments: getString(obj, "comments"),
	}
}

func getCustomFields(v any) map[string]string {
	obj, ok := v.(map[string]any)
	if !ok {
		return map[string]string{}
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		if s, ok := val.(string); ok {
			out[k] = s
		}
	}
	return out
}

// getIPClauses accepts either a single string or an array; models emit both.
// A nil return means the field was absent, which callers distinguish from an
// explicitly empty array.
func getIPClauses(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []any:
		return getStringSlice(t)
	default:
		return nil
	}
}
