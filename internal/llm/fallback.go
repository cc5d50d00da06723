package llm

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/entity"
)

// Salvage regexes pull individual fields out of text that never parsed as
// JSON. Array blocks are matched up to a closing bracket followed by a comma
// or brace.
var (
	reRisksBlock           = regexp.MustCompile(`"risks"\s*:\s*\[([\s\S]*?)\]\s*[,}]`)
	reOpportunitiesBlock   = regexp.MustCompile(`"opportunities"\s*:\s*\[([\s\S]*?)\]\s*[,}]`)
	reKeyClausesBlock      = regexp.MustCompile(`"keyClauses"\s*:\s*\[([\s\S]*?)\]\s*[,}]`)
	reRecommendationsBlock = regexp.MustCompile(`"recommendations"\s*:\s*\[([\s\S]*?)\]\s*[,}]`)
	reLegalComplianceBlock = regexp.MustCompile(`"legalCompliance"\s*:\s*\[([\s\S]*?)\]\s*[,}]`)

	reRiskField        = regexp.MustCompile(`"risk"\s*:\s*"([^"]*)"`)
	reOpportunityField = regexp.MustCompile(`"opportunity"\s*:\s*"([^"]*)"`)
	reExplanationField = regexp.MustCompile(`"explanation"\s*:\s*"([^"]*)"`)
	reSeverityField    = regexp.MustCompile(`"severity"\s*:\s*"([^"]*)"`)
	reImpactField      = regexp.MustCompile(`"impact"\s*:\s*"([^"]*)"`)

	reSummaryField      = regexp.MustCompile(`"summary"\s*:\s*"([^"]*)"`)
	reOverallScoreField = regexp.MustCompile(`"overallScore"\s*:\s*(\d+)`)
	reDurationField     = regexp.MustCompile(`"contractDuration"\s*:\s*"([^"]*)"`)
	reTerminationField  = regexp.MustCompile(`"terminationConditions"\s*:\s*"([^"]*)"`)
)

// FallbackAnalysis assembles a degraded record when the model response could
// not be parsed. It starts from a tier-shaped skeleton and scrapes whatever
// fields it can out of the raw text. It never fails; with nothing usable in
// the text the skeleton itself is returned.
func FallbackAnalysis(req AnalyzeRequest, rawText, model string, now time.Time) *entity.ContractAnalysis {
	a := fallbackSkeleton(req, model, now)
	text := StripCodeFences(rawText)

	if m := reRisksBlock.FindStringSubmatch(text); m != nil {
		a.Risks = salvageRisks(m[1])
	}
	if m := reOpportunitiesBlock.FindStringSubmatch(text); m != nil {
		a.Opportunities = salvageOpportunities(m[1])
	}
	if m := reSummaryField.FindStringSubmatch(text); m != nil {
		a.Summary = m[1]
	}
	if m := reOverallScoreField.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			a.OverallScore = clampScore(n)
		}
	} else {
		a.OverallScore = ComputeOverallScore(a.Risks, a.Opportunities)
	}

	if req.Tier == constants.TierPremium {
		if m := reKeyClausesBlock.FindStringSubmatch(text); m != nil {
			a.KeyClauses = salvageStringList(m[1])
		}
		if m := reRecommendationsBlock.FindStringSubmatch(text); m != nil {
			a.Recommendations = salvageStringList(m[1])
		}
		if m := reLegalComplianceBlock.FindStringSubmatch(text); m != nil {
			a.LegalCompliance = salvageStringList(m[1])
		}

		if m := reDurationField.FindStringSubmatch(text); m != nil {
			a.ContractDuration = m[1]
		} else if m := reDuration.FindStringSubmatch(req.ContractText); m != nil {
			a.ContractDuration = m[1]
		} else {
			a.ContractDuration = constants.NotSpecified
		}

		if m := reTerminationField.FindStringSubmatch(text); m != nil {
			a.TerminationConditions = m[1]
		} else if m := reTermination.FindStringSubmatch(req.ContractText); m != nil {
			a.TerminationConditions = m[1]
		} else {
			a.TerminationConditions = constants.NotSpecified
		}
	}

	return a
}

// fallbackSkeleton is the record shape used when analysis fails outright.
// Premium records carry sentinel strings; free records stay empty.
func fallbackSkeleton(req AnalyzeRequest, model string, now time.Time) *entity.ContractAnalysis {
	a := &entity.ContractAnalysis{
		UserID:                      req.UserID,
		ContractText:                truncate(req.ContractText, constants.AnalysisTextEchoLimit),
		ContractType:                req.ContractType,
		Risks:                       []entity.Risk{},
		Opportunities:               []entity.Opportunity{},
		Summary:                     constants.FallbackSummary,
		Recommendations:             []string{},
		KeyClauses:                  []string{},
		LegalCompliance:             []string{},
		NegotiationPoints:           []string{},
		OverallScore:                0,
		PerformanceMetrics:          []string{},
		IntellectualPropertyClauses: []string{},
		CreatedAt:                   now,
		Version:                     constants.SchemaVersion,
		UserFeedback:                entity.UserFeedback{},
		CustomFields:                map[string]string{},
		ExpirationDate:              now.Add(constants.RecordRetentionDays * 24 * time.Hour),
		Language:                    constants.DefaultLanguage,
		AIModel:                     model,
	}

	if req.Tier == constants.TierPremium {
		a.Recommendations = []string{constants.ReviewManually}
		a.KeyClauses = []string{constants.NoKeyClauses}
		a.ContractDuration = constants.NotSpecified
		a.TerminationConditions = constants.NotSpecified
		a.CompensationStructure = entity.CompensationStructure{
			BaseSalary:    constants.NotSpecified,
			Bonuses:       constants.NotSpecified,
			Equity:        constants.NotSpecified,
			OtherBenefits: constants.NotSpecified,
		}
		a.FinancialTerms = entity.FinancialTerms{Description: "", Details: []string{}}
	}
	return a
}

// salvageRisks splits an array block on "}," boundaries and scrapes each
// fragment. Fields that cannot be recovered get "Unknown"; severity
// defaults to medium.
func salvageRisks(block string) []entity.Risk {
	frags := splitObjects(block)
	out := make([]entity.Risk, 0, len(frags))
	for _, f := range frags {
		r := entity.Risk{
			Risk:        constants.UnknownField,
			Explanation: constants.UnknownField,
			Severity:    constants.LevelMedium,
		}
		if m := reRiskField.FindStringSubmatch(f); m != nil {
			r.Risk = m[1]
		}
		if m := reExplanationField.FindStringSubmatch(f); m != nil {
			r.Explanation = m[1]
		}
		if m := reSeverityField.FindStringSubmatch(f); m != nil {
			r.Severity = m[1]
		}
		out = append(out, r)
	}
	return out
}

func salvageOpportunities(block string) []entity.Opportunity {
	frags := splitObjects(block)
	out := make([]entity.Opportunity, 0, len(frags))
	for _, f := range frags {
		o := entity.Opportunity{
			Opportunity: constants.UnknownField,
			Explanation: constants.UnknownField,
			Impact:      constants.LevelMedium,
		}
		if m := reOpportunityField.FindStringSubmatch(f); m != nil {
			o.Opportunity = m[1]
		}
		if m := reExplanationField.FindStringSubmatch(f); m != nil {
			o.Explanation = m[1]
		}
		if m := reImpactField.FindStringSubmatch(f); m != nil {
			o.Impact = m[1]
		}
		out = append(out, o)
	}
	return out
}

func splitObjects(block string) []string {
	parts := strings.Split(block, "},")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if !strings.HasSuffix(strings.TrimSpace(p), "}") {
			p += "}"
		}
		out = append(out, p)
	}
	return out
}

func salvageStringList(block string) []string {
	cleaned := strings.NewReplacer("[", "", "]", "", `"`, "").Replace(block)
	parts := strings.Split(cleaned, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
