package constants

// Severity / impact labels for risk and opportunity findings.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Sentinel strings substituted for absent optional fields. These exact
// values are part of the persisted record contract.
const (
	NotSpecified           = "Not specified"
	NoSummary              = "No summary provided"
	FallbackSummary        = "Error analyzing contract"
	NoKeyClauses           = "No key clauses identified"
	NoRecommendations      = "No recommendations available"
	NoNegotiationPoints    = "No negotiation points identified"
	NoPerformanceMetrics   = "No performance metrics specified"
	UnknownField           = "Unknown"
	CompliantWithLocalLaws = "Compliant with local laws"
	IPOwnershipClause      = "IP ownership clause"
	ReviewManually         = "Review contract manually"
)

// Scoring policy. The baseline and the 20/10/5 weights are compatibility
// constants, not derived from anything; keep them stable.
const (
	ScoreBaseline     = 50
	ScoreWeightHigh   = 20
	ScoreWeightMedium = 10
	ScoreWeightLow    = 5
	ScoreMin          = 0
	ScoreMax          = 100
)

// Prompt truncation limits (bytes of contract text embedded in prompts).
const (
	DetectPromptTextLimit = 2000
	AnalysisTextEchoLimit = 1000
	SchemaVersion         = 1
	DefaultLanguage       = "en"
	RecordRetentionDays   = 30
)
