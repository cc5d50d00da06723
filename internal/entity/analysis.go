package entity

import (
	"time"

	"github.com/google/uuid"
)

// Risk is a single adverse finding in a contract.
type Risk struct {
	Risk        string `json:"risk"`
	Explanation string `json:"explanation"`
	Severity    string `json:"severity"` // low | medium | high
}

// Opportunity is a single favorable finding in a contract.
type Opportunity struct {
	Opportunity string `json:"opportunity"`
	Explanation string `json:"explanation"`
	Impact      string `json:"impact"` // low | medium | high
}

// CompensationStructure groups the pay-related terms of an employment-style
// contract. All members are free-text strings as reported by the model.
type CompensationStructure struct {
	BaseSalary    string `json:"baseSalary"`
	Bonuses       string `json:"bonuses"`
	Equity        string `json:"equity"`
	OtherBenefits string `json:"otherBenefits"`
}

// FinancialTerms describes payment terms found in the contract.
type FinancialTerms struct {
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

// UserFeedback is the owner's rating of an analysis.
type UserFeedback struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// ContractAnalysis is the persisted result of one analysis run. JSON tags
// follow the wire contract the AI model is instructed to emit, so the same
// names appear in prompts, model output, persisted records, and API
// responses.
type ContractAnalysis struct {
	ID                          uuid.UUID             `json:"id"`
	UserID                      uuid.UUID             `json:"userId"`
	ContractText                string                `json:"contractText"`
	ContractType                string                `json:"contractType"`
	Risks                       []Risk                `json:"risks"`
	Opportunities               []Opportunity         `json:"opportunities"`
	Summary                     string                `json:"summary"`
	Recommendations             []string              `json:"recommendations"`
	KeyClauses                  []string              `json:"keyClauses"`
	LegalCompliance             []string              `json:"legalCompliance"`
	NegotiationPoints           []string              `json:"negotiationPoints"`
	ContractDuration            string                `json:"contractDuration"`
	TerminationConditions       string                `json:"terminationConditions"`
	OverallScore                int                   `json:"overallScore"`
	CompensationStructure       CompensationStructure `json:"compensationStructure"`
	PerformanceMetrics          []string              `json:"performanceMetrics"`
	IntellectualPropertyClauses []string              `json:"intellectualPropertyClauses"`
	FinancialTerms              FinancialTerms        `json:"financialTerms"`
	CreatedAt                   time.Time             `json:"createdAt"`
	Version                     int                   `json:"version"`
	UserFeedback                UserFeedback          `json:"userFeedback"`
	CustomFields                map[string]string     `json:"customFields"`
	ExpirationDate              time.Time             `json:"expirationDate"`
	Language                    string                `json:"language"`
	AIModel                     string                `json:"aiModel"`
}
