package llm

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/contractwise/backend/constants"
)

// truncate returns at most n bytes of s, backing off to a rune boundary so
// the result stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// BuildDetectPrompt asks the model for a bare contract type label. Only the
// first 2000 characters of the text are embedded.
func BuildDetectPrompt(contractText string) string {
	return fmt.Sprintf(`
    Analyze the following contract text and determine the type of contract.
    Provide only the contract type as a string (e.g., "Employment", "Non-disclosure Agreement", "Sales", "Lease", etc.).
    Do not include any additional explanation or text.

    Contract text:
    %s
  `, truncate(contractText, constants.DetectPromptTextLimit))
}

// BuildAnalysisPrompt composes the tier-specific analysis prompt. The premium
// prompt requests the full field set and embeds the whole contract; the free
// prompt requests only risks, opportunities, score, and summary, and embeds
// just the first 1000 characters. Both echo a response skeleton so the model
// fills in identity fields verbatim.
func BuildAnalysisPrompt(req AnalyzeRequest, model string, now time.Time) string {
	echo := truncate(req.ContractText, constants.AnalysisTextEchoLimit)
	if req.Tier == constants.TierPremium {
		createdAt := now.UTC().Format(time.RFC3339)
		expiresAt := now.Add(constants.RecordRetentionDays * 24 * time.Hour).UTC().Format(time.RFC3339)
		return fmt.Sprintf(`
    Analyze the following %s contract and provide a detailed analysis in JSON format with the following fields:

    - overallScore: A number between 0 and 100 representing the overall quality of the contract, considering risks and opportunities. Example: 75
    - summary: A brief summary of the contract, including key terms and conditions. Example: "This employment contract offers a competitive salary but has strict non-compete clauses."
    - risks: An array of at least 10 objects with risk, explanation, and severity (low, medium, high). Example: [{"risk": "Non-compete clause", "explanation": "Restricts future employment opportunities", "severity": "high"}]
    - opportunities: An array of at least 10 objects with opportunity, explanation, and impact (low, medium, high). Example: [{"opportunity": "High salary", "explanation": "Above market rate", "impact": "high"}]
    - keyClauses: An array of key clauses extracted from the contract. Example: ["Non-compete clause", "Confidentiality clause"]
    - recommendations: An array of recommendations to improve the contract. Example: ["Negotiate shorter non-compete period", "Add performance bonus"]
    - legalCompliance: An array of strings describing legal compliance aspects. Example: ["Compliant with local labor laws", "GDPR compliant"]
    - negotiationPoints: An array of potential negotiation points. Example: ["Salary increase", "Flexible hours"]
    - contractDuration: A string describing the duration of the contract. Example: "2 years"
    - terminationConditions: A string describing the termination conditions. Example: "30 days notice"
    - compensationStructure: An object with baseSalary, bonuses, equity, and otherBenefits. Example: {"baseSalary": "$100,000/year", "bonuses": "Up to $10,000", "equity": "0.1%% stock options", "otherBenefits": "Health insurance"}
    - performanceMetrics: An array of performance metrics or KPIs. Example: ["Sales targets", "Project deadlines"]
    - intellectualPropertyClauses: An array of intellectual property clauses. Example: ["IP ownership by employer", "Non-disclosure of IP"]
    - financialTerms: An optional object with description and details. Example: {"description": "Payment terms", "details": ["Monthly payments", "Net 30 terms"]}

    Format your response as a JSON object with the following structure:
    {
      "userId": "%s",
      "contractText": "%s",
      "contractType": "%s",
      "risks": [{"risk": "string", "explanation": "string", "severity": "low|medium|high"}],
      "opportunities": [{"opportunity": "string", "explanation": "string", "impact": "low|medium|high"}],
      "summary": "string",
      "recommendations": ["string"],
      "keyClauses": ["string"],
      "legalCompliance": ["string"],
      "negotiationPoints": ["string"],
      "contractDuration": "string",
      "terminationConditions": "string",
      "overallScore": number,
      "compensationStructure": {
        "baseSalary": "string",
        "bonuses": "string",
        "equity": "string",
        "otherBenefits": "string"
      },
      "performanceMetrics": ["string"],
      "intellectualPropertyClauses": ["string"],
      "createdAt": "%s",
      "version": 1,
      "userFeedback": {"rating": 0, "comments": ""},
      "customFields": {},
      "expirationDate": "%s",
      "language": "en",
      "aiModel": "%s",
      "financialTerms": {"description": "string", "details": ["string"]}
    }

    Important: Provide only the JSON object in your response, without any additional text or formatting.
    Contract text:
    %s
  `, req.ContractType, req.UserID, echo, req.ContractType, createdAt, expiresAt, model, req.ContractText)
	}

	return fmt.Sprintf(`
    Analyze the following %s contract and provide a detailed analysis in JSON format with the following fields:
      - risks: An array of at least 10 objects with risk, explanation, and severity (low, medium, high). Example: [{"risk": "Non-compete clause", "explanation": "Restricts future employment opportunities", "severity": "high"}]
      - opportunities: An array of at least 10 objects with opportunity, explanation, and impact (low, medium, high). Example: [{"opportunity": "High salary", "explanation": "Above market rate", "impact": "high"}]
      - overallScore: A number between 0 and 100 representing the overall quality of the contract, considering risks and opportunities. Example: 75
      - summary: A brief summary of the contract
    Format your response as a JSON object with the following structure:
    {
      "userId": "%s",
      "contractText": "%s",
      "contractType": "%s",
      "risks": [{"risk": "string", "explanation": "string", "severity": "low|medium|high"}],
      "opportunities": [{"opportunity": "string", "explanation": "string", "impact": "low|medium|high"}],
      "summary": "string",
      "overallScore": number
    }

    Important: Provide only the JSON object in your response, without any additional text or formatting.
    Contract text:
    %s
  `, req.ContractType, req.UserID, echo, req.ContractType, echo)
}
