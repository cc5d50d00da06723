package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/contractwise/backend/constants"
)

// BuildAnalysisJSONSchema returns the JSON-Schema (draft 2020-12 subset) the
// model response is checked against. Validation is advisory; a response that
// fails it still flows through normalization, the failure is only logged.
func BuildAnalysisJSONSchema(tier constants.Tier) map[string]any {
	levelProp := map[string]any{
		"type": "string",
		"enum": []string{constants.LevelLow, constants.LevelMedium, constants.LevelHigh},
	}
	props := map[string]any{
		"userId":       map[string]any{"type": "string"},
		"contractText": map[string]any{"type": "string"},
		"contractType": map[string]any{"type": "string"},
		"risks": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"risk":        map[string]any{"type": "string"},
					"explanation": map[string]any{"type": "string"},
					"severity":    levelProp,
				},
			},
		},
		"opportunities": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"opportunity": map[string]any{"type": "string"},
					"explanation": map[string]any{"type": "string"},
					"impact":      levelProp,
				},
			},
		},
		"summary":      map[string]any{"type": "string", "minLength": 1},
		"overallScore": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
	}
	required := []string{"risks", "opportunities", "summary", "overallScore"}

	if tier == constants.TierPremium {
		stringArray := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
		props["recommendations"] = stringArray
		props["keyClauses"] = stringArray
		props["legalCompliance"] = stringArray
		props["negotiationPoints"] = stringArray
		props["performanceMetrics"] = stringArray
		props["contractDuration"] = map[string]any{"type": "string"}
		props["terminationConditions"] = map[string]any{"type": "string"}
		props["compensationStructure"] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"baseSalary":    map[string]any{"type": "string"},
				"bonuses":       map[string]any{"type": "string"},
				"equity":        map[string]any{"type": "string"},
				"otherBenefits": map[string]any{"type": "string"},
			},
		}
		props["financialTerms"] = map[string]any{
			"type": "object",
			"properties": map[string]any{
				"description": map[string]any{"type": "string"},
				"details":     stringArray,
			},
		}
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
