package llm

import (
	"testing"

	"github.com/contractwise/backend/constants"
)

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildAnalysisJSONSchema(constants.TierFree)

	valid := []byte(`{"risks":[],"opportunities":[],"summary":"ok","overallScore":50}`)
	if err := ValidateJSONAgainstSchema(schema, valid); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}

	missing := []byte(`{"risks":[]}`)
	if err := ValidateJSONAgainstSchema(schema, missing); err == nil {
		t.Error("document missing required fields accepted")
	}
}
