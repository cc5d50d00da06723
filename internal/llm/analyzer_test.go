package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/contractwise/backend/constants"
)

// fakeGenerator replays canned responses in order.
type fakeGenerator struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

func TestAnalyzeContractParsesValidResponse(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		`{"summary": "ok", "risks": [], "opportunities": [], "overallScore": 80}`,
	}}
	a := NewAnalyzer(gen, "m", nil)

	res := a.AnalyzeContract(context.Background(), AnalyzeRequest{Tier: constants.TierFree})
	if res.Degraded {
		t.Error("valid response marked degraded")
	}
	if res.Analysis.Summary != "ok" || res.Analysis.OverallScore != 80 {
		t.Errorf("Analysis = %+v", res.Analysis)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestAnalyzeContractSalvagesUnparseableResponse(t *testing.T) {
	gen := &fakeGenerator{responses: []string{
		`Sure! Here is my take: the "summary": "one-sided deal" and more prose`,
	}}
	a := NewAnalyzer(gen, "m", nil)

	res := a.AnalyzeContract(context.Background(), AnalyzeRequest{Tier: constants.TierFree})
	if !res.Degraded {
		t.Fatal("unparseable response not marked degraded")
	}
	if res.Analysis.Summary != "one-sided deal" {
		t.Errorf("Summary = %q, want salvaged value", res.Analysis.Summary)
	}
	// Salvage runs once on the original text, with no re-generation.
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestAnalyzeContractRetriesOnceOnGenerateError(t *testing.T) {
	gen := &fakeGenerator{
		responses: []string{"", `prose with "summary": "recovered" inside`},
		errs:      []error{errors.New("transient"), nil},
	}
	a := NewAnalyzer(gen, "m", nil)

	res := a.AnalyzeContract(context.Background(), AnalyzeRequest{Tier: constants.TierFree})
	if !res.Degraded {
		t.Fatal("retry output must still go through salvage")
	}
	if res.Analysis.Summary != "recovered" {
		t.Errorf("Summary = %q, want recovered", res.Analysis.Summary)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}

func TestAnalyzeContractTotalOnDoubleFailure(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("down"), errors.New("still down")}}
	a := NewAnalyzer(gen, "m", nil)

	res := a.AnalyzeContract(context.Background(), AnalyzeRequest{Tier: constants.TierPremium})
	if !res.Degraded {
		t.Fatal("double failure not marked degraded")
	}
	if res.Analysis == nil {
		t.Fatal("Analysis is nil")
	}
	if res.Analysis.Summary != constants.FallbackSummary {
		t.Errorf("Summary = %q, want %q", res.Analysis.Summary, constants.FallbackSummary)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
}

func TestDetectContractTypeTrims(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"  Employment\n"}}
	a := NewAnalyzer(gen, "m", nil)

	got, err := a.DetectContractType(context.Background(), "text")
	if err != nil {
		t.Fatalf("DetectContractType: %v", err)
	}
	if got != "Employment" {
		t.Errorf("type = %q, want Employment", got)
	}
}

func TestDetectContractTypePropagatesError(t *testing.T) {
	gen := &fakeGenerator{errs: []error{errors.New("quota")}}
	a := NewAnalyzer(gen, "m", nil)

	if _, err := a.DetectContractType(context.Background(), "text"); err == nil {
		t.Fatal("expected error")
	}
}
