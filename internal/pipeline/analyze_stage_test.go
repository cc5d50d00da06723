package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/llm"
)

type fakeBlobs struct {
	data    map[string][]byte
	setErr  error
	deleted []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{data: map[string][]byte{}}
}

func (f *fakeBlobs) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	b, ok := f.data[key]
	if !ok {
		return nil, errors.New("missing")
	}
	return b, nil
}

func (f *fakeBlobs) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.data, key)
	return nil
}

type fakeExtractor struct {
	text string
	err  error
	keys []string
}

func (f *fakeExtractor) Extract(ctx context.Context, fileKey string) (string, error) {
	f.keys = append(f.keys, fileKey)
	return f.text, f.err
}

type fakeAnalyzer struct {
	result     llm.Result
	detectType string
	detectErr  error
	lastReq    llm.AnalyzeRequest
}

func (f *fakeAnalyzer) DetectContractType(ctx context.Context, contractText string) (string, error) {
	return f.detectType, f.detectErr
}

func (f *fakeAnalyzer) AnalyzeContract(ctx context.Context, req llm.AnalyzeRequest) llm.Result {
	f.lastReq = req
	return f.result
}

type fakeContracts struct {
	created *entity.ContractAnalysis
	err     error
}

func (f *fakeContracts) Create(ctx context.Context, a *entity.ContractAnalysis) (*entity.ContractAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	saved := *a
	saved.ID = uuid.New()
	f.created = &saved
	return &saved, nil
}

func (f *fakeContracts) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.ContractAnalysis, error) {
	return nil, nil
}

func (f *fakeContracts) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.ContractAnalysis, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContracts) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func testUser(premium bool) *entity.User {
	return &entity.User{ID: uuid.New(), Email: "u@example.com", IsPremium: premium}
}

func TestAnalyzeStagePersistsAndCleansUp(t *testing.T) {
	blobs := newFakeBlobs()
	extractor := &fakeExtractor{text: "extracted contract text"}
	analyzer := &fakeAnalyzer{result: llm.Result{Analysis: &entity.ContractAnalysis{
		Summary:      "looks fine",
		Risks:        []entity.Risk{},
		ContractText: "echo",
	}}}
	contracts := &fakeContracts{}

	stage := NewAnalyzeStage(blobs, extractor, analyzer, contracts, "m", nil)
	res, err := stage.Run(context.Background(), AnalyzeParams{
		User:         testUser(true),
		FileData:     []byte("%PDF"),
		ContractType: "Employment",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Analysis.ID == uuid.Nil {
		t.Error("persisted record missing ID")
	}
	if res.Analysis.ContractText != "echo" {
		t.Errorf("ContractText = %q, analyzer output must win when present", res.Analysis.ContractText)
	}
	if analyzer.lastReq.Tier != constants.TierPremium {
		t.Errorf("tier = %q, want premium", analyzer.lastReq.Tier)
	}
	if analyzer.lastReq.ContractText != "extracted contract text" {
		t.Errorf("analyzer got text %q", analyzer.lastReq.ContractText)
	}
	if len(blobs.deleted) != 1 {
		t.Fatalf("deleted keys = %v, want one", blobs.deleted)
	}
	if !strings.HasPrefix(blobs.deleted[0], "file:") {
		t.Errorf("deleted key = %q", blobs.deleted[0])
	}
	if len(blobs.data) != 0 {
		t.Errorf("staged blob left behind: %v", blobs.data)
	}
}

func TestAnalyzeStageAppliesPersistDefaults(t *testing.T) {
	blobs := newFakeBlobs()
	extractor := &fakeExtractor{text: "full text"}
	analyzer := &fakeAnalyzer{result: llm.Result{Analysis: &entity.ContractAnalysis{
		Summary: "ok",
	}}}
	contracts := &fakeContracts{}

	stage := NewAnalyzeStage(blobs, extractor, analyzer, contracts, "gemini-1.5-flash", nil)
	res, err := stage.Run(context.Background(), AnalyzeParams{
		User:         testUser(false),
		FileData:     []byte("%PDF"),
		ContractType: "Lease",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	a := res.Analysis
	if a.ContractText != "full text" {
		t.Errorf("ContractText = %q, want extracted text", a.ContractText)
	}
	if a.ContractType != "Lease" {
		t.Errorf("ContractType = %q", a.ContractType)
	}
	if a.Risks == nil || a.Opportunities == nil || a.Recommendations == nil {
		t.Error("nil slices must become empty slices before persist")
	}
	if a.ContractDuration != constants.NotSpecified {
		t.Errorf("ContractDuration = %q", a.ContractDuration)
	}
	if a.CompensationStructure.BaseSalary != constants.NotSpecified {
		t.Errorf("CompensationStructure = %+v", a.CompensationStructure)
	}
	if a.FinancialTerms.Description != constants.NotSpecified {
		t.Errorf("FinancialTerms = %+v", a.FinancialTerms)
	}
	if a.Version != constants.SchemaVersion {
		t.Errorf("Version = %d", a.Version)
	}
	if a.Language != constants.DefaultLanguage {
		t.Errorf("Language = %q", a.Language)
	}
	if a.AIModel != "gemini-1.5-flash" {
		t.Errorf("AIModel = %q", a.AIModel)
	}
	if a.CreatedAt.IsZero() || a.ExpirationDate.IsZero() {
		t.Error("timestamps not defaulted")
	}
}

func TestAnalyzeStageRejectsIncompleteRecord(t *testing.T) {
	blobs := newFakeBlobs()
	// Empty extracted text and an analyzer response with no contract text
	// leaves the record without its required fields.
	extractor := &fakeExtractor{text: ""}
	analyzer := &fakeAnalyzer{result: llm.Result{Analysis: &entity.ContractAnalysis{Summary: "ok"}}}
	contracts := &fakeContracts{}

	stage := NewAnalyzeStage(blobs, extractor, analyzer, contracts, "m", nil)
	_, err := stage.Run(context.Background(), AnalyzeParams{
		User:         testUser(false),
		FileData:     []byte("%PDF"),
		ContractType: "Lease",
	})
	if err == nil {
		t.Fatal("expected error for record missing contract text")
	}
	if contracts.created != nil {
		t.Error("incomplete record must not be persisted")
	}
	if len(blobs.deleted) != 1 {
		t.Errorf("cleanup skipped: deleted = %v", blobs.deleted)
	}
}

func TestAnalyzeStageCleansUpOnExtractFailure(t *testing.T) {
	blobs := newFakeBlobs()
	extractor := &fakeExtractor{err: errors.New("malformed pdf")}
	stage := NewAnalyzeStage(blobs, extractor, &fakeAnalyzer{}, &fakeContracts{}, "m", nil)

	_, err := stage.Run(context.Background(), AnalyzeParams{
		User:         testUser(false),
		FileData:     []byte("junk"),
		ContractType: "Lease",
	})
	if err == nil {
		t.Fatal("expected extract error")
	}
	if len(blobs.deleted) != 1 {
		t.Errorf("staged blob not cleaned up after failure: %v", blobs.deleted)
	}
}

func TestAnalyzeStageReportsDegraded(t *testing.T) {
	analyzer := &fakeAnalyzer{result: llm.Result{
		Analysis: &entity.ContractAnalysis{Summary: "Error analyzing contract", ContractText: "echo"},
		Degraded: true,
	}}
	stage := NewAnalyzeStage(newFakeBlobs(), &fakeExtractor{text: "text"}, analyzer, &fakeContracts{}, "m", nil)

	res, err := stage.Run(context.Background(), AnalyzeParams{
		User:         testUser(false),
		FileData:     []byte("%PDF"),
		ContractType: "Lease",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Degraded {
		t.Error("degraded flag lost on the way out")
	}
}
