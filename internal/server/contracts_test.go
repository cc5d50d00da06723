package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/export"
	"github.com/contractwise/backend/internal/llm"
	"github.com/contractwise/backend/internal/pipeline"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBlobs struct {
	data    map[string][]byte
	deleted []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{data: map[string][]byte{}}
}

func (f *fakeBlobs) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	if b, ok := f.data[key]; ok {
		return b, nil
	}
	return nil, errors.New("miss")
}

func (f *fakeBlobs) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.data, key)
	return nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(ctx context.Context, fileKey string) (string, error) {
	return f.text, f.err
}

type fakeAnalyzer struct {
	result     llm.Result
	detectType string
	detectErr  error
}

func (f *fakeAnalyzer) DetectContractType(ctx context.Context, contractText string) (string, error) {
	return f.detectType, f.detectErr
}

func (f *fakeAnalyzer) AnalyzeContract(ctx context.Context, req llm.AnalyzeRequest) llm.Result {
	return f.result
}

type fakeContracts struct {
	records map[uuid.UUID]*entity.ContractAnalysis
	listErr error
}

func newFakeContracts() *fakeContracts {
	return &fakeContracts{records: map[uuid.UUID]*entity.ContractAnalysis{}}
}

func (f *fakeContracts) Create(ctx context.Context, a *entity.ContractAnalysis) (*entity.ContractAnalysis, error) {
	saved := *a
	saved.ID = uuid.New()
	f.records[saved.ID] = &saved
	return &saved, nil
}

func (f *fakeContracts) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.ContractAnalysis, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*entity.ContractAnalysis{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeContracts) FindByIDAndOwner(ctx context.Context, id, userID uuid.UUID) (*entity.ContractAnalysis, error) {
	r, ok := f.records[id]
	if !ok || r.UserID != userID {
		return nil, common.ErrNotFound
	}
	return r, nil
}

func (f *fakeContracts) DeleteByIDAndOwner(ctx context.Context, id, userID uuid.UUID) error {
	r, ok := f.records[id]
	if !ok || r.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

type contractsFixture struct {
	router    *gin.Engine
	user      *entity.User
	blobs     *fakeBlobs
	contracts *fakeContracts
	handler   *ContractsHandler
}

func newContractsFixture(analyzer *fakeAnalyzer, extractor *fakeExtractor) *contractsFixture {
	user := &entity.User{ID: uuid.New(), Email: "u@example.com"}
	blobs := newFakeBlobs()
	contracts := newFakeContracts()

	detect := pipeline.NewDetectStage(blobs, extractor, analyzer, nil)
	analyze := pipeline.NewAnalyzeStage(blobs, extractor, analyzer, contracts, "m", nil)
	exporter := export.NewService(contracts, nil)
	h := NewContractsHandler(detect, analyze, contracts, blobs, exporter, nil)

	fx := &contractsFixture{user: user, blobs: blobs, contracts: contracts, handler: h}
	fx.router = fx.routerAs(user)
	return fx
}

// routerAs mounts the shared handler behind a different authenticated user.
func (fx *contractsFixture) routerAs(user *entity.User) *gin.Engine {
	r := gin.New()
	grp := r.Group("/contracts", func(c *gin.Context) { c.Set("user", user) })
	grp.POST("/detect-type", fx.handler.DetectType)
	grp.POST("/analyze", fx.handler.Analyze)
	grp.GET("/user-contracts", fx.handler.List)
	grp.GET("/export", fx.handler.Export)
	grp.GET("/contract/:id", fx.handler.Get)
	grp.DELETE("/:id", fx.handler.Delete)
	return r
}

// pdfUpload builds a multipart body with a contract part and optional extra
// form fields.
func pdfUpload(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	fw, err := mw.CreateFormFile(constants.UploadFieldName, "contract.pdf")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("%PDF-1.4 test")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestAnalyzeRequiresContractType(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{text: "text"})

	body, ct := pdfUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/contracts/analyze", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
}

func TestAnalyzeRequiresFile(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{text: "text"})

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("contractType", "Lease"); err != nil {
		t.Fatalf("WriteField: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/contracts/analyze", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
}

func TestAnalyzeReturnsPersistedRecord(t *testing.T) {
	analyzer := &fakeAnalyzer{result: llm.Result{Analysis: &entity.ContractAnalysis{
		Summary:      "balanced terms",
		ContractText: "echo",
	}}}
	fx := newContractsFixture(analyzer, &fakeExtractor{text: "full text"})

	body, ct := pdfUpload(t, map[string]string{"contractType": "Employment"})
	req := httptest.NewRequest(http.MethodPost, "/contracts/analyze", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}

	var got entity.ContractAnalysis
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.Summary != "balanced terms" {
		t.Errorf("Summary = %q", got.Summary)
	}
	if got.ID == uuid.Nil {
		t.Error("response record missing ID")
	}
	if len(fx.contracts.records) != 1 {
		t.Errorf("persisted records = %d, want 1", len(fx.contracts.records))
	}
}

func TestDetectTypeReturnsLabel(t *testing.T) {
	analyzer := &fakeAnalyzer{detectType: "Employment"}
	fx := newContractsFixture(analyzer, &fakeExtractor{text: "text"})

	body, ct := pdfUpload(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/contracts/detect-type", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["detectedType"] != "Employment" {
		t.Errorf("detectedType = %q", resp["detectedType"])
	}
}

func TestGetRejectsInvalidID(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})

	req := httptest.NewRequest(http.MethodGet, "/contracts/contract/not-a-uuid", nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetHidesForeignRecords(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	foreign, _ := fx.contracts.Create(context.Background(), &entity.ContractAnalysis{
		UserID:  uuid.New(),
		Summary: "not yours",
	})

	req := httptest.NewRequest(http.MethodGet, "/contracts/contract/"+foreign.ID.String(), nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGetCachesRecord(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	rec, _ := fx.contracts.Create(context.Background(), &entity.ContractAnalysis{
		UserID:  fx.user.ID,
		Summary: "mine",
	})

	req := httptest.NewRequest(http.MethodGet, "/contracts/contract/"+rec.ID.String(), nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	cacheKey := constants.ContractRecordKey(rec.ID.String())
	if _, ok := fx.blobs.data[cacheKey]; !ok {
		t.Error("record not written to cache after database read")
	}
}

func TestGetServesCachedBytes(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	id := uuid.New()
	raw, err := json.Marshal(&entity.ContractAnalysis{ID: id, UserID: fx.user.ID, Summary: "cached copy"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	fx.blobs.data[constants.ContractRecordKey(id.String())] = raw

	req := httptest.NewRequest(http.MethodGet, "/contracts/contract/"+id.String(), nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	if !bytes.Equal(w.Body.Bytes(), raw) {
		t.Errorf("body = %s, want cached bytes verbatim", w.Body.String())
	}
}

func TestGetWarmCacheHidesForeignRecords(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	rec, _ := fx.contracts.Create(context.Background(), &entity.ContractAnalysis{
		UserID:       fx.user.ID,
		ContractText: "secret",
		Summary:      "mine",
	})

	// The owner's read warms the cache for this ID.
	req := httptest.NewRequest(http.MethodGet, "/contracts/contract/"+rec.ID.String(), nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("owner read status = %d; body %s", w.Code, w.Body.String())
	}
	if _, ok := fx.blobs.data[constants.ContractRecordKey(rec.ID.String())]; !ok {
		t.Fatal("cache not warmed by owner read")
	}

	intruder := &entity.User{ID: uuid.New(), Email: "other@example.com"}
	req = httptest.NewRequest(http.MethodGet, "/contracts/contract/"+rec.ID.String(), nil)
	w = httptest.NewRecorder()
	fx.routerAs(intruder).ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for another user's record", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("secret")) {
		t.Error("response leaked the contract text")
	}
}

func TestDeleteRemovesRecordAndCacheEntry(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	rec, _ := fx.contracts.Create(context.Background(), &entity.ContractAnalysis{
		UserID:  fx.user.ID,
		Summary: "mine",
	})
	cacheKey := constants.ContractRecordKey(rec.ID.String())
	fx.blobs.data[cacheKey] = []byte("{}")

	req := httptest.NewRequest(http.MethodDelete, "/contracts/"+rec.ID.String(), nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204; body %s", w.Code, w.Body.String())
	}
	if _, ok := fx.contracts.records[rec.ID]; ok {
		t.Error("record still present after delete")
	}
	if _, ok := fx.blobs.data[cacheKey]; ok {
		t.Error("cache entry not invalidated")
	}
}

func TestDeleteForeignRecordIs404(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	foreign, _ := fx.contracts.Create(context.Background(), &entity.ContractAnalysis{
		UserID:  uuid.New(),
		Summary: "not yours",
	})

	req := httptest.NewRequest(http.MethodDelete, "/contracts/"+foreign.ID.String(), nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if _, ok := fx.contracts.records[foreign.ID]; !ok {
		t.Error("foreign record was deleted")
	}
}

func TestListReturnsOwnRecordsOnly(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	fx.contracts.Create(context.Background(), &entity.ContractAnalysis{UserID: fx.user.ID, Summary: "mine"})
	fx.contracts.Create(context.Background(), &entity.ContractAnalysis{UserID: uuid.New(), Summary: "theirs"})

	req := httptest.NewRequest(http.MethodGet, "/contracts/user-contracts", nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var recs []entity.ContractAnalysis
	if err := json.Unmarshal(w.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(recs) != 1 || recs[0].Summary != "mine" {
		t.Errorf("recs = %+v, want only the caller's record", recs)
	}
}

func TestExportReturnsWorkbook(t *testing.T) {
	fx := newContractsFixture(&fakeAnalyzer{}, &fakeExtractor{})
	fx.contracts.Create(context.Background(), &entity.ContractAnalysis{
		UserID:       fx.user.ID,
		ContractType: "Employment",
		Summary:      "mine",
	})

	req := httptest.NewRequest(http.MethodGet, "/contracts/export", nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="contract-analyses.xlsx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if w.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}
