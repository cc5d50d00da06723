package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contractwise/backend/constants"
	"github.com/contractwise/backend/internal/cache"
	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/export"
	"github.com/contractwise/backend/internal/middleware"
	"github.com/contractwise/backend/internal/pipeline"
	"github.com/contractwise/backend/internal/repository"
)

// ContractsHandler exposes the analysis pipeline and the stored records.
type ContractsHandler struct {
	detect    *pipeline.DetectStage
	analyze   *pipeline.AnalyzeStage
	contracts repository.ContractRepository
	blobs     cache.BlobCache
	exporter  *export.Service
	logger    *slog.Logger
}

func NewContractsHandler(
	detect *pipeline.DetectStage,
	analyze *pipeline.AnalyzeStage,
	contracts repository.ContractRepository,
	blobs cache.BlobCache,
	exporter *export.Service,
	logger *slog.Logger,
) *ContractsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContractsHandler{
		detect:    detect,
		analyze:   analyze,
		contracts: contracts,
		blobs:     blobs,
		exporter:  exporter,
		logger:    logger,
	}
}

// readUpload pulls the PDF out of the multipart form. A missing part and a
// non-PDF part produce the same client error; rejected files are counted.
func (h *ContractsHandler) readUpload(c *gin.Context) ([]byte, bool) {
	file, header, err := c.Request.FormFile(constants.UploadFieldName)
	if err != nil {
		rejectedUploadsTotal.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded or invalid file type"})
		return nil, false
	}
	defer file.Close()

	if !constants.IsPDFContentType(header.Header.Get("Content-Type"), header.Filename) {
		rejectedUploadsTotal.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded or invalid file type"})
		return nil, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		rejectedUploadsTotal.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded or invalid file type"})
		return nil, false
	}
	return data, true
}

// DetectType classifies an uploaded contract without persisting anything.
func (h *ContractsHandler) DetectType(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	data, ok := h.readUpload(c)
	if !ok {
		return
	}

	detectedType, err := h.detect.Run(c.Request.Context(), user, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to detect contract type",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detectedType": detectedType})
}

// Analyze runs the full pipeline for an uploaded contract and returns the
// persisted record.
func (h *ContractsHandler) Analyze(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	contractType := c.PostForm("contractType")
	if common.ValidateAndReturnError(common.NewValidator().Field("contractType", contractType, common.Required)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid contract type is required"})
		return
	}

	data, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.analyze.Run(c.Request.Context(), pipeline.AnalyzeParams{
		User:         user,
		FileData:     data,
		ContractType: contractType,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to analyze contract",
			"details": err.Error(),
		})
		return
	}

	analysesTotal.WithLabelValues(string(constants.TierForPremium(user.IsPremium))).Inc()
	if result.Degraded {
		degradedAnalysesTotal.Inc()
	}

	c.JSON(http.StatusOK, result.Analysis)
}

// List returns the caller's analyses, newest first.
func (h *ContractsHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recs, err := h.contracts.ListByOwner(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get contracts",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, recs)
}

// Get returns one analysis, serving the cached copy when it belongs to the
// caller. Cached entries carry the owner ID, so a hit is served only after
// that check; a mismatch or an undecodable entry falls through to the
// owner-scoped store lookup.
func (h *ContractsHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	idStr := c.Param("id")
	if common.ValidateAndReturnError(common.NewValidator().Field("id", idStr, common.UUID)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Contract ID"})
		return
	}
	id, _ := uuid.Parse(idStr)

	cacheKey := constants.ContractRecordKey(id.String())
	if cached, err := h.blobs.Get(c.Request.Context(), cacheKey); err == nil {
		var cachedRec entity.ContractAnalysis
		if err := json.Unmarshal(cached, &cachedRec); err == nil && cachedRec.UserID == user.ID {
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			return
		}
	}

	rec, err := h.contracts.FindByIDAndOwner(c.Request.Context(), id, user.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get contract",
			"details": err.Error(),
		})
		return
	}

	if body, err := json.Marshal(rec); err == nil {
		if err := h.blobs.Set(c.Request.Context(), cacheKey, body, constants.ContractRecordTTL); err != nil {
			h.logger.Warn("contracts.cache_write_failed", "key", cacheKey, "error", err)
		}
	}

	c.JSON(http.StatusOK, rec)
}

// Delete removes an analysis and invalidates its cached copy.
func (h *ContractsHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	idStr := c.Param("id")
	if common.ValidateAndReturnError(common.NewValidator().Field("id", idStr, common.UUID)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Contract ID"})
		return
	}
	id, _ := uuid.Parse(idStr)

	if err := h.contracts.DeleteByIDAndOwner(c.Request.Context(), id, user.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to delete contract",
			"details": err.Error(),
		})
		return
	}

	cacheKey := constants.ContractRecordKey(id.String())
	if err := h.blobs.Delete(c.Request.Context(), cacheKey); err != nil {
		h.logger.Warn("contracts.cache_invalidate_failed", "key", cacheKey, "error", err)
	}

	c.Status(http.StatusNoContent)
}

// Export streams the caller's analyses as an XLSX workbook.
func (h *ContractsHandler) Export(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	data, err := h.exporter.ExportAnalysesXLSX(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to export contracts",
			"details": err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="contract-analyses.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
