package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/contractwise/backend/internal/cache"
)

// PDFExtractor reads staged PDF bytes from the cache and extracts their
// text layer. Scanned PDFs without a text layer come back empty; that is
// not an error here.
type PDFExtractor struct {
	blobs  cache.BlobCache
	logger *slog.Logger
}

func NewPDFExtractor(blobs cache.BlobCache, logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{blobs: blobs, logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, fileKey string) (string, error) {
	start := time.Now()

	data, err := e.blobs.Get(ctx, fileKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			e.logger.Warn("extract.file_not_staged", "file_key", fileKey)
			return "", ErrNotStaged
		}
		e.logger.Error("extract.cache_error", "file_key", fileKey, "error", err)
		return "", err
	}

	text, err := extractText(data)
	if err != nil {
		e.logger.Error("extract.pdf_error",
			"file_key", fileKey, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("failed to extract text from pdf: %w", err)
	}

	e.logger.Info("extract.ok",
		"file_key", fileKey,
		"bytes", len(data),
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// extractText walks each page, joining text items with spaces and pages
// with newlines. The pdf package panics on some malformed inputs, so the
// whole walk runs under a recover.
func extractText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		items := p.Content().Text
		words := make([]string, 0, len(items))
		for _, it := range items {
			words = append(words, it.S)
		}
		pages = append(pages, strings.Join(words, " "))
	}
	return strings.Join(pages, "\n"), nil
}
