package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/contractwise/backend/internal/repository"
)

// Service is a tiny façade over the contract repository that produces XLSX
// bytes for exports.
type Service struct {
	contracts repository.ContractRepository
	logger    *slog.Logger
}

func NewService(contracts repository.ContractRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contracts: contracts, logger: logger}
}

// ExportAnalysesXLSX returns an XLSX workbook (as bytes) with one row per
// analysis owned by the user, newest first.
func (s *Service) ExportAnalysesXLSX(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	start := time.Now()

	recs, err := s.contracts.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Analyses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Analyzed At",
		"Contract Type",
		"Overall Score",
		"Risks",
		"Opportunities",
		"Duration",
		"Termination",
		"Summary",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		risks := make([]string, 0, len(r.Risks))
		for _, rk := range r.Risks {
			risks = append(risks, fmt.Sprintf("%s (%s)", rk.Risk, rk.Severity))
		}
		opps := make([]string, 0, len(r.Opportunities))
		for _, op := range r.Opportunities {
			opps = append(opps, fmt.Sprintf("%s (%s)", op.Opportunity, op.Impact))
		}

		write(1, r.CreatedAt.Format("2006-01-02"))
		write(2, r.ContractType)
		write(3, r.OverallScore)
		write(4, truncate(strings.Join(risks, "; "), 200))
		write(5, truncate(strings.Join(opps, "; "), 200))
		write(6, r.ContractDuration)
		write(7, r.TerminationConditions)
		write(8, truncate(r.Summary, 300))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "B", 22) // type
	_ = f.SetColWidth(sheet, "C", "C", 12) // score
	_ = f.SetColWidth(sheet, "D", "E", 48) // findings
	_ = f.SetColWidth(sheet, "F", "G", 18) // terms
	_ = f.SetColWidth(sheet, "H", "H", 60) // summary

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
