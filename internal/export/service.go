package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/lucverdier/lotscan/internal/common"
	"github.com/lucverdier/lotscan/internal/pipeline"
)

// Service produces XLSX bytes from extraction outputs, one lot per row with
// the document-level fields repeated.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Item pairs one extraction output with the source it came from.
type Item struct {
	Source string
	Output pipeline.Output
}

// ResultsXLSX returns an XLSX workbook for a batch of extractions.
func (s *Service) ResultsXLSX(items []Item) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Bordereaux"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Document",
		"Sale Room",
		"Bordereau N°",
		"Sale Date",
		"Lot N°",
		"Description",
		"Hammer Price",
		"Invoice Total",
		"OCR Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	lots := 0
	for _, it := range items {
		res := it.Output.Result

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		writeDoc := func() {
			write(1, it.Source)
			write(2, deref(res.SaleRoom))
			write(3, deref(res.BordereauNumber))
			write(4, deref(res.SaleDate))
			if res.Total != nil {
				write(8, *res.Total)
			}
			write(9, fmt.Sprintf("%.2f", it.Output.Confidence))
		}

		if len(res.Lots) == 0 {
			// keep the document visible even when no lot was recovered
			writeDoc()
			row++
			continue
		}
		for _, l := range res.Lots {
			writeDoc()
			write(5, deref(l.Number))
			write(6, truncate(l.Description, 140))
			if l.HammerPrice != nil {
				write(7, *l.HammerPrice)
			}
			row++
			lots++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 36) // document
	_ = f.SetColWidth(sheet, "B", "B", 24) // sale room
	_ = f.SetColWidth(sheet, "C", "D", 14) // number, date
	_ = f.SetColWidth(sheet, "E", "E", 8)  // lot number
	_ = f.SetColWidth(sheet, "F", "F", 48) // description
	_ = f.SetColWidth(sheet, "G", "H", 14) // amounts
	_ = f.SetColWidth(sheet, "I", "I", 14) // confidence

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.NewAppError("XLSX_WRITE", err.Error(), common.ErrInternal)
	}

	s.logger.Info("export.xlsx.ok",
		"documents", len(items),
		"lots", lots,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// truncate cuts on rune boundaries so accented descriptions never end in
// a mangled byte sequence.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
