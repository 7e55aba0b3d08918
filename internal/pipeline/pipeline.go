package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucverdier/lotscan/constants"
	"github.com/lucverdier/lotscan/internal/common"
	"github.com/lucverdier/lotscan/internal/extract"
	"github.com/lucverdier/lotscan/internal/geometry"
	"github.com/lucverdier/lotscan/internal/ocr"
)

// Recognizer is the slice of the OCR engine the pipeline consumes; it lets
// tests substitute canned recognitions for the external binaries.
type Recognizer interface {
	Rasterize(ctx context.Context, data []byte, mimeType string) (pages []string, cleanup func(), err error)
	RecognizePage(ctx context.Context, imagePath string) (ocr.Recognition, error)
}

// Extractor turns one uploaded document into a structured sale result. It
// owns the page loop and the layered fallbacks; the OCR engine and the
// field extractors do the actual work.
type Extractor struct {
	ocr         Recognizer
	pageTimeout time.Duration
	logger      *slog.Logger
}

func New(rec Recognizer, pageTimeout time.Duration, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if pageTimeout <= 0 {
		pageTimeout = 90 * time.Second
	}
	return &Extractor{ocr: rec, pageTimeout: pageTimeout, logger: logger}
}

// Output bundles the structured result with the raw recognition so callers
// can persist or display both.
type Output struct {
	JobID      uuid.UUID      `json:"job_id"`
	Result     extract.Result `json:"result"`
	RawText    string         `json:"raw_text"`
	Pages      int            `json:"pages"`
	Confidence float64        `json:"confidence"`
}

// Extract runs the full pipeline over one document: rasterize, OCR each
// page, extract header/table/total geometrically, then fill any remaining
// gaps from the raw text. A single unreadable page is skipped, not fatal;
// only a document with zero readable pages errors out.
func (x *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (Output, error) {
	jobID := uuid.New()
	log := x.logger.With("job_id", jobID.String())

	log.Info("pipeline.start", "mime", mimeType, "bytes", len(data), "status", constants.JobStatusRunning)

	pages, cleanup, err := x.ocr.Rasterize(ctx, data, mimeType)
	defer cleanup()
	if err != nil {
		log.Error("pipeline.raster.failed", "mime", mimeType, "status", constants.JobStatusFailed, "error", err)
		return Output{}, err
	}
	log.Info("pipeline.raster.ok", "pages", len(pages))

	var (
		pageLines [][]geometry.Line
		texts     []string
		confSum   float64
		confN     int
	)
	for i, p := range pages {
		rec, err := x.recognizePage(ctx, p)
		if err != nil {
			log.Warn("pipeline.ocr.page_failed", "page", i+1, "error", err)
			continue
		}
		pageLines = append(pageLines, geometry.BuildLines(rec.Words))
		texts = append(texts, rec.Text)
		if rec.Confidence > 0 {
			confSum += rec.Confidence
			confN++
		}
		log.Info("pipeline.ocr.ok", "page", i+1, "confidence", rec.Confidence, "words", len(rec.Words))
	}
	if len(texts) == 0 {
		log.Error("pipeline.ocr.empty", "status", constants.JobStatusFailed)
		return Output{}, common.NewAppError("OCR_EMPTY", "no page could be recognized", common.ErrOCRFailed)
	}
	log.Info("pipeline.ocr.done", "readable_pages", len(texts), "status", constants.JobStatusOCROK)
	rawText := strings.Join(texts, "\n\n")

	res := x.extractFields(pageLines, rawText, texts[0], log)

	out := Output{
		JobID:   jobID,
		Result:  res,
		RawText: rawText,
		Pages:   len(pages),
	}
	if confN > 0 {
		out.Confidence = confSum / float64(confN)
	}
	log.Info("pipeline.extract.ok",
		"lots", len(res.Lots),
		"has_total", res.Total != nil,
		"has_date", res.SaleDate != nil,
		"confidence", out.Confidence,
		"status", constants.JobStatusExtracted)
	return out, nil
}

func (x *Extractor) recognizePage(ctx context.Context, path string) (ocr.Recognition, error) {
	pctx, cancel := context.WithTimeout(ctx, x.pageTimeout)
	defer cancel()
	return x.ocr.RecognizePage(pctx, path)
}

// extractFields applies the geometric extractors page by page, then patches
// whatever is still missing from the page-1 flat text. The text fallback
// never overwrites a geometric finding.
func (x *Extractor) extractFields(pageLines [][]geometry.Line, rawText, firstText string, log *slog.Logger) extract.Result {
	var res extract.Result

	var allLines []geometry.Line
	for _, ls := range pageLines {
		allLines = append(allLines, ls...)
	}
	strat := extract.SelectStrategy(extract.Document{Lines: allLines, Text: rawText})
	log.Info("pipeline.strategy", "name", strat.Name)

	if len(pageLines) > 0 {
		strat.ExtractHeader(pageLines[0], &res)
	}
	for _, ls := range pageLines {
		res.Lots = append(res.Lots, strat.ExtractLots(ls)...)
	}
	res.Lots = extract.DedupLots(res.Lots)
	if len(pageLines) > 0 {
		res.Total = extract.ExtractTotal(pageLines[len(pageLines)-1], rawText)
	}

	if x.incomplete(res) {
		log.Info("pipeline.fallback.text", "lots_so_far", len(res.Lots))
		fb := extract.ExtractFromText(firstText)
		extract.Merge(&res, fb)
		res.Lots = extract.DedupLots(res.Lots)
	}
	return res
}

func (x *Extractor) incomplete(res extract.Result) bool {
	return res.SaleRoom == nil ||
		res.SaleReference == nil ||
		res.BordereauNumber == nil ||
		res.SaleDate == nil ||
		res.Total == nil ||
		len(res.Lots) == 0
}
