package server

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/status"

	v1 "github.com/lucverdier/lotscan/gen/proto/lotscan/v1"
	"github.com/lucverdier/lotscan/internal/carton"
	"github.com/lucverdier/lotscan/internal/common"
	"github.com/lucverdier/lotscan/internal/export"
	"github.com/lucverdier/lotscan/internal/extract"
	"github.com/lucverdier/lotscan/internal/pipeline"
)

type ExtractorServer struct {
	v1.UnimplementedExtractorServiceServer
	extractor *pipeline.Extractor
	catalog   *carton.Catalog
	exporter  *export.Service
	logger    *slog.Logger
}

func NewExtractorServer(x *pipeline.Extractor, catalog *carton.Catalog, exporter *export.Service, logger *slog.Logger) *ExtractorServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractorServer{extractor: x, catalog: catalog, exporter: exporter, logger: logger}
}

func (s *ExtractorServer) Extract(ctx context.Context, req *v1.ExtractRequest) (*v1.ExtractResponse, error) {
	if len(req.GetDocument()) == 0 {
		return nil, common.InvalidArgumentError("document is required")
	}
	if req.GetMimeType() == "" {
		return nil, common.InvalidArgumentError("mime_type is required")
	}

	out, err := s.extractor.Extract(ctx, req.GetDocument(), req.GetMimeType())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnsupportedInput):
			return nil, common.InvalidArgumentError(err.Error())
		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			return nil, status.FromContextError(err).Err()
		default:
			s.logger.Error("server.extract.failed", "mime", req.GetMimeType(), "error", err)
			return nil, common.InternalError("extraction failed")
		}
	}

	return &v1.ExtractResponse{
		JobId:      out.JobID.String(),
		Result:     resultToProto(out.Result),
		RawText:    out.RawText,
		Pages:      int32(out.Pages),
		Confidence: out.Confidence,
	}, nil
}

func (s *ExtractorServer) RecommendCarton(ctx context.Context, req *v1.RecommendCartonRequest) (*v1.RecommendCartonResponse, error) {
	if len(req.GetDimensions()) == 0 {
		return nil, common.InvalidArgumentError("dimensions are required")
	}

	lots := make([]extract.Lot, 0, len(req.GetLots()))
	for _, l := range req.GetLots() {
		lots = append(lots, lotFromProto(l))
	}
	dims := make([]carton.Dims, 0, len(req.GetDimensions()))
	for _, d := range req.GetDimensions() {
		if d.GetLength() <= 0 || d.GetWidth() <= 0 || d.GetHeight() <= 0 {
			return nil, common.InvalidArgumentErrorf("dimensions must be positive, got %.1f×%.1f×%.1f",
				d.GetLength(), d.GetWidth(), d.GetHeight())
		}
		dims = append(dims, carton.Dims{Length: d.GetLength(), Width: d.GetWidth(), Height: d.GetHeight()})
	}

	rec := s.catalog.Recommend(lots, dims, req.GetWeightKg())
	resp := &v1.RecommendCartonResponse{}
	if rec != nil {
		resp.Recommendation = &v1.CartonRecommendation{
			Ref:      rec.Ref,
			Category: string(rec.Category),
			Inner: &v1.Dimensions{
				Length: rec.Inner.Length,
				Width:  rec.Inner.Width,
				Height: rec.Inner.Height,
			},
			PriceHt:  rec.PriceHT,
			PriceTtc: rec.PriceTTC,
		}
	}
	return resp, nil
}

func (s *ExtractorServer) ExportResults(ctx context.Context, req *v1.ExportResultsRequest) (*v1.ExportResultsResponse, error) {
	if len(req.GetItems()) == 0 {
		return nil, common.InvalidArgumentError("items are required")
	}

	items := make([]export.Item, 0, len(req.GetItems()))
	for _, it := range req.GetItems() {
		items = append(items, export.Item{
			Source: it.GetSource(),
			Output: pipeline.Output{
				Result:     resultFromProto(it.GetResult()),
				Confidence: it.GetConfidence(),
			},
		})
	}

	xlsx, err := s.exporter.ResultsXLSX(items)
	if err != nil {
		s.logger.Error("server.export.failed", "items", len(items), "error", err)
		return nil, common.InternalErrorf("export failed for %d items", len(items))
	}
	return &v1.ExportResultsResponse{Xlsx: xlsx}, nil
}

func resultToProto(res extract.Result) *v1.BordereauResult {
	out := &v1.BordereauResult{
		SaleRoom:        res.SaleRoom,
		SaleReference:   res.SaleReference,
		BordereauNumber: res.BordereauNumber,
		SaleDate:        res.SaleDate,
		Total:           res.Total,
	}
	for _, l := range res.Lots {
		out.Lots = append(out.Lots, &v1.Lot{
			Number:      l.Number,
			Description: l.Description,
			HammerPrice: l.HammerPrice,
		})
	}
	return out
}

func resultFromProto(pb *v1.BordereauResult) extract.Result {
	if pb == nil {
		return extract.Result{}
	}
	res := extract.Result{
		SaleRoom:        pb.SaleRoom,
		SaleReference:   pb.SaleReference,
		BordereauNumber: pb.BordereauNumber,
		SaleDate:        pb.SaleDate,
		Total:           pb.Total,
	}
	for _, l := range pb.GetLots() {
		res.Lots = append(res.Lots, lotFromProto(l))
	}
	return res
}

func lotFromProto(pb *v1.Lot) extract.Lot {
	return extract.Lot{
		Number:      pb.Number,
		Description: pb.GetDescription(),
		HammerPrice: pb.HammerPrice,
	}
}
