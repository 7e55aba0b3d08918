package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/lucverdier/lotscan/constants"
	"github.com/lucverdier/lotscan/internal/common"
	"github.com/lucverdier/lotscan/internal/export"
	"github.com/lucverdier/lotscan/internal/ocr"
	"github.com/lucverdier/lotscan/internal/pipeline"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory of scanned bordereaux to process (required)")
		out         = flag.String("out", "", "output XLSX path (defaults to <dir>/../bordereaux.xlsx)")
		concurrency = flag.Int("concurrency", 3, "documents processed in parallel")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "bordereaux.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	files, err := listDocuments(*dir)
	if err != nil {
		logger.Error("listing documents", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Error("no processable documents found", "dir", *dir)
		os.Exit(1)
	}
	logger.Info("batch.start", "documents", len(files), "status", constants.JobStatusQueued)

	engine, err := ocr.Shared(ocr.ConfigFrom(cfg.OCR), logger)
	if err != nil {
		logger.Error("starting OCR engine", "error", err)
		os.Exit(1)
	}
	defer func() { _ = engine.Close() }()

	x := pipeline.New(engine, cfg.OCR.PageTimeout, logger)

	var (
		mu    sync.Mutex
		items []export.Item
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*concurrency)
	for _, path := range files {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				logger.Error("batch.read.failed", "file", path, "error", err)
				return nil // one bad file must not sink the batch
			}
			res, err := x.Extract(ctx, data, mimeFor(path))
			if err != nil {
				logger.Error("batch.extract.failed", "file", path, "error", err)
				return nil
			}
			mu.Lock()
			items = append(items, export.Item{Source: filepath.Base(path), Output: res})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("batch aborted", "error", err)
		os.Exit(1)
	}
	if len(items) == 0 {
		logger.Error("no document could be processed", "dir", *dir)
		os.Exit(1)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Source < items[j].Source })

	xlsx, err := export.NewService(logger).ResultsXLSX(items)
	if err != nil {
		logger.Error("building workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("writing workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("batch.done", "documents", len(items), "out", *out)
}

func listDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func mimeFor(path string) string {
	ext := filepath.Ext(path)
	if constants.MapExtToFormat(ext) == constants.PDF {
		return "application/pdf"
	}
	return mime.TypeByExtension("." + constants.NormalizeExt(ext))
}
