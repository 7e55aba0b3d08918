package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/lucverdier/lotscan/constants"
	"github.com/lucverdier/lotscan/internal/common"
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
		file     = flag.String("file", "", "scanned bordereau to process, PDF or image (required)")
		mimeFlag = flag.String("mime", "", "MIME type override (inferred from the extension by default)")
		withRaw  = flag.Bool("raw", false, "include the raw OCR text in the output")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	_ = godotenv.Load()

	// the structured result goes to stdout; logs stay on stderr
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	mimeType := *mimeFlag
	if mimeType == "" {
		mimeType = inferMIME(*file)
	}
	if constants.MapMIMEToFormat(mimeType) == "" {
		printError("Error: cannot determine a supported MIME type for %s (use --mime)\n", *file)
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		printError("Error: reading %s: %v\n", *file, err)
		os.Exit(1)
	}

	engine, err := ocr.Shared(ocr.ConfigFrom(cfg.OCR), logger)
	if err != nil {
		printError("Error: starting OCR engine: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = engine.Close() }()

	x := pipeline.New(engine, cfg.OCR.PageTimeout, logger)
	out, err := x.Extract(context.Background(), data, mimeType)
	if err != nil {
		printError("Error: extraction failed: %v\n", err)
		os.Exit(1)
	}
	if !*withRaw {
		out.RawText = ""
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		printError("Error: encoding result: %v\n", err)
		os.Exit(1)
	}
}

func inferMIME(path string) string {
	ext := filepath.Ext(path)
	if constants.MapExtToFormat(ext) == constants.PDF {
		return "application/pdf"
	}
	return mime.TypeByExtension("." + constants.NormalizeExt(ext))
}
