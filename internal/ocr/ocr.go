package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/lucverdier/lotscan/internal/common"
	"github.com/lucverdier/lotscan/internal/geometry"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	TesseractLang string // default "fra+eng"
	TessdataDir   string
	DPI           int    // rasterization DPI for PDFs, default 300
	MaxPages      int    // 0 = no limit
	WorkDir       string // parent for the scratch workspace; "" = system temp

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// ConfigFrom maps the application OCR settings onto an engine config.
func ConfigFrom(c common.OCRConfig) Config {
	return Config{
		Tesseract:     c.Tesseract,
		Pdftoppm:      c.Pdftoppm,
		TesseractLang: c.TesseractLang,
		TessdataDir:   c.TessdataDir,
		DPI:           c.DPI,
		MaxPages:      c.MaxPages,
		WorkDir:       c.ArtifactCacheDir,
	}
}

// Recognition is the output of one OCR pass over one page image.
type Recognition struct {
	Text       string
	Confidence float64 // mean word confidence in 0..1
	Words      []geometry.Word
}

// Engine wraps the external OCR binaries plus a scratch workspace. It is
// expensive enough to set up (language data load, workspace) that one
// instance is shared for the process lifetime; Close tears the workspace
// down at shutdown.
type Engine struct {
	cfg     Config
	runner  Runner
	logger  *slog.Logger
	workDir string
}

func NewEngine(cfg Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "fra+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}

	if cfg.WorkDir != "" {
		if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
			return nil, fmt.Errorf("ocr workspace parent: %w", err)
		}
	}
	workDir, err := os.MkdirTemp(cfg.WorkDir, "lotscan-ocr-*")
	if err != nil {
		return nil, fmt.Errorf("ocr workspace: %w", err)
	}
	return &Engine{cfg: cfg, runner: execRunner{}, logger: logger, workDir: workDir}, nil
}

// Close removes the engine workspace. Safe to call once at shutdown.
func (e *Engine) Close() error {
	return os.RemoveAll(e.workDir)
}

var (
	sharedOnce sync.Once
	sharedEng  *Engine
	sharedErr  error
)

// Shared returns the process-wide engine, initialized on first use and
// reused afterwards to amortize setup cost. The returned engine is owned by
// the process; call Close on it during shutdown only.
func Shared(cfg Config, logger *slog.Logger) (*Engine, error) {
	sharedOnce.Do(func() {
		sharedEng, sharedErr = NewEngine(cfg, logger)
	})
	return sharedEng, sharedErr
}

// Recognize runs one OCR pass over an image file and returns the text, the
// recognized words with pixel bounding boxes, and a mean confidence. The
// caller bounds the call through ctx; on timeout the page is simply lost.
func (e *Engine) Recognize(ctx context.Context, imagePath string) (Recognition, error) {
	text, err := e.tesseractText(ctx, imagePath)
	if err != nil {
		return Recognition{}, err
	}
	words, conf, err := e.tesseractTSV(ctx, imagePath)
	if err != nil {
		// text alone is still usable; geometry degrades to the text path
		e.logger.Warn("ocr.tsv.failed", "path", imagePath, "error", err)
		return Recognition{Text: Normalize(text)}, nil
	}
	return Recognition{
		Text:       Normalize(text),
		Confidence: conf,
		Words:      words,
	}, nil
}

func (e *Engine) tesseractText(ctx context.Context, path string) (string, error) {
	args := e.baseArgs(path)
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}
	return string(out), nil
}

func (e *Engine) baseArgs(path string) []string {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	return args
}
