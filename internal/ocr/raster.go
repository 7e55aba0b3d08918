package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lucverdier/lotscan/constants"
	"github.com/lucverdier/lotscan/internal/common"
)

// Rasterize renders a document into one image file per page inside a scoped
// temp dir. PDFs go through pdftoppm; raster images pass through as a
// single page. cleanup removes every artifact and must be called on all
// exit paths.
func (e *Engine) Rasterize(ctx context.Context, data []byte, mimeType string) (pages []string, cleanup func(), err error) {
	format := constants.MapMIMEToFormat(mimeType)
	if format == "" {
		return nil, func() {}, common.NewAppError("UNSUPPORTED_MIME",
			fmt.Sprintf("mime type %q is neither application/pdf nor image/*", mimeType),
			common.ErrUnsupportedInput)
	}

	tmpDir, err := os.MkdirTemp(e.workDir, "raster-*")
	if err != nil {
		return nil, func() {}, err
	}
	cleanup = func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("raster.cleanup.failed", "dir", tmpDir, "error", rerr)
		}
	}

	in := filepath.Join(tmpDir, "input."+constants.ExtForMIME(mimeType))
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, cleanup, err
	}

	if format == constants.IMAGE {
		return []string{in}, cleanup, nil
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", in, prefix)
	if err != nil {
		return nil, cleanup, common.NewAppError("RASTER_FAILED",
			truncate(string(errb), 512), common.ErrRasterFailed)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, cleanup, common.NewAppError("RASTER_EMPTY",
			"pdftoppm produced no pages", common.ErrRasterFailed)
	}
	return matches, cleanup, nil
}
