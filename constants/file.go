package constants

import "strings"

// Document formats accepted by the extraction pipeline.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a document format.
// Unknown extensions map to "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tif", "tiff", "bmp", "webp":
		return IMAGE
	default:
		return ""
	}
}

// MapMIMEToFormat maps a MIME type to a document format.
// Unknown MIME types map to "".
func MapMIMEToFormat(mime string) string {
	m := strings.ToLower(strings.TrimSpace(mime))
	switch {
	case m == "application/pdf":
		return PDF
	case strings.HasPrefix(m, "image/"):
		return IMAGE
	default:
		return ""
	}
}

// ExtForMIME returns a file extension for writing temp artifacts to disk.
func ExtForMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "application/pdf":
		return "pdf"
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/tiff":
		return "tif"
	default:
		return "png"
	}
}
