package constants

import "strings"

// Document formats accepted for the format field in ExtractJob.
const (
	PDF = "PDF"
	TXT = "TXT"
)

// FileTypes holds the allowed file types for the format field in ExtractJob.
var FileTypes = []string{PDF, TXT}

// AllowedExtensions holds the default allowed file extensions for contract ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a document format, or "" if unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TXT
	default:
		return ""
	}
}
