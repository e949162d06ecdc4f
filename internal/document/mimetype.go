package document

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"techtospeak/internal/domain"
)

// MIMEFromFilename derives a MIME type from the file extension alone,
// defaulting to application/octet-stream.
func MIMEFromFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return domain.DefaultMIMEType
	}
	if ct, ok := domain.DocumentContentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return stripParams(ct)
	}
	return domain.DefaultMIMEType
}

// DetectMIME uses the file extension first and falls back to sniffing the
// content when the extension is missing or unknown.
func DetectMIME(filename string, data []byte) string {
	if ct := MIMEFromFilename(filename); ct != domain.DefaultMIMEType {
		return ct
	}
	if len(data) == 0 {
		return domain.DefaultMIMEType
	}
	return stripParams(mimetype.Detect(data).String())
}

// IsSpreadsheet reports whether the MIME type is an OOXML workbook.
func IsSpreadsheet(mimeType string) bool {
	return mimeType == domain.DocumentContentTypes[".xlsx"]
}

func stripParams(ct string) string {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	return mediaType
}
