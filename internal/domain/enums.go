package domain

// UrgencyLevel is the coarse triage level attached to every explanation.
// Values outside the three constants are passed through unchanged.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "baja"
	UrgencyMedium UrgencyLevel = "media"
	UrgencyHigh   UrgencyLevel = "alta"
)

// Known reports whether u is one of the three documented levels.
func (u UrgencyLevel) Known() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

const (
	// DefaultDomainHint is used when the caller gives no trade/field.
	DefaultDomainHint = "general"
	// DefaultUploadDomainHint is the form default for file and image uploads.
	DefaultUploadDomainHint = "TI"
	// DefaultAudioMIMEType is assumed when an audio upload carries no content type.
	DefaultAudioMIMEType = "audio/wav"
	// DefaultMIMEType is used when a file's type cannot be determined.
	DefaultMIMEType = "application/octet-stream"
	// NoVisibleText is the model's sentinel reply for images without text.
	NoVisibleText = "No hay texto visible"
)

// AllowedDocumentExtensions lists the document types accepted for translation.
var AllowedDocumentExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".xlsx": true,
	".xls":  true,
	".txt":  true,
	".pptx": true,
	".ppt":  true,
	".rtf":  true,
	".odt":  true,
	".csv":  true,
	".html": true,
	".xml":  true,
	".json": true,
}

// DocumentContentTypes maps extensions to MIME types for formats the Go
// runtime does not know about on every platform.
var DocumentContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
	".txt":  "text/plain",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".ppt":  "application/vnd.ms-powerpoint",
	".rtf":  "application/rtf",
	".odt":  "application/vnd.oasis.opendocument.text",
	".csv":  "text/csv",
	".html": "text/html",
	".xml":  "application/xml",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".heic": "image/heic",
	".heif": "image/heif",
	".wav":  "audio/wav",
	".mp3":  "audio/mp3",
	".ogg":  "audio/ogg",
	".webm": "audio/webm",
	".m4a":  "audio/mp4",
}
