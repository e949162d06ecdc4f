package port

import (
	"context"
	"io"
)

// Part is one element of a prompt. Exactly one of Text, Data or Upload is set.
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
	Upload   *UploadHandle
}

// TextPart returns a plain-text prompt part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart returns an inline binary prompt part.
func BlobPart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

// UploadPart returns a prompt part referencing a previously staged upload.
func UploadPart(h *UploadHandle) Part {
	return Part{MIMEType: h.MIMEType, Upload: h}
}

// UploadInput encapsulates the parameters needed to stage a file with the model service.
type UploadInput struct {
	Body        io.Reader
	MIMEType    string
	DisplayName string
}

// UploadHandle is a remote reference to staged content.
type UploadHandle struct {
	Name     string
	URI      string
	MIMEType string
}

// ModelClient abstracts the generative model service.
type ModelClient interface {
	// Invoke sends the prompt parts and returns the model's text reply.
	Invoke(ctx context.Context, parts []Part) (string, error)
	StageUpload(ctx context.Context, input UploadInput) (*UploadHandle, error)
	ReleaseUpload(ctx context.Context, h *UploadHandle) error
}
