package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techtospeak/internal/domain"
)

// upload is a fully read multipart file.
type upload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// multipartOverhead is the body allowance for boundaries and form fields on top of the file limit.
const multipartOverhead = 1 << 20

// readUpload reads the "file" form field into memory, enforcing maxBytes.
// It must run before any other form access so the body limit applies.
func readUpload(c *gin.Context, maxBytes int64) (*upload, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.ErrFileTooLarge
		}
		return nil, errMissingFile
	}
	defer func() { _ = file.Close() }()

	if maxBytes > 0 && header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := readLimited(file, maxBytes)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}

	return &upload{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func readLimited(file multipart.File, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(file)
	}
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	return data, nil
}

var errMissingFile = errors.New("file field is required")

// respondUploadError writes the response for a readUpload failure.
func respondUploadError(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, errMissingFile) {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "El campo file es obligatorio")
		return
	}
	HandleError(c, logger, err)
}

func documentExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func allowedExtensionList() string {
	exts := make([]string, 0, len(domain.AllowedDocumentExtensions))
	for ext := range domain.AllowedDocumentExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}

func areaOrDefault(area, def string) string {
	if a := strings.TrimSpace(area); a != "" {
		return a
	}
	return def
}
