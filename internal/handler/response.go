package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techtospeak/internal/domain"
)

// APIError is the body of every error response. Detail is shown to end users.
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// RespondOK sends a 200 response with data as the top-level body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, detail string) {
	c.JSON(status, APIError{Detail: detail, Code: code})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, detail string) {
	switch {
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "El archivo está vacío"
	case errors.Is(err, domain.ErrMissingFilename):
		return http.StatusBadRequest, "MISSING_FILENAME", "El archivo debe tener un nombre"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "Tipo de archivo no soportado. Soportados: " + allowedExtensionList()
	case errors.Is(err, domain.ErrNotAnImage):
		return http.StatusBadRequest, "NOT_AN_IMAGE", "El archivo debe ser una imagen (PNG, JPG, JPEG, etc.)"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "El archivo supera el tamaño máximo permitido"
	case errors.Is(err, domain.ErrEmptyText):
		return http.StatusBadRequest, "EMPTY_TEXT", "El campo texto es obligatorio"
	case errors.Is(err, domain.ErrUpstreamInvocation):
		return http.StatusInternalServerError, "PROCESSING_FAILED", "No se pudo procesar la solicitud"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Ocurrió un error interno"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, logger *zap.Logger, err error) {
	status, code, detail := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		logger.Error("request failed",
			zap.Any("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("code", code),
			zap.Error(err),
		)
	}
	RespondError(c, status, code, detail)
}
