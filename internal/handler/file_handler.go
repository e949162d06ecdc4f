package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techtospeak/internal/config"
	"techtospeak/internal/domain"
	"techtospeak/internal/service"
)

// FileHandler handles document translation.
type FileHandler struct {
	jargonService service.JargonService
	upload        *config.UploadConfig
	logger        *zap.Logger
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(jargonService service.JargonService, upload *config.UploadConfig, logger *zap.Logger) *FileHandler {
	return &FileHandler{jargonService: jargonService, upload: upload, logger: logger.Named("file_handler")}
}

// Translate handles POST /api/v1/file/traducir
// @Summary Explain a document
// @Description Extract the text of a document (PDF, DOCX, XLSX, TXT, PPTX, ...) and explain its technical jargon
// @Tags file
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to analyze"
// @Param area_oficio formData string false "Trade or field" default(TI)
// @Success 200 {object} FileExplainResponse
// @Failure 400 {object} ErrorResponseBody "Missing, empty or unsupported file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Processing failed"
// @Router /file/traducir [post]
func (h *FileHandler) Translate(c *gin.Context) {
	up, err := readUpload(c, h.upload.MaxBytes())
	if err != nil {
		respondUploadError(c, h.logger, err)
		return
	}
	if up.Filename == "" {
		HandleError(c, h.logger, domain.ErrMissingFilename)
		return
	}
	if !domain.AllowedDocumentExtensions[documentExtension(up.Filename)] {
		HandleError(c, h.logger, domain.ErrUnsupportedFileType)
		return
	}

	area := areaOrDefault(c.PostForm("area_oficio"), domain.DefaultUploadDomainHint)
	rec, err := h.jargonService.AnalyzeDocument(c.Request.Context(), up.Data, up.Filename, area)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	mimeType := up.ContentType
	if mimeType == "" {
		mimeType = domain.DefaultMIMEType
	}

	RespondOK(c, FileExplainResponse{
		NombreArchivo:     up.Filename,
		MIMEType:          mimeType,
		TextoExtraido:     rec.TextoExtraido,
		ExplicacionClara:  rec.ExplicacionClara,
		AccionesSugeridas: rec.AccionesSugeridas,
		NivelUrgencia:     rec.NivelUrgencia,
	})
}
