package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techtospeak/internal/config"
	"techtospeak/internal/domain"
	"techtospeak/internal/service"
)

const defaultImageFilename = "imagen"

// ImageHandler handles image translation.
type ImageHandler struct {
	jargonService service.JargonService
	upload        *config.UploadConfig
	logger        *zap.Logger
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(jargonService service.JargonService, upload *config.UploadConfig, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{jargonService: jargonService, upload: upload, logger: logger.Named("image_handler")}
}

// Translate handles POST /api/v1/image/traducir
// @Summary Explain an image
// @Description Read the visible text of an image (screenshot, label, error screen) and explain it
// @Tags image
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image (PNG, JPG, JPEG, ...)"
// @Param area_oficio formData string false "Trade or field" default(TI)
// @Success 200 {object} ImageExplainResponse
// @Failure 400 {object} ErrorResponseBody "Missing, empty or non-image file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Processing failed"
// @Router /image/traducir [post]
func (h *ImageHandler) Translate(c *gin.Context) {
	up, err := readUpload(c, h.upload.MaxBytes())
	if err != nil {
		respondUploadError(c, h.logger, err)
		return
	}
	if !strings.HasPrefix(up.ContentType, "image/") {
		HandleError(c, h.logger, domain.ErrNotAnImage)
		return
	}

	filename := up.Filename
	if filename == "" {
		filename = defaultImageFilename
	}
	area := areaOrDefault(c.PostForm("area_oficio"), domain.DefaultUploadDomainHint)

	rec, err := h.jargonService.AnalyzeImage(c.Request.Context(), up.Data, filename, area)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, ImageExplainResponse{
		TextoExtraido:     rec.TextoExtraido,
		ExplicacionClara:  rec.ExplicacionClara,
		AccionesSugeridas: rec.AccionesSugeridas,
		NivelUrgencia:     rec.NivelUrgencia,
	})
}
