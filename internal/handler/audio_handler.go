package handler

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techtospeak/internal/config"
	"techtospeak/internal/domain"
	"techtospeak/internal/service"
)

// AudioHandler handles speech endpoints.
type AudioHandler struct {
	jargonService service.JargonService
	upload        *config.UploadConfig
	logger        *zap.Logger
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(jargonService service.JargonService, upload *config.UploadConfig, logger *zap.Logger) *AudioHandler {
	return &AudioHandler{jargonService: jargonService, upload: upload, logger: logger.Named("audio_handler")}
}

// Transcribe handles POST /api/v1/audio/stt
// @Summary Transcribe audio
// @Description Transcribe an audio recording to Spanish text
// @Tags audio
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio recording"
// @Success 200 {object} TranscriptionResponse
// @Failure 400 {object} ErrorResponseBody "Missing or empty file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Processing failed"
// @Router /audio/stt [post]
func (h *AudioHandler) Transcribe(c *gin.Context) {
	start := time.Now()

	up, err := readUpload(c, h.upload.MaxBytes())
	if err != nil {
		respondUploadError(c, h.logger, err)
		return
	}
	mimeType := audioMIMEType(up.ContentType)

	text, err := h.jargonService.TranscribeAudio(c.Request.Context(), up.Data, mimeType)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, TranscriptionResponse{
		NombreArchivo:               up.Filename,
		MIMEType:                    mimeType,
		Texto:                       text,
		TiempoProcesamientoSegundos: math.Round(time.Since(start).Seconds()*1000) / 1000,
	})
}

// Explain handles POST /api/v1/audio/explicar
// @Summary Transcribe and explain audio
// @Description Transcribe an audio recording, then explain its technical jargon in plain language
// @Tags audio
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio recording"
// @Param area_oficio formData string false "Trade or field (mecanica, medicina, derecho, TI, ...)"
// @Success 200 {object} AudioExplainResponse
// @Failure 400 {object} ErrorResponseBody "Missing or empty file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Processing failed"
// @Router /audio/explicar [post]
func (h *AudioHandler) Explain(c *gin.Context) {
	up, err := readUpload(c, h.upload.MaxBytes())
	if err != nil {
		respondUploadError(c, h.logger, err)
		return
	}
	mimeType := audioMIMEType(up.ContentType)
	ctx := c.Request.Context()

	text, err := h.jargonService.TranscribeAudio(ctx, up.Data, mimeType)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	rec, err := h.jargonService.ExplainJargon(ctx, text, c.PostForm("area_oficio"))
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, AudioExplainResponse{
		NombreArchivo:     up.Filename,
		MIMEType:          mimeType,
		TextoTranscrito:   text,
		ExplicacionClara:  rec.ExplicacionClara,
		AccionesSugeridas: rec.AccionesSugeridas,
		NivelUrgencia:     rec.NivelUrgencia,
	})
}

func audioMIMEType(contentType string) string {
	if contentType == "" {
		return domain.DefaultAudioMIMEType
	}
	return contentType
}
