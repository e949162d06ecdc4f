package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"techtospeak/internal/domain"
	"techtospeak/internal/service"
)

// JargonHandler handles free-text translation.
type JargonHandler struct {
	jargonService service.JargonService
	logger        *zap.Logger
}

// NewJargonHandler creates a new JargonHandler.
func NewJargonHandler(jargonService service.JargonService, logger *zap.Logger) *JargonHandler {
	return &JargonHandler{jargonService: jargonService, logger: logger.Named("jargon_handler")}
}

// Translate handles POST /api/v1/jargon/traducir
// @Summary Explain technical text
// @Description Translate technical jargon into plain language with suggested actions and an urgency level
// @Tags traductor
// @Accept json
// @Produce json
// @Param request body JargonRequest true "Text to translate"
// @Success 200 {object} JargonResponse
// @Failure 400 {object} ErrorResponseBody "Invalid request body"
// @Failure 500 {object} ErrorResponseBody "Processing failed"
// @Router /jargon/traducir [post]
func (h *JargonHandler) Translate(c *gin.Context) {
	var req JargonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Cuerpo inválido: se requiere el campo texto")
		return
	}
	if strings.TrimSpace(req.Texto) == "" {
		HandleError(c, h.logger, domain.ErrEmptyText)
		return
	}

	rec, err := h.jargonService.ExplainJargon(c.Request.Context(), req.Texto, req.AreaOficio)
	if err != nil {
		HandleError(c, h.logger, err)
		return
	}

	RespondOK(c, JargonResponse{
		TextoOriginal:     req.Texto,
		ExplicacionClara:  rec.ExplicacionClara,
		AccionesSugeridas: rec.AccionesSugeridas,
		NivelUrgencia:     rec.NivelUrgencia,
	})
}
