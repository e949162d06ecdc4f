package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"techtospeak/internal/domain"
	"techtospeak/internal/handler"
	"techtospeak/internal/llm"
	"techtospeak/mocks"
)

func TestFileHandler_Translate_Success(t *testing.T) {
	svc := new(mocks.MockJargonService)
	h := handler.NewFileHandler(svc, testUploadConfig(), zap.NewNop())

	svc.On("AnalyzeDocument", mock.Anything, []byte("%PDF-1.4 informe"), "informe.pdf", "redes").
		Return(&domain.ExtractionRecord{
			TextoExtraido:     "Latencia alta en el enlace WAN",
			ExplanationRecord: *sampleExplanation(),
		}, nil)

	req := multipartRequest(t, "/api/v1/file/traducir", "informe.pdf", "application/pdf", []byte("%PDF-1.4 informe"),
		map[string]string{"area_oficio": "redes"})
	c, w := newTestContext(req)
	h.Translate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.FileExplainResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "informe.pdf", resp.NombreArchivo)
	assert.Equal(t, "application/pdf", resp.MIMEType)
	assert.Equal(t, "Latencia alta en el enlace WAN", resp.TextoExtraido)
	assert.Equal(t, "alta", resp.NivelUrgencia)
	svc.AssertExpectations(t)
}

func TestFileHandler_Translate_DefaultArea(t *testing.T) {
	svc := new(mocks.MockJargonService)
	h := handler.NewFileHandler(svc, testUploadConfig(), zap.NewNop())

	svc.On("AnalyzeDocument", mock.Anything, mock.Anything, "notas.TXT", domain.DefaultUploadDomainHint).
		Return(&domain.ExtractionRecord{ExplanationRecord: *sampleExplanation()}, nil)

	c, w := newTestContext(multipartRequest(t, "/api/v1/file/traducir", "notas.TXT", "", []byte("hola"), nil))
	h.Translate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.FileExplainResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.DefaultMIMEType, resp.MIMEType)
	svc.AssertExpectations(t)
}

func TestFileHandler_Translate_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		status   int
		code     string
	}{
		{"unsupported extension", "foto.png", []byte("png"), http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"no extension", "LEEME", []byte("hola"), http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{"empty file", "vacio.pdf", []byte{}, http.StatusBadRequest, "EMPTY_FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockJargonService)
			h := handler.NewFileHandler(svc, testUploadConfig(), zap.NewNop())

			c, w := newTestContext(multipartRequest(t, "/api/v1/file/traducir", tt.filename, "", tt.content, nil))
			h.Translate(c)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
			svc.AssertNotCalled(t, "AnalyzeDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestFileHandler_Translate_UnsupportedExtensionListsAllowed(t *testing.T) {
	svc := new(mocks.MockJargonService)
	h := handler.NewFileHandler(svc, testUploadConfig(), zap.NewNop())

	c, w := newTestContext(multipartRequest(t, "/api/v1/file/traducir", "script.exe", "", []byte("MZ"), nil))
	h.Translate(c)

	resp := decodeError(t, w)
	assert.Contains(t, resp.Detail, ".pdf")
	assert.Contains(t, resp.Detail, ".xlsx")
}

func TestFileHandler_Translate_UpstreamFailure(t *testing.T) {
	svc := new(mocks.MockJargonService)
	h := handler.NewFileHandler(svc, testUploadConfig(), zap.NewNop())

	svc.On("AnalyzeDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, llm.NewUpstreamError("gemini", "upload", errors.New("bad request")))

	c, w := newTestContext(multipartRequest(t, "/api/v1/file/traducir", "a.csv", "text/csv", []byte("a,b"), nil))
	h.Translate(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "PROCESSING_FAILED", decodeError(t, w).Code)
}
