package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"techtospeak/internal/config"
	"techtospeak/internal/domain"
	"techtospeak/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testUploadConfig() *config.UploadConfig {
	return &config.UploadConfig{MaxFileSizeMB: 1}
}

// multipartRequest builds a POST with a "file" part and optional form fields.
func multipartRequest(t *testing.T, path, filename, contentType string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newTestContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("request_id", "test-request")
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) handler.ErrorResponseBody {
	t.Helper()
	var resp handler.ErrorResponseBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleExplanation() *domain.ExplanationRecord {
	return &domain.ExplanationRecord{
		ExplicacionClara:  "La bomba está formando burbujas y puede dañarse.",
		AccionesSugeridas: []string{"Apagar el equipo", "Llamar al técnico"},
		NivelUrgencia:     "alta",
	}
}
