package gemini_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"techtospeak/internal/config"
	"techtospeak/internal/domain"
	"techtospeak/internal/llm"
	"techtospeak/internal/llm/gemini"
	"techtospeak/internal/port"
)

func newTestClient(t *testing.T, serverURL string) *gemini.Client {
	t.Helper()
	cfg := &config.GeminiConfig{
		Provider:    "gemini",
		APIKey:      "test-gemini-key",
		Model:       "gemini-2.5-flash-lite",
		TimeoutSecs: 10,
		BaseURL:     serverURL + "/",
	}
	c, err := gemini.NewClient(context.Background(), cfg, zap.NewNop(), gemini.WithPollInterval(0))
	require.NoError(t, err)
	return c
}

func successResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"role": "model",
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
				"finishReason": "STOP",
			},
		},
	}
}

func TestClient_Invoke_TextAndBlob(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-2.5-flash-lite:generateContent"), r.URL.Path)
		assert.Equal(t, "test-gemini-key", r.Header.Get("x-goog-api-key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse("  hola mundo  "))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	text, err := c.Invoke(context.Background(), []port.Part{
		port.TextPart("transcribe"),
		port.BlobPart("audio/wav", []byte("RIFF....WAVE")),
	})

	require.NoError(t, err)
	assert.Equal(t, "  hola mundo  ", text)

	contents := gotBody["contents"].([]interface{})
	require.Len(t, contents, 1)
	msg := contents[0].(map[string]interface{})
	assert.Equal(t, "user", msg["role"])
	parts := msg["parts"].([]interface{})
	require.Len(t, parts, 2)
	assert.Equal(t, "transcribe", parts[0].(map[string]interface{})["text"])
	inline := parts[1].(map[string]interface{})["inlineData"].(map[string]interface{})
	assert.Equal(t, "audio/wav", inline["mimeType"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("RIFF....WAVE")), inline["data"])
}

func TestClient_Invoke_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Invoke(context.Background(), []port.Part{port.TextPart("hola")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamInvocation))
	var upErr *llm.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "generate", upErr.Op)
}

func TestClient_Invoke_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Invoke(context.Background(), []port.Part{port.TextPart("hola")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamInvocation))
	assert.Contains(t, err.Error(), "no candidates")
}

func TestClient_Invoke_BlankText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse("   "))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Invoke(context.Background(), []port.Part{port.TextPart("hola")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamInvocation))
	assert.Contains(t, err.Error(), "STOP")
}

func TestClient_ReleaseUpload_NilHandle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	assert.NoError(t, c.ReleaseUpload(context.Background(), nil))
	assert.NoError(t, c.ReleaseUpload(context.Background(), &port.UploadHandle{}))
}

func TestClient_Invoke_BlobWithoutData(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse("texto"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err := c.Invoke(context.Background(), []port.Part{
		port.TextPart("transcribe"),
		port.BlobPart("audio/wav", nil),
	})
	require.NoError(t, err)

	parts := gotBody["contents"].([]interface{})[0].(map[string]interface{})["parts"].([]interface{})
	require.Len(t, parts, 2)
	second := parts[1].(map[string]interface{})
	assert.NotContains(t, second, "text")
	inline, ok := second["inlineData"].(map[string]interface{})
	require.True(t, ok, "payload part must stay inline data")
	assert.Equal(t, "audio/wav", inline["mimeType"])
}

func TestClient_Invoke_UploadReference(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse(`{"texto_extraido":"x"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	h := &port.UploadHandle{Name: "files/abc", URI: "https://example.test/v1beta/files/abc", MIMEType: "application/pdf"}
	_, err := c.Invoke(context.Background(), []port.Part{port.UploadPart(h), port.TextPart("analiza")})
	require.NoError(t, err)

	parts := gotBody["contents"].([]interface{})[0].(map[string]interface{})["parts"].([]interface{})
	require.Len(t, parts, 2)
	fileData := parts[0].(map[string]interface{})["fileData"].(map[string]interface{})
	assert.Equal(t, h.URI, fileData["fileUri"])
	assert.Equal(t, "application/pdf", fileData["mimeType"])
}

func TestClient_Invoke_DefaultModel(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(successResponse("ok"))
	}))
	defer server.Close()

	cfg := &config.GeminiConfig{Provider: "gemini", APIKey: "k", BaseURL: server.URL + "/"}
	c, err := gemini.NewClient(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	_, err = c.Invoke(context.Background(), []port.Part{port.TextPart("hola")})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(gotPath, "/models/gemini-2.5-flash-lite:generateContent"), gotPath)
}

func TestFactory_ReturnsModelClient(t *testing.T) {
	cfg := &config.GeminiConfig{Provider: "gemini", APIKey: "k"}

	mc, err := gemini.Factory(context.Background(), cfg, zap.NewNop())

	require.NoError(t, err)
	_, ok := mc.(*gemini.Client)
	assert.True(t, ok)
}

// filesAPI fakes the resumable upload and file lifecycle endpoints.
type filesAPI struct {
	mu          sync.Mutex
	calls       []string
	uploaded    []byte
	displayName string
	// states is the file state reported by the upload response and then by each GET.
	states    []string
	deleteErr bool
	onGet     func()
}

func (f *filesAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *filesAPI) nextState() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.states) == 0 {
		return "ACTIVE"
	}
	state := f.states[0]
	if len(f.states) > 1 {
		f.states = f.states[1:]
	}
	return state
}

func (f *filesAPI) requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *filesAPI) fileJSON(baseURL string) map[string]interface{} {
	return map[string]interface{}{
		"name":     "files/abc",
		"uri":      baseURL + "/v1beta/files/abc",
		"mimeType": "application/pdf",
		"state":    f.nextState(),
	}
}

func newFilesServer(t *testing.T, api *filesAPI) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/upload/v1beta/files":
			api.record("start")
			assert.Equal(t, "resumable", r.Header.Get("X-Goog-Upload-Protocol"))
			assert.Equal(t, "start", r.Header.Get("X-Goog-Upload-Command"))
			var body struct {
				File struct {
					DisplayName string `json:"displayName"`
				} `json:"file"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			api.mu.Lock()
			api.displayName = body.File.DisplayName
			api.mu.Unlock()
			w.Header().Set("X-Goog-Upload-URL", server.URL+"/resumable/abc")
			_, _ = w.Write([]byte(`{}`))

		case r.Method == http.MethodPost && r.URL.Path == "/resumable/abc":
			api.record("upload")
			assert.Equal(t, "upload, finalize", r.Header.Get("X-Goog-Upload-Command"))
			data, _ := io.ReadAll(r.Body)
			api.mu.Lock()
			api.uploaded = data
			api.mu.Unlock()
			w.Header().Set("X-Goog-Upload-Status", "final")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"file": api.fileJSON(server.URL)})

		case r.Method == http.MethodGet && r.URL.Path == "/v1beta/files/abc":
			api.record("get")
			if api.onGet != nil {
				api.onGet()
			}
			_ = json.NewEncoder(w).Encode(api.fileJSON(server.URL))

		case r.Method == http.MethodDelete && r.URL.Path == "/v1beta/files/abc":
			api.record("delete")
			if api.deleteErr {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":{"code":404,"message":"file not found","status":"NOT_FOUND"}}`))
				return
			}
			_, _ = w.Write([]byte(`{}`))

		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func stageInput() port.UploadInput {
	return port.UploadInput{
		Body:        bytes.NewReader([]byte("%PDF-1.4 informe")),
		MIMEType:    "application/pdf",
		DisplayName: "informe.pdf",
	}
}

func TestClient_StageUpload_WaitsUntilActive(t *testing.T) {
	api := &filesAPI{states: []string{"PROCESSING", "PROCESSING", "ACTIVE"}}
	server := newFilesServer(t, api)
	c := newTestClient(t, server.URL)

	h, err := c.StageUpload(context.Background(), stageInput())

	require.NoError(t, err)
	assert.Equal(t, "files/abc", h.Name)
	assert.Equal(t, server.URL+"/v1beta/files/abc", h.URI)
	assert.Equal(t, "application/pdf", h.MIMEType)
	assert.Equal(t, []string{"start", "upload", "get", "get"}, api.requests())
	assert.Equal(t, "%PDF-1.4 informe", string(api.uploaded))
	assert.Equal(t, "informe.pdf", api.displayName)
}

func TestClient_StageUpload_AlreadyActive(t *testing.T) {
	api := &filesAPI{states: []string{"ACTIVE"}}
	server := newFilesServer(t, api)
	c := newTestClient(t, server.URL)

	h, err := c.StageUpload(context.Background(), stageInput())

	require.NoError(t, err)
	assert.Equal(t, "files/abc", h.Name)
	assert.Equal(t, []string{"start", "upload"}, api.requests())
}

func TestClient_StageUpload_FailedProcessingReleasesFile(t *testing.T) {
	api := &filesAPI{states: []string{"PROCESSING", "FAILED"}}
	server := newFilesServer(t, api)
	c := newTestClient(t, server.URL)

	h, err := c.StageUpload(context.Background(), stageInput())

	require.Error(t, err)
	assert.Nil(t, h)
	assert.True(t, errors.Is(err, domain.ErrUpstreamInvocation))
	var upErr *llm.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "upload", upErr.Op)
	assert.Contains(t, err.Error(), "failed processing")
	assert.Equal(t, []string{"start", "upload", "get", "delete"}, api.requests())
}

func TestClient_StageUpload_CancelledWhileProcessingReleasesFile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := &filesAPI{states: []string{"PROCESSING"}, onGet: cancel}
	server := newFilesServer(t, api)
	c := newTestClient(t, server.URL)

	h, err := c.StageUpload(ctx, stageInput())

	require.Error(t, err)
	assert.Nil(t, h)
	assert.True(t, errors.Is(err, domain.ErrUpstreamInvocation))
	assert.Equal(t, []string{"start", "upload", "get", "delete"}, api.requests())
}

func TestClient_ReleaseUpload_DeletesFile(t *testing.T) {
	api := &filesAPI{}
	server := newFilesServer(t, api)
	c := newTestClient(t, server.URL)

	err := c.ReleaseUpload(context.Background(), &port.UploadHandle{Name: "files/abc"})

	require.NoError(t, err)
	assert.Equal(t, []string{"delete"}, api.requests())
}

func TestClient_ReleaseUpload_APIError(t *testing.T) {
	api := &filesAPI{deleteErr: true}
	server := newFilesServer(t, api)
	c := newTestClient(t, server.URL)

	err := c.ReleaseUpload(context.Background(), &port.UploadHandle{Name: "files/abc"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamInvocation))
	var upErr *llm.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, "delete", upErr.Op)
}
