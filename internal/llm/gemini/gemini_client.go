package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"techtospeak/internal/config"
	"techtospeak/internal/llm"
	"techtospeak/internal/port"
)

const (
	providerName = "gemini"
	defaultModel = "gemini-2.5-flash-lite"
)

// Client implements port.ModelClient using the Gemini API.
type Client struct {
	genai        *genai.Client
	model        string
	logger       *zap.Logger
	pollInterval time.Duration
}

// Option customizes a Client.
type Option func(*Client)

// WithPollInterval sets how often StageUpload re-checks a file that is still processing.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// NewClient creates a Gemini-backed model client.
func NewClient(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout()},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	c := &Client{
		genai:        gc,
		model:        model,
		logger:       logger.Named("gemini"),
		pollInterval: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Factory adapts NewClient to llm.ProviderFactory.
func Factory(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (port.ModelClient, error) {
	return NewClient(ctx, cfg, logger)
}

func (c *Client) Invoke(ctx context.Context, parts []port.Part) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(toGenaiParts(parts), genai.RoleUser)}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", llm.NewUpstreamError(providerName, "generate", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", llm.NewUpstreamError(providerName, "generate", errors.New("empty response: no candidates"))
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		reason := ""
		if resp.Candidates[0] != nil {
			reason = string(resp.Candidates[0].FinishReason)
		}
		return "", llm.NewUpstreamError(providerName, "generate", fmt.Errorf("empty response text (finish reason %q)", reason))
	}

	c.logger.Debug("gemini.Invoke: reply received",
		zap.String("model", c.model),
		zap.Int("parts", len(parts)),
		zap.Int("reply_len", len(text)),
	)
	return text, nil
}

func (c *Client) StageUpload(ctx context.Context, input port.UploadInput) (*port.UploadHandle, error) {
	f, err := c.genai.Files.Upload(ctx, input.Body, &genai.UploadFileConfig{
		MIMEType:    input.MIMEType,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, llm.NewUpstreamError(providerName, "upload", err)
	}

	h := &port.UploadHandle{Name: f.Name, URI: f.URI, MIMEType: f.MIMEType}
	if h.MIMEType == "" {
		h.MIMEType = input.MIMEType
	}

	c.logger.Debug("gemini.StageUpload: file staged",
		zap.String("name", f.Name),
		zap.String("display_name", input.DisplayName),
		zap.String("state", string(f.State)),
	)

	if err := c.waitActive(ctx, f); err != nil {
		// The caller never receives the handle, so release it here.
		if relErr := c.ReleaseUpload(context.WithoutCancel(ctx), h); relErr != nil {
			c.logger.Warn("gemini.StageUpload: release after failed activation", zap.Error(relErr))
		}
		return nil, err
	}
	return h, nil
}

// waitActive polls a freshly uploaded file until the service finishes processing it.
func (c *Client) waitActive(ctx context.Context, f *genai.File) error {
	for f.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return llm.NewUpstreamError(providerName, "upload", ctx.Err())
		case <-time.After(c.pollInterval):
		}

		var err error
		f, err = c.genai.Files.Get(ctx, f.Name, nil)
		if err != nil {
			return llm.NewUpstreamError(providerName, "upload", err)
		}
	}
	if f.State == genai.FileStateFailed {
		return llm.NewUpstreamError(providerName, "upload", fmt.Errorf("file %s failed processing", f.Name))
	}
	return nil
}

func (c *Client) ReleaseUpload(ctx context.Context, h *port.UploadHandle) error {
	if h == nil || h.Name == "" {
		return nil
	}
	if _, err := c.genai.Files.Delete(ctx, h.Name, nil); err != nil {
		return llm.NewUpstreamError(providerName, "delete", err)
	}
	return nil
}

func toGenaiParts(parts []port.Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		switch {
		case p.Upload != nil:
			out = append(out, genai.NewPartFromURI(p.Upload.URI, p.Upload.MIMEType))
		case p.MIMEType != "":
			out = append(out, genai.NewPartFromBytes(p.Data, p.MIMEType))
		default:
			out = append(out, genai.NewPartFromText(p.Text))
		}
	}
	return out
}
