package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"techtospeak/internal/config"
	"techtospeak/internal/document"
	"techtospeak/internal/domain"
	"techtospeak/internal/llm"
	"techtospeak/internal/metrics"
	"techtospeak/internal/normalize"
	"techtospeak/internal/port"
	"techtospeak/internal/prompt"
)

// Operation names used in logs and metric labels.
const (
	opTranscribe      = "transcribe_audio"
	opExplain         = "explain_jargon"
	opAnalyzeDocument = "analyze_document"
	opExtractImage    = "extract_image_text"
	opExplainImage    = "explain_image_text"
)

// JargonService turns technical audio, text, documents and images into
// plain-language explanation records.
type JargonService interface {
	TranscribeAudio(ctx context.Context, data []byte, mimeType string) (string, error)
	ExplainJargon(ctx context.Context, text, domainHint string) (*domain.ExplanationRecord, error)
	AnalyzeDocument(ctx context.Context, data []byte, filename, domainHint string) (*domain.ExtractionRecord, error)
	AnalyzeImage(ctx context.Context, data []byte, filename, domainHint string) (*domain.ExtractionRecord, error)
}

type jargonService struct {
	client port.ModelClient
	cfg    *config.UploadConfig
	logger *zap.Logger
}

// NewJargonService creates a new JargonService implementation.
func NewJargonService(client port.ModelClient, cfg *config.UploadConfig, logger *zap.Logger) JargonService {
	return &jargonService{
		client: client,
		cfg:    cfg,
		logger: logger.Named("jargon"),
	}
}

func (s *jargonService) TranscribeAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", domain.ErrEmptyFile
	}
	if mimeType == "" {
		mimeType = domain.DefaultAudioMIMEType
	}

	s.logger.Info("jargonService.TranscribeAudio: transcribing",
		zap.String("mime_type", mimeType),
		zap.Int("bytes", len(data)),
	)

	reply, err := s.invoke(ctx, opTranscribe,
		port.TextPart(prompt.Transcription),
		port.BlobPart(mimeType, data),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (s *jargonService) ExplainJargon(ctx context.Context, text, domainHint string) (*domain.ExplanationRecord, error) {
	area := hintOrDefault(domainHint)

	s.logger.Info("jargonService.ExplainJargon: explaining",
		zap.String("area", area),
		zap.Int("text_len", len(text)),
	)

	reply, err := s.invoke(ctx, opExplain, port.TextPart(prompt.BuildExplainPrompt(text, area)))
	if err != nil {
		return nil, err
	}

	rec := s.explanationFromReply(opExplain, reply)
	return &rec, nil
}

func (s *jargonService) AnalyzeDocument(ctx context.Context, data []byte, filename, domainHint string) (*domain.ExtractionRecord, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}
	area := hintOrDefault(domainHint)
	mimeType := document.MIMEFromFilename(filename)
	ext := fileExt(filename)

	payload := data
	if document.IsSpreadsheet(mimeType) {
		csv, err := document.SpreadsheetToCSV(data)
		if err != nil {
			s.logger.Warn("jargonService.AnalyzeDocument: spreadsheet conversion failed, staging original bytes",
				zap.String("filename", filename),
				zap.Error(err),
			)
		} else {
			payload, mimeType, ext = csv, "text/csv", ".csv"
		}
	}

	s.logger.Info("jargonService.AnalyzeDocument: analyzing",
		zap.String("filename", filename),
		zap.String("mime_type", mimeType),
		zap.Int("bytes", len(payload)),
		zap.String("area", area),
	)

	staged, err := s.stage(ctx, payload, mimeType, filename, ext)
	if err != nil {
		return nil, err
	}
	defer s.release(ctx, staged)

	reply, err := s.invoke(ctx, opAnalyzeDocument,
		port.UploadPart(staged.handle),
		port.TextPart(prompt.BuildDocumentPrompt(area)),
	)
	if err != nil {
		return nil, err
	}

	m, ok := s.parseReply(opAnalyzeDocument, reply)
	if !ok {
		rec := domain.FallbackExtraction(reply)
		return &rec, nil
	}
	s.reportSchema(opAnalyzeDocument, extractionSchema, m)
	rec := extractionFromMapping(m, reply)
	s.reportUrgency(opAnalyzeDocument, rec.NivelUrgencia)
	return &rec, nil
}

func (s *jargonService) AnalyzeImage(ctx context.Context, data []byte, filename, domainHint string) (*domain.ExtractionRecord, error) {
	if len(data) == 0 {
		return nil, domain.ErrEmptyFile
	}
	area := hintOrDefault(domainHint)
	mimeType := document.DetectMIME(filename, data)

	s.logger.Info("jargonService.AnalyzeImage: extracting text",
		zap.String("filename", filename),
		zap.String("mime_type", mimeType),
		zap.Int("bytes", len(data)),
	)

	extracted, err := s.invoke(ctx, opExtractImage,
		port.TextPart(prompt.ImageTextExtraction),
		port.BlobPart(mimeType, data),
	)
	if err != nil {
		return nil, err
	}
	extracted = strings.TrimSpace(extracted)

	if extracted == domain.NoVisibleText {
		s.logger.Info("jargonService.AnalyzeImage: no visible text in image", zap.String("filename", filename))
	}

	reply, err := s.invoke(ctx, opExplainImage, port.TextPart(prompt.BuildExplainPrompt(extracted, area)))
	if err != nil {
		return nil, err
	}

	return &domain.ExtractionRecord{
		TextoExtraido:     extracted,
		ExplanationRecord: s.explanationFromReply(opExplainImage, reply),
	}, nil
}

// invoke sends one prompt to the model, recording latency and outcome.
// Errors that are not already upstream errors are wrapped as such.
func (s *jargonService) invoke(ctx context.Context, op string, parts ...port.Part) (string, error) {
	start := time.Now()
	reply, err := s.client.Invoke(ctx, parts)
	metrics.ModelInvocationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ModelInvocations.WithLabelValues(op, "error").Inc()
		s.logger.Error("jargonService.invoke: model invocation failed",
			zap.String("operation", op),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		if !errors.Is(err, domain.ErrUpstreamInvocation) {
			err = llm.NewUpstreamError("model", op, err)
		}
		return "", err
	}

	metrics.ModelInvocations.WithLabelValues(op, "ok").Inc()
	return reply, nil
}

// parseReply recovers a mapping from reply. An empty object counts as a miss.
func (s *jargonService) parseReply(op, reply string) (map[string]any, bool) {
	m, stage := normalize.Normalize(reply)
	if stage == normalize.StageMiss || len(m) == 0 {
		metrics.NormalizationOutcomes.WithLabelValues(op, string(normalize.StageMiss)).Inc()
		s.logger.Warn("jargonService.parseReply: reply has no usable JSON object, using fallback record",
			zap.String("operation", op),
			zap.Int("reply_len", len(reply)),
		)
		return nil, false
	}

	metrics.NormalizationOutcomes.WithLabelValues(op, string(stage)).Inc()
	if stage != normalize.StageDirect {
		s.logger.Debug("jargonService.parseReply: recovered JSON from wrapped reply",
			zap.String("operation", op),
			zap.String("stage", string(stage)),
		)
	}
	return m, true
}

func (s *jargonService) explanationFromReply(op, reply string) domain.ExplanationRecord {
	m, ok := s.parseReply(op, reply)
	if !ok {
		return domain.FallbackExplanation(reply)
	}
	s.reportSchema(op, explanationSchema, m)
	rec := explanationFromMapping(m, reply)
	s.reportUrgency(op, rec.NivelUrgencia)
	return rec
}

func (s *jargonService) reportSchema(op string, schema, m map[string]interface{}) {
	violations, err := schemaViolations(schema, m)
	if err != nil {
		s.logger.Warn("jargonService.reportSchema: schema check failed", zap.String("operation", op), zap.Error(err))
		return
	}
	if len(violations) == 0 {
		return
	}
	metrics.SchemaMismatches.WithLabelValues(op).Inc()
	s.logger.Warn("jargonService.reportSchema: reply does not match record shape, filling defaults",
		zap.String("operation", op),
		zap.Strings("violations", violations),
	)
}

// reportUrgency flags levels outside baja/media/alta. The value is kept as is.
func (s *jargonService) reportUrgency(op, level string) {
	if domain.UrgencyLevel(level).Known() {
		return
	}
	metrics.UnknownUrgency.Inc()
	s.logger.Warn("jargonService.reportUrgency: unrecognized urgency level passed through",
		zap.String("operation", op),
		zap.String("nivel_urgencia", level),
	)
}

func hintOrDefault(hint string) string {
	if h := strings.TrimSpace(hint); h != "" {
		return h
	}
	return domain.DefaultDomainHint
}
