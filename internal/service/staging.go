package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"techtospeak/internal/metrics"
	"techtospeak/internal/port"
)

const defaultDisplayName = "documento"

// stagedDocument is a document held in local scratch space and staged with the
// model service. It belongs to the request that created it.
type stagedDocument struct {
	path   string
	handle *port.UploadHandle
}

// stage writes data to a temp file and uploads it. On failure everything
// created so far is released before returning.
func (s *jargonService) stage(ctx context.Context, data []byte, mimeType, filename, ext string) (*stagedDocument, error) {
	f, err := os.CreateTemp(s.cfg.TempDir, "techtospeak-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	staged := &stagedDocument{path: f.Name()}

	if _, err := f.Write(data); err != nil {
		f.Close()
		s.release(ctx, staged)
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		s.release(ctx, staged)
		return nil, fmt.Errorf("seeking temp file: %w", err)
	}

	displayName := filepath.Base(filename)
	if filename == "" || displayName == "." || displayName == string(filepath.Separator) {
		displayName = defaultDisplayName
	}

	handle, err := s.client.StageUpload(ctx, port.UploadInput{
		Body:        f,
		MIMEType:    mimeType,
		DisplayName: displayName,
	})
	f.Close()
	if err != nil {
		metrics.ModelInvocations.WithLabelValues("stage_upload", "error").Inc()
		s.logger.Error("jargonService.stage: staging upload failed",
			zap.String("filename", filename),
			zap.Error(err),
		)
		s.release(ctx, staged)
		return nil, err
	}
	metrics.ModelInvocations.WithLabelValues("stage_upload", "ok").Inc()

	staged.handle = handle
	return staged, nil
}

// release removes the remote staged upload and the local temp file. Failures
// are logged and counted, never returned.
func (s *jargonService) release(ctx context.Context, staged *stagedDocument) {
	if staged == nil {
		return
	}
	cleanupCtx := context.WithoutCancel(ctx)

	if staged.handle != nil {
		if err := s.client.ReleaseUpload(cleanupCtx, staged.handle); err != nil {
			metrics.CleanupFailures.WithLabelValues("staged_upload").Inc()
			s.logger.Warn("jargonService.release: failed to delete staged upload",
				zap.String("name", staged.handle.Name),
				zap.Error(err),
			)
		}
	}

	if staged.path != "" {
		if err := os.Remove(staged.path); err != nil && !os.IsNotExist(err) {
			metrics.CleanupFailures.WithLabelValues("temp_file").Inc()
			s.logger.Warn("jargonService.release: failed to remove temp file",
				zap.String("path", staged.path),
				zap.Error(err),
			)
		}
	}
}

func fileExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
