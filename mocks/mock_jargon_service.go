package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"techtospeak/internal/domain"
)

// MockJargonService is a mock implementation of service.JargonService.
type MockJargonService struct {
	mock.Mock
}

func (m *MockJargonService) TranscribeAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, data, mimeType)
	return args.String(0), args.Error(1)
}

func (m *MockJargonService) ExplainJargon(ctx context.Context, text, domainHint string) (*domain.ExplanationRecord, error) {
	args := m.Called(ctx, text, domainHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExplanationRecord), args.Error(1)
}

func (m *MockJargonService) AnalyzeDocument(ctx context.Context, data []byte, filename, domainHint string) (*domain.ExtractionRecord, error) {
	args := m.Called(ctx, data, filename, domainHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionRecord), args.Error(1)
}

func (m *MockJargonService) AnalyzeImage(ctx context.Context, data []byte, filename, domainHint string) (*domain.ExtractionRecord, error) {
	args := m.Called(ctx, data, filename, domainHint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionRecord), args.Error(1)
}
