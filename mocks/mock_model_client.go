package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"techtospeak/internal/port"
)

// MockModelClient is a mock implementation of port.ModelClient.
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) Invoke(ctx context.Context, parts []port.Part) (string, error) {
	args := m.Called(ctx, parts)
	return args.String(0), args.Error(1)
}

func (m *MockModelClient) StageUpload(ctx context.Context, input port.UploadInput) (*port.UploadHandle, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.UploadHandle), args.Error(1)
}

func (m *MockModelClient) ReleaseUpload(ctx context.Context, h *port.UploadHandle) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
