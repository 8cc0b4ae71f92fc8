package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock implementation of data.Provider for testing purposes.
type Provider struct {
	mock.Mock
}

// GetData is a mock implementation of the GetData method.
func (m *Provider) GetData(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if d, ok := args.Get(0).(map[string]any); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

// AddDataToContext is a mock implementation of the AddDataToContext method.
func (m *Provider) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	args := m.Called(ctx, d)
	if c, ok := args.Get(0).(context.Context); ok {
		return c, args.Error(1)
	}
	return ctx, args.Error(1)
}
