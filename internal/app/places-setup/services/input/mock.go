package input

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockService provides a mock implementation of ServiceInterface for testing.
type MockService struct {
	mock.Mock
}

var _ ServiceInterface = (*MockService)(nil)

func (m *MockService) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	args := m.Called(ctx, prompt, defaultValue)
	return args.String(0), args.Error(1)
}

func (m *MockService) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	args := m.Called(ctx, prompt, defaultValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) Select(
	ctx context.Context,
	title, prompt string,
	options []string,
	defaultIndex int,
) (int, error) {
	args := m.Called(ctx, title, prompt, options, defaultIndex)
	return args.Int(0), args.Error(1)
}
