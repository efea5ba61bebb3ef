package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/timension/internal/generation"
)

// MockModel implements generation.Model for testing
type MockModel struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, req generation.Request) (*generation.Response, error)

	// Default response values
	Response *generation.Response
	Err      error

	mu       sync.Mutex
	requests []generation.Request
}

// Generate implements the generation.Model interface
func (m *MockModel) Generate(ctx context.Context, req generation.Request) (*generation.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, req)
	}
	return m.Response, m.Err
}

// Requests returns the requests received so far.
func (m *MockModel) Requests() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.Request(nil), m.requests...)
}

// CallCount returns how many times Generate was called.
func (m *MockModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// NewMockModelWithText creates a MockModel that answers with text.
func NewMockModelWithText(text string) *MockModel {
	return &MockModel{Response: &generation.Response{Text: text}}
}

// NewMockModelWithError creates a MockModel that fails with err.
func NewMockModelWithError(err error) *MockModel {
	return &MockModel{Err: err}
}

// MockModelWithTransientFailure simulates a network failure.
func MockModelWithTransientFailure() *MockModel {
	return NewMockModelWithError(generation.ErrTransientFailure)
}

// MockModelWithContentBlocked simulates a safety block.
func MockModelWithContentBlocked() *MockModel {
	return NewMockModelWithError(generation.ErrContentBlocked)
}
