package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/timension/internal/service/auth"
)

// MockAuthService mocks the session lifecycle consumed by the HTTP layer.
type MockAuthService struct {
	SignUpFn  func(ctx context.Context, email, password string) (*auth.Session, error)
	SignInFn  func(ctx context.Context, email, password string) (*auth.Session, error)
	RefreshFn func(ctx context.Context, refreshToken string) (*auth.Session, error)
	SessionFn func(ctx context.Context, accessToken string) (*auth.Session, error)
	SignOutFn func(ctx context.Context, session *auth.Session, refreshToken string) error

	// Default values used when functions aren't explicitly defined
	Result *auth.Session
	Err    error

	mu             sync.Mutex
	signedOut      []*auth.Session
	revokedRefresh []string
}

// SignUp mocks auth.Service.SignUp
func (m *MockAuthService) SignUp(ctx context.Context, email, password string) (*auth.Session, error) {
	if m.SignUpFn != nil {
		return m.SignUpFn(ctx, email, password)
	}
	return m.Result, m.Err
}

// SignIn mocks auth.Service.SignIn
func (m *MockAuthService) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	if m.SignInFn != nil {
		return m.SignInFn(ctx, email, password)
	}
	return m.Result, m.Err
}

// Refresh mocks auth.Service.Refresh
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*auth.Session, error) {
	if m.RefreshFn != nil {
		return m.RefreshFn(ctx, refreshToken)
	}
	return m.Result, m.Err
}

// Session mocks auth.Service.Session
func (m *MockAuthService) Session(ctx context.Context, accessToken string) (*auth.Session, error) {
	if m.SessionFn != nil {
		return m.SessionFn(ctx, accessToken)
	}
	return m.Result, m.Err
}

// SignOut mocks auth.Service.SignOut and records its arguments
func (m *MockAuthService) SignOut(ctx context.Context, session *auth.Session, refreshToken string) error {
	m.mu.Lock()
	m.signedOut = append(m.signedOut, session)
	m.revokedRefresh = append(m.revokedRefresh, refreshToken)
	m.mu.Unlock()

	if m.SignOutFn != nil {
		return m.SignOutFn(ctx, session, refreshToken)
	}
	return m.Err
}

// SignOutCalls returns the sessions and refresh tokens passed to SignOut.
func (m *MockAuthService) SignOutCalls() ([]*auth.Session, []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*auth.Session(nil), m.signedOut...), append([]string(nil), m.revokedRefresh...)
}
