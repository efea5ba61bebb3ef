// Package mocks provides centralized mock implementations for testing.
//
// Each file mocks one interface. Mocks expose function fields for custom
// behavior plus plain fields for the common cases, so tests can stay short:
//
//	model := mocks.NewMockModelWithText(`{"headline":"..."}`)
//	users := mocks.NewMockUserStore()
//	users.GetByEmailError = store.ErrUnavailable
//
// TestifyMockUserStore and TestifyMockProfileStore are testify/mock based
// for tests that assert on call arguments.
package mocks
