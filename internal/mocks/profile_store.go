package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockProfileStore implements store.ProfileStore for testing
type MockProfileStore struct {
	GetStatsFn      func(ctx context.Context, userID uuid.UUID) (*domain.TravelerStats, error)
	ListInventoryFn func(ctx context.Context, userID uuid.UUID) ([]domain.Artifact, error)
	CreateProfileFn func(ctx context.Context, userID uuid.UUID) error

	// Data for default implementation
	Stats     map[uuid.UUID]domain.TravelerStats
	Inventory map[uuid.UUID][]domain.Artifact

	StatsError     error
	InventoryError error
	CreateError    error

	mu sync.Mutex
}

// Ensure MockProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*MockProfileStore)(nil)

// NewMockProfileStore creates an empty mock profile store.
func NewMockProfileStore() *MockProfileStore {
	return &MockProfileStore{
		Stats:     make(map[uuid.UUID]domain.TravelerStats),
		Inventory: make(map[uuid.UUID][]domain.Artifact),
	}
}

// GetStats implements the ProfileStore interface
func (m *MockProfileStore) GetStats(ctx context.Context, userID uuid.UUID) (*domain.TravelerStats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx, userID)
	}
	if m.StatsError != nil {
		return nil, m.StatsError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stats, ok := m.Stats[userID]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return &stats, nil
}

// ListInventory implements the ProfileStore interface
func (m *MockProfileStore) ListInventory(ctx context.Context, userID uuid.UUID) ([]domain.Artifact, error) {
	if m.ListInventoryFn != nil {
		return m.ListInventoryFn(ctx, userID)
	}
	if m.InventoryError != nil {
		return nil, m.InventoryError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]domain.Artifact{}, m.Inventory[userID]...), nil
}

// CreateProfile implements the ProfileStore interface
func (m *MockProfileStore) CreateProfile(ctx context.Context, userID uuid.UUID) error {
	if m.CreateProfileFn != nil {
		return m.CreateProfileFn(ctx, userID)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Stats[userID] = domain.TravelerStats{Rank: domain.DefaultRank}
	return nil
}

// WithTx implements the ProfileStore interface. The mock ignores the
// transaction and returns itself.
func (m *MockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}

// TestifyMockProfileStore is a mock of store.ProfileStore for use with testify/mock
type TestifyMockProfileStore struct {
	mock.Mock
}

// GetStats is a mock implementation of store.ProfileStore.GetStats
func (m *TestifyMockProfileStore) GetStats(ctx context.Context, userID uuid.UUID) (*domain.TravelerStats, error) {
	args := m.Called(ctx, userID)
	if stats, ok := args.Get(0).(*domain.TravelerStats); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListInventory is a mock implementation of store.ProfileStore.ListInventory
func (m *TestifyMockProfileStore) ListInventory(ctx context.Context, userID uuid.UUID) ([]domain.Artifact, error) {
	args := m.Called(ctx, userID)
	if items, ok := args.Get(0).([]domain.Artifact); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreateProfile is a mock implementation of store.ProfileStore.CreateProfile
func (m *TestifyMockProfileStore) CreateProfile(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// WithTx returns the mock itself; no expectation is needed for it.
func (m *TestifyMockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}
