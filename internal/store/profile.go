package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/domain"
)

// ProfileStore reads traveler stats and inventory. Both are read-only
// from the application's point of view apart from the empty profile row
// created at sign-up.
type ProfileStore interface {
	// GetStats returns the stats row of a user with column defaults applied.
	// Returns ErrProfileNotFound if the user has no row.
	GetStats(ctx context.Context, userID uuid.UUID) (*domain.TravelerStats, error)

	// ListInventory returns a user's artifacts, oldest first. An empty
	// inventory is not an error.
	ListInventory(ctx context.Context, userID uuid.UUID) ([]domain.Artifact, error)

	// CreateProfile inserts the default profile row for a new user.
	CreateProfile(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a ProfileStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ProfileStore
}
