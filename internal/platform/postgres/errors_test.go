package postgres_test

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/timension/internal/platform/postgres"
	"github.com/phrazzld/timension/internal/store"
	"github.com/stretchr/testify/assert"
)

// Mock PgError creation helper
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		Detail:         "error details",
		SchemaName:     "public",
		TableName:      "test_table",
		ColumnName:     "test_column",
		ConstraintName: "test_constraint",
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "non-postgres error", err: errors.New("generic error"), expected: false},
		{name: "unique violation", err: newPgError("23505"), expected: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", newPgError("23505")), expected: true},
		{name: "foreign key violation", err: newPgError("23503"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, postgres.IsUniqueViolation(tt.err))
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	t.Parallel()

	opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "bad conn", err: driver.ErrBadConn, expected: true},
		{name: "net op error", err: opErr, expected: true},
		{name: "wrapped net op error", err: fmt.Errorf("ping: %w", opErr), expected: true},
		{name: "postgres error", err: newPgError("23505"), expected: false},
		{name: "no rows", err: sql.ErrNoRows, expected: false},
		{name: "generic error", err: errors.New("boom"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, postgres.IsConnectionError(tt.err))
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		errIs  error
		errMsg string
	}{
		{
			name:   "sql.ErrNoRows",
			err:    sql.ErrNoRows,
			errIs:  store.ErrNotFound,
			errMsg: "entity not found",
		},
		{
			name:   "unique violation",
			err:    newPgError("23505"),
			errIs:  store.ErrDuplicate,
			errMsg: "entity already exists",
		},
		{
			name:   "foreign key violation",
			err:    newPgError("23503"),
			errIs:  store.ErrInvalidEntity,
			errMsg: "foreign key violation",
		},
		{
			name:   "check constraint violation",
			err:    newPgError("23514"),
			errIs:  store.ErrInvalidEntity,
			errMsg: "check constraint violation",
		},
		{
			name:   "not null violation",
			err:    newPgError("23502"),
			errIs:  store.ErrInvalidEntity,
			errMsg: "not null violation",
		},
		{
			name:   "connection failure",
			err:    &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			errIs:  store.ErrUnavailable,
			errMsg: "store unavailable",
		},
		{
			name:   "bad connection",
			err:    driver.ErrBadConn,
			errIs:  store.ErrUnavailable,
			errMsg: "store unavailable",
		},
		{
			name: "other postgres error",
			err:  newPgError("42P01"), // undefined_table
		},
		{
			name: "generic error",
			err:  errors.New("generic error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := postgres.MapError(tt.err)
			assert.NotNil(t, result)

			if tt.errIs != nil {
				assert.ErrorIs(t, result, tt.errIs)
				assert.Contains(t, result.Error(), tt.errMsg)
				return
			}
			assert.Equal(t, tt.err, result)
		})
	}

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, postgres.MapError(nil))
	})
}
