package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/redact"
	"github.com/phrazzld/timension/internal/store"
)

// PostgresProfileStore implements store.ProfileStore over the profiles and
// inventory tables.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
	now    func() time.Time
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the ProfileStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
		now:    time.Now,
	}
}

// Ensure PostgresProfileStore implements store.ProfileStore interface
var _ store.ProfileStore = (*PostgresProfileStore)(nil)

// WithTx implements store.ProfileStore.WithTx
func (s *PostgresProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &PostgresProfileStore{db: tx, logger: s.logger, now: s.now}
}

// GetStats implements store.ProfileStore.GetStats.
// NULL columns come back as their defaults.
func (s *PostgresProfileStore) GetStats(ctx context.Context, userID uuid.UUID) (*domain.TravelerStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select(
		"COALESCE(rank, '')",
		"COALESCE(centuries_traversed, 0)",
		"COALESCE(paradoxes_caused, 0)",
		"COALESCE(artifacts_found, 0)",
		"COALESCE(major_discoveries, 0)",
		"join_date",
	).From("profiles").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	var (
		stats    domain.TravelerStats
		joinDate sql.NullTime
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.Rank,
		&stats.CenturiesTraversed,
		&stats.ParadoxesCaused,
		&stats.ArtifactsFound,
		&stats.MajorDiscoveries,
		&joinDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to query profile",
			slog.String("user_id", userID.String()),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("profile", "get_stats", "failed to query profile", MapError(err))
	}

	if joinDate.Valid {
		stats.JoinDate = joinDate.Time.Format(domain.JoinDateLayout)
	}
	stats = stats.WithDefaults(s.now())
	return &stats, nil
}

// ListInventory implements store.ProfileStore.ListInventory
func (s *PostgresProfileStore) ListInventory(ctx context.Context, userID uuid.UUID) ([]domain.Artifact, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := psql.Select("id", "name", "description", "rarity", "icon_name").
		From("inventory").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("acquired_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query inventory",
			slog.String("user_id", userID.String()),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("inventory", "list", "failed to query inventory", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	artifacts := []domain.Artifact{}
	for rows.Next() {
		var a domain.Artifact
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Rarity, &a.IconName); err != nil {
			return nil, store.NewStoreError("inventory", "list", "failed to scan artifact", MapError(err))
		}
		if !a.Rarity.Valid() {
			log.Warn("artifact has unknown rarity",
				slog.String("artifact_id", a.ID),
				slog.String("rarity", string(a.Rarity)))
			a.Rarity = domain.RarityCommon
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("inventory", "list", "failed to iterate inventory", MapError(err))
	}

	return artifacts, nil
}

// CreateProfile implements store.ProfileStore.CreateProfile.
// The row starts with the default rank, zero counters and today's date.
func (s *PostgresProfileStore) CreateProfile(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := s.now().UTC()
	query, args, err := psql.Insert("profiles").
		Columns("user_id", "rank", "centuries_traversed", "paradoxes_caused",
			"artifacts_found", "major_discoveries", "join_date").
		Values(userID, domain.DefaultRank, 0, 0, 0, 0, now.Format(domain.JoinDateLayout)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create profile",
			slog.String("user_id", userID.String()),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("profile", "create", "failed to create profile", MapError(err))
	}
	return nil
}
