package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/timension/internal/domain"
	"github.com/phrazzld/timension/internal/platform/logger"
	"github.com/phrazzld/timension/internal/redact"
	"github.com/phrazzld/timension/internal/service/auth"
	"github.com/phrazzld/timension/internal/store"
	"golang.org/x/sync/errgroup"
)

// ProfileService provides the read-only traveler profile.
type ProfileService interface {
	// GetProfile returns the profile of the identity. It always returns a
	// profile; read failures, missing rows and offline sessions yield the
	// fallback profile with the identity's email.
	GetProfile(ctx context.Context, id auth.Identity) domain.TravelerProfile
}

// ProfileServiceImpl implements the ProfileService interface
type ProfileServiceImpl struct {
	profiles store.ProfileStore
	logger   *slog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles store.ProfileStore, logger *slog.Logger) ProfileService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileServiceImpl{
		profiles: profiles,
		logger:   logger.With("component", "profile_service"),
	}
}

// GetProfile implements ProfileService. Stats and inventory are read
// concurrently.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, id auth.Identity) domain.TravelerProfile {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id.Offline {
		log.Debug("offline session, serving fallback profile")
		return domain.FallbackProfile(id.Email)
	}

	var (
		stats     *domain.TravelerStats
		inventory []domain.Artifact
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.profiles.GetStats(gctx, id.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		inventory, err = s.profiles.ListInventory(gctx, id.UserID)
		return err
	})

	if err := g.Wait(); err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("traveler has no profile row, serving fallback profile", "user_id", id.UserID)
		} else {
			log.Error("failed to read traveler profile, serving fallback profile",
				"user_id", id.UserID,
				"error", redact.Error(err))
		}
		return domain.FallbackProfile(id.Email)
	}

	if inventory == nil {
		inventory = []domain.Artifact{}
	}
	return domain.TravelerProfile{
		Email:     id.Email,
		Stats:     *stats,
		Inventory: inventory,
	}
}
