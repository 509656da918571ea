// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "chatter/internal/delivery/context"
	"chatter/internal/domain/entity"
	domainerrors "chatter/internal/domain/errors"
	"chatter/internal/domain/repository"
	"chatter/internal/domain/service"
	"chatter/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService. It receives all dependencies as interfaces.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncProfile reconciles an identity descriptor into exactly one profile row.
// The lookup and the insert are separate store operations; the unique index
// on the external id closes the window between them. When two sign-ins race,
// the losing insert comes back as ErrDuplicateProfile and the winner's row is
// re-fetched and returned.
func (srv *profileService) SyncProfile(ctx context.Context, identity *entity.Identity) (*entity.Profile, error) {
	if identity == nil || strings.TrimSpace(identity.ExternalID) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "identity external id is required")
	}

	srv.log(ctx).Debug("Synchronizing profile", slog.String("externalID", identity.ExternalID))

	existing, err := srv.profileRepo.FindByExternalID(ctx, identity.ExternalID)
	if err == nil {
		// Repeat sign-in. The row is returned as-is: name/email/avatar are
		// snapshots from the first sign-in and are not refreshed.
		return existing, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrSyncFailed.WrapMessage("profile lookup failed: " + err.Error())
	}

	profile := entity.NewProfileFromIdentity(identity)
	if err := srv.profileRepo.Insert(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return srv.resolveDuplicate(ctx, identity.ExternalID)
		}

		return nil, domainerrors.ErrSyncFailed.WrapMessage("profile insert failed: " + err.Error())
	}

	srv.log(ctx).Info("Created profile",
		slog.String("profileID", profile.ID),
		slog.String("externalID", profile.ExternalID),
	)
	srv.publish(ctx, &service.Event{
		Kind:       service.EventProfileCreated,
		SubjectID:  profile.ID,
		ExternalID: profile.ExternalID,
	})

	return profile, nil
}

// resolveDuplicate handles the concurrent first-sign-in race: another flow
// inserted the row between our lookup and our insert.
func (srv *profileService) resolveDuplicate(ctx context.Context, externalID string) (*entity.Profile, error) {
	srv.log(ctx).Warn("Concurrent profile creation detected, returning winner",
		slog.String("externalID", externalID),
	)

	winner, err := srv.profileRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, domainerrors.ErrSyncFailed.WrapMessage("failed to load winning profile after duplicate insert: " + err.Error())
	}

	return winner, nil
}

// GetProfile returns the synchronized profile for the given external id.
func (srv *profileService) GetProfile(ctx context.Context, externalID string) (*entity.Profile, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "external id is required")
	}

	profile, err := srv.profileRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("no profile for this identity")
		}

		return nil, domainerrors.ErrProfileLookupFailed.WrapMessage("profile lookup failed: " + err.Error())
	}

	return profile, nil
}

// ListCandidates returns every profile except the caller's own.
func (srv *profileService) ListCandidates(ctx context.Context, excludeExternalID string) ([]*entity.Profile, error) {
	if strings.TrimSpace(excludeExternalID) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "external id is required")
	}

	profiles, err := srv.profileRepo.ListExcluding(ctx, excludeExternalID)
	if err != nil {
		return nil, domainerrors.ErrProfileLookupFailed.WrapMessage("candidate lookup failed: " + err.Error())
	}

	if profiles == nil {
		profiles = []*entity.Profile{}
	}

	return profiles, nil
}

func (srv *profileService) publish(ctx context.Context, event *service.Event) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish event",
			slog.String("kind", event.Kind),
			slog.Any("error", err),
		)
	}
}
