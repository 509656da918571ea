// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "chatter/internal/delivery/context"
	"chatter/internal/delivery/http/response"
	"chatter/internal/domain/entity"
	"chatter/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileResponse is the wire shape of a profile row.
type ProfileResponse struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"externalId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AvatarURL  string    `json:"avatarUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newProfileResponse(profile *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:         profile.ID,
		ExternalID: profile.ExternalID,
		Name:       profile.Name,
		Email:      profile.Email,
		AvatarURL:  profile.AvatarURL,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignIn reconciles the verified identity into its profile row. A failed
// synchronization never fails the sign-in itself: the client is already
// authenticated with the provider, so the failure is logged and the identity
// is echoed back without a row id. The next sign-in retries the sync.
func (h *ProfileHandler) SignIn(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "No verified identity on request")
	}

	profile, err := h.uc.SyncProfile(c.Request().Context(), identity)
	if err != nil {
		h.logger.Warn("Profile synchronization failed during sign-in",
			slog.String("externalID", identity.ExternalID),
			slog.Any("error", err),
		)

		return response.Success(c, http.StatusOK, &ProfileResponse{
			ExternalID: identity.ExternalID,
			Name:       identity.Name,
			Email:      identity.Email,
			AvatarURL:  identity.AvatarURL,
		}, "Signed in; profile synchronization deferred")
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile), "Signed in")
}

// Me returns the caller's synchronized profile.
func (h *ProfileHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "No verified identity on request")
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), identity.ExternalID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, newProfileResponse(profile), "Profile retrieved")
}

// ListUsers returns every profile except the caller's own, for counterpart
// selection when opening a room.
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "No verified identity on request")
	}

	profiles, err := h.uc.ListCandidates(c.Request().Context(), identity.ExternalID)
	if err != nil {
		return err
	}

	out := make([]*ProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		out = append(out, newProfileResponse(profile))
	}

	return response.Success(c, http.StatusOK, out, "Users retrieved")
}
