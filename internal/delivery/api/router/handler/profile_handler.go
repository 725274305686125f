package handler

import (
	"log/slog"
	"net/http"

	"glowdesk/internal/delivery/api/middleware"
	"glowdesk/internal/delivery/api/response"
	"glowdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// EnsureProfile creates the caller's profile document on first sign-in, or
// refreshes its last-login timestamp on subsequent ones.
func (h *ProfileHandler) EnsureProfile(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid identity in token")
	}

	profile, err := h.profileUC.EnsureProfile(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// GetProfile retrieves a single profile. Callers may always read their own;
// reading someone else's requires the admin role.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	profile, err := h.profileUC.GetProfile(c.Request().Context(), callerID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListProfiles retrieves all profiles. Admin only.
func (h *ProfileHandler) ListProfiles(c echo.Context) error {
	callerID := middleware.GetUserID(c)

	profiles, err := h.profileUC.ListProfiles(c.Request().Context(), callerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}
