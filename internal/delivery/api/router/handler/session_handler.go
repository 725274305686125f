package handler

import (
	"log/slog"
	"net/http"

	"glowdesk/internal/delivery/api/response"
	"glowdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for session-related handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignInRequest represents the request body for establishing a session
type SignInRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// SignIn verifies the submitted ID token, syncs the caller's profile and
// records the resulting session state.
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	state, err := h.sessionUC.SignIn(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// SignOut clears the recorded session state.
func (h *SessionHandler) SignOut(c echo.Context) error {
	h.sessionUC.SignOut(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

// GetSession returns the currently recorded session state.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.sessionUC.Snapshot())
}
