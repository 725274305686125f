package middleware

import (
	"strings"

	"glowdesk/internal/domain/entity"
	domainerrors "glowdesk/internal/domain/errors"
	"glowdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyIdentity = "identity"
	contextKeyUserID   = "userID"
)

// AuthMiddleware verifies Firebase ID tokens carried in the Authorization header.
type AuthMiddleware struct {
	identity service.IdentityProvider
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid token format, must be Bearer token")
		}

		identity, err := m.identity.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
		}

		// Set user info on the context for handlers to use
		c.Set(contextKeyIdentity, identity)
		c.Set(contextKeyUserID, identity.UID)

		return next(c)
	}
}

// GetUserID returns the authenticated caller's UID, or "" when unauthenticated.
func GetUserID(c echo.Context) string {
	uid, _ := c.Get(contextKeyUserID).(string)

	return uid
}

// GetIdentity returns the authenticated caller's verified identity.
// It must be used AFTER the Authenticate middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(contextKeyIdentity).(*entity.Identity)

	return identity, ok
}
