// Package middleware holds the echo middleware of the admin API.
package middleware

import (
	"strings"

	sharedmiddleware "gamehub/internal/delivery/middleware"
	"gamehub/internal/domain/entity"
	domainerrors "gamehub/internal/domain/errors"
	"gamehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate.
const (
	ContextKeySubject = sharedmiddleware.ContextKeySubject
	ContextKeyRoles   = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its subject and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("token must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks the roles set by Authenticate, so it must run after it.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(ContextKeyRoles).([]string)
			if !entity.RolesFromStrings(roles).Contains(requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("require '" + string(requiredRole) + "' role")
			}

			return next(c)
		}
	}
}
