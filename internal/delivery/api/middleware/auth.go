package middleware

import (
	"strings"

	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/errors"
	"apikit/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for access-token authentication and permission checks.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate resolves the bearer access token to a user and stores it on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return errors.WithStack(domainerrors.ErrPleaseAuthenticate)
		}

		user, err := m.auth.AuthenticateAccessToken(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return errors.Wrap(err, "authenticate request")
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireRights rejects callers whose role lacks any of perms.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRights(perms ...entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrPleaseAuthenticate)
			}
			if !user.HasPermission(perms...) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// SelfOrRights lets a caller act on their own record (path parameter param)
// and otherwise requires perms.
func (m *AuthMiddleware) SelfOrRights(param string, perms ...entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return errors.WithStack(domainerrors.ErrPleaseAuthenticate)
			}
			if c.Param(param) != user.ID.Hex() && !user.HasPermission(perms...) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}
