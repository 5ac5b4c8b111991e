package context

import (
	"apikit/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the echo.Context key of the authenticated user.
const KeyUser ContextKey = "user"

// SetUser stores the authenticated user on the request.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated user, if the request passed authentication.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}
