package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apikit/config"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	mockService "apikit/internal/mocks/service"
	mockUsecase "apikit/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho(env string) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Env = env

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger(), cfg).HandleHTTPError

	return e
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
		Stack   string `json:"stack"`
	} `json:"error"`
}

func serve(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body errorBody
	if rec.Body.Len() > 0 && rec.Code >= http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}

	return rec, body
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		wantStack  bool
	}{
		{
			name:       "domain error keeps its status",
			env:        config.EnvProduction,
			err:        errors.WithStack(domainerrors.ErrForbidden),
			wantStatus: http.StatusForbidden,
			wantCode:   domainerrors.ErrForbidden.ErrorCode(),
			wantMsg:    domainerrors.ErrForbidden.Message(),
		},
		{
			name:       "duplicate key is a bad request",
			env:        config.EnvProduction,
			err:        errors.Wrap(repository.ErrDuplicateKey, "insert user"),
			wantStatus: http.StatusBadRequest,
			wantCode:   domainerrors.ErrValidationFailed.ErrorCode(),
		},
		{
			name:       "echo http error",
			env:        config.EnvProduction,
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
			wantMsg:    "nope",
		},
		{
			name:       "unknown error is masked in production",
			env:        config.EnvProduction,
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
			wantMsg:    domainerrors.ErrInternalError.Message(),
		},
		{
			name:       "unknown error is exposed in development",
			env:        config.EnvDevelopment,
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   domainerrors.ErrInternalError.ErrorCode(),
			wantMsg:    "connection refused",
			wantStack:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(tt.env)
			e.GET("/boom", func(echo.Context) error { return tt.err })

			rec, body := serve(t, e, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Error.Message)
			}
			assert.Equal(t, tt.wantStack, body.Error.Stack != "")
		})
	}
}

func TestErrorMiddleware_UnknownRouteIsNotFound(t *testing.T) {
	e := newTestEcho(config.EnvProduction)

	rec, body := serve(t, e, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), body.Error.Code)
}

func TestErrorMiddleware_ValidationDetails(t *testing.T) {
	e := newTestEcho(config.EnvProduction)
	e.GET("/bad", func(echo.Context) error {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(`"email" is required`))
	})

	rec, body := serve(t, e, httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"email" is required`, body.Error.Details)
}

func newUser(role entity.Role) *entity.User {
	user := &entity.User{Email: "jane@example.com", Role: role}
	user.ID = primitive.NewObjectID()

	return user
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := newUser(entity.RoleUser)

	tests := []struct {
		name       string
		header     string
		setup      func(auth *mockUsecase.MockAuthUsecase)
		wantStatus int
	}{
		{
			name:       "missing header",
			setup:      func(*mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			setup:      func(*mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer bad",
			setup: func(auth *mockUsecase.MockAuthUsecase) {
				auth.EXPECT().AuthenticateAccessToken(mock.Anything, "bad").Return(nil, domainerrors.ErrPleaseAuthenticate)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(auth *mockUsecase.MockAuthUsecase) {
				auth.EXPECT().AuthenticateAccessToken(mock.Anything, "good").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mockUsecase.NewMockAuthUsecase(t)
			tt.setup(auth)

			m := NewAuthMiddleware(auth)
			e := newTestEcho(config.EnvProduction)
			e.GET("/me", func(c echo.Context) error {
				got, ok := deliverycontext.GetUser(c)
				require.True(t, ok)

				return c.String(http.StatusOK, got.ID.Hex())
			}, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec, _ := serve(t, e, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user.ID.Hex(), rec.Body.String())
			}
		})
	}
}

func withUser(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetUser(c, user)

			return next(c)
		}
	}
}

func TestAuthMiddleware_RequireRights(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name       string
		user       *entity.User
		wantStatus int
	}{
		{name: "admin", user: newUser(entity.RoleAdmin), wantStatus: http.StatusNoContent},
		{name: "user", user: newUser(entity.RoleUser), wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(config.EnvProduction)
			e.GET("/users", ok, withUser(tt.user), m.RequireRights(entity.PermGetUsers, entity.PermManageUsers))

			rec, _ := serve(t, e, httptest.NewRequest(http.MethodGet, "/users", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("unauthenticated", func(t *testing.T) {
		e := newTestEcho(config.EnvProduction)
		e.GET("/users", ok, m.RequireRights(entity.PermGetUsers))

		rec, _ := serve(t, e, httptest.NewRequest(http.MethodGet, "/users", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_SelfOrRights(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t))
	self := newUser(entity.RoleUser)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name       string
		user       *entity.User
		target     string
		wantStatus int
	}{
		{name: "own record", user: self, target: self.ID.Hex(), wantStatus: http.StatusNoContent},
		{name: "someone else", user: self, target: primitive.NewObjectID().Hex(), wantStatus: http.StatusForbidden},
		{name: "admin on someone else", user: newUser(entity.RoleAdmin), target: self.ID.Hex(), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(config.EnvProduction)
			e.PATCH("/users/:id", ok, withUser(tt.user), m.SelfOrRights("id", entity.PermManageUsers))

			rec, _ := serve(t, e, httptest.NewRequest(http.MethodPatch, "/users/"+tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRateLimitMiddleware_Handle(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("allowed", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "192.0.2.1:POST /v1/auth/login").Return(true, 0, nil)

		e := newTestEcho(config.EnvProduction)
		e.POST("/v1/auth/login", ok, NewRateLimitMiddleware(limiter, newDiscardLogger()).Handle)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
		req.RemoteAddr = "192.0.2.1:4242"
		rec, _ := serve(t, e, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("throttled", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(false, 1500*time.Millisecond, nil)

		e := newTestEcho(config.EnvProduction)
		e.POST("/v1/auth/login", ok, NewRateLimitMiddleware(limiter, newDiscardLogger()).Handle)

		rec, body := serve(t, e, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
		assert.Equal(t, domainerrors.ErrTooManyRequests.ErrorCode(), body.Error.Code)
	})

	t.Run("limiter failure lets the request through", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().
			Allow(mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, string) (bool, time.Duration, error) {
				return false, 0, errors.New("redis down")
			})

		e := newTestEcho(config.EnvProduction)
		e.POST("/v1/auth/login", ok, NewRateLimitMiddleware(limiter, newDiscardLogger()).Handle)

		rec, _ := serve(t, e, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("nil limiter", func(t *testing.T) {
		e := newTestEcho(config.EnvProduction)
		e.POST("/v1/auth/login", ok, NewRateLimitMiddleware(nil, newDiscardLogger()).Handle)

		rec, _ := serve(t, e, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
