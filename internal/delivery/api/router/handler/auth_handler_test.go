package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	mockUsecase "apikit/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "6650f1f1f1f1f1f1f1f1f1f1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func createAuthFixtures(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	e := newTestEcho()
	auth := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(auth)

	g := e.Group("/v1/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.POST("/refresh-tokens", h.RefreshTokens)
	g.POST("/forgot-password", h.ForgotPassword)
	g.POST("/reset-password", h.ResetPassword)
	g.POST("/verify-email", h.VerifyEmail)

	return e, auth
}

func TestAuthHandler_Register(t *testing.T) {
	e, auth := createAuthFixtures(t)
	user := newCaller(entity.RoleUser)
	user.Password = "hash"
	tokens := &entity.AuthTokens{Access: entity.TokenPayload{Token: "a"}, Refresh: entity.TokenPayload{Token: "r"}}

	auth.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "jane@example.com" && u.Password == "abc12345"
		})).
		Return(user, tokens, nil)

	rec, body := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/auth/register",
		`{"firstName":"Jane","email":"jane@example.com","password":"abc12345"}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Contains(t, string(body.Data), `"id":"`+user.ID.Hex()+`"`)
	assert.NotContains(t, string(body.Data), "hash")
	assert.Contains(t, string(body.Data), `"tokens"`)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad email", body: `{"email":"nope","password":"abc12345"}`},
		{name: "password without digit", body: `{"email":"jane@example.com","password":"abcdefgh"}`},
		{name: "short password", body: `{"email":"jane@example.com","password":"a1"}`},
		{name: "malformed body", body: `{"email":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := createAuthFixtures(t)

			rec, body := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/auth/register", tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
		})
	}
}

func TestAuthHandler_Login_IncorrectCredentials(t *testing.T) {
	e, auth := createAuthFixtures(t)

	auth.EXPECT().Login(mock.Anything, "jane@example.com", "abc12345").Return(nil, nil, domainerrors.ErrIncorrectCredentials)

	rec, _ := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/auth/login", `{"email":"jane@example.com","password":"abc12345"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	e, auth := createAuthFixtures(t)
	token := signedToken(t)

	auth.EXPECT().Logout(mock.Anything, token).Return(nil)

	rec, _ := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/auth/logout", `{"refreshToken":"`+token+`"}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthHandler_RefreshTokens_RejectsNonJWT(t *testing.T) {
	e, _ := createAuthFixtures(t)

	rec, _ := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/auth/refresh-tokens", `{"refreshToken":"plain"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	e, auth := createAuthFixtures(t)

	auth.EXPECT().ForgotPassword(mock.Anything, "jane@example.com").Return(nil)

	rec, _ := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/auth/forgot-password", `{"email":"jane@example.com"}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthHandler_ResetPassword_TokenFromQuery(t *testing.T) {
	e, auth := createAuthFixtures(t)
	token := signedToken(t)

	auth.EXPECT().ResetPassword(mock.Anything, token, "n3wPassword").Return(nil)

	rec, _ := doRequest(t, e, jsonRequest(http.MethodPost, "/v1/auth/reset-password?token="+token, `{"password":"n3wPassword"}`))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	e, auth := createAuthFixtures(t)
	token := signedToken(t)

	auth.EXPECT().VerifyEmail(mock.Anything, token).Return(domainerrors.ErrEmailVerificationFailed)

	rec, _ := doRequest(t, e, httptest.NewRequest(http.MethodPost, "/v1/auth/verify-email?token="+token, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doRequest(t, e, httptest.NewRequest(http.MethodPost, "/v1/auth/verify-email", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
