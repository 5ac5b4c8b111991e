package handler

import (
	"net/http"

	"apikit/internal/delivery/api/response"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/errors"
	"apikit/internal/usecase"

	"github.com/labstack/echo/v4"
)

type registerInput struct {
	FirstName string `json:"firstName" validate:"omitempty,name"`
	LastName  string `json:"lastName" validate:"omitempty,name"`
	Email     string `json:"email" validate:"required,email,email_len"`
	Password  string `json:"password" validate:"required,password"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email,email_len"`
	Password string `json:"password" validate:"required,password"`
}

type refreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required,jwt"`
}

type forgotPasswordInput struct {
	Email string `json:"email" validate:"required,email,email_len"`
}

type resetPasswordInput struct {
	Token    string `json:"-" validate:"required,jwt"`
	Password string `json:"password" validate:"required,password"`
}

type verifyEmailInput struct {
	Token string `validate:"required,jwt"`
}

type blacklistTokenInput struct {
	Token string `json:"token" validate:"required,jwt"`
}

type authResponse struct {
	User   map[string]any     `json:"user"`
	Tokens *entity.AuthTokens `json:"tokens"`
}

// AuthHandler serves /v1/auth.
type AuthHandler struct {
	auth usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var in registerInput
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}

	user, tokens, err := h.auth.Register(c.Request().Context(), &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondAuth(c, http.StatusCreated, user, tokens)
}

// Login exchanges credentials for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var in loginInput
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}

	user, tokens, err := h.auth.Login(c.Request().Context(), in.Email, in.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondAuth(c, http.StatusOK, user, tokens)
}

// Logout drops a refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var in refreshTokenInput
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}

	if err := h.auth.Logout(c.Request().Context(), in.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// RefreshTokens rotates a refresh token.
func (h *AuthHandler) RefreshTokens(c echo.Context) error {
	var in refreshTokenInput
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}

	tokens, err := h.auth.RefreshAuth(c.Request().Context(), in.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, tokens)
}

// ForgotPassword emails a reset link.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var in forgotPasswordInput
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), in.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ResetPassword sets a new password using the token query parameter.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	in := resetPasswordInput{Token: c.QueryParam("token")}
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}

	if err := h.auth.ResetPassword(c.Request().Context(), in.Token, in.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// SendVerificationEmail emails a verify link to the caller.
func (h *AuthHandler) SendVerificationEmail(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrPleaseAuthenticate)
	}

	if err := h.auth.SendVerificationEmail(c.Request().Context(), user); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// VerifyEmail consumes the token query parameter.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	in := verifyEmailInput{Token: c.QueryParam("token")}
	if err := c.Validate(&in); err != nil {
		return errors.WithStack(err)
	}

	if err := h.auth.VerifyEmail(c.Request().Context(), in.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// BlacklistToken revokes a token.
func (h *AuthHandler) BlacklistToken(c echo.Context) error {
	var in blacklistTokenInput
	if err := bindAndValidate(c, &in); err != nil {
		return err
	}

	if err := h.auth.BlacklistToken(c.Request().Context(), in.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func (h *AuthHandler) respondAuth(c echo.Context, status int, user *entity.User, tokens *entity.AuthTokens) error {
	shaped, err := userSchema.Apply(user)
	if err != nil {
		return errors.Wrap(err, "shape user")
	}

	return response.Success(c, status, authResponse{User: shaped, Tokens: tokens})
}

// bindAndValidate binds the JSON body into dst and validates it.
func bindAndValidate(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
