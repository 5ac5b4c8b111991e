package validator

import (
	"testing"

	"apikit/config"
	domainerrors "apikit/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type registerInput struct {
	Name     string `json:"name" validate:"required,name"`
	Email    string `json:"email" validate:"required,email,email_len"`
	Password string `json:"password" validate:"required,password"`
}

type idInput struct {
	ID string `json:"id" validate:"required,objectid"`
}

type tokenInput struct {
	Token string `json:"token" validate:"required,jwt"`
}

func newValidator() *Validator {
	return New(&config.Config{Validation: &config.ValidationConfig{
		Password: config.LengthRange{Min: 8, Max: 20},
		Name:     config.LengthRange{Min: 1, Max: 5},
		Email:    config.LengthRange{Min: 3, Max: 50},
	}})
}

func TestValidator_Password(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "letters and digits", password: "abc12345", valid: true},
		{name: "too short", password: "abc1", valid: false},
		{name: "no digit", password: "abcdefgh", valid: false},
		{name: "no letter", password: "12345678", valid: false},
		{name: "too long", password: "abc123456789012345678", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&registerInput{Name: "Jane", Email: "jane@example.com", Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details(), `"password"`)
		})
	}
}

func TestValidator_NameLengthFromConfig(t *testing.T) {
	err := newValidator().Validate(&registerInput{Name: "Jonathan", Email: "jane@example.com", Password: "abc12345"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, `"name" has an invalid length`, appErr.Details())
}

func TestValidator_ObjectID(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Validate(&idInput{ID: primitive.NewObjectID().Hex()}))
	assert.ErrorIs(t, v.Validate(&idInput{ID: "not-an-id"}), domainerrors.ErrValidationFailed)
}

func TestValidator_JWT(t *testing.T) {
	v := newValidator()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.NoError(t, v.Validate(&tokenInput{Token: signed}))
	assert.ErrorIs(t, v.Validate(&tokenInput{Token: "garbage"}), domainerrors.ErrValidationFailed)
}

func TestValidator_DefaultsWithoutConfig(t *testing.T) {
	v := New(&config.Config{})

	assert.NoError(t, v.Validate(&registerInput{Name: "Jane", Email: "jane@example.com", Password: "abc12345"}))
}
