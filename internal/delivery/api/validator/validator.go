// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"apikit/config"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the project's custom tags:
//
//	objectid  24 hex characters
//	password  configured length, at least one letter and one digit
//	name      configured length
//	email_len configured length
//	jwt       a well-formed JWT (signature is not checked)
func New(cfg *config.Config) *Validator {
	rules := config.ValidationConfig{
		Password: config.LengthRange{Min: 8, Max: 255},
		Name:     config.LengthRange{Min: 1, Max: 50},
		Email:    config.LengthRange{Min: 3, Max: 255},
	}
	if cfg != nil && cfg.Validation != nil {
		rules = *cfg.Validation
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	mustRegister(v, "objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		return validPassword(fl.Field().String(), rules.Password)
	})
	mustRegister(v, "name", func(fl validator.FieldLevel) bool {
		return inRange(fl.Field().String(), rules.Name)
	})
	mustRegister(v, "email_len", func(fl validator.FieldLevel) bool {
		return inRange(fl.Field().String(), rules.Email)
	})
	mustRegister(v, "jwt", func(fl validator.FieldLevel) bool {
		_, _, err := jwt.NewParser().ParseUnverified(fl.Field().String(), jwt.MapClaims{})

		return err == nil
	})

	return &Validator{validate: v}
}

// Validate checks i and reports failures as ErrValidationFailed with readable details.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(msgs, ", ")))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "objectid":
		return fmt.Sprintf("%q must be a valid id", field)
	case "password":
		return fmt.Sprintf("%q must contain at least 1 letter and 1 number and have a valid length", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	case "jwt":
		return fmt.Sprintf("%q must be a valid token", field)
	case "min", "max", "name", "email_len":
		return fmt.Sprintf("%q has an invalid length", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

func validPassword(s string, r config.LengthRange) bool {
	if !inRange(s, r) {
		return false
	}

	var letter, digit bool
	for _, ch := range s {
		switch {
		case unicode.IsLetter(ch):
			letter = true
		case unicode.IsDigit(ch):
			digit = true
		}
	}

	return letter && digit
}

func inRange(s string, r config.LengthRange) bool {
	n := utf8.RuneCountInString(s)
	if r.Min > 0 && n < r.Min {
		return false
	}

	return r.Max <= 0 || n <= r.Max
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}

	return name
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
