package handler

import (
	"bytes"
	"encoding/json"
	"strconv"

	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/errors"

	"github.com/labstack/echo/v4"
)

// formBool decodes a JSON boolean or its string form, as sent by multipart forms.
type formBool bool

func (b *formBool) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return errors.Errorf("invalid boolean %q", s)
		}
		*b = formBool(v)

		return nil
	}

	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "decode boolean")
	}
	*b = formBool(v)

	return nil
}

// decodePayload strictly decodes raw into dst and validates it.
func decodePayload(c echo.Context, raw json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
