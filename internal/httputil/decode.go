package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/redmonkez12/devconnector-api/internal/apperr"
)

const maxBodyBytes = 1 << 20

// ErrInvalidBody is returned when a request body is not valid JSON.
var ErrInvalidBody = apperr.Listed(apperr.Validation, "Invalid request body")

// DecodeJSON decodes the request body into dst. An empty body leaves dst untouched so that
// field validation can report every missing field.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return ErrInvalidBody
	}
	return nil
}
