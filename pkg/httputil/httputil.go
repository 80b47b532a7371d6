package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeAndValidate decodes a JSON body into dst and runs struct validation.
// Failures come back as BadRequest app errors so handlers can pass them
// straight to RespondError.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.BadRequest("invalid request body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.BadRequest("invalid field %s: failed on %s", verrs[0].Field(), verrs[0].Tag())
		}
		return apperrors.BadRequest("invalid request body")
	}
	return nil
}

// RespondJSON writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError maps err through apperrors and writes the error envelope.
func RespondError(w http.ResponseWriter, err error) {
	RespondJSON(w, apperrors.HTTPStatus(err), map[string]interface{}{
		"error": map[string]string{
			"kind":    string(apperrors.KindOf(err)),
			"message": apperrors.Message(err),
		},
	})
}
