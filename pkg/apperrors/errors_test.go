package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NotFound("missing"), http.StatusNotFound},
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{Conflict("dup"), http.StatusConflict},
		{InsufficientStock("p1"), http.StatusBadRequest},
		{EmptyBasket(), http.StatusBadRequest},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, HTTPStatus(tc.err), "error: %v", tc.err)
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("placing order: %w", InsufficientStock("p1"))
	assert.Equal(t, KindInsufficientStock, KindOf(err))
	assert.True(t, IsKind(err, KindInsufficientStock))
	assert.False(t, IsKind(err, KindNotFound))
}

func TestInternalMessageIsMasked(t *testing.T) {
	err := Internal(errors.New("pq: connection refused"))
	assert.Equal(t, "internal server error", Message(err))
	assert.NotContains(t, Message(err), "connection refused")

	assert.Equal(t, "internal server error", Message(errors.New("raw driver error")))
	assert.Equal(t, "basket is empty", Message(EmptyBasket()))
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	assert.ErrorIs(t, Internal(cause), cause)
}
