package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for transport mapping.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindBadRequest        Kind = "BAD_REQUEST"
	KindUnauthorized      Kind = "UNAUTHORIZED"
	KindForbidden         Kind = "FORBIDDEN"
	KindConflict          Kind = "CONFLICT"
	KindInsufficientStock Kind = "INSUFFICIENT_STOCK"
	KindEmptyBasket       Kind = "EMPTY_BASKET"
	KindInternal          Kind = "INTERNAL"
)

// AppError carries a machine-readable kind and a human-readable message.
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func InsufficientStock(productID string) *AppError {
	return &AppError{Kind: KindInsufficientStock, Message: fmt.Sprintf("insufficient stock for product %s", productID)}
}

func EmptyBasket() *AppError {
	return &AppError{Kind: KindEmptyBasket, Message: "basket is empty"}
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", Cause: err}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to its HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest, KindInsufficientStock, KindEmptyBasket:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for err. Internal errors are masked.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "internal server error"
}
