package handler

import (
	"net/http"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/order"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/fekuna/go-shop/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	orders, err := h.uc.Place(r.Context(), principal)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, orders)
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.uc.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	orders, err := h.uc.ListForUser(r.Context(), chi.URLParam(r, "id"), principal)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	o, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"), principal)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, o)
}
