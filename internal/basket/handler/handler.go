package handler

import (
	"net/http"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/basket"
	"github.com/fekuna/go-shop/internal/basket/dto"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/fekuna/go-shop/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BasketHandler struct {
	uc     basket.UseCase
	logger *zap.Logger
}

func NewBasketHandler(uc basket.UseCase, log *zap.Logger) *BasketHandler {
	return &BasketHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BasketHandler) Add(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	var input dto.AddToBasketInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}

	item, err := h.uc.AddItem(r.Context(), principal, &input)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, item)
}

func (h *BasketHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	items, err := h.uc.ListItems(r.Context(), principal)
	if err != nil {
		h.logger.Error("failed to list basket items", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, items)
}

func (h *BasketHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	var input dto.UpdateBasketInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}

	item, err := h.uc.UpdateItem(r.Context(), principal, chi.URLParam(r, "id"), input.Quantity)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, item)
}

func (h *BasketHandler) Remove(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	if err := h.uc.RemoveItem(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *BasketHandler) Clear(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	if err := h.uc.Clear(r.Context(), principal); err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusNoContent, nil)
}
