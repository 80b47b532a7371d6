package handler

import (
	"net/http"

	"github.com/fekuna/go-shop/internal/category"
	"github.com/fekuna/go-shop/internal/category/dto"
	"github.com/fekuna/go-shop/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger *zap.Logger
}

func NewCategoryHandler(uc category.UseCase, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCategoryInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}

	cat, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create category", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, cat)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	cat, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateCategoryInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	cat, err := h.uc.Update(r.Context(), &input)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusNoContent, nil)
}
