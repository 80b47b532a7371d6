package handler

import (
	"net/http"
	"strconv"

	"github.com/fekuna/go-shop/internal/product"
	"github.com/fekuna/go-shop/internal/product/dto"
	"github.com/fekuna/go-shop/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}

	p, err := h.uc.Create(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create product", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, dto.ToProductResponse(p))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, dto.ToProductResponse(p))
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &dto.ProductFilters{
		CategoryID:  r.URL.Query().Get("categoryId"),
		SearchQuery: r.URL.Query().Get("q"),
		Page:        queryInt(r, "page", 1),
		PageSize:    queryInt(r, "pageSize", 0),
	}

	products, total, err := h.uc.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}

	responses := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		responses[i] = dto.ToProductResponse(&p)
	}
	httputil.RespondJSON(w, http.StatusOK, dto.ProductList{
		Products: responses,
		Total:    total,
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProductInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	p, err := h.uc.Update(r.Context(), &input)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, dto.ToProductResponse(p))
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusNoContent, nil)
}

// queryInt parses a positive integer query param; anything else (missing,
// malformed, zero, negative) yields the fallback so pagination math stays sane.
func queryInt(r *http.Request, key string, fallback int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}
