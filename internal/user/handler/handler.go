package handler

import (
	"net/http"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/user"
	"github.com/fekuna/go-shop/internal/user/dto"
	"github.com/fekuna/go-shop/pkg/apperrors"
	"github.com/fekuna/go-shop/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc     user.UseCase
	logger *zap.Logger
}

func NewUserHandler(uc user.UseCase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, profiles)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	profile, err := h.uc.Get(r.Context(), chi.URLParam(r, "id"), principal)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	var input dto.UpdateUserInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	profile, err := h.uc.Update(r.Context(), &input, principal)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		httputil.RespondError(w, apperrors.Unauthorized("missing principal"))
		return
	}

	if err := h.uc.Delete(r.Context(), chi.URLParam(r, "id"), principal); err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusNoContent, nil)
}
