package handler

import (
	"net/http"

	"github.com/fekuna/go-shop/internal/auth"
	"github.com/fekuna/go-shop/internal/auth/dto"
	"github.com/fekuna/go-shop/pkg/httputil"
	"go.uber.org/zap"
)

type AuthHandler struct {
	uc     auth.UseCase
	logger *zap.Logger
}

func NewAuthHandler(uc auth.UseCase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input dto.RegisterInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}

	registered, err := h.uc.Register(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to register user", zap.Error(err))
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusCreated, registered)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input dto.LoginInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}

	tokens, err := h.uc.Login(r.Context(), &input)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, tokens)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var input dto.RefreshInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.RespondError(w, err)
		return
	}

	token, err := h.uc.Refresh(r.Context(), input.RefreshToken)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, token)
}
