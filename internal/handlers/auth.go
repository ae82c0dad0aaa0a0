package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopease/shopease/internal/auth"
	"github.com/shopease/shopease/internal/logging"
)

type AuthHandler struct {
	Auth *auth.Mock
}

func (h *AuthHandler) Login(c echo.Context) error {
	var creds auth.Credentials
	if err := c.Bind(&creds); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	sess, err := h.Auth.Authenticate(c.Request().Context(), creds)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return errorResponse(c, http.StatusUnauthorized, err)
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, sess)
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req auth.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	sess, err := h.Auth.Register(ctx, req)
	switch {
	case errors.Is(err, auth.ErrValidation):
		return errorResponse(c, http.StatusBadRequest, err)
	case errors.Is(err, auth.ErrEmailTaken):
		return errorResponse(c, http.StatusConflict, err)
	case err != nil:
		l.Error("register_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusCreated, sess)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.Auth.Logout(c.Request().Context()); err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.NoContent(http.StatusNoContent)
}
