package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopease/shopease/internal/checkout"
	"github.com/shopease/shopease/internal/logging"
)

type CheckoutHandler struct {
	Checkout *checkout.Service
}

// userID pulls the optional signed-in user off the context; checkout works
// without one.
func userID(c echo.Context) uuid.UUID {
	s, ok := c.Get("userID").(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.place_order")

	var req checkout.Request
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	order, err := h.Checkout.PlaceOrder(ctx, userID(c), req)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrValidation):
		return errorResponse(c, http.StatusBadRequest, err)
	case err != nil:
		l.Error("place_order_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	orders, err := h.Checkout.ListOrders(c.Request().Context(), userID(c))
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	order, err := h.Checkout.GetOrder(c.Request().Context(), id)
	if errors.Is(err, checkout.ErrNotFound) {
		return errorResponse(c, http.StatusNotFound, err)
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, order)
}
