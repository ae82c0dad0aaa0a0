package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopease/shopease/internal/cart"
	"github.com/shopease/shopease/internal/catalog"
	"github.com/shopease/shopease/internal/logging"
	"github.com/shopease/shopease/internal/pricing"
)

type CartHandler struct {
	Cart    *cart.Store
	Catalog *catalog.Service
}

// CartView is what every cart read returns: the lines plus the freshly
// derived totals. The header badge, cart page and checkout summary all
// render from this one shape.
type CartView struct {
	Items []cart.Item   `json:"items"`
	Quote pricing.Quote `json:"quote"`
}

func (h *CartHandler) view() CartView {
	items := h.Cart.Items()
	return CartView{Items: items, Quote: pricing.Calculate(items)}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req struct {
		ProductID uuid.UUID         `json:"product_id"`
		Quantity  int               `json:"quantity"`
		Variant   map[string]string `json:"variant"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.ProductID == uuid.Nil {
		return errorResponse(c, http.StatusBadRequest, errors.New("product_id required"))
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := h.Catalog.Get(ctx, req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		return errorResponse(c, http.StatusNotFound, err)
	}
	if err != nil {
		l.Error("add_to_cart_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	h.Cart.Add(*product, req.Quantity, req.Variant)
	l.Info("item added to cart", "product_id", req.ProductID, "quantity", req.Quantity)
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if req.Quantity < 1 {
		return errorResponse(c, http.StatusBadRequest, errors.New("quantity must be >= 1, remove the item instead"))
	}

	h.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	h.Cart.Remove(c.Param("id"))
	return c.JSON(http.StatusOK, h.view())
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	h.Cart.Clear()
	return c.JSON(http.StatusOK, h.view())
}
