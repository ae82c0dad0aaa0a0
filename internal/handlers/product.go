package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/shopease/shopease/internal/catalog"
	"github.com/shopease/shopease/internal/logging"
	"github.com/shopease/shopease/internal/models"
)

type ProductHandler struct {
	Catalog *catalog.Service
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	f := catalog.Filter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		MinPrice: parseFloatParam(c.QueryParam("min_price")),
		MaxPrice: parseFloatParam(c.QueryParam("max_price")),
		Sort:     c.QueryParam("sort"),
		Page:     parseIntDefault(c.QueryParam("page"), 1),
		Size:     parseIntDefault(c.QueryParam("size"), 0),
	}

	page, err := h.Catalog.List(c.Request().Context(), f)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	product, err := h.Catalog.Get(c.Request().Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		return errorResponse(c, http.StatusNotFound, err)
	}
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetDeals(c echo.Context) error {
	deals, err := h.Catalog.Deals(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, deals)
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	cats, err := h.Catalog.Categories(c.Request().Context())
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_product")

	var prod models.Product
	if err := c.Bind(&prod); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	prod.ID = uuid.Nil

	if err := h.Catalog.Create(ctx, &prod); err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			return errorResponse(c, http.StatusBadRequest, err)
		}
		l.Error("create_product_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	l.Info("product created", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.patch_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	var req catalog.UpdateProduct
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	prod, err := h.Catalog.Update(ctx, id, req)
	if errors.Is(err, catalog.ErrNotFound) {
		return errorResponse(c, http.StatusNotFound, err)
	}
	if errors.Is(err, catalog.ErrValidation) {
		return errorResponse(c, http.StatusBadRequest, err)
	}
	if err != nil {
		l.Error("patch_product_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	l.Info("product updated", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_product")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, err)
	}

	if err := h.Catalog.Delete(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return errorResponse(c, http.StatusNotFound, err)
		}
		l.Error("delete_product_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, err)
	}

	l.Info("product deleted", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
