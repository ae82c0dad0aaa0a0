package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shopease/shopease/internal/catalog"
	"github.com/shopease/shopease/internal/models"
)

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("tee", 25, 0)
	env.createProduct("headphones", 200, 15)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products?sort=price-low-high", nil)
	require.NoError(t, env.Product.GetProducts(c))
	requireStatus(t, rec, http.StatusOK)

	var page catalog.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, "tee", page.Items[0].Name)
}

func TestGetProductByID(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("tee", 25, 0)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/"+prod.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Product.GetProduct(c))
	requireStatus(t, rec, http.StatusOK)

	var got models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, prod.ID, got.ID)
}

func TestGetProductMiss(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New().String()
	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/"+id, nil)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, env.Product.GetProduct(c))
	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetDeals(t *testing.T) {
	env := newTestEnv(t)
	env.createProduct("tee", 25, 0)
	env.createProduct("headphones", 200, 15)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/products/deals", nil)
	require.NoError(t, env.Product.GetDeals(c))
	requireStatus(t, rec, http.StatusOK)

	var deals []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deals))
	require.Len(t, deals, 1)
	require.Equal(t, "headphones", deals[0].Name)
}

func TestCreateProductHandler(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"name":     "new product",
		"price":    49.99,
		"category": "Gadgets",
		"stock":    10,
		"colors":   []string{"Black"},
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/products", payload)
	require.NoError(t, env.Product.CreateProduct(c))
	requireStatus(t, rec, http.StatusCreated)

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "new product", created.Name)
}

func TestCreateProductValidation(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/products", map[string]any{
		"name":  "bad",
		"price": -5,
	})
	require.NoError(t, env.Product.CreateProduct(c))
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestPatchProductHandler(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("tee", 25, 0)

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/v1/admin/products/"+prod.ID.String(),
		map[string]any{"price": 19.99})
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Product.PatchProduct(c))
	requireStatus(t, rec, http.StatusOK)

	var updated models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, 19.99, updated.Price)
	require.Equal(t, "tee", updated.Name)
}

func TestDeleteProductHandler(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("tee", 25, 0)

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/admin/products/"+prod.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(prod.ID.String())
	require.NoError(t, env.Product.DeleteProduct(c))
	requireStatus(t, rec, http.StatusNoContent)

	rec2, c2 := env.doJSONRequest(http.MethodDelete, "/api/v1/admin/products/"+prod.ID.String(), nil)
	c2.SetParamNames("id")
	c2.SetParamValues(prod.ID.String())
	require.NoError(t, env.Product.DeleteProduct(c2))
	requireStatus(t, rec2, http.StatusNotFound)
}
