package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopease/shopease/internal/cart"
	"github.com/shopease/shopease/internal/catalog"
	"github.com/shopease/shopease/internal/checkout"
	"github.com/shopease/shopease/internal/localstore"
	"github.com/shopease/shopease/internal/models"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Cart     *CartHandler
	Product  *ProductHandler
	Checkout *CheckoutHandler
	Store    *cart.Store
	Catalog  *catalog.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))

	disk, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	cartStore := cart.NewStore(disk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	catalogSvc := &catalog.Service{Repo: &catalog.GormRepo{DB: db}}
	checkoutSvc := &checkout.Service{Repo: &checkout.GormRepo{DB: db}, Cart: cartStore}

	return &testEnv{
		T:        t,
		E:        echo.New(),
		Cart:     &CartHandler{Cart: cartStore, Catalog: catalogSvc},
		Product:  &ProductHandler{Catalog: catalogSvc},
		Checkout: &CheckoutHandler{Checkout: checkoutSvc},
		Store:    cartStore,
		Catalog:  catalogSvc,
	}
}

func (env *testEnv) createProduct(name string, price, discount float64) models.Product {
	env.T.Helper()
	prod := models.Product{Name: name, Price: price, Discount: discount, Category: "Test"}
	require.NoError(env.T, env.Catalog.Create(context.Background(), &prod))
	return prod
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func decodeCartView(t *testing.T, rec *httptest.ResponseRecorder) CartView {
	t.Helper()
	var view CartView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}
