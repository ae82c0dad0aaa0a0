package checkout

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopease/shopease/internal/cart"
	"github.com/shopease/shopease/internal/localstore"
	"github.com/shopease/shopease/internal/models"
)

func newTestService(t *testing.T) (*Service, *cart.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))

	disk, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	cartStore := cart.NewStore(disk, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &Service{Repo: &GormRepo{DB: db}, Cart: cartStore}, cartStore
}

func testRequest() Request {
	return Request{Email: "user@example.com", ShippingAddress: "1 Main St, Springfield"}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.PlaceOrder(context.Background(), uuid.Nil, testRequest())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc, cartStore := newTestService(t)
	cartStore.Add(models.Product{ID: uuid.New(), Name: "tee", Price: 10}, 1, nil)

	_, err := svc.PlaceOrder(context.Background(), uuid.Nil, Request{ShippingAddress: "x"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.PlaceOrder(context.Background(), uuid.Nil, Request{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOrderRecordsTotalsAndClearsCart(t *testing.T) {
	svc, cartStore := newTestService(t)
	cartStore.Add(models.Product{ID: uuid.New(), Name: "headphones", Price: 120}, 1, nil)

	order, err := svc.PlaceOrder(context.Background(), uuid.Nil, testRequest())
	require.NoError(t, err)

	require.Equal(t, 120.0, order.Subtotal)
	require.Equal(t, 0.0, order.Shipping)
	require.InDelta(t, 8.4, order.Tax, 1e-9)
	require.InDelta(t, 128.4, order.Total, 1e-9)
	require.Equal(t, models.OrderStatusProcessing, order.Status)
	require.Regexp(t, regexp.MustCompile(`^#ORD-\d{6}$`), order.Reference)
	require.Len(t, order.Items, 1)
	require.Equal(t, 120.0, order.Items[0].UnitPrice)

	require.Empty(t, cartStore.Items())
}

func TestPlaceOrderBelowShippingThreshold(t *testing.T) {
	svc, cartStore := newTestService(t)
	cartStore.Add(models.Product{ID: uuid.New(), Name: "tee", Price: 50}, 1, nil)

	order, err := svc.PlaceOrder(context.Background(), uuid.Nil, testRequest())
	require.NoError(t, err)
	require.Equal(t, 5.99, order.Shipping)
	require.InDelta(t, 59.49, order.Total, 1e-9)
}

func TestPlaceOrderKeepsVariants(t *testing.T) {
	svc, cartStore := newTestService(t)
	cartStore.Add(models.Product{ID: uuid.New(), Name: "tee", Price: 25}, 2,
		map[string]string{"color": "Red", "size": "M"})

	order, err := svc.PlaceOrder(context.Background(), uuid.Nil, testRequest())
	require.NoError(t, err)

	got, err := svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, models.VariantMap{"color": "Red", "size": "M"}, got.Items[0].Variant)
	require.Equal(t, 2, got.Items[0].Quantity)
}

func TestListOrdersByUser(t *testing.T) {
	svc, cartStore := newTestService(t)
	userID := uuid.New()

	cartStore.Add(models.Product{ID: uuid.New(), Name: "a", Price: 10}, 1, nil)
	_, err := svc.PlaceOrder(context.Background(), userID, testRequest())
	require.NoError(t, err)

	cartStore.Add(models.Product{ID: uuid.New(), Name: "b", Price: 20}, 1, nil)
	_, err = svc.PlaceOrder(context.Background(), uuid.Nil, testRequest())
	require.NoError(t, err)

	orders, err := svc.ListOrders(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, userID, orders[0].UserID)
}

func TestGetOrderMiss(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetOrder(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
