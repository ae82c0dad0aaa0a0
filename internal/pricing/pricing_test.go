package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopease/shopease/internal/cart"
)

func TestEmptyCart(t *testing.T) {
	require.Equal(t, 0.0, Subtotal(nil))
	require.Equal(t, 0.0, ShippingFee(0))
	require.Equal(t, 0.0, Tax(0))
	require.Equal(t, 0.0, Total(nil))
}

func TestBelowFreeShippingThreshold(t *testing.T) {
	items := []cart.Item{{ID: "p1", Price: 50, Quantity: 1}}

	sub := Subtotal(items)
	require.Equal(t, 50.0, sub)
	require.Equal(t, 5.99, ShippingFee(sub))
	require.InDelta(t, 3.5, Tax(sub), 1e-9)
	require.InDelta(t, 59.49, Total(items), 1e-9)
}

func TestAtFreeShippingThreshold(t *testing.T) {
	items := []cart.Item{{ID: "p1", Price: 120, Quantity: 1}}

	sub := Subtotal(items)
	require.Equal(t, 120.0, sub)
	require.Equal(t, 0.0, ShippingFee(sub))
	require.InDelta(t, 8.4, Tax(sub), 1e-9)
	require.InDelta(t, 128.4, Total(items), 1e-9)

	// Exactly 100 is already free.
	require.Equal(t, 0.0, ShippingFee(100))
	require.Equal(t, 5.99, ShippingFee(99.99))
}

func TestSubtotalSumsQuantities(t *testing.T) {
	items := []cart.Item{
		{ID: "p1", Price: 10.5, Quantity: 2},
		{ID: "p2", Price: 3.25, Quantity: 4},
	}
	require.InDelta(t, 34.0, Subtotal(items), 1e-9)
}

func TestCalculateMatchesParts(t *testing.T) {
	items := []cart.Item{
		{ID: "p1", Price: 19.99, Quantity: 3},
		{ID: "p2", Price: 45, Quantity: 1},
	}
	q := Calculate(items)
	require.Equal(t, Subtotal(items), q.Subtotal)
	require.Equal(t, ShippingFee(q.Subtotal), q.Shipping)
	require.Equal(t, Tax(q.Subtotal), q.Tax)
	require.InDelta(t, Total(items), q.Total, 1e-9)
}
