// Package pricing derives order totals from a cart line-item list. Every
// read site (cart summary, checkout summary, order confirmation) goes
// through this package so the arithmetic can never drift between them.
// Values are recomputed on every call; nothing here is cached.
package pricing

import "github.com/shopease/shopease/internal/cart"

const (
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = 100.0
	// FlatShippingFee applies to any non-empty cart below the threshold.
	FlatShippingFee = 5.99
	// TaxRate is a flat 7%, no jurisdiction logic.
	TaxRate = 0.07
)

// Quote is the full derived breakdown for a line-item list.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func Subtotal(items []cart.Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func ShippingFee(subtotal float64) float64 {
	if subtotal <= 0 || subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

func Total(items []cart.Item) float64 {
	sub := Subtotal(items)
	return sub + ShippingFee(sub) + Tax(sub)
}

func Calculate(items []cart.Item) Quote {
	sub := Subtotal(items)
	return Quote{
		Subtotal: sub,
		Shipping: ShippingFee(sub),
		Tax:      Tax(sub),
		Total:    sub + ShippingFee(sub) + Tax(sub),
	}
}
