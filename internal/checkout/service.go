// Package checkout turns the current cart into a recorded order. Pricing
// always comes from the pricing package so the confirmation can never
// disagree with the cart summary.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopease/shopease/internal/cart"
	"github.com/shopease/shopease/internal/logging"
	"github.com/shopease/shopease/internal/models"
	"github.com/shopease/shopease/internal/pricing"
)

var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
)

type Service struct {
	Repo *GormRepo
	Cart *cart.Store
}

// Request is what the checkout form submits. Payment details are accepted
// and discarded; there is no payment processor behind this.
type Request struct {
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
}

// PlaceOrder prices the cart, records the order and clears the cart.
// userID may be uuid.Nil; checkout does not require a signed-in session.
func (s *Service) PlaceOrder(ctx context.Context, userID uuid.UUID, req Request) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "checkout.place_order")

	if req.Email == "" {
		return nil, fmt.Errorf("%w: email required", ErrValidation)
	}
	if req.ShippingAddress == "" {
		return nil, fmt.Errorf("%w: shipping address required", ErrValidation)
	}

	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	quote := pricing.Calculate(items)

	order := &models.Order{
		Reference:       s.newReference(ctx),
		UserID:          userID,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
		Status:          models.OrderStatusProcessing,
		Subtotal:        quote.Subtotal,
		Shipping:        quote.Shipping,
		Tax:             quote.Tax,
		Total:           quote.Total,
	}
	for _, it := range items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: it.ID,
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
			Variant:   models.VariantMap(it.Variant),
		})
	}

	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		l.Error("order not recorded", "error", err)
		return nil, err
	}

	s.Cart.Clear()
	l.Info("order placed", "reference", order.Reference, "total", order.Total)
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return order, err
}

func (s *Service) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID)
}

// newReference picks an order number in the confirmation-page format,
// retrying on the off chance the 6-digit space collides.
func (s *Service) newReference(ctx context.Context) string {
	for {
		ref := fmt.Sprintf("#ORD-%06d", 100000+rand.Intn(900000))
		exists, err := s.Repo.ReferenceExists(ctx, ref)
		if err != nil || !exists {
			return ref
		}
	}
}
