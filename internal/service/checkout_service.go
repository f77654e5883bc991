package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"cozy-threads/internal/model"
	"cozy-threads/internal/repository"
	"cozy-threads/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateOrderNumber produces ORD-YYYYMMDD-XXXXX with the date in UTC and a
// 5-character uppercase alphanumeric suffix. Collisions are not retried; the
// unique constraint on order_number turns one into a storage failure.
func generateOrderNumber(now time.Time) string {
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix)
}

// checkoutService implements CheckoutService.
type checkoutService struct {
	sessions    session.Store
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	sessions session.Store,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		sessions:    sessions,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder converts the session's cart into a durable order. All stock
// decrements and the order insert happen in one transaction; the first cart
// line that fails validation aborts the whole operation and the database is
// left untouched. The cart is cleared only after a successful commit, so a
// failed checkout keeps the cart for retry.
func (s *checkoutService) PlaceOrder(ctx context.Context, sid string, form *model.CheckoutForm) (*model.Order, error) {
	if form == nil {
		return nil, fmt.Errorf("checkout form is nil")
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.sessions.Cart(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart) == 0 {
		return nil, model.ErrEmptyCart
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	orderID := uuid.New()

	var totalAmount float64
	items := make([]model.OrderItem, 0, len(cart))

	for productID, entry := range cart {
		var product *model.Product
		product, err = s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("failed to place order: %w", err)
		}
		if product == nil {
			// Product vanished between cart-add and checkout.
			err = model.ErrProductNotFound
			return nil, err
		}

		var ok bool
		ok, err = s.productRepo.DecrementStock(ctx, tx, productID, entry.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to place order: %w", err)
		}
		if !ok {
			s.logger.Debug().
				Str("product_id", productID).
				Int("quantity", entry.Quantity).
				Int("stock", product.Stock).
				Msg("insufficient stock at checkout")
			err = model.InsufficientStock(product.Name)
			return nil, err
		}

		totalAmount += product.Price * float64(entry.Quantity)
		items = append(items, model.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			ProductID:       productID,
			ProductName:     product.Name,
			Quantity:        entry.Quantity,
			Size:            entry.Size,
			Color:           entry.Color,
			PriceAtPurchase: product.Price,
		})
	}

	order := &model.Order{
		ID:              orderID,
		OrderNumber:     generateOrderNumber(now),
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		ShippingAddress: form.ShippingAddress,
		ShippingCity:    form.ShippingCity,
		ShippingState:   form.ShippingState,
		ShippingZip:     form.ShippingZip,
		TotalAmount:     totalAmount,
		Status:          model.StatusProcessing,
		PaymentMethod:   form.PaymentMethod,
		Notes:           form.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", orderID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	order.Items = items

	// The order is durable at this point; a failed cart clear is logged and
	// swallowed rather than reported as a checkout failure.
	if clearErr := s.sessions.ClearCart(ctx, sid); clearErr != nil {
		s.logger.Error().Err(clearErr).Str("session_id", sid).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("order_id", orderID.String()).
		Str("order_number", order.OrderNumber).
		Int("item_count", len(items)).
		Float64("total_amount", totalAmount).
		Msg("order placed successfully")

	return order, nil
}
