package service

import (
	"context"
	"fmt"

	"cozy-threads/internal/model"
	"cozy-threads/internal/repository"
	"cozy-threads/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService on top of the session store.
type cartService struct {
	sessions    session.Store
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(sessions session.Store, productRepo repository.ProductRepository, logger zerolog.Logger) CartService {
	return &cartService{
		sessions:    sessions,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the raw cart mapping for the session.
func (s *cartService) Get(ctx context.Context, sid string) (model.Cart, error) {
	cart, err := s.sessions.Cart(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return cart, nil
}

// Add puts quantity of a product into the cart. When the product is already
// present the quantities are summed and the existing entry's size and color
// win. Fails without mutating on bad quantity or insufficient stock.
func (s *cartService) Add(ctx context.Context, sid, productID string, quantity int, size, color string) (*model.Product, error) {
	if quantity < 1 {
		return nil, model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	if product.Stock < quantity {
		s.logger.Debug().
			Str("product_id", productID).
			Int("stock", product.Stock).
			Int("quantity", quantity).
			Msg("insufficient stock for cart add")
		return nil, model.InsufficientStock("")
	}

	cart, err := s.sessions.Cart(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	if entry, ok := cart[productID]; ok {
		entry.Quantity += quantity
		cart[productID] = entry
	} else {
		cart[productID] = model.CartEntry{Quantity: quantity, Size: size, Color: color}
	}

	if err := s.sessions.SetCart(ctx, sid, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug().
		Str("product_id", productID).
		Int("quantity", quantity).
		Msg("added product to cart")

	return product, nil
}

// Update overwrites an entry's quantity in place. A quantity below 1 removes
// the entry instead; size and color are left untouched.
func (s *cartService) Update(ctx context.Context, sid, productID string, quantity int) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	if quantity < 1 {
		return s.Remove(ctx, sid, productID)
	}

	if product.Stock < quantity {
		return model.InsufficientStock("")
	}

	cart, err := s.sessions.Cart(ctx, sid)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}

	entry, ok := cart[productID]
	if !ok {
		// Updating a product that is not in the cart is a no-op.
		return nil
	}
	entry.Quantity = quantity
	cart[productID] = entry

	if err := s.sessions.SetCart(ctx, sid, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Remove deletes an entry; absent entries are a no-op.
func (s *cartService) Remove(ctx context.Context, sid, productID string) error {
	cart, err := s.sessions.Cart(ctx, sid)
	if err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}

	if _, ok := cart[productID]; !ok {
		return nil
	}

	delete(cart, productID)
	if err := s.sessions.SetCart(ctx, sid, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, sid string) error {
	if err := s.sessions.ClearCart(ctx, sid); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// View joins the cart with live product data. Entries whose product has
// vanished from the catalogue are skipped, not errored.
func (s *cartService) View(ctx context.Context, sid string) (*model.CartView, error) {
	cart, err := s.sessions.Cart(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to view cart: %w", err)
	}

	view := &model.CartView{}
	for productID, entry := range cart {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("failed to view cart: %w", err)
		}
		if product == nil {
			continue
		}

		subtotal := product.Price * float64(entry.Quantity)
		view.Items = append(view.Items, model.CartViewItem{
			Product:  *product,
			Quantity: entry.Quantity,
			Size:     entry.Size,
			Color:    entry.Color,
			Subtotal: subtotal,
		})
		view.Total += subtotal
		view.Count += entry.Quantity
	}

	return view, nil
}
