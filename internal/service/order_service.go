package service

import (
	"context"
	"fmt"

	"cozy-threads/internal/model"
	"cozy-threads/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// recentOrdersLimit is how many orders the admin dashboard lists.
const recentOrdersLimit = 10

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// List retrieves all orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves an order with its items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus overwrites an order's status and returns the updated order.
// The value must be one of the five statuses; transitions between them are
// otherwise unconstrained.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	if !model.ValidStatus(status) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("status", status).
			Msg("invalid order status")
		return nil, model.ErrInvalidStatus
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return s.GetByID(ctx, id)
}

// Dashboard assembles the admin page data: counters, the full product list
// and the most recent orders.
func (s *orderService) Dashboard(ctx context.Context) (*model.AdminDashboard, error) {
	stats, err := s.orderRepo.Stats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load order stats")
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	products, err := s.productRepo.List(ctx, "", model.SortName)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load products for dashboard")
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	recent, err := s.orderRepo.ListRecent(ctx, recentOrdersLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load recent orders")
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	return &model.AdminDashboard{
		Stats:        *stats,
		Products:     products,
		RecentOrders: recent,
	}, nil
}
