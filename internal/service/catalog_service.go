package service

import (
	"context"
	"fmt"

	"cozy-threads/internal/model"
	"cozy-threads/internal/repository"

	"github.com/rs/zerolog"
)

// featuredLimit is how many products the home page shows.
const featuredLimit = 6

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves products with optional category filter and sort key.
func (s *catalogService) List(ctx context.Context, category, sort string) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, category, sort)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", category).
			Str("sort", sort).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", category).
		Str("sort", sort).
		Msg("listed products")

	return products, nil
}

// Categories returns the distinct product categories.
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Featured retrieves the home-page products.
func (s *catalogService) Featured(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.Featured(ctx, featuredLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list featured products")
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	return products, nil
}

// Detail retrieves a product with its reviews and average rating. The
// average is 0 for a product with no reviews, never an error.
func (s *catalogService) Detail(ctx context.Context, id string) (*model.ProductDetail, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	reviews, err := s.reviewRepo.ListByProduct(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to list reviews")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	avg, err := s.reviewRepo.AverageRating(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to compute average rating")
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}

	return &model.ProductDetail{
		Product:       *product,
		Reviews:       reviews,
		AverageRating: avg,
	}, nil
}
