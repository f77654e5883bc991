package repository

import (
	"context"
	"fmt"

	"cozy-threads/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// ListByProduct retrieves all reviews for a product, newest first.
func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	query := `
		SELECT id, product_id, customer_name, COALESCE(rating, 0), comment, created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", productID).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rv model.Review
		err := rows.Scan(&rv.ID, &rv.ProductID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// AverageRating returns the mean rating for a product, or 0 without reviews.
func (r *reviewRepository) AverageRating(ctx context.Context, productID string) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = $1`

	var avg float64
	if err := r.pool.QueryRow(ctx, query, productID).Scan(&avg); err != nil {
		r.logger.Error().Err(err).Str("product_id", productID).Msg("failed to query average rating")
		return 0, fmt.Errorf("failed to query average rating: %w", err)
	}

	return avg, nil
}

// Create inserts a new review.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, customer_name, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, review.ID, review.ProductID, review.CustomerName,
		review.Rating, review.Comment)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", review.ProductID).
			Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}
