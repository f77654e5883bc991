package service

import (
	"context"
	"testing"
	"time"

	"cozy-threads/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_List(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCatalogService(productRepo, reviewRepo, zerolog.Nop())

	expected := []model.Product{
		{ID: "P003", Name: "Athletic Sweatpants", Price: 39.99, Category: "Bottoms"},
	}
	productRepo.On("List", ctx, "Bottoms", model.SortPriceLow).Return(expected, nil)

	products, err := svc.List(ctx, "Bottoms", model.SortPriceLow)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_Detail(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCatalogService(productRepo, reviewRepo, zerolog.Nop())

	product := &model.Product{ID: "P001", Name: "Classic Crewneck Sweatshirt", Price: 45.99, CreatedAt: time.Now()}
	reviews := []model.Review{{ProductID: "P001", CustomerName: "Sam", Rating: 4, Comment: "Nice"}}

	productRepo.On("GetByID", ctx, "P001").Return(product, nil)
	reviewRepo.On("ListByProduct", ctx, "P001").Return(reviews, nil)
	reviewRepo.On("AverageRating", ctx, "P001").Return(4.0, nil)

	detail, err := svc.Detail(ctx, "P001")

	require.NoError(t, err)
	assert.Equal(t, *product, detail.Product)
	assert.Equal(t, reviews, detail.Reviews)
	assert.Equal(t, 4.0, detail.AverageRating)
}

func TestCatalogService_Detail_NoReviewsAverageIsZero(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCatalogService(productRepo, reviewRepo, zerolog.Nop())

	productRepo.On("GetByID", ctx, "P001").
		Return(&model.Product{ID: "P001", Name: "Classic Crewneck Sweatshirt"}, nil)
	reviewRepo.On("ListByProduct", ctx, "P001").Return([]model.Review{}, nil)
	reviewRepo.On("AverageRating", ctx, "P001").Return(0.0, nil)

	detail, err := svc.Detail(ctx, "P001")

	require.NoError(t, err)
	assert.Empty(t, detail.Reviews)
	assert.Zero(t, detail.AverageRating)
}

func TestCatalogService_Detail_NotFound(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	reviewRepo := new(MockReviewRepository)
	svc := NewCatalogService(productRepo, reviewRepo, zerolog.Nop())

	productRepo.On("GetByID", ctx, "missing").Return(nil, nil)

	detail, err := svc.Detail(ctx, "missing")

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.Nil(t, detail)
	reviewRepo.AssertNotCalled(t, "ListByProduct")
}

func TestCatalogService_Detail_EmptyID(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(new(MockProductRepository), new(MockReviewRepository), zerolog.Nop())

	_, err := svc.Detail(ctx, "")

	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestCatalogService_Featured(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepository)
	svc := NewCatalogService(productRepo, new(MockReviewRepository), zerolog.Nop())

	expected := []model.Product{{ID: "P001"}, {ID: "P002"}}
	productRepo.On("Featured", ctx, 6).Return(expected, nil)

	products, err := svc.Featured(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
