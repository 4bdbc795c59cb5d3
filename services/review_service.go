package services

import (
	"context"
	"time"

	"storefront/models"
	"storefront/repositories"
)

// ReviewService reads a product's embedded reviews and appends new ones
// by writing the product back. Reviews feed nothing into pricing or the
// cart.
type ReviewService struct {
	products repositories.ProductRepository
}

func NewReviewService(products repositories.ProductRepository) *ReviewService {
	return &ReviewService{products: products}
}

func (s *ReviewService) List(ctx context.Context, productID int) ([]models.Review, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Reviews == nil {
		return []models.Review{}, nil
	}
	return product.Reviews, nil
}

func (s *ReviewService) Add(ctx context.Context, req models.AddReviewRequest) (*models.Review, error) {
	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	review := models.Review{
		ID:       len(product.Reviews) + 1,
		Username: req.Username,
		Rating:   req.Rating,
		Title:    req.Title,
		Content:  req.Content,
		Date:     time.Now(),
	}
	product.Reviews = append(product.Reviews, review)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return &review, nil
}
