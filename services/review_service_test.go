package services

import (
	"context"
	"testing"

	"storefront/models"
	"storefront/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews_ListEmpty(t *testing.T) {
	products := &mockProductRepo{products: []models.Product{{ID: 1, Title: "Lamp"}}}
	sut := NewReviewService(products)

	reviews, err := sut.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviews_AddAppendsAndPersists(t *testing.T) {
	products := &mockProductRepo{products: []models.Product{{ID: 1, Title: "Lamp"}}}
	sut := NewReviewService(products)

	review, err := sut.Add(context.Background(), models.AddReviewRequest{
		ProductID: 1,
		Username:  "ada",
		Rating:    4,
		Content:   "Bright enough",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, review.ID)
	assert.False(t, review.Date.IsZero())

	reviews, err := sut.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "ada", reviews[0].Username)
}

func TestReviews_ProductNotFound(t *testing.T) {
	sut := NewReviewService(&mockProductRepo{})

	_, err := sut.List(context.Background(), 9)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = sut.Add(context.Background(), models.AddReviewRequest{ProductID: 9, Username: "x", Rating: 3, Content: "y"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
