package controllers

import (
	"errors"
	"strconv"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// @Summary Get reviews
// @Description Get a product's reviews
// @Tags Reviews
// @Produce json
// @Param productId query int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews [get]
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("productId"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid productId"})
		return
	}

	reviews, err := ctrl.reviews.List(c.Request.Context(), productID)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load reviews", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Reviews retrieved", "data": reviews})
}

// @Summary Add review
// @Description Append a review to a product
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body models.AddReviewRequest true "Review"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews [post]
func (ctrl *ReviewController) AddReview(c *gin.Context) {
	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid review payload", "error": err.Error()})
		return
	}

	review, err := ctrl.reviews.Add(c.Request.Context(), req)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to add review", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Review added", "data": review})
}
