package controllers

import (
	"errors"
	"strconv"

	"storefront/models"
	"storefront/repositories"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart    *services.CartService
	catalog *services.CatalogService
}

func NewCartController(cart *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{cart: cart, catalog: catalog}
}

// @Summary Get cart
// @Description Refresh the cart from the remote store and return line items with totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	items, err := ctrl.cart.Load(c.Request.Context())
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to load cart", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{
		"success": true, "message": "Cart retrieved",
		"data": gin.H{"items": items, "snapshot": ctrl.cart.Snapshot()},
	})
}

// @Summary Add to cart
// @Description Add a product to the cart, merging quantities when the product is already there. The unit price is the effective price at add time.
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddToCartRequest true "Item"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	view, err := ctrl.catalog.ProductDetail(c.Request.Context(), req.ProductID)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to resolve product", "error": err.Error()})
		return
	}

	item, err := ctrl.cart.AddOrMerge(c.Request.Context(),
		view.ID, view.Title, view.EffectivePrice, view.Image, req.Quantity, req.Note)
	if errors.Is(err, services.ErrQuantityTooLow) {
		c.JSON(400, gin.H{"success": false, "message": "Quantity must be at least 1"})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to add to cart", "error": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Product added to cart", "data": item})
}

// @Summary Update quantity
// @Description Set a line item's quantity; values below 1 are rejected
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param quantity body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id}/quantity [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart item ID"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	err = ctrl.cart.SetQuantity(c.Request.Context(), id, req.Quantity)
	if errors.Is(err, services.ErrQuantityTooLow) {
		c.JSON(400, gin.H{"success": false, "message": "Quantity must be at least 1"})
		return
	}
	if errors.Is(err, services.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to update quantity", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Quantity updated", "data": ctrl.cart.Snapshot()})
}

// @Summary Update note
// @Description Set a line item's note text
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Param note body models.UpdateNoteRequest true "Note"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/{id}/note [patch]
func (ctrl *CartController) UpdateNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart item ID"})
		return
	}

	var req models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	err = ctrl.cart.SetNote(c.Request.Context(), id, req.Note)
	if errors.Is(err, services.ErrItemNotFound) {
		c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to update note", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Note updated"})
}

// @Summary Remove cart item
// @Tags Cart
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Router /cart/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid cart item ID"})
		return
	}

	if err := ctrl.cart.Remove(c.Request.Context(), id); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to remove item", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": ctrl.cart.Snapshot()})
}

// @Summary Empty cart
// @Description Delete every line item; items stay in the cart until their own deletion is confirmed
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.cart.Clear(c.Request.Context()); err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to empty cart", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart emptied", "data": ctrl.cart.Snapshot()})
}

// @Summary Cart summary
// @Description Item count and subtotal for the nav badge, served from the polled mirror
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart/summary [get]
func (ctrl *CartController) Summary(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Cart summary", "data": ctrl.cart.Summary()})
}
