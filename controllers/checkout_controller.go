package controllers

import (
	"errors"
	"fmt"

	"storefront/services"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{checkout: checkout}
}

// @Summary Begin checkout
// @Description Move from idle to order review and return the totals to confirm
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Begin(c *gin.Context) {
	snapshot, err := ctrl.checkout.Begin()
	if errors.Is(err, services.ErrInvalidTransition) {
		c.JSON(409, gin.H{"success": false, "message": "Checkout already in progress", "error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": fmt.Sprintf("Total to be paid: %s", utils.FormatPrice(snapshot.Total)),
		"data":    gin.H{"state": ctrl.checkout.State(), "snapshot": snapshot},
	})
}

// @Summary Cancel checkout
// @Description Return from order review to idle with no side effects
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout [delete]
func (ctrl *CheckoutController) Cancel(c *gin.Context) {
	if err := ctrl.checkout.Cancel(); err != nil {
		c.JSON(409, gin.H{"success": false, "message": "Nothing to cancel", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Checkout canceled", "data": gin.H{"state": ctrl.checkout.State()}})
}

// @Summary Confirm payment
// @Description Clear the cart and complete the checkout. A failed clear leaves the checkout awaiting confirmation for retry.
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /checkout/confirm [post]
func (ctrl *CheckoutController) Confirm(c *gin.Context) {
	err := ctrl.checkout.ConfirmPayment(c.Request.Context())
	if errors.Is(err, services.ErrInvalidTransition) {
		c.JSON(409, gin.H{"success": false, "message": "No order under review", "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Payment confirmed but cart clear failed, retry", "error": err.Error(), "state": ctrl.checkout.State()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Thank you for your purchase!", "data": gin.H{"state": ctrl.checkout.State()}})
}

// @Summary Acknowledge completed checkout
// @Description Close the confirmation and start a fresh checkout cycle
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/acknowledge [post]
func (ctrl *CheckoutController) Acknowledge(c *gin.Context) {
	if err := ctrl.checkout.Acknowledge(); err != nil {
		c.JSON(409, gin.H{"success": false, "message": "No completed checkout", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Checkout closed", "data": gin.H{"state": ctrl.checkout.State()}})
}

// @Summary Checkout state
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) State(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Checkout state", "data": gin.H{"state": ctrl.checkout.State()}})
}
