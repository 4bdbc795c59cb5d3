package controllers

import (
	"errors"

	"storefront/models"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

type CampaignController struct {
	campaigns *services.CampaignService
}

func NewCampaignController(campaigns *services.CampaignService) *CampaignController {
	return &CampaignController{campaigns: campaigns}
}

// @Summary Get all campaigns
// @Description Get list of active promotional campaigns
// @Tags Campaigns
// @Produce json
// @Success 200 {object} models.Response
// @Router /campaigns [get]
func (ctrl *CampaignController) GetAllCampaigns(c *gin.Context) {
	campaigns, err := ctrl.campaigns.List(c.Request.Context())
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to get campaigns", "error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Campaigns retrieved", "data": campaigns})
}

// @Summary Create campaign
// @Description Create a promotional campaign. Requires title, description, image, at least one product and a discount between 1 and 99. Products already claimed by another campaign are rejected.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param campaign body models.CreateCampaignRequest true "Campaign"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /campaigns [post]
func (ctrl *CampaignController) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid campaign payload", "error": err.Error()})
		return
	}

	campaign, err := ctrl.campaigns.Create(c.Request.Context(), req)
	if errors.Is(err, services.ErrInvalidCampaign) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid campaign", "error": err.Error()})
		return
	}
	if errors.Is(err, services.ErrCampaignOverlap) {
		c.JSON(409, gin.H{"success": false, "message": "Campaign overlaps an existing one", "error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(502, gin.H{"success": false, "message": "Failed to create campaign", "error": err.Error()})
		return
	}

	invalidateCatalogCache()

	c.JSON(201, gin.H{"success": true, "message": "Campaign created", "data": campaign})
}
