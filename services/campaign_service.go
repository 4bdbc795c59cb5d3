package services

import (
	"context"
	"errors"
	"fmt"

	"storefront/models"
	"storefront/repositories"
)

var (
	ErrInvalidCampaign = errors.New("campaign is missing required fields")
	ErrCampaignOverlap = errors.New("product already claimed by another campaign")
)

type CampaignService struct {
	campaigns repositories.CampaignRepository
}

func NewCampaignService(campaigns repositories.CampaignRepository) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

func (s *CampaignService) List(ctx context.Context) ([]models.Campaign, error) {
	return s.campaigns.List(ctx)
}

// Create validates the campaign before any remote call and rejects
// campaigns that claim a product an existing campaign already claims.
// Rejecting overlap at creation keeps discount resolution unambiguous.
func (s *CampaignService) Create(ctx context.Context, req models.CreateCampaignRequest) (*models.Campaign, error) {
	if req.Title == "" || req.Description == "" || req.Image == "" {
		return nil, ErrInvalidCampaign
	}
	if len(req.ProductIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one product required", ErrInvalidCampaign)
	}
	if req.DiscountPercentage < 1 || req.DiscountPercentage > 99 {
		return nil, fmt.Errorf("%w: discount must be between 1 and 99", ErrInvalidCampaign)
	}

	existing, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, campaign := range existing {
		for _, id := range req.ProductIDs {
			if campaign.Contains(id) {
				return nil, fmt.Errorf("%w: product %d in campaign %q", ErrCampaignOverlap, id, campaign.Title)
			}
		}
	}

	campaign := &models.Campaign{
		Title:              req.Title,
		Description:        req.Description,
		Image:              req.Image,
		ProductIDs:         req.ProductIDs,
		DiscountPercentage: req.DiscountPercentage,
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}
