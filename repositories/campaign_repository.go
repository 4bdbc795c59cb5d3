package repositories

import (
	"context"

	"storefront/models"
)

type RemoteCampaignRepository struct {
	remote *Remote
}

func NewCampaignRepository(remote *Remote) *RemoteCampaignRepository {
	return &RemoteCampaignRepository{remote: remote}
}

func (r *RemoteCampaignRepository) List(ctx context.Context) ([]models.Campaign, error) {
	campaigns := []models.Campaign{}
	if err := r.remote.get(ctx, "/campaigns", &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Create posts the campaign and fills in the store-assigned ID.
func (r *RemoteCampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return r.remote.post(ctx, "/campaigns", campaign, campaign)
}
