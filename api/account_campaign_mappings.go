package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// AccountCampaignMappingService reads which campaigns an account sends for.
type AccountCampaignMappingService struct {
	t Transport
}

// Get returns the mapping of the account with the given email.
func (s *AccountCampaignMappingService) Get(ctx context.Context, email string) (*models.AccountCampaignMapping, error) {
	if err := requireID("GetAccountCampaignMapping", "email", email); err != nil {
		return nil, err
	}
	return get[models.AccountCampaignMapping](ctx, s.t, "AccountCampaignMapping",
		resourcePath("account-campaign-mappings", email))
}
