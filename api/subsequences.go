package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// SubsequenceService manages follow-up sequences of campaigns.
type SubsequenceService struct {
	t Transport
}

// List returns the subsequences of req.ParentCampaign.
func (s *SubsequenceService) List(ctx context.Context, req models.ListSubsequencesRequest) ([]models.CampaignSubsequence, error) {
	return list[models.CampaignSubsequence](ctx, s.t, "CampaignSubsequence", "/subsequences", req, itemsEnvelope)
}

func (s *SubsequenceService) Get(ctx context.Context, id string) (*models.CampaignSubsequence, error) {
	if err := requireID("GetSubsequence", "id", id); err != nil {
		return nil, err
	}
	return get[models.CampaignSubsequence](ctx, s.t, "CampaignSubsequence", resourcePath("subsequences", id))
}

func (s *SubsequenceService) Pause(ctx context.Context, id string) (*models.CampaignSubsequence, error) {
	return s.action(ctx, "PauseSubsequence", id, "pause")
}

func (s *SubsequenceService) Resume(ctx context.Context, id string) (*models.CampaignSubsequence, error) {
	return s.action(ctx, "ResumeSubsequence", id, "resume")
}

func (s *SubsequenceService) action(ctx context.Context, request, id, verb string) (*models.CampaignSubsequence, error) {
	if err := requireID(request, "id", id); err != nil {
		return nil, err
	}
	return send[models.CampaignSubsequence](ctx, s.t.Post, "CampaignSubsequence", resourcePath("subsequences", id, verb), nil)
}
