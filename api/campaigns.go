package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// CampaignService manages campaigns and reads their analytics.
type CampaignService struct {
	t Transport
}

func (s *CampaignService) Get(ctx context.Context, id string) (*models.Campaign, error) {
	if err := requireID("GetCampaign", "id", id); err != nil {
		return nil, err
	}
	return get[models.Campaign](ctx, s.t, "Campaign", resourcePath("campaigns", id))
}

func (s *CampaignService) List(ctx context.Context, req models.ListCampaignsRequest) ([]models.Campaign, error) {
	return list[models.Campaign](ctx, s.t, "Campaign", "/campaigns", req, itemsEnvelope)
}

// Create defines a campaign. Stop and tracking flags left nil are sent as
// true.
func (s *CampaignService) Create(ctx context.Context, req models.CampaignCreate) (*models.Campaign, error) {
	return send[models.Campaign](ctx, s.t.Post, "Campaign", "/campaigns", req.WithDefaults())
}

func (s *CampaignService) Update(ctx context.Context, id string, req models.CampaignUpdate) (*models.Campaign, error) {
	if err := requireID("UpdateCampaign", "id", id); err != nil {
		return nil, err
	}
	return send[models.Campaign](ctx, s.t.Put, "Campaign", resourcePath("campaigns", id), req)
}

func (s *CampaignService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteCampaign", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("campaigns", id))
}

// Activate starts or resumes sending.
func (s *CampaignService) Activate(ctx context.Context, id string) (*models.Campaign, error) {
	return s.action(ctx, "ActivateCampaign", id, "activate")
}

// Pause stops sending until the campaign is activated again.
func (s *CampaignService) Pause(ctx context.Context, id string) (*models.Campaign, error) {
	return s.action(ctx, "PauseCampaign", id, "pause")
}

func (s *CampaignService) action(ctx context.Context, request, id, verb string) (*models.Campaign, error) {
	if err := requireID(request, "id", id); err != nil {
		return nil, err
	}
	return send[models.Campaign](ctx, s.t.Post, "Campaign", resourcePath("campaigns", id, verb), nil)
}

// Analytics returns the lifetime counters of one campaign.
func (s *CampaignService) Analytics(ctx context.Context, id string) (*models.CampaignAnalytics, error) {
	if err := requireID("GetCampaignAnalytics", "id", id); err != nil {
		return nil, err
	}
	return get[models.CampaignAnalytics](ctx, s.t, "CampaignAnalytics", resourcePath("campaigns", id, "analytics"))
}

// AnalyticsOverview returns counters aggregated over every campaign.
func (s *CampaignService) AnalyticsOverview(ctx context.Context) (*models.CampaignAnalytics, error) {
	return get[models.CampaignAnalytics](ctx, s.t, "CampaignAnalytics", "/campaigns/analytics/overview")
}

// DailyAnalytics returns one entry per day, oldest first as sent by the
// server.
func (s *CampaignService) DailyAnalytics(ctx context.Context, id string) ([]models.DailyCampaignAnalytics, error) {
	if err := requireID("GetDailyCampaignAnalytics", "id", id); err != nil {
		return nil, err
	}
	return list[models.DailyCampaignAnalytics](ctx, s.t, "DailyCampaignAnalytics",
		resourcePath("campaigns", id, "analytics", "daily"), nil, itemsEnvelope)
}

// StepsAnalytics returns one entry per sequence step and variant.
func (s *CampaignService) StepsAnalytics(ctx context.Context, id string) ([]models.StepAnalytics, error) {
	if err := requireID("GetCampaignStepsAnalytics", "id", id); err != nil {
		return nil, err
	}
	return list[models.StepAnalytics](ctx, s.t, "StepAnalytics",
		resourcePath("campaigns", id, "analytics", "steps"), nil, itemsEnvelope)
}
