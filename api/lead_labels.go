package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// LeadLabelService manages the interest labels of a workspace.
type LeadLabelService struct {
	t Transport
}

func (s *LeadLabelService) Create(ctx context.Context, req models.LeadLabelCreate) (*models.LeadLabel, error) {
	return send[models.LeadLabel](ctx, s.t.Post, "LeadLabel", "/lead-labels", req)
}

func (s *LeadLabelService) List(ctx context.Context, req models.ListLeadLabelsRequest) ([]models.LeadLabel, error) {
	return list[models.LeadLabel](ctx, s.t, "LeadLabel", "/lead-labels", req, itemsEnvelope)
}

func (s *LeadLabelService) Get(ctx context.Context, id string) (*models.LeadLabel, error) {
	if err := requireID("GetLeadLabel", "id", id); err != nil {
		return nil, err
	}
	return get[models.LeadLabel](ctx, s.t, "LeadLabel", resourcePath("lead-labels", id))
}

func (s *LeadLabelService) Update(ctx context.Context, id string, req models.LeadLabelUpdate) (*models.LeadLabel, error) {
	if err := requireID("UpdateLeadLabel", "id", id); err != nil {
		return nil, err
	}
	return send[models.LeadLabel](ctx, s.t.Patch, "LeadLabel", resourcePath("lead-labels", id), req)
}

func (s *LeadLabelService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteLeadLabel", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("lead-labels", id))
}
