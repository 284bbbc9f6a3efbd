package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// LeadListService manages lead lists.
type LeadListService struct {
	t Transport
}

func (s *LeadListService) Create(ctx context.Context, req models.LeadListCreate) (*models.LeadList, error) {
	return send[models.LeadList](ctx, s.t.Post, "LeadList", "/lead-lists", req)
}

func (s *LeadListService) List(ctx context.Context, req models.ListLeadListsRequest) ([]models.LeadList, error) {
	return list[models.LeadList](ctx, s.t, "LeadList", "/lead-lists", req, itemsEnvelope)
}

func (s *LeadListService) Get(ctx context.Context, id string) (*models.LeadList, error) {
	if err := requireID("GetLeadList", "id", id); err != nil {
		return nil, err
	}
	return get[models.LeadList](ctx, s.t, "LeadList", resourcePath("lead-lists", id))
}

func (s *LeadListService) Update(ctx context.Context, id string, req models.LeadListUpdate) (*models.LeadList, error) {
	if err := requireID("UpdateLeadList", "id", id); err != nil {
		return nil, err
	}
	return send[models.LeadList](ctx, s.t.Patch, "LeadList", resourcePath("lead-lists", id), req)
}

func (s *LeadListService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteLeadList", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("lead-lists", id))
}
