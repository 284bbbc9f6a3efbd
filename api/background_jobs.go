package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// BackgroundJobService reads long-running server jobs.
type BackgroundJobService struct {
	t Transport
}

func (s *BackgroundJobService) List(ctx context.Context, req models.ListBackgroundJobsRequest) ([]models.BackgroundJob, error) {
	return list[models.BackgroundJob](ctx, s.t, "BackgroundJob", "/background-jobs", req, itemsEnvelope)
}

func (s *BackgroundJobService) Get(ctx context.Context, id string) (*models.BackgroundJob, error) {
	if err := requireID("GetBackgroundJob", "id", id); err != nil {
		return nil, err
	}
	return get[models.BackgroundJob](ctx, s.t, "BackgroundJob", resourcePath("background-jobs", id))
}
