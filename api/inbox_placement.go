package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// InboxPlacementService reads placement tests, their per-seed results and
// the addresses they flagged.
type InboxPlacementService struct {
	t Transport
}

func (s *InboxPlacementService) ListTests(ctx context.Context, req models.ListInboxPlacementTestsRequest) ([]models.InboxPlacementTest, error) {
	return list[models.InboxPlacementTest](ctx, s.t, "InboxPlacementTest", "/inbox-placement-tests", req, itemsEnvelope)
}

func (s *InboxPlacementService) GetTest(ctx context.Context, id string) (*models.InboxPlacementTest, error) {
	if err := requireID("GetInboxPlacementTest", "id", id); err != nil {
		return nil, err
	}
	return get[models.InboxPlacementTest](ctx, s.t, "InboxPlacementTest", resourcePath("inbox-placement-tests", id))
}

func (s *InboxPlacementService) ListAnalytics(ctx context.Context, req models.ListInboxPlacementAnalyticsRequest) ([]models.InboxPlacementAnalytics, error) {
	return list[models.InboxPlacementAnalytics](ctx, s.t, "InboxPlacementAnalytics", "/inbox-placement-analytics", req, itemsEnvelope)
}

func (s *InboxPlacementService) ListBlacklists(ctx context.Context, req models.ListInboxPlacementBlacklistsRequest) ([]models.InboxPlacementBlacklist, error) {
	return list[models.InboxPlacementBlacklist](ctx, s.t, "InboxPlacementBlacklist", "/inbox-placement-blacklists", req, itemsEnvelope)
}
