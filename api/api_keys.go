package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// APIKeyService manages workspace API keys.
type APIKeyService struct {
	t Transport
}

// Create issues a key. The secret is only present in this response.
func (s *APIKeyService) Create(ctx context.Context, req models.APIKeyCreate) (*models.APIKey, error) {
	return send[models.APIKey](ctx, s.t.Post, "APIKey", "/api-keys", req)
}

func (s *APIKeyService) List(ctx context.Context, req models.ListAPIKeysRequest) ([]models.APIKey, error) {
	return list[models.APIKey](ctx, s.t, "APIKey", "/api-keys", req, itemsEnvelope)
}

func (s *APIKeyService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteAPIKey", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("api-keys", id))
}
