package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// CustomTagService manages custom tags and their attachments.
type CustomTagService struct {
	t Transport
}

func (s *CustomTagService) Create(ctx context.Context, req models.CustomTagCreate) (*models.CustomTag, error) {
	return send[models.CustomTag](ctx, s.t.Post, "CustomTag", "/custom-tags", req)
}

func (s *CustomTagService) List(ctx context.Context, req models.ListCustomTagsRequest) ([]models.CustomTag, error) {
	return list[models.CustomTag](ctx, s.t, "CustomTag", "/custom-tags", req, itemsEnvelope)
}

func (s *CustomTagService) Get(ctx context.Context, id string) (*models.CustomTag, error) {
	if err := requireID("GetCustomTag", "id", id); err != nil {
		return nil, err
	}
	return get[models.CustomTag](ctx, s.t, "CustomTag", resourcePath("custom-tags", id))
}

func (s *CustomTagService) Update(ctx context.Context, id string, req models.CustomTagUpdate) (*models.CustomTag, error) {
	if err := requireID("UpdateCustomTag", "id", id); err != nil {
		return nil, err
	}
	return send[models.CustomTag](ctx, s.t.Patch, "CustomTag", resourcePath("custom-tags", id), req)
}

func (s *CustomTagService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteCustomTag", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("custom-tags", id))
}

// ToggleResource attaches the tag to a resource or detaches it, and
// returns the tag as it stands afterwards.
func (s *CustomTagService) ToggleResource(ctx context.Context, id string, req models.ToggleResourceRequest) (*models.CustomTag, error) {
	if err := requireID("ToggleResource", "id", id); err != nil {
		return nil, err
	}
	return send[models.CustomTag](ctx, s.t.Post, "CustomTag", resourcePath("custom-tags", id, "toggle-resource"), req)
}
