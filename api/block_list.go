package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// BlockListService manages blocked addresses and domains under
// /block-lists-entries.
type BlockListService struct {
	t Transport
}

func (s *BlockListService) Create(ctx context.Context, req models.BlockListEntryCreate) (*models.BlockListEntry, error) {
	return send[models.BlockListEntry](ctx, s.t.Post, "BlockListEntry", "/block-lists-entries", req)
}

func (s *BlockListService) List(ctx context.Context, req models.ListBlockListEntriesRequest) ([]models.BlockListEntry, error) {
	return list[models.BlockListEntry](ctx, s.t, "BlockListEntry", "/block-lists-entries", req, itemsEnvelope)
}

func (s *BlockListService) Get(ctx context.Context, id string) (*models.BlockListEntry, error) {
	if err := requireID("GetBlockListEntry", "id", id); err != nil {
		return nil, err
	}
	return get[models.BlockListEntry](ctx, s.t, "BlockListEntry", resourcePath("block-lists-entries", id))
}

func (s *BlockListService) Update(ctx context.Context, id string, req models.BlockListEntryUpdate) (*models.BlockListEntry, error) {
	if err := requireID("UpdateBlockListEntry", "id", id); err != nil {
		return nil, err
	}
	return send[models.BlockListEntry](ctx, s.t.Patch, "BlockListEntry", resourcePath("block-lists-entries", id), req)
}

func (s *BlockListService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteBlockListEntry", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("block-lists-entries", id))
}
