package models

import (
	"github.com/google/uuid"
)

// BlockListEntry keeps an address or a whole domain from being contacted.
type BlockListEntry struct {
	Record
	WorkspaceID uuid.UUID     `json:"workspace_id" alias:"organization_id"`
	Type        BlockListType `json:"type,omitempty"`
	Value       string        `json:"value" alias:"bl_value"`
	Reason      string        `json:"reason,omitempty"`
	ExpiresAt   *Timestamp    `json:"expires_at,omitempty"`
}

func (e *BlockListEntry) UnmarshalJSON(data []byte) error {
	return Decode("BlockListEntry", data, e)
}

// BlockListEntryCreate blocks an email address or a domain.
type BlockListEntryCreate struct {
	Type      BlockListType `json:"type" validate:"required,oneof=email domain"`
	Value     string        `json:"value" validate:"required"`
	Reason    string        `json:"reason,omitempty"`
	ExpiresAt *Timestamp    `json:"expires_at,omitempty"`
}

// BlockListEntryUpdate changes a block. Nil fields are left untouched.
type BlockListEntryUpdate struct {
	Reason    *string    `json:"reason,omitempty"`
	ExpiresAt *Timestamp `json:"expires_at,omitempty"`
}

// ListBlockListEntriesRequest pages through the block list.
type ListBlockListEntriesRequest struct {
	WorkspaceID   *Ref          `url:"workspace_id,omitempty"`
	Type          BlockListType `url:"type,omitempty" validate:"omitempty,oneof=email domain"`
	Limit         Limit         `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string        `url:"starting_after,omitempty"`
	Search        string        `url:"search,omitempty"`
}
