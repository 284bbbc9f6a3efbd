package models

import (
	"github.com/google/uuid"
)

// CustomTag is a colored tag attached to accounts or campaigns by
// identifier.
type CustomTag struct {
	Record
	WorkspaceID uuid.UUID   `json:"workspace_id" alias:"organization_id"`
	Name        string      `json:"name" alias:"label"`
	Color       string      `json:"color,omitempty"`
	Description string      `json:"description,omitempty"`
	ResourceIDs []uuid.UUID `json:"resource_ids,omitempty"`
}

func (t *CustomTag) UnmarshalJSON(data []byte) error {
	return Decode("CustomTag", data, t)
}

// HasResource reports whether the tag is attached to id.
func (t *CustomTag) HasResource(id uuid.UUID) bool {
	for _, rid := range t.ResourceIDs {
		if rid == id {
			return true
		}
	}
	return false
}

// CustomTagCreate defines a new custom tag.
type CustomTagCreate struct {
	Name        string      `json:"name" validate:"required"`
	Color       string      `json:"color" validate:"required,hexcolor"`
	Description string      `json:"description,omitempty"`
	ResourceIDs []uuid.UUID `json:"resource_ids,omitempty"`
}

// CustomTagUpdate changes a custom tag. Nil fields are left untouched; a
// non-nil empty ResourceIDs detaches the tag from everything.
type CustomTagUpdate struct {
	Name        *string      `json:"name,omitempty" validate:"omitempty,min=1"`
	Color       *string      `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Description *string      `json:"description,omitempty"`
	ResourceIDs *[]uuid.UUID `json:"resource_ids,omitempty"`
}

// ToggleResourceRequest attaches the tag to a resource, or detaches it when
// Add is false.
type ToggleResourceRequest struct {
	ResourceID uuid.UUID `json:"resource_id" validate:"required"`
	Add        bool      `json:"add"`
}

// ListCustomTagsRequest pages through custom tags.
type ListCustomTagsRequest struct {
	WorkspaceID   *Ref   `url:"workspace_id,omitempty"`
	Limit         Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string `url:"starting_after,omitempty"`
	Search        string `url:"search,omitempty"`
	ResourceIDs   string `url:"resource_ids,omitempty"`
}
