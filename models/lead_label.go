package models

import (
	"github.com/google/uuid"
)

// LeadLabel is a workspace-defined interest label for leads.
type LeadLabel struct {
	Record
	WorkspaceID uuid.UUID `json:"workspace_id" alias:"organization_id"`
	Name        string    `json:"name" alias:"label"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
}

func (l *LeadLabel) UnmarshalJSON(data []byte) error {
	return Decode("LeadLabel", data, l)
}

// LeadLabelCreate defines a new lead label.
type LeadLabelCreate struct {
	Name        string `json:"name" validate:"required"`
	Color       string `json:"color" validate:"required,hexcolor"`
	Description string `json:"description,omitempty"`
}

// LeadLabelUpdate changes a lead label. Nil fields are left untouched.
type LeadLabelUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Description *string `json:"description,omitempty"`
}

// ListLeadLabelsRequest pages through lead labels.
type ListLeadLabelsRequest struct {
	WorkspaceID   *Ref   `url:"workspace_id,omitempty"`
	Limit         Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string `url:"starting_after,omitempty"`
	Search        string `url:"search,omitempty"`
}
