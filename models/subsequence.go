package models

import (
	"github.com/google/uuid"
)

// CampaignSubsequence is a follow-up sequence triggered from a parent
// campaign.
type CampaignSubsequence struct {
	Record
	WorkspaceID      uuid.UUID         `json:"workspace_id" alias:"organization_id"`
	CampaignID       uuid.UUID         `json:"campaign_id" alias:"parent_campaign"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	Status           SubsequenceStatus `json:"status,omitempty"`
	TriggerType      TriggerType       `json:"trigger_type,omitempty"`
	TriggerDelay     *int              `json:"trigger_delay,omitempty"`
	TriggerCondition map[string]any    `json:"trigger_condition,omitempty"`
	Steps            []map[string]any  `json:"steps,omitempty"`
	StartedAt        *Timestamp        `json:"started_at,omitempty"`
	CompletedAt      *Timestamp        `json:"completed_at,omitempty"`
	CreatedBy        *uuid.UUID        `json:"created_by,omitempty"`
	LastModifiedBy   *uuid.UUID        `json:"last_modified_by,omitempty"`
}

func (s *CampaignSubsequence) UnmarshalJSON(data []byte) error {
	return Decode("CampaignSubsequence", data, s)
}

// ListSubsequencesRequest pages through the subsequences of a campaign.
type ListSubsequencesRequest struct {
	ParentCampaign *Ref   `url:"parent_campaign" validate:"required"`
	Limit          Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter  string `url:"starting_after,omitempty"`
	Search         string `url:"search,omitempty"`
}
