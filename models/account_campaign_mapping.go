package models

import (
	"github.com/google/uuid"
)

// AccountCampaignMapping links a sending account to a campaign.
type AccountCampaignMapping struct {
	Record
	WorkspaceID uuid.UUID  `json:"workspace_id" alias:"organization_id"`
	AccountID   uuid.UUID  `json:"account_id"`
	CampaignID  uuid.UUID  `json:"campaign_id"`
	IsActive    bool       `json:"is_active"`
	LastUsedAt  *Timestamp `json:"last_used_at,omitempty"`
}

func (m *AccountCampaignMapping) UnmarshalJSON(data []byte) error {
	return Decode("AccountCampaignMapping", data, m)
}
