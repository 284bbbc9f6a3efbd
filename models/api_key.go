package models

import (
	"github.com/google/uuid"
)

// APIKey is a workspace API key. Key is only populated in the response to
// creating it.
type APIKey struct {
	Record
	WorkspaceID uuid.UUID  `json:"workspace_id" alias:"organization_id"`
	Name        string     `json:"name"`
	Key         string     `json:"key,omitempty"`
	Scopes      []string   `json:"scopes"`
	ExpiresAt   *Timestamp `json:"expires_at,omitempty"`
	LastUsedAt  *Timestamp `json:"last_used_at,omitempty"`
}

func (k *APIKey) UnmarshalJSON(data []byte) error {
	return Decode("APIKey", data, k)
}

// APIKeyCreate issues a new API key.
type APIKeyCreate struct {
	Name      string     `json:"name" validate:"required"`
	Scopes    []string   `json:"scopes" validate:"required,min=1,dive,required"`
	ExpiresAt *Timestamp `json:"expires_at,omitempty"`
}

// ListAPIKeysRequest pages through API keys.
type ListAPIKeysRequest struct {
	WorkspaceID   *Ref   `url:"workspace_id,omitempty"`
	Limit         Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string `url:"starting_after,omitempty"`
}
