package models

import (
	"github.com/google/uuid"
)

// AuditLog records one action taken in a workspace.
type AuditLog struct {
	Record
	WorkspaceID  uuid.UUID      `json:"workspace_id" alias:"organization_id"`
	UserID       uuid.UUID      `json:"user_id"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   uuid.UUID      `json:"resource_id"`
	Changes      map[string]any `json:"changes,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IPAddress    string         `json:"ip_address,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	Status       AuditStatus    `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

func (l *AuditLog) UnmarshalJSON(data []byte) error {
	return Decode("AuditLog", data, l)
}

// ListAuditLogsRequest pages through the audit trail, optionally bounded in
// time.
type ListAuditLogsRequest struct {
	Limit         Limit      `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string     `url:"starting_after,omitempty"`
	UserID        *Ref       `url:"user_id,omitempty"`
	ResourceType  string     `url:"resource_type,omitempty"`
	Action        string     `url:"action,omitempty"`
	StartDate     *Timestamp `url:"start_date,omitempty"`
	EndDate       *Timestamp `url:"end_date,omitempty"`
}
