package models

import (
	"github.com/google/uuid"
)

// Workspace is the organization that owns every other resource.
type Workspace struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Status       WorkspaceStatus `json:"status,omitempty"`
	Plan         string          `json:"plan,omitempty" alias:"plan_id"`
	OwnerID      *uuid.UUID      `json:"owner_id,omitempty" alias:"owner"`
	Settings     map[string]any  `json:"settings,omitempty"`
	Features     []string        `json:"features,omitempty"`
	CreatedAt    *Timestamp      `json:"created_at,omitempty" alias:"timestamp_created"`
	UpdatedAt    *Timestamp      `json:"updated_at,omitempty" alias:"timestamp_updated"`
	TrialEndsAt  *Timestamp      `json:"trial_ends_at,omitempty"`
	BillingEmail string          `json:"billing_email,omitempty"`
	Timezone     string          `json:"timezone,omitempty"`
	Language     string          `json:"language,omitempty"`
	CustomDomain string          `json:"custom_domain,omitempty" alias:"org_client_domain"`
	LogoURL      string          `json:"logo_url,omitempty" alias:"org_logo_url"`
	Extra        Extra           `json:"-"`
}

func (w *Workspace) UnmarshalJSON(data []byte) error {
	return Decode("Workspace", data, w)
}

func (w *Workspace) setDefaults() {
	if w.Timezone == "" {
		w.Timezone = "UTC"
	}
	if w.Language == "" {
		w.Language = "en"
	}
}

// WorkspaceMember is a user's membership in a workspace.
type WorkspaceMember struct {
	Record
	WorkspaceID      uuid.UUID    `json:"workspace_id" alias:"organization_id"`
	UserID           uuid.UUID    `json:"user_id"`
	Role             MemberRole   `json:"role"`
	Email            string       `json:"email"`
	FirstName        string       `json:"first_name,omitempty"`
	LastName         string       `json:"last_name,omitempty"`
	Status           MemberStatus `json:"status,omitempty"`
	Permissions      []string     `json:"permissions,omitempty"`
	InvitedAt        *Timestamp   `json:"invited_at,omitempty"`
	JoinedAt         *Timestamp   `json:"joined_at,omitempty"`
	InvitedBy        *uuid.UUID   `json:"invited_by,omitempty"`
	LastActiveAt     *Timestamp   `json:"last_active_at,omitempty"`
	TwoFactorEnabled bool         `json:"two_factor_enabled,omitempty"`
	Groups           []uuid.UUID  `json:"groups,omitempty"`
}

func (m *WorkspaceMember) UnmarshalJSON(data []byte) error {
	return Decode("WorkspaceMember", data, m)
}

// ListWorkspaceMembersRequest pages through workspace members.
type ListWorkspaceMembersRequest struct {
	Limit         Limit      `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string     `url:"starting_after,omitempty"`
	Role          MemberRole `url:"role,omitempty" validate:"omitempty,oneof=owner admin member viewer"`
}

// WorkspaceGroupMember is a user's membership in a workspace group.
type WorkspaceGroupMember struct {
	Record
	WorkspaceID uuid.UUID    `json:"workspace_id" alias:"organization_id"`
	GroupID     uuid.UUID    `json:"group_id"`
	UserID      uuid.UUID    `json:"user_id"`
	Role        MemberRole   `json:"role"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name,omitempty"`
	LastName    string       `json:"last_name,omitempty"`
	Status      MemberStatus `json:"status,omitempty"`
	Permissions []string     `json:"permissions,omitempty"`
	InvitedAt   *Timestamp   `json:"invited_at,omitempty"`
	JoinedAt    *Timestamp   `json:"joined_at,omitempty"`
	InvitedBy   *uuid.UUID   `json:"invited_by,omitempty"`
}

func (m *WorkspaceGroupMember) UnmarshalJSON(data []byte) error {
	return Decode("WorkspaceGroupMember", data, m)
}

// ListWorkspaceGroupMembersRequest pages through the members of groups.
type ListWorkspaceGroupMembersRequest struct {
	GroupID       *Ref   `url:"group_id,omitempty"`
	Limit         Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string `url:"starting_after,omitempty"`
}
