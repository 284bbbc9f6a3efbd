package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// WorkspaceService reads the workspace the API key belongs to.
type WorkspaceService struct {
	t Transport
}

func (s *WorkspaceService) Current(ctx context.Context) (*models.Workspace, error) {
	return get[models.Workspace](ctx, s.t, "Workspace", "/workspaces/current")
}

// WorkspaceMemberService reads workspace memberships.
type WorkspaceMemberService struct {
	t Transport
}

func (s *WorkspaceMemberService) List(ctx context.Context, req models.ListWorkspaceMembersRequest) ([]models.WorkspaceMember, error) {
	return list[models.WorkspaceMember](ctx, s.t, "WorkspaceMember", "/workspace-members", req, itemsEnvelope)
}

func (s *WorkspaceMemberService) Get(ctx context.Context, id string) (*models.WorkspaceMember, error) {
	if err := requireID("GetWorkspaceMember", "id", id); err != nil {
		return nil, err
	}
	return get[models.WorkspaceMember](ctx, s.t, "WorkspaceMember", resourcePath("workspace-members", id))
}

// WorkspaceGroupMemberService reads workspace group memberships.
type WorkspaceGroupMemberService struct {
	t Transport
}

func (s *WorkspaceGroupMemberService) List(ctx context.Context, req models.ListWorkspaceGroupMembersRequest) ([]models.WorkspaceGroupMember, error) {
	return list[models.WorkspaceGroupMember](ctx, s.t, "WorkspaceGroupMember", "/workspace-group-members", req, itemsEnvelope)
}

// AuditLogService reads the workspace audit trail.
type AuditLogService struct {
	t Transport
}

func (s *AuditLogService) List(ctx context.Context, req models.ListAuditLogsRequest) ([]models.AuditLog, error) {
	return list[models.AuditLog](ctx, s.t, "AuditLog", "/audit-logs", req, itemsEnvelope)
}
