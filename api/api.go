package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/s0up4200/instantly/transport"
)

// Transport is the HTTP surface the facades call. *transport.Client
// implements it; tests substitute a recording mock.
type Transport interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Patch(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) error
}

var _ Transport = (*transport.Client)(nil)

// Client groups every resource facade over one transport.
type Client struct {
	Accounts                *AccountService
	Campaigns               *CampaignService
	Leads                   *LeadService
	Emails                  *EmailService
	EmailVerification       *EmailVerificationService
	LeadLists               *LeadListService
	LeadLabels              *LeadLabelService
	CustomTags              *CustomTagService
	BlockList               *BlockListService
	APIKeys                 *APIKeyService
	BackgroundJobs          *BackgroundJobService
	AccountCampaignMappings *AccountCampaignMappingService
	Workspaces              *WorkspaceService
	WorkspaceMembers        *WorkspaceMemberService
	WorkspaceGroupMembers   *WorkspaceGroupMemberService
	AuditLogs               *AuditLogService
	Subsequences            *SubsequenceService
	InboxPlacement          *InboxPlacementService
}

// New wires all facades to t.
func New(t Transport) *Client {
	return &Client{
		Accounts:                &AccountService{t: t},
		Campaigns:               &CampaignService{t: t},
		Leads:                   &LeadService{t: t},
		Emails:                  &EmailService{t: t},
		EmailVerification:       &EmailVerificationService{t: t},
		LeadLists:               &LeadListService{t: t},
		LeadLabels:              &LeadLabelService{t: t},
		CustomTags:              &CustomTagService{t: t},
		BlockList:               &BlockListService{t: t},
		APIKeys:                 &APIKeyService{t: t},
		BackgroundJobs:          &BackgroundJobService{t: t},
		AccountCampaignMappings: &AccountCampaignMappingService{t: t},
		Workspaces:              &WorkspaceService{t: t},
		WorkspaceMembers:        &WorkspaceMemberService{t: t},
		WorkspaceGroupMembers:   &WorkspaceGroupMemberService{t: t},
		AuditLogs:               &AuditLogService{t: t},
		Subsequences:            &SubsequenceService{t: t},
		InboxPlacement:          &InboxPlacementService{t: t},
	}
}
