package models

import (
	"net/url"
	"strconv"
)

// Enumerations decode tolerantly: values the client does not know are kept
// as-is, and Known reports whether a value is one of the named constants.
// Request records restrict the same sets with oneof validation.

// LeadStatus is the sending state of a lead within a campaign.
type LeadStatus int

const (
	LeadStatusActive       LeadStatus = 1
	LeadStatusPaused       LeadStatus = 2
	LeadStatusCompleted    LeadStatus = 3
	LeadStatusBounced      LeadStatus = -1
	LeadStatusUnsubscribed LeadStatus = -2
	LeadStatusSkipped      LeadStatus = -3
)

func (s LeadStatus) String() string {
	switch s {
	case LeadStatusActive:
		return "Active"
	case LeadStatusPaused:
		return "Paused"
	case LeadStatusCompleted:
		return "Completed"
	case LeadStatusBounced:
		return "Bounced"
	case LeadStatusUnsubscribed:
		return "Unsubscribed"
	case LeadStatusSkipped:
		return "Skipped"
	default:
		return "Unknown"
	}
}

func (s LeadStatus) Known() bool {
	return s.String() != "Unknown"
}

// InterestStatus is the interest a lead has shown.
type InterestStatus int

const (
	InterestStatusInterested    InterestStatus = 1
	InterestStatusNotInterested InterestStatus = 2
	InterestStatusMaybeLater    InterestStatus = 3
)

func (s InterestStatus) String() string {
	switch s {
	case InterestStatusInterested:
		return "Interested"
	case InterestStatusNotInterested:
		return "Not Interested"
	case InterestStatusMaybeLater:
		return "Maybe Later"
	default:
		return "Unknown"
	}
}

func (s InterestStatus) Known() bool {
	return s.String() != "Unknown"
}

// EnrichmentStatus is the progress of lead data enrichment.
type EnrichmentStatus int

const (
	EnrichmentStatusEnriched     EnrichmentStatus = 1
	EnrichmentStatusPending      EnrichmentStatus = 11
	EnrichmentStatusNotAvailable EnrichmentStatus = -1
	EnrichmentStatusError        EnrichmentStatus = -2
)

func (s EnrichmentStatus) String() string {
	switch s {
	case EnrichmentStatusEnriched:
		return "Enriched"
	case EnrichmentStatusPending:
		return "Pending"
	case EnrichmentStatusNotAvailable:
		return "Not Available"
	case EnrichmentStatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

func (s EnrichmentStatus) Known() bool {
	return s.String() != "Unknown"
}

// ESPCode identifies the email service provider behind a lead's address.
type ESPCode int

const (
	ESPInQueue   ESPCode = 0
	ESPGoogle    ESPCode = 1
	ESPMicrosoft ESPCode = 2
	ESPZoho      ESPCode = 3
	ESPYahoo     ESPCode = 9
	ESPYandex    ESPCode = 10
	ESPWebDE     ESPCode = 12
	ESPLibero    ESPCode = 13
	ESPOther     ESPCode = 999
	ESPNotFound  ESPCode = 1000
)

func (c ESPCode) String() string {
	switch c {
	case ESPInQueue:
		return "In Queue"
	case ESPGoogle:
		return "Google"
	case ESPMicrosoft:
		return "Microsoft"
	case ESPZoho:
		return "Zoho"
	case ESPYahoo:
		return "Yahoo"
	case ESPYandex:
		return "Yandex"
	case ESPWebDE:
		return "Web.de"
	case ESPLibero:
		return "Libero.it"
	case ESPOther:
		return "Other"
	case ESPNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

func (c ESPCode) Known() bool {
	return c.String() != "Unknown"
}

// UploadMethod records how a lead entered the workspace.
type UploadMethod string

const (
	UploadMethodManual         UploadMethod = "manual"
	UploadMethodAPI            UploadMethod = "api"
	UploadMethodWebsiteVisitor UploadMethod = "website-visitor"
)

func (m UploadMethod) Known() bool {
	switch m {
	case UploadMethodManual, UploadMethodAPI, UploadMethodWebsiteVisitor:
		return true
	}
	return false
}

// JobType is the kind of work a background job performs.
type JobType string

const (
	JobTypeMoveLeads   JobType = "move-leads"
	JobTypeImportLeads JobType = "import-leads"
	JobTypeExportLeads JobType = "export-leads"
)

func (t JobType) Known() bool {
	switch t {
	case JobTypeMoveLeads, JobTypeImportLeads, JobTypeExportLeads:
		return true
	}
	return false
}

// JobStatus is the state of a background job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusInProgress JobStatus = "in-progress"
	JobStatusSuccess    JobStatus = "success"
	JobStatusFailed     JobStatus = "failed"
)

func (s JobStatus) Known() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusSuccess, JobStatusFailed:
		return true
	}
	return false
}

// Done reports whether the job reached a terminal state.
func (s JobStatus) Done() bool {
	return s == JobStatusSuccess || s == JobStatusFailed
}

// EntityType is the kind of entity a background job operates on.
type EntityType string

const (
	EntityTypeList     EntityType = "list"
	EntityTypeCampaign EntityType = "campaign"
)

func (t EntityType) Known() bool {
	return t == EntityTypeList || t == EntityTypeCampaign
}

// BlockListType says whether an entry blocks one address or a whole domain.
type BlockListType string

const (
	BlockListTypeEmail  BlockListType = "email"
	BlockListTypeDomain BlockListType = "domain"
)

func (t BlockListType) Known() bool {
	return t == BlockListTypeEmail || t == BlockListTypeDomain
}

// LeadFilter selects leads by contact or interest state in move requests.
type LeadFilter string

const (
	FilterContacted        LeadFilter = "FILTER_VAL_CONTACTED"
	FilterNotContacted     LeadFilter = "FILTER_VAL_NOT_CONTACTED"
	FilterCompleted        LeadFilter = "FILTER_VAL_COMPLETED"
	FilterUnsubscribed     LeadFilter = "FILTER_VAL_UNSUBSCRIBED"
	FilterActive           LeadFilter = "FILTER_VAL_ACTIVE"
	FilterInterested       LeadFilter = "FILTER_LEAD_INTERESTED"
	FilterNotInterested    LeadFilter = "FILTER_LEAD_NOT_INTERESTED"
	FilterMeetingBooked    LeadFilter = "FILTER_LEAD_MEETING_BOOKED"
	FilterMeetingCompleted LeadFilter = "FILTER_LEAD_MEETING_COMPLETED"
	FilterClosed           LeadFilter = "FILTER_LEAD_CLOSED"
)

func (f LeadFilter) Known() bool {
	switch f {
	case FilterContacted, FilterNotContacted, FilterCompleted, FilterUnsubscribed, FilterActive,
		FilterInterested, FilterNotInterested, FilterMeetingBooked, FilterMeetingCompleted, FilterClosed:
		return true
	}
	return false
}

// CampaignStatus is the sending state of a campaign.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) Known() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// SubsequenceStatus is the state of a campaign subsequence.
type SubsequenceStatus string

const (
	SubsequenceStatusActive    SubsequenceStatus = "active"
	SubsequenceStatusPaused    SubsequenceStatus = "paused"
	SubsequenceStatusCompleted SubsequenceStatus = "completed"
	SubsequenceStatusArchived  SubsequenceStatus = "archived"
)

func (s SubsequenceStatus) Known() bool {
	switch s {
	case SubsequenceStatusActive, SubsequenceStatusPaused, SubsequenceStatusCompleted, SubsequenceStatusArchived:
		return true
	}
	return false
}

// TriggerType is what starts a subsequence.
type TriggerType string

const (
	TriggerImmediate   TriggerType = "immediate"
	TriggerDelayed     TriggerType = "delayed"
	TriggerConditional TriggerType = "conditional"
)

func (t TriggerType) Known() bool {
	switch t {
	case TriggerImmediate, TriggerDelayed, TriggerConditional:
		return true
	}
	return false
}

// WorkspaceStatus is the account standing of a workspace.
type WorkspaceStatus string

const (
	WorkspaceStatusActive    WorkspaceStatus = "active"
	WorkspaceStatusSuspended WorkspaceStatus = "suspended"
	WorkspaceStatusArchived  WorkspaceStatus = "archived"
)

func (s WorkspaceStatus) Known() bool {
	switch s {
	case WorkspaceStatusActive, WorkspaceStatusSuspended, WorkspaceStatusArchived:
		return true
	}
	return false
}

// MemberRole is a user's role in a workspace or group.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
	RoleViewer MemberRole = "viewer"
)

func (r MemberRole) Known() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// MemberStatus is the state of a workspace or group membership.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusInvited   MemberStatus = "invited"
	MemberStatusSuspended MemberStatus = "suspended"
)

func (s MemberStatus) Known() bool {
	switch s {
	case MemberStatusActive, MemberStatusInvited, MemberStatusSuspended:
		return true
	}
	return false
}

// PlacementTestStatus is the state of an inbox placement test.
type PlacementTestStatus string

const (
	PlacementTestPending    PlacementTestStatus = "pending"
	PlacementTestInProgress PlacementTestStatus = "in_progress"
	PlacementTestCompleted  PlacementTestStatus = "completed"
	PlacementTestFailed     PlacementTestStatus = "failed"
)

func (s PlacementTestStatus) Known() bool {
	switch s {
	case PlacementTestPending, PlacementTestInProgress, PlacementTestCompleted, PlacementTestFailed:
		return true
	}
	return false
}

// AuditStatus is the outcome of an audited action.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "success"
	AuditFailure AuditStatus = "failure"
)

func (s AuditStatus) Known() bool {
	return s == AuditSuccess || s == AuditFailure
}

// AccountStatus is the health of a sending account.
type AccountStatus int

const (
	AccountStatusActive          AccountStatus = 1
	AccountStatusPaused          AccountStatus = 2
	AccountStatusConnectionError AccountStatus = -1
	AccountStatusSoftBounceError AccountStatus = -2
	AccountStatusSendingError    AccountStatus = -3
)

func (s AccountStatus) String() string {
	switch s {
	case AccountStatusActive:
		return "Active"
	case AccountStatusPaused:
		return "Paused"
	case AccountStatusConnectionError:
		return "Connection Error"
	case AccountStatusSoftBounceError:
		return "Soft Bounce Error"
	case AccountStatusSendingError:
		return "Sending Error"
	default:
		return "Unknown"
	}
}

func (s AccountStatus) Known() bool {
	return s.String() != "Unknown"
}

// EncodeValues implements query.Encoder so the code, not its name, is sent.
func (s AccountStatus) EncodeValues(key string, v *url.Values) error {
	v.Set(key, strconv.Itoa(int(s)))
	return nil
}
