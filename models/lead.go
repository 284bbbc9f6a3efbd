package models

import (
	"github.com/google/uuid"
)

// LeadStatusSummary is the last sequence step executed for a lead.
type LeadStatusSummary struct {
	From              string     `json:"from,omitempty"`
	StepID            string     `json:"step_id,omitempty"`
	TimestampExecuted *Timestamp `json:"timestamp_executed,omitempty"`
	Extra             Extra      `json:"-"`
}

func (s *LeadStatusSummary) UnmarshalJSON(data []byte) error {
	return Decode("LeadStatusSummary", data, s)
}

// Lead is a contact enrolled in a campaign or stored in a lead list.
// Campaign and list membership are references only.
type Lead struct {
	ID                          string             `json:"id"`
	Email                       string             `json:"email"`
	CreatedAt                   *Timestamp         `json:"timestamp_created,omitempty" alias:"created_at"`
	UpdatedAt                   *Timestamp         `json:"timestamp_updated,omitempty" alias:"updated_at"`
	Organization                *uuid.UUID         `json:"organization,omitempty" alias:"organization_id"`
	Campaign                    *uuid.UUID         `json:"campaign,omitempty"`
	ListID                      *uuid.UUID         `json:"list_id,omitempty"`
	Status                      *LeadStatus        `json:"status,omitempty"`
	FirstName                   string             `json:"first_name,omitempty"`
	LastName                    string             `json:"last_name,omitempty"`
	CompanyName                 string             `json:"company_name,omitempty"`
	CompanyDomain               string             `json:"company_domain,omitempty"`
	Website                     string             `json:"website,omitempty"`
	Phone                       string             `json:"phone,omitempty"`
	Personalization             string             `json:"personalization,omitempty"`
	EmailOpenCount              int                `json:"email_open_count,omitempty"`
	EmailReplyCount             int                `json:"email_reply_count,omitempty"`
	EmailClickCount             int                `json:"email_click_count,omitempty"`
	StatusSummary               *LeadStatusSummary `json:"status_summary,omitempty"`
	StatusSummarySubseq         *LeadStatusSummary `json:"status_summary_subseq,omitempty"`
	Payload                     map[string]any     `json:"payload,omitempty"`
	LastStepFrom                string             `json:"last_step_from,omitempty"`
	LastStepID                  string             `json:"last_step_id,omitempty"`
	LastStepTimestampExecuted   *Timestamp         `json:"last_step_timestamp_executed,omitempty"`
	EmailOpenedStep             *int               `json:"email_opened_step,omitempty"`
	EmailOpenedVariant          *int               `json:"email_opened_variant,omitempty"`
	EmailRepliedStep            *int               `json:"email_replied_step,omitempty"`
	EmailRepliedVariant         *int               `json:"email_replied_variant,omitempty"`
	EmailClickedStep            *int               `json:"email_clicked_step,omitempty"`
	EmailClickedVariant         *int               `json:"email_clicked_variant,omitempty"`
	InterestStatus              *InterestStatus    `json:"lt_interest_status,omitempty"`
	SubsequenceID               *uuid.UUID         `json:"subsequence_id,omitempty"`
	VerificationStatus          *int               `json:"verification_status,omitempty"`
	PLValueLead                 string             `json:"pl_value_lead,omitempty"`
	TimestampAddedSubsequence   *Timestamp         `json:"timestamp_added_subsequence,omitempty"`
	TimestampLastContact        *Timestamp         `json:"timestamp_last_contact,omitempty"`
	TimestampLastOpen           *Timestamp         `json:"timestamp_last_open,omitempty"`
	TimestampLastReply          *Timestamp         `json:"timestamp_last_reply,omitempty"`
	TimestampLastInterestChange *Timestamp         `json:"timestamp_last_interest_change,omitempty"`
	TimestampLastClick          *Timestamp         `json:"timestamp_last_click,omitempty"`
	TimestampLastTouch          *Timestamp         `json:"timestamp_last_touch,omitempty"`
	EnrichmentStatus            *EnrichmentStatus  `json:"enrichment_status,omitempty"`
	LastContactedFrom           string             `json:"last_contacted_from,omitempty"`
	UploadedByUser              *uuid.UUID         `json:"uploaded_by_user,omitempty"`
	UploadMethod                UploadMethod       `json:"upload_method,omitempty"`
	AssignedTo                  *uuid.UUID         `json:"assigned_to,omitempty"`
	IsWebsiteVisitor            *bool              `json:"is_website_visitor,omitempty"`
	ESPCode                     *ESPCode           `json:"esp_code,omitempty"`
	Extra                       Extra              `json:"-"`
}

func (l *Lead) UnmarshalJSON(data []byte) error {
	return Decode("Lead", data, l)
}

// FullName joins the first and last name, whichever are set.
func (l *Lead) FullName() string {
	switch {
	case l.FirstName == "":
		return l.LastName
	case l.LastName == "":
		return l.FirstName
	default:
		return l.FirstName + " " + l.LastName
	}
}

// LeadCreateRequest adds a lead, optionally straight into a campaign or list.
type LeadCreateRequest struct {
	Email           string         `json:"email" validate:"required,email"`
	FirstName       string         `json:"first_name,omitempty"`
	LastName        string         `json:"last_name,omitempty"`
	CompanyName     string         `json:"company_name,omitempty"`
	CompanyDomain   string         `json:"company_domain,omitempty" validate:"omitempty,fqdn"`
	Website         string         `json:"website,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	Personalization string         `json:"personalization,omitempty"`
	Campaign        *uuid.UUID     `json:"campaign,omitempty"`
	ListID          *uuid.UUID     `json:"list_id,omitempty"`
	CustomVariables map[string]any `json:"custom_variables,omitempty"`
}

// LeadUpdateRequest changes a lead. Nil fields are left untouched.
type LeadUpdateRequest struct {
	FirstName       *string         `json:"first_name,omitempty"`
	LastName        *string         `json:"last_name,omitempty"`
	CompanyName     *string         `json:"company_name,omitempty"`
	Website         *string         `json:"website,omitempty"`
	Phone           *string         `json:"phone,omitempty"`
	Personalization *string         `json:"personalization,omitempty"`
	AssignedTo      *uuid.UUID      `json:"assigned_to,omitempty"`
	InterestStatus  *InterestStatus `json:"lt_interest_status,omitempty"`
	PLValueLead     *string         `json:"pl_value_lead,omitempty"`
	CustomVariables map[string]any  `json:"custom_variables,omitempty"`
}

// ListLeadsRequest searches leads. It is sent as a JSON body to the
// /leads/list endpoint, not as a query string.
type ListLeadsRequest struct {
	Limit              Limit             `json:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter      string            `json:"starting_after,omitempty"`
	Search             string            `json:"search,omitempty"`
	Filter             LeadFilter        `json:"filter,omitempty" validate:"omitempty,oneof=FILTER_VAL_CONTACTED FILTER_VAL_NOT_CONTACTED FILTER_VAL_COMPLETED FILTER_VAL_UNSUBSCRIBED FILTER_VAL_ACTIVE FILTER_LEAD_INTERESTED FILTER_LEAD_NOT_INTERESTED FILTER_LEAD_MEETING_BOOKED FILTER_LEAD_MEETING_COMPLETED FILTER_LEAD_CLOSED"`
	Campaign           *uuid.UUID        `json:"campaign,omitempty"`
	ListID             *uuid.UUID        `json:"list_id,omitempty"`
	IDs                []string          `json:"ids,omitempty"`
	Status             *LeadStatus       `json:"status,omitempty" validate:"omitempty,oneof=1 2 3 -1 -2 -3"`
	InterestStatus     *InterestStatus   `json:"interest_status,omitempty" validate:"omitempty,oneof=1 2 3"`
	VerificationStatus *int              `json:"verification_status,omitempty"`
	EnrichmentStatus   *EnrichmentStatus `json:"enrichment_status,omitempty" validate:"omitempty,oneof=1 11 -1 -2"`
	AssignedTo         *uuid.UUID        `json:"assigned_to,omitempty"`
	UploadedByUser     *uuid.UUID        `json:"uploaded_by_user,omitempty"`
	UploadMethod       UploadMethod      `json:"upload_method,omitempty" validate:"omitempty,oneof=manual api website-visitor"`
	IsWebsiteVisitor   *bool             `json:"is_website_visitor,omitempty"`
	ESPCode            *ESPCode          `json:"esp_code,omitempty" validate:"omitempty,oneof=0 1 2 3 9 10 12 13 999 1000"`
}

// LeadMergeRequest folds the secondary lead into the primary one.
type LeadMergeRequest struct {
	PrimaryLeadID   string `json:"primary_lead_id" validate:"required"`
	SecondaryLeadID string `json:"secondary_lead_id" validate:"required,nefield=PrimaryLeadID"`
}

// LeadInterestStatusRequest sets the interest status of one lead.
type LeadInterestStatusRequest struct {
	LeadID string         `json:"lead_id" validate:"required"`
	Status InterestStatus `json:"status" validate:"required,oneof=1 2 3"`
}

// LeadSubsequenceRemoveRequest takes a lead out of its subsequence.
type LeadSubsequenceRemoveRequest struct {
	LeadID string `json:"lead_id" validate:"required"`
}

// LeadSubsequenceMoveRequest moves a lead into a subsequence.
type LeadSubsequenceMoveRequest struct {
	LeadID        string `json:"lead_id" validate:"required"`
	SubsequenceID string `json:"subsequence_id" validate:"required"`
}

// LeadBulkAssignRequest assigns leads to a workspace user.
type LeadBulkAssignRequest struct {
	LeadIDs []string `json:"lead_ids" validate:"required,min=1,dive,required"`
	UserID  string   `json:"user_id" validate:"required"`
}

// LeadMoveRequest selects leads by filter and moves or copies them to a
// campaign or list. The move runs as a background job.
type LeadMoveRequest struct {
	Search                     string           `json:"search,omitempty"`
	Filter                     LeadFilter       `json:"filter,omitempty" validate:"omitempty,oneof=FILTER_VAL_CONTACTED FILTER_VAL_NOT_CONTACTED FILTER_VAL_COMPLETED FILTER_VAL_UNSUBSCRIBED FILTER_VAL_ACTIVE FILTER_LEAD_INTERESTED FILTER_LEAD_NOT_INTERESTED FILTER_LEAD_MEETING_BOOKED FILTER_LEAD_MEETING_COMPLETED FILTER_LEAD_CLOSED"`
	Campaign                   *uuid.UUID       `json:"campaign,omitempty"`
	ListID                     *uuid.UUID       `json:"list_id,omitempty"`
	InCampaign                 *bool            `json:"in_campaign,omitempty"`
	InList                     *bool            `json:"in_list,omitempty"`
	IDs                        []string         `json:"ids,omitempty"`
	Queries                    []map[string]any `json:"queries,omitempty"`
	ExcludedIDs                []string         `json:"excluded_ids,omitempty"`
	Contacts                   []string         `json:"contacts,omitempty" validate:"omitempty,dive,email"`
	ToCampaignID               *uuid.UUID       `json:"to_campaign_id,omitempty" validate:"required_without=ToListID"`
	ToListID                   *uuid.UUID       `json:"to_list_id,omitempty" validate:"required_without=ToCampaignID"`
	CheckDuplicatesInCampaigns *bool            `json:"check_duplicates_in_campaigns,omitempty"`
	SkipLeadsInVerification    *bool            `json:"skip_leads_in_verification,omitempty"`
	Limit                      *int             `json:"limit,omitempty" validate:"omitempty,min=1"`
	AssignedTo                 *uuid.UUID       `json:"assigned_to,omitempty"`
	ESPCode                    *ESPCode         `json:"esp_code,omitempty" validate:"omitempty,oneof=0 1 2 3 9 10 12 13 999 1000"`
	CopyLeads                  *bool            `json:"copy_leads,omitempty"`
}

// LeadExportRequest pushes leads to a connected app.
type LeadExportRequest struct {
	LeadIDs []string `json:"lead_ids" validate:"required,min=1,dive,required"`
	AppID   string   `json:"app_id" validate:"required"`
}

// BulkAssignLeadsResult reports a bulk assignment.
type BulkAssignLeadsResult struct {
	AssignedCount int       `json:"assigned_count"`
	UserID        uuid.UUID `json:"user_id"`
	LeadIDs       []string  `json:"lead_ids,omitempty"`
	Extra         Extra     `json:"-"`
}

func (r *BulkAssignLeadsResult) UnmarshalJSON(data []byte) error {
	return Decode("BulkAssignLeadsResult", data, r)
}

// MoveLeadsResult is the background job that performs a move.
type MoveLeadsResult = BackgroundJob

// ExportLeadsResult reports an export. JobID is set when the export runs
// asynchronously.
type ExportLeadsResult struct {
	ExportedCount int      `json:"exported_count"`
	AppID         string   `json:"app_id"`
	LeadIDs       []string `json:"lead_ids,omitempty"`
	JobID         string   `json:"job_id,omitempty"`
	Extra         Extra    `json:"-"`
}

func (r *ExportLeadsResult) UnmarshalJSON(data []byte) error {
	return Decode("ExportLeadsResult", data, r)
}
