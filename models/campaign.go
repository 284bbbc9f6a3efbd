package models

// CampaignSchedule is the sending window of a campaign. It has no identity
// of its own and is always sent and received inside its campaign.
type CampaignSchedule struct {
	Timezone        string `json:"timezone" validate:"required"`
	StartTime       string `json:"start_time" validate:"required,hhmm"`
	EndTime         string `json:"end_time" validate:"required,hhmm"`
	Days            []int  `json:"days" validate:"min=1,max=7,dive,min=0,max=6"`
	MaxEmailsPerDay *int   `json:"max_emails_per_day,omitempty" validate:"omitempty,min=1"`
	Extra           Extra  `json:"-"`
}

func (s *CampaignSchedule) UnmarshalJSON(data []byte) error {
	return Decode("CampaignSchedule", data, s)
}

// Campaign is an outreach campaign.
type Campaign struct {
	Record
	Name                    string            `json:"name"`
	Status                  CampaignStatus    `json:"status,omitempty"`
	Schedule                *CampaignSchedule `json:"schedule,omitempty"`
	EmailListID             string            `json:"email_list_id,omitempty"`
	SequenceID              string            `json:"sequence_id,omitempty"`
	DailyLimit              *int              `json:"daily_limit,omitempty"`
	StopOnReply             bool              `json:"stop_on_reply,omitempty"`
	StopOnAutoReply         bool              `json:"stop_on_auto_reply,omitempty"`
	LinkTracking            bool              `json:"link_tracking,omitempty"`
	OpenTracking            bool              `json:"open_tracking,omitempty"`
	EmailGap                *int              `json:"email_gap,omitempty"`
	RandomWaitMax           *int              `json:"random_wait_max,omitempty"`
	TextOnly                bool              `json:"text_only,omitempty"`
	EmailList               []string          `json:"email_list,omitempty"`
	EmailTagList            []string          `json:"email_tag_list,omitempty"`
	DailyMaxLeads           *int              `json:"daily_max_leads,omitempty"`
	PrioritizeNewLeads      bool              `json:"prioritize_new_leads,omitempty"`
	MatchLeadESP            bool              `json:"match_lead_esp,omitempty"`
	StopForCompany          bool              `json:"stop_for_company,omitempty"`
	InsertUnsubscribeHeader bool              `json:"insert_unsubscribe_header,omitempty"`
	AllowRiskyContacts      bool              `json:"allow_risky_contacts,omitempty"`
	DisableBounceProtect    bool              `json:"disable_bounce_protect,omitempty"`
	CCList                  []string          `json:"cc_list,omitempty"`
	BCCList                 []string          `json:"bcc_list,omitempty"`
}

func (c *Campaign) UnmarshalJSON(data []byte) error {
	return Decode("Campaign", data, c)
}

// CampaignCreate defines a new campaign. Tracking and stop flags left nil
// are sent as true.
type CampaignCreate struct {
	Name            string           `json:"name" validate:"required"`
	Schedule        CampaignSchedule `json:"schedule" validate:"required"`
	EmailListID     string           `json:"email_list_id" validate:"required"`
	SequenceID      string           `json:"sequence_id" validate:"required"`
	DailyLimit      *int             `json:"daily_limit,omitempty" validate:"omitempty,min=1"`
	StopOnReply     *bool            `json:"stop_on_reply,omitempty"`
	StopOnAutoReply *bool            `json:"stop_on_auto_reply,omitempty"`
	LinkTracking    *bool            `json:"link_tracking,omitempty"`
	OpenTracking    *bool            `json:"open_tracking,omitempty"`
}

// WithDefaults returns a copy with unset flags turned on.
func (r CampaignCreate) WithDefaults() CampaignCreate {
	for _, flag := range []**bool{&r.StopOnReply, &r.StopOnAutoReply, &r.LinkTracking, &r.OpenTracking} {
		if *flag == nil {
			*flag = Ptr(true)
		}
	}
	return r
}

// CampaignUpdate changes a campaign. Nil fields are left untouched.
type CampaignUpdate struct {
	Name            *string           `json:"name,omitempty" validate:"omitempty,min=1"`
	Schedule        *CampaignSchedule `json:"schedule,omitempty"`
	DailyLimit      *int              `json:"daily_limit,omitempty" validate:"omitempty,min=1"`
	StopOnReply     *bool             `json:"stop_on_reply,omitempty"`
	StopOnAutoReply *bool             `json:"stop_on_auto_reply,omitempty"`
	LinkTracking    *bool             `json:"link_tracking,omitempty"`
	OpenTracking    *bool             `json:"open_tracking,omitempty"`
}

// ListCampaignsRequest pages through campaigns.
type ListCampaignsRequest struct {
	Limit         Limit          `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string         `url:"starting_after,omitempty"`
	Search        string         `url:"search,omitempty"`
	Status        CampaignStatus `url:"status,omitempty"`
}

// CampaignAnalytics are the lifetime counters of one campaign. The
// overview endpoint returns the same shape aggregated over all campaigns,
// without the campaign fields.
type CampaignAnalytics struct {
	CampaignID             string  `json:"campaign_id,omitempty" alias:"id"`
	CampaignName           string  `json:"campaign_name,omitempty"`
	CampaignStatus         *int    `json:"campaign_status,omitempty"`
	LeadsCount             int     `json:"leads_count,omitempty"`
	ContactedCount         int     `json:"contacted_count,omitempty"`
	EmailsSentCount        int     `json:"emails_sent_count,omitempty"`
	NewLeadsContactedCount int     `json:"new_leads_contacted_count,omitempty"`
	OpenCount              int     `json:"open_count,omitempty"`
	ReplyCount             int     `json:"reply_count,omitempty"`
	LinkClickCount         int     `json:"link_click_count,omitempty"`
	BouncedCount           int     `json:"bounced_count,omitempty"`
	UnsubscribedCount      int     `json:"unsubscribed_count,omitempty"`
	CompletedCount         int     `json:"completed_count,omitempty"`
	TotalOpportunities     int     `json:"total_opportunities,omitempty"`
	TotalOpportunityValue  float64 `json:"total_opportunity_value,omitempty"`
	Extra                  Extra   `json:"-"`
}

func (a *CampaignAnalytics) UnmarshalJSON(data []byte) error {
	return Decode("CampaignAnalytics", data, a)
}

// ReplyRate is replies per email sent, or 0 before anything was sent.
func (a *CampaignAnalytics) ReplyRate() float64 {
	if a.EmailsSentCount == 0 {
		return 0
	}
	return float64(a.ReplyCount) / float64(a.EmailsSentCount)
}

// DailyCampaignAnalytics are the counters of one campaign for one day.
type DailyCampaignAnalytics struct {
	Date          string `json:"date"`
	Sent          int    `json:"sent,omitempty"`
	Opened        int    `json:"opened,omitempty"`
	UniqueOpened  int    `json:"unique_opened,omitempty"`
	Replies       int    `json:"replies,omitempty"`
	UniqueReplies int    `json:"unique_replies,omitempty"`
	Clicks        int    `json:"clicks,omitempty"`
	UniqueClicks  int    `json:"unique_clicks,omitempty"`
	Extra         Extra  `json:"-"`
}

func (a *DailyCampaignAnalytics) UnmarshalJSON(data []byte) error {
	return Decode("DailyCampaignAnalytics", data, a)
}

// StepAnalytics are the counters of one sequence step and variant.
type StepAnalytics struct {
	Step          string `json:"step"`
	Variant       string `json:"variant,omitempty"`
	Sent          int    `json:"sent,omitempty"`
	Opened        int    `json:"opened,omitempty"`
	UniqueOpened  int    `json:"unique_opened,omitempty"`
	Replies       int    `json:"replies,omitempty"`
	UniqueReplies int    `json:"unique_replies,omitempty"`
	Clicks        int    `json:"clicks,omitempty"`
	UniqueClicks  int    `json:"unique_clicks,omitempty"`
	Extra         Extra  `json:"-"`
}

func (a *StepAnalytics) UnmarshalJSON(data []byte) error {
	return Decode("StepAnalytics", data, a)
}
