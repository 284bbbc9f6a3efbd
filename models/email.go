package models

import (
	"github.com/google/uuid"
)

// EmailBody is the content of an email in text and optional HTML form.
type EmailBody struct {
	Text  string `json:"text" validate:"required"`
	HTML  string `json:"html,omitempty"`
	Extra Extra  `json:"-"`
}

func (b *EmailBody) UnmarshalJSON(data []byte) error {
	return Decode("EmailBody", data, b)
}

// Email is any message visible in the Unibox: campaign sends, replies and
// manual emails.
type Email struct {
	Record
	TimestampEmail      Timestamp  `json:"timestamp_email"`
	MessageID           string     `json:"message_id"`
	Subject             string     `json:"subject"`
	ToAddressEmailList  string     `json:"to_address_email_list"`
	Body                EmailBody  `json:"body"`
	EAccount            string     `json:"eaccount"`
	OrganizationID      *uuid.UUID `json:"organization_id,omitempty"`
	FromAddressEmail    string     `json:"from_address_email,omitempty"`
	CCAddressEmailList  string     `json:"cc_address_email_list,omitempty"`
	BCCAddressEmailList string     `json:"bcc_address_email_list,omitempty"`
	ReplyTo             string     `json:"reply_to,omitempty"`
	CampaignID          string     `json:"campaign_id,omitempty"`
	SubsequenceID       string     `json:"subsequence_id,omitempty"`
	ListID              string     `json:"list_id,omitempty"`
	Lead                string     `json:"lead,omitempty"`
	LeadID              string     `json:"lead_id,omitempty"`
	UEType              *int       `json:"ue_type,omitempty"`
	Step                string     `json:"step,omitempty"`
	IsUnread            *bool      `json:"is_unread,omitempty"`
	IsAutoReply         *bool      `json:"is_auto_reply,omitempty"`
	ReminderTS          *Timestamp `json:"reminder_ts,omitempty"`
	AIInterestValue     *float64   `json:"ai_interest_value,omitempty"`
	AIAssisted          *int       `json:"ai_assisted,omitempty"`
	IsFocused           *int       `json:"is_focused,omitempty"`
	InterestStatus      *int       `json:"i_status,omitempty"`
	ThreadID            string     `json:"thread_id,omitempty"`
	ContentPreview      string     `json:"content_preview,omitempty"`
	FromAddressJSON     []any      `json:"from_address_json,omitempty"`
	ToAddressJSON       []any      `json:"to_address_json,omitempty"`
	CCAddressJSON       []any      `json:"cc_address_json,omitempty"`
}

func (e *Email) UnmarshalJSON(data []byte) error {
	return Decode("Email", data, e)
}

// EmailReply is the message created by replying to a thread.
type EmailReply struct {
	Record
	ThreadID            string    `json:"thread_id"`
	Subject             string    `json:"subject"`
	ToAddressEmailList  string    `json:"to_address_email_list"`
	Body                EmailBody `json:"body"`
	FromAddressEmail    string    `json:"from_address_email"`
	CCAddressEmailList  string    `json:"cc_address_email_list,omitempty"`
	BCCAddressEmailList string    `json:"bcc_address_email_list,omitempty"`
	ReplyTo             string    `json:"reply_to,omitempty"`
}

func (e *EmailReply) UnmarshalJSON(data []byte) error {
	return Decode("EmailReply", data, e)
}

// EmailReplyRequest answers an existing thread.
type EmailReplyRequest struct {
	ThreadID   string    `json:"thread_id" validate:"required"`
	Subject    string    `json:"subject" validate:"required"`
	Body       EmailBody `json:"body" validate:"required"`
	ToAddress  string    `json:"to_address" validate:"required,email"`
	CCAddress  string    `json:"cc_address,omitempty"`
	BCCAddress string    `json:"bcc_address,omitempty"`
	ReplyTo    string    `json:"reply_to,omitempty" validate:"omitempty,email"`
}

// EmailUpdate changes an email. Nil fields are left untouched.
type EmailUpdate struct {
	Subject             *string    `json:"subject,omitempty"`
	Body                *EmailBody `json:"body,omitempty"`
	CCAddressEmailList  *string    `json:"cc_address_email_list,omitempty"`
	BCCAddressEmailList *string    `json:"bcc_address_email_list,omitempty"`
	ReplyTo             *string    `json:"reply_to,omitempty"`
	IsUnread            *bool      `json:"is_unread,omitempty"`
	ReminderTS          *Timestamp `json:"reminder_ts,omitempty"`
}

// ListEmailsRequest pages through the Unibox.
type ListEmailsRequest struct {
	Limit         Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string `url:"starting_after,omitempty"`
	Search        string `url:"search,omitempty"`
	CampaignID    *Ref   `url:"campaign_id,omitempty"`
	ListID        *Ref   `url:"list_id,omitempty"`
	ThreadID      string `url:"thread_id,omitempty"`
	EAccount      string `url:"eaccount,omitempty"`
	Lead          string `url:"lead,omitempty"`
	IsUnread      *bool  `url:"is_unread,omitempty"`
}

// UnreadCount is the number of unread Unibox messages.
type UnreadCount struct {
	Count int   `json:"count"`
	Extra Extra `json:"-"`
}

func (c *UnreadCount) UnmarshalJSON(data []byte) error {
	return Decode("UnreadCount", data, c)
}

// MarkAsReadResult acknowledges marking a thread read.
type MarkAsReadResult struct {
	Success bool  `json:"success"`
	Extra   Extra `json:"-"`
}

func (r *MarkAsReadResult) UnmarshalJSON(data []byte) error {
	return Decode("MarkAsReadResult", data, r)
}
