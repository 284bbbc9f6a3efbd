package models

import (
	"github.com/google/uuid"
)

// InboxPlacementTest sends a probe email to seed addresses to measure where
// it lands.
type InboxPlacementTest struct {
	Record
	WorkspaceID  uuid.UUID           `json:"workspace_id" alias:"organization_id"`
	Name         string              `json:"name"`
	Description  string              `json:"description,omitempty"`
	FromEmail    string              `json:"from_email,omitempty"`
	Subject      string              `json:"subject,omitempty"`
	Body         map[string]any      `json:"body,omitempty"`
	TestEmails   []string            `json:"test_emails,omitempty"`
	Status       PlacementTestStatus `json:"status"`
	Results      map[string]any      `json:"results,omitempty"`
	CompletedAt  *Timestamp          `json:"completed_at,omitempty"`
	ErrorMessage string              `json:"error_message,omitempty"`
}

func (t *InboxPlacementTest) UnmarshalJSON(data []byte) error {
	return Decode("InboxPlacementTest", data, t)
}

// ListInboxPlacementTestsRequest pages through placement tests.
type ListInboxPlacementTestsRequest struct {
	Limit         Limit               `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string              `url:"starting_after,omitempty"`
	Search        string              `url:"search,omitempty"`
	Status        PlacementTestStatus `url:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed failed"`
}

// InboxPlacementAnalytics is where one seed address received a test email.
type InboxPlacementAnalytics struct {
	Record
	WorkspaceID           uuid.UUID      `json:"workspace_id" alias:"organization_id"`
	TestID                uuid.UUID      `json:"test_id"`
	EmailProvider         string         `json:"email_provider"`
	PlacementStatus       string         `json:"placement_status"`
	DeliveryTime          *Timestamp     `json:"delivery_time,omitempty"`
	OpenTime              *Timestamp     `json:"open_time,omitempty"`
	SpamScore             *float64       `json:"spam_score,omitempty"`
	Headers               map[string]any `json:"headers,omitempty"`
	AuthenticationResults map[string]any `json:"authentication_results,omitempty"`
}

func (a *InboxPlacementAnalytics) UnmarshalJSON(data []byte) error {
	return Decode("InboxPlacementAnalytics", data, a)
}

// InInbox reports whether the email reached the primary inbox.
func (a *InboxPlacementAnalytics) InInbox() bool {
	return a.PlacementStatus == "inbox"
}

// ListInboxPlacementAnalyticsRequest pages through the results of one test.
type ListInboxPlacementAnalyticsRequest struct {
	TestID        *Ref   `url:"test_id" validate:"required"`
	Limit         Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string `url:"starting_after,omitempty"`
}

// InboxPlacementBlacklist is an address flagged by placement testing or
// added by hand.
type InboxPlacementBlacklist struct {
	Record
	WorkspaceID uuid.UUID  `json:"workspace_id" alias:"organization_id"`
	Email       string     `json:"email"`
	Reason      string     `json:"reason,omitempty"`
	Source      string     `json:"source"`
	TestID      *uuid.UUID `json:"test_id,omitempty"`
	ExpiresAt   *Timestamp `json:"expires_at,omitempty"`
}

func (b *InboxPlacementBlacklist) UnmarshalJSON(data []byte) error {
	return Decode("InboxPlacementBlacklist", data, b)
}

// ListInboxPlacementBlacklistsRequest pages through blacklisted addresses.
type ListInboxPlacementBlacklistsRequest struct {
	TestID        *Ref   `url:"test_id,omitempty"`
	Limit         Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string `url:"starting_after,omitempty"`
}
