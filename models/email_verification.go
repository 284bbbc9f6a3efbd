package models

// EmailVerification is the deliverability verdict for one address.
type EmailVerification struct {
	ID             string     `json:"id,omitempty"`
	Email          string     `json:"email"`
	Status         string     `json:"status" alias:"verification_status"`
	CatchAll       *bool      `json:"catch_all,omitempty"`
	OrganizationID string     `json:"organization_id,omitempty"`
	CreatedAt      *Timestamp `json:"timestamp_created,omitempty" alias:"created_at"`
	UpdatedAt      *Timestamp `json:"timestamp_updated,omitempty" alias:"updated_at"`
	Extra          Extra      `json:"-"`
}

func (v *EmailVerification) UnmarshalJSON(data []byte) error {
	return Decode("EmailVerification", data, v)
}

// Pending reports whether the verdict is not in yet.
func (v *EmailVerification) Pending() bool {
	return v.Status == "pending"
}

// EmailVerificationCreate starts verification of one address.
type EmailVerificationCreate struct {
	Email      string `json:"email" validate:"required,email"`
	WebhookURL string `json:"webhook_url,omitempty" validate:"omitempty,url"`
}
