package models

// Account is a sending email account. The email address is its identifier.
type Account struct {
	Email          string        `json:"email"`
	CreatedAt      Timestamp     `json:"timestamp_created" alias:"created_at"`
	UpdatedAt      *Timestamp    `json:"timestamp_updated,omitempty" alias:"updated_at"`
	FirstName      string        `json:"first_name,omitempty"`
	LastName       string        `json:"last_name,omitempty"`
	Status         AccountStatus `json:"status,omitempty"`
	Plan           string        `json:"plan,omitempty"`
	Timezone       string        `json:"timezone,omitempty"`
	DailyLimit     *int          `json:"daily_limit,omitempty"`
	WarmupStatus   *int          `json:"warmup_status,omitempty"`
	OrganizationID string        `json:"organization,omitempty" alias:"organization_id"`
	Extra          Extra         `json:"-"`
}

func (a *Account) UnmarshalJSON(data []byte) error {
	return Decode("Account", data, a)
}

func (a *Account) setDefaults() {
	if a.Plan == "" {
		a.Plan = "pro"
	}
	if a.Timezone == "" {
		a.Timezone = "UTC"
	}
}

// AccountCreate registers a new sending account.
type AccountCreate struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Timezone  string `json:"timezone,omitempty"`
}

// WithDefaults fills the timezone the API would otherwise assume.
func (r AccountCreate) WithDefaults() AccountCreate {
	if r.Timezone == "" {
		r.Timezone = "UTC"
	}
	return r
}

// AccountUpdate changes an account. Nil fields are left untouched.
type AccountUpdate struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Timezone   *string `json:"timezone,omitempty"`
	DailyLimit *int    `json:"daily_limit,omitempty" validate:"omitempty,min=1"`
}

// ListAccountsRequest pages through sending accounts.
type ListAccountsRequest struct {
	Limit         Limit          `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string         `url:"starting_after,omitempty"`
	Search        string         `url:"search,omitempty"`
	Status        *AccountStatus `url:"status,omitempty" validate:"omitempty,oneof=1 2 -1 -2 -3"`
}
