package models

// LeadList is a named collection of leads outside any campaign.
type LeadList struct {
	Record
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	OrganizationID    string `json:"organization_id,omitempty"`
	LeadCount         int    `json:"lead_count,omitempty"`
	HasEnrichmentTask bool   `json:"has_enrichment_task,omitempty"`
	IsArchived        bool   `json:"is_archived,omitempty"`
	IsDeleted         bool   `json:"is_deleted,omitempty"`
	CreatedBy         string `json:"created_by,omitempty" alias:"owned_by"`
	UpdatedBy         string `json:"updated_by,omitempty"`
}

func (l *LeadList) UnmarshalJSON(data []byte) error {
	return Decode("LeadList", data, l)
}

// LeadListCreate defines a new lead list.
type LeadListCreate struct {
	Name              string `json:"name" validate:"required"`
	Description       string `json:"description,omitempty"`
	HasEnrichmentTask *bool  `json:"has_enrichment_task,omitempty"`
}

// LeadListUpdate changes a lead list. Nil fields are left untouched.
type LeadListUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

// ListLeadListsRequest pages through lead lists.
type ListLeadListsRequest struct {
	Limit             Limit  `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter     string `url:"starting_after,omitempty"`
	Search            string `url:"search,omitempty"`
	HasEnrichmentTask *bool  `url:"has_enrichment_task,omitempty"`
}
