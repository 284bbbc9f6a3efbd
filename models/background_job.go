package models

import (
	"github.com/google/uuid"
)

// BackgroundJob is a long-running server task such as moving or exporting
// leads. Progress runs from 0 to 100.
type BackgroundJob struct {
	Record
	WorkspaceID uuid.UUID      `json:"workspace_id" alias:"organization_id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	Type        JobType        `json:"type"`
	EntityID    *uuid.UUID     `json:"entity_id,omitempty"`
	EntityType  EntityType     `json:"entity_type,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	Progress    int            `json:"progress"`
	Status      JobStatus      `json:"status"`
}

func (j *BackgroundJob) UnmarshalJSON(data []byte) error {
	return Decode("BackgroundJob", data, j)
}

// Finished reports whether the job stopped running. A status this client does
// not know counts as finished once progress reaches 100.
func (j *BackgroundJob) Finished() bool {
	return j.Status.Done() || (!j.Status.Known() && j.Progress >= 100)
}

// ListBackgroundJobsRequest pages through background jobs. Status is passed
// through unchanged so callers can use server-side aliases.
type ListBackgroundJobsRequest struct {
	WorkspaceID   *Ref    `url:"workspace_id,omitempty"`
	Type          JobType `url:"type,omitempty" validate:"omitempty,oneof=move-leads import-leads export-leads"`
	Status        string  `url:"status,omitempty"`
	Limit         Limit   `url:"limit" validate:"omitempty,min=1,max=100"`
	StartingAfter string  `url:"starting_after,omitempty"`
}
