package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// LeadService manages leads. Searching is a POST to /leads/list with the
// filter as JSON body; its response uses the items envelope, with data as
// the fallback older responses carry.
type LeadService struct {
	t Transport
}

// Create adds a lead.
func (s *LeadService) Create(ctx context.Context, req models.LeadCreateRequest) (*models.Lead, error) {
	return send[models.Lead](ctx, s.t.Post, "Lead", "/leads", req)
}

// List searches leads and returns matches in server order.
func (s *LeadService) List(ctx context.Context, req models.ListLeadsRequest) ([]models.Lead, error) {
	body, err := models.Encode(req)
	if err != nil {
		return nil, err
	}
	data, err := s.t.Post(ctx, "/leads/list", body)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Lead]("Lead", data, itemsDataEnvelope)
}

func (s *LeadService) Get(ctx context.Context, id string) (*models.Lead, error) {
	if err := requireID("GetLead", "id", id); err != nil {
		return nil, err
	}
	return get[models.Lead](ctx, s.t, "Lead", resourcePath("leads", id))
}

// Update changes the fields set on req and leaves the rest untouched.
func (s *LeadService) Update(ctx context.Context, id string, req models.LeadUpdateRequest) (*models.Lead, error) {
	if err := requireID("UpdateLead", "id", id); err != nil {
		return nil, err
	}
	return send[models.Lead](ctx, s.t.Patch, "Lead", resourcePath("leads", id), req)
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteLead", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("leads", id))
}

// Merge folds the secondary lead into the primary and returns the result.
func (s *LeadService) Merge(ctx context.Context, req models.LeadMergeRequest) (*models.Lead, error) {
	return send[models.Lead](ctx, s.t.Post, "Lead", "/leads/merge", req)
}

func (s *LeadService) UpdateInterestStatus(ctx context.Context, req models.LeadInterestStatusRequest) (*models.ActionResult, error) {
	return send[models.ActionResult](ctx, s.t.Post, "ActionResult", "/leads/update-interest-status", req)
}

func (s *LeadService) RemoveFromSubsequence(ctx context.Context, req models.LeadSubsequenceRemoveRequest) (*models.ActionResult, error) {
	return send[models.ActionResult](ctx, s.t.Post, "ActionResult", "/leads/subsequence/remove", req)
}

func (s *LeadService) MoveToSubsequence(ctx context.Context, req models.LeadSubsequenceMoveRequest) (*models.ActionResult, error) {
	return send[models.ActionResult](ctx, s.t.Post, "ActionResult", "/leads/subsequence/move", req)
}

// BulkAssign assigns leads to a workspace user.
func (s *LeadService) BulkAssign(ctx context.Context, req models.LeadBulkAssignRequest) (*models.BulkAssignLeadsResult, error) {
	return send[models.BulkAssignLeadsResult](ctx, s.t.Post, "BulkAssignLeadsResult", "/leads/bulk-assign", req)
}

// Move starts a background job moving or copying the selected leads. Poll
// BackgroundJobs.Get with the returned job ID to follow it.
func (s *LeadService) Move(ctx context.Context, req models.LeadMoveRequest) (*models.MoveLeadsResult, error) {
	return send[models.MoveLeadsResult](ctx, s.t.Post, "BackgroundJob", "/leads/move", req)
}

// Export pushes leads to a connected app.
func (s *LeadService) Export(ctx context.Context, req models.LeadExportRequest) (*models.ExportLeadsResult, error) {
	return send[models.ExportLeadsResult](ctx, s.t.Post, "ExportLeadsResult", "/leads/export", req)
}
