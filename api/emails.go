package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// EmailService reads and manages Unibox emails.
type EmailService struct {
	t Transport
}

// Reply sends a reply within an existing thread.
func (s *EmailService) Reply(ctx context.Context, req models.EmailReplyRequest) (*models.EmailReply, error) {
	return send[models.EmailReply](ctx, s.t.Post, "EmailReply", "/emails/reply", req)
}

func (s *EmailService) List(ctx context.Context, req models.ListEmailsRequest) ([]models.Email, error) {
	return list[models.Email](ctx, s.t, "Email", "/emails", req, itemsEnvelope)
}

func (s *EmailService) Get(ctx context.Context, id string) (*models.Email, error) {
	if err := requireID("GetEmail", "id", id); err != nil {
		return nil, err
	}
	return get[models.Email](ctx, s.t, "Email", resourcePath("emails", id))
}

func (s *EmailService) Update(ctx context.Context, id string, req models.EmailUpdate) (*models.Email, error) {
	if err := requireID("UpdateEmail", "id", id); err != nil {
		return nil, err
	}
	return send[models.Email](ctx, s.t.Patch, "Email", resourcePath("emails", id), req)
}

func (s *EmailService) Delete(ctx context.Context, id string) error {
	if err := requireID("DeleteEmail", "id", id); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("emails", id))
}

// UnreadCount returns the number of unread emails in the workspace.
func (s *EmailService) UnreadCount(ctx context.Context) (*models.UnreadCount, error) {
	return get[models.UnreadCount](ctx, s.t, "UnreadCount", "/emails/unread/count")
}

// MarkThreadAsRead marks every email of a thread as read.
func (s *EmailService) MarkThreadAsRead(ctx context.Context, threadID string) (*models.MarkAsReadResult, error) {
	if err := requireID("MarkThreadAsRead", "thread_id", threadID); err != nil {
		return nil, err
	}
	return send[models.MarkAsReadResult](ctx, s.t.Post, "MarkAsReadResult",
		resourcePath("emails", "threads", threadID, "mark-as-read"), nil)
}
