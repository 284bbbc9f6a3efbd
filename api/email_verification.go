package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// EmailVerificationService checks deliverability of single addresses.
type EmailVerificationService struct {
	t Transport
}

// Verify starts verification. The verdict may still be pending in the
// response; poll Status until it is not.
func (s *EmailVerificationService) Verify(ctx context.Context, req models.EmailVerificationCreate) (*models.EmailVerification, error) {
	return send[models.EmailVerification](ctx, s.t.Post, "EmailVerification", "/email-verification", req)
}

// Status returns the current verdict for email.
func (s *EmailVerificationService) Status(ctx context.Context, email string) (*models.EmailVerification, error) {
	if err := requireID("GetVerificationStatus", "email", email); err != nil {
		return nil, err
	}
	return get[models.EmailVerification](ctx, s.t, "EmailVerification", resourcePath("email-verification", email))
}
