package api

import (
	"context"

	"github.com/s0up4200/instantly/models"
)

// AccountService manages sending accounts under /accounts. Accounts are
// addressed by email, and list responses use the items envelope.
type AccountService struct {
	t Transport
}

// Get retrieves one account.
func (s *AccountService) Get(ctx context.Context, email string) (*models.Account, error) {
	if err := requireID("GetAccount", "email", email); err != nil {
		return nil, err
	}
	return get[models.Account](ctx, s.t, "Account", resourcePath("accounts", email))
}

// List returns one page of accounts.
func (s *AccountService) List(ctx context.Context, req models.ListAccountsRequest) ([]models.Account, error) {
	return list[models.Account](ctx, s.t, "Account", "/accounts", req, itemsEnvelope)
}

// Create registers a sending account. An unset timezone is sent as UTC.
func (s *AccountService) Create(ctx context.Context, req models.AccountCreate) (*models.Account, error) {
	return send[models.Account](ctx, s.t.Post, "Account", "/accounts", req.WithDefaults())
}

// Update replaces the mutable fields of an account.
func (s *AccountService) Update(ctx context.Context, email string, req models.AccountUpdate) (*models.Account, error) {
	if err := requireID("UpdateAccount", "email", email); err != nil {
		return nil, err
	}
	return send[models.Account](ctx, s.t.Put, "Account", resourcePath("accounts", email), req)
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, email string) error {
	if err := requireID("DeleteAccount", "email", email); err != nil {
		return err
	}
	return s.t.Delete(ctx, resourcePath("accounts", email))
}
