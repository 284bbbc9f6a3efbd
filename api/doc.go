// Package api exposes the Instantly v2 resources as typed facades.
//
// Each facade validates its request record, encodes it, performs exactly
// one call on the Transport and decodes the response into models records.
// List methods unwrap the envelope their resource family uses and return
// records in server order.
//
// # Usage
//
//	tc, err := transport.New(transport.Config{APIKey: transport.Secret(key)}, logger)
//	if err != nil {
//		return err
//	}
//	defer tc.Close()
//
//	client := api.New(tc)
//	lead, err := client.Leads.Create(ctx, models.LeadCreateRequest{
//		Email:     "new@example.com",
//		FirstName: "Jane",
//	})
//
// # Errors
//
// Transport errors such as *transport.HTTPError are returned unchanged.
// Invalid requests fail with *models.ValidationError before any call is
// made, and responses that cannot be mapped fail with *models.DecodeError.
package api
