// Package models defines the records exchanged with the Instantly.ai API and
// the rules that convert them to and from JSON.
//
// Response records (Lead, Campaign, ...) decode through Decode: required
// fields must be present, identifiers and timestamps must parse, and unknown
// keys are kept in Extra. Enumerated values the client does not recognize
// decode unchanged.
//
// Request records (LeadCreateRequest, BlockListEntryUpdate, ...) encode
// through Encode or Query, which validate them first and fail with a
// ValidationError before anything is sent. Update records use pointer
// fields; a nil pointer is never written to the payload.
//
//	req := models.BlockListEntryUpdate{Reason: models.Ptr("Updated")}
//	body, err := models.Encode(req) // {"reason":"Updated"}
package models
