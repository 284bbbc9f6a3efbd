package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
)

// DefaultLimit is the page size sent when a list request leaves Limit unset.
const DefaultLimit = 100

// Encode validates a request record and renders its JSON body. Optional
// fields are pointers or omitempty values, so anything left unset is absent
// from the payload; the client never sends an explicit null.
func Encode(req any) (json.RawMessage, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", typeName(req), err)
	}
	return body, nil
}

// Query validates a list request and renders its query string.
func Query(req any) (url.Values, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	values, err := query.Values(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s query: %w", typeName(req), err)
	}
	return values, nil
}

// Ptr returns a pointer to v, for populating update records.
func Ptr[T any](v T) *T {
	return &v
}

// Limit is a page size between 1 and 100. Zero means DefaultLimit.
type Limit int

func (l Limit) value() int {
	if l == 0 {
		return DefaultLimit
	}
	return int(l)
}

func (l Limit) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(l.value())), nil
}

// EncodeValues implements query.Encoder.
func (l Limit) EncodeValues(key string, v *url.Values) error {
	v.Set(key, strconv.Itoa(l.value()))
	return nil
}

// Ref is a UUID filter in a query string.
type Ref struct {
	uuid.UUID
}

// NewRef returns a filter reference to id.
func NewRef(id uuid.UUID) *Ref {
	return &Ref{UUID: id}
}

// ParseRef parses s as a UUID filter reference.
func ParseRef(s string) (*Ref, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return NewRef(id), nil
}

// EncodeValues implements query.Encoder.
func (r Ref) EncodeValues(key string, v *url.Values) error {
	v.Set(key, r.String())
	return nil
}
