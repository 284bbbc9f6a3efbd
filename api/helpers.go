package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/s0up4200/instantly/models"
)

// Envelope keys wrapping list responses, tried in order. A bare JSON array
// is accepted for every family.
var (
	itemsEnvelope     = []string{"items"}
	itemsDataEnvelope = []string{"items", "data"}
)

type sendFunc func(ctx context.Context, path string, body any) (json.RawMessage, error)

// resourcePath joins escaped segments into an absolute API path.
func resourcePath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}

// requireID rejects an empty identifier before any call is made.
func requireID(request, field, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return &models.ValidationError{
		Request:    request,
		Violations: []models.Violation{{Field: field, Rule: "required"}},
	}
}

func get[T any](ctx context.Context, t Transport, resource, path string) (*T, error) {
	data, err := t.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](resource, data)
}

func list[T any](ctx context.Context, t Transport, resource, path string, req any, envelope []string) ([]T, error) {
	var query url.Values
	if req != nil {
		var err error
		if query, err = models.Query(req); err != nil {
			return nil, err
		}
	}
	data, err := t.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return decodeList[T](resource, data, envelope)
}

// send validates and encodes req, dispatches it with call and decodes the
// single record in the response. A nil req sends no body.
func send[T any](ctx context.Context, call sendFunc, resource, path string, req any) (*T, error) {
	var body any
	if req != nil {
		encoded, err := models.Encode(req)
		if err != nil {
			return nil, err
		}
		body = encoded
	}
	data, err := call(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](resource, data)
}

func decodeOne[T any](resource string, data json.RawMessage) (*T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &models.DecodeError{Resource: resource, Reason: "empty response"}
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, asDecodeError(resource, err)
	}
	return &out, nil
}

func decodeList[T any](resource string, data json.RawMessage, envelope []string) ([]T, error) {
	items, key, err := unwrap(resource, data, envelope)
	if err != nil {
		return nil, err
	}
	records, err := models.DecodeItems[T](resource, key, items)
	if err != nil {
		return nil, asDecodeError(resource, err)
	}
	return records, nil
}

// unwrap extracts the array of a list response and the key it was found
// under, which is empty for a bare array.
func unwrap(resource string, data json.RawMessage, envelope []string) ([]json.RawMessage, string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, "", &models.DecodeError{Resource: resource, Reason: "empty response"}
	}

	var items []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, "", &models.DecodeError{Resource: resource, Reason: err.Error()}
		}
		return items, "", nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, "", &models.DecodeError{Resource: resource, Reason: "expected a JSON array or object"}
	}
	for _, key := range envelope {
		raw, ok := wrapper[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, "", &models.DecodeError{Resource: resource, Field: key, Reason: "expected a JSON array"}
		}
		return items, key, nil
	}
	return nil, "", &models.DecodeError{
		Resource: resource,
		Field:    strings.Join(envelope, "|"),
		Reason:   "missing required field",
	}
}

// asDecodeError keeps DecodeErrors as they are and attributes anything
// else to the resource.
func asDecodeError(resource string, err error) error {
	if _, ok := models.AsDecodeError(err); ok {
		return err
	}
	return &models.DecodeError{Resource: resource, Reason: err.Error()}
}
