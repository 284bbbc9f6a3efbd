package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
)

type call struct {
	Method string
	Path   string
	Query  url.Values
	Body   json.RawMessage
}

// mockTransport records every call and answers with a canned response.
type mockTransport struct {
	mu       sync.Mutex
	calls    []call
	response json.RawMessage
	err      error
}

func newMock(response string) *mockTransport {
	return &mockTransport{response: json.RawMessage(response)}
}

func (m *mockTransport) record(method, path string, query url.Values, body any) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := call{Method: method, Path: path, Query: query}
	if body != nil {
		raw, ok := body.(json.RawMessage)
		if !ok {
			raw, _ = json.Marshal(body)
		}
		c.Body = raw
	}
	m.calls = append(m.calls, c)

	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockTransport) Get(_ context.Context, path string, query url.Values) (json.RawMessage, error) {
	return m.record(http.MethodGet, path, query, nil)
}

func (m *mockTransport) Post(_ context.Context, path string, body any) (json.RawMessage, error) {
	return m.record(http.MethodPost, path, nil, body)
}

func (m *mockTransport) Put(_ context.Context, path string, body any) (json.RawMessage, error) {
	return m.record(http.MethodPut, path, nil, body)
}

func (m *mockTransport) Patch(_ context.Context, path string, body any) (json.RawMessage, error) {
	return m.record(http.MethodPatch, path, nil, body)
}

func (m *mockTransport) Delete(_ context.Context, path string) error {
	_, err := m.record(http.MethodDelete, path, nil, nil)
	return err
}

func (m *mockTransport) last() call {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return call{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockTransport) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
