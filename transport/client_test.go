package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{BaseURL: server.URL + "/api/v2/", APIKey: "test-key"}, zerolog.Nop(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{
			name: "defaults applied",
			cfg:  Config{APIKey: "test-key"},
		},
		{
			name:    "missing API key",
			cfg:     Config{BaseURL: "http://localhost"},
			wantErr: true,
			errMsg:  "API key is required",
		},
		{
			name:    "relative base URL",
			cfg:     Config{BaseURL: "api/v2", APIKey: "test-key"},
			wantErr: true,
			errMsg:  "must be absolute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.cfg, zerolog.Nop())
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultBaseURL, client.BaseURL())
			assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		client, err := New(Config{APIKey: "k"}, zerolog.Nop(), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := New(Config{APIKey: "k"}, zerolog.Nop(), WithHTTPClient(custom))
		require.NoError(t, err)
		assert.Same(t, custom, client.httpClient)
	})

	t.Run("with user agent", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "tests/1.0", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte(`{}`))
		}, WithUserAgent("tests/1.0"))
		_, err := client.Get(context.Background(), "/workspaces/current", nil)
		require.NoError(t, err)
	})
}

func TestClientHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/api/v2/campaigns", r.URL.Path)
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	body, err := client.Get(context.Background(), "/campaigns", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[]}`, string(body))
}

func TestClientVerbs(t *testing.T) {
	type call struct {
		method string
		query  url.Values
		body   string
	}
	var got call

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		got = call{method: r.Method, query: r.URL.Query(), body: string(raw)}
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"id":"x"}`))
	})
	ctx := context.Background()

	_, err := client.Get(ctx, "/leads", url.Values{"limit": {"5"}})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "5", got.query.Get("limit"))
	assert.Empty(t, got.body)

	_, err = client.Post(ctx, "/leads", map[string]string{"email": "a@b.co"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.method)
	assert.JSONEq(t, `{"email":"a@b.co"}`, got.body)

	_, err = client.Put(ctx, "/campaigns/1", json.RawMessage(`{"name":"n"}`))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, `{"name":"n"}`, got.body)

	_, err = client.Patch(ctx, "/leads/1", json.RawMessage(`{"reason":"Updated"}`))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, `{"reason":"Updated"}`, got.body)

	_, err = client.Post(ctx, "/campaigns/1/activate", nil)
	require.NoError(t, err)
	assert.Empty(t, got.body)

	require.NoError(t, client.Delete(ctx, "/leads/1"))
	assert.Equal(t, http.MethodDelete, got.method)
}

func TestClientHTTPError(t *testing.T) {
	tests := []struct {
		status       int
		notFound     bool
		unauthorized bool
		rateLimited  bool
	}{
		{http.StatusNotFound, true, false, false},
		{http.StatusUnauthorized, false, true, false},
		{http.StatusForbidden, false, true, false},
		{http.StatusTooManyRequests, false, false, true},
		{http.StatusInternalServerError, false, false, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			})

			_, err := client.Get(context.Background(), "/leads/missing", nil)
			require.Error(t, err)

			httpErr, ok := AsHTTPError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, `{"error":"nope"}`, httpErr.Body)
			assert.Equal(t, "/leads/missing", httpErr.Path)
			assert.Equal(t, tt.notFound, httpErr.IsNotFound())
			assert.Equal(t, tt.unauthorized, httpErr.IsUnauthorized())
			assert.Equal(t, tt.rateLimited, httpErr.IsRateLimited())
			assert.NotContains(t, httpErr.Error(), "test-key")
		})
	}
}

func TestClientRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, err := New(Config{BaseURL: baseURL, APIKey: "k"}, zerolog.Nop())
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/accounts", nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	_, isHTTP := AsHTTPError(err)
	assert.False(t, isHTTP)
	assert.Equal(t, http.MethodGet, reqErr.Method)
}

func TestClientTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/accounts", nil)
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.True(t, reqErr.Timeout())
}

func TestClientClose(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Get(context.Background(), "/test", nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClientConcurrentCalls(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"path":%q}`, r.URL.Path)
	})

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(8)
	for i := range 32 {
		g.Go(func() error {
			path := fmt.Sprintf("/leads/%d", i)
			body, err := client.Get(ctx, path, nil)
			if err != nil {
				return err
			}
			var resp struct{ Path string }
			if err := json.Unmarshal(body, &resp); err != nil {
				return err
			}
			if resp.Path != "/api/v2"+path {
				return fmt.Errorf("got %s for %s", resp.Path, path)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSecretRedaction(t *testing.T) {
	s := Secret("super-secret")

	assert.Equal(t, "super-secret", s.Reveal())
	assert.Equal(t, redacted, s.String())
	assert.Equal(t, redacted, fmt.Sprintf("%v", s))
	assert.Equal(t, redacted, fmt.Sprintf("%#v", s))

	cfg := Config{APIKey: s}
	assert.NotContains(t, fmt.Sprintf("%+v", cfg), "super-secret")

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret")
}
