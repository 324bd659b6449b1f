package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

func completionBody(text string) map[string]any {
	return map[string]any{
		"model": "test-model",
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": text}},
		},
	}
}

func testConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = url
	cfg.Model = "test-model"
	cfg.APIKey = "test-key"
	cfg.TimeoutMs = 2000
	return cfg
}

func TestChatClient_Complete_Success(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "hello", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("world"))
	})
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	text, err := client.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "world", text)
}

func TestChatClient_Complete_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"bad key"}`, status)
		})

		client := NewChatClient(testConfig(srv.URL), NoopObserver{})
		_, err := client.Complete(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)
		srv.Close()
	}
}

func TestChatClient_Complete_RateLimited(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"slow down"}`, http.StatusTooManyRequests)
	})
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestChatClient_Complete_ServerErrorIsUnclassified(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestChatClient_Complete_EmptyChoices(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"model": "test-model", "choices": []any{}})
	})
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestChatClient_Complete_Unavailable(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	url := srv.URL
	srv.Close() // nothing listening anymore

	client := NewChatClient(testConfig(url), NoopObserver{})
	_, err := client.Complete(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestChatClient_Complete_ReportsObserverEvents(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("ok"))
	})
	defer srv.Close()

	var events []CallEvent
	client := NewChatClient(testConfig(srv.URL), observerFunc(func(e CallEvent) {
		events = append(events, e)
	}))

	_, err := client.Complete(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, "test-model", events[0].Model)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
