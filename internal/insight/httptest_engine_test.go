package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstone-app/inkstone/internal/ai"
)

// Covers the whole path from engine through the real HTTP client: prompt
// goes out as a chat completion request, model text comes back wrapped
// in the completion envelope, and the parsed insight lands in the store.
func TestGenerateInsight_OverHTTP(t *testing.T) {
	var gotPrompt string

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/chat/completions", r.URL.Path)

			var req struct {
				Messages []struct {
					Content string `json:"content"`
				} `json:"messages"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 1)
			gotPrompt = req.Messages[0].Content

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"model": "gpt-4o-mini",
				"choices": []map[string]any{
					{"message": map[string]string{
						"role":    "assistant",
						"content": "```json\n" + goodResponse + "\n```",
					}},
				},
			})
		}))
	}()
	defer srv.Close()

	cfg := ai.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.APIKey = "test-key"
	client := ai.NewChatClient(cfg, ai.NoopObserver{})

	eng, conn := newTestEngine(t, client)
	seedWeek(t, conn)

	ins, err := eng.GenerateInsight(context.Background(), "u1", "2024-03-04")
	require.NoError(t, err)

	assert.Contains(t, gotPrompt, "Week: 2024-03-04 to 2024-03-10")
	assert.Contains(t, gotPrompt, "JOURNALS THIS WEEK (3):")
	assert.True(t, strings.HasSuffix(gotPrompt, outputContract))

	assert.Equal(t, "take a rest day", ins.Suggestion)
	require.Len(t, ins.GoalSummaries, 1)
	assert.Equal(t, "Run 3x per week", ins.GoalSummaries[0].GoalTitle)
}
