package tutor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyabandhan/backend/config"
)

func newTestClient(url string) *Client {
	return NewClient(&config.Config{
		CompletionURL:       url,
		CompletionModel:     "test-model",
		CompletionMaxTokens: 600,
	})
}

func TestAskForwardsQuestionAndKey(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"x equals 2"}}]}`))
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Ask(context.Background(), "sk-demo", "Solve x+2=4")
	require.NoError(t, err)
	assert.Equal(t, "x equals 2", answer)

	assert.Equal(t, "Bearer sk-demo", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, float64(600), gotBody["max_tokens"])
	msgs := gotBody["messages"].([]interface{})
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]interface{})
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "Solve x+2=4", msg["content"])
}

func TestAskRejectsEmptyInputBeforeRequest(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	_, err := client.Ask(context.Background(), "sk-demo", "")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	_, err = client.Ask(context.Background(), "", "a question")
	assert.ErrorIs(t, err, ErrMissingKey)

	assert.Zero(t, calls, "no outbound request may be issued for invalid input")
}

func TestAskDumpsBodyWhenAnswerFieldMissing(t *testing.T) {
	body := `{"error":{"message":"quota exceeded"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	answer, err := newTestClient(srv.URL).Ask(context.Background(), "sk-demo", "hi")
	require.NoError(t, err)
	assert.Equal(t, body, answer)
}

func TestAskReportsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Ask(context.Background(), "sk-bad", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
