package hfrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(text string) string {
	body := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": text}},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func newTestClient(serverURL string) *Client {
	c := NewClient("test-key", serverURL, "test-model")
	c.sleep = func(time.Duration) {} // sem espera real nos testes
	return c
}

func TestGenerate_Success(t *testing.T) {
	var gotReq chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(completionBody("hello")))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	text, err := client.Generate(context.Background(), "prompt", 800)

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 800, gotReq.MaxTokens)
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
	assert.InDelta(t, 0.9, gotReq.TopP, 0.001)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
}

func TestGenerate_ModelLoadingRetriesOnce(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("model is loading"))
			return
		}
		w.Write([]byte(completionBody("after retry")))
	}))
	defer server.Close()

	slept := false
	client := newTestClient(server.URL)
	client.sleep = func(d time.Duration) {
		slept = true
		assert.Equal(t, 20*time.Second, d)
	}

	text, err := client.Generate(context.Background(), "prompt", 100)

	require.NoError(t, err)
	assert.Equal(t, "after retry", text)
	assert.Equal(t, 2, calls)
	assert.True(t, slept)
}

func TestGenerate_ModelLoadingFailsAfterSingleRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt", 100)

	assert.ErrorIs(t, err, ErrModelLoading)
	assert.Equal(t, 2, calls)
}

func TestGenerate_UnauthorizedDoesNotRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt", 100)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls)
}

func TestGenerate_RateLimitedDoesNotRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt", 100)

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 1, calls)
}

func TestGenerate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Generate(context.Background(), "prompt", 100)

	assert.Error(t, err)
}

func TestClassifyError_LoadingByBody(t *testing.T) {
	err := classifyError(http.StatusInternalServerError, []byte("Model deepseek is LOADING, try later"))
	assert.ErrorIs(t, err, ErrModelLoading)
}
