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

func TestOpenAI_Complete(t *testing.T) {
	var got chatReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  Water early.  "}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAI(srv.Client(), srv.URL+"/", "sk-test", "gpt-4o-mini")
	out, err := c.Complete(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Water early.", out)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, MaxTokens, got.MaxCompletionTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[0].Content)
}

func TestOpenAI_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "provider error", status: http.StatusTooManyRequests, body: `{"error":"rate limited"}`},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "garbage", status: http.StatusOK, body: `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOpenAI(srv.Client(), srv.URL, "k", "m").Complete(context.Background(), "p")
			assert.Error(t, err)
		})
	}
}

func TestOpenAI_EmptyContentIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
	}))
	defer srv.Close()

	out, err := NewOpenAI(srv.Client(), srv.URL, "k", "m").Complete(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMock_Complete(t *testing.T) {
	out, err := NewMock().Complete(context.Background(), "Context: dry spell before harvest")
	require.NoError(t, err)
	assert.Contains(t, out, "Irrigate")
	assert.Contains(t, out, "harvest")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewMock().Complete(ctx, "p")
	assert.ErrorIs(t, err, context.Canceled)
}
