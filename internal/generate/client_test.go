package generate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate_ExtractsGeneratedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"generated_text":"brainstorm ideas about cats"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-123")
	out, err := c.Generate("ideas about cats")
	require.NoError(t, err)
	require.Equal(t, "brainstorm ideas about cats", out)
}

func TestGenerate_UpstreamErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Model distilgpt2 is currently loading"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	out, err := c.Generate("hello")
	require.NoError(t, err)
	require.Equal(t, "Model distilgpt2 is currently loading", out)
}

func TestGenerate_UnknownShapePlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	out, err := c.Generate("hello")
	require.NoError(t, err)
	require.Equal(t, "No response from AI", out)
}

func TestGenerate_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Generate("hello")
	require.ErrorIs(t, err, ErrGeneration)
}

func TestGenerate_TransportError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Generate("hello")
	require.ErrorIs(t, err, ErrGeneration)
}
