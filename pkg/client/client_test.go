package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureSendsHeaders(t *testing.T) {
	var gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	Configure(srv.URL, 5*time.Second)
	SetAuthToken("abc")

	resp, err := GetClient().R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, UserAgent, gotAgent)
}

func TestClearAuthToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	Configure(srv.URL, 5*time.Second)
	SetAuthToken("abc")
	ClearAuthToken()

	_, err := GetClient().R().Get("/ping")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, srv.URL, GetClient().BaseURL)
	assert.Equal(t, 5*time.Second, GetClient().GetClient().Timeout)
}
