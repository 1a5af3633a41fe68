package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulse-backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolverAgainst(t *testing.T, handler http.HandlerFunc) (*Resolver, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	resolver := NewResolver(config.IdentityConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	})

	return resolver, server
}

func TestResolve_ValidSession(t *testing.T) {
	userID := uuid.New()

	resolver, _ := newResolverAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/get-session", r.URL.Path)
		assert.Equal(t, "session=abc", r.Header.Get("Cookie"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"session": {"id": "sess-1", "userId": %q, "token": "tok"},
			"user": {"id": %q, "username": "alice", "displayName": "Alice"}
		}`, userID, userID)
	})

	data, err := resolver.Resolve(context.Background(), "session=abc")
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, userID, data.User.ID)
	assert.Equal(t, "alice", data.User.Username)
}

func TestResolve_NoCookieSkipsUpstream(t *testing.T) {
	called := false
	resolver, _ := newResolverAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	data, err := resolver.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.False(t, called)
}

func TestResolve_NullBodyMeansAnonymous(t *testing.T) {
	resolver, _ := newResolverAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `null`)
	})

	data, err := resolver.Resolve(context.Background(), "session=expired")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestResolve_UpstreamErrorDegradesToAnonymous(t *testing.T) {
	resolver, _ := newResolverAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	data, err := resolver.Resolve(context.Background(), "session=abc")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestResolve_UnreachableIdentityDegradesToAnonymous(t *testing.T) {
	resolver, server := newResolverAgainst(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	data, err := resolver.Resolve(context.Background(), "session=abc")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestResolve_MalformedBodyDegradesToAnonymous(t *testing.T) {
	attempts := 0
	resolver, _ := newResolverAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		fmt.Fprint(w, `{"session": `)
	})

	data, err := resolver.Resolve(context.Background(), "session=abc")
	require.NoError(t, err)
	assert.Nil(t, data)

	// One upstream call per Resolve, failures are not retried.
	assert.Equal(t, 1, attempts)
}
