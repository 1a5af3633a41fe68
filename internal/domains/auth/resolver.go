package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"pulse-backend/internal/config"
	"pulse-backend/pkg/logger"
)

const sessionEndpoint = "/api/auth/get-session"

// Resolver introspects sessions against the external identity service by
// forwarding the caller's cookies.
//
// Contract: any failure (network error, non-2xx, malformed body) resolves to
// an anonymous caller. A transient identity outage degrades the request to
// unauthenticated instead of failing the page; there are no retries.
type Resolver struct {
	baseURL string
	client  *http.Client
}

func NewResolver(cfg config.IdentityConfig) *Resolver {
	return &Resolver{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Resolve returns the (session, user) pair for the given Cookie header, or
// nil when the caller is anonymous. The error is always nil for upstream
// failures; those are logged and treated as "no session".
func (r *Resolver) Resolve(ctx context.Context, cookieHeader string) (*SessionData, error) {
	if cookieHeader == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+sessionEndpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cookie", cookieHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		logger.Warn("identity service unreachable, treating request as anonymous", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Info("identity service rejected session introspection", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, nil
	}

	// The endpoint returns {session, user} or the JSON literal null.
	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Warn("malformed session introspection response", err)
		return nil, nil
	}
	if data.Session == nil || data.User == nil {
		return nil, nil
	}

	return &data, nil
}
