// Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package marketplace

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/requests"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/metrics"
)

// TokenProvider manages OAuth2 client credentials tokens with caching
type TokenProvider interface {
	// GetToken returns a valid access token, fetching a new one if needed
	GetToken(ctx context.Context) (string, error)
}

// AuthError indicates the upstream token endpoint could not issue a
// credential: unreachable, rejected credentials, or a malformed response.
// Payload carries the upstream error body when one was returned.
type AuthError struct {
	Payload string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("failed to fetch token: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type tokenProvider struct {
	config     config.MarketplaceConfig
	httpClient requests.HttpClient
	now        func() time.Time

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// expiryMargin is subtracted from the upstream-issued lifetime when the expiry
// instant is stored, so a token is refreshed well before the upstream actually
// invalidates it. This guards against clock skew and in-flight request latency
// that could otherwise get a request rejected with a token that was valid when
// read from the cache.
const expiryMargin = 300 * time.Second

// NewTokenProvider creates a new token provider with the given configuration
func NewTokenProvider(cfg config.MarketplaceConfig) TokenProvider {
	return &tokenProvider{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		now: time.Now,
	}
}

// GetToken returns a valid access token, fetching a new one if the cached
// token is expired. Concurrent calls during a cache miss collapse into a
// single upstream fetch: the first caller to take the write lock fetches,
// the rest block on the lock and are answered by the double check.
func (p *tokenProvider) GetToken(ctx context.Context) (string, error) {
	// First, try to get cached token with read lock
	p.mu.RLock()
	if p.isTokenValid() {
		token := p.accessToken
		p.mu.RUnlock()
		metrics.TokenCacheHit()
		return token, nil
	}
	slog.Debug("marketplace: cached access token is expired or missing")
	p.mu.RUnlock()

	// Token is expired or not present, acquire write lock and fetch new token
	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine might have refreshed it)
	if p.isTokenValid() {
		metrics.TokenCacheHit()
		return p.accessToken, nil
	}

	// Fetch new token. On failure the cached pair is left untouched so the
	// next call retries from scratch.
	metrics.TokenFetched()
	token, expiresIn, err := p.fetchToken(ctx)
	if err != nil {
		metrics.TokenFetchFailed()
		authErr := &AuthError{Err: err}
		var httpErr *requests.HttpError
		if errors.As(err, &httpErr) {
			authErr.Payload = httpErr.Body
		}
		return "", authErr
	}

	// Cache the token with the margin-adjusted expiry
	p.accessToken = token
	p.expiresAt = p.now().Add(time.Duration(expiresIn)*time.Second - expiryMargin)

	slog.Info("marketplace: fetched new access token",
		"expires_at", p.expiresAt.Format(time.RFC3339))

	return p.accessToken, nil
}

// isTokenValid checks if the cached token is still valid (not expired)
// Must be called with at least a read lock held
func (p *tokenProvider) isTokenValid() bool {
	if p.accessToken == "" {
		return false
	}
	return p.now().Before(p.expiresAt)
}

// fetchToken fetches a new token from the token endpoint using client
// credentials: identity and secret are sent as a Basic authorization header,
// grant type and scope as a form body.
func (p *tokenProvider) fetchToken(ctx context.Context) (string, int64, error) {
	req := &requests.HttpRequest{
		Name:   "marketplace.fetchToken",
		URL:    p.config.TokenURL,
		Method: http.MethodPost,
	}
	req.SetHeader("Authorization", BasicAuthHeader(p.config.ClientID, p.config.ClientSecret))
	req.SetFormData(map[string]string{
		"grant_type": "client_credentials",
		"scope":      p.config.Scope,
	})

	var tokenResp tokenResponse
	if err := requests.SendRequest(ctx, p.httpClient, req).ScanResponse(&tokenResp, http.StatusOK); err != nil {
		return "", 0, fmt.Errorf("marketplace.fetchToken: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return "", 0, fmt.Errorf("empty access token in response")
	}
	if tokenResp.ExpiresIn <= 0 {
		return "", 0, fmt.Errorf("invalid expires_in value: %d (must be positive)", tokenResp.ExpiresIn)
	}

	return tokenResp.AccessToken, tokenResp.ExpiresIn, nil
}

// BasicAuthHeader encodes the identity:secret pair the way the token endpoint
// expects it: colon-joined, base64-encoded, prefixed with "Basic ".
func BasicAuthHeader(clientID, clientSecret string) string {
	credentials := base64.StdEncoding.EncodeToString([]byte(clientID + ":" + clientSecret))
	return "Basic " + credentials
}
