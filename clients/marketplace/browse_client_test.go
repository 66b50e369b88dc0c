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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/requests"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
)

type staticTokenProvider struct {
	token string
	err   error
}

func (p *staticTokenProvider) GetToken(ctx context.Context) (string, error) {
	return p.token, p.err
}

const itemSummarySearchBody = `{
	"total": 2,
	"itemSummaries": [
		{
			"title": "Vintage Camera",
			"condition": "Used",
			"itemWebUrl": "https://example.com/itm/1",
			"price": {"value": "49.99", "currency": "USD"},
			"image": {"imageUrl": "https://example.com/img/1.jpg"},
			"seller": {"username": "camera-seller"},
			"shippingOptions": [{"shippingCost": {"value": "5.00", "currency": "USD"}}],
			"itemLocation": {"city": "Portland", "stateOrProvince": "OR", "country": "US"}
		},
		{
			"title": "Camera Strap",
			"condition": "New",
			"itemWebUrl": "https://example.com/itm/2",
			"price": {"value": "9.99", "currency": "USD"},
			"itemLocation": {"country": "US"}
		}
	]
}`

func TestSearchListings(t *testing.T) {
	var captured *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(itemSummarySearchBody))
	}))
	t.Cleanup(server.Close)

	client := &browseClient{
		config: config.MarketplaceConfig{
			BaseURL:       server.URL,
			MarketplaceID: "EBAY_US",
		},
		httpClient:    server.Client(),
		tokenProvider: &staticTokenProvider{token: "tok-1"},
	}

	listings, err := client.SearchListings(context.Background(), "vintage camera", 10)
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "/buy/browse/v1/item_summary/search", captured.URL.Path)
	assert.Equal(t, "vintage camera", captured.URL.Query().Get("q"))
	assert.Equal(t, "10", captured.URL.Query().Get("limit"))
	assert.Equal(t, "Bearer tok-1", captured.Header.Get("Authorization"))
	assert.Equal(t, "EBAY_US", captured.Header.Get("X-EBAY-C-MARKETPLACE-ID"))

	require.Len(t, listings, 2)
	assert.Equal(t, "Vintage Camera", listings[0].Title)
	assert.Equal(t, "49.99", listings[0].Price)
	assert.Equal(t, "USD", listings[0].Currency)
	assert.Equal(t, "Used", listings[0].Condition)
	assert.Equal(t, "https://example.com/itm/1", listings[0].ItemURL)
	assert.Equal(t, "https://example.com/img/1.jpg", listings[0].ImageURL)
	assert.Equal(t, "camera-seller", listings[0].Seller)
	assert.Equal(t, "5.00", listings[0].ShippingCost)
	assert.Equal(t, "Portland, OR, US", listings[0].Location)

	// Second item has no shipping options or seller
	assert.Equal(t, "Camera Strap", listings[1].Title)
	assert.Empty(t, listings[1].ShippingCost)
	assert.Empty(t, listings[1].Seller)
	assert.Equal(t, "US", listings[1].Location)
}

func TestSearchListingsLimitClamping(t *testing.T) {
	testCases := []struct {
		name          string
		limit         int
		expectedLimit string
	}{
		{name: "zero uses default", limit: 0, expectedLimit: "20"},
		{name: "negative uses default", limit: -5, expectedLimit: "20"},
		{name: "over max is capped", limit: 500, expectedLimit: "100"},
		{name: "in range passes through", limit: 42, expectedLimit: "42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotLimit string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotLimit = r.URL.Query().Get("limit")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"total":0,"itemSummaries":[]}`))
			}))
			t.Cleanup(server.Close)

			client := &browseClient{
				config:        config.MarketplaceConfig{BaseURL: server.URL},
				httpClient:    server.Client(),
				tokenProvider: &staticTokenProvider{token: "tok-1"},
			}

			listings, err := client.SearchListings(context.Background(), "camera", tc.limit)
			require.NoError(t, err)
			assert.Empty(t, listings)
			assert.Equal(t, tc.expectedLimit, gotLimit)
		})
	}
}

func TestSearchListingsTokenFailure(t *testing.T) {
	authErr := &AuthError{Err: errors.New("invalid_client")}
	client := &browseClient{
		config:        config.MarketplaceConfig{BaseURL: "http://unused"},
		httpClient:    http.DefaultClient,
		tokenProvider: &staticTokenProvider{err: authErr},
	}

	_, err := client.SearchListings(context.Background(), "camera", 10)
	require.Error(t, err)
	var gotAuthErr *AuthError
	assert.ErrorAs(t, err, &gotAuthErr)
}

func TestSearchListingsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"invalid query"}]}`))
	}))
	t.Cleanup(server.Close)

	client := &browseClient{
		config:        config.MarketplaceConfig{BaseURL: server.URL},
		httpClient:    server.Client(),
		tokenProvider: &staticTokenProvider{token: "tok-1"},
	}

	_, err := client.SearchListings(context.Background(), "camera", 10)
	require.Error(t, err)
	var httpErr *requests.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "invalid query")
}
