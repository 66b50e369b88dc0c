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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
)

const findCompletedItemsBody = `{
	"findCompletedItemsResponse": [{
		"ack": ["Success"],
		"searchResult": [{
			"item": [
				{
					"title": ["Vintage Camera"],
					"viewItemURL": ["https://example.com/itm/1"],
					"galleryURL": ["https://example.com/img/1.jpg"],
					"location": ["Portland,OR,USA"],
					"sellingStatus": [{"currentPrice": [{"@currencyId": "USD", "__value__": "45.00"}]}],
					"listingInfo": [{"endTime": ["2026-08-01T12:00:00.000Z"]}],
					"condition": [{"conditionDisplayName": ["Used"]}],
					"shippingInfo": [{"shippingServiceCost": [{"@currencyId": "USD", "__value__": "4.50"}]}],
					"sellerInfo": [{"sellerUserName": ["camera-seller"]}]
				},
				{
					"title": ["Camera Strap"],
					"viewItemURL": ["https://example.com/itm/2"]
				}
			]
		}]
	}]
}`

func newFindingTestClient(t *testing.T, handler http.HandlerFunc) *findingClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &findingClient{
		config: config.MarketplaceConfig{
			FindingURL: server.URL,
			AppID:      "app-id-1",
		},
		httpClient: server.Client(),
	}
}

func TestSearchSoldListings(t *testing.T) {
	var captured *http.Request
	client := newFindingTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(findCompletedItemsBody))
	})

	listings, err := client.SearchSoldListings(context.Background(), "vintage camera", 10, 2)
	require.NoError(t, err)

	require.NotNil(t, captured)
	query := captured.URL.Query()
	assert.Equal(t, "findCompletedItems", query.Get("OPERATION-NAME"))
	assert.Equal(t, "app-id-1", query.Get("SECURITY-APPNAME"))
	assert.Equal(t, "JSON", query.Get("RESPONSE-DATA-FORMAT"))
	assert.Equal(t, "vintage camera", query.Get("keywords"))
	assert.Equal(t, "10", query.Get("paginationInput.entriesPerPage"))
	assert.Equal(t, "2", query.Get("paginationInput.pageNumber"))
	assert.Equal(t, "SoldItemsOnly", query.Get("itemFilter(0).name"))
	assert.Equal(t, "true", query.Get("itemFilter(0).value"))

	require.Len(t, listings, 2)
	assert.Equal(t, "Vintage Camera", listings[0].Title)
	assert.Equal(t, "45.00", listings[0].Price)
	assert.Equal(t, "USD", listings[0].Currency)
	assert.Equal(t, "Used", listings[0].Condition)
	assert.Equal(t, "https://example.com/itm/1", listings[0].ItemURL)
	assert.Equal(t, "https://example.com/img/1.jpg", listings[0].ImageURL)
	assert.Equal(t, "camera-seller", listings[0].Seller)
	assert.Equal(t, "4.50", listings[0].ShippingCost)
	assert.Equal(t, "Portland,OR,USA", listings[0].Location)
	assert.Equal(t, "2026-08-01T12:00:00.000Z", listings[0].SoldDate)

	// Second item omits every optional array, the flattening must not panic
	assert.Equal(t, "Camera Strap", listings[1].Title)
	assert.Empty(t, listings[1].Price)
	assert.Empty(t, listings[1].SoldDate)
}

func TestSearchSoldListingsEmptyResult(t *testing.T) {
	client := newFindingTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"findCompletedItemsResponse":[{"ack":["Success"]}]}`))
	})

	listings, err := client.SearchSoldListings(context.Background(), "no matches", 10, 1)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestSearchSoldListingsFailureAck(t *testing.T) {
	client := newFindingTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"findCompletedItemsResponse":[{"ack":["Failure"]}]}`))
	})

	_, err := client.SearchSoldListings(context.Background(), "camera", 10, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `ack "Failure"`)
}

func TestSearchSoldListingsPaginationDefaults(t *testing.T) {
	var query map[string][]string
	client := newFindingTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"findCompletedItemsResponse":[{"ack":["Success"]}]}`))
	})

	_, err := client.SearchSoldListings(context.Background(), "camera", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"20"}, query["paginationInput.entriesPerPage"])
	assert.Equal(t, []string{"1"}, query["paginationInput.pageNumber"])
}
