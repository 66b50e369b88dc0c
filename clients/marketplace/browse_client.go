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
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/requests"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/metrics"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
)

const (
	// DefaultSearchLimit is used when the caller does not specify one
	DefaultSearchLimit = 20
	// MaxSearchLimit caps a single search request
	MaxSearchLimit = 100
)

//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/browse_client_fake.go . BrowseClient:BrowseClientMock

// BrowseClient searches current marketplace listings using a bearer token
// obtained from the TokenProvider.
type BrowseClient interface {
	SearchListings(ctx context.Context, query string, limit int) ([]models.Listing, error)
}

type browseClient struct {
	config        config.MarketplaceConfig
	httpClient    requests.HttpClient
	tokenProvider TokenProvider
}

// NewBrowseClient creates a browse client sharing the given token provider so
// all outbound marketplace calls reuse one cached credential.
func NewBrowseClient(cfg config.MarketplaceConfig, tokenProvider TokenProvider) BrowseClient {
	return &browseClient{
		config:        cfg,
		httpClient:    requests.NewRetryableHTTPClient(&http.Client{}),
		tokenProvider: tokenProvider,
	}
}

type itemSummarySearchResponse struct {
	Total         int           `json:"total"`
	ItemSummaries []itemSummary `json:"itemSummaries"`
}

type itemSummary struct {
	Title     string `json:"title"`
	Condition string `json:"condition"`
	ItemWebURL string `json:"itemWebUrl"`
	Price     struct {
		Value    string `json:"value"`
		Currency string `json:"currency"`
	} `json:"price"`
	Image struct {
		ImageURL string `json:"imageUrl"`
	} `json:"image"`
	Seller struct {
		Username string `json:"username"`
	} `json:"seller"`
	ShippingOptions []struct {
		ShippingCost struct {
			Value    string `json:"value"`
			Currency string `json:"currency"`
		} `json:"shippingCost"`
	} `json:"shippingOptions"`
	ItemLocation struct {
		City            string `json:"city"`
		StateOrProvince string `json:"stateOrProvince"`
		Country         string `json:"country"`
	} `json:"itemLocation"`
}

// SearchListings runs a free-text search against the Browse API and flattens
// the item summaries into the normalized listing shape.
func (c *browseClient) SearchListings(ctx context.Context, query string, limit int) ([]models.Listing, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("marketplace.SearchListings: failed to get token: %w", err)
	}

	req := &requests.HttpRequest{
		Name:   "marketplace.SearchListings",
		URL:    fmt.Sprintf("%s/buy/browse/v1/item_summary/search", c.config.BaseURL),
		Method: http.MethodGet,
	}
	req.SetQueryParam("q", query)
	req.SetQueryParam("limit", strconv.Itoa(limit))
	req.SetHeader("Accept", "application/json")
	req.SetHeader("Authorization", "Bearer "+token)
	req.SetHeader("X-EBAY-C-MARKETPLACE-ID", c.config.MarketplaceID)

	var searchResp itemSummarySearchResponse
	err = requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&searchResp, http.StatusOK)
	metrics.UpstreamRequest("marketplace_browse", err)
	if err != nil {
		return nil, fmt.Errorf("marketplace.SearchListings: %w", err)
	}

	listings := make([]models.Listing, 0, len(searchResp.ItemSummaries))
	for _, summary := range searchResp.ItemSummaries {
		listing := models.Listing{
			Title:     summary.Title,
			Price:     summary.Price.Value,
			Currency:  summary.Price.Currency,
			Condition: summary.Condition,
			ItemURL:   summary.ItemWebURL,
			ImageURL:  summary.Image.ImageURL,
			Seller:    summary.Seller.Username,
			Location:  joinLocation(summary.ItemLocation.City, summary.ItemLocation.StateOrProvince, summary.ItemLocation.Country),
		}
		if len(summary.ShippingOptions) > 0 {
			listing.ShippingCost = summary.ShippingOptions[0].ShippingCost.Value
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func joinLocation(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
