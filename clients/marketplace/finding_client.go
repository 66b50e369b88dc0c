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

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/requests"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/metrics"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
)

//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/finding_client_fake.go . FindingClient:FindingClientMock

// FindingClient searches completed/sold listings through the legacy Finding
// API. It authenticates with an application id query parameter, not a token.
type FindingClient interface {
	SearchSoldListings(ctx context.Context, keywords string, limit, page int) ([]models.Listing, error)
}

type findingClient struct {
	config     config.MarketplaceConfig
	httpClient requests.HttpClient
}

// NewFindingClient creates a client for the legacy Finding API.
func NewFindingClient(cfg config.MarketplaceConfig) FindingClient {
	return &findingClient{
		config:     cfg,
		httpClient: requests.NewRetryableHTTPClient(&http.Client{}),
	}
}

// The legacy API wraps every field in a single-element array. These types
// mirror that wire shape; first() unwraps it.
type findCompletedItemsEnvelope struct {
	FindCompletedItemsResponse []findCompletedItemsResponse `json:"findCompletedItemsResponse"`
}

type findCompletedItemsResponse struct {
	Ack          []string       `json:"ack"`
	SearchResult []searchResult `json:"searchResult"`
}

type searchResult struct {
	Items []findingItem `json:"item"`
}

type findingItem struct {
	Title         []string `json:"title"`
	ViewItemURL   []string `json:"viewItemURL"`
	GalleryURL    []string `json:"galleryURL"`
	Location      []string `json:"location"`
	SellingStatus []struct {
		CurrentPrice []struct {
			CurrencyID string `json:"@currencyId"`
			Value      string `json:"__value__"`
		} `json:"currentPrice"`
	} `json:"sellingStatus"`
	ListingInfo []struct {
		EndTime []string `json:"endTime"`
	} `json:"listingInfo"`
	Condition []struct {
		ConditionDisplayName []string `json:"conditionDisplayName"`
	} `json:"condition"`
	ShippingInfo []struct {
		ShippingServiceCost []struct {
			CurrencyID string `json:"@currencyId"`
			Value      string `json:"__value__"`
		} `json:"shippingServiceCost"`
	} `json:"shippingInfo"`
	SellerInfo []struct {
		SellerUserName []string `json:"sellerUserName"`
	} `json:"sellerInfo"`
}

// SearchSoldListings queries completed items filtered to sold ones and
// flattens the array-wrapped response into the normalized listing shape.
func (c *findingClient) SearchSoldListings(ctx context.Context, keywords string, limit, page int) ([]models.Listing, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	if page <= 0 {
		page = 1
	}

	req := &requests.HttpRequest{
		Name:   "marketplace.SearchSoldListings",
		URL:    c.config.FindingURL,
		Method: http.MethodGet,
	}
	req.SetQueryParam("OPERATION-NAME", "findCompletedItems")
	req.SetQueryParam("SERVICE-VERSION", "1.13.0")
	req.SetQueryParam("SECURITY-APPNAME", c.config.AppID)
	req.SetQueryParam("RESPONSE-DATA-FORMAT", "JSON")
	req.SetQueryParam("REST-PAYLOAD", "true")
	req.SetQueryParam("keywords", keywords)
	req.SetQueryParam("paginationInput.entriesPerPage", strconv.Itoa(limit))
	req.SetQueryParam("paginationInput.pageNumber", strconv.Itoa(page))
	req.SetQueryParam("itemFilter(0).name", "SoldItemsOnly")
	req.SetQueryParam("itemFilter(0).value", "true")

	var envelope findCompletedItemsEnvelope
	err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&envelope, http.StatusOK)
	metrics.UpstreamRequest("marketplace_finding", err)
	if err != nil {
		return nil, fmt.Errorf("marketplace.SearchSoldListings: %w", err)
	}

	if len(envelope.FindCompletedItemsResponse) == 0 {
		return nil, fmt.Errorf("marketplace.SearchSoldListings: empty response envelope")
	}
	response := envelope.FindCompletedItemsResponse[0]
	if first(response.Ack) != "Success" {
		return nil, fmt.Errorf("marketplace.SearchSoldListings: upstream ack %q", first(response.Ack))
	}
	if len(response.SearchResult) == 0 {
		return []models.Listing{}, nil
	}

	items := response.SearchResult[0].Items
	listings := make([]models.Listing, 0, len(items))
	for _, item := range items {
		listing := models.Listing{
			Title:    first(item.Title),
			ItemURL:  first(item.ViewItemURL),
			ImageURL: first(item.GalleryURL),
			Location: first(item.Location),
		}
		if len(item.SellingStatus) > 0 && len(item.SellingStatus[0].CurrentPrice) > 0 {
			listing.Price = item.SellingStatus[0].CurrentPrice[0].Value
			listing.Currency = item.SellingStatus[0].CurrentPrice[0].CurrencyID
		}
		if len(item.ListingInfo) > 0 {
			listing.SoldDate = first(item.ListingInfo[0].EndTime)
		}
		if len(item.Condition) > 0 {
			listing.Condition = first(item.Condition[0].ConditionDisplayName)
		}
		if len(item.ShippingInfo) > 0 && len(item.ShippingInfo[0].ShippingServiceCost) > 0 {
			listing.ShippingCost = item.ShippingInfo[0].ShippingServiceCost[0].Value
		}
		if len(item.SellerInfo) > 0 {
			listing.Seller = first(item.SellerInfo[0].SellerUserName)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
