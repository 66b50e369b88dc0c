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

package services

import (
	"context"
	"fmt"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/marketplace"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
)

// SearchService brokers marketplace searches for current and sold listings.
type SearchService interface {
	SearchListings(ctx context.Context, query string, limit int) ([]models.Listing, error)
	SearchSoldListings(ctx context.Context, keywords string, limit, page int) ([]models.Listing, error)
}

type searchService struct {
	browseClient  marketplace.BrowseClient
	findingClient marketplace.FindingClient
}

// NewSearchService creates a new search service instance
func NewSearchService(browseClient marketplace.BrowseClient, findingClient marketplace.FindingClient) SearchService {
	return &searchService{
		browseClient:  browseClient,
		findingClient: findingClient,
	}
}

func (s *searchService) SearchListings(ctx context.Context, query string, limit int) ([]models.Listing, error) {
	listings, err := s.browseClient.SearchListings(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return listings, nil
}

func (s *searchService) SearchSoldListings(ctx context.Context, keywords string, limit, page int) ([]models.Listing, error) {
	listings, err := s.findingClient.SearchSoldListings(ctx, keywords, limit, page)
	if err != nil {
		return nil, fmt.Errorf("search sold listings: %w", err)
	}
	return listings, nil
}
