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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/clientmocks"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
)

func TestSearchListingsDelegatesToBrowse(t *testing.T) {
	browseMock := &clientmocks.BrowseClientMock{
		SearchListingsFunc: func(ctx context.Context, query string, limit int) ([]models.Listing, error) {
			return []models.Listing{{Title: "Vintage Camera"}}, nil
		},
	}
	service := NewSearchService(browseMock, &clientmocks.FindingClientMock{})

	listings, err := service.SearchListings(context.Background(), "vintage camera", 10)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Vintage Camera", listings[0].Title)

	calls := browseMock.SearchListingsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "vintage camera", calls[0].Query)
	assert.Equal(t, 10, calls[0].Limit)
}

func TestSearchListingsWrapsError(t *testing.T) {
	browseMock := &clientmocks.BrowseClientMock{
		SearchListingsFunc: func(ctx context.Context, query string, limit int) ([]models.Listing, error) {
			return nil, errors.New("upstream down")
		},
	}
	service := NewSearchService(browseMock, &clientmocks.FindingClientMock{})

	_, err := service.SearchListings(context.Background(), "camera", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search listings")
}

func TestSearchSoldListingsDelegatesToFinding(t *testing.T) {
	findingMock := &clientmocks.FindingClientMock{
		SearchSoldListingsFunc: func(ctx context.Context, keywords string, limit int, page int) ([]models.Listing, error) {
			return []models.Listing{{Title: "Sold Camera", SoldDate: "2026-08-01T12:00:00.000Z"}}, nil
		},
	}
	service := NewSearchService(&clientmocks.BrowseClientMock{}, findingMock)

	listings, err := service.SearchSoldListings(context.Background(), "camera", 5, 2)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Sold Camera", listings[0].Title)

	calls := findingMock.SearchSoldListingsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "camera", calls[0].Keywords)
	assert.Equal(t, 5, calls[0].Limit)
	assert.Equal(t, 2, calls[0].Page)
}

func TestSearchSoldListingsWrapsError(t *testing.T) {
	findingMock := &clientmocks.FindingClientMock{
		SearchSoldListingsFunc: func(ctx context.Context, keywords string, limit int, page int) ([]models.Listing, error) {
			return nil, errors.New("finding api down")
		},
	}
	service := NewSearchService(&clientmocks.BrowseClientMock{}, findingMock)

	_, err := service.SearchSoldListings(context.Background(), "camera", 5, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search sold listings")
}
