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

package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware/logger"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/services"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/spec"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/utils"
)

// SearchController defines the interface for marketplace-search HTTP handlers
type SearchController interface {
	SearchListings(w http.ResponseWriter, r *http.Request)
	SearchSoldListings(w http.ResponseWriter, r *http.Request)
}

type searchController struct {
	searchService services.SearchService
}

// NewSearchController creates a new search controller instance
func NewSearchController(searchService services.SearchService) SearchController {
	return &searchController{
		searchService: searchService,
	}
}

// SearchListings handles POST /search/listings
func (c *searchController) SearchListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.SearchListingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Search query is required")
		return
	}

	listings, err := c.searchService.SearchListings(ctx, req.Query, req.Limit)
	if err != nil {
		log.Error("Failed to search listings", "error", err)
		writeUpstreamFailure(w, "Failed to search listings", err)
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.SearchListingsResponse{
		Items: utils.ConvertToListingItems(listings),
	})
}

// SearchSoldListings handles POST /search/sold
func (c *searchController) SearchSoldListings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.SearchSoldListingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Keywords) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Search keywords are required")
		return
	}

	listings, err := c.searchService.SearchSoldListings(ctx, req.Keywords, req.Limit, req.Page)
	if err != nil {
		log.Error("Failed to search sold listings", "error", err)
		writeUpstreamFailure(w, "Failed to search sold listings", err)
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.SearchSoldListingsResponse{
		Items: utils.ConvertToListingItems(listings),
	})
}
