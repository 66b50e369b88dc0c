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
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/services"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/spec"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/utils"
)

// ListingController defines the interface for listing-generation HTTP handlers
type ListingController interface {
	GenerateListing(w http.ResponseWriter, r *http.Request)
}

type listingController struct {
	listingService services.ListingService
}

// NewListingController creates a new listing controller instance
func NewListingController(listingService services.ListingService) ListingController {
	return &listingController{
		listingService: listingService,
	}
}

// GenerateListing handles POST /listings/generate
func (c *listingController) GenerateListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.GenerateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Item title is required")
		return
	}
	if req.ImageData != "" {
		if err := utils.ValidateImageData(req.ImageData, MaxImageBytes); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	listing, err := c.listingService.GenerateListing(ctx, models.ListingDraft{
		Title:     req.Title,
		Condition: req.Condition,
		Details:   req.Details,
		ImageData: req.ImageData,
		MediaType: req.MediaType,
	})
	if err != nil {
		log.Error("Failed to generate listing", "error", err)
		writeUpstreamFailure(w, "Failed to generate listing", err)
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.GenerateListingResponse{Listing: listing})
}
