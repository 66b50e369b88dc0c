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
	"strings"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/vision"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware/logger"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
)

// ListingService generates listing copy for an item draft.
type ListingService interface {
	GenerateListing(ctx context.Context, draft models.ListingDraft) (string, error)
}

type listingService struct {
	visionClient    vision.Client
	analysisService AnalysisService
}

// NewListingService creates a new listing service instance
func NewListingService(visionClient vision.Client, analysisService AnalysisService) ListingService {
	return &listingService{
		visionClient:    visionClient,
		analysisService: analysisService,
	}
}

// GenerateListing builds a generation prompt from the draft fields and, when a
// photo is supplied, a description of the photo, then asks the upstream for
// the listing text. A failed photo description degrades to text-only
// generation rather than failing the whole request.
func (s *listingService) GenerateListing(ctx context.Context, draft models.ListingDraft) (string, error) {
	log := logger.GetLogger(ctx)

	imageDescription := ""
	if draft.ImageData != "" {
		description, err := s.analysisService.AnalyzeImage(ctx, models.ImageInput{
			Data:      draft.ImageData,
			MediaType: draft.MediaType,
		})
		if err != nil {
			log.Warn("image description failed, generating from text fields only", "error", err)
		} else {
			imageDescription = description
		}
	}

	listing, err := s.visionClient.GenerateText(ctx, buildListingPrompt(draft, imageDescription))
	if err != nil {
		return "", fmt.Errorf("generate listing: %w", err)
	}
	return listing, nil
}

func buildListingPrompt(draft models.ListingDraft, imageDescription string) string {
	var b strings.Builder
	b.WriteString("Write a marketplace listing description for the following item. ")
	b.WriteString("Use a friendly, factual tone, mention condition honestly, and keep it under 200 words.\n\n")
	fmt.Fprintf(&b, "Title: %s\n", draft.Title)
	if draft.Condition != "" {
		fmt.Fprintf(&b, "Condition: %s\n", draft.Condition)
	}
	if draft.Details != "" {
		fmt.Fprintf(&b, "Details: %s\n", draft.Details)
	}
	if imageDescription != "" {
		fmt.Fprintf(&b, "Photo description: %s\n", imageDescription)
	}
	return b.String()
}
