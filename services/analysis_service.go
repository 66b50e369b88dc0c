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

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/vision"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware/logger"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
)

// DefaultDescriptionPrompt is used when the caller does not supply one.
const DefaultDescriptionPrompt = "Describe this item for a resale listing. " +
	"Identify the product, brand, model, color and any visible condition issues. Be concise."

// AnalysisService turns item photos into listing-ready descriptions.
type AnalysisService interface {
	AnalyzeImage(ctx context.Context, input models.ImageInput) (string, error)
	// AnalyzeImages processes the batch strictly one item at a time to stay
	// inside the upstream rate limits. Every input yields a result at its
	// own index; a failure is recorded there and the batch continues.
	AnalyzeImages(ctx context.Context, inputs []models.ImageInput) []models.ImageAnalysis
}

type analysisService struct {
	visionClient vision.Client
}

// NewAnalysisService creates a new analysis service instance
func NewAnalysisService(visionClient vision.Client) AnalysisService {
	return &analysisService{
		visionClient: visionClient,
	}
}

func (s *analysisService) AnalyzeImage(ctx context.Context, input models.ImageInput) (string, error) {
	prompt := input.Prompt
	if prompt == "" {
		prompt = DefaultDescriptionPrompt
	}
	description, err := s.visionClient.DescribeImage(ctx, input.Data, input.MediaType, prompt)
	if err != nil {
		return "", fmt.Errorf("analyze image: %w", err)
	}
	return description, nil
}

func (s *analysisService) AnalyzeImages(ctx context.Context, inputs []models.ImageInput) []models.ImageAnalysis {
	log := logger.GetLogger(ctx)

	results := make([]models.ImageAnalysis, len(inputs))
	for i, input := range inputs {
		description, err := s.AnalyzeImage(ctx, input)
		results[i] = models.ImageAnalysis{
			Index:       i,
			Description: description,
			Err:         err,
		}
		if err != nil {
			log.Warn("batch image analysis item failed", "index", i, "error", err)
		}
	}
	return results
}
