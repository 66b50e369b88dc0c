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
	"fmt"
	"net/http"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware/logger"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/services"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/spec"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/utils"
)

const (
	// MaxImageBytes caps a single decoded image payload (upstream limit)
	MaxImageBytes = 5 * 1024 * 1024
	// MaxBatchSize caps a batch-analysis request
	MaxBatchSize = 20
)

// AnalysisController defines the interface for image-analysis HTTP handlers
type AnalysisController interface {
	AnalyzeImage(w http.ResponseWriter, r *http.Request)
	AnalyzeImages(w http.ResponseWriter, r *http.Request)
}

type analysisController struct {
	analysisService services.AnalysisService
}

// NewAnalysisController creates a new analysis controller instance
func NewAnalysisController(analysisService services.AnalysisService) AnalysisController {
	return &analysisController{
		analysisService: analysisService,
	}
}

// AnalyzeImage handles POST /analysis/image
func (c *analysisController) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.AnalyzeImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateImageData(req.ImageData, MaxImageBytes); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	description, err := c.analysisService.AnalyzeImage(ctx, models.ImageInput{
		Data:      req.ImageData,
		MediaType: req.MediaType,
		Prompt:    req.Prompt,
	})
	if err != nil {
		log.Error("Failed to analyze image", "error", err)
		writeUpstreamFailure(w, "Failed to analyze image", err)
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.AnalyzeImageResponse{Description: description})
}

// AnalyzeImages handles POST /analysis/images
func (c *analysisController) AnalyzeImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.AnalyzeImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Failed to parse request body", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Images) == 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "At least one image is required")
		return
	}
	if len(req.Images) > MaxBatchSize {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Too many images in one batch")
		return
	}
	for i, image := range req.Images {
		if err := utils.ValidateImageData(image.ImageData, MaxImageBytes); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("images[%d]: %s", i, err.Error()))
			return
		}
	}

	inputs := make([]models.ImageInput, len(req.Images))
	for i, image := range req.Images {
		inputs[i] = models.ImageInput{
			Data:      image.ImageData,
			MediaType: image.MediaType,
			Prompt:    image.Prompt,
		}
	}

	analyses := c.analysisService.AnalyzeImages(ctx, inputs)

	results := make([]spec.ImageResult, len(analyses))
	for i, analysis := range analyses {
		results[i] = spec.ImageResult{
			Index:       analysis.Index,
			Description: analysis.Description,
		}
		if analysis.Err != nil {
			results[i].Error = analysis.Err.Error()
		}
	}

	utils.WriteSuccessResponse(w, http.StatusOK, spec.AnalyzeImagesResponse{Results: results})
}
