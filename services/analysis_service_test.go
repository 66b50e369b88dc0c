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

func TestAnalyzeImage(t *testing.T) {
	visionMock := &clientmocks.ClientMock{
		DescribeImageFunc: func(ctx context.Context, imageData string, mediaType string, prompt string) (string, error) {
			return "A vintage camera", nil
		},
	}
	service := NewAnalysisService(visionMock)

	description, err := service.AnalyzeImage(context.Background(), models.ImageInput{
		Data:      "aGVsbG8=",
		MediaType: "image/png",
		Prompt:    "What is this?",
	})
	require.NoError(t, err)
	assert.Equal(t, "A vintage camera", description)

	calls := visionMock.DescribeImageCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "aGVsbG8=", calls[0].ImageData)
	assert.Equal(t, "image/png", calls[0].MediaType)
	assert.Equal(t, "What is this?", calls[0].Prompt)
}

func TestAnalyzeImageDefaultPrompt(t *testing.T) {
	visionMock := &clientmocks.ClientMock{
		DescribeImageFunc: func(ctx context.Context, imageData string, mediaType string, prompt string) (string, error) {
			return "ok", nil
		},
	}
	service := NewAnalysisService(visionMock)

	_, err := service.AnalyzeImage(context.Background(), models.ImageInput{Data: "aGVsbG8="})
	require.NoError(t, err)

	calls := visionMock.DescribeImageCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, DefaultDescriptionPrompt, calls[0].Prompt)
}

func TestAnalyzeImagesBatchFailureIsolation(t *testing.T) {
	visionMock := &clientmocks.ClientMock{
		DescribeImageFunc: func(ctx context.Context, imageData string, mediaType string, prompt string) (string, error) {
			if imageData == "broken" {
				return "", errors.New("rate limited")
			}
			return "description of " + imageData, nil
		},
	}
	service := NewAnalysisService(visionMock)

	inputs := []models.ImageInput{
		{Data: "first"},
		{Data: "broken"},
		{Data: "third"},
	}
	results := service.AnalyzeImages(context.Background(), inputs)

	require.Len(t, results, 3)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, "description of first", results[0].Description)
	require.NoError(t, results[0].Err)

	// The failed item keeps its slot, the batch continues
	assert.Equal(t, 1, results[1].Index)
	assert.Empty(t, results[1].Description)
	require.Error(t, results[1].Err)

	assert.Equal(t, 2, results[2].Index)
	assert.Equal(t, "description of third", results[2].Description)
	require.NoError(t, results[2].Err)

	// Items processed one at a time, in order
	calls := visionMock.DescribeImageCalls()
	require.Len(t, calls, 3)
	assert.Equal(t, "first", calls[0].ImageData)
	assert.Equal(t, "broken", calls[1].ImageData)
	assert.Equal(t, "third", calls[2].ImageData)
}

func TestAnalyzeImagesEmptyBatch(t *testing.T) {
	visionMock := &clientmocks.ClientMock{}
	service := NewAnalysisService(visionMock)

	results := service.AnalyzeImages(context.Background(), nil)
	assert.Empty(t, results)
	assert.Empty(t, visionMock.DescribeImageCalls())
}
