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

package utils

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/models"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/spec"
)

func TestValidateImageData(t *testing.T) {
	valid := base64.StdEncoding.EncodeToString([]byte("image bytes"))

	testCases := []struct {
		name        string
		imageData   string
		maxBytes    int
		expectedErr string
	}{
		{name: "valid", imageData: valid, maxBytes: 1024},
		{name: "empty", imageData: "", maxBytes: 1024, expectedErr: "imageData is required"},
		{name: "whitespace only", imageData: "   ", maxBytes: 1024, expectedErr: "imageData is required"},
		{name: "not base64", imageData: "not-base64!!!", maxBytes: 1024, expectedErr: "must be valid base64"},
		{name: "too large", imageData: valid, maxBytes: 4, expectedErr: "exceeds 4 bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImageData(tc.imageData, tc.maxBytes)
			if tc.expectedErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusBadRequest, "Invalid request body")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Invalid request body"}`, rec.Body.String())
}

func TestWriteUpstreamErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteUpstreamErrorResponse(rec, http.StatusBadGateway, "Failed to search listings", `{"error":"invalid_client"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t,
		`{"message":"Failed to search listings","upstreamError":"{\"error\":\"invalid_client\"}"}`,
		rec.Body.String())
}

func TestWriteSuccessResponseNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteSuccessResponse(rec, http.StatusNoContent, spec.HealthResponse{Status: "ok"})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, strings.TrimSpace(rec.Body.String()))
}

func TestConvertToListingItems(t *testing.T) {
	listings := []models.Listing{
		{
			Title:        "Vintage Camera",
			Price:        "49.99",
			Currency:     "USD",
			Condition:    "Used",
			ItemURL:      "https://example.com/itm/1",
			ImageURL:     "https://example.com/img/1.jpg",
			Seller:       "camera-seller",
			ShippingCost: "5.00",
			Location:     "Portland, OR, US",
			SoldDate:     "2026-08-01T12:00:00.000Z",
		},
	}

	items := ConvertToListingItems(listings)
	require.Len(t, items, 1)
	assert.Equal(t, "Vintage Camera", items[0].Title)
	assert.Equal(t, "49.99", items[0].Price)
	assert.Equal(t, "USD", items[0].Currency)
	assert.Equal(t, "Used", items[0].Condition)
	assert.Equal(t, "https://example.com/itm/1", items[0].ItemURL)
	assert.Equal(t, "https://example.com/img/1.jpg", items[0].ImageURL)
	assert.Equal(t, "camera-seller", items[0].Seller)
	assert.Equal(t, "5.00", items[0].ShippingCost)
	assert.Equal(t, "Portland, OR, US", items[0].Location)
	assert.Equal(t, "2026-08-01T12:00:00.000Z", items[0].SoldDate)

	assert.Empty(t, ConvertToListingItems(nil))
}
