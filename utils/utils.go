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
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/spec"
)

// WriteSuccessResponse writes a successful API response
func WriteSuccessResponse[T any](w http.ResponseWriter, statusCode int, data T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if statusCode == http.StatusNoContent {
		return
	}
	_ = json.NewEncoder(w).Encode(data) // Ignore encoding errors for response
}

// WriteErrorResponse writes an error API response
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	errPayload := &spec.ErrorResponse{
		Message: message,
	}
	_ = json.NewEncoder(w).Encode(errPayload) // Ignore encoding errors for response
}

// WriteUpstreamErrorResponse writes an error API response that additionally
// carries the raw payload the upstream service returned, when available.
func WriteUpstreamErrorResponse(w http.ResponseWriter, statusCode int, message string, upstreamPayload string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	errPayload := &spec.ErrorResponse{
		Message:       message,
		UpstreamError: upstreamPayload,
	}
	_ = json.NewEncoder(w).Encode(errPayload) // Ignore encoding errors for response
}

// ValidateImageData checks that the payload is non-empty, plausible base64 and
// within the size limit before it is forwarded upstream.
func ValidateImageData(imageData string, maxBytes int) error {
	if strings.TrimSpace(imageData) == "" {
		return fmt.Errorf("imageData is required: %w", ErrInvalidInput)
	}
	decoded, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return fmt.Errorf("imageData must be valid base64: %w", ErrInvalidInput)
	}
	if len(decoded) > maxBytes {
		return fmt.Errorf("imageData exceeds %d bytes: %w", maxBytes, ErrInvalidInput)
	}
	return nil
}
