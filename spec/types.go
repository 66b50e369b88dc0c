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

// Package spec defines the request and response types of the HTTP API.
package spec

// ErrorResponse is the generic error payload returned by every endpoint.
// UpstreamError carries the raw upstream payload when a brokered call failed.
type ErrorResponse struct {
	Message       string `json:"message"`
	UpstreamError string `json:"upstreamError,omitempty"`
}

// AnalyzeImageRequest asks for a description of a single image.
type AnalyzeImageRequest struct {
	// ImageData is the base64-encoded image payload
	ImageData string `json:"imageData"`
	// MediaType is the image MIME type, defaulting to image/jpeg
	MediaType string `json:"mediaType,omitempty"`
	// Prompt optionally overrides the default description prompt
	Prompt string `json:"prompt,omitempty"`
}

type AnalyzeImageResponse struct {
	Description string `json:"description"`
}

// AnalyzeImagesRequest batch-analyzes images. Items are processed one at a
// time in order; a failing item is reported in place and does not abort the
// rest of the batch.
type AnalyzeImagesRequest struct {
	Images []AnalyzeImageRequest `json:"images"`
}

// ImageResult is the per-item outcome of a batch analysis. Exactly one of
// Description or Error is set.
type ImageResult struct {
	Index       int    `json:"index"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

type AnalyzeImagesResponse struct {
	Results []ImageResult `json:"results"`
}

// SearchListingsRequest searches current marketplace listings.
type SearchListingsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type SearchListingsResponse struct {
	Items []ListingItem `json:"items"`
}

// ListingItem is the normalized shape of one marketplace listing.
type ListingItem struct {
	Title        string `json:"title"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	Condition    string `json:"condition,omitempty"`
	ItemURL      string `json:"itemUrl,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Seller       string `json:"seller,omitempty"`
	ShippingCost string `json:"shippingCost,omitempty"`
	Location     string `json:"location,omitempty"`
	// SoldDate is only present on sold-listing results
	SoldDate string `json:"soldDate,omitempty"`
}

// SearchSoldListingsRequest searches completed/sold listings via the legacy
// keyword search API.
type SearchSoldListingsRequest struct {
	Keywords string `json:"keywords"`
	Limit    int    `json:"limit,omitempty"`
	Page     int    `json:"page,omitempty"`
}

type SearchSoldListingsResponse struct {
	Items []ListingItem `json:"items"`
}

// GenerateListingRequest asks for listing copy for an item. When ImageData is
// provided the item photo is described first and the description is folded
// into the prompt.
type GenerateListingRequest struct {
	Title     string `json:"title"`
	Condition string `json:"condition,omitempty"`
	Details   string `json:"details,omitempty"`
	ImageData string `json:"imageData,omitempty"`
	MediaType string `json:"mediaType,omitempty"`
}

type GenerateListingResponse struct {
	Listing string `json:"listing"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
