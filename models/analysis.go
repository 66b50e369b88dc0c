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

package models

// ImageInput is one image submitted for analysis.
type ImageInput struct {
	// Data is the base64-encoded image payload
	Data string
	// MediaType is the image MIME type, e.g. image/jpeg
	MediaType string
	// Prompt optionally overrides the default description prompt
	Prompt string
}

// ImageAnalysis is the per-item outcome of a batch analysis. Err is non-nil
// when analysis of this input failed; Description is set otherwise. Index is
// the position of the input in the submitted batch.
type ImageAnalysis struct {
	Index       int
	Description string
	Err         error
}

// ListingDraft carries the item facts the listing generator works from.
type ListingDraft struct {
	Title     string
	Condition string
	Details   string
	// ImageData optionally supplies a photo (base64) to describe and fold
	// into the generated copy
	ImageData string
	MediaType string
}
