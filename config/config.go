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

package config

// Config holds all configuration for the application
type Config struct {
	ServerHost          string
	ServerPort          int
	AutoMaxProcsEnabled bool
	LogLevel            string

	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	// InboundAPIKey optionally guards the inbound API endpoints with a static
	// shared key. When empty the endpoints are open and a warning is logged at
	// startup.
	InboundAPIKey string `json:"-"`

	// Marketplace upstream configuration (search APIs and OAuth2 token endpoint)
	Marketplace MarketplaceConfig

	// Vision upstream configuration (content-analysis API)
	Vision VisionConfig
}

// MarketplaceConfig holds marketplace API configuration
type MarketplaceConfig struct {
	// BaseURL is the Browse API base URL used for current-listing search
	BaseURL string

	// TokenURL is the OAuth2 client-credentials token endpoint
	TokenURL string

	ClientID     string
	ClientSecret string `json:"-"`

	// Scope is the fixed scope string sent with every token request
	Scope string

	// MarketplaceID selects the marketplace site, e.g. EBAY_US
	MarketplaceID string

	// FindingURL is the legacy Finding API endpoint for sold-item search
	FindingURL string

	// AppID authenticates legacy Finding API calls (no OAuth token needed)
	AppID string `json:"-"`
}

// VisionConfig holds content-analysis API configuration
type VisionConfig struct {
	BaseURL    string
	APIKey     string `json:"-"`
	APIVersion string

	// Model is the model identifier sent with every request
	Model string

	// MaxTokens is the per-request generation token budget
	MaxTokens int
}
