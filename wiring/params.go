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

package wiring

import (
	"log/slog"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/marketplace"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/vision"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/controllers"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	// Middleware
	AuthMiddleware middleware.Middleware
	Logger         *slog.Logger

	// Controllers
	AnalysisController controllers.AnalysisController
	SearchController   controllers.SearchController
	ListingController  controllers.ListingController

	// Clients (exposed for tests and diagnostics)
	TokenProvider marketplace.TokenProvider
	VisionClient  vision.Client
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

func ProvideMarketplaceConfig(config config.Config) config.MarketplaceConfig {
	return config.Marketplace
}

func ProvideVisionConfig(config config.Config) config.VisionConfig {
	return config.Vision
}

func ProvideAuthMiddleware(config config.Config) middleware.Middleware {
	return middleware.APIKeyAuth(config.InboundAPIKey)
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}
