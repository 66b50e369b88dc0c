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

//go:build wireinject
// +build wireinject

package wiring

import (
	"github.com/google/wire"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/marketplace"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/vision"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/controllers"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/services"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
	ProvideMarketplaceConfig,
	ProvideVisionConfig,
)

var clientProviderSet = wire.NewSet(
	marketplace.NewTokenProvider,
	marketplace.NewBrowseClient,
	marketplace.NewFindingClient,
	vision.NewClient,
)

var serviceProviderSet = wire.NewSet(
	services.NewAnalysisService,
	services.NewSearchService,
	services.NewListingService,
)

var controllerProviderSet = wire.NewSet(
	controllers.NewAnalysisController,
	controllers.NewSearchController,
	controllers.NewListingController,
)

// InitializeAppParams wires all application dependencies
func InitializeAppParams(cfg *config.Config) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		clientProviderSet,
		serviceProviderSet,
		controllerProviderSet,
		ProvideAuthMiddleware,
		ProvideLogger,
		wire.Struct(new(AppParams), "*"),
	)
	return nil, nil
}
