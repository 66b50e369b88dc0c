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

package api

import (
	"net/http"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/metrics"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware/logger"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/spec"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/utils"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/wiring"
)

// MakeHTTPHandler creates a new HTTP handler with middleware and routes
func MakeHTTPHandler(params *wiring.AppParams) http.Handler {
	mux := http.NewServeMux()

	// Register health check and metrics at root level (no authentication required)
	registerHealthCheck(mux)
	mux.Handle("GET /metrics", metrics.Handler())

	// Create a sub-mux for API v1 routes
	apiMux := http.NewServeMux()
	registerAnalysisRoutes(apiMux, params.AnalysisController)
	registerSearchRoutes(apiMux, params.SearchController)
	registerListingRoutes(apiMux, params.ListingController)
	apiMux.HandleFunc("/", notFoundHandler)

	// Apply middleware in reverse order (last middleware is applied first)
	apiHandler := http.Handler(apiMux)
	apiHandler = params.AuthMiddleware(apiHandler)
	apiHandler = logger.RequestLogger()(apiHandler)
	apiHandler = middleware.AddCorrelationID()(apiHandler)
	apiHandler = middleware.CORS(config.GetConfig().CORSAllowedOrigin)(apiHandler)
	apiHandler = middleware.RecovererOnPanic()(apiHandler)

	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiHandler))

	// Everything else is an unknown route
	mux.HandleFunc("/", notFoundHandler)

	return mux
}

func registerHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccessResponse(w, http.StatusOK, spec.HealthResponse{Status: "ok"})
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not found")
}
