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

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/controllers"
)

func registerSearchRoutes(mux *http.ServeMux, controller controllers.SearchController) {
	// POST /search/listings - Search current marketplace listings
	mux.HandleFunc("POST /search/listings", controller.SearchListings)

	// POST /search/sold - Search completed/sold listings
	mux.HandleFunc("POST /search/sold", controller.SearchSoldListings)
}
