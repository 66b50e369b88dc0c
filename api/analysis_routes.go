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

func registerAnalysisRoutes(mux *http.ServeMux, controller controllers.AnalysisController) {
	// POST /analysis/image - Describe a single item photo
	mux.HandleFunc("POST /analysis/image", controller.AnalyzeImage)

	// POST /analysis/images - Describe a batch of item photos, one at a time
	mux.HandleFunc("POST /analysis/images", controller.AnalyzeImages)
}
