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

package controllers

import (
	"errors"
	"net/http"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/marketplace"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/requests"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/utils"
)

// writeUpstreamFailure maps a brokered-call failure to a 502 response,
// attaching the raw upstream error payload when one is available.
func writeUpstreamFailure(w http.ResponseWriter, message string, err error) {
	var authErr *marketplace.AuthError
	if errors.As(err, &authErr) {
		utils.WriteUpstreamErrorResponse(w, http.StatusBadGateway, message, authErr.Payload)
		return
	}
	var httpErr *requests.HttpError
	if errors.As(err, &httpErr) {
		utils.WriteUpstreamErrorResponse(w, http.StatusBadGateway, message, httpErr.Body)
		return
	}
	utils.WriteErrorResponse(w, http.StatusBadGateway, message)
}
