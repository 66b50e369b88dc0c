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

package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// HttpRequest describes an outbound HTTP request before it is built.
// Name identifies the call in logs and error messages, e.g. "marketplace.fetchToken".
type HttpRequest struct {
	Name   string
	URL    string
	Method string

	headers     map[string]string
	queryParams url.Values
	formData    url.Values
	jsonBody    any
	hasJsonBody bool
}

// SetHeader sets a request header, replacing any previous value for the key.
func (r *HttpRequest) SetHeader(key, value string) {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
}

// SetQueryParam adds a URL query parameter.
func (r *HttpRequest) SetQueryParam(key, value string) {
	if r.queryParams == nil {
		r.queryParams = url.Values{}
	}
	r.queryParams.Add(key, value)
}

// SetFormData sets an application/x-www-form-urlencoded body.
func (r *HttpRequest) SetFormData(form map[string]string) {
	r.formData = url.Values{}
	for key, value := range form {
		r.formData.Set(key, value)
	}
}

// SetJson sets a JSON body. The value is marshalled when the request is built.
func (r *HttpRequest) SetJson(body any) {
	r.jsonBody = body
	r.hasJsonBody = true
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	if r.URL == "" {
		return nil, fmt.Errorf("request %q has no URL", r.Name)
	}

	var body *bytes.Reader
	contentType := ""
	switch {
	case r.formData != nil:
		body = bytes.NewReader([]byte(r.formData.Encode()))
		contentType = "application/x-www-form-urlencoded"
	case r.hasJsonBody:
		encoded, err := json.Marshal(r.jsonBody)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body for %q: %w", r.Name, err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	default:
		body = bytes.NewReader(nil)
	}

	reqURL := r.URL
	if len(r.queryParams) > 0 {
		separator := "?"
		if strings.Contains(reqURL, "?") {
			separator = "&"
		}
		reqURL = reqURL + separator + r.queryParams.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.Method, reqURL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for key, value := range r.headers {
		httpReq.Header.Set(key, value)
	}
	return httpReq, nil
}
