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

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// configReader reads environment variables and accumulates errors so that all
// misconfigurations are reported in one pass instead of failing one at a time.
type configReader struct {
	errors []error
}

func (r *configReader) readRequiredString(key string) string {
	value, found := os.LookupEnv(key)
	if !found || value == "" {
		r.errors = append(r.errors, fmt.Errorf("required environment variable %s is not set", key))
		return ""
	}
	return value
}

func (r *configReader) readOptionalString(key string, defaultValue string) string {
	value, found := os.LookupEnv(key)
	if !found || value == "" {
		return defaultValue
	}
	return value
}

func (r *configReader) readOptionalInt64(key string, defaultValue int64) int64 {
	value, found := os.LookupEnv(key)
	if !found || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be an integer, got %q", key, value))
		return defaultValue
	}
	return parsed
}

func (r *configReader) readOptionalBool(key string, defaultValue bool) bool {
	value, found := os.LookupEnv(key)
	if !found || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be a boolean, got %q", key, value))
		return defaultValue
	}
	return parsed
}

func (r *configReader) logAndExitIfErrorsFound() {
	if len(r.errors) == 0 {
		return
	}
	for _, err := range r.errors {
		slog.Error("configReader: invalid configuration", "error", err)
	}
	os.Exit(1)
}
