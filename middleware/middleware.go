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

package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/middleware/logger"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/utils"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

const correlationIDHeader = "X-Correlation-ID"

// AddCorrelationID returns a middleware that assigns each request a correlation
// id (reusing the inbound header when present), echoes it on the response and
// attaches a logger carrying it to the request context.
func AddCorrelationID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(correlationIDHeader)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}
			w.Header().Set(correlationIDHeader, correlationID)

			log := slog.Default().With(slog.String("correlationId", correlationID))
			ctx := logger.WithLogger(r.Context(), log)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORS returns a middleware that allows cross-origin requests from the single
// configured origin. Use "*" to allow all origins.
func CORS(allowedOrigin string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type,Origin,X-Correlation-ID")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RecovererOnPanic returns a middleware that converts handler panics into a
// generic 500 response instead of tearing down the connection.
func RecovererOnPanic() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.GetLogger(r.Context()).Error("panic recovered in handler",
						slog.Any("panic", rec),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// APIKeyAuth returns a middleware that requires the configured static key in
// the Authorization header ("Bearer <key>"). An empty key disables the check;
// the caller is expected to log that the surface is left open.
func APIKeyAuth(apiKey string) Middleware {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		expected := []byte("Bearer " + apiKey)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := []byte(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare(expected, provided) != 1 {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or missing API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
