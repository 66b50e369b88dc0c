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

package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
)

// HTTPServer wraps the API http.Server with configured timeouts
type HTTPServer struct {
	server  *http.Server
	cfg     *config.Config
	handler http.Handler
}

// NewHTTPServer creates a new HTTP server for the API handler
func NewHTTPServer(cfg *config.Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		cfg:     cfg,
		handler: handler,
	}
}

// Start starts the HTTP server and blocks until it stops
func (s *HTTPServer) Start() error {
	if s.cfg.ServerPort < 1 || s.cfg.ServerPort > 65535 {
		return fmt.Errorf("invalid port: %d", s.cfg.ServerPort)
	}

	address := fmt.Sprintf("%s:%d", s.cfg.ServerHost, s.cfg.ServerPort)
	s.server = &http.Server{
		Addr:           address,
		Handler:        s.handler,
		ReadTimeout:    time.Duration(s.cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(s.cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:    time.Duration(s.cfg.IdleTimeoutSeconds) * time.Second,
		MaxHeaderBytes: s.cfg.MaxHeaderBytes,
	}

	slog.Info("Starting HTTP server", "address", address)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *HTTPServer) Shutdown(shutdownCtx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(shutdownCtx)
}
