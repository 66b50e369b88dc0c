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
	"sync"

	"github.com/joho/godotenv"
)

var (
	config   *Config
	loadOnce sync.Once
)

// GetConfig loads the configuration from the environment on first use and
// returns the process-wide instance.
func GetConfig() *Config {
	loadOnce.Do(loadEnvs)
	return config
}

func loadEnvs() {
	config = &Config{}

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			panic(err)
		}
	}

	r := &configReader{}
	config.ServerHost = r.readOptionalString("SERVER_HOST", "")
	config.ServerPort = int(r.readOptionalInt64("SERVER_PORT", 8080))
	config.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)
	config.CORSAllowedOrigin = r.readOptionalString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	// Logging configuration
	config.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")

	// HTTP Server timeout configurations
	config.ReadTimeoutSeconds = int(r.readOptionalInt64("HTTP_READ_TIMEOUT_SECONDS", 10))
	config.WriteTimeoutSeconds = int(r.readOptionalInt64("HTTP_WRITE_TIMEOUT_SECONDS", 90))
	config.IdleTimeoutSeconds = int(r.readOptionalInt64("HTTP_IDLE_TIMEOUT_SECONDS", 60))
	config.MaxHeaderBytes = int(r.readOptionalInt64("HTTP_MAX_HEADER_BYTES", 65536)) // 1024 * 64

	// Optional static key for the inbound API endpoints. The original client
	// deployments run this service on a private network with no inbound auth;
	// leaving this unset reproduces that, with a startup warning.
	config.InboundAPIKey = r.readOptionalString("INBOUND_API_KEY", "")

	// Marketplace upstream (Browse search, legacy Finding search, OAuth2 token endpoint)
	config.Marketplace = MarketplaceConfig{
		BaseURL:       r.readOptionalString("MARKETPLACE_BASE_URL", "https://api.ebay.com"),
		TokenURL:      r.readOptionalString("MARKETPLACE_TOKEN_URL", "https://api.ebay.com/identity/v1/oauth2/token"),
		ClientID:      r.readRequiredString("MARKETPLACE_CLIENT_ID"),
		ClientSecret:  r.readRequiredString("MARKETPLACE_CLIENT_SECRET"),
		Scope:         r.readOptionalString("MARKETPLACE_SCOPE", "https://api.ebay.com/oauth/api_scope"),
		MarketplaceID: r.readOptionalString("MARKETPLACE_ID", "EBAY_US"),
		FindingURL:    r.readOptionalString("MARKETPLACE_FINDING_URL", "https://svcs.ebay.com/services/search/FindingService/v1"),
		AppID:         r.readRequiredString("MARKETPLACE_APP_ID"),
	}

	// Vision upstream (content-analysis messages API)
	config.Vision = VisionConfig{
		BaseURL:    r.readOptionalString("VISION_BASE_URL", "https://api.anthropic.com"),
		APIKey:     r.readRequiredString("VISION_API_KEY"),
		APIVersion: r.readOptionalString("VISION_API_VERSION", "2023-06-01"),
		Model:      r.readOptionalString("VISION_MODEL", "claude-3-5-sonnet-20241022"),
		MaxTokens:  int(r.readOptionalInt64("VISION_MAX_TOKENS", 1024)),
	}

	// Validate HTTP server configurations
	validateHTTPServerConfigs(config, r)

	r.logAndExitIfErrorsFound()

	slog.Info("configReader: configs loaded")
}

func validateHTTPServerConfigs(cfg *Config, r *configReader) {
	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		r.errors = append(r.errors, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort))
	}
	if cfg.ReadTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.ReadTimeoutSeconds))
	}
	if cfg.WriteTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_WRITE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.WriteTimeoutSeconds))
	}
	if cfg.ReadTimeoutSeconds >= cfg.WriteTimeoutSeconds {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS (%d) must be < HTTP_WRITE_TIMEOUT_SECONDS (%d)",
			cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds))
	}
	if cfg.IdleTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_IDLE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.IdleTimeoutSeconds))
	}
	if cfg.MaxHeaderBytes < 1024 || cfg.MaxHeaderBytes > 1048576 { // 1KB to 1MB
		r.errors = append(r.errors, fmt.Errorf("HTTP_MAX_HEADER_BYTES must be between 1024 and 1048576, got %d", cfg.MaxHeaderBytes))
	}
	if cfg.Vision.MaxTokens <= 0 {
		r.errors = append(r.errors, fmt.Errorf("VISION_MAX_TOKENS must be greater than 0, got %d", cfg.Vision.MaxTokens))
	}
}
