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

// Package vision wraps the multimodal content-analysis messages API used for
// image description and listing-text generation.
package vision

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/clients/requests"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/config"
	"github.com/wso2/reseller-assistant-platform/listing-assistant-service/metrics"
)

// DefaultMediaType is assumed when the caller does not name the image type.
const DefaultMediaType = "image/jpeg"

//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clientmocks/vision_client_fake.go . Client:ClientMock

// Client generates text from prompts and images.
type Client interface {
	// DescribeImage sends base64 image data with a text prompt and returns
	// the generated description, trimmed.
	DescribeImage(ctx context.Context, imageData, mediaType, prompt string) (string, error)
	// GenerateText sends a text-only prompt and returns the generated text, trimmed.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type client struct {
	config     config.VisionConfig
	httpClient requests.HttpClient
}

// NewClient creates a content-analysis client.
func NewClient(cfg config.VisionConfig) Client {
	return &client{
		config:     cfg,
		httpClient: requests.NewRetryableHTTPClient(&http.Client{}),
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *imageSource `json:"source,omitempty"`
}

type imageSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *client) DescribeImage(ctx context.Context, imageData, mediaType, prompt string) (string, error) {
	if mediaType == "" {
		mediaType = DefaultMediaType
	}
	content := []contentBlock{
		{
			Type: "image",
			Source: &imageSource{
				Type:      "base64",
				MediaType: mediaType,
				Data:      imageData,
			},
		},
		{Type: "text", Text: prompt},
	}
	return c.sendMessages(ctx, "vision.DescribeImage", content)
}

func (c *client) GenerateText(ctx context.Context, prompt string) (string, error) {
	content := []contentBlock{
		{Type: "text", Text: prompt},
	}
	return c.sendMessages(ctx, "vision.GenerateText", content)
}

func (c *client) sendMessages(ctx context.Context, name string, content []contentBlock) (string, error) {
	req := &requests.HttpRequest{
		Name:   name,
		URL:    fmt.Sprintf("%s/v1/messages", c.config.BaseURL),
		Method: http.MethodPost,
	}
	req.SetHeader("x-api-key", c.config.APIKey)
	req.SetHeader("anthropic-version", c.config.APIVersion)
	req.SetJson(messagesRequest{
		Model:     c.config.Model,
		MaxTokens: c.config.MaxTokens,
		Messages: []message{
			{Role: "user", Content: content},
		},
	})

	var resp messagesResponse
	err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusOK)
	metrics.UpstreamRequest("vision", err)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("%s: no text content in response", name)
}
