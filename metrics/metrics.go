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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const promNamespace = "listing_assistant"

var (
	tokenCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "token_cache_hits_total",
		Help:      "Number of token requests served from the cache",
	})

	tokenFetches = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "token_fetches_total",
		Help:      "Number of token requests that went to the upstream token endpoint",
	})

	tokenFetchErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "token_fetch_errors_total",
		Help:      "Number of failed token fetches",
	})

	upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "upstream_requests_total",
		Help:      "Number of brokered upstream requests by target and outcome",
	}, []string{"target", "outcome"})
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(tokenCacheHits, tokenFetches, tokenFetchErrors, upstreamRequests)
}

// Handler serves the metrics registry over HTTP.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// TokenCacheHit records a token request answered from the cache.
func TokenCacheHit() { tokenCacheHits.Inc() }

// TokenFetched records a token fetch against the upstream token endpoint.
func TokenFetched() { tokenFetches.Inc() }

// TokenFetchFailed records a failed token fetch.
func TokenFetchFailed() { tokenFetchErrors.Inc() }

// UpstreamRequest records one brokered call, outcome "ok" or "error".
func UpstreamRequest(target string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	upstreamRequests.WithLabelValues(target, outcome).Inc()
}
