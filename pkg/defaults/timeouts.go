// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// SimulateHandlerTimeout is the timeout for a simulate request,
	// including batch requests.
	SimulateHandlerTimeout = 10 * time.Second

	// CatalogHandlerTimeout is the timeout for ingredient and recipe listings.
	CatalogHandlerTimeout = 5 * time.Second

	// CatalogCacheTTL is the cache duration for listing responses.
	// The embedded data never changes within a running process.
	CatalogCacheTTL = 1 * time.Hour

	// SimulateCacheTTL is the cache duration for simulate responses.
	SimulateCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Simulation limits.
const (
	// BatchConcurrency bounds the number of simulations run in parallel
	// by a single batch request.
	BatchConcurrency = 8

	// MaxBatchSize caps the number of simulations accepted in one batch.
	MaxBatchSize = 1000

	// MaxRequestBodyBytes caps simulate request bodies.
	MaxRequestBodyBytes = 1 << 20
)

// CLI timeouts for command-line operations.
const (
	// CLIBatchTimeout is the default timeout for a batch command.
	CLIBatchTimeout = 2 * time.Minute
)
