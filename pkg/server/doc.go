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

// Package server implements the HTTP server shared by the cookpot API
// binaries.
//
// # Middleware
//
// Every handler registered through WithHandler runs behind, from the outside
// in: Prometheus RED metrics, request id tracking (X-Request-Id, UUID), API
// version negotiation (406 for unsupported vendor versions), panic recovery,
// token-bucket rate limiting (golang.org/x/time/rate), request body limits,
// and debug request logging.
//
// # System endpoints
//
//   - GET /health: liveness, always 200
//   - GET /ready: readiness, 503 until the server is listening
//   - GET /metrics: Prometheus exposition
//   - GET /: service name, version and registered routes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("cookpotd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/simulate": svc.HandleSimulate,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// Environment variables override the defaults:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget
//   - RATE_LIMIT: requests per second (default 100)
//   - RATE_LIMIT_BURST: token bucket burst (default 200)
//
// # Errors
//
// Handlers report failures with WriteError, or WriteErrorFromErr which maps
// a structured error code onto the HTTP status.
package server
