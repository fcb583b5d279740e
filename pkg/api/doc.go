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

// Package api wires the cookpot HTTP service.
//
// Serve loads the embedded ingredient catalog and recipe table, fails fast on
// any data integrity error, and runs a pkg/server instance until SIGINT or
// SIGTERM.
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/simulate       - Simulate from query parameters
//   - POST /v1/simulate       - Simulate from a JSON or YAML body
//   - POST /v1/simulate/batch - Simulate many selections at once
//   - GET  /v1/ingredients    - Browse the ingredient catalog (?category=, ?q=)
//   - GET  /v1/recipes        - Browse the recipe table (?station=)
//
// System endpoints:
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/simulate)
//
//   - ingredient: ingredient id, repeat up to four times
//   - ingredients: comma separated alternative to ingredient
//   - station: cookpot (primary) or portablecookpot (secondary)
//   - pick: choose one recipe when several tie (true/false)
//   - explain: list every matching recipe (true/false)
//
// Example:
//
//	curl "http://localhost:8080/v1/simulate?ingredient=meat&ingredient=berries&ingredient=berries&ingredient=berries"
//
// # Request Body (POST /v1/simulate)
//
//	{"ingredients": ["meat", "meat", "honey", null], "station": "cookpot", "pick": true}
//
// # AWS Lambda
//
// LambdaHandler adapts the same simulation to a Lambda function URL. It
// accepts the POST /v1/simulate JSON body and returns the Simulation document.
//
// # Configuration
//
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - RATE_LIMIT, RATE_LIMIT_BURST: request rate limiting
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/cookpot/pkg/api.version=1.0.0'"
package api
