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

package simulator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/cookpot/pkg/defaults"
	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/NVIDIA/cookpot/pkg/serializer"
	"github.com/NVIDIA/cookpot/pkg/server"
)

// HandleSimulate runs one simulation. GET reads query parameters
// (ingredient, station, pick, explain); POST reads a JSON or YAML body.
func (s *Service) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req Request
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = ParseRequestFromValues(r.URL.Query())
	case http.MethodPost:
		defer r.Body.Close()
		req, err = ParseRequestFromBody(r.Body, r.Header.Get("Content-Type"))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}

	if err != nil {
		writeParseError(w, r, err, "Invalid simulation request")
		return
	}

	slog.Debug("simulate",
		"requestID", server.RequestID(r.Context()),
		"ingredients", req.Ingredients,
		"station", req.Station,
		"pick", req.Pick,
	)

	rep, err := s.Simulate(req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to simulate", nil)
		return
	}

	// A picked result is random and must not be cached.
	if req.Pick {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.SimulateCacheTTL.Seconds())))
	}

	serializer.RespondJSON(w, http.StatusOK, rep)
}

// HandleSimulateBatch runs a batch of simulations from a JSON or YAML body.
func (s *Service) HandleSimulateBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SimulateHandlerTimeout)
	defer cancel()
	defer r.Body.Close()

	batch, err := ParseBatchFromBody(r.Body, r.Header.Get("Content-Type"))
	if err != nil {
		writeParseError(w, r, err, "Invalid batch request")
		return
	}

	rep, err := s.SimulateBatch(ctx, batch.Requests())
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to simulate batch", nil)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	serializer.RespondJSON(w, http.StatusOK, rep)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}

func writeParseError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	server.WriteError(w, r, status, cnserrors.ErrCodeInvalidRequest, message, false,
		map[string]any{
			"error": err.Error(),
		})
}
