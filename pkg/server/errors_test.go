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

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code      cnserrors.ErrorCode
		status    int
		retryable bool
	}{
		{cnserrors.ErrCodeNotFound, http.StatusNotFound, false},
		{cnserrors.ErrCodeUnauthorized, http.StatusUnauthorized, false},
		{cnserrors.ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{cnserrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, false},
		{cnserrors.ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{cnserrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{cnserrors.ErrCodeUnavailable, http.StatusServiceUnavailable, true},
		{cnserrors.ErrCodeDataIntegrity, http.StatusInternalServerError, false},
		{cnserrors.ErrCodeInternal, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			status, retryable := StatusFor(tt.code)
			if status != tt.status || retryable != tt.retryable {
				t.Errorf("StatusFor(%s) = %d/%v, want %d/%v", tt.code, status, retryable, tt.status, tt.retryable)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/simulate", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest, "bad input", false,
		map[string]any{"field": "station"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != cnserrors.ErrCodeInvalidRequest {
		t.Errorf("code = %s", resp.Code)
	}
	if resp.RequestID != "req-123" {
		t.Errorf("requestId = %q, want req-123", resp.RequestID)
	}
	if resp.Details["field"] != "station" {
		t.Errorf("details = %v", resp.Details)
	}
}

func TestWriteErrorFromErr(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   cnserrors.ErrorCode
	}{
		{
			name:   "not found with context",
			err:    cnserrors.NewWithContext(cnserrors.ErrCodeNotFound, "unknown ingredient", map[string]any{"ingredient": "kale"}),
			status: http.StatusNotFound,
			code:   cnserrors.ErrCodeNotFound,
		},
		{
			name:   "wrapped invalid request",
			err:    fmt.Errorf("outer: %w", cnserrors.New(cnserrors.ErrCodeInvalidRequest, "bad station")),
			status: http.StatusBadRequest,
			code:   cnserrors.ErrCodeInvalidRequest,
		},
		{
			name:   "deadline exceeded",
			err:    fmt.Errorf("batch: %w", context.DeadlineExceeded),
			status: http.StatusGatewayTimeout,
			code:   cnserrors.ErrCodeTimeout,
		},
		{
			name:   "plain error",
			err:    fmt.Errorf("boom"),
			status: http.StatusInternalServerError,
			code:   cnserrors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, "failed", nil)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Code, tt.code)
			}
			if resp.Details["error"] != tt.err.Error() {
				t.Errorf("details.error = %v", resp.Details["error"])
			}
			if resp.RequestID == "" {
				t.Error("expected a generated request id")
			}
		})
	}

	t.Run("structured context merged", func(t *testing.T) {
		err := cnserrors.NewWithContext(cnserrors.ErrCodeNotFound, "unknown ingredient", map[string]any{"ingredient": "kale"})
		w := httptest.NewRecorder()
		WriteErrorFromErr(w, httptest.NewRequest(http.MethodGet, "/", nil), err, "failed", map[string]any{"slot": 2})

		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Details["ingredient"] != "kale" {
			t.Errorf("ingredient = %v, want kale", resp.Details["ingredient"])
		}
		if resp.Details["slot"] != float64(2) {
			t.Errorf("slot = %v, want 2", resp.Details["slot"])
		}
	})
}
