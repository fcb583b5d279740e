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
	stderrors "errors"
	"maps"
	"net/http"
	"time"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/NVIDIA/cookpot/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Code      cnserrors.ErrorCode `json:"code"`
	Message   string              `json:"message"`
	Details   map[string]any      `json:"details,omitempty"`
	RequestID string              `json:"requestId"`
	Timestamp time.Time           `json:"timestamp"`
	Retryable bool                `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an error response. The status and code
// come from the StructuredError in err's chain; the structured error's
// context and message are merged into details.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	code := cnserrors.CodeOf(err)
	if stderrors.Is(err, context.DeadlineExceeded) {
		code = cnserrors.ErrCodeTimeout
	}

	merged := make(map[string]any, len(details)+2)
	var se *cnserrors.StructuredError
	if stderrors.As(err, &se) {
		maps.Copy(merged, se.Context)
	}
	maps.Copy(merged, details)
	if err != nil {
		merged["error"] = err.Error()
	}

	status, retryable := StatusFor(code)
	WriteError(w, r, status, code, message, retryable, merged)
}

// StatusFor maps an error code onto an HTTP status and retryability.
func StatusFor(code cnserrors.ErrorCode) (int, bool) {
	switch code {
	case cnserrors.ErrCodeNotFound:
		return http.StatusNotFound, false
	case cnserrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized, false
	case cnserrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest, false
	case cnserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed, false
	case cnserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, true
	case cnserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests, true
	case cnserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable, true
	default:
		return http.StatusInternalServerError, false
	}
}
