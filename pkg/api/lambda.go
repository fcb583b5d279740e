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

package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/NVIDIA/cookpot/pkg/server"
	"github.com/NVIDIA/cookpot/pkg/simulator"
	"github.com/aws/aws-lambda-go/events"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

// LambdaHandlerFunc handles a Lambda function URL invocation.
type LambdaHandlerFunc func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error)

// LambdaHandler returns a function URL handler that simulates the JSON body
// of each invocation. Failures are reported in the response, never as a
// Lambda error.
func LambdaHandler(svc *simulator.Service) LambdaHandlerFunc {
	return func(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		lambdaError := func(err error) (events.LambdaFunctionURLResponse, error) {
			return errorResponse(err, event.RequestContext.RequestID)
		}

		body := event.Body
		if event.IsBase64Encoded {
			decoded, err := base64.StdEncoding.DecodeString(body)
			if err != nil {
				return lambdaError(cnserrors.New(cnserrors.ErrCodeInvalidRequest, "invalid base64 body"))
			}
			body = string(decoded)
		}

		req, err := simulator.ParseRequestJSON([]byte(body))
		if err != nil {
			return lambdaError(cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid simulation request", err))
		}

		rep, err := svc.Simulate(req)
		if err != nil {
			return lambdaError(err)
		}

		out, err := json.Marshal(rep)
		if err != nil {
			return lambdaError(cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to encode report", err))
		}
		return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(out)}, nil
	}
}

func errorResponse(err error, requestID string) (events.LambdaFunctionURLResponse, error) {
	code := cnserrors.CodeOf(err)
	status, retryable := server.StatusFor(code)
	slog.Warn("lambda request failed", "status", status, "requestID", requestID, "error", err)

	body, _ := json.Marshal(server.ErrorResponse{
		Code:      code,
		Message:   err.Error(),
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
	return events.LambdaFunctionURLResponse{StatusCode: status, Headers: jsonHeader, Body: string(body)}, nil
}
