//go:build lambda

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

package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/NVIDIA/cookpot/pkg/api"
	"github.com/NVIDIA/cookpot/pkg/logging"
)

// Build with -ldflags="-X 'github.com/NVIDIA/cookpot/pkg/api.version=1.0.0'"
// to stamp the version into logs and reports.
func main() {
	logging.SetDefaultStructuredLogger("cookpot-lambda", api.Version())

	svc, err := api.NewService(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	lambda.Start(api.LambdaHandler(svc))
}
