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
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/NVIDIA/cookpot/pkg/ingredient"
	"github.com/NVIDIA/cookpot/pkg/logging"
	"github.com/NVIDIA/cookpot/pkg/recipe"
	"github.com/NVIDIA/cookpot/pkg/server"
	"github.com/NVIDIA/cookpot/pkg/simulator"
)

const (
	name           = "cookpotd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/cookpot/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Version returns the build version stamped into logs and report headers.
// Every cookpot server binary, including the Lambda function, sets it with
// -X "github.com/NVIDIA/cookpot/pkg/api.version=<version>".
func Version() string {
	return version
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the embedded data, sets up routes, and handles
// graceful shutdown on SIGINT and SIGTERM.
func Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	svc, err := NewService(ctx)
	if err != nil {
		slog.Error("failed to load cooking data", "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(svc)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewService builds a simulator service from the embedded catalog and recipe
// table. Any data integrity error is returned as is.
func NewService(ctx context.Context) (*simulator.Service, error) {
	catalog, err := ingredient.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient catalog: %w", err)
	}

	table, err := recipe.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe table: %w", err)
	}

	slog.Info("cooking data loaded",
		"ingredients", catalog.Len(),
		"recipes", table.Len(),
	)

	return simulator.NewService(catalog, table, simulator.WithVersion(version)), nil
}

// Routes returns the application routes served by cookpotd.
func Routes(svc *simulator.Service) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/simulate":       svc.HandleSimulate,
		"/v1/simulate/batch": svc.HandleSimulateBatch,
		"/v1/ingredients":    svc.Catalog().HandleIngredients,
		"/v1/recipes":        svc.Engine().Table().HandleRecipes,
	}
}
