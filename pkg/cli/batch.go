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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookpot/pkg/defaults"
	"github.com/NVIDIA/cookpot/pkg/serializer"
	"github.com/NVIDIA/cookpot/pkg/simulator"
)

func batchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "batch",
		EnableShellCompletion: true,
		Usage:                 "Simulate many selections from a file",
		Description: `Run every selection of a batch document and report the outcomes in input
order. The document is YAML or JSON, chosen by file extension, and may be a
local path or an HTTP/HTTPS URL.

Document format:
  station: cookpot        # default for items without a station
  items:
    - ingredients: [meat, berries, berries, berries]
    - ingredients: [meat, meat, meat, meat]
      station: portablecookpot
      explain: true

Examples:
  cookpot batch -f selections.yaml --format table
  cookpot batch -f https://example.com/selections.json --concurrency 4`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path or HTTP/HTTPS URL of the batch document",
			},
			stationFlag("Station for items that do not name one, overrides the document default"),
			&cli.IntFlag{
				Name:  "concurrency",
				Value: defaults.BatchConcurrency,
				Usage: "Maximum number of simulations run in parallel",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIBatchTimeout,
				Usage: "Maximum time for the whole batch",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			station, err := parseStation(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			path := cmd.String("file")
			doc, err := serializer.FromFile[simulator.BatchRequest](ctx, path)
			if err != nil {
				return err
			}
			if station != "" {
				doc.Station = station
			}

			svc, err := loadService(ctx, simulator.WithConcurrency(cmd.Int("concurrency")))
			if err != nil {
				return err
			}

			rep, err := svc.SimulateBatch(ctx, doc.Requests())
			if err != nil {
				return fmt.Errorf("batch from %q failed: %w", path, err)
			}
			slog.Debug("batch complete", "path", path, "items", len(rep.Items))

			return writeOutput(ctx, cmd, rep)
		},
	}
}
