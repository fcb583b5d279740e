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
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookpot/pkg/simulator"
)

func simulateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "simulate",
		EnableShellCompletion: true,
		Usage:                 "Simulate the dish cooked from four ingredients",
		ArgsUsage:             "[ingredient...]",
		Description: fmt.Sprintf(`Resolve up to %d ingredient ids and report the highest priority recipes
they match. Ingredients are given with --ingredient (repeatable) or as
arguments. Fewer than %d ingredients simulate an incomplete vessel, which
cooks nothing.

Examples:
  cookpot simulate -i meat -i berries -i berries -i berries
  cookpot simulate --station portablecookpot meat meat meat meat --explain
  cookpot simulate -i meat -i meat -i honey -i honey --pick --format table`,
			simulator.SlotCount, simulator.SlotCount),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage:   "Ingredient id, repeat for each slot",
			},
			stationFlag("Cooking station: cookpot (primary) or portablecookpot (secondary)"),
			&cli.BoolFlag{
				Name:  "pick",
				Usage: "Choose one recipe at random when several tie",
			},
			&cli.BoolFlag{
				Name:  "explain",
				Usage: "List every matching recipe before the priority cut",
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

			ids := slices.Concat(cmd.StringSlice("ingredient"), cmd.Args().Slice())
			if len(ids) == 0 {
				return fmt.Errorf("no ingredients given, use --ingredient or arguments")
			}

			svc, err := loadService(ctx)
			if err != nil {
				return err
			}

			rep, err := svc.Simulate(simulator.Request{
				Ingredients: ids,
				Station:     station,
				Pick:        cmd.Bool("pick"),
				Explain:     cmd.Bool("explain"),
			})
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			return writeOutput(ctx, cmd, rep)
		},
	}
}
