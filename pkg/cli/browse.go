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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/cookpot/pkg/ingredient"
	"github.com/NVIDIA/cookpot/pkg/recipe"
)

func ingredientsCmd() *cli.Command {
	categories := make([]string, 0, len(ingredient.Categories()))
	for _, c := range ingredient.Categories() {
		categories = append(categories, string(c))
	}

	return &cli.Command{
		Name:                  "ingredients",
		EnableShellCompletion: true,
		Usage:                 "List the ingredient catalog",
		Description: `List the ingredients that can go into a cooking slot, including the
cooked and dried variants derived from cookable and dryable bases.

Examples:
  cookpot ingredients --format table
  cookpot ingredients --category fruits
  cookpot ingredients --query berries --locale ko`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Only list one category (supported values: %s)", strings.Join(categories, ", ")),
			},
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Case-insensitive search on id and names",
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: "Replace names with their localized form (e.g. ko)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			var category ingredient.Category
			if raw := cmd.String("category"); raw != "" {
				c, ok := ingredient.ParseCategory(raw)
				if !ok {
					return fmt.Errorf("invalid category %q, supported values: %s", raw, strings.Join(categories, ", "))
				}
				category = c
			}

			catalog, err := ingredient.Default(ctx)
			if err != nil {
				return fmt.Errorf("failed to load ingredient catalog: %w", err)
			}

			items := catalog.Filter(category, cmd.String("query"))
			if locale := cmd.String("locale"); locale != "" {
				for i := range items {
					items[i].Name = items[i].DisplayName(locale)
				}
			}

			return writeOutput(ctx, cmd, ingredient.NewList(items))
		},
	}
}

func recipesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipes",
		EnableShellCompletion: true,
		Usage:                 "List the recipe table",
		Description: `List the recipes in evaluation order with their food type, station and
priority. With --station, only the recipes declared for that station are
listed. The Portable Crock Pot additionally cooks every cookpot recipe.

Examples:
  cookpot recipes --format table
  cookpot recipes --station portablecookpot`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "station",
				Aliases: []string{"s"},
				Usage:   "Only list recipes declared for this station",
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

			table, err := recipe.Default(ctx)
			if err != nil {
				return fmt.Errorf("failed to load recipe table: %w", err)
			}

			items := table.All()
			if station != "" {
				items = table.ByStation(station)
			}

			return writeOutput(ctx, cmd, recipe.NewList(items))
		},
	}
}
