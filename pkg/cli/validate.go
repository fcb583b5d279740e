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

	"github.com/urfave/cli/v3"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Check the embedded ingredient and recipe data",
		Description: `Load the ingredient catalog and the recipe table, then run integrity checks:

  every-ingredient-cooks  four of any ingredient cook something on both stations
  portable-superset       the portable station tests every cookpot recipe
  fallback-recipe         the catch-all recipe is a cookpot recipe

The report is written even when a check fails. The command then exits non-zero.

Examples:
  cookpot validate --format table`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			svc, err := loadService(ctx)
			if err != nil {
				return err
			}

			rep, err := svc.Validate(ctx)
			if err != nil {
				return fmt.Errorf("validation could not complete: %w", err)
			}

			if err := writeOutput(ctx, cmd, rep); err != nil {
				return err
			}
			if !rep.Passed {
				return fmt.Errorf("data validation failed")
			}
			return nil
		},
	}
}
