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

// Package cli implements the cookpot command-line interface.
//
// # Overview
//
// The cookpot CLI simulates what a Crock Pot or Portable Crock Pot produces for
// a selection of four ingredients, and browses the embedded ingredient
// catalog and recipe table.
//
// # Commands
//
// simulate - Simulate one selection:
//
//	cookpot simulate -i meat -i berries -i berries -i berries
//
// Resolves the ingredient ids, evaluates every eligible recipe and prints the
// highest priority matches. An ambiguous result lists every tied recipe;
// --pick chooses one of them and --explain lists every match before the
// priority cut.
//
// ingredients - Browse the catalog:
//
//	cookpot ingredients --category fruits --format table
//
// recipes - Browse the recipe table:
//
//	cookpot recipes --station portablecookpot
//
// batch - Simulate many selections from a YAML or JSON document:
//
//	cookpot batch -f selections.yaml --concurrency 4
//
// validate - Check the embedded data:
//
//	cookpot validate
//
// # Global Flags
//
//	--log-level    Logging level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	LOG_LEVEL        Set logging verbosity (debug, info, warn, error)
//	COOKPOT_FORMAT   Default output format
//	COOKPOT_STATION  Default station for simulate and batch
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unknown ingredient, failed validation)
package cli
