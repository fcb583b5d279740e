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

// Package simulator determines which dish a cooking vessel produces.
//
// The Engine is the core: given exactly four resolved ingredients and a
// station, it aggregates a name-count bag and a tag-sum bag, evaluates every
// eligible recipe predicate, and keeps the matches at the highest priority.
//
//	table, _ := recipe.Default(ctx)
//	engine := simulator.NewEngine(table)
//	res := engine.Simulate(slots, recipe.StationCookpot)
//	fmt.Println(res.RecipeIDs, res.Ambiguous)
//
// An incomplete selection (fewer than four slots, or an empty slot) yields an
// empty result rather than an error. When several recipes tie at the top
// priority the result is marked ambiguous; the engine never chooses among
// them. Callers that want a single dish use Result.Pick.
//
// Service pairs the engine with the ingredient catalog. It resolves ingredient
// ids (unknown ids fail with a NOT_FOUND structured error), builds Report
// documents with recipe display metadata, and runs batches concurrently with
// a bounded worker group. Its HTTP handlers back the /v1/simulate routes.
//
// The Engine, Catalog and Table hold no mutable state and are safe for
// concurrent use.
package simulator
