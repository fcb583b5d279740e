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

// Package recipe holds the cooking recipe rule table.
//
// Every recipe pairs display metadata (name, food type, station, priority)
// loaded from embedded YAML with a predicate keyed by recipe id. A predicate
// receives two read-only bags: the count of each ingredient id in the pot and
// the summed weight of each tag. Any key absent from a bag reads as zero.
//
// Station eligibility:
//
//   - cookpot: only cookpot recipes are tested.
//   - portablecookpot: every recipe is tested, cookpot recipes included.
//
// Exactly one recipe is the fallback. Its predicate is unconditional and it
// carries the strictly lowest priority, so any four ingredients cooked in a
// cookpot produce at least one result.
//
// Usage:
//
//	table, err := recipe.Default(ctx)
//	if err != nil {
//	    return err
//	}
//	for _, rule := range table.Eligible(recipe.StationCookpot) {
//	    if rule.Match(names, tags) {
//	        ...
//	    }
//	}
package recipe
