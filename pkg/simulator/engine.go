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

package simulator

import (
	"math/rand/v2"
	"slices"

	"github.com/NVIDIA/cookpot/pkg/ingredient"
	"github.com/NVIDIA/cookpot/pkg/recipe"
)

// SlotCount is the number of ingredient slots in a cooking vessel.
const SlotCount = 4

// Result is the outcome of one simulation.
type Result struct {
	// RecipeIDs holds every match at the winning priority, in table order.
	// It is empty when the selection is incomplete or nothing matched.
	RecipeIDs []string `json:"matchedRecipeIds" yaml:"matchedRecipeIds"`

	// Ambiguous is set when more than one recipe shares the winning priority.
	Ambiguous bool `json:"isAmbiguous" yaml:"isAmbiguous"`

	// Priority is the winning priority. Zero for an empty result.
	Priority int `json:"priority" yaml:"priority"`
}

func emptyResult() *Result {
	return &Result{RecipeIDs: []string{}}
}

// Empty reports whether no recipe matched.
func (r *Result) Empty() bool {
	return r == nil || len(r.RecipeIDs) == 0
}

// Pick chooses one matched id uniformly at random. A nil rng uses the
// global source. Pick returns "" for an empty result.
func (r *Result) Pick(rng *rand.Rand) string {
	switch {
	case r.Empty():
		return ""
	case len(r.RecipeIDs) == 1:
		return r.RecipeIDs[0]
	case rng == nil:
		return r.RecipeIDs[rand.IntN(len(r.RecipeIDs))]
	default:
		return r.RecipeIDs[rng.IntN(len(r.RecipeIDs))]
	}
}

// Engine evaluates recipe rules against cooking selections.
type Engine struct {
	table *recipe.Table
}

// NewEngine returns an engine over table.
func NewEngine(table *recipe.Table) *Engine {
	return &Engine{table: table}
}

// Table returns the rule table the engine evaluates.
func (e *Engine) Table() *recipe.Table {
	return e.table
}

// Aggregate counts ingredient ids and sums tag weights over slots.
// Nil slots contribute nothing. The bags are built fresh on every call.
func Aggregate(slots []*ingredient.Ingredient) (names, tags recipe.Bag) {
	n := make(map[string]float64, len(slots))
	t := make(map[string]float64)
	for _, item := range slots {
		if item == nil {
			continue
		}
		n[item.ID]++
		for tag, w := range item.Tags {
			t[string(tag)] += w
		}
	}
	return recipe.NewBag(n), recipe.NewBag(t)
}

// complete reports whether slots is a full selection.
func complete(slots []*ingredient.Ingredient) bool {
	if len(slots) != SlotCount {
		return false
	}
	return !slices.Contains(slots, nil)
}

// matches returns every eligible rule whose predicate accepts slots.
func (e *Engine) matches(slots []*ingredient.Ingredient, station recipe.Station) []recipe.Rule {
	if !complete(slots) {
		return nil
	}

	names, tags := Aggregate(slots)
	var out []recipe.Rule
	for _, rule := range e.table.Eligible(station) {
		if rule.Match(names, tags) {
			out = append(out, rule)
		}
	}
	return out
}

// Simulate returns the recipes produced by slots in station.
// A selection that is not exactly SlotCount filled slots yields an empty
// result. Any station other than the portable cookpot tests cookpot
// recipes only.
func (e *Engine) Simulate(slots []*ingredient.Ingredient, station recipe.Station) *Result {
	matched := e.matches(slots, station)
	if len(matched) == 0 {
		return emptyResult()
	}

	best := matched[0].Priority
	for _, rule := range matched[1:] {
		best = max(best, rule.Priority)
	}

	res := &Result{Priority: best}
	for _, rule := range matched {
		if rule.Priority == best {
			res.RecipeIDs = append(res.RecipeIDs, rule.ID)
		}
	}
	res.Ambiguous = len(res.RecipeIDs) > 1
	return res
}

// Candidates returns every recipe whose predicate accepts slots in station,
// before the priority cut, in table order.
func (e *Engine) Candidates(slots []*ingredient.Ingredient, station recipe.Station) []recipe.Recipe {
	matched := e.matches(slots, station)
	out := make([]recipe.Recipe, len(matched))
	for i, rule := range matched {
		out[i] = rule.Recipe
	}
	return out
}
