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

package recipe

import (
	"fmt"
	"slices"
	"strings"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
)

// Table is the immutable, ordered recipe rule table.
type Table struct {
	rules    []Rule
	index    map[string]int
	fallback int
}

// NewTable binds every recipe definition to its predicate and validates the
// result. Table order follows defs. All failures carry ErrCodeDataIntegrity.
func NewTable(defs []Recipe, predicates map[string]Predicate) (*Table, error) {
	t := &Table{
		rules:    make([]Rule, 0, len(defs)),
		index:    make(map[string]int, len(defs)),
		fallback: -1,
	}

	for _, def := range defs {
		if err := validateRecipe(def); err != nil {
			return nil, integrityError("invalid recipe", def.ID, err)
		}
		if _, dup := t.index[def.ID]; dup {
			return nil, integrityError("duplicate recipe id", def.ID, nil)
		}
		test, ok := predicates[def.ID]
		if !ok {
			return nil, integrityError("recipe has no predicate", def.ID, nil)
		}
		if test == nil {
			return nil, integrityError("recipe predicate is nil", def.ID, nil)
		}
		if def.Fallback {
			if t.fallback >= 0 {
				return nil, integrityError("more than one fallback recipe", def.ID, nil)
			}
			t.fallback = len(t.rules)
		}
		t.index[def.ID] = len(t.rules)
		t.rules = append(t.rules, Rule{Recipe: def, test: test})
	}

	var orphans []string
	for id := range predicates {
		if _, ok := t.index[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) > 0 {
		slices.Sort(orphans)
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeDataIntegrity,
			"predicates without recipe metadata", map[string]any{"recipes": orphans})
	}

	if err := t.validateFallback(); err != nil {
		return nil, err
	}
	return t, nil
}

func validateRecipe(r Recipe) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("empty id")
	}
	if !r.Station.IsValid() {
		return fmt.Errorf("unknown station %q", r.Station)
	}
	if !r.FoodType.IsValid() {
		return fmt.Errorf("unknown food type %q", r.FoodType)
	}
	return nil
}

// validateFallback requires exactly one fallback, on the cookpot, with the
// strictly lowest priority, matching an empty pot.
func (t *Table) validateFallback() error {
	if t.fallback < 0 {
		return cnserrors.New(cnserrors.ErrCodeDataIntegrity, "recipe table has no fallback recipe")
	}
	fb := t.rules[t.fallback]
	if fb.Station != StationCookpot {
		return integrityError("fallback recipe must be a cookpot recipe", fb.ID, nil)
	}
	for i, r := range t.rules {
		if i != t.fallback && r.Priority <= fb.Priority {
			return cnserrors.NewWithContext(cnserrors.ErrCodeDataIntegrity,
				"fallback recipe must have the strictly lowest priority", map[string]any{
					"recipe":   fb.ID,
					"conflict": r.ID,
					"priority": r.Priority,
				})
		}
	}
	if !fb.Match(Bag{}, Bag{}) {
		return integrityError("fallback recipe predicate must be unconditional", fb.ID, nil)
	}
	return nil
}

func integrityError(msg, id string, cause error) error {
	ctx := map[string]any{"recipe": id}
	if cause != nil {
		return cnserrors.WrapWithContext(cnserrors.ErrCodeDataIntegrity, msg, cause, ctx)
	}
	return cnserrors.NewWithContext(cnserrors.ErrCodeDataIntegrity, msg, ctx)
}

// Eligible returns the rules tested in station, in table order.
// The cookpot tests cookpot recipes only; the portable cookpot tests all.
func (t *Table) Eligible(station Station) []Rule {
	if station == StationPortable {
		return slices.Clone(t.rules)
	}
	out := make([]Rule, 0, len(t.rules))
	for _, r := range t.rules {
		if r.Station == StationCookpot {
			out = append(out, r)
		}
	}
	return out
}

// ByStation returns the recipes declared for exactly station, in table order.
func (t *Table) ByStation(station Station) []Recipe {
	var out []Recipe
	for _, r := range t.rules {
		if r.Station == station {
			out = append(out, r.Recipe)
		}
	}
	return out
}

// Get returns the recipe with id.
func (t *Table) Get(id string) (Recipe, bool) {
	i, ok := t.index[id]
	if !ok {
		return Recipe{}, false
	}
	return t.rules[i].Recipe, true
}

// All returns every recipe in table order.
func (t *Table) All() []Recipe {
	out := make([]Recipe, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Recipe
	}
	return out
}

// Fallback returns the catch-all recipe.
func (t *Table) Fallback() Recipe {
	return t.rules[t.fallback].Recipe
}

// Len returns the number of recipes.
func (t *Table) Len() int {
	return len(t.rules)
}
