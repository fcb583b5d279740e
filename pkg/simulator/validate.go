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
	"context"
	"fmt"
	"strconv"

	"github.com/NVIDIA/cookpot/pkg/header"
	"github.com/NVIDIA/cookpot/pkg/ingredient"
	"github.com/NVIDIA/cookpot/pkg/recipe"
)

// ValidationCheck is the outcome of one integrity check.
type ValidationCheck struct {
	Name    string `json:"name" yaml:"name"`
	Passed  bool   `json:"passed" yaml:"passed"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ValidationReport summarizes the integrity of the loaded data.
type ValidationReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Ingredients     int `json:"ingredients" yaml:"ingredients"`
	Variants        int `json:"variants" yaml:"variants"`
	Recipes         int `json:"recipes" yaml:"recipes"`
	CookpotRecipes  int `json:"cookpotRecipes" yaml:"cookpotRecipes"`
	PortableRecipes int `json:"portableRecipes" yaml:"portableRecipes"`

	Checks []ValidationCheck `json:"checks" yaml:"checks"`
	Passed bool              `json:"passed" yaml:"passed"`
}

// Validate checks that every ingredient resolves to a dish on both stations
// when it fills the whole vessel, and that every recipe the table lists is
// reachable through the engine's station rule.
func (s *Service) Validate(ctx context.Context) (*ValidationReport, error) {
	table := s.engine.table
	rep := &ValidationReport{
		Ingredients:     s.catalog.Len(),
		Recipes:         table.Len(),
		CookpotRecipes:  len(table.ByStation(recipe.StationCookpot)),
		PortableRecipes: len(table.ByStation(recipe.StationPortable)),
	}
	for _, item := range s.catalog.All() {
		if item.IsVariant() {
			rep.Variants++
		}
	}

	fallback, err := s.checkFallback(ctx)
	if err != nil {
		return nil, err
	}
	rep.Checks = append(rep.Checks,
		fallback,
		s.checkEligibility(),
		s.checkFallbackStation(),
	)

	rep.Passed = true
	for _, c := range rep.Checks {
		rep.Passed = rep.Passed && c.Passed
	}

	rep.Init(header.KindValidationResult, s.version)
	rep.Metadata["passed"] = strconv.FormatBool(rep.Passed)
	return rep, nil
}

// checkFallback fills the vessel with each ingredient in turn.
func (s *Service) checkFallback(ctx context.Context) (ValidationCheck, error) {
	check := ValidationCheck{Name: "every-ingredient-cooks", Passed: true}

	var failures []string
	items := s.catalog.All()
	for i := range items {
		if err := ctx.Err(); err != nil {
			return check, err
		}
		item := &items[i]
		slots := []*ingredient.Ingredient{item, item, item, item}
		for _, st := range recipe.Stations() {
			if s.engine.Simulate(slots, st).Empty() {
				failures = append(failures, fmt.Sprintf("%s@%s", item.ID, st))
			}
		}
	}

	if len(failures) > 0 {
		check.Passed = false
		check.Message = fmt.Sprintf("%d selections produced nothing: %v", len(failures), failures)
	}
	return check, nil
}

// checkEligibility confirms the portable cookpot tests every cookpot recipe.
func (s *Service) checkEligibility() ValidationCheck {
	check := ValidationCheck{Name: "portable-superset", Passed: true}

	portable := make(map[string]bool)
	for _, r := range s.engine.table.Eligible(recipe.StationPortable) {
		portable[r.ID] = true
	}
	for _, r := range s.engine.table.Eligible(recipe.StationCookpot) {
		if !portable[r.ID] {
			check.Passed = false
			check.Message = fmt.Sprintf("recipe %s is not eligible in the portable cookpot", r.ID)
			break
		}
	}
	return check
}

func (s *Service) checkFallbackStation() ValidationCheck {
	fb := s.engine.table.Fallback()
	check := ValidationCheck{Name: "fallback-recipe", Passed: fb.Station == recipe.StationCookpot}
	check.Message = fmt.Sprintf("%s (priority %d)", fb.ID, fb.Priority)
	return check
}

// TableHeader implements serializer.TableRenderer.
func (v *ValidationReport) TableHeader() []string {
	return []string{"CHECK", "PASSED", "MESSAGE"}
}

// TableRows implements serializer.TableRenderer.
func (v *ValidationReport) TableRows() [][]string {
	rows := [][]string{
		{"ingredients", "-", fmt.Sprintf("%d (%d variants)", v.Ingredients, v.Variants)},
		{"recipes", "-", fmt.Sprintf("%d (%d cookpot, %d portable)", v.Recipes, v.CookpotRecipes, v.PortableRecipes)},
	}
	for _, c := range v.Checks {
		msg := c.Message
		if msg == "" {
			msg = "-"
		}
		rows = append(rows, []string{c.Name, strconv.FormatBool(c.Passed), msg})
	}
	return rows
}
