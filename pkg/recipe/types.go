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
	"strings"
)

// Station is the cooking vessel a recipe is made in.
type Station string

// Supported stations.
const (
	// StationCookpot is the primary vessel. Its recipes are always eligible.
	StationCookpot Station = "cookpot"

	// StationPortable is the secondary vessel. It tests every recipe.
	StationPortable Station = "portablecookpot"
)

var stationAliases = map[string]Station{
	"cookpot":         StationCookpot,
	"primary":         StationCookpot,
	"portablecookpot": StationPortable,
	"secondary":       StationPortable,
}

// Stations returns the supported stations.
func Stations() []Station {
	return []Station{StationCookpot, StationPortable}
}

// ParseStation converts a string into a Station. It accepts the station
// names and the "primary" and "secondary" aliases, ignoring case.
func ParseStation(s string) (Station, error) {
	st, ok := stationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid station %q: must be one of cookpot, portablecookpot, primary, secondary", s)
	}
	return st, nil
}

// String returns the string representation of the station.
func (s Station) String() string {
	return string(s)
}

// IsValid reports whether s is a supported station.
func (s Station) IsValid() bool {
	return s == StationCookpot || s == StationPortable
}

// FoodType classifies a dish for display.
type FoodType string

// Supported food types.
const (
	FoodTypeMeat     FoodType = "meat"
	FoodTypeVeggie   FoodType = "veggie"
	FoodTypeGoodies  FoodType = "goodies"
	FoodTypeRoughage FoodType = "roughage"
	FoodTypeGeneric  FoodType = "generic"
)

// IsValid reports whether f is a supported food type.
func (f FoodType) IsValid() bool {
	switch f {
	case FoodTypeMeat, FoodTypeVeggie, FoodTypeGoodies, FoodTypeRoughage, FoodTypeGeneric:
		return true
	default:
		return false
	}
}

// Recipe is the display metadata of a dish.
type Recipe struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	FoodType FoodType `json:"foodType" yaml:"foodType"`
	Station  Station  `json:"station" yaml:"station"`

	// Priority orders matches. Only the highest matching priority wins.
	Priority int `json:"priority" yaml:"priority"`

	// Fallback marks the unconditional catch-all recipe.
	Fallback bool `json:"fallback,omitempty" yaml:"fallback,omitempty"`
}

// Predicate decides whether the pot contents satisfy a recipe.
// names counts ingredient ids; tags sums tag weights.
type Predicate func(names, tags Bag) bool

// Rule is a recipe bound to its predicate.
type Rule struct {
	Recipe

	test Predicate
}

// Match reports whether the rule's predicate accepts the bags.
func (r Rule) Match(names, tags Bag) bool {
	return r.test(names, tags)
}
