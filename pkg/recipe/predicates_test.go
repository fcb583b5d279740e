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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profiles mirrors the tag weights of the ingredients used below.
var profiles = map[string]map[string]float64{
	"meat":              {meat: 1},
	"smallmeat":         {meat: 0.5},
	"drumstick":         {meat: 0.5},
	"mole":              {meat: 0.5},
	"berries":           {fruit: 0.5},
	"wormlight":         {fruit: 1, magic: 1},
	"wormlight_lesser":  {fruit: 0.5},
	"cactus_meat":       {veggie: 1},
	"twigs":             {inedible: 1},
	"honey":             {sweetener: 1},
	"ice":               {frozen: 1},
	"acorn":             {seed: 1},
	"lightninggoathorn": {inedible: 1, magic: 2},
	"potato":            {veggie: 1},
	"onion":             {veggie: 1},
	"nightmarefuel":     {inedible: 1, magic: 1},
}

func pot(t *testing.T, ids ...string) (Bag, Bag) {
	t.Helper()
	names := map[string]float64{}
	tags := map[string]float64{}
	for _, id := range ids {
		p, ok := profiles[id]
		require.True(t, ok, "no profile for %s", id)
		names[id]++
		for k, v := range p {
			tags[k] += v
		}
	}
	return NewBag(names), NewBag(tags)
}

func TestPredicates_Count(t *testing.T) {
	assert.Len(t, Predicates(), 79)
}

func TestPredicates_FreshMap(t *testing.T) {
	a := Predicates()
	delete(a, "wetgoop")
	assert.Contains(t, Predicates(), "wetgoop")
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		recipe string
		pot    []string
		want   bool
	}{
		{"meatballs", []string{"meat", "berries", "berries", "berries"}, true},
		{"meatballs", []string{"meat", "meat", "meat", "twigs"}, false},
		{"bonestew", []string{"meat", "meat", "meat", "meat"}, true},
		{"bonestew", []string{"meat", "meat", "smallmeat", "berries"}, false},
		{"beefalofeed", []string{"twigs", "twigs", "twigs", "twigs"}, true},
		{"beefalofeed", []string{"lightninggoathorn", "twigs", "twigs", "twigs"}, false},
		{"honeyham", []string{"honey", "meat", "meat", "berries"}, true},
		{"honeyham", []string{"honey", "meat", "berries", "berries"}, false},
		{"honeynuggets", []string{"honey", "meat", "berries", "berries"}, true},
		{"honeynuggets", []string{"honey", "meat", "twigs", "berries"}, false},
		{"bunnystew", []string{"ice", "ice", "smallmeat", "berries"}, true},
		{"bunnystew", []string{"ice", "ice", "meat", "berries"}, false},
		{"turkeydinner", []string{"drumstick", "drumstick", "meat", "berries"}, true},
		{"turkeydinner", []string{"drumstick", "drumstick", "meat", "twigs"}, false},
		{"glowberrymousse", []string{"wormlight", "berries", "berries", "berries"}, true},
		{"glowberrymousse", []string{"wormlight_lesser", "berries", "berries", "berries"}, false},
		{"glowberrymousse", []string{"wormlight_lesser", "wormlight_lesser", "berries", "berries"}, true},
		{"trailmix", []string{"acorn", "berries", "berries", "berries"}, true},
		{"trailmix", []string{"acorn", "berries", "berries", "meat"}, false},
		{"guacamole", []string{"mole", "cactus_meat", "twigs", "twigs"}, true},
		{"guacamole", []string{"mole", "cactus_meat", "berries", "twigs"}, false},
		{"voltgoatjelly", []string{"lightninggoathorn", "honey", "honey", "twigs"}, true},
		{"voltgoatjelly", []string{"lightninggoathorn", "honey", "twigs", "twigs"}, false},
		{"nightmarepie", []string{"nightmarefuel", "nightmarefuel", "potato", "onion"}, true},
		{"kabobs", []string{"meat", "twigs", "berries", "berries"}, true},
		{"kabobs", []string{"meat", "twigs", "twigs", "berries"}, false},
		{"wetgoop", []string{"twigs", "twigs", "twigs", "twigs"}, true},
	}

	preds := Predicates()
	for _, tt := range tests {
		t.Run(tt.recipe, func(t *testing.T) {
			p, ok := preds[tt.recipe]
			require.True(t, ok)
			names, tags := pot(t, tt.pot...)
			assert.Equal(t, tt.want, p(names, tags), "%v", tt.pot)
		})
	}
}

func TestPredicates_Total(t *testing.T) {
	exotic := map[string]float64{}
	for _, k := range []string{fruit, monster, sweetener, veggie, meat, fish, egg, fat, dairy, inedible, seed, magic, frozen, "precook", "dried"} {
		exotic[k] = 1e9
	}
	names := NewBag(map[string]float64{"twigs": 4, "honey": 4, "unknown_thing": 4})

	for id, p := range Predicates() {
		assert.NotPanics(t, func() { p(Bag{}, Bag{}) }, id)
		assert.NotPanics(t, func() { p(names, NewBag(exotic)) }, id)
	}
}

func TestPredicates_OnlyFallbackMatchesEmptyPot(t *testing.T) {
	var matched []string
	for id, p := range Predicates() {
		if p(Bag{}, Bag{}) {
			matched = append(matched, id)
		}
	}
	assert.Equal(t, []string{"wetgoop"}, matched)
}
