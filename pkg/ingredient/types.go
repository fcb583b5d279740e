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

package ingredient

import (
	"maps"
	"slices"
)

// Tag is a named dimension of an ingredient's cooking profile.
type Tag string

// Tag vocabulary understood by the recipe rules.
const (
	TagFruit      Tag = "fruit"
	TagMonster    Tag = "monster"
	TagSweetener  Tag = "sweetener"
	TagVeggie     Tag = "veggie"
	TagMeat       Tag = "meat"
	TagFish       Tag = "fish"
	TagEgg        Tag = "egg"
	TagDecoration Tag = "decoration"
	TagFat        Tag = "fat"
	TagDairy      Tag = "dairy"
	TagInedible   Tag = "inedible"
	TagSeed       Tag = "seed"
	TagMagic      Tag = "magic"
	TagFrozen     Tag = "frozen"
	TagPrecook    Tag = "precook"
	TagDried      Tag = "dried"
)

var knownTags = map[Tag]struct{}{
	TagFruit: {}, TagMonster: {}, TagSweetener: {}, TagVeggie: {},
	TagMeat: {}, TagFish: {}, TagEgg: {}, TagDecoration: {},
	TagFat: {}, TagDairy: {}, TagInedible: {}, TagSeed: {},
	TagMagic: {}, TagFrozen: {}, TagPrecook: {}, TagDried: {},
}

// IsValid reports whether t belongs to the tag vocabulary.
func (t Tag) IsValid() bool {
	_, ok := knownTags[t]
	return ok
}

// Category groups ingredients for browsing.
type Category string

// Supported categories, in display order.
const (
	CategoryFruits     Category = "fruits"
	CategoryVeggies    Category = "veggies"
	CategoryMeats      Category = "meats"
	CategoryFish       Category = "fish"
	CategoryEggs       Category = "eggs"
	CategorySweeteners Category = "sweeteners"
	CategoryMisc       Category = "misc"
)

// Categories returns all supported categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFruits, CategoryVeggies, CategoryMeats, CategoryFish,
		CategoryEggs, CategorySweeteners, CategoryMisc,
	}
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, slices.Contains(Categories(), c)
}

// Ingredient is a single item that can be placed into a cooking slot.
type Ingredient struct {
	// ID is the unique, stable key of the ingredient.
	ID string `json:"id" yaml:"id"`

	// Name is the English display name.
	Name string `json:"name" yaml:"name"`

	// LocalizedNames maps a locale (e.g. "ko") to a display name.
	LocalizedNames map[string]string `json:"localizedNames,omitempty" yaml:"localizedNames,omitempty"`

	// Tags maps tag to a positive weight. A missing tag weighs zero.
	Tags map[Tag]float64 `json:"tags" yaml:"tags"`

	Category Category `json:"category" yaml:"category"`

	// Cookable bases produce a "_cooked" variant.
	Cookable bool `json:"cookable,omitempty" yaml:"cookable,omitempty"`

	// Dryable bases produce a "_dried" variant.
	Dryable bool `json:"dryable,omitempty" yaml:"dryable,omitempty"`

	// Base is set on derived variants to the id they were derived from.
	Base string `json:"base,omitempty" yaml:"base,omitempty"`
}

// Weight returns the weight of tag t, or 0 when the ingredient lacks it.
func (i Ingredient) Weight(t Tag) float64 {
	return i.Tags[t]
}

// IsVariant reports whether the ingredient was derived from a base.
func (i Ingredient) IsVariant() bool {
	return i.Base != ""
}

// DisplayName returns the name for locale, falling back to Name.
func (i Ingredient) DisplayName(locale string) string {
	if n, ok := i.LocalizedNames[locale]; ok && n != "" {
		return n
	}
	return i.Name
}

func (i Ingredient) clone() Ingredient {
	c := i
	c.Tags = maps.Clone(i.Tags)
	c.LocalizedNames = maps.Clone(i.LocalizedNames)
	return c
}
