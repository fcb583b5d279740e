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
	"fmt"
	"maps"
	"strings"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"golang.org/x/text/cases"
)

const (
	cookedSuffix = "_cooked"
	driedSuffix  = "_dried"
)

// variantPrefix holds the cooked and dried name prefixes for one locale.
type variantPrefix struct {
	cooked string
	dried  string
}

// localizedPrefixes lists the locales whose variant names can be derived.
// A localized base name in any other locale is not carried to the variant.
var localizedPrefixes = map[string]variantPrefix{
	"ko": {cooked: "구운", dried: "말린"},
}

// GenerateVariants derives the cooked and dried variants of bases.
// Output follows base order with the cooked variant before the dried one.
// The input is not modified.
func GenerateVariants(bases []Ingredient) []Ingredient {
	variants := make([]Ingredient, 0, len(bases))
	for _, b := range bases {
		if b.Cookable {
			variants = append(variants, derive(b, cookedSuffix, "Cooked", TagPrecook,
				func(p variantPrefix) string { return p.cooked }))
		}
		if b.Dryable {
			variants = append(variants, derive(b, driedSuffix, "Dried", TagDried,
				func(p variantPrefix) string { return p.dried }))
		}
	}
	return variants
}

func derive(b Ingredient, suffix, prefix string, tag Tag, localized func(variantPrefix) string) Ingredient {
	v := Ingredient{
		ID:       b.ID + suffix,
		Name:     prefix + " " + b.Name,
		Tags:     maps.Clone(b.Tags),
		Category: b.Category,
		Base:     b.ID,
	}
	if v.Tags == nil {
		v.Tags = make(map[Tag]float64, 1)
	}
	v.Tags[tag] = 1

	for locale, name := range b.LocalizedNames {
		p, ok := localizedPrefixes[locale]
		if !ok || name == "" {
			continue
		}
		if v.LocalizedNames == nil {
			v.LocalizedNames = make(map[string]string, len(b.LocalizedNames))
		}
		v.LocalizedNames[locale] = localized(p) + " " + name
	}
	return v
}

// Catalog is the immutable set of base and variant ingredients.
type Catalog struct {
	items []Ingredient
	index map[string]int
}

// BuildCatalog validates bases, derives their variants and indexes the
// result. Every integrity failure is reported as ErrCodeDataIntegrity.
func BuildCatalog(bases []Ingredient) (*Catalog, error) {
	c := &Catalog{
		items: make([]Ingredient, 0, len(bases)*2),
		index: make(map[string]int, len(bases)*2),
	}

	for i, b := range bases {
		if err := validateBase(b); err != nil {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeDataIntegrity,
				"invalid base ingredient", err, map[string]any{"index": i, "ingredient": b.ID})
		}
		if _, dup := c.index[b.ID]; dup {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeDataIntegrity,
				"duplicate ingredient id", map[string]any{"ingredient": b.ID})
		}
		c.index[b.ID] = len(c.items)
		c.items = append(c.items, b.clone())
	}

	for _, v := range GenerateVariants(bases) {
		if _, dup := c.index[v.ID]; dup {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeDataIntegrity,
				"variant id collides with an existing ingredient", map[string]any{
					"ingredient": v.ID,
					"base":       v.Base,
				})
		}
		c.index[v.ID] = len(c.items)
		c.items = append(c.items, v)
	}

	return c, nil
}

func validateBase(b Ingredient) error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("empty id")
	}
	if b.Base != "" {
		return fmt.Errorf("base ingredient %q must not reference base %q", b.ID, b.Base)
	}
	if _, ok := ParseCategory(string(b.Category)); !ok {
		return fmt.Errorf("unknown category %q", b.Category)
	}
	for tag, w := range b.Tags {
		if !tag.IsValid() {
			return fmt.Errorf("unknown tag %q", tag)
		}
		if w <= 0 {
			return fmt.Errorf("tag %q has non-positive weight %v", tag, w)
		}
	}
	return nil
}

// Len returns the number of ingredients, variants included.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns every ingredient: bases in declaration order, then variants.
func (c *Catalog) All() []Ingredient {
	out := make([]Ingredient, len(c.items))
	for i, item := range c.items {
		out[i] = item.clone()
	}
	return out
}

// Lookup returns the ingredient with the exact id.
func (c *Catalog) Lookup(id string) (Ingredient, bool) {
	i, ok := c.index[id]
	if !ok {
		return Ingredient{}, false
	}
	return c.items[i].clone(), true
}

// ByCategory returns the ingredients of category in catalog order.
func (c *Catalog) ByCategory(category Category) []Ingredient {
	var out []Ingredient
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item.clone())
		}
	}
	return out
}

// Search returns the ingredients whose id, name or any localized name
// contains query, ignoring case. A blank query matches nothing.
func (c *Catalog) Search(query string) []Ingredient {
	folder := cases.Fold()
	q := folder.String(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Ingredient
	for _, item := range c.items {
		if matches(folder, item, q) {
			out = append(out, item.clone())
		}
	}
	return out
}

func matches(folder cases.Caser, item Ingredient, q string) bool {
	if strings.Contains(folder.String(item.ID), q) || strings.Contains(folder.String(item.Name), q) {
		return true
	}
	for _, n := range item.LocalizedNames {
		if strings.Contains(folder.String(n), q) {
			return true
		}
	}
	return false
}

// Resolve maps ingredient ids onto catalog entries for a cooking selection.
// An empty id stays an empty (nil) slot. An unknown id fails with
// ErrCodeNotFound. The returned pointers must be treated as read-only.
func (c *Catalog) Resolve(ids []string) ([]*Ingredient, error) {
	slots := make([]*Ingredient, len(ids))
	for i, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		idx, ok := c.index[id]
		if !ok {
			return nil, cnserrors.NewWithContext(cnserrors.ErrCodeNotFound,
				fmt.Sprintf("unknown ingredient: %s", id), map[string]any{
					"ingredient": id,
					"slot":       i,
				})
		}
		slots[i] = &c.items[idx]
	}
	return slots, nil
}
