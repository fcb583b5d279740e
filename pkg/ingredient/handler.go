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
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/NVIDIA/cookpot/pkg/defaults"
	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/NVIDIA/cookpot/pkg/header"
	"github.com/NVIDIA/cookpot/pkg/serializer"
	"github.com/NVIDIA/cookpot/pkg/server"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// List is the document returned when browsing the catalog.
type List struct {
	header.Header `json:",inline" yaml:",inline"`

	Items []Ingredient `json:"items" yaml:"items"`
}

// NewList wraps items into an IngredientList document.
func NewList(items []Ingredient) *List {
	if items == nil {
		items = []Ingredient{}
	}
	return &List{
		Header: *header.New(
			header.WithKind(header.KindIngredientList),
			header.WithAPIVersion(header.APIVersion),
			header.WithMetadata("count", strconv.Itoa(len(items))),
		),
		Items: items,
	}
}

// TableHeader implements serializer.TableRenderer.
func (l *List) TableHeader() []string {
	return []string{"ID", "NAME", "CATEGORY", "TAGS"}
}

// TableRows implements serializer.TableRenderer.
func (l *List) TableRows() [][]string {
	title := cases.Title(language.English)
	rows := make([][]string, 0, len(l.Items))
	for _, item := range l.Items {
		rows = append(rows, []string{item.ID, item.Name, title.String(string(item.Category)), formatTags(item)})
	}
	return rows
}

// formatTags renders tags as "meat=1 precook=1" in tag name order.
func formatTags(item Ingredient) string {
	keys := make([]string, 0, len(item.Tags))
	for t := range item.Tags {
		keys = append(keys, string(t))
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.FormatFloat(item.Weight(Tag(k)), 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

// Filter selects catalog entries by category and search query. Empty values
// do not filter. Both filters apply when both are set.
func (c *Catalog) Filter(category Category, query string) []Ingredient {
	var items []Ingredient
	switch {
	case query != "":
		items = c.Search(query)
	default:
		items = c.All()
	}
	if category == "" {
		return items
	}

	out := make([]Ingredient, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// HandleIngredients serves the catalog. Optional query parameters:
// category (one of Categories) and q (case-insensitive name search).
func (c *Catalog) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	q := r.URL.Query()
	var category Category
	if raw := q.Get("category"); raw != "" {
		parsed, ok := ParseCategory(raw)
		if !ok {
			server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
				"Invalid ingredient category", false, map[string]any{
					"category": raw,
					"allowed":  Categories(),
				})
			return
		}
		category = parsed
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, NewList(c.Filter(category, q.Get("q"))))
}
