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
	"net/http"
	"strconv"

	"github.com/NVIDIA/cookpot/pkg/defaults"
	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/NVIDIA/cookpot/pkg/header"
	"github.com/NVIDIA/cookpot/pkg/serializer"
	"github.com/NVIDIA/cookpot/pkg/server"
)

// List is the document returned when browsing the recipe table.
type List struct {
	header.Header `json:",inline" yaml:",inline"`

	Items []Recipe `json:"items" yaml:"items"`
}

// NewList wraps recipes into a RecipeList document.
func NewList(items []Recipe) *List {
	if items == nil {
		items = []Recipe{}
	}
	return &List{
		Header: *header.New(
			header.WithKind(header.KindRecipeList),
			header.WithAPIVersion(header.APIVersion),
			header.WithMetadata("count", strconv.Itoa(len(items))),
		),
		Items: items,
	}
}

// TableHeader implements serializer.TableRenderer.
func (l *List) TableHeader() []string {
	return []string{"ID", "NAME", "FOOD TYPE", "STATION", "PRIORITY"}
}

// TableRows implements serializer.TableRenderer.
func (l *List) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Items))
	for _, r := range l.Items {
		rows = append(rows, []string{r.ID, r.Name, string(r.FoodType), string(r.Station), strconv.Itoa(r.Priority)})
	}
	return rows
}

// HandleRecipes lists recipes. The optional station query parameter limits
// the listing to recipes declared for that station.
func (t *Table) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	items := t.All()
	if raw := r.URL.Query().Get("station"); raw != "" {
		station, err := ParseStation(raw)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
				"Invalid station", false, map[string]any{
					"error": err.Error(),
				})
			return
		}
		items = t.ByStation(station)
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.CatalogCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, NewList(items))
}
