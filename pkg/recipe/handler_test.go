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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NVIDIA/cookpot/pkg/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRecipes(t *testing.T) {
	table, err := NewTable(testDefs(), testPredicates())
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantIDs    []string
	}{
		{"all", http.MethodGet, "/v1/recipes", http.StatusOK, []string{"stew", "tartare", "jam", "goop"}},
		{"cookpot", http.MethodGet, "/v1/recipes?station=cookpot", http.StatusOK, []string{"stew", "jam", "goop"}},
		{"secondary alias", http.MethodGet, "/v1/recipes?station=secondary", http.StatusOK, []string{"tartare"}},
		{"bad station", http.MethodGet, "/v1/recipes?station=oven", http.StatusBadRequest, nil},
		{"wrong method", http.MethodPut, "/v1/recipes", http.StatusMethodNotAllowed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			table.HandleRecipes(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var list List
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
			assert.Equal(t, header.KindRecipeList, list.Kind)
			assert.Equal(t, tt.wantIDs, recipeIDs(list.Items))
		})
	}
}

func TestList_TableRows(t *testing.T) {
	table, err := NewTable(testDefs(), testPredicates())
	require.NoError(t, err)

	list := NewList(table.ByStation(StationPortable))
	assert.Equal(t, []string{"ID", "NAME", "FOOD TYPE", "STATION", "PRIORITY"}, list.TableHeader())
	assert.Equal(t, [][]string{{"tartare", "Tartare", "meat", "portablecookpot", "30"}}, list.TableRows())
}
