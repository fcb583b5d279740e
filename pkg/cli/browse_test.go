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

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestIngredientsCmd(t *testing.T) {
	out, err := run(t, "ingredients")
	require.NoError(t, err)

	doc := gjson.Parse(out)
	assert.Equal(t, "IngredientList", doc.Get("kind").String())
	assert.Len(t, doc.Get("items").Array(), 132)
}

func TestIngredientsCmd_Category(t *testing.T) {
	out, err := run(t, "ingredients", "--category", "fruits")
	require.NoError(t, err)

	items := gjson.Get(out, "items").Array()
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "fruits", item.Get("category").String(), item.Get("id").String())
	}
}

func TestIngredientsCmd_BadCategory(t *testing.T) {
	_, err := run(t, "ingredients", "--category", "rocks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}

func TestRecipesCmd(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		count int
	}{
		{"all", []string{"recipes"}, 79},
		{"cookpot", []string{"recipes", "--station", "cookpot"}, 68},
		{"portable", []string{"recipes", "--station", "portablecookpot"}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)

			doc := gjson.Parse(out)
			assert.Equal(t, "RecipeList", doc.Get("kind").String())
			assert.Len(t, doc.Get("items").Array(), tt.count)
		})
	}
}
