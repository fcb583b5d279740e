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
	"testing"

	cnserrors "github.com/NVIDIA/cookpot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBases() []Ingredient {
	return []Ingredient{
		{ID: "meat", Name: "Meat", LocalizedNames: map[string]string{"ko": "고기"},
			Tags: map[Tag]float64{TagMeat: 1}, Category: CategoryMeats, Cookable: true, Dryable: true},
		{ID: "berries", Name: "Berries", LocalizedNames: map[string]string{"ko": "딸기", "fr": "Baies"},
			Tags: map[Tag]float64{TagFruit: 0.5}, Category: CategoryFruits, Cookable: true},
		{ID: "twigs", Name: "Twigs", Tags: map[Tag]float64{TagInedible: 1}, Category: CategoryMisc},
		{ID: "petals", Name: "Petals", Tags: map[Tag]float64{TagDecoration: 0.5}, Category: CategoryMisc, Dryable: true},
	}
}

func ids(items []Ingredient) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestGenerateVariants(t *testing.T) {
	bases := testBases()
	variants := GenerateVariants(bases)

	assert.Equal(t, []string{"meat_cooked", "meat_dried", "berries_cooked", "petals_dried"}, ids(variants))

	cooked := variants[0]
	assert.Equal(t, "Cooked Meat", cooked.Name)
	assert.Equal(t, "구운 고기", cooked.LocalizedNames["ko"])
	assert.Equal(t, map[Tag]float64{TagMeat: 1, TagPrecook: 1}, cooked.Tags)
	assert.Equal(t, CategoryMeats, cooked.Category)
	assert.Equal(t, "meat", cooked.Base)
	assert.False(t, cooked.Cookable)
	assert.False(t, cooked.Dryable)

	dried := variants[1]
	assert.Equal(t, "Dried Meat", dried.Name)
	assert.Equal(t, "말린 고기", dried.LocalizedNames["ko"])
	assert.Equal(t, map[Tag]float64{TagMeat: 1, TagDried: 1}, dried.Tags)

	t.Run("locales without a prefix are dropped", func(t *testing.T) {
		berries := variants[2]
		assert.Equal(t, map[string]string{"ko": "구운 딸기"}, berries.LocalizedNames)
	})

	t.Run("no localized names", func(t *testing.T) {
		assert.Nil(t, variants[3].LocalizedNames)
	})

	t.Run("bases are not modified", func(t *testing.T) {
		assert.Equal(t, testBases(), bases)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, variants, GenerateVariants(testBases()))
	})
}

func TestBuildCatalog(t *testing.T) {
	c, err := BuildCatalog(testBases())
	require.NoError(t, err)

	assert.Equal(t, 8, c.Len())
	assert.Equal(t, []string{
		"meat", "berries", "twigs", "petals",
		"meat_cooked", "meat_dried", "berries_cooked", "petals_dried",
	}, ids(c.All()))
}

func TestBuildCatalog_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		bases []Ingredient
	}{
		{
			name: "duplicate base",
			bases: []Ingredient{
				{ID: "meat", Name: "Meat", Category: CategoryMeats},
				{ID: "meat", Name: "Meat Again", Category: CategoryMeats},
			},
		},
		{
			name: "variant collides with base",
			bases: []Ingredient{
				{ID: "meat", Name: "Meat", Category: CategoryMeats, Cookable: true},
				{ID: "meat_cooked", Name: "Cooked Meat", Category: CategoryMeats},
			},
		},
		{
			name:  "empty id",
			bases: []Ingredient{{ID: " ", Name: "Blank", Category: CategoryMisc}},
		},
		{
			name:  "unknown category",
			bases: []Ingredient{{ID: "rock", Name: "Rock", Category: "minerals"}},
		},
		{
			name:  "unknown tag",
			bases: []Ingredient{{ID: "rock", Name: "Rock", Category: CategoryMisc, Tags: map[Tag]float64{"mineral": 1}}},
		},
		{
			name:  "non-positive weight",
			bases: []Ingredient{{ID: "rock", Name: "Rock", Category: CategoryMisc, Tags: map[Tag]float64{TagInedible: 0}}},
		},
		{
			name:  "base declares a base",
			bases: []Ingredient{{ID: "rock", Name: "Rock", Category: CategoryMisc, Base: "stone"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := BuildCatalog(tt.bases)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Equal(t, cnserrors.ErrCodeDataIntegrity, cnserrors.CodeOf(err))
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := BuildCatalog(testBases())
	require.NoError(t, err)

	got, ok := c.Lookup("meat_dried")
	require.True(t, ok)
	assert.Equal(t, "Dried Meat", got.Name)

	_, ok = c.Lookup("Meat")
	assert.False(t, ok, "lookup is exact")

	_, ok = c.Lookup("twigs_cooked")
	assert.False(t, ok, "non-cookable base has no cooked variant")

	t.Run("returned copies are isolated", func(t *testing.T) {
		got.Tags[TagMonster] = 1
		again, _ := c.Lookup("meat_dried")
		assert.Zero(t, again.Weight(TagMonster))
	})
}

func TestCatalog_ByCategory(t *testing.T) {
	c, err := BuildCatalog(testBases())
	require.NoError(t, err)

	assert.Equal(t, []string{"twigs", "petals", "petals_dried"}, ids(c.ByCategory(CategoryMisc)))
	assert.Empty(t, c.ByCategory(CategoryEggs))
}

func TestCatalog_Search(t *testing.T) {
	c, err := BuildCatalog(testBases())
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []string
	}{
		{"MEAT", []string{"meat", "meat_cooked", "meat_dried"}},
		{"cooked", []string{"meat_cooked", "berries_cooked"}},
		{"딸기", []string{"berries", "berries_cooked"}},
		{"baies", []string{"berries"}},
		{"  ", nil},
		{"rock", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := c.Search(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCatalog_Resolve(t *testing.T) {
	c, err := BuildCatalog(testBases())
	require.NoError(t, err)

	t.Run("known ids and empty slots", func(t *testing.T) {
		slots, err := c.Resolve([]string{"meat", "", "meat", "petals_dried"})
		require.NoError(t, err)
		require.Len(t, slots, 4)
		assert.Equal(t, "meat", slots[0].ID)
		assert.Nil(t, slots[1])
		assert.Same(t, slots[0], slots[2])
		assert.Equal(t, 1.0, slots[3].Weight(TagDried))
	})

	t.Run("unknown id", func(t *testing.T) {
		slots, err := c.Resolve([]string{"meat", "unobtainium", "", ""})
		require.Error(t, err)
		assert.Nil(t, slots)
		assert.True(t, cnserrors.HasCode(err, cnserrors.ErrCodeNotFound))
		assert.Contains(t, err.Error(), "unobtainium")
	})
}

func TestIngredient_DisplayName(t *testing.T) {
	i := Ingredient{Name: "Meat", LocalizedNames: map[string]string{"ko": "고기"}}
	assert.Equal(t, "고기", i.DisplayName("ko"))
	assert.Equal(t, "Meat", i.DisplayName("ja"))
	assert.Equal(t, "Meat", i.DisplayName(""))
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, ok := ParseCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := ParseCategory("Fruits")
	assert.False(t, ok)
}
